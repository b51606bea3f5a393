package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func (m *Model) View() string {
	var b strings.Builder

	title := m.theme.Icon("title") + " Show Scout"
	b.WriteString(m.theme.HeaderStyle().Width(m.width).Render(title))
	b.WriteByte('\n')

	b.WriteString(m.renderSearch())
	b.WriteByte('\n')

	left, right := m.columnWidths()
	body := m.renderShows(left, m.bodyHeight())
	if m.regions.Episodes.Visible {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderEpisodes(right, m.bodyHeight()))
	}
	b.WriteString(body)
	b.WriteByte('\n')

	b.WriteString(m.renderStatus())
	b.WriteByte('\n')
	b.WriteString(m.renderHelp())

	return b.String()
}

// sizedPanel returns the panel style sized so the rendered box is exactly
// width x height cells.
func (m *Model) sizedPanel(width, height int, focused bool) lipgloss.Style {
	style := m.theme.PanelStyle()
	if focused {
		style = style.BorderForeground(m.theme.Colors().Primary)
	}
	if width > 0 {
		style = style.Width(max(width-style.GetHorizontalBorderSize(), 0))
	}
	if height > 0 {
		style = style.Height(max(height-style.GetVerticalBorderSize(), 0))
	}
	return style
}

func (m *Model) renderSearch() string {
	return m.sizedPanel(m.width, 0, m.focus == focusSearch).Render(m.input.View())
}

func (m *Model) renderShows(width, height int) string {
	panel := m.sizedPanel(width, height, m.focus == focusShows)
	contentWidth := max(width-panel.GetHorizontalFrameSize(), 1)

	entries := m.regions.Shows.Entries
	title := m.theme.PanelTitleStyle().Render(fmt.Sprintf("%s Shows", m.theme.Icon("show")))
	if len(entries) > 0 {
		title += m.theme.MutedStyle().Render(fmt.Sprintf(" (%d)", len(entries)))
	}

	var content string
	switch {
	case len(entries) == 0 && m.searched:
		content = m.theme.MutedStyle().Italic(true).Render(fmt.Sprintf("No shows matched %q", m.lastTerm))
	case len(entries) == 0:
		content = m.theme.MutedStyle().Italic(true).Render("Type a title and press Enter to search")
	default:
		content = m.shows.View() + "\n" + m.renderDetails(contentWidth)
	}

	return panel.Render(title + "\n" + content)
}

// renderDetails shows the image and summary of the focused show.
func (m *Model) renderDetails(width int) string {
	node := m.shows.Tree.GetFocusedNode()
	if node == nil {
		return ""
	}
	entry := *node.Data()
	return "\n" + m.detailLine("Image", entry.Image, width) + "\n" + m.detailLine("Summary", entry.Summary, width)
}

func (m *Model) detailLine(label, value string, width int) string {
	label += ": "
	avail := max(width-runewidth.StringWidth(label), 0)
	return m.theme.LabelStyle().Render(label) + runewidth.Truncate(value, avail, "…")
}

func (m *Model) renderEpisodes(width, height int) string {
	panel := m.sizedPanel(width, height, m.focus == focusEpisodes)

	name := m.episodeShow
	title := m.theme.PanelTitleStyle().Render(fmt.Sprintf("%s Episodes: %s", m.theme.Icon("episode"), name))

	content := m.episodes.View()
	if len(m.regions.Episodes.Lines) == 0 {
		content = m.theme.MutedStyle().Italic(true).Render("No episodes listed")
	}
	return panel.Render(title + "\n" + content)
}

func (m *Model) renderStatus() string {
	text := m.status
	if text == "" {
		text = "Ready"
	}
	style := m.theme.StatusBarStyle()
	if m.statusErr {
		style = m.theme.ErrorBarStyle()
	}
	width := max(m.width-style.GetHorizontalPadding(), 0)
	return style.Width(m.width).Render(runewidth.Truncate(text, width, "…"))
}

func (m *Model) renderHelp() string {
	var help string
	switch m.focus {
	case focusShows:
		help = m.theme.Icon("arrows") + " Navigate | Enter: Episodes | Tab: Next panel | /: Search | Esc: Quit"
	case focusEpisodes:
		help = m.theme.Icon("arrows") + " Scroll | PgUp/PgDn: Page | Tab: Next panel | /: Search | Esc: Quit"
	default:
		help = "Enter: Search | Tab: Next panel | Esc/Ctrl+C: Quit"
	}
	return lipgloss.NewStyle().
		Italic(true).
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(m.theme.Colors().Muted).
		Render(help)
}
