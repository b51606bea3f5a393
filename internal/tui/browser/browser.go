// Package browser is the interactive show browser: a search form, the show
// list, and the episode panel, wired to the catalog through Bubble Tea commands.
package browser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Digital-Shane/show-scout/internal/catalog"
	"github.com/Digital-Shane/show-scout/internal/display"
	"github.com/Digital-Shane/show-scout/internal/tui/components"
	"github.com/Digital-Shane/show-scout/internal/tui/theme"
	"github.com/Digital-Shane/treeview"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
)

type focusArea int

const (
	focusSearch focusArea = iota
	focusShows
	focusEpisodes
)

const (
	headerHeight  = 1
	searchHeight  = 3 // input plus panel border
	footerHeight  = 2 // status and help lines
	detailsHeight = 3 // blank separator, image, summary
)

// Model is the controller for both pipelines. It owns the display regions and
// is the only code that mutates them.
type Model struct {
	ctx     context.Context
	fetcher catalog.Fetcher
	regions *display.Regions
	logger  zerolog.Logger
	theme   theme.Theme

	input    textinput.Model
	shows    *treeview.TuiTreeModel[display.ShowEntry]
	episodes *viewport.Model
	focus    focusArea

	searchSeq  Sequencer
	episodeSeq Sequencer

	initialTerm string
	lastTerm    string
	searched    bool
	episodeShow string
	status      string
	statusErr   bool

	width  int
	height int
}

// Option configures a Model during construction.
type Option func(*Model)

// WithTheme overrides the default theme.
func WithTheme(th theme.Theme) Option {
	return func(m *Model) {
		m.theme = th
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithContext sets the context passed to every fetch. Cancelling it aborts
// in-flight requests.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.ctx = ctx
	}
}

// WithRegions supplies the display regions the model renders into.
func WithRegions(r *display.Regions) Option {
	return func(m *Model) {
		m.regions = r
	}
}

// WithInitialTerm pre-fills the search form and submits it on start.
func WithInitialTerm(term string) Option {
	return func(m *Model) {
		m.initialTerm = term
	}
}

// New creates the browser model.
func New(fetcher catalog.Fetcher, opts ...Option) *Model {
	m := &Model{
		ctx:     context.Background(),
		fetcher: fetcher,
		logger:  zerolog.Nop(),
		theme:   theme.Default(),
		width:   80,
		height:  24,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.regions == nil {
		m.regions = display.NewRegions()
	}

	runewidth.DefaultCondition.EastAsianWidth = false
	runewidth.DefaultCondition.StrictEmojiNeutral = true

	ti := textinput.New()
	ti.Placeholder = "Search shows by title"
	ti.Prompt = m.theme.Icon("search") + " "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(m.theme.Colors().Accent)
	ti.SetValue(m.initialTerm)
	ti.CursorEnd()
	ti.Focus()
	m.input = ti

	m.episodes = components.NewViewport(0, 0, m.theme)
	m.rebuildShowTree()
	m.layout()
	return m
}

// Regions exposes the display regions, mainly for tests.
func (m *Model) Regions() *display.Regions {
	return m.regions
}

// Status returns the current status line text and whether it reports an error.
func (m *Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m *Model) Init() tea.Cmd {
	if m.initialTerm != "" {
		return tea.Batch(textinput.Blink, m.submitSearch())
	}
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case ShowsLoadedMsg:
		return m, m.applyShows(msg)

	case EpisodesLoadedMsg:
		m.applyEpisodes(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		return m, tea.Quit
	}

	switch m.focus {
	case focusSearch:
		switch msg.String() {
		case "enter":
			return m, m.submitSearch()
		case "tab":
			return m, m.cycleFocus()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case focusShows:
		switch msg.String() {
		case "enter":
			return m, m.requestFocusedEpisodes()
		case "tab":
			return m, m.cycleFocus()
		case "/":
			return m, m.setFocus(focusSearch)
		case "q":
			return m, tea.Quit
		}
		treeModel, cmd := m.shows.Update(msg)
		m.shows = treeModel.(*treeview.TuiTreeModel[display.ShowEntry])
		return m, cmd

	case focusEpisodes:
		switch msg.String() {
		case "up", "k":
			m.episodes.ScrollUp(1)
		case "down", "j":
			m.episodes.ScrollDown(1)
		case "pgup":
			m.episodes.HalfPageUp()
		case "pgdown":
			m.episodes.HalfPageDown()
		case "tab":
			return m, m.cycleFocus()
		case "/":
			return m, m.setFocus(focusSearch)
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// submitSearch is the search form's submit handler.
func (m *Model) submitSearch() tea.Cmd {
	term := m.input.Value()
	seq := m.searchSeq.Next()
	m.setStatus(m.theme.Icon("loading")+" Searching...", false)
	m.logger.Debug().Uint64("seq", seq).Str("term", term).Msg("search submitted")

	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		shows, err := fetcher.SearchShows(ctx, term)
		return ShowsLoadedMsg{Seq: seq, Term: term, Shows: shows, Err: err}
	}
}

func (m *Model) applyShows(msg ShowsLoadedMsg) tea.Cmd {
	if !m.searchSeq.IsLatest(msg.Seq) {
		m.logger.Debug().Uint64("seq", msg.Seq).Str("term", msg.Term).Msg("discarding stale search response")
		return nil
	}
	if msg.Err != nil {
		m.setError(msg.Err)
		return nil
	}

	m.regions.HideEpisodes()
	m.regions.PopulateShows(msg.Shows)
	// Episode responses still in flight belong to the previous list.
	m.episodeSeq.Next()

	m.searched = true
	m.lastTerm = msg.Term
	m.rebuildShowTree()
	m.layout()
	m.setStatus(fmt.Sprintf("%s for %q", plural(len(msg.Shows), "show"), msg.Term), false)

	if len(m.regions.Shows.Entries) > 0 {
		return m.setFocus(focusShows)
	}
	return m.setFocus(focusSearch)
}

func (m *Model) requestFocusedEpisodes() tea.Cmd {
	node := m.shows.Tree.GetFocusedNode()
	if node == nil {
		return nil
	}
	entry := *node.Data()
	return m.requestEpisodes(entry.Episodes)
}

// requestEpisodes is the per-show control's activation handler. The show id
// comes from the control itself.
func (m *Model) requestEpisodes(ctrl display.EpisodeControl) tea.Cmd {
	showID := ctrl.ShowID
	seq := m.episodeSeq.Next()
	m.setStatus(m.theme.Icon("loading")+" Loading episodes...", false)
	m.logger.Debug().Uint64("seq", seq).Int("show_id", showID).Msg("episodes requested")

	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		episodes, err := fetcher.Episodes(ctx, showID)
		return EpisodesLoadedMsg{Seq: seq, ShowID: showID, Episodes: episodes, Err: err}
	}
}

func (m *Model) applyEpisodes(msg EpisodesLoadedMsg) {
	if !m.episodeSeq.IsLatest(msg.Seq) {
		m.logger.Debug().Uint64("seq", msg.Seq).Int("show_id", msg.ShowID).Msg("discarding stale episode response")
		return
	}
	if msg.Err != nil {
		m.setError(msg.Err)
		return
	}

	m.regions.PopulateEpisodes(msg.Episodes)
	m.episodeShow = m.showName(msg.ShowID)
	m.episodes.SetContent(strings.Join(m.regions.Episodes.Lines, "\n"))
	m.episodes.GotoTop()
	m.layout()
	m.setStatus(fmt.Sprintf("%s for %s", plural(len(msg.Episodes), "episode"), m.episodeShow), false)
}

func (m *Model) showName(id int) string {
	for _, e := range m.regions.Shows.Entries {
		if e.ID == id {
			return e.Name
		}
	}
	return "show " + strconv.Itoa(id)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) setError(err error) {
	m.logger.Error().Err(err).Msg("catalog request failed")
	m.setStatus(m.theme.Icon("error")+" "+err.Error(), true)
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	if f == focusSearch {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// cycleFocus moves search -> shows -> episodes -> search, skipping regions
// with nothing to focus.
func (m *Model) cycleFocus() tea.Cmd {
	next := m.focus
	for range 3 {
		next = (next + 1) % 3
		switch next {
		case focusShows:
			if len(m.regions.Shows.Entries) > 0 {
				return m.setFocus(next)
			}
		case focusEpisodes:
			if m.regions.Episodes.Visible {
				return m.setFocus(next)
			}
		default:
			return m.setFocus(next)
		}
	}
	return nil
}

func (m *Model) rebuildShowTree() {
	entries := m.regions.Shows.Entries
	nodes := make([]*treeview.Node[display.ShowEntry], 0, len(entries))
	for _, e := range entries {
		nodes = append(nodes, treeview.NewNode(strconv.Itoa(e.ID), e.Name, e))
	}
	tree := treeview.NewTree(nodes, treeview.WithProvider(components.CreateShowProvider(m.theme)))
	if len(nodes) > 0 {
		_, _ = tree.SetFocusedID(context.Background(), nodes[0].ID())
	}

	keyMap := treeview.DefaultKeyMap()
	keyMap.SearchStart = []string{}
	keyMap.Reset = []string{}

	width, height := m.treeSize()
	m.shows = treeview.NewTuiTreeModel(tree,
		treeview.WithTuiWidth[display.ShowEntry](width),
		treeview.WithTuiHeight[display.ShowEntry](height),
		treeview.WithTuiAllowResize[display.ShowEntry](true),
		treeview.WithTuiDisableNavBar[display.ShowEntry](true),
		treeview.WithTuiKeyMap[display.ShowEntry](keyMap),
	)
}

func (m *Model) bodyHeight() int {
	return max(m.height-headerHeight-searchHeight-footerHeight, 5)
}

// columnWidths splits the body between the show list and the episode panel.
// The show list takes the full width while the episode panel is hidden.
func (m *Model) columnWidths() (left, right int) {
	if !m.regions.Episodes.Visible {
		return m.width, 0
	}
	left = m.width / 2
	return left, m.width - left
}

func (m *Model) treeSize() (int, int) {
	left, _ := m.columnWidths()
	panel := m.theme.PanelStyle()
	width := max(left-panel.GetHorizontalFrameSize(), 1)
	height := max(m.bodyHeight()-panel.GetVerticalFrameSize()-1-detailsHeight, 1)
	return width, height
}

func (m *Model) layout() {
	panel := m.theme.PanelStyle()
	m.input.Width = max(m.width-panel.GetHorizontalFrameSize()-lipgloss.Width(m.input.Prompt)-1, 1)

	if m.shows != nil {
		width, height := m.treeSize()
		treeModel, _ := m.shows.Update(tea.WindowSizeMsg{Width: width, Height: height})
		m.shows = treeModel.(*treeview.TuiTreeModel[display.ShowEntry])
	}

	_, right := m.columnWidths()
	components.Resize(m.episodes,
		right-panel.GetHorizontalFrameSize(),
		m.bodyHeight()-panel.GetVerticalFrameSize()-1)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
