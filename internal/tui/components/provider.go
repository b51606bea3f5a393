package components

import (
	"fmt"

	"github.com/Digital-Shane/show-scout/internal/catalog"
	"github.com/Digital-Shane/show-scout/internal/display"
	"github.com/Digital-Shane/show-scout/internal/tui/theme"

	"github.com/Digital-Shane/treeview"
	"github.com/charmbracelet/lipgloss"
)

// entryRule adapts a show entry predicate to a node predicate.
func entryRule(cond func(display.ShowEntry) bool) func(*treeview.Node[display.ShowEntry]) bool {
	return func(n *treeview.Node[display.ShowEntry]) bool {
		if e := n.Data(); e != nil {
			return cond(*e)
		}
		return false
	}
}

// missingImage matches shows that fell back to the placeholder image.
func missingImage() func(*treeview.Node[display.ShowEntry]) bool {
	return entryRule(func(e display.ShowEntry) bool { return e.Image == catalog.PlaceholderImage })
}

// CreateShowProvider constructs the [treeview.DefaultNodeProvider] for the
// show list. Shows that only have the placeholder image use the muted style.
func CreateShowProvider(th theme.Theme) *treeview.DefaultNodeProvider[display.ShowEntry] {
	colors := th.Colors()

	showIconRule := treeview.WithDefaultIcon[display.ShowEntry](th.Icon("show"))

	missingImageStyleRule := treeview.WithStyleRule(
		missingImage(),
		lipgloss.NewStyle().Foreground(colors.Muted),
		lipgloss.NewStyle().Foreground(colors.Background).Bold(true).Background(colors.Muted).PaddingRight(1),
	)
	defaultStyleRule := treeview.WithStyleRule(
		func(*treeview.Node[display.ShowEntry]) bool { return true },
		lipgloss.NewStyle().Foreground(colors.Primary).Bold(true),
		lipgloss.NewStyle().Foreground(colors.Background).Bold(true).Background(colors.Secondary).PaddingRight(1),
	)

	return treeview.NewDefaultNodeProvider(
		showIconRule,
		missingImageStyleRule, defaultStyleRule,
		treeview.WithFormatter(ShowFormatter),
	)
}

// ShowFormatter labels a node with the show name and its catalog id.
func ShowFormatter(node *treeview.Node[display.ShowEntry]) (string, bool) {
	e := node.Data()
	if e == nil {
		return node.Name(), true
	}
	return fmt.Sprintf("%s (#%d)", e.Name, e.ID), true
}
