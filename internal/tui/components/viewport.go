package components

import (
	"github.com/Digital-Shane/show-scout/internal/tui/theme"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// NewViewport constructs a scrollable region sized to its panel's content box.
// Negative sizes are clamped to zero.
func NewViewport(width, height int, th theme.Theme) *viewport.Model {
	vp := viewport.New(max(width, 0), max(height, 0))
	vp.Style = lipgloss.NewStyle().Foreground(th.Colors().Primary)
	return &vp
}

// Resize updates the viewport dimensions, clamping negative sizes to zero.
func Resize(vp *viewport.Model, width, height int) {
	vp.Width = max(width, 0)
	vp.Height = max(height, 0)
}
