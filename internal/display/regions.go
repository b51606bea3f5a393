// Package display holds the render targets for the two pipelines: the show
// list and the episode area. Renderers replace a region's contents wholesale;
// views read the regions and never mutate them.
package display

import (
	"fmt"

	"github.com/Digital-Shane/show-scout/internal/catalog"
)

// EpisodeControl is the per-show "Episodes" activation control. It is bound
// to its show when the entry is rendered.
type EpisodeControl struct {
	ShowID int
}

// ShowEntry is one rendered show card.
type ShowEntry struct {
	ID       int
	Name     string
	Image    string
	Summary  string // terminal-safe text derived from the catalog markup
	Episodes EpisodeControl
}

// ShowList is the scrollable show display region.
type ShowList struct {
	Entries []ShowEntry
}

// EpisodeArea is the episode display region, hidden until first populated.
type EpisodeArea struct {
	Visible bool
	Lines   []string
}

// Regions groups every display region. The controller owns a single instance
// for the lifetime of the program.
type Regions struct {
	Shows    ShowList
	Episodes EpisodeArea

	summaryWidth int
}

// Option configures Regions during construction.
type Option func(*Regions)

// WithSummaryWidth truncates rendered summaries to width cells. Zero keeps
// them whole.
func WithSummaryWidth(width int) Option {
	return func(r *Regions) {
		r.summaryWidth = width
	}
}

// NewRegions creates empty regions with the episode area hidden.
func NewRegions(opts ...Option) *Regions {
	r := &Regions{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// PopulateShows clears the show list and renders one entry per show. A new
// show list invalidates any open episode view, so the episode area is hidden.
func (r *Regions) PopulateShows(shows []catalog.Show) {
	r.HideEpisodes()

	entries := make([]ShowEntry, 0, len(shows))
	for _, s := range shows {
		entries = append(entries, ShowEntry{
			ID:       s.ID,
			Name:     s.Name,
			Image:    s.Image,
			Summary:  SummaryText(s.Summary, r.summaryWidth),
			Episodes: EpisodeControl{ShowID: s.ID},
		})
	}
	r.Shows.Entries = entries
}

// HideEpisodes hides the episode area without touching its contents.
func (r *Regions) HideEpisodes() {
	r.Episodes.Visible = false
}

// PopulateEpisodes clears the episode area, renders one line per episode in
// the order given and reveals the area, even when there are no episodes.
func (r *Regions) PopulateEpisodes(episodes []catalog.Episode) {
	lines := make([]string, 0, len(episodes))
	for _, e := range episodes {
		lines = append(lines, FormatEpisode(e))
	}
	r.Episodes.Lines = lines
	r.Episodes.Visible = true
}

// FormatEpisode renders "name (season S, episode N)".
func FormatEpisode(e catalog.Episode) string {
	return fmt.Sprintf("%s (season %d, episode %d)", e.Name, e.Season, e.Number)
}
