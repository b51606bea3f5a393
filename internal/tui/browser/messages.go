package browser

import "github.com/Digital-Shane/show-scout/internal/catalog"

// ShowsLoadedMsg carries the result of a search request.
type ShowsLoadedMsg struct {
	Seq   uint64
	Term  string
	Shows []catalog.Show
	Err   error
}

// EpisodesLoadedMsg carries the result of an episode request.
type EpisodesLoadedMsg struct {
	Seq      uint64
	ShowID   int
	Episodes []catalog.Episode
	Err      error
}
