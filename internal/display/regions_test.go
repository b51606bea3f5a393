package display

import (
	"testing"

	"github.com/Digital-Shane/show-scout/internal/catalog"
	"github.com/google/go-cmp/cmp"
)

func gothamShows() []catalog.Show {
	return []catalog.Show{
		{ID: 1, Name: "Gotham", Summary: "<p>dark</p>", Image: catalog.PlaceholderImage},
		{ID: 2, Name: "Batman", Summary: "<p>The <b>caped</b> crusader</p>", Image: "https://img/m.jpg"},
	}
}

func TestPopulateShows(t *testing.T) {
	r := NewRegions()
	r.PopulateShows(gothamShows())

	want := []ShowEntry{
		{ID: 1, Name: "Gotham", Image: catalog.PlaceholderImage, Summary: "dark", Episodes: EpisodeControl{ShowID: 1}},
		{ID: 2, Name: "Batman", Image: "https://img/m.jpg", Summary: "The caped crusader", Episodes: EpisodeControl{ShowID: 2}},
	}
	if diff := cmp.Diff(want, r.Shows.Entries); diff != "" {
		t.Errorf("PopulateShows() entries mismatch (-want +got):\n%s", diff)
	}
}

func TestPopulateShowsIsIdempotent(t *testing.T) {
	r := NewRegions()
	r.PopulateShows(gothamShows())
	first := append([]ShowEntry(nil), r.Shows.Entries...)

	r.PopulateShows(gothamShows())
	if diff := cmp.Diff(first, r.Shows.Entries); diff != "" {
		t.Errorf("second PopulateShows() mismatch (-want +got):\n%s", diff)
	}
}

func TestPopulateShowsReplacesPriorEntries(t *testing.T) {
	r := NewRegions()
	r.PopulateShows(gothamShows())
	r.PopulateShows([]catalog.Show{{ID: 9, Name: "Other", Image: catalog.PlaceholderImage}})

	if got := len(r.Shows.Entries); got != 1 {
		t.Fatalf("len(entries) = %d, want 1", got)
	}
	if got := r.Shows.Entries[0].Episodes.ShowID; got != 9 {
		t.Errorf("control show id = %d, want 9", got)
	}

	r.PopulateShows(nil)
	if got := len(r.Shows.Entries); got != 0 {
		t.Errorf("len(entries) after empty render = %d, want 0", got)
	}
}

func TestPopulateShowsHidesEpisodes(t *testing.T) {
	r := NewRegions()
	r.PopulateEpisodes([]catalog.Episode{{ID: 10, Name: "Pilot", Season: 1, Number: 1}})
	if !r.Episodes.Visible {
		t.Fatal("episode area should be visible after PopulateEpisodes")
	}

	r.PopulateShows(gothamShows())
	if r.Episodes.Visible {
		t.Error("episode area should be hidden after PopulateShows")
	}
}

func TestPopulateEpisodes(t *testing.T) {
	tests := []struct {
		name     string
		episodes []catalog.Episode
		want     []string
	}{
		{
			name:     "SingleEpisode",
			episodes: []catalog.Episode{{ID: 10, Name: "Pilot", Season: 1, Number: 1}},
			want:     []string{"Pilot (season 1, episode 1)"},
		},
		{
			name: "KeepsInputOrder",
			episodes: []catalog.Episode{
				{ID: 3, Name: "Late", Season: 2, Number: 5},
				{ID: 1, Name: "Early", Season: 1, Number: 1},
			},
			want: []string{"Late (season 2, episode 5)", "Early (season 1, episode 1)"},
		},
		{
			name:     "Empty",
			episodes: nil,
			want:     []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegions()
			r.PopulateEpisodes([]catalog.Episode{{Name: "stale", Season: 9, Number: 9}})
			r.HideEpisodes()

			r.PopulateEpisodes(tc.episodes)
			if diff := cmp.Diff(tc.want, r.Episodes.Lines); diff != "" {
				t.Errorf("PopulateEpisodes() lines mismatch (-want +got):\n%s", diff)
			}
			if !r.Episodes.Visible {
				t.Error("episode area should be visible")
			}
		})
	}
}

func TestNewRegionsStartsHidden(t *testing.T) {
	r := NewRegions()
	if r.Episodes.Visible {
		t.Error("episode area should start hidden")
	}
	if len(r.Shows.Entries) != 0 {
		t.Errorf("show list should start empty, got %d entries", len(r.Shows.Entries))
	}
}
