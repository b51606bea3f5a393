package browser

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/Digital-Shane/show-scout/internal/catalog"
	"github.com/Digital-Shane/show-scout/internal/display"
	"github.com/Digital-Shane/show-scout/internal/tui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

type stubFetcher struct {
	mu       sync.Mutex
	search   func(context.Context, string) ([]catalog.Show, error)
	episodes func(context.Context, int) ([]catalog.Episode, error)
	terms    []string
	showIDs  []int
}

func (f *stubFetcher) SearchShows(ctx context.Context, term string) ([]catalog.Show, error) {
	f.mu.Lock()
	f.terms = append(f.terms, term)
	f.mu.Unlock()
	if f.search == nil {
		return nil, nil
	}
	return f.search(ctx, term)
}

func (f *stubFetcher) Episodes(ctx context.Context, showID int) ([]catalog.Episode, error) {
	f.mu.Lock()
	f.showIDs = append(f.showIDs, showID)
	f.mu.Unlock()
	if f.episodes == nil {
		return nil, nil
	}
	return f.episodes(ctx, showID)
}

func gothamFetcher() *stubFetcher {
	return &stubFetcher{
		search: func(_ context.Context, term string) ([]catalog.Show, error) {
			return []catalog.Show{
				{ID: 1, Name: "Gotham", Summary: "<p>dark</p>", Image: catalog.PlaceholderImage},
				{ID: 2, Name: "Batman", Summary: "<p>bats</p>", Image: "https://img/m.jpg"},
			}, nil
		},
		episodes: func(_ context.Context, id int) ([]catalog.Episode, error) {
			if id == 1 {
				return []catalog.Episode{{ID: 10, Name: "Pilot", Season: 1, Number: 1}}, nil
			}
			return []catalog.Episode{}, nil
		},
	}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

// press sends a key and, when the key starts a fetch, runs it and feeds the
// result back into the model.
func press(t *testing.T, m *Model, key tea.KeyMsg) {
	t.Helper()
	_, cmd := m.Update(key)
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case ShowsLoadedMsg, EpisodesLoadedMsg:
		m.Update(msg)
	}
}

func search(t *testing.T, m *Model, term string) {
	t.Helper()
	m.setFocus(focusSearch)
	m.input.SetValue(term)
	press(t, m, keyEnter)
}

func TestSearchPopulatesShowList(t *testing.T) {
	fetcher := gothamFetcher()
	m := New(fetcher)

	search(t, m, "batman")

	if diff := cmp.Diff([]string{"batman"}, fetcher.terms); diff != "" {
		t.Errorf("search terms mismatch (-want +got):\n%s", diff)
	}

	entries := m.Regions().Shows.Entries
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if got := entries[0]; got.Name != "Gotham" || got.Image != catalog.PlaceholderImage || got.Summary != "dark" {
		t.Errorf("first entry = %+v, want Gotham with placeholder image", got)
	}
	if m.focus != focusShows {
		t.Errorf("focus = %v, want shows after results", m.focus)
	}
	if status, isErr := m.Status(); isErr || !strings.Contains(status, "2 shows") {
		t.Errorf("Status() = (%q, %v), want success mentioning 2 shows", status, isErr)
	}
}

func TestEmptyTermIsSentAsIs(t *testing.T) {
	fetcher := gothamFetcher()
	m := New(fetcher)

	search(t, m, "")

	if diff := cmp.Diff([]string{""}, fetcher.terms); diff != "" {
		t.Errorf("search terms mismatch (-want +got):\n%s", diff)
	}
}

func TestEpisodesForFocusedShow(t *testing.T) {
	fetcher := gothamFetcher()
	m := New(fetcher)
	search(t, m, "batman")

	press(t, m, keyEnter)

	if diff := cmp.Diff([]int{1}, fetcher.showIDs); diff != "" {
		t.Errorf("episode requests mismatch (-want +got):\n%s", diff)
	}
	area := m.Regions().Episodes
	if !area.Visible {
		t.Fatal("episode area should be visible")
	}
	if diff := cmp.Diff([]string{"Pilot (season 1, episode 1)"}, area.Lines); diff != "" {
		t.Errorf("episode lines mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(m.View(), "Pilot (season 1, episode 1)") {
		t.Error("View() should include the rendered episode")
	}
}

func TestEpisodesUseControlBoundShowID(t *testing.T) {
	fetcher := gothamFetcher()
	m := New(fetcher)
	search(t, m, "batman")

	if _, err := m.shows.Tree.SetFocusedID(context.Background(), "2"); err != nil {
		t.Fatalf("SetFocusedID() error = %v", err)
	}
	press(t, m, keyEnter)

	if diff := cmp.Diff([]int{2}, fetcher.showIDs); diff != "" {
		t.Errorf("episode requests mismatch (-want +got):\n%s", diff)
	}
	area := m.Regions().Episodes
	if !area.Visible || len(area.Lines) != 0 {
		t.Errorf("episode area = %+v, want visible and empty", area)
	}
	if !strings.Contains(m.View(), "No episodes listed") {
		t.Error("View() should show the empty episode hint")
	}
}

func TestNewSearchHidesEpisodes(t *testing.T) {
	m := New(gothamFetcher())
	search(t, m, "batman")
	press(t, m, keyEnter)
	if !m.Regions().Episodes.Visible {
		t.Fatal("episode area should be visible before the second search")
	}

	search(t, m, "gotham")
	if m.Regions().Episodes.Visible {
		t.Error("episode area should be hidden after a new search")
	}
}

func TestStaleSearchResponseIsDiscarded(t *testing.T) {
	m := New(&stubFetcher{})

	m.input.SetValue("first")
	firstCmd := m.submitSearch()
	m.input.SetValue("second")
	secondCmd := m.submitSearch()

	first := firstCmd().(ShowsLoadedMsg)
	second := secondCmd().(ShowsLoadedMsg)
	first.Shows = []catalog.Show{{ID: 1, Name: "Old", Image: catalog.PlaceholderImage}}
	second.Shows = []catalog.Show{{ID: 2, Name: "New", Image: catalog.PlaceholderImage}}

	m.Update(second)
	m.Update(first)

	entries := m.Regions().Shows.Entries
	if len(entries) != 1 || entries[0].Name != "New" {
		t.Errorf("entries = %+v, want only the latest response", entries)
	}
}

func TestStaleEpisodeResponseIsDiscarded(t *testing.T) {
	m := New(gothamFetcher())
	search(t, m, "batman")

	pending := m.requestEpisodes(display.EpisodeControl{ShowID: 1})
	search(t, m, "gotham")

	m.Update(pending())

	if m.Regions().Episodes.Visible {
		t.Error("episode response issued before the new search should be ignored")
	}
}

func TestSearchErrorKeepsRegions(t *testing.T) {
	fetcher := gothamFetcher()
	m := New(fetcher)
	search(t, m, "batman")
	press(t, m, keyEnter)
	before := *m.Regions()

	fetcher.search = func(context.Context, string) ([]catalog.Show, error) {
		return nil, errors.New("network unreachable")
	}
	search(t, m, "again")

	if diff := cmp.Diff(before, *m.Regions(), cmp.AllowUnexported(display.Regions{})); diff != "" {
		t.Errorf("regions changed after failed search (-want +got):\n%s", diff)
	}
	status, isErr := m.Status()
	if !isErr || !strings.Contains(status, "network unreachable") {
		t.Errorf("Status() = (%q, %v), want error status", status, isErr)
	}
}

func TestEpisodeErrorKeepsEpisodeArea(t *testing.T) {
	fetcher := gothamFetcher()
	m := New(fetcher)
	search(t, m, "batman")

	fetcher.episodes = func(context.Context, int) ([]catalog.Episode, error) {
		return nil, &catalog.Error{Op: "episodes", Kind: catalog.KindStatus, StatusCode: 500}
	}
	press(t, m, keyEnter)

	if m.Regions().Episodes.Visible {
		t.Error("episode area should stay hidden after a failed fetch")
	}
	if _, isErr := m.Status(); !isErr {
		t.Error("Status() should report the failure")
	}
}

func TestCycleFocusSkipsEmptyRegions(t *testing.T) {
	m := New(gothamFetcher())

	m.Update(keyTab)
	if m.focus != focusSearch {
		t.Errorf("focus = %v, want search when nothing else is focusable", m.focus)
	}

	search(t, m, "batman")
	press(t, m, keyEnter)

	steps := []focusArea{focusEpisodes, focusSearch, focusShows}
	for _, want := range steps {
		m.Update(keyTab)
		if m.focus != want {
			t.Errorf("focus after tab = %v, want %v", m.focus, want)
		}
	}
}

func TestEscQuits(t *testing.T) {
	m := New(&stubFetcher{})
	_, cmd := m.Update(keyEsc)
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit")
	}
}

func TestInitialTermSearchesOnStart(t *testing.T) {
	fetcher := gothamFetcher()
	m := New(fetcher, WithInitialTerm("batman"))

	if got := m.input.Value(); got != "batman" {
		t.Errorf("input value = %q, want %q", got, "batman")
	}
	if m.Init() == nil {
		t.Fatal("Init() should return a command")
	}
	if m.searchSeq.latest != 1 {
		t.Errorf("search sequence = %d, want 1 after Init", m.searchSeq.latest)
	}
}

func TestWithThemeDrivesIcons(t *testing.T) {
	th := theme.New(theme.WithIconSet(theme.IconSet{"title": "[SCOUT]", "search": ">"}))
	m := New(&stubFetcher{}, WithTheme(th))

	view := m.View()
	if !strings.Contains(view, "[SCOUT] Show Scout") {
		t.Errorf("View() should use the custom title icon:\n%s", view)
	}
	if got := m.input.Prompt; got != "> " {
		t.Errorf("input prompt = %q, want %q", got, "> ")
	}
}
