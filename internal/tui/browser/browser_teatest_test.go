package browser

import (
	"bytes"
	"testing"
	"time"

	"github.com/Digital-Shane/show-scout/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/google/go-cmp/cmp"
)

func startBrowserTestModel(t *testing.T, model *Model, opts ...teatest.TestOption) *teatest.TestModel {
	t.Helper()
	options := append([]teatest.TestOption{teatest.WithInitialTermSize(100, 30)}, opts...)
	tm := teatest.NewTestModel(t, model, options...)
	t.Cleanup(func() {
		_ = tm.Quit()
	})
	return tm
}

func finalBrowserModel(t *testing.T, tm *teatest.TestModel) *Model {
	t.Helper()
	final := tm.FinalModel(t, teatest.WithFinalTimeout(2*time.Second))
	model, ok := final.(*Model)
	if !ok {
		t.Fatalf("Final model type = %T, want *Model", final)
	}
	return model
}

func waitForBrowserOutput(t *testing.T, tm *teatest.TestModel, contains string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte(contains))
	}, teatest.WithDuration(2*time.Second), teatest.WithCheckInterval(25*time.Millisecond))
}

func TestBrowserSearchAndExpandFlow(t *testing.T) {
	fetcher := gothamFetcher()
	tm := startBrowserTestModel(t, New(fetcher))

	tm.Type("batman")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitForBrowserOutput(t, tm, catalog.PlaceholderImage)

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitForBrowserOutput(t, tm, "Pilot (season 1, episode 1)")

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	model := finalBrowserModel(t, tm)

	if diff := cmp.Diff([]string{"batman"}, fetcher.terms); diff != "" {
		t.Errorf("search terms mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, fetcher.showIDs); diff != "" {
		t.Errorf("episode requests mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Pilot (season 1, episode 1)"}, model.Regions().Episodes.Lines); diff != "" {
		t.Errorf("episode lines mismatch (-want +got):\n%s", diff)
	}
}

func TestBrowserInitialTermFlow(t *testing.T) {
	fetcher := gothamFetcher()
	tm := startBrowserTestModel(t, New(fetcher, WithInitialTerm("gotham")))

	waitForBrowserOutput(t, tm, `2 shows for "gotham"`)

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	model := finalBrowserModel(t, tm)

	if got := len(model.Regions().Shows.Entries); got != 2 {
		t.Errorf("len(entries) = %d, want 2", got)
	}
	if model.Regions().Episodes.Visible {
		t.Error("episode area should be hidden before any expansion")
	}
}

func TestBrowserEmptyEpisodeFlow(t *testing.T) {
	fetcher := gothamFetcher()
	tm := startBrowserTestModel(t, New(fetcher, WithInitialTerm("batman")))

	waitForBrowserOutput(t, tm, "Gotham")
	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitForBrowserOutput(t, tm, "No episodes listed")

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	model := finalBrowserModel(t, tm)

	area := model.Regions().Episodes
	if !area.Visible || len(area.Lines) != 0 {
		t.Errorf("episode area = %+v, want visible and empty", area)
	}
}
