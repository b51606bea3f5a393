package cmd

import (
	"context"

	"github.com/Digital-Shane/show-scout/internal/tui/browser"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// newProgram is replaced in tests to run the model without a terminal.
var newProgram = func(m tea.Model, opts ...tea.ProgramOption) interface{ Run() (tea.Model, error) } {
	return tea.NewProgram(m, opts...)
}

func runBrowser(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer a.close()

	// In-flight fetches are abandoned once the browser exits.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model := browser.New(a.fetcher,
		browser.WithContext(ctx),
		browser.WithLogger(a.logger),
		browser.WithRegions(a.regions()),
		browser.WithInitialTerm(initialTerm),
	)

	p := newProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
