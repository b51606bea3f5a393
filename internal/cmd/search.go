package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Digital-Shane/show-scout/internal/display"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

const summaryColumnWidth = 60

var searchCmd = &cobra.Command{
	Use:   "search [TERM...]",
	Short: "Search shows by title and print them as a table",
	Long: `Search the catalog for shows whose title matches TERM. Multiple arguments are
joined with spaces. The term is sent as typed, so an empty search is allowed.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer a.close()

	term := strings.Join(args, " ")
	shows, err := a.fetcher.SearchShows(cmd.Context(), term)
	if err != nil {
		return err
	}

	regions := a.regions()
	regions.PopulateShows(shows)

	out := cmd.OutOrStdout()
	if len(regions.Shows.Entries) == 0 {
		fmt.Fprintf(out, "No shows matched %q\n", term)
		return nil
	}
	fmt.Fprintln(out, renderShowTable(regions.Shows.Entries))
	return nil
}

func renderShowTable(entries []display.ShowEntry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Name", "Image", "Summary"})
	for _, e := range entries {
		tw.AppendRow(table.Row{strconv.Itoa(e.ID), e.Name, e.Image, e.Summary})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, WidthMax: summaryColumnWidth, WidthMaxEnforcer: text.WrapSoft},
	})
	return tw.Render()
}
