package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var episodesCmd = &cobra.Command{
	Use:   "episodes SHOW_ID",
	Short: "List every episode of a show",
	Long: `Print one line per episode of the show with the given TVMaze id, in catalog
order. Show ids are listed by the search command.`,
	Args: cobra.ExactArgs(1),
	RunE: runEpisodes,
}

func init() {
	rootCmd.AddCommand(episodesCmd)
}

func runEpisodes(cmd *cobra.Command, args []string) error {
	showID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid show id %q: must be a number", args[0])
	}

	a, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer a.close()

	episodes, err := a.fetcher.Episodes(cmd.Context(), showID)
	if err != nil {
		return err
	}

	regions := a.regions()
	regions.PopulateEpisodes(episodes)

	out := cmd.OutOrStdout()
	if len(regions.Episodes.Lines) == 0 {
		fmt.Fprintln(out, "No episodes listed")
		return nil
	}
	for _, line := range regions.Episodes.Lines {
		fmt.Fprintln(out, line)
	}
	return nil
}
