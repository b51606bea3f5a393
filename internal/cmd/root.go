package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "show-scout",
	Short: "Search TV shows and browse their episodes",
	Long: `show-scout searches the TVMaze catalog by title and lists matching shows
with their image and summary. Select a show to list its episodes.

Run without a subcommand to open the interactive browser, or use the search
and episodes subcommands for plain output.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBrowser,
}

var initialTerm string

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		rootCmd.PrintErrln("Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&initialTerm, "term", "t", "", "Search for this title as soon as the browser opens")
}
