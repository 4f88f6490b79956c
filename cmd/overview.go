package cmd

import (
	"context"
	"fmt"

	"github.com/jfmyers9/storefront/internal/rows"
	"github.com/spf13/cobra"
)

// overviewCmd represents the overview command
var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the top songs and albums for the search term",
	Long: `Fetch the first page of songs and albums for the search term and print
both sections. The two queries run concurrently; if either fails nothing is
shown and the error of the failing query is reported (the song query when
both fail).

Liked songs are marked with ♥.`,
	Args: cobra.NoArgs,
	RunE: runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	if err := a.fetchOverview(ctx); err != nil {
		return err
	}

	snap := a.aggregator.Snapshot()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Ranking for %q\n\n", a.aggregator.Term())
	for i, section := range rows.Overview(snap.Tracks, snap.Collections, a.likes) {
		if i > 0 {
			fmt.Fprintln(out)
		}
		writeRows(out, section.Title, section.Rows)
	}
	return nil
}
