package cmd

import (
	"context"
	"fmt"

	"github.com/jfmyers9/storefront/internal/pager"
	"github.com/jfmyers9/storefront/internal/rows"
	"github.com/spf13/cobra"
)

var (
	listPages  int
	listAll    bool
	listFilter string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list {tracks|albums}",
	Short: "Page through the full list of songs or albums",
	Long: `List songs or albums for the search term, continuing from the overview's
first page.

By default two pages are shown. Use --pages to fetch more, or --all to keep
fetching until the API returns a short page. --filter narrows the printed
rows with a fuzzy match on title, artist and album.`,
	Example: `  storefront list tracks --pages 3
  storefront list albums --all --filter book`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"tracks", "albums"},
	RunE:      runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVarP(&listPages, "pages", "p", 2, "Number of pages to show, including the first")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Fetch until the list is exhausted")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Fuzzy filter applied to the printed rows")
}

func runList(cmd *cobra.Command, args []string) error {
	if args[0] != "tracks" && args[0] != "albums" {
		return fmt.Errorf("unknown list %q (want tracks or albums)", args[0])
	}
	if listPages < 1 && !listAll {
		return fmt.Errorf("--pages must be at least 1")
	}

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

	var (
		heading string
		rs      []rows.Row
		st      pager.State
	)
	if args[0] == "tracks" {
		list := a.aggregator.NewTrackList(a.logger)
		if err := loadPages(ctx, list, listPages, listAll); err != nil {
			return err
		}
		heading, rs, st = "Songs", rows.FromTracks(list.Items(), a.likes), list.State()
	} else {
		list := a.aggregator.NewCollectionList(a.logger)
		if err := loadPages(ctx, list, listPages, listAll); err != nil {
			return err
		}
		heading, rs, st = "Albums", rows.FromCollections(list.Items()), list.State()
	}

	rs = rows.Filter(rs, listFilter)
	writeRows(cmd.OutOrStdout(), heading, rs)

	if !st.Exhausted {
		fmt.Fprintf(cmd.ErrOrStderr(), "More results available after %d (use --pages or --all)\n", st.Offset)
	}
	return nil
}

// loadPages grows list until it holds pages pages, or until it is exhausted
// when all is set. The seeded first page counts as one.
func loadPages[T any](ctx context.Context, list *pager.Controller[T], pages int, all bool) error {
	for n := 1; all || n < pages; n++ {
		if list.State().Exhausted {
			return nil
		}
		if _, err := list.LoadMore(ctx); err != nil {
			return fmt.Errorf("failed to load page %d: %w", n+1, err)
		}
	}
	return nil
}
