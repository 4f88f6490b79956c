package cmd

import (
	"github.com/jfmyers9/storefront/internal/tui"
	"github.com/spf13/cobra"
)

var browseArtworkSize int

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive ranking browser",
	Long: `Open a terminal browser showing the top songs and albums for the search
term. Press enter on either list to see all results of that kind; more
results are fetched as the cursor approaches the end of the list.

Keys:
  enter  open the full list
  tab    switch between songs and albums
  l      like or unlike the highlighted song
  r      reload the overview, or retry a failed page
  esc    back to the overview
  q      quit

Logs are discarded unless --log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().IntVar(&browseArtworkSize, "artwork-size", tui.DefaultConfig().ArtworkSize, "Artwork size shown in the info pane")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{quiet: true})
	if err != nil {
		return err
	}
	defer a.Close()

	browser := tui.New(a.aggregator, a.likes, tui.Config{
		Lookahead:   a.cfg.Search.Lookahead,
		ArtworkSize: browseArtworkSize,
	}, a.logger)

	return browser.Run()
}
