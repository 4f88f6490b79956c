package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// likeCmd represents the like command
var likeCmd = &cobra.Command{
	Use:   "like <track-id>",
	Short: "Toggle the like state of a song",
	Long: `Toggle whether a song is liked. Running the command twice with the same
id restores the original state.

Track ids are printed in the last column of 'storefront overview' and
'storefront list tracks'.`,
	Args: cobra.ExactArgs(1),
	RunE: runLike,
}

// likesCmd represents the likes command
var likesCmd = &cobra.Command{
	Use:   "likes",
	Short: "Print the ids of liked songs",
	Args:  cobra.NoArgs,
	RunE:  runLikes,
}

func init() {
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(likesCmd)
}

func runLike(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid track id %q: %w", args[0], err)
	}

	a, err := newApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	liked, err := a.likes.Toggle(context.Background(), id)
	if err != nil {
		return fmt.Errorf("failed to toggle like: %w", err)
	}

	if liked {
		fmt.Fprintf(cmd.OutOrStdout(), "Liked %d\n", id)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Unliked %d\n", id)
	}
	return nil
}

func runLikes(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.likes.Load(context.Background()); err != nil {
		return fmt.Errorf("failed to load likes: %w", err)
	}

	for _, id := range a.likes.IDs() {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
