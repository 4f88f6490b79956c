package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jfmyers9/storefront/internal/rows"
	"github.com/mattn/go-runewidth"
)

// Column widths for row tables
const (
	titleWidth    = 36
	subtitleWidth = 40
)

// likeMarker returns the leading marker for a row.
func likeMarker(r rows.Row) string {
	switch {
	case !r.Likeable():
		return " "
	case r.Liked:
		return "♥"
	default:
		return "·"
	}
}

// formatRow renders one row as a fixed-width table line led by its rank.
func formatRow(r rows.Row) string {
	return fmt.Sprintf("%s %3d. %s  %s  %d",
		likeMarker(r),
		r.Rank,
		padToWidth(r.Title(), titleWidth),
		padToWidth(r.Subtitle(), subtitleWidth),
		r.ID(),
	)
}

// writeRows prints rows under a heading. Empty sections print a placeholder.
func writeRows(w io.Writer, heading string, rs []rows.Row) {
	fmt.Fprintf(w, "%s (%d)\n", heading, len(rs))
	if len(rs) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, r := range rs {
		fmt.Fprintln(w, formatRow(r))
	}
}

// padToWidth pads or truncates text to the exact display width.
// CJK and emoji count as two columns.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text // no padding requested
	}

	currentWidth := runewidth.StringWidth(text)

	if currentWidth > width {
		ellipsis := "..."
		ellipsisWidth := runewidth.StringWidth(ellipsis)

		if width <= ellipsisWidth {
			return runewidth.Truncate(ellipsis, width, "")
		}

		// Truncate can stop one column short before a wide rune
		result := runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis
		if resultWidth := runewidth.StringWidth(result); resultWidth < width {
			return result + strings.Repeat(" ", width-resultWidth)
		}
		return result
	}

	if currentWidth < width {
		return text + strings.Repeat(" ", width-currentWidth)
	}

	return text
}
