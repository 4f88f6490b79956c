package itunes

import (
	"fmt"
	"strings"
)

const artworkToken = "100x100bb"

// ArtworkURL rewrites a 100x100 artwork reference to a square image of the
// given size. References that do not carry the 100x100 token, and
// non-positive sizes, are returned unchanged.
func ArtworkURL(ref string, size int) string {
	if size <= 0 || !strings.Contains(ref, artworkToken) {
		return ref
	}
	return strings.Replace(ref, artworkToken, fmt.Sprintf("%dx%dbb", size, size), 1)
}

// Artwork returns the track's artwork URL at the given size.
func (t Track) Artwork(size int) string {
	return ArtworkURL(t.ArtworkURL100, size)
}

// Artwork returns the collection's artwork URL at the given size.
func (c Collection) Artwork(size int) string {
	return ArtworkURL(c.ArtworkURL100, size)
}
