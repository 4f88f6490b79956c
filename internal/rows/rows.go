// Package rows turns fetched catalog items into displayable rows.
//
// The result kind is resolved once, when rows are built, so views never
// need to inspect an item's type while rendering.
package rows

import (
	"github.com/jfmyers9/storefront/pkg/itunes"
)

// Kind tags which item a Row carries.
type Kind int

const (
	TrackRow      Kind = iota // Row carries a Track
	CollectionRow             // Row carries a Collection
)

// String returns a human-readable representation of the Kind
func (k Kind) String() string {
	switch k {
	case TrackRow:
		return "track"
	case CollectionRow:
		return "album"
	default:
		return "unknown"
	}
}

// Likes reports like state. *favorites.Store satisfies it.
type Likes interface {
	IsFavorite(id int64) bool
}

// Row is one displayable entry.
type Row struct {
	Kind       Kind
	Track      itunes.Track      // Valid when Kind is TrackRow
	Collection itunes.Collection // Valid when Kind is CollectionRow
	Liked      bool              // Always false for collections
	Rank       int               // 1-based position in the fetched ranking
}

// ID returns the identifier of the carried item.
func (r Row) ID() int64 {
	if r.Kind == CollectionRow {
		return r.Collection.ID
	}
	return r.Track.ID
}

// Title returns the track or album name.
func (r Row) Title() string {
	if r.Kind == CollectionRow {
		return r.Collection.Name
	}
	return r.Track.Name
}

// Subtitle returns "artist" for albums and "artist · album" for tracks.
func (r Row) Subtitle() string {
	if r.Kind == CollectionRow {
		return r.Collection.ArtistName
	}
	if r.Track.CollectionName == "" {
		return r.Track.ArtistName
	}
	return r.Track.ArtistName + " · " + r.Track.CollectionName
}

// Artwork returns the artwork reference at the given size.
func (r Row) Artwork(size int) string {
	if r.Kind == CollectionRow {
		return r.Collection.Artwork(size)
	}
	return r.Track.Artwork(size)
}

// Likeable reports whether the row can be toggled. Only tracks can.
func (r Row) Likeable() bool {
	return r.Kind == TrackRow
}

// FromTracks builds track rows ranked by their position in tracks, marking
// the ones likes reports as liked. likes may be nil.
func FromTracks(tracks []itunes.Track, likes Likes) []Row {
	out := make([]Row, len(tracks))
	for i, t := range tracks {
		out[i] = Row{Kind: TrackRow, Track: t, Rank: i + 1}
		if likes != nil {
			out[i].Liked = likes.IsFavorite(t.ID)
		}
	}
	return out
}

// FromCollections builds album rows ranked by their position in collections.
func FromCollections(collections []itunes.Collection) []Row {
	out := make([]Row, len(collections))
	for i, c := range collections {
		out[i] = Row{Kind: CollectionRow, Collection: c, Rank: i + 1}
	}
	return out
}

// Refresh re-reads like state for every track row in place. Views call it
// after a toggle so the same id shows the same state everywhere.
func Refresh(rs []Row, likes Likes) {
	if likes == nil {
		return
	}
	for i := range rs {
		if rs[i].Likeable() {
			rs[i].Liked = likes.IsFavorite(rs[i].Track.ID)
		}
	}
}

// Section is a titled group of rows, as shown on the overview.
type Section struct {
	Title string
	Kind  Kind
	Rows  []Row
}

// Overview assembles the two overview sections: songs first, then albums.
func Overview(tracks []itunes.Track, collections []itunes.Collection, likes Likes) []Section {
	return []Section{
		{Title: "Songs", Kind: TrackRow, Rows: FromTracks(tracks, likes)},
		{Title: "Albums", Kind: CollectionRow, Rows: FromCollections(collections)},
	}
}
