package rows

import (
	"testing"

	"github.com/jfmyers9/storefront/pkg/itunes"
)

func TestFilter(t *testing.T) {
	rs := append(
		FromTracks([]itunes.Track{idol, yoru}, nil),
		FromCollections([]itunes.Collection{book})...,
	)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query keeps all", query: "", want: []string{"Idol", "Yoru ni Kakeru", "THE BOOK"}},
		{name: "matches title", query: "yoru", want: []string{"Yoru ni Kakeru"}},
		{name: "matches album", query: "thebook", want: []string{"THE BOOK"}},
		{name: "no match", query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(rs, tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) returned %d rows, want %d", tt.query, len(got), len(tt.want))
			}
			for i, r := range got {
				if r.Title() != tt.want[i] {
					t.Errorf("row %d = %q, want %q", i, r.Title(), tt.want[i])
				}
			}
		})
	}
}

func TestFilter_KeepsRank(t *testing.T) {
	rs := FromTracks([]itunes.Track{idol, yoru, {ID: 3, Name: "Gunjou", ArtistName: "YOASOBI"}}, nil)

	got := Filter(rs, "gunjou")
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Rank != 3 {
		t.Errorf("expected filtered row to keep rank 3, got %d", got[0].Rank)
	}
}
