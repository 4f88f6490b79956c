package itunes

import "testing"

func TestArtworkURL(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		size int
		want string
	}{
		{
			name: "upscales 100x100 reference",
			ref:  "https://example.com/art/100x100bb.jpg",
			size: 600,
			want: "https://example.com/art/600x600bb.jpg",
		},
		{
			name: "leaves other references alone",
			ref:  "https://example.com/art/cover.jpg",
			size: 600,
			want: "https://example.com/art/cover.jpg",
		},
		{
			name: "non-positive size is a no-op",
			ref:  "https://example.com/art/100x100bb.jpg",
			size: 0,
			want: "https://example.com/art/100x100bb.jpg",
		},
		{
			name: "empty reference",
			ref:  "",
			size: 300,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArtworkURL(tt.ref, tt.size); got != tt.want {
				t.Errorf("ArtworkURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrackAndCollectionArtwork(t *testing.T) {
	track := Track{ArtworkURL100: "https://example.com/t/100x100bb.jpg"}
	if got := track.Artwork(300); got != "https://example.com/t/300x300bb.jpg" {
		t.Errorf("Track.Artwork() = %q", got)
	}

	coll := Collection{ArtworkURL100: "https://example.com/c/100x100bb.jpg"}
	if got := coll.Artwork(1200); got != "https://example.com/c/1200x1200bb.jpg" {
		t.Errorf("Collection.Artwork() = %q", got)
	}
}
