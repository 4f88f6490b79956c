package rows

import (
	"testing"

	"github.com/jfmyers9/storefront/pkg/itunes"
)

type likeSet map[int64]bool

func (l likeSet) IsFavorite(id int64) bool { return l[id] }

var (
	idol = itunes.Track{ID: 1, Name: "Idol", ArtistName: "YOASOBI", CollectionName: "Idol - Single", ArtworkURL100: "https://example.com/100x100bb.jpg"}
	yoru = itunes.Track{ID: 2, Name: "Yoru ni Kakeru", ArtistName: "YOASOBI"}
	book = itunes.Collection{ID: 1, Name: "THE BOOK", ArtistName: "YOASOBI"}
)

func TestFromTracks(t *testing.T) {
	rs := FromTracks([]itunes.Track{idol, yoru}, likeSet{2: true})

	if len(rs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rs))
	}
	if rs[0].Kind != TrackRow || rs[0].Liked {
		t.Errorf("unexpected first row %+v", rs[0])
	}
	if !rs[1].Liked {
		t.Error("expected second row to be liked")
	}
	if rs[0].Subtitle() != "YOASOBI · Idol - Single" {
		t.Errorf("unexpected subtitle %q", rs[0].Subtitle())
	}
	if rs[1].Subtitle() != "YOASOBI" {
		t.Errorf("unexpected subtitle %q", rs[1].Subtitle())
	}
	if rs[0].Artwork(600) != "https://example.com/600x600bb.jpg" {
		t.Errorf("unexpected artwork %q", rs[0].Artwork(600))
	}
}

func TestFromTracks_NilLikes(t *testing.T) {
	rs := FromTracks([]itunes.Track{idol}, nil)
	if rs[0].Liked {
		t.Error("expected unliked row without a like source")
	}
}

func TestFromCollections(t *testing.T) {
	rs := FromCollections([]itunes.Collection{book})

	r := rs[0]
	if r.Kind != CollectionRow || r.Likeable() {
		t.Errorf("unexpected album row %+v", r)
	}
	if r.Title() != "THE BOOK" || r.Subtitle() != "YOASOBI" || r.ID() != 1 {
		t.Errorf("unexpected accessors: %q %q %d", r.Title(), r.Subtitle(), r.ID())
	}
}

func TestRank_FollowsSequencePosition(t *testing.T) {
	tracks := FromTracks([]itunes.Track{idol, yoru}, nil)
	albums := FromCollections([]itunes.Collection{book})

	if tracks[0].Rank != 1 || tracks[1].Rank != 2 {
		t.Errorf("unexpected track ranks %d, %d", tracks[0].Rank, tracks[1].Rank)
	}
	if albums[0].Rank != 1 {
		t.Errorf("unexpected album rank %d", albums[0].Rank)
	}
}

func TestRefresh_ReconcilesLikeState(t *testing.T) {
	likes := likeSet{}
	overview := FromTracks([]itunes.Track{idol, yoru}, likes)
	detail := FromTracks([]itunes.Track{yoru, idol}, likes)

	likes[1] = true
	Refresh(overview, likes)
	Refresh(detail, likes)

	if !overview[0].Liked || !detail[1].Liked {
		t.Error("like not reflected in both views")
	}
	if overview[1].Liked || detail[0].Liked {
		t.Error("unrelated row marked liked")
	}
}

func TestOverview(t *testing.T) {
	sections := Overview([]itunes.Track{idol}, []itunes.Collection{book}, likeSet{1: true})

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Kind != TrackRow || sections[1].Kind != CollectionRow {
		t.Errorf("unexpected section order: %s, %s", sections[0].Kind, sections[1].Kind)
	}
	if !sections[0].Rows[0].Liked {
		t.Error("expected liked track in songs section")
	}
	if sections[1].Rows[0].Liked {
		t.Error("albums are never liked")
	}
}
