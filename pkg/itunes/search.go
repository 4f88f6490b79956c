package itunes

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// SearchService provides catalog search operations for the iTunes Search API.
type SearchService struct {
	client *Client
}

const (
	// MaxLimit is the largest page size the endpoint honours.
	MaxLimit = 200
)

// wirePage mirrors Page but records whether the envelope fields were
// present at all.
type wirePage[T Result] struct {
	ResultCount *int `json:"resultCount"`
	Results     *[]T `json:"results"`
}

// Search runs one paged query. The result kind is selected by T: Track
// queries send media=music, Collection queries send entity=album.
//
// Example:
//
//	page, err := itunes.Search[itunes.Collection](ctx, client, itunes.Query{
//	    Term:  "Yoasobi",
//	    Limit: 36,
//	})
func Search[T Result](ctx context.Context, c *Client, q Query) (*Page[T], error) {
	var zero T
	kind := zero.ResultKind()

	if err := q.validate(); err != nil {
		return nil, err
	}

	var wire wirePage[T]
	if err := c.get(ctx, kind, q.values(kind), &wire); err != nil {
		return nil, err
	}

	if wire.ResultCount == nil || wire.Results == nil {
		return nil, &DecodeError{Kind: kind, Err: errors.New("response is missing resultCount or results")}
	}

	return &Page[T]{
		ResultCount: *wire.ResultCount,
		Results:     *wire.Results,
	}, nil
}

// Tracks searches songs matching term.
func (s *SearchService) Tracks(ctx context.Context, term string, limit, offset int) (*Page[Track], error) {
	return Search[Track](ctx, s.client, Query{Term: term, Limit: limit, Offset: offset})
}

// Collections searches albums matching term.
func (s *SearchService) Collections(ctx context.Context, term string, limit, offset int) (*Page[Collection], error) {
	return Search[Collection](ctx, s.client, Query{Term: term, Limit: limit, Offset: offset})
}

func (q Query) validate() error {
	if strings.TrimSpace(q.Term) == "" {
		return fmt.Errorf("%w: term is required", ErrInvalidQuery)
	}
	if q.Limit < 1 || q.Limit > MaxLimit {
		return fmt.Errorf("%w: limit %d out of range 1..%d", ErrInvalidQuery, q.Limit, MaxLimit)
	}
	if q.Offset < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrInvalidQuery, q.Offset)
	}
	return nil
}

func (q Query) values(kind Kind) url.Values {
	v := url.Values{}
	v.Set("term", q.Term)
	switch kind {
	case KindTrack:
		v.Set("media", "music")
	case KindCollection:
		v.Set("entity", "album")
	}
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("offset", strconv.Itoa(q.Offset))
	return v
}
