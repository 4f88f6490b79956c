// Package itunes provides a client library for the iTunes Search API.
//
// # Overview
//
// This package implements a small Go client for the public iTunes Search
// endpoint, focusing on paged song and album searches. It provides a
// type-safe API with context support and typed errors.
//
// # Installation
//
//	go get github.com/jfmyers9/storefront/pkg/itunes
//
// # Quick Start
//
//	client, err := itunes.NewClient(itunes.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Searching
//
// Songs and albums are distinct queries with distinct result types:
//
//	tracks, err := client.Search().Tracks(ctx, "Yoasobi", 36, 0)
//	albums, err := client.Search().Collections(ctx, "Yoasobi", 36, 0)
//
// The generic form selects the kind from the type parameter:
//
//	page, err := itunes.Search[itunes.Track](ctx, client, itunes.Query{
//	    Term:   "Yoasobi",
//	    Limit:  36,
//	    Offset: 36,
//	})
//
// Limit must be between 1 and MaxLimit and Offset must not be negative.
//
// # Error Handling
//
// Every call makes exactly one HTTP request. Failures are reported as:
//
//   - *TransportError: the request failed or returned a non-2xx status
//   - *DecodeError: the body was not the expected JSON shape
//   - ErrInvalidQuery: the query was rejected before any request
//
// Example:
//
//	page, err := client.Search().Tracks(ctx, term, 36, 0)
//	var te *itunes.TransportError
//	if errors.As(err, &te) {
//	    log.Printf("network problem (status %d): %v", te.StatusCode, te.Err)
//	}
//
// No retries are performed; the caller decides whether to try again.
//
// # Artwork
//
// Result artwork is referenced at 100x100. ArtworkURL rewrites the
// reference to another size:
//
//	big := itunes.ArtworkURL(track.ArtworkURL100, 600)
package itunes
