package ranking

import (
	"fmt"

	"github.com/jfmyers9/storefront/pkg/itunes"
)

// AggregateError reports that the paired first-page fetch failed.
//
// When both queries fail the track query's error is the one reported in
// Kind and Err; the collection error is kept in Suppressed.
type AggregateError struct {
	Kind       itunes.Kind // Query whose error is reported
	Err        error       // Underlying TransportError or DecodeError
	Suppressed error       // Error of the other query when both failed
}

// Error returns the error message.
func (e *AggregateError) Error() string {
	if e.Suppressed != nil {
		return fmt.Sprintf("overview: %s and collection queries failed: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("overview: %s query failed: %v", e.Kind, e.Err)
}

// Unwrap returns the reported error.
func (e *AggregateError) Unwrap() error {
	return e.Err
}

// joinErrors applies the tie-break: the track error wins.
func joinErrors(trackErr, collErr error) error {
	switch {
	case trackErr != nil:
		return &AggregateError{Kind: itunes.KindTrack, Err: trackErr, Suppressed: collErr}
	case collErr != nil:
		return &AggregateError{Kind: itunes.KindCollection, Err: collErr}
	default:
		return nil
	}
}
