package port

import (
	"context"
	"errors"
)

// ErrNoMatch is returned by a NameSource when it has no name for the RUT.
// It is the clean miss; any other error is a source failure.
var ErrNoMatch = errors.New("no match")

// NameSource is one step of the display-name resolution cascade.
type NameSource interface {
	// Tag identifies the source in resolution provenance
	// (e.g. "local-cache", "external:https://...").
	Tag() string

	// Lookup returns the display name for a RUT, ErrNoMatch on a clean
	// miss, or another error when the source itself failed.
	Lookup(ctx context.Context, rut string) (string, error)
}
