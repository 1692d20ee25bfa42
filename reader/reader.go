// Package reader defines the interface for fetching and parsing feeds into
// the header and entry mappings renderers consume.
package reader

import (
	"context"

	"github.com/sonnes/rssr/core"
)

// Reader loads a single feed.
type Reader interface {
	// Read fetches and parses the feed at source, a URL or a file path.
	Read(ctx context.Context, source string) (*core.Feed, error)
}
