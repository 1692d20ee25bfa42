// Package render defines the interface for rendering feeds into various
// output formats.
//
// A driver calls FeedStart, then FeedEntry for each entry, then FeedEnd for
// every feed, and finally Exit exactly once after the last feed.
package render

import (
	"fmt"

	"github.com/sonnes/rssr/core"
)

// Renderer consumes feed events and writes them in a specific format.
//
// FeedStart, FeedEntry and FeedEnd never fail. Renderers that stream keep the
// first write error and report it from Exit.
type Renderer interface {
	// FeedStart begins a new feed. Unrecognized header keys are ignored.
	FeedStart(h core.Header)

	// FeedEntry renders or stores one entry of the current feed.
	FeedEntry(e core.Entry)

	// FeedEnd marks the end of the current feed's entries.
	FeedEnd()

	// Exit finalizes output. It must be the last call on the renderer.
	Exit() error
}

// Format selects a Renderer implementation.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatTerminal Format = "terminal"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatTerminal}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Feed drives one feed through r: FeedStart, every entry, then FeedEnd.
func Feed(r Renderer, f *core.Feed) {
	r.FeedStart(f.Header)
	for _, e := range f.Entries {
		r.FeedEntry(e)
	}
	r.FeedEnd()
}
