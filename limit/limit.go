// Package limit provides a Transformer that caps the number of entries
// rendered per feed.
package limit

import "github.com/sonnes/rssr/core"

// Limiter keeps the first N entries of a feed.
type Limiter struct {
	n int
}

// New creates a Limiter. n <= 0 means no limit.
func New(n int) *Limiter {
	return &Limiter{n: n}
}

// Transform implements core.Transformer.
func (l *Limiter) Transform(f *core.Feed) error {
	if l.n > 0 && len(f.Entries) > l.n {
		f.Entries = f.Entries[:l.n]
	}
	return nil
}
