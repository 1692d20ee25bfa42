// Package text renders feeds as plain, line-oriented text for limited-charset
// terminals.
package text

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sonnes/rssr/core"
)

// Renderer streams each feed event to its writer as soon as it arrives.
// Nothing is buffered between calls.
//
// Output is ASCII: every byte of a non-ASCII character is written as '?'.
type Renderer struct {
	w   io.Writer
	err error
}

// New creates a text Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// FeedStart writes "Feed: <title>" when the header has a title.
func (r *Renderer) FeedStart(h core.Header) {
	if title, ok := h.Title(); ok {
		r.write("Feed: " + title + "\n")
	}
}

// FeedEntry writes the present fields of e in the order title, date, link,
// description. Absent fields produce no output.
func (r *Renderer) FeedEntry(e core.Entry) {
	if v, ok := e.Get(core.KeyTitle); ok {
		r.write("\n\nTitle: " + core.Normalize(v) + "\n\n")
	}
	if v, ok := e.Get(core.KeyPublished); ok {
		r.write("Date: " + v + "\n")
	}
	if v, ok := e.Get(core.KeyLink); ok {
		r.write("Link: " + v + "\n")
	}
	if v, ok := e.Get(core.KeyDescription); ok {
		r.write("\n" + core.Normalize(v) + "\n")
	}
}

// FeedEnd is a no-op; everything has been written already.
func (r *Renderer) FeedEnd() {}

// Exit reports the first write error, if any.
func (r *Renderer) Exit() error {
	return r.err
}

func (r *Renderer) write(s string) {
	if r.err != nil || s == "" {
		return
	}
	_, r.err = io.WriteString(r.w, toASCII(s))
}

// toASCII replaces each byte of every non-ASCII character with '?'.
func toASCII(s string) string {
	if isASCII(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			b.WriteByte(s[i])
			i++
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(strings.Repeat("?", size))
		i += size
	}
	return b.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
