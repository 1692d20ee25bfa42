// Package json renders feeds as a single JSON document written at exit.
//
// The whole document is kept in memory until Exit, so a run that is aborted
// part way writes nothing rather than a truncated array.
package json

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sonnes/rssr/core"
)

// block is one feed in the document.
type block struct {
	title    string
	hasTitle bool
	entries  []core.Entry
}

// Renderer accumulates feeds and entries and serializes them on Exit.
type Renderer struct {
	w      io.Writer
	blocks []*block
}

// New creates a JSON Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// FeedStart opens a new block. The header title is stored verbatim.
func (r *Renderer) FeedStart(h core.Header) {
	b := &block{entries: []core.Entry{}}
	b.title, b.hasTitle = h.Title()
	r.blocks = append(r.blocks, b)
}

// FeedEntry appends the recognized fields of e to the current block, opening
// an untitled block first if none exists. Title and description are
// normalized. An entry with no recognized fields is not stored.
func (r *Renderer) FeedEntry(e core.Entry) {
	cur := r.current()
	out := make(core.Entry, len(core.EntryKeys))
	for _, key := range core.EntryKeys {
		v, ok := e.Get(key)
		if !ok {
			continue
		}
		if key == core.KeyTitle || key == core.KeyDescription {
			v = core.Normalize(v)
		}
		out[key] = v
	}
	if len(out) == 0 {
		return
	}
	cur.entries = append(cur.entries, out)
}

// FeedEnd is a no-op; the block stays open until the next FeedStart.
func (r *Renderer) FeedEnd() {}

// Exit writes the document as one line of JSON followed by a newline.
func (r *Renderer) Exit() error {
	var b strings.Builder
	r.encode(&b)
	b.WriteByte('\n')
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) current() *block {
	if len(r.blocks) == 0 {
		r.FeedStart(nil)
	}
	return r.blocks[len(r.blocks)-1]
}

// encode writes the document with ", " and ": " separators, entry keys in
// emission order.
func (r *Renderer) encode(b *strings.Builder) {
	b.WriteByte('[')
	for i, blk := range r.blocks {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('{')
		if blk.hasTitle {
			b.WriteString(`"title": `)
			writeString(b, blk.title)
			b.WriteString(", ")
		}
		b.WriteString(`"entries": [`)
		for j, e := range blk.entries {
			if j > 0 {
				b.WriteString(", ")
			}
			writeEntry(b, e)
		}
		b.WriteString("]}")
	}
	b.WriteByte(']')
}

func writeEntry(b *strings.Builder, e core.Entry) {
	b.WriteByte('{')
	first := true
	for _, key := range core.EntryKeys {
		v, ok := e.Get(key)
		if !ok {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		writeString(b, key)
		b.WriteString(": ")
		writeString(b, v)
	}
	b.WriteByte('}')
}

const hex = "0123456789abcdef"

// writeString writes s as a quoted JSON string containing only ASCII.
// Non-ASCII characters are escaped as \uXXXX, using surrogate pairs outside
// the Basic Multilingual Plane. Invalid UTF-8 is written as \ufffd.
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, c := range s {
		switch {
		case c == '"':
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\b':
			b.WriteString(`\b`)
		case c == '\f':
			b.WriteString(`\f`)
		case c < 0x20:
			writeEscape(b, c)
		case c < utf8.RuneSelf:
			b.WriteRune(c)
		case c > 0xffff:
			c -= 0x10000
			writeEscape(b, 0xd800+(c>>10)&0x3ff)
			writeEscape(b, 0xdc00+c&0x3ff)
		default:
			writeEscape(b, c)
		}
	}
	b.WriteByte('"')
}

func writeEscape(b *strings.Builder, c rune) {
	b.WriteString(`\u`)
	b.WriteByte(hex[c>>12&0xf])
	b.WriteByte(hex[c>>8&0xf])
	b.WriteByte(hex[c>>4&0xf])
	b.WriteByte(hex[c&0xf])
}
