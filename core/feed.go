// Package core defines the feed data that readers produce and renderers
// consume: a header and a sequence of entries, each a mapping from a fixed
// set of recognized keys to string values.
package core

// Recognized field keys. Any other key in a Header or Entry is ignored.
const (
	KeyTitle       = "title"
	KeyPublished   = "published"
	KeyLink        = "link"
	KeyDescription = "description"
)

// EntryKeys lists the recognized entry keys in emission order.
var EntryKeys = []string{KeyTitle, KeyPublished, KeyLink, KeyDescription}

// Header holds feed-level fields. Only "title" is recognized.
type Header map[string]string

// Title returns the header title and whether it was present.
func (h Header) Title() (string, bool) {
	v, ok := h[KeyTitle]
	return v, ok
}

// Entry holds the fields of one feed item. A key that is absent is omitted
// from output entirely; an empty value is still present.
type Entry map[string]string

// Get returns the value for key and whether it was present.
func (e Entry) Get(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// Feed is one fetched and parsed feed.
type Feed struct {
	Source  string  `json:"source,omitempty"` // URL or file path it was read from
	Header  Header  `json:"header"`
	Entries []Entry `json:"entries"`
}
