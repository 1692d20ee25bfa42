package json

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"testing"

	"github.com/sonnes/rssr/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, fn func(r *Renderer)) string {
	t.Helper()
	var buf bytes.Buffer
	r := New(&buf)
	fn(r)
	require.NoError(t, r.Exit())

	out := buf.String()
	assert.True(t, stdjson.Valid(bytes.TrimSpace(buf.Bytes())), "invalid JSON: %s", out)
	return out
}

func TestRenderFeedStart(t *testing.T) {
	tests := []struct {
		name   string
		header core.Header
		want   string
	}{
		{
			name:   "empty",
			header: core.Header{"other": "other"},
			want:   `[{"entries": []}]` + "\n",
		},
		{
			name:   "exact",
			header: core.Header{"title": "test"},
			want:   `[{"title": "test", "entries": []}]` + "\n",
		},
		{
			name:   "reduced",
			header: core.Header{"title": "test", "other": "other"},
			want:   `[{"title": "test", "entries": []}]` + "\n",
		},
		{
			name:   "title not normalized",
			header: core.Header{"title": "it&#39;s "},
			want:   `[{"title": "it&#39;s ", "entries": []}]` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, func(r *Renderer) {
				r.FeedStart(tt.header)
				r.FeedEnd()
			})
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderFeedEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry core.Entry
		want  string
	}{
		{
			name:  "empty",
			entry: core.Entry{"other": "other"},
			want:  `[{"entries": []}]` + "\n",
		},
		{
			name:  "title",
			entry: core.Entry{"title": "test"},
			want:  `[{"entries": [{"title": "test"}]}]` + "\n",
		},
		{
			name:  "title_len_0",
			entry: core.Entry{"title": ""},
			want:  `[{"entries": [{"title": ""}]}]` + "\n",
		},
		{
			name:  "title_reduced",
			entry: core.Entry{"title": "test'&#x27;&nbsp;&#160;\u2019\u00a0", "other": "other"},
			want:  `[{"entries": [{"title": "test''  \u2019"}]}]` + "\n",
		},
		{
			name:  "published",
			entry: core.Entry{"published": "2020-01-02"},
			want:  `[{"entries": [{"published": "2020-01-02"}]}]` + "\n",
		},
		{
			name:  "link",
			entry: core.Entry{"link": "http://one.com"},
			want:  `[{"entries": [{"link": "http://one.com"}]}]` + "\n",
		},
		{
			name:  "description",
			entry: core.Entry{"description": "Test news"},
			want:  `[{"entries": [{"description": "Test news"}]}]` + "\n",
		},
		{
			name: "all",
			entry: core.Entry{
				"description": "Test news",
				"link":        "http://many.com",
				"published":   "2020-01-02",
				"title":       "test",
			},
			want: `[{"entries": [{"title": "test", "published": "2020-01-02", "link": ` +
				`"http://many.com", "description": "Test news"}]}]` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, func(r *Renderer) {
				r.FeedEntry(tt.entry)
				r.FeedEnd()
			})
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderFull(t *testing.T) {
	out := render(t, func(r *Renderer) {
		r.FeedStart(core.Header{"title": "feed for test"})
		r.FeedEntry(core.Entry{
			"title":       "item 1",
			"published":   "2020-01-02",
			"link":        "http://somewhere.com/news1",
			"description": "something happened",
		})
		r.FeedEntry(core.Entry{
			"title":       "item 2",
			"published":   "2021-01-02",
			"link":        "http://somewhere.com/news2",
			"description": "something new happened",
		})
		r.FeedEnd()
	})

	want := `[{"title": "feed for test", "entries": [{"title": "item 1", "published": ` +
		`"2020-01-02", "link": "http://somewhere.com/news1", "description": ` +
		`"something happened"}, {"title": "item 2", "published": "2021-01-02", ` +
		`"link": "http://somewhere.com/news2", "description": ` +
		`"something new happened"}]}]` + "\n"
	assert.Equal(t, want, out)
}

func TestRenderMultipleFeeds(t *testing.T) {
	out := render(t, func(r *Renderer) {
		r.FeedStart(core.Header{"title": "first"})
		r.FeedEntry(core.Entry{"link": "http://a.com"})
		r.FeedEnd()
		r.FeedStart(core.Header{})
		r.FeedEnd()
		r.FeedStart(core.Header{"title": "third"})
		r.FeedEntry(core.Entry{"link": "http://b.com"})
		r.FeedEntry(core.Entry{"link": "http://c.com"})
		r.FeedEnd()
	})

	want := `[{"title": "first", "entries": [{"link": "http://a.com"}]}, ` +
		`{"entries": []}, ` +
		`{"title": "third", "entries": [{"link": "http://b.com"}, {"link": "http://c.com"}]}]` + "\n"
	assert.Equal(t, want, out)
}

func TestRenderExitWithoutFeeds(t *testing.T) {
	out := render(t, func(r *Renderer) {})
	assert.Equal(t, "[]\n", out)
}

func TestRenderWritesNothingBeforeExit(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.FeedStart(core.Header{"title": "test"})
	r.FeedEntry(core.Entry{"title": "entry"})
	r.FeedEnd()

	assert.Zero(t, buf.Len())
}

func TestRenderEscaping(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "quote and backslash", in: `say "hi" \o/`, want: `"say \"hi\" \\o/"`},
		{name: "newline and tab", in: "a\nb\tc", want: `"a\nb\tc"`},
		{name: "control character", in: "bell\x07", want: `"bell\u0007"`},
		{name: "latin", in: "café", want: `"caf\u00e9"`},
		{name: "non-breaking space", in: "a\u00a0b", want: `"a\u00a0b"`},
		{name: "astral plane", in: "\U0001F600", want: `"\ud83d\ude00"`},
		{name: "invalid utf8", in: "a\xffb", want: `"a\ufffdb"`},
		{name: "html left alone", in: "<b>&amp;</b>", want: `"<b>&amp;</b>"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, func(r *Renderer) {
				r.FeedEntry(core.Entry{"link": tt.in})
			})
			assert.Equal(t, `[{"entries": [{"link": `+tt.want+`}]}]`+"\n", out)

			var doc []struct {
				Entries []map[string]string `json:"entries"`
			}
			require.NoError(t, stdjson.Unmarshal([]byte(out), &doc))
			if tt.name != "invalid utf8" {
				assert.Equal(t, tt.in, doc[0].Entries[0]["link"])
			}
		})
	}
}

func TestRenderOutputIsASCII(t *testing.T) {
	out := render(t, func(r *Renderer) {
		r.FeedStart(core.Header{"title": "Überschrift"})
		r.FeedEntry(core.Entry{"title": "\u2019quoted\u2019", "description": "日本語"})
	})
	for i := 0; i < len(out); i++ {
		assert.Less(t, out[i], byte(0x80), "non-ASCII byte at %d", i)
	}
}

func TestRenderEntryFieldsMatchInput(t *testing.T) {
	keys := core.EntryKeys
	for mask := 0; mask < 1<<len(keys); mask++ {
		entry := core.Entry{"other": "x"}
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				entry[k] = k + " value"
			}
		}

		out := render(t, func(r *Renderer) { r.FeedEntry(entry) })

		var doc []struct {
			Entries []map[string]string `json:"entries"`
		}
		require.NoError(t, stdjson.Unmarshal([]byte(out), &doc))
		require.Len(t, doc, 1)
		if mask == 0 {
			assert.Empty(t, doc[0].Entries)
			continue
		}
		require.Len(t, doc[0].Entries, 1)

		got := doc[0].Entries[0]
		assert.Len(t, got, len(entry)-1, "mask %b", mask)
		for k, v := range got {
			assert.Equal(t, entry[k], v)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderExitWriteError(t *testing.T) {
	r := New(failingWriter{})
	r.FeedStart(core.Header{"title": "test"})
	assert.EqualError(t, r.Exit(), "disk full")
}
