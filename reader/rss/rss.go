// Package rss reads RSS, Atom and JSON feeds from URLs or local files.
package rss

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mmcdole/gofeed"
	"github.com/sonnes/rssr/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "rssr/1.0 RSS Reader"
)

// Reader fetches feeds over HTTP or from disk and parses them with gofeed.
type Reader struct {
	// Client overrides the HTTP client. Nil means a client with Timeout.
	Client *http.Client

	// Timeout bounds each HTTP fetch when Client is nil. Zero means 30s.
	Timeout time.Duration

	// UserAgent overrides the User-Agent header sent with requests.
	UserAgent string
}

// New creates a Reader with the given fetch timeout.
func New(timeout time.Duration) *Reader {
	return &Reader{Timeout: timeout}
}

// Read implements reader.Reader. Sources starting with http:// or https://
// are fetched; anything else is opened as a file.
func (r *Reader) Read(ctx context.Context, source string) (*core.Feed, error) {
	log.Debug("reading feed", "source", source)

	var (
		feed *gofeed.Feed
		err  error
	)
	if isURL(source) {
		feed, err = r.fetch(ctx, source)
	} else {
		feed, err = r.readFile(strings.TrimPrefix(source, "file://"))
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	f := convert(feed)
	f.Source = source
	log.Debug("parsed feed", "source", source, "type", feed.FeedType, "entries", len(f.Entries))
	return f, nil
}

func (r *Reader) fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", r.userAgent())

	resp, err := r.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return parse(resp.Body)
}

func (r *Reader) readFile(path string) (*gofeed.Feed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parse(f)
}

func (r *Reader) client() *http.Client {
	if r.Client != nil {
		return r.Client
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func (r *Reader) userAgent() string {
	if r.UserAgent != "" {
		return r.UserAgent
	}
	return defaultUserAgent
}

func parse(body io.Reader) (*gofeed.Feed, error) {
	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}

// convert maps a parsed feed onto header and entry fields. Empty values are
// treated as absent.
func convert(feed *gofeed.Feed) *core.Feed {
	f := &core.Feed{
		Header:  core.Header{},
		Entries: make([]core.Entry, 0, len(feed.Items)),
	}
	if feed.Title != "" {
		f.Header[core.KeyTitle] = feed.Title
	}

	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		e := core.Entry{}
		set(e, core.KeyTitle, item.Title)
		set(e, core.KeyPublished, cmp.Or(item.Published, item.Updated))
		set(e, core.KeyLink, item.Link)
		set(e, core.KeyDescription, cmp.Or(item.Description, item.Content))
		f.Entries = append(f.Entries, e)
	}
	return f
}

func set(e core.Entry, key, value string) {
	if value != "" {
		e[key] = value
	}
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
