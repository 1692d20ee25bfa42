// Package terminal renders feeds as ANSI-colored entry cards.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/sonnes/rssr/core"
)

const defaultWidth = 100

// Renderer pretty-prints feeds as entry cards as they arrive. Unlike the
// text renderer it keeps Unicode intact and strips markup from descriptions.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int

	w       io.Writer
	err     error
	entries int // cards written for the current feed
}

// New creates a terminal Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// FeedStart writes the feed title banner, if the header has a title.
func (r *Renderer) FeedStart(h core.Header) {
	r.entries = 0
	title, ok := h.Title()
	if !ok || title == "" {
		return
	}
	width := r.termWidth()
	r.println(styleFeed.Render(truncate(title, width)))
	r.println(styleSeparator.Render(strings.Repeat("═", min(lipgloss.Width(title), width, 72))))
}

// FeedEntry writes one entry card: separator, title, metadata and the
// description wrapped to the terminal width.
func (r *Renderer) FeedEntry(e core.Entry) {
	width := r.termWidth()
	contentWidth := max(width-4, 40)

	var lines []string
	if v, ok := e.Get(core.KeyTitle); ok {
		if title := core.Normalize(v); title != "" {
			lines = append(lines, styleTitle.Render(truncate(title, contentWidth)))
		}
	}

	var meta []string
	if v, ok := e.Get(core.KeyPublished); ok && v != "" {
		meta = append(meta, styleMeta.Render(v))
	}
	if v, ok := e.Get(core.KeyLink); ok && v != "" {
		meta = append(meta, styleLink.Render(v))
	}
	if len(meta) > 0 {
		lines = append(lines, strings.Join(meta, "    "))
	}

	if v, ok := e.Get(core.KeyDescription); ok {
		if desc := core.StripMarkup(core.Normalize(v)); desc != "" {
			lines = append(lines, "")
			for _, l := range strings.Split(ansi.Wordwrap(desc, contentWidth, ""), "\n") {
				lines = append(lines, styleBody.Render(l))
			}
		}
	}

	if len(lines) == 0 {
		return
	}
	r.entries++

	writeSeparator(r, width)
	r.println("")
	for _, line := range lines {
		r.println("  " + line)
	}
}

// FeedEnd writes the number of entry cards written for the feed.
func (r *Renderer) FeedEnd() {
	noun := "entries"
	if r.entries == 1 {
		noun = "entry"
	}
	r.println("")
	r.println(styleMeta.Render(fmt.Sprintf("%s %s", formatNumber(r.entries), noun)))
	r.println("")
}

// Exit reports the first write error, if any.
func (r *Renderer) Exit() error {
	return r.err
}

func (r *Renderer) println(s string) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintln(r.w, s)
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if f, ok := r.w.(*os.File); ok {
		if w, _, err := term.GetSize(f.Fd()); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

// writeSeparator renders a horizontal rule.
func writeSeparator(r *Renderer, width int) {
	n := min(width, 72)
	r.println("")
	r.println(styleSeparator.Render(strings.Repeat("─", n)))
}

// truncate shortens text to maxWidth, appending "..." if needed.
// Multi-line text is reduced to the first line.
func truncate(s string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + "," + fmt.Sprintf("%03d", n%1000)
}
