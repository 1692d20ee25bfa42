package core

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// entityReplacer resolves the HTML entities feeds commonly leave in titles
// and descriptions. Non-breaking space entities become a regular space.
var entityReplacer = strings.NewReplacer(
	"&#x27;", "'",
	"&#X27;", "'",
	"&#39;", "'",
	"&#039;", "'",
	"&nbsp;", " ",
	"&#160;", " ",
	"&#xa0;", " ",
	"&#xA0;", " ",
)

// Normalize resolves apostrophe and non-breaking space entities and trims
// Unicode whitespace (including U+00A0) from both ends. Other characters,
// such as U+2019, are left for the renderer's output encoding to handle.
//
// Trimming matches the established output for a title ending in a literal
// U+00A0: "test'&#x27;&nbsp;&#160;\u2019\u00a0" renders as "test''  \u2019"
// in JSON and "test''  ???" as text. Interior whitespace is never touched.
//
// Normalize is idempotent: replacements never produce '&' or ';', so no
// entity survives a pass.
func Normalize(s string) string {
	return strings.TrimSpace(entityReplacer.Replace(s))
}

// blankLinesRE matches runs of three or more newlines, possibly separated by
// horizontal whitespace.
var blankLinesRE = regexp.MustCompile(`\n[ \t]*(\n[ \t]*)+\n`)

// StripMarkup converts an HTML fragment to plain text. Script and style
// bodies and comments are dropped, entities are decoded, <br> and block
// boundaries become newlines, and long runs of blank lines are collapsed.
func StripMarkup(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	doc.Find("script, style, noscript, template").Remove()
	doc.Find("br").Each(func(_ int, sel *goquery.Selection) {
		sel.ReplaceWithNodes(newline())
	})
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, blockquote, pre, tr").Each(func(_ int, sel *goquery.Selection) {
		sel.PrependNodes(newline())
		sel.AppendNodes(newline())
	})

	text := blankLinesRE.ReplaceAllString(doc.Find("body").Text(), "\n\n")
	return strings.TrimSpace(text)
}

func newline() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}
