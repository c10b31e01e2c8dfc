package utils

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// AllowedTags is the fixed set of elements kept in rendered post HTML.
var AllowedTags = []string{
	"a", "abbr", "acronym", "b", "blockquote", "code",
	"em", "i", "li", "ol", "pre", "strong", "ul",
	"h1", "h2", "h3", "p",
}

// Raw HTML is passed through the markdown stage; the policy below is what strips it.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

var sanitizer = newPostPolicy()

func newPostPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(AllowedTags...)
	p.AllowAttrs("href", "title").OnElements("a")
	p.AllowAttrs("title").OnElements("abbr", "acronym")
	p.AllowStandardURLs()
	p.RequireNoFollowOnLinks(true)
	return p
}

// Sanitize strips every element and attribute outside the post allow-list.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}

// RenderMarkdown converts markdown to HTML, sanitizes it, then links bare URLs left in
// the surviving text. The linked output goes through the policy again so every anchor
// carries rel="nofollow". The output depends only on src.
func RenderMarkdown(src string) string {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		// bytes.Buffer writes do not fail; fall back to escaping the raw text
		return Sanitize(src)
	}
	return Sanitize(Linkify(Sanitize(buf.String())))
}
