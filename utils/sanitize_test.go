package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdownKeepsAllowedMarkup(t *testing.T) {
	out := RenderMarkdown("**bold** <script>alert(1)</script>")
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.NotContains(t, out, "<script")
}

func TestRenderMarkdownStripsDisallowed(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		absent   []string
		contains []string
	}{
		{
			name:     "block html",
			in:       `<div class="x">hello</div>`,
			absent:   []string{"<div", "class="},
			contains: []string{"hello"},
		},
		{
			name:     "heading below h3",
			in:       "#### four",
			absent:   []string{"<h4>"},
			contains: []string{"four"},
		},
		{
			name:     "event handler attribute",
			in:       `<a href="http://example.com" onclick="evil()">x</a>`,
			absent:   []string{"onclick"},
			contains: []string{`href="http://example.com"`},
		},
		{
			name:   "javascript url",
			in:     "[x](javascript:alert(1))",
			absent: []string{"javascript:"},
		},
		{
			name:   "image",
			in:     "![alt](http://example.com/a.png)",
			absent: []string{"<img"},
		},
		{
			name:     "heading and list",
			in:       "# Title\n\n- one\n- two",
			contains: []string{"<h1>Title</h1>", "<ul>", "<li>one</li>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderMarkdown(tt.in)
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestRenderMarkdownLinksBareURLs(t *testing.T) {
	out := RenderMarkdown("read https://example.com/post today")
	assert.Contains(t, out, `href="https://example.com/post"`)
	assert.Contains(t, out, `rel="nofollow"`)
}

func TestRenderMarkdownIsDeterministic(t *testing.T) {
	src := "## Notes\n\n> quoted *text*\n\n    code block\n\nsee www.example.com"
	assert.Equal(t, RenderMarkdown(src), RenderMarkdown(src))
}

func TestRenderMarkdownEmpty(t *testing.T) {
	assert.Equal(t, "", RenderMarkdown(""))
}
