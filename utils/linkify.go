package utils

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"mvdan.cc/xurls/v2"
)

var bareURL = xurls.Relaxed()

// Linkify wraps bare URLs found in the text of an HTML fragment in anchors.
// Text inside a, pre and code elements is left as is. Scheme-less matches get http://,
// and bare email addresses are not linked.
func Linkify(fragment string) string {
	if fragment == "" {
		return ""
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return fragment
	}
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	linkifyChildren(root)

	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return fragment
		}
	}
	return b.String()
}

func linkifyChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch c.Type {
		case html.TextNode:
			linkifyText(c)
		case html.ElementNode:
			switch c.DataAtom {
			case atom.A, atom.Pre, atom.Code:
			default:
				linkifyChildren(c)
			}
		}
		c = next
	}
}

// linkifyText splits t around each URL match, inserting the pieces before t.
func linkifyText(t *html.Node) {
	text := t.Data
	last, linked := 0, false
	for _, m := range bareURL.FindAllStringIndex(text, -1) {
		u := text[m[0]:m[1]]
		if strings.Contains(u, "@") && !strings.Contains(u, "://") {
			continue
		}
		if m[0] > last {
			t.Parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text[last:m[0]]}, t)
		}
		t.Parent.InsertBefore(anchor(u), t)
		last, linked = m[1], true
	}
	if !linked {
		return
	}
	if last == len(text) {
		t.Parent.RemoveChild(t)
		return
	}
	t.Data = text[last:]
}

func anchor(u string) *html.Node {
	href := u
	if !strings.Contains(u, "://") {
		href = "http://" + u
	}
	a := &html.Node{
		Type:     html.ElementNode,
		Data:     "a",
		DataAtom: atom.A,
		Attr:     []html.Attribute{{Key: "href", Val: href}},
	}
	a.AppendChild(&html.Node{Type: html.TextNode, Data: u})
	return a
}
