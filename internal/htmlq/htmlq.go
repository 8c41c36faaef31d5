// Package htmlq provides the small set of document queries the e-SAJ parsers
// need: find-by-id, find-by-class and whitespace-collapsed text extraction.
// Absent elements are routine, so every lookup has a get-or-default form.
package htmlq

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse parses an HTML document. x/net/html is lenient, so real e-SAJ pages
// parse even when malformed.
func Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// ParseString is Parse over an in-memory page.
func ParseString(s string) (*html.Node, error) {
	return html.Parse(strings.NewReader(s))
}

// First walks the tree depth-first and returns the first element node
// matching pred, or nil.
func First(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := First(c, pred); found != nil {
			return found
		}
	}
	return nil
}

// All collects every element node matching pred, in document order.
func All(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Attr returns the value of the named attribute on n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether n carries class in its (space-separated) class list.
func HasClass(n *html.Node, class string) bool {
	v, ok := Attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// ByID returns the element with the given id, or nil.
func ByID(root *html.Node, id string) *html.Node {
	return First(root, func(n *html.Node) bool {
		v, ok := Attr(n, "id")
		return ok && v == id
	})
}

// ByClass returns the first element carrying the given class, or nil.
func ByClass(root *html.Node, class string) *html.Node {
	return First(root, func(n *html.Node) bool {
		return HasClass(n, class)
	})
}

// ByTag returns every element with the given tag name under root.
func ByTag(root *html.Node, tag string) []*html.Node {
	return All(root, func(n *html.Node) bool {
		return n.Data == tag
	})
}

// Text returns the concatenated text content of n with runs of whitespace
// collapsed to single spaces and the ends trimmed.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// RawText returns the concatenated text content of n without any whitespace
// normalization, for callers that care about line structure.
func RawText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// TextByID returns the text of the element with the given id, or def when
// the element is missing.
func TextByID(root *html.Node, id, def string) string {
	if n := ByID(root, id); n != nil {
		if t := Text(n); t != "" {
			return t
		}
	}
	return def
}

// TextByClass returns the text of the first element with the given class,
// or def when it is missing.
func TextByClass(root *html.Node, class, def string) string {
	if n := ByClass(root, class); n != nil {
		if t := Text(n); t != "" {
			return t
		}
	}
	return def
}
