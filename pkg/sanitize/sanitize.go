// Package sanitize reduces practitioner-authored HTML to a fixed allow-list
// of formatting, block, link, table and image markup. The transform is pure
// and idempotent; report content is always stored as its output.
package sanitize

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var allowedElements = map[string]bool{
	// formatting
	"b": true, "i": true, "u": true, "s": true, "em": true, "strong": true,
	"small": true, "big": true, "sub": true, "sup": true, "ins": true,
	"del": true, "strike": true, "tt": true, "code": true, "span": true,
	"br": true,
	// blocks
	"p": true, "div": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "ul": true, "ol": true, "li": true,
	"blockquote": true,
	// links and images
	"a": true, "img": true,
	// tables
	"table": true, "thead": true, "tbody": true, "tfoot": true, "tr": true,
	"td": true, "th": true, "caption": true, "colgroup": true, "col": true,
}

// Elements whose text content is active or meaningless on its own; these are
// removed together with their whole subtree instead of being unwrapped.
var removedWithContent = map[string]bool{
	"script": true, "style": true, "iframe": true, "object": true,
	"embed": true, "noscript": true, "textarea": true, "title": true,
	"svg": true, "math": true, "form": true, "select": true, "option": true,
}

var linkSchemes = map[string]bool{"http": true, "https": true, "mailto": true, "": true}
var imageSchemes = map[string]bool{"http": true, "https": true, "data": true, "": true}

// Content sanitizes an HTML fragment. Invalid markup that the parser cannot
// make sense of degrades to text; nil input degrades to the empty string.
func Content(input string) string {
	parent := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(input), parent)
	if err != nil {
		return ""
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
	cleanChildren(parent)

	var buf bytes.Buffer
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

func cleanChildren(parent *html.Node) {
	c := parent.FirstChild
	for c != nil {
		next := c.NextSibling
		switch c.Type {
		case html.TextNode:
			// kept as-is; the renderer escapes it
		case html.ElementNode:
			name := strings.ToLower(c.Data)
			switch {
			case removedWithContent[name]:
				parent.RemoveChild(c)
			case !allowedElements[name]:
				// Unknown but harmless element: keep its children in place.
				if first := unwrap(parent, c); first != nil {
					next = first
				}
			default:
				filterAttributes(c)
				cleanChildren(c)
			}
		default:
			// comments, doctypes, raw nodes
			parent.RemoveChild(c)
		}
		c = next
	}
}

// unwrap hoists the children of c in front of it and removes c, returning the
// first hoisted child so the caller can re-visit them.
func unwrap(parent, c *html.Node) *html.Node {
	var first *html.Node
	for c.FirstChild != nil {
		gc := c.FirstChild
		c.RemoveChild(gc)
		parent.InsertBefore(gc, c)
		if first == nil {
			first = gc
		}
	}
	parent.RemoveChild(c)
	return first
}

func filterAttributes(n *html.Node) {
	name := strings.ToLower(n.Data)
	kept := n.Attr[:0]
	hasHref := false
	for _, attr := range n.Attr {
		if attr.Namespace != "" {
			continue
		}
		key := strings.ToLower(attr.Key)
		switch {
		case key == "style":
			kept = append(kept, html.Attribute{Key: key, Val: attr.Val})
		case name == "a" && key == "href" && urlAllowed(attr.Val, linkSchemes):
			kept = append(kept, html.Attribute{Key: key, Val: attr.Val})
			hasHref = true
		case name == "img" && key == "alt":
			kept = append(kept, html.Attribute{Key: key, Val: attr.Val})
		case name == "img" && key == "src" && urlAllowed(attr.Val, imageSchemes):
			kept = append(kept, html.Attribute{Key: key, Val: attr.Val})
		case name == "img" && (key == "border" || key == "height" || key == "width"):
			if v, ok := integerValue(attr.Val); ok {
				kept = append(kept, html.Attribute{Key: key, Val: v})
			}
		}
	}
	n.Attr = kept
	if hasHref {
		n.Attr = setAttr(n.Attr, "rel", "nofollow")
	}
}

func setAttr(attrs []html.Attribute, key, val string) []html.Attribute {
	for i := range attrs {
		if attrs[i].Key == key {
			attrs[i].Val = val
			return attrs
		}
	}
	return append(attrs, html.Attribute{Key: key, Val: val})
}

func urlAllowed(raw string, schemes map[string]bool) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return schemes[strings.ToLower(u.Scheme)]
}

// integerValue enforces the numeric attribute policy: digits pass through, a
// value with a decimal point is truncated at the point, anything else is
// dropped entirely.
func integerValue(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	for i, ch := range value {
		if ch == '.' {
			if i == 0 {
				return "", false
			}
			return value[:i], true
		}
		if ch < '0' || ch > '9' {
			return "", false
		}
	}
	return value, true
}
