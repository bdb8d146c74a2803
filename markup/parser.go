// Package markup loads uniform grid panels from an XML-ish document
// format, using golang.org/x/net/html as the underlying parser so that
// sloppy input is tolerated rather than rejected.
package markup

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/chrisuehlinger/uniformgrid/layout"
)

// Panel is a configured uniform grid together with the child elements
// declared for it.
type Panel struct {
	Grid     *layout.UniformGrid
	Children []*layout.Fixed
}

// Elements returns the panel's children as layout elements.
func (p *Panel) Elements() []layout.Element {
	elements := make([]layout.Element, len(p.Children))
	for i, child := range p.Children {
		elements[i] = child
	}
	return elements
}

// Parse parses a panel document from a string.
//
// The document must contain a <uniformgrid> element, optionally carrying
// maxrows and maxcolumns attributes. Each <item> element beneath it
// declares one child with width and height attributes; a hidden
// attribute excludes the child from sizing. Malformed numeric attributes
// fall back to their defaults rather than failing the parse.
func Parse(document string) (*Panel, error) {
	return ParseReader(strings.NewReader(document))
}

// ParseReader parses a panel document from an io.Reader.
func ParseReader(r io.Reader) (*Panel, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("markup: parse failed: %w", err)
	}

	gridNode := findElement(root, "uniformgrid")
	if gridNode == nil {
		return nil, fmt.Errorf("markup: document has no <uniformgrid> element")
	}

	panel := &Panel{Grid: layout.NewUniformGrid()}
	if n, ok := intAttr(gridNode, "maxrows"); ok {
		panel.Grid.MaxRows = n
	}
	if n, ok := intAttr(gridNode, "maxcolumns"); ok {
		panel.Grid.MaxColumns = n
	}

	// The HTML parser nests self-closing unknown elements, so items are
	// collected from the whole subtree rather than direct children only.
	collectItems(gridNode, panel)

	return panel, nil
}

func collectItems(n *html.Node, panel *Panel) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "item" {
			item := &layout.Fixed{}
			if w, ok := floatAttr(c, "width"); ok {
				item.Width = w
			}
			if h, ok := floatAttr(c, "height"); ok {
				item.Height = h
			}
			if hasAttr(c, "hidden") {
				item.Hidden = true
			}
			panel.Children = append(panel.Children, item)
		}
		collectItems(c, panel)
	}
}

// findElement returns the first element with the given tag name in
// document order, or nil.
func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

func attrValue(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attrValue(n, key)
	return ok
}

func intAttr(n *html.Node, key string) (int, bool) {
	v, ok := attrValue(n, key)
	if !ok {
		return 0, false
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func floatAttr(n *html.Node, key string) (float64, bool) {
	v, ok := attrValue(n, key)
	if !ok {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
