package collada

import (
	"strings"

	"github.com/beevik/etree"
)

// Node is one element of a COLLADA document. Attributes and child elements
// are reached through separate accessors, and the methods are safe to call
// on a nil *Node so lookups can be chained without intermediate checks.
type Node struct {
	el *etree.Element
}

// Tag returns the element name.
func (n *Node) Tag() string {
	if n == nil {
		return ""
	}
	return n.el.Tag
}

// Attr returns the value of attribute key, or "" if absent.
func (n *Node) Attr(key string) string {
	if n == nil {
		return ""
	}
	return n.el.SelectAttrValue(key, "")
}

// ID returns the id attribute.
func (n *Node) ID() string { return n.Attr("id") }

// Name returns the name attribute.
func (n *Node) Name() string { return n.Attr("name") }

// Text returns the element's character data with surrounding whitespace removed.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.el.Text())
}

// Children returns every direct child element with the given tag, in
// document order. A single child and a repeated child look the same.
func (n *Node) Children(tag string) []*Node {
	if n == nil {
		return nil
	}
	elements := n.el.SelectElements(tag)
	if len(elements) == 0 {
		return nil
	}
	nodes := make([]*Node, len(elements))
	for i, el := range elements {
		nodes[i] = &Node{el: el}
	}
	return nodes
}

// Child returns the first direct child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	if n == nil {
		return nil
	}
	el := n.el.SelectElement(tag)
	if el == nil {
		return nil
	}
	return &Node{el: el}
}

// Path descends through the given tags, collecting every match at each
// level. Path("library_visual_scenes", "visual_scene", "node") returns the
// top-level nodes of every visual scene.
func (n *Node) Path(tags ...string) []*Node {
	if n == nil {
		return nil
	}
	current := []*Node{n}
	for _, tag := range tags {
		var next []*Node
		for _, c := range current {
			next = append(next, c.Children(tag)...)
		}
		if len(next) == 0 {
			return nil
		}
		current = next
	}
	return current
}

// Floats parses the element text as whitespace-separated numbers.
func (n *Node) Floats() ([]float64, error) {
	return ParseFloats(n.Text())
}

// Ints parses the element text as whitespace-separated integers.
func (n *Node) Ints() ([]int, error) {
	return ParseInts(n.Text())
}

// Tokens splits the element text on whitespace, leaving each token as
// authored.
func (n *Node) Tokens() []string {
	return ParseNames(n.Text())
}
