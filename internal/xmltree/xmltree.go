// =============================================================================
// xml-suite - XML Tree Parser
// =============================================================================
//
// This module parses an XML document into a lightweight mutable tree. Both
// schema inference and validation need to walk arbitrary filter documents
// whose shape is unknown at compile time, so encoding/xml struct mapping is
// not an option; instead the token stream is folded into generic nodes.
//
// =============================================================================

package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// =============================================================================
// NODE MODEL
// =============================================================================

// Node is a single element in a parsed XML document.
type Node struct {
	// Name is the element's local name.
	Name string

	// Attributes maps attribute names to their values.
	Attributes map[string]string

	// AttrOrder preserves the document order of attributes.
	AttrOrder []string

	// Text is the element's character data, whitespace-trimmed.
	// Empty for elements that only contain children.
	Text string

	// Children are the child elements in document order.
	Children []*Node
}

// Attr returns the value of the named attribute and whether it was present.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attributes[name]
	return v, ok
}

// ChildrenNamed returns all direct children with the given name.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// =============================================================================
// PARSING
// =============================================================================

// ParseFile parses the XML document at path and returns its root node.
func ParseFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer f.Close()

	root, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return root, nil
}

// Parse reads an XML document from r and returns its root node.
func Parse(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)

	var root *Node
	var stack []*Node

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &Node{
				Name:       t.Name.Local,
				Attributes: make(map[string]string),
			}
			for _, attr := range t.Attr {
				// Namespace declarations are not part of the document model.
				if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
					continue
				}
				node.Attributes[attr.Name.Local] = attr.Value
				node.AttrOrder = append(node.AttrOrder, attr.Name.Local)
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements: %s and %s", root.Name, node.Name)
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}

			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected closing element </%s>", t.Name.Local)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				text := strings.TrimSpace(string(t))
				if text != "" {
					stack[len(stack)-1].Text += text
				}
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("document contains no elements")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("unclosed element <%s>", stack[len(stack)-1].Name)
	}

	return root, nil
}
