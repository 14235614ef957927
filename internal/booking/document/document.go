package document

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
)

var ErrMissingRootElement = errors.New("document has no root element")

// Node is an element of a loaded request document. Paths given to Query are
// XPath expressions evaluated relative to the node.
type Node struct {
	node *xmlquery.Node
}

func (n Node) Name() string {
	return n.node.Data
}

// Text returns the trimmed text content of the element.
func (n Node) Text() string {
	return strings.TrimSpace(n.node.InnerText())
}

// Attr returns the attribute value and whether the attribute is declared at all.
func (n Node) Attr(name string) (string, bool) {
	for _, attr := range n.node.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}

	return "", false
}

func (n Node) Query(path string) []Node {
	found := xmlquery.Find(n.node, path)

	nodes := make([]Node, len(found))
	for i, node := range found {
		nodes[i] = Node{node: node}
	}

	return nodes
}

// First returns the first node matching path.
func (n Node) First(path string) (Node, bool) {
	node := xmlquery.FindOne(n.node, path)
	if node == nil {
		return Node{}, false
	}

	return Node{node: node}, true
}

type Loader struct{}

func (Loader) Load(raw []byte) (Node, error) {
	return Load(raw)
}

// Load parses raw XML and returns its root element.
func Load(raw []byte) (Node, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(raw))
	if err != nil {
		return Node{}, fmt.Errorf("parsing document: %w", err)
	}

	for child := doc.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return Node{node: child}, nil
		}
	}

	return Node{}, ErrMissingRootElement
}
