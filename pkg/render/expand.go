package render

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formfield/pkg/element"
)

// MaxDepth bounds component expansion so self-referencing components fail
// instead of recursing forever.
const MaxDepth = 64

// ErrMaxDepth is returned when component expansion exceeds MaxDepth.
var ErrMaxDepth = errors.New("render: component expansion exceeded max depth")

// Expand resolves every component node into the tag tree it renders, leaving
// only tag and text nodes.
func Expand(node element.Node) (element.Node, error) {
	return expand(node, 0)
}

func expand(node element.Node, depth int) (element.Node, error) {
	if depth > MaxDepth {
		return element.Node{}, ErrMaxDepth
	}
	if node.IsText() {
		return node, nil
	}

	if component, ok := node.Type.Component(); ok {
		rendered, err := component.Render(node.Props.Clone(), node.Children)
		if err != nil {
			return element.Node{}, fmt.Errorf("render: component %s: %w", component.Name(), err)
		}
		return expand(rendered, depth+1)
	}

	children := make([]element.Node, 0, len(node.Children))
	for _, child := range node.Children {
		expanded, err := expand(child, depth+1)
		if err != nil {
			return element.Node{}, err
		}
		children = append(children, expanded)
	}
	return element.New(node.Type, node.Props, children...), nil
}

// Components returns the names of the components referenced in the tree, in
// first-seen order. Component nodes are not expanded.
func Components(node element.Node) []string {
	var names []string
	seen := make(map[string]struct{})
	var walk func(element.Node)
	walk = func(n element.Node) {
		if component, ok := n.Type.Component(); ok {
			name := component.Name()
			if _, exists := seen[name]; !exists {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(node)
	return names
}
