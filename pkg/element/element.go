package element

import (
	"encoding/json"
	"reflect"
	"slices"
)

// Component renders a props/children pair into another element tree. Library
// components (Checkbox, Label, FormField, ...) and caller supplied controls
// both satisfy this contract.
type Component interface {
	Name() string
	Render(props Props, children []Node) (Node, error)
}

// Type identifies what a node renders as: an HTML tag or a Component. The zero
// Type marks a text node.
type Type struct {
	tag       string
	component Component
}

// Tag returns a Type rendering as the named HTML element.
func Tag(name string) Type {
	return Type{tag: name}
}

// ComponentType returns a Type rendering through the supplied component.
func ComponentType(component Component) Type {
	return Type{component: component}
}

// IsZero reports whether the type is unset.
func (t Type) IsZero() bool {
	return t.tag == "" && t.component == nil
}

// Tag returns the HTML tag name when the type is a tag.
func (t Type) Tag() (string, bool) {
	if t.tag == "" {
		return "", false
	}
	return t.tag, true
}

// Component returns the component when the type is a component reference.
func (t Type) Component() (Component, bool) {
	if t.component == nil {
		return nil, false
	}
	return t.component, true
}

// Name returns the tag or component name.
func (t Type) Name() string {
	if t.component != nil {
		return t.component.Name()
	}
	return t.tag
}

// Is reports whether t renders through the given component.
func (t Type) Is(component Component) bool {
	if t.component == nil || component == nil {
		return false
	}
	left, right := reflect.TypeOf(t.component), reflect.TypeOf(component)
	if left != right || !left.Comparable() {
		return false
	}
	return t.component == component
}

// Node is a single element of a rendered tree. Nodes are built once per render
// and never mutated afterwards; constructors copy their inputs.
type Node struct {
	Type     Type
	Props    Props
	Children []Node
	Text     string
}

// New builds an element node.
func New(typ Type, props Props, children ...Node) Node {
	return Node{
		Type:     typ,
		Props:    props.Clone(),
		Children: slices.Clone(children),
	}
}

// Text builds a text node.
func Text(value string) Node {
	return Node{Text: value}
}

// IsText reports whether n is a text node.
func (n Node) IsText() bool {
	return n.Type.IsZero()
}

// Find returns the direct children whose type matches the given tag.
func (n Node) Find(tag string) []Node {
	var out []Node
	for _, child := range n.Children {
		if name, ok := child.Type.Tag(); ok && name == tag {
			out = append(out, child)
		}
	}
	return out
}

// TextContent concatenates all descendant text nodes.
func (n Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}
	var out string
	for _, child := range n.Children {
		out += child.TextContent()
	}
	return out
}

type nodeJSON struct {
	Tag       string         `json:"tag,omitempty"`
	Component string         `json:"component,omitempty"`
	Props     map[string]any `json:"props,omitempty"`
	Children  []Node         `json:"children,omitempty"`
	Text      string         `json:"text,omitempty"`
}

// MarshalJSON emits a stable, renderer-independent view of the node.
func (n Node) MarshalJSON() ([]byte, error) {
	if n.IsText() {
		return json.Marshal(nodeJSON{Text: n.Text})
	}
	payload := nodeJSON{Children: n.Children}
	if component, ok := n.Type.Component(); ok {
		payload.Component = component.Name()
	} else {
		payload.Tag, _ = n.Type.Tag()
	}
	if len(n.Props) > 0 {
		payload.Props = make(map[string]any, len(n.Props))
		for key, value := range n.Props {
			switch v := value.(type) {
			case Type:
				payload.Props[key] = v.Name()
			case Component:
				payload.Props[key] = v.Name()
			default:
				payload.Props[key] = value
			}
		}
	}
	return json.Marshal(payload)
}
