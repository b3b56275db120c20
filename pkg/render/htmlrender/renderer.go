// Package htmlrender serialises element trees to HTML using the
// golang.org/x/net/html node model, with optional bluemonday sanitisation.
package htmlrender

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/render"
)

// Name is the registry key of the HTML renderer.
const Name = "html"

// Option configures a Renderer.
type Option func(*Renderer)

// WithPolicy replaces the sanitiser used when sanitisation is requested.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// WithAlwaysSanitize sanitises every render regardless of RenderOptions.
func WithAlwaysSanitize() Option {
	return func(r *Renderer) {
		r.alwaysSanitize = true
	}
}

// Renderer writes expanded element trees as HTML fragments.
type Renderer struct {
	policy         *bluemonday.Policy
	alwaysSanitize bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.policy == nil {
		r.policy = DefaultPolicy()
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, node element.Node, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	expanded, err := render.Expand(node)
	if err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, ToNode(expanded)); err != nil {
		return nil, fmt.Errorf("html renderer: write markup: %w", err)
	}

	if r.alwaysSanitize || options.Sanitize {
		return r.policy.SanitizeBytes(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// RenderString renders node with default options.
func RenderString(node element.Node) (string, error) {
	out, err := New().Render(context.Background(), node, render.RenderOptions{})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ToNode converts an expanded element tree into an html.Node. Component nodes
// must be expanded first; any left over are skipped. Children of void
// elements are dropped.
func ToNode(node element.Node) *html.Node {
	if node.IsText() {
		return &html.Node{Type: html.TextNode, Data: node.Text}
	}
	tag, ok := node.Type.Tag()
	if !ok {
		return &html.Node{Type: html.TextNode}
	}

	out := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     Attributes(node.Props),
	}
	if voidElements[tag] {
		return out
	}
	for _, child := range node.Children {
		if _, isComponent := child.Type.Component(); isComponent {
			continue
		}
		out.AppendChild(ToNode(child))
	}
	return out
}

// Attributes maps props to HTML attributes sorted by name. React style names
// are lowered (className to class, htmlFor to for, tabIndex to tabindex),
// booleans become present/absent attributes and non-serialisable values are
// dropped.
func Attributes(props element.Props) []html.Attribute {
	attrs := make([]html.Attribute, 0, len(props))
	for _, key := range props.Keys() {
		value, ok := attributeValue(props[key])
		if !ok {
			continue
		}
		name := attributeName(key)
		if name == "class" && strings.TrimSpace(value) == "" {
			continue
		}
		attrs = append(attrs, html.Attribute{Key: name, Val: value})
	}
	slices.SortStableFunc(attrs, func(a, b html.Attribute) int {
		return strings.Compare(a.Key, b.Key)
	})
	return attrs
}

func attributeName(key string) string {
	switch key {
	case "className":
		return "class"
	case "htmlFor":
		return "for"
	}
	if strings.Contains(key, "-") {
		return key
	}
	return strings.ToLower(key)
}

func attributeValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case bool:
		return "", v
	case string:
		return v, true
	case []string:
		return strings.Join(v, " "), true
	case element.Type, element.Component, []element.Node, element.Node:
		return "", false
	case fmt.Stringer:
		return v.String(), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v), true
	default:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
			return rv.String(), true
		}
		return "", false
	}
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}
