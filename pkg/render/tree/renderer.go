// Package tree renders element trees as JSON for snapshots and debugging.
package tree

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/render"
)

// Name is the registry key of the tree renderer.
const Name = "tree"

type Option func(*Renderer)

// WithIndent pretty prints the output using indent per level.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// WithExpand resolves component nodes before encoding so the output shows the
// final tag tree.
func WithExpand() Option {
	return func(r *Renderer) {
		r.expand = true
	}
}

// Renderer encodes the element tree as JSON. Components are shown by name
// unless WithExpand is set.
type Renderer struct {
	indent string
	expand bool
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, node element.Node, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.expand {
		expanded, err := render.Expand(node)
		if err != nil {
			return nil, fmt.Errorf("tree renderer: %w", err)
		}
		node = expanded
	}

	var (
		out []byte
		err error
	)
	if r.indent != "" {
		out, err = json.MarshalIndent(node, "", r.indent)
	} else {
		out, err = json.Marshal(node)
	}
	if err != nil {
		return nil, fmt.Errorf("tree renderer: encode: %w", err)
	}
	return out, nil
}
