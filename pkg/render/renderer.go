package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfield/pkg/element"
)

// Renderer converts an element tree into a byte representation (HTML, JSON).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, node element.Node, options RenderOptions) ([]byte, error)
}

// RenderOptions carry per-request settings renderers may honour.
type RenderOptions struct {
	// Theme exposes the selected theme so page level renderers can resolve
	// stylesheets and CSS variables.
	Theme *theme.RendererConfig
	// Sanitize requests that HTML renderers strip markup outside their
	// allow-list before returning.
	Sanitize bool
}
