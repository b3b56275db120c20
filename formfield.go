// Package formfield is the top-level entry point for rendering Semantic UI
// form fields. It re-exports the orchestrator so callers need a single import
// for the common cases.
package formfield

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-formfield/pkg/docs"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/form"
	"github.com/goliatone/go-formfield/pkg/formdoc"
	"github.com/goliatone/go-formfield/pkg/openapi"
	"github.com/goliatone/go-formfield/pkg/orchestrator"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/render/htmlrender"
)

// FieldConfig is the declared configuration of a single form field.
type FieldConfig = form.FieldConfig

// RenderOptions describes per-request settings renderers may honour.
type RenderOptions = render.RenderOptions

// Request describes one form for the orchestrator.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderField renders a single field to HTML.
func RenderField(cfg FieldConfig) (string, error) {
	node, err := form.Render(cfg)
	if err != nil {
		return "", err
	}
	return htmlrender.RenderString(node)
}

// RenderNode renders any element tree to HTML.
func RenderNode(node element.Node) (string, error) {
	return htmlrender.RenderString(node)
}

// GenerateHTML loads the OpenAPI source and renders the request body of
// operationID as a form.
func GenerateHTML(ctx context.Context, source openapi.Source, operationID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		OpenAPISource: &source,
		OperationID:   operationID,
		Renderer:      rendererName,
	})
}

// GenerateHTMLFromDocument renders a pre-loaded form document.
func GenerateHTMLFromDocument(ctx context.Context, doc formdoc.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them.
func EmbeddedTemplates() fs.FS {
	return docs.Templates()
}
