package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formfield/pkg/components"
	"github.com/goliatone/go-formfield/pkg/docs"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/form"
	"github.com/goliatone/go-formfield/pkg/formdoc"
	"github.com/goliatone/go-formfield/pkg/openapi"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/render/htmlrender"
	"github.com/goliatone/go-formfield/pkg/render/tree"
)

const defaultRendererName = htmlrender.Name

// ErrInvalidConfiguration is returned in strict mode when a field produces
// warnings.
var ErrInvalidConfiguration = errors.New("orchestrator: invalid field configuration")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithComponents sets the registry form documents resolve control names
// against.
func WithComponents(registry *components.Registry) Option {
	return func(o *Orchestrator) {
		o.components = registry
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrict turns field warnings into ErrInvalidConfiguration.
func WithStrict(strict bool) Option {
	return func(o *Orchestrator) {
		o.strict = strict
	}
}

// WithLoaderOptions configures how OpenAPI sources are read.
func WithLoaderOptions(options ...openapi.LoaderOption) Option {
	return func(o *Orchestrator) {
		o.loaderOptions = append(o.loaderOptions, options...)
	}
}

// Orchestrator turns a Request into rendered output. Missing dependencies are
// initialised with the built-in implementations.
type Orchestrator struct {
	registry        *render.Registry
	components      *components.Registry
	defaultRenderer string
	logger          *zap.Logger
	strict          bool
	loaderOptions   []openapi.LoaderOption
	initialiseErr   error
}

func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one form. Exactly one of Document, OpenAPI/OpenAPISource
// or Fields supplies the fields.
type Request struct {
	// Document is a parsed form document.
	Document *formdoc.Document

	// OpenAPI is a raw OpenAPI document; OpenAPISource is read when it is
	// empty. OperationID selects the operation whose request body is used.
	OpenAPI       []byte
	OpenAPISource *openapi.Source
	OperationID   string

	// Fields are used verbatim.
	Fields []form.FieldConfig

	// FormProps are applied to the Form container, on top of any document
	// settings.
	FormProps element.Props

	// Submit labels an optional submit button.
	Submit string

	// Errors is a server validation payload keyed by field path. Matching
	// fields get the error state and every message is listed in the form's
	// error message.
	Errors map[string][]string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	RenderOptions render.RenderOptions
}

// Result is the built form before rendering.
type Result struct {
	Node     element.Node
	Fields   []form.FieldConfig
	Warnings []form.Warning
	Errors   render.ErrorMapping
}

// Generate builds the form and renders it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, result.Node, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Build resolves the fields, validates them and assembles the form tree.
func (o *Orchestrator) Build(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	fields, formProps, submit, warnings, err := o.resolveFields(ctx, req)
	if err != nil {
		return Result{}, err
	}

	mapping := render.MapErrorPayload(fieldNames(fields), req.Errors)
	for idx := range fields {
		if _, failed := mapping.Fields[fields[idx].Rest.String("name")]; failed {
			fields[idx].Error = true
		}
	}

	nodes := make([]element.Node, 0, len(fields)+2)
	for _, cfg := range fields {
		fieldWarnings := form.Validate(cfg)
		form.LogWarnings(o.logger, "FormField", fieldWarnings)
		warnings = append(warnings, fieldWarnings...)

		node, err := form.Render(cfg)
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: %w", err)
		}
		nodes = append(nodes, node)
	}
	if o.strict && len(warnings) > 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidConfiguration, warnings[0])
	}

	messages := errorMessages(fields, mapping)
	if len(messages) > 0 {
		formProps = formProps.With("error", true)
		nodes = append(nodes, errorMessage(messages))
	}
	if submit != "" {
		nodes = append(nodes, submitButton(submit))
	}

	o.logger.Debug("built form",
		zap.Int("fields", len(fields)),
		zap.Int("warnings", len(warnings)),
		zap.Int("errors", len(messages)),
	)

	return Result{
		Node:     element.New(element.ComponentType(form.Form), formProps, nodes...),
		Fields:   fields,
		Warnings: warnings,
		Errors:   mapping,
	}, nil
}

func (o *Orchestrator) resolveFields(ctx context.Context, req Request) ([]form.FieldConfig, element.Props, string, []form.Warning, error) {
	sources := 0
	if req.Document != nil {
		sources++
	}
	if len(req.OpenAPI) > 0 || req.OpenAPISource != nil {
		sources++
	}
	if req.Fields != nil {
		sources++
	}
	if sources != 1 {
		return nil, nil, "", nil, errors.New("orchestrator: exactly one of document, openapi or fields is required")
	}

	formProps := element.Props{}
	submit := req.Submit
	var (
		fields   []form.FieldConfig
		warnings []form.Warning
	)

	switch {
	case req.Document != nil:
		var err error
		fields, warnings, err = req.Document.Fields(o.components)
		if err != nil {
			return nil, nil, "", nil, fmt.Errorf("orchestrator: %w", err)
		}
		formProps = req.Document.FormProps()
		if submit == "" {
			submit = req.Document.Submit
		}
	case req.Fields != nil:
		fields = make([]form.FieldConfig, len(req.Fields))
		copy(fields, req.Fields)
	default:
		if req.OperationID == "" {
			return nil, nil, "", nil, errors.New("orchestrator: operation id is required")
		}
		raw := req.OpenAPI
		if len(raw) == 0 {
			loaded, err := openapi.Load(ctx, *req.OpenAPISource, o.loaderOptions...)
			if err != nil {
				return nil, nil, "", nil, fmt.Errorf("orchestrator: %w", err)
			}
			raw = loaded
		}
		var (
			operation openapi.Operation
			err       error
		)
		fields, operation, err = openapi.FieldsFor(ctx, raw, req.OperationID)
		if err != nil {
			return nil, nil, "", nil, fmt.Errorf("orchestrator: %w", err)
		}
		// HTML forms only submit with GET or POST.
		method := "post"
		if operation.Method == "GET" {
			method = "get"
		}
		formProps = element.Props{"action": operation.Path, "method": method}
	}

	form.LogWarnings(o.logger, "FormField", warnings)
	return fields, formProps.Merge(req.FormProps), submit, warnings, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.components == nil {
		o.components = components.NewDefaultRegistry()
		if err := form.RegisterComponents(o.components, o.logger); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: register form components: %w", err)
			return
		}
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(htmlrender.New())
		o.registry.MustRegister(tree.New(tree.WithIndent("  ")))
		page, err := docs.NewPage(
			docs.WithComponentRegistry(o.components),
			docs.WithTitle("Form"),
			docs.WithLogger(o.logger),
		)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default page renderer: %w", err)
			return
		}
		o.registry.MustRegister(page)
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

func fieldNames(fields []form.FieldConfig) []string {
	names := make([]string, 0, len(fields))
	for _, cfg := range fields {
		if name := cfg.Rest.String("name"); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// errorMessages lists form level messages first, then field messages in field
// order.
func errorMessages(fields []form.FieldConfig, mapping render.ErrorMapping) []string {
	messages := append([]string(nil), mapping.Form...)
	for _, name := range fieldNames(fields) {
		messages = append(messages, mapping.Fields[name]...)
	}
	return render.MergeFormErrors(messages)
}

func errorMessage(messages []string) element.Node {
	items := make([]element.Node, 0, len(messages))
	for _, message := range messages {
		items = append(items, element.New(element.Tag("li"), nil, element.Text(message)))
	}
	return element.New(element.Tag("div"), element.Props{"className": "ui error message"},
		element.New(element.Tag("ul"), element.Props{"className": "list"}, items...),
	)
}

func submitButton(label string) element.Node {
	return element.New(element.Tag("button"),
		element.Props{"className": "ui primary button", "type": "submit"},
		element.Text(label),
	)
}
