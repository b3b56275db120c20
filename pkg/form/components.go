package form

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-formfield/pkg/classnames"
	"github.com/goliatone/go-formfield/pkg/components"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/props"
	"github.com/goliatone/go-formfield/pkg/sui"
)

// FieldComponent exposes Render as an element.Component so fields can be
// nested in larger trees. Configuration warnings go to Logger when set.
type FieldComponent struct {
	Logger *zap.Logger
}

// Field is the FormField component without warning output.
var Field element.Component = FieldComponent{}

func (FieldComponent) Name() string { return "FormField" }

func (c FieldComponent) Render(p element.Props, children []element.Node) (element.Node, error) {
	cfg, warnings := FromProps(p)
	if len(children) > 0 {
		cfg.Children = children
	}
	LogWarnings(c.Logger, c.Name(), append(warnings, Validate(cfg)...))
	return Render(cfg)
}

var formDeclared = []string{
	"as", "children", "className", "error", "loading", "size", "success", "warning",
}

type formComponent struct{}

// Form is the container for fields. Its state flags toggle the visibility of
// nested messages.
var Form element.Component = formComponent{}

func (formComponent) Name() string { return "Form" }

func (formComponent) Render(p element.Props, children []element.Node) (element.Node, error) {
	size := p.String("size")
	if !sui.Contains(sui.Sizes, size) {
		size = ""
	}
	classes := classnames.Join(
		"ui",
		size,
		classnames.KeyOnly(p.Bool("error"), "error"),
		classnames.KeyOnly(p.Bool("loading"), "loading"),
		classnames.KeyOnly(p.Bool("success"), "success"),
		classnames.KeyOnly(p.Bool("warning"), "warning"),
		"form",
		p.String("className"),
	)
	rest := props.Unhandled(p, formDeclared).With("className", classes)
	return element.New(props.ElementType(element.Tag("form"), p), rest, children...), nil
}

// RegisterComponents adds the field and form components to registry.
func RegisterComponents(registry *components.Registry, logger *zap.Logger) error {
	if err := registry.Register(components.NameField, components.Descriptor{
		Component:   FieldComponent{Logger: logger},
		Stylesheets: []string{components.DefaultStylesheet},
	}); err != nil {
		return err
	}
	return registry.Register(components.NameForm, components.Descriptor{
		Component:   Form,
		Stylesheets: []string{components.DefaultStylesheet},
	})
}
