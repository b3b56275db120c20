package components

import (
	"github.com/goliatone/go-formfield/pkg/classnames"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/props"
)

// checkboxDeclared are consumed by the checkbox itself; anything else lands on the
// wrapper element.
var checkboxDeclared = []string{
	"as", "checked", "children", "className", "disabled", "id", "label",
	"name", "radio", "readOnly", "slider", "tabIndex", "toggle", "type", "value",
}

type checkbox struct {
	radio bool
}

var (
	// Checkbox renders a Semantic UI checkbox: a hidden native input followed
	// by its own label.
	Checkbox element.Component = checkbox{}
	// Radio is a Checkbox fixed to radio semantics.
	Radio element.Component = checkbox{radio: true}
)

// OwnsLabel reports whether the component renders its label internally and
// therefore expects "label" as a prop rather than a sibling node.
func OwnsLabel(component element.Component) bool {
	typ := element.ComponentType(component)
	return typ.Is(Checkbox) || typ.Is(Radio)
}

func (c checkbox) Name() string {
	if c.radio {
		return "Radio"
	}
	return "Checkbox"
}

func (c checkbox) Render(p element.Props, _ []element.Node) (element.Node, error) {
	radio := c.radio || p.Bool("radio")
	label := p.String("label")

	inputType := p.String("type")
	if inputType == "" {
		inputType = "checkbox"
		if radio {
			inputType = "radio"
		}
	}

	classes := classnames.Join(
		"ui",
		classnames.KeyOnly(p.Bool("checked"), "checked"),
		classnames.KeyOnly(p.Bool("disabled"), "disabled"),
		classnames.KeyOnly(label == "", "fitted"),
		classnames.KeyOnly(radio, "radio"),
		classnames.KeyOnly(p.Bool("readOnly"), "read-only"),
		classnames.KeyOnly(p.Bool("slider"), "slider"),
		classnames.KeyOnly(p.Bool("toggle"), "toggle"),
		"checkbox",
		p.String("className"),
	)

	input := element.Props{
		"className": "hidden",
		"type":      inputType,
	}
	for _, key := range []string{"id", "name", "value", "tabIndex"} {
		if value := p.String(key); value != "" {
			input[key] = value
		}
	}
	for _, key := range []string{"checked", "disabled", "readOnly"} {
		if p.Bool(key) {
			input[key] = true
		}
	}

	var labelProps element.Props
	if id := p.String("id"); id != "" {
		labelProps = element.Props{"htmlFor": id}
	}
	var labelChildren []element.Node
	if label != "" {
		labelChildren = append(labelChildren, element.Text(label))
	}

	wrapper := props.Unhandled(p, checkboxDeclared).With("className", classes)
	return element.New(
		props.ElementType(element.Tag("div"), p),
		wrapper,
		element.New(element.Tag("input"), input),
		element.New(element.Tag("label"), labelProps, labelChildren...),
	), nil
}
