package form

import (
	"fmt"

	"github.com/goliatone/go-formfield/pkg/element"
)

var labelTag = element.Tag("label")

// Render builds the element tree for a field.
//
// Without a control the wrapper carries Rest and either the children or a
// single label. With a control the wrapper only carries the classes; Rest,
// Type and Children go to the control. Native checkbox/radio inputs are nested
// inside their label, Checkbox/Radio components receive the label as a prop,
// and every other control gets a sibling label when one is set.
func Render(cfg FieldConfig) (element.Node, error) {
	branch, err := classify(cfg)
	if err != nil {
		return element.Node{}, fmt.Errorf("form: render field %q: %w", cfg.Label, err)
	}

	wrapper := wrapperType(cfg)
	classes := element.Props{KeyClassName: Classes(cfg)}

	switch branch {
	case dispatchBare:
		return element.New(wrapper, cfg.Rest.Merge(classes), cfg.Children...), nil
	case dispatchLabelOnly:
		return element.New(wrapper, cfg.Rest.Merge(classes), labelNode(cfg.Label)), nil
	}

	typ, err := controlType(cfg.Control)
	if err != nil {
		return element.Node{}, fmt.Errorf("form: render field %q: %w", cfg.Label, err)
	}
	controlProps := cfg.Rest.Clone()
	if cfg.Type != "" {
		controlProps = controlProps.With(KeyType, cfg.Type)
	}

	switch branch {
	case dispatchNativeCheckable:
		children := []element.Node{element.New(typ, controlProps, cfg.Children...)}
		// The separating space is only emitted together with a label.
		if cfg.Label != "" {
			children = append(children, element.Text(" "), element.Text(cfg.Label))
		}
		return element.New(wrapper, classes, element.New(labelTag, nil, children...)), nil
	case dispatchLabelForwarding:
		if cfg.Label != "" {
			controlProps = controlProps.With(KeyLabel, cfg.Label)
		}
		return element.New(wrapper, classes, element.New(typ, controlProps, cfg.Children...)), nil
	case dispatchLabeledControl:
		return element.New(wrapper, classes,
			labelNode(cfg.Label),
			element.New(typ, controlProps, cfg.Children...),
		), nil
	case dispatchControl:
		return element.New(wrapper, classes, element.New(typ, controlProps, cfg.Children...)), nil
	default:
		return element.Node{}, fmt.Errorf("form: render field %q: %w", cfg.Label, ErrInvalidControl)
	}
}

// Branch names the rendering branch Render would take for cfg.
func Branch(cfg FieldConfig) (string, error) {
	branch, err := classify(cfg)
	if err != nil {
		return "", err
	}
	return branch.String(), nil
}

func labelNode(text string) element.Node {
	return element.New(labelTag, nil, element.Text(text))
}
