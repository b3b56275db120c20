package form

import (
	"strings"

	"github.com/goliatone/go-formfield/pkg/components"
	"github.com/goliatone/go-formfield/pkg/element"
)

// Control is the interactive element a field wraps. It is a closed set:
// TagControl for native HTML controls and ComponentControl for components.
type Control interface {
	control()
}

// TagControl is a native HTML control rendered by tag name.
type TagControl string

// Native controls a field accepts. Other tag names still render but are
// reported by Validate.
const (
	ControlButton   TagControl = "button"
	ControlInput    TagControl = "input"
	ControlSelect   TagControl = "select"
	ControlTextArea TagControl = "textarea"
)

// TagControls lists the native controls in declaration order.
func TagControls() []TagControl {
	return []TagControl{ControlButton, ControlInput, ControlSelect, ControlTextArea}
}

func (TagControl) control() {}

// Known reports whether the tag is one of the declared native controls.
func (t TagControl) Known() bool {
	for _, known := range TagControls() {
		if t == known {
			return true
		}
	}
	return false
}

// ComponentControl renders the field's control through a component.
type ComponentControl struct {
	Component element.Component
}

func (ComponentControl) control() {}

// Use wraps a component as a field control.
func Use(component element.Component) ComponentControl {
	return ComponentControl{Component: component}
}

// ControlFrom converts loosely typed values (strings, components, element
// types) into a Control. The boolean is false when value carries no control.
func ControlFrom(value any) (Control, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case Control:
		if tag, ok := v.(TagControl); ok && strings.TrimSpace(string(tag)) == "" {
			return nil, false
		}
		return v, true
	case string:
		tag := strings.ToLower(strings.TrimSpace(v))
		if tag == "" {
			return nil, false
		}
		return TagControl(tag), true
	case element.Component:
		return Use(v), true
	case element.Type:
		if component, ok := v.Component(); ok {
			return Use(component), true
		}
		if tag, ok := v.Tag(); ok {
			return TagControl(tag), true
		}
		return nil, false
	default:
		return nil, false
	}
}

// dispatch is the rendering branch selected for a field.
type dispatch int

const (
	dispatchBare dispatch = iota
	dispatchLabelOnly
	dispatchNativeCheckable
	dispatchLabelForwarding
	dispatchLabeledControl
	dispatchControl
)

func (d dispatch) String() string {
	switch d {
	case dispatchBare:
		return "bare"
	case dispatchLabelOnly:
		return "label-only"
	case dispatchNativeCheckable:
		return "native-checkable"
	case dispatchLabelForwarding:
		return "label-forwarding"
	case dispatchLabeledControl:
		return "labeled-control"
	case dispatchControl:
		return "control"
	default:
		return "unknown"
	}
}

// controlType resolves the element type the control renders as.
func controlType(control Control) (element.Type, error) {
	switch c := control.(type) {
	case TagControl:
		tag := strings.TrimSpace(string(c))
		if tag == "" {
			return element.Type{}, ErrInvalidControl
		}
		return element.Tag(tag), nil
	case ComponentControl:
		if c.Component == nil {
			return element.Type{}, ErrInvalidControl
		}
		return element.ComponentType(c.Component), nil
	default:
		return element.Type{}, ErrInvalidControl
	}
}

// classify picks the rendering branch. The switch is exhaustive over Control;
// the default case only triggers for a nil component or an empty tag.
func classify(cfg FieldConfig) (dispatch, error) {
	hasLabel := cfg.Label != ""

	switch c := cfg.Control.(type) {
	case nil:
		if hasLabel {
			return dispatchLabelOnly, nil
		}
		return dispatchBare, nil
	case TagControl:
		if strings.TrimSpace(string(c)) == "" {
			return 0, ErrInvalidControl
		}
		if c == ControlInput && isCheckableType(cfg.Type) {
			return dispatchNativeCheckable, nil
		}
	case ComponentControl:
		if c.Component == nil {
			return 0, ErrInvalidControl
		}
		if components.OwnsLabel(c.Component) {
			return dispatchLabelForwarding, nil
		}
	default:
		return 0, ErrInvalidControl
	}

	if hasLabel {
		return dispatchLabeledControl, nil
	}
	return dispatchControl, nil
}

func isCheckableType(inputType string) bool {
	switch strings.ToLower(strings.TrimSpace(inputType)) {
	case "checkbox", "radio":
		return true
	default:
		return false
	}
}
