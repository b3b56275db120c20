// Package form implements the FormField component: a pure function from a
// field configuration to an element tree, plus the Form container and a
// validation pass that reports configuration mistakes as warnings.
package form

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formfield/pkg/classnames"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/props"
	"github.com/goliatone/go-formfield/pkg/sui"
)

// ErrInvalidControl is returned when a field's control cannot be rendered,
// e.g. a ComponentControl without a component.
var ErrInvalidControl = errors.New("form: invalid control")

// Prop keys understood by FormField. Everything else is forwarded.
const (
	KeyAs        = props.AsKey
	KeyChildren  = "children"
	KeyClassName = "className"
	KeyControl   = "control"
	KeyDisabled  = "disabled"
	KeyError     = "error"
	KeyInline    = "inline"
	KeyLabel     = "label"
	KeyRequired  = "required"
	KeyType      = "type"
	KeyWidth     = "width"
)

// DeclaredProps lists the keys FormField consumes itself.
var DeclaredProps = []string{
	KeyAs, KeyChildren, KeyClassName, KeyControl, KeyDisabled, KeyError,
	KeyInline, KeyLabel, KeyRequired, KeyType, KeyWidth,
}

// DefaultElement is the wrapper tag used when no "as" override is given.
var DefaultElement = element.Tag("div")

// FieldConfig describes one field instance.
type FieldConfig struct {
	// As overrides the wrapper element type. Zero means DefaultElement.
	As element.Type
	// Control is the wrapped control. Nil renders the wrapper around
	// Children (or a lone label).
	Control Control
	Label   string
	// Type is forwarded to the control, e.g. "password" or "checkbox".
	Type  string
	Width sui.Width

	Disabled bool
	Error    bool
	Inline   bool
	Required bool

	ClassName string
	Children  []element.Node
	// Rest is forwarded verbatim to the wrapper (no control) or to the
	// control.
	Rest element.Props
}

// FromProps decodes a loosely typed prop map. Declared keys populate the
// config, the remainder becomes Rest. Values of the wrong type are skipped and
// reported as warnings.
func FromProps(p element.Props) (FieldConfig, []Warning) {
	var (
		cfg      FieldConfig
		warnings []Warning
	)

	if value, ok := p[KeyAs]; ok {
		if typ, ok := props.AsType(value); ok {
			cfg.As = typ
		} else {
			warnings = append(warnings, invalidProp(KeyAs, value))
		}
	}
	if value, ok := p[KeyControl]; ok && value != nil {
		if control, ok := ControlFrom(value); ok {
			cfg.Control = control
		} else if value != "" {
			warnings = append(warnings, invalidProp(KeyControl, value))
		}
	}
	if value, ok := p[KeyWidth]; ok && value != nil && value != "" {
		if width, ok := sui.ParseWidth(value); ok {
			cfg.Width = width
		} else {
			warnings = append(warnings, Warning{
				Prop:    KeyWidth,
				Code:    CodeInvalidWidth,
				Message: fmt.Sprintf("width %v is not one of one..sixteen", value),
			})
		}
	}
	if children, ok := p[KeyChildren].([]element.Node); ok {
		cfg.Children = children
	}

	cfg.Label = p.String(KeyLabel)
	cfg.Type = p.String(KeyType)
	cfg.ClassName = p.String(KeyClassName)
	cfg.Disabled = p.Bool(KeyDisabled)
	cfg.Error = p.Bool(KeyError)
	cfg.Inline = p.Bool(KeyInline)
	cfg.Required = p.Bool(KeyRequired)
	cfg.Rest = props.Unhandled(p, DeclaredProps)

	return cfg, warnings
}

// Props converts the config back into a prop map, the inverse of FromProps.
func (cfg FieldConfig) Props() element.Props {
	out := cfg.Rest.Clone()
	if out == nil {
		out = element.Props{}
	}
	set := func(key string, value any, ok bool) {
		if ok {
			out[key] = value
		}
	}
	set(KeyAs, cfg.As, !cfg.As.IsZero())
	set(KeyControl, cfg.Control, cfg.Control != nil)
	set(KeyLabel, cfg.Label, cfg.Label != "")
	set(KeyType, cfg.Type, cfg.Type != "")
	set(KeyWidth, cfg.Width, cfg.Width != "")
	set(KeyDisabled, true, cfg.Disabled)
	set(KeyError, true, cfg.Error)
	set(KeyInline, true, cfg.Inline)
	set(KeyRequired, true, cfg.Required)
	set(KeyClassName, cfg.ClassName, cfg.ClassName != "")
	set(KeyChildren, cfg.Children, len(cfg.Children) > 0)
	return out
}

// Classes composes the wrapper class list: state flags, the width token,
// "field" and finally the caller's classes.
func Classes(cfg FieldConfig) string {
	return classnames.Join(
		classnames.KeyOnly(cfg.Error, "error"),
		classnames.KeyOnly(cfg.Disabled, "disabled"),
		classnames.KeyOnly(cfg.Inline, "inline"),
		classnames.KeyOnly(cfg.Required, "required"),
		classnames.WidthProp(cfg.Width, "wide", false),
		"field",
		cfg.ClassName,
	)
}

func invalidProp(key string, value any) Warning {
	return Warning{
		Prop:    key,
		Code:    CodeInvalidProp,
		Message: fmt.Sprintf("%s has unsupported value %v (%T)", key, value, value),
	}
}

func wrapperType(cfg FieldConfig) element.Type {
	if cfg.As.IsZero() {
		return DefaultElement
	}
	return cfg.As
}
