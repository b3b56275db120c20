package form

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formfield/pkg/sui"
)

// Warning codes reported by Validate and FromProps.
const (
	CodeRequiredWithoutLabel = "required-without-label"
	CodeTypeWithoutControl   = "type-without-control"
	CodeUnknownControl       = "unknown-control"
	CodeInvalidWidth         = "invalid-width"
	CodeChildrenWithControl  = "children-with-control"
	CodeInvalidProp          = "invalid-prop"
)

// Warning describes a configuration mistake. Warnings never stop rendering.
type Warning struct {
	Prop    string `json:"prop"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return w.Prop + ": " + w.Message
}

// Validate checks the cross-field constraints of a field configuration.
func Validate(cfg FieldConfig) []Warning {
	var warnings []Warning

	if cfg.Required && cfg.Label == "" {
		warnings = append(warnings, Warning{
			Prop:    KeyRequired,
			Code:    CodeRequiredWithoutLabel,
			Message: "required needs a label to mark",
		})
	}
	if cfg.Type != "" && cfg.Control == nil {
		warnings = append(warnings, Warning{
			Prop:    KeyType,
			Code:    CodeTypeWithoutControl,
			Message: fmt.Sprintf("type %q is ignored without a control", cfg.Type),
		})
	}
	if tag, ok := cfg.Control.(TagControl); ok && !tag.Known() {
		warnings = append(warnings, Warning{
			Prop:    KeyControl,
			Code:    CodeUnknownControl,
			Message: fmt.Sprintf("control %q is not one of %s", string(tag), knownControls()),
		})
	}
	if cfg.Width != "" {
		if width, ok := sui.ParseWidth(cfg.Width); !ok || width == sui.Equal {
			warnings = append(warnings, Warning{
				Prop:    KeyWidth,
				Code:    CodeInvalidWidth,
				Message: fmt.Sprintf("width %q is not one of one..sixteen", string(cfg.Width)),
			})
		}
	}
	if cfg.Control != nil && len(cfg.Children) > 0 {
		warnings = append(warnings, Warning{
			Prop:    KeyChildren,
			Code:    CodeChildrenWithControl,
			Message: "children are passed to the control; control and children are mutually exclusive",
		})
	}

	return warnings
}

// LogWarnings reports warnings through logger at warn level. A nil logger is a
// no-op.
func LogWarnings(logger *zap.Logger, component string, warnings []Warning) {
	if logger == nil || len(warnings) == 0 {
		return
	}
	for _, warning := range warnings {
		logger.Warn("invalid component configuration",
			zap.String("component", component),
			zap.String("prop", warning.Prop),
			zap.String("code", warning.Code),
			zap.String("message", warning.Message),
		)
	}
}

func knownControls() string {
	tags := TagControls()
	names := make([]string, len(tags))
	for idx, tag := range tags {
		names[idx] = string(tag)
	}
	return strings.Join(names, ", ")
}
