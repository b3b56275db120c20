package openapi

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-formfield/pkg/components"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/form"
)

// LongTextLength is the maxLength above which strings render as a textarea.
const LongTextLength = 255

var inputTypes = map[string]string{
	"email":     "email",
	"password":  "password",
	"date":      "date",
	"date-time": "datetime-local",
	"time":      "time",
	"uri":       "url",
	"url":       "url",
	"color":     "color",
	"tel":       "tel",
}

// Fields maps the operation properties to field configurations in property
// order. Read-only and object properties are skipped.
func Fields(operation Operation) []form.FieldConfig {
	fields := make([]form.FieldConfig, 0, len(operation.Properties))
	for _, property := range operation.Properties {
		if property.ReadOnly {
			continue
		}
		cfg, ok := FieldFor(property)
		if !ok {
			continue
		}
		fields = append(fields, cfg)
	}
	return fields
}

// FieldsFor parses raw and returns the fields of operationID.
func FieldsFor(ctx context.Context, raw []byte, operationID string, options ...ParserOption) ([]form.FieldConfig, Operation, error) {
	operation, err := FindOperation(ctx, raw, operationID, options...)
	if err != nil {
		return nil, Operation{}, err
	}
	return Fields(operation), operation, nil
}

// FieldFor maps a single property. The boolean is false for properties no
// control can represent.
func FieldFor(property Property) (form.FieldConfig, bool) {
	cfg := form.FieldConfig{
		Label:    property.Title,
		Required: property.Required,
		Rest:     element.Props{"name": property.Name},
	}
	if cfg.Label == "" {
		cfg.Label = Label(property.Name)
	}

	switch {
	case len(property.Enum) > 0:
		cfg.Control = form.Use(components.Dropdown)
		cfg.Rest["options"] = enumOptions(property.Enum)
		setDefault(cfg.Rest, property.Default)
	case property.Type == "boolean":
		cfg.Control = form.Use(components.Checkbox)
		if checked, ok := property.Default.(bool); ok && checked {
			cfg.Rest["checked"] = true
		}
	case property.Type == "integer" || property.Type == "number":
		cfg.Control = form.ControlInput
		cfg.Type = "number"
		step := "any"
		if property.Type == "integer" {
			step = "1"
		}
		cfg.Rest["step"] = step
		if property.Minimum != nil {
			cfg.Rest["min"] = formatNumber(*property.Minimum)
		}
		if property.Maximum != nil {
			cfg.Rest["max"] = formatNumber(*property.Maximum)
		}
		setDefault(cfg.Rest, property.Default)
	case property.Type == "array" && property.Items != nil && len(property.Items.Enum) > 0:
		cfg.Control = form.Use(components.Dropdown)
		cfg.Rest["options"] = enumOptions(property.Items.Enum)
		cfg.Rest["multiple"] = true
	case property.Type == "string" || property.Type == "":
		stringField(&cfg, property)
	default:
		return form.FieldConfig{}, false
	}
	return cfg, true
}

func stringField(cfg *form.FieldConfig, property Property) {
	if property.Format == "" && property.MaxLength != nil && *property.MaxLength > LongTextLength {
		cfg.Control = form.ControlTextArea
	} else {
		cfg.Control = form.ControlInput
		cfg.Type = "text"
		if inputType, ok := inputTypes[property.Format]; ok {
			cfg.Type = inputType
		}
		if property.Pattern != "" {
			cfg.Rest["pattern"] = property.Pattern
		}
	}
	if property.MaxLength != nil {
		cfg.Rest["maxLength"] = strconv.FormatUint(*property.MaxLength, 10)
	}
	if property.Description != "" {
		cfg.Rest["placeholder"] = property.Description
	}
	setDefault(cfg.Rest, property.Default)
}

func enumOptions(values []any) []components.Option {
	options := make([]components.Option, 0, len(values))
	for _, value := range values {
		if value == nil {
			continue
		}
		text := fmt.Sprint(value)
		options = append(options, components.Option{Text: Label(text), Value: text})
	}
	return options
}

func setDefault(rest element.Props, value any) {
	switch v := value.(type) {
	case nil:
	case float64:
		rest["value"] = formatNumber(v)
	default:
		rest["value"] = fmt.Sprint(v)
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// Label converts a property name into a human readable label, splitting on
// underscores, dashes and camelCase boundaries.
func Label(name string) string {
	var segments []string
	for _, word := range splitWordsPattern.Split(name, -1) {
		if word == "" {
			continue
		}
		segments = append(segments, titleCase(splitCamel(word)))
	}
	return strings.Join(segments, " ")
}

func splitCamel(input string) string {
	var out strings.Builder
	prev := rune(-1)
	for _, r := range input {
		if prev >= 0 && isBoundary(prev, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
		prev = r
	}
	return out.String()
}

func isBoundary(prev, r rune) bool {
	return (unicode.IsLower(prev) && unicode.IsUpper(r)) ||
		(unicode.IsLetter(prev) && unicode.IsDigit(r)) ||
		(unicode.IsDigit(prev) && unicode.IsLetter(r))
}

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(first)) + word[size:]
}
