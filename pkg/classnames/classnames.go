// Package classnames composes the space separated class lists produced by the
// components. Token order is fixed so rendered output is stable for snapshots.
package classnames

import (
	"strings"

	"github.com/goliatone/go-formfield/pkg/sui"
)

// Join concatenates the non-empty values in order, collapsing whitespace.
func Join(values ...string) string {
	tokens := make([]string, 0, len(values))
	for _, value := range values {
		tokens = append(tokens, strings.Fields(value)...)
	}
	return strings.Join(tokens, " ")
}

// KeyOnly returns key when flag is set.
func KeyOnly(flag bool, key string) string {
	if flag {
		return key
	}
	return ""
}

// KeyOrValueAndKey returns key for a true flag and "<value> <key>" for a
// string value, e.g. spaced="right" becomes "right spaced".
func KeyOrValueAndKey(value any, key string) string {
	switch v := value.(type) {
	case bool:
		return KeyOnly(v, key)
	case string:
		trimmed := strings.TrimSpace(v)
		switch trimmed {
		case "", "false":
			return ""
		case "true":
			return key
		}
		return trimmed + " " + key
	default:
		return ""
	}
}

// ValueAndKey returns "<value> <key>" when value is set.
func ValueAndKey(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return value + " " + key
}

// WidthProp maps a width token to "<word> <widthClass>", e.g. "four wide".
// When canEqual is set the equal token yields "equal width".
func WidthProp(width sui.Width, widthClass string, canEqual bool) string {
	if width == "" {
		return ""
	}
	if width == sui.Equal {
		if canEqual {
			return "equal width"
		}
		return ""
	}
	parsed, ok := sui.ParseWidth(width)
	if !ok {
		return ""
	}
	return string(parsed) + " " + widthClass
}
