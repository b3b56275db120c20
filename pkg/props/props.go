// Package props implements the prop plumbing shared by every component:
// forwarding unhandled props and resolving the element type to render as.
package props

import (
	"strings"

	"github.com/goliatone/go-formfield/pkg/element"
)

// AsKey is the prop that overrides a component's default element type.
const AsKey = "as"

// Unhandled returns the props whose keys are not in declared. The result is a
// fresh map; all is never modified.
func Unhandled(all element.Props, declared []string) element.Props {
	if len(all) == 0 {
		return nil
	}
	skip := make(map[string]struct{}, len(declared))
	for _, key := range declared {
		skip[key] = struct{}{}
	}
	out := make(element.Props, len(all))
	for key, value := range all {
		if _, ok := skip[key]; ok {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ElementType resolves the "as" prop. Tag names, element.Type values and
// components are accepted; anything else falls back to defaultAs.
func ElementType(defaultAs element.Type, all element.Props) element.Type {
	if resolved, ok := AsType(all[AsKey]); ok {
		return resolved
	}
	return defaultAs
}

// AsType converts an "as" value into an element.Type.
func AsType(value any) (element.Type, bool) {
	switch v := value.(type) {
	case nil:
		return element.Type{}, false
	case element.Type:
		return v, !v.IsZero()
	case element.Component:
		return element.ComponentType(v), true
	case string:
		tag := strings.TrimSpace(v)
		if tag == "" {
			return element.Type{}, false
		}
		return element.Tag(tag), true
	default:
		return element.Type{}, false
	}
}
