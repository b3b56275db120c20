package element

import (
	"fmt"
	"slices"
	"strings"
)

// Props holds the attributes of a node or the configuration of a component.
type Props map[string]any

// Clone returns a shallow copy. Nil stays nil.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// Keys returns the prop names sorted.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Has reports whether key is set.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// With returns a copy of p with key set to value.
func (p Props) With(key string, value any) Props {
	out := p.Clone()
	if out == nil {
		out = make(Props, 1)
	}
	out[key] = value
	return out
}

// Without returns a copy of p without the listed keys.
func (p Props) Without(keys ...string) Props {
	out := p.Clone()
	for _, key := range keys {
		delete(out, key)
	}
	return out
}

// Merge returns a copy of p overlaid with other.
func (p Props) Merge(other Props) Props {
	out := p.Clone()
	if out == nil && len(other) > 0 {
		out = make(Props, len(other))
	}
	for key, value := range other {
		out[key] = value
	}
	return out
}

// String returns the value of key as a trimmed string. Non-string values are
// formatted with fmt.
func (p Props) String(key string) string {
	value, ok := p[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// Bool returns the value of key as a boolean. Strings "true", "1", "yes" and
// the key name itself count as true.
func (p Props) Bool(key string) bool {
	value, ok := p[key]
	if !ok || value == nil {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", strings.ToLower(key):
			return true
		}
		return false
	case int:
		return v != 0
	default:
		return false
	}
}
