package docs

import (
	"maps"
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// pagePartials are the template keys a theme manifest may override.
var pagePartials = map[string]string{pageTemplate: pageTemplate + ".tpl"}

// RendererConfig returns the renderer view of a theme selection. Asset keys
// the manifest does not know are returned unchanged, so stylesheet paths that
// are not theme assets still resolve.
func RendererConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := selection.RendererTheme(pagePartials)
	cfg.AssetURL = func(key string) string {
		if url, ok := selection.Asset(key); ok {
			return url
		}
		return key
	}
	return &cfg
}

// CSSVarsStyle renders CSS variables as a :root rule with sorted declarations.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
