package render

import (
	"context"

	"github.com/goliatone/go-formfield/pkg/element"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }

func (s stubRenderer) Render(context.Context, element.Node, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}
