package components

import (
	"github.com/goliatone/go-formfield/pkg/classnames"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/props"
	"github.com/goliatone/go-formfield/pkg/sui"
)

var labelDeclared = []string{
	"as", "basic", "children", "circular", "className", "color", "content",
	"image", "size", "tag",
}

type label struct{}

// Label displays classified content. Image content inside a label is usually
// paired with the image flag or an avatar Image child.
var Label element.Component = label{}

func (label) Name() string { return "Label" }

func (label) Render(p element.Props, children []element.Node) (element.Node, error) {
	color := p.String("color")
	if !sui.Contains(sui.Colors, color) {
		color = ""
	}
	size := p.String("size")
	if !sui.Contains(sui.Sizes, size) {
		size = ""
	}

	classes := classnames.Join(
		"ui",
		color,
		size,
		classnames.KeyOnly(p.Bool("basic"), "basic"),
		classnames.KeyOnly(p.Bool("circular"), "circular"),
		classnames.KeyOnly(p.Bool("image"), "image"),
		classnames.KeyOnly(p.Bool("tag"), "tag"),
		"label",
		p.String("className"),
	)

	if len(children) == 0 {
		if content := p.String("content"); content != "" {
			children = []element.Node{element.Text(content)}
		}
	}

	rest := props.Unhandled(p, labelDeclared).With("className", classes)
	return element.New(props.ElementType(element.Tag("div"), p), rest, children...), nil
}
