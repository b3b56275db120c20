package components

import (
	"github.com/goliatone/go-formfield/pkg/classnames"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/props"
	"github.com/goliatone/go-formfield/pkg/sui"
)

var imageDeclared = []string{
	"alt", "as", "avatar", "bordered", "centered", "children", "circular",
	"className", "disabled", "fluid", "hidden", "inline", "rounded", "size",
	"spaced", "src", "wrapped",
}

type image struct{}

// Image renders an <img>. Wrapped images, or images with children, render a
// div around the img instead.
var Image element.Component = image{}

func (image) Name() string { return "Image" }

func (image) Render(p element.Props, children []element.Node) (element.Node, error) {
	size := p.String("size")
	if !sui.Contains(sui.Sizes, size) {
		size = ""
	}

	classes := classnames.Join(
		"ui",
		size,
		classnames.KeyOnly(p.Bool("avatar"), "avatar"),
		classnames.KeyOnly(p.Bool("bordered"), "bordered"),
		classnames.KeyOnly(p.Bool("circular"), "circular"),
		classnames.KeyOnly(p.Bool("centered"), "centered"),
		classnames.KeyOnly(p.Bool("disabled"), "disabled"),
		classnames.KeyOnly(p.Bool("fluid"), "fluid"),
		classnames.KeyOnly(p.Bool("hidden"), "hidden"),
		classnames.KeyOnly(p.Bool("inline"), "inline"),
		classnames.KeyOnly(p.Bool("rounded"), "rounded"),
		classnames.KeyOrValueAndKey(p["spaced"], "spaced"),
		"image",
		p.String("className"),
	)

	img := element.Props{}
	for _, key := range []string{"src", "alt"} {
		if value := p.String(key); value != "" {
			img[key] = value
		}
	}

	rest := props.Unhandled(p, imageDeclared)
	if len(children) > 0 || p.Bool("wrapped") {
		wrapper := rest.With("className", classes)
		nodes := append([]element.Node{element.New(element.Tag("img"), img)}, children...)
		return element.New(props.ElementType(element.Tag("div"), p), wrapper, nodes...), nil
	}

	return element.New(props.ElementType(element.Tag("img"), p), rest.Merge(img).With("className", classes)), nil
}
