package components

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/element"
)

func TestCheckboxRender(t *testing.T) {
	node, err := Checkbox.Render(element.Props{
		"label":     "Agree",
		"name":      "terms",
		"id":        "terms",
		"checked":   true,
		"data-role": "consent",
	}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if got := node.Props.String("className"); got != "ui checked checkbox" {
		t.Fatalf("unexpected classes %q", got)
	}
	if got := node.Props.String("data-role"); got != "consent" {
		t.Fatalf("expected unhandled prop on wrapper, got %q", got)
	}
	if len(node.Children) != 2 {
		t.Fatalf("expected input and label children, got %d", len(node.Children))
	}

	wantInput := element.Props{
		"className": "hidden",
		"type":      "checkbox",
		"id":        "terms",
		"name":      "terms",
		"checked":   true,
	}
	if diff := cmp.Diff(wantInput, node.Children[0].Props); diff != "" {
		t.Fatalf("input props mismatch (-want +got):\n%s", diff)
	}

	label := node.Children[1]
	if got := label.Props.String("htmlFor"); got != "terms" {
		t.Fatalf("expected label bound to input, got %q", got)
	}
	if got := label.TextContent(); got != "Agree" {
		t.Fatalf("unexpected label text %q", got)
	}
}

func TestRadioRenderFittedWithoutLabel(t *testing.T) {
	node, err := Radio.Render(element.Props{"value": "a"}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := node.Props.String("className"); got != "ui fitted radio checkbox" {
		t.Fatalf("unexpected classes %q", got)
	}
	if got := node.Children[0].Props.String("type"); got != "radio" {
		t.Fatalf("expected radio input, got %q", got)
	}
	if Radio.Name() != "Radio" || Checkbox.Name() != "Checkbox" {
		t.Fatalf("unexpected component names %q %q", Radio.Name(), Checkbox.Name())
	}
}

func TestOwnsLabel(t *testing.T) {
	if !OwnsLabel(Checkbox) || !OwnsLabel(Radio) {
		t.Fatalf("checkbox and radio render their own labels")
	}
	if OwnsLabel(Label) || OwnsLabel(Image) {
		t.Fatalf("label and image do not own a label prop")
	}
}

func TestLabelRender(t *testing.T) {
	node, err := Label.Render(element.Props{
		"as":    "a",
		"color": "teal",
		"image": true,
		"href":  "#",
	}, []element.Node{element.Text("Elliot")})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := node.Type.Name(); got != "a" {
		t.Fatalf("expected anchor element, got %q", got)
	}
	if got := node.Props.String("className"); got != "ui teal image label" {
		t.Fatalf("unexpected classes %q", got)
	}
	if got := node.Props.String("href"); got != "#" {
		t.Fatalf("expected href passthrough, got %q", got)
	}
	if node.Props.Has("as") || node.Props.Has("color") {
		t.Fatalf("declared props must not leak onto the element: %v", node.Props)
	}
}

func TestLabelContentShorthand(t *testing.T) {
	node, err := Label.Render(element.Props{"content": "New", "color": "chartreuse"}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := node.Props.String("className"); got != "ui label" {
		t.Fatalf("unknown colors must be dropped, got %q", got)
	}
	if got := node.TextContent(); got != "New" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestImageRender(t *testing.T) {
	node, err := Image.Render(element.Props{
		"avatar": true,
		"spaced": "right",
		"src":    "/elliot.jpg",
	}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := node.Type.Name(); got != "img" {
		t.Fatalf("expected img element, got %q", got)
	}
	want := element.Props{"className": "ui avatar right spaced image", "src": "/elliot.jpg"}
	if diff := cmp.Diff(want, node.Props); diff != "" {
		t.Fatalf("image props mismatch (-want +got):\n%s", diff)
	}
}

func TestImageWrapped(t *testing.T) {
	node, err := Image.Render(element.Props{"wrapped": true, "size": "small", "src": "/a.png"}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := node.Type.Name(); got != "div" {
		t.Fatalf("expected wrapper div, got %q", got)
	}
	if got := node.Props.String("className"); got != "ui small image" {
		t.Fatalf("unexpected classes %q", got)
	}
	if imgs := node.Find("img"); len(imgs) != 1 || imgs[0].Props.String("src") != "/a.png" {
		t.Fatalf("expected nested img, got %#v", node.Children)
	}
}

func TestRegistryDescriptorClone(t *testing.T) {
	reg := New()
	if err := reg.Register("Checkbox", Descriptor{Component: Checkbox, Stylesheets: []string{"/a.css"}}); err != nil {
		t.Fatalf("register: %v", err)
	}

	desc, ok := reg.Descriptor("checkbox")
	if !ok {
		t.Fatalf("descriptor not found")
	}
	desc.Stylesheets = append(desc.Stylesheets, "/mutated.css")

	original, _ := reg.Descriptor("checkbox")
	if len(original.Stylesheets) != 1 || original.Stylesheets[0] != "/a.css" {
		t.Fatalf("registry descriptor mutated: %#v", original.Stylesheets)
	}
}

func TestRegistryRejectsInvalidEntries(t *testing.T) {
	reg := New()
	if err := reg.Register(" ", Descriptor{Component: Label}); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if err := reg.Register("label", Descriptor{}); err == nil {
		t.Fatalf("expected error for nil component")
	}
}

func TestRegistryStylesheetsDeduplicates(t *testing.T) {
	reg := NewDefaultRegistry()
	reg.MustRegister("fancy", Descriptor{Component: Label, Stylesheets: []string{DefaultStylesheet, "/fancy.css"}})

	got := reg.Stylesheets([]string{"checkbox", "radio", "fancy", "missing"})
	want := []string{DefaultStylesheet, "/fancy.css"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}

	names := reg.Names()
	if diff := cmp.Diff([]string{"checkbox", "dropdown", "fancy", "image", "label", "radio"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	clone := reg.Clone()
	clone.MustRegister("extra", Descriptor{Component: Image})
	if _, ok := reg.Lookup("extra"); ok {
		t.Fatalf("clone mutations must not leak into the source registry")
	}
}

func TestRegistryStylesheetsByComponentName(t *testing.T) {
	reg := New()
	reg.MustRegister("avatar", Descriptor{Component: Image, Stylesheets: []string{"/image.css"}})

	got := reg.Stylesheets([]string{"Image"})
	if diff := cmp.Diff([]string{"/image.css"}, got); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
}

func TestDropdownRender(t *testing.T) {
	node, err := Dropdown.Render(element.Props{
		"name":        "size",
		"placeholder": "Pick a size",
		"value":       "m",
		"fluid":       true,
		"options": []any{
			"s",
			map[string]any{"text": "Medium", "value": "m"},
			map[string]any{"text": "Large", "value": "l", "disabled": true},
			map[string]any{},
		},
	}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := node.Type.Name(); got != "select" {
		t.Fatalf("expected select, got %q", got)
	}
	want := element.Props{"name": "size", "className": "ui fluid dropdown"}
	if diff := cmp.Diff(want, node.Props); diff != "" {
		t.Fatalf("props mismatch (-want +got):\n%s", diff)
	}

	options := node.Find("option")
	if len(options) != 4 {
		t.Fatalf("expected placeholder plus three options, got %d", len(options))
	}
	if options[0].Props.String("value") != "" || options[0].TextContent() != "Pick a size" {
		t.Fatalf("unexpected placeholder %#v", options[0])
	}
	if options[1].TextContent() != "s" || options[1].Props.Has("selected") {
		t.Fatalf("unexpected first option %#v", options[1])
	}
	if !options[2].Props.Bool("selected") || options[2].TextContent() != "Medium" {
		t.Fatalf("expected Medium selected, got %#v", options[2])
	}
	if !options[3].Props.Bool("disabled") {
		t.Fatalf("expected Large disabled")
	}
}

func TestOptionsShapes(t *testing.T) {
	got := Options([]string{"a", "", "b"})
	want := []Option{{Text: "a", Value: "a"}, {Text: "b", Value: "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if Options(42) != nil {
		t.Fatalf("unsupported shapes yield no options")
	}
}
