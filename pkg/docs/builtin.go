package docs

import (
	"github.com/goliatone/go-formfield/pkg/components"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/form"
)

const (
	SectionLabelContent = "Label / Content"
	SectionFormField    = "Form / Field"
)

const avatarBase = "http://semantic-ui.com/images/avatar/small/"

// Builtin returns the examples shipped with the package.
func Builtin() []Example {
	return []Example{
		{
			Name:        "LabelExampleImage",
			Section:     SectionLabelContent,
			Title:       "Image",
			Description: "A label can be formatted to emphasize an image.",
			Build:       static(LabelExampleImage()),
		},
		{
			Name:        "FormFieldExampleChildren",
			Section:     SectionFormField,
			Title:       "Children",
			Description: "A field without a control renders its children.",
			Build:       static(field(element.Props{"id": "custom"}, element.New(element.Tag("input"), element.Props{"placeholder": "Custom child"}))),
		},
		{
			Name:        "FormFieldExampleLabel",
			Section:     SectionFormField,
			Title:       "Label",
			Description: "A field with only a label renders the label.",
			Build:       static(field(element.Props{"label": "Read only"})),
		},
		{
			Name:        "FormFieldExampleNativeCheckbox",
			Section:     SectionFormField,
			Title:       "Native checkbox",
			Description: "A checkbox input is nested inside its label.",
			Build: static(field(element.Props{
				"control": form.ControlInput,
				"type":    "checkbox",
				"label":   "I agree to the terms",
				"name":    "terms",
			})),
		},
		{
			Name:        "FormFieldExampleCheckbox",
			Section:     SectionFormField,
			Title:       "Checkbox",
			Description: "A Checkbox control receives the label itself.",
			Build: static(field(element.Props{
				"control": components.Checkbox,
				"label":   "Subscribe",
				"name":    "subscribe",
			})),
		},
		{
			Name:        "FormFieldExampleRadio",
			Section:     SectionFormField,
			Title:       "Radio",
			Description: "A Radio control receives the label itself.",
			Build: static(field(element.Props{
				"control": components.Radio,
				"label":   "Small",
				"name":    "size",
				"value":   "sm",
			})),
		},
		{
			Name:        "FormFieldExampleSelect",
			Section:     SectionFormField,
			Title:       "Select",
			Description: "Other controls are preceded by a sibling label.",
			Build: static(field(element.Props{
				"control": form.ControlSelect,
				"label":   "Gender",
				"width":   8,
				"name":    "gender",
			})),
		},
		{
			Name:        "FormFieldExampleInput",
			Section:     SectionFormField,
			Title:       "Input",
			Description: "A control without a label renders alone.",
			Build: static(field(element.Props{
				"control":     form.ControlInput,
				"type":        "email",
				"placeholder": "joe@schmoe.com",
				"error":       true,
			})),
		},
	}
}

// LabelExampleImage shows labels as links that lead with an avatar image.
func LabelExampleImage() element.Node {
	label := element.ComponentType(components.Label)
	return element.New(element.Tag("div"), nil,
		element.New(label, element.Props{"as": "a"},
			element.New(element.ComponentType(components.Image), element.Props{
				"avatar": true,
				"spaced": "right",
				"src":    avatarBase + "elliot.jpg",
			}),
			element.Text("Elliot"),
		),
		element.New(label, element.Props{"as": "a"},
			element.New(element.Tag("img"), element.Props{"src": avatarBase + "stevie.jpg"}),
			element.Text("Stevie"),
		),
	)
}

func field(p element.Props, children ...element.Node) element.Node {
	return element.New(element.ComponentType(form.Field), p, children...)
}

func static(node element.Node) func() (element.Node, error) {
	return func() (element.Node, error) {
		return node, nil
	}
}
