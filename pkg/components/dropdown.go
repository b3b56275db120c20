package components

import (
	"fmt"

	"github.com/goliatone/go-formfield/pkg/classnames"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/props"
)

var dropdownDeclared = []string{
	"as", "children", "className", "fluid", "options", "placeholder", "value",
}

// Option is a single choice of a Dropdown.
type Option struct {
	Text     string `yaml:"text" json:"text"`
	Value    string `yaml:"value" json:"value"`
	Disabled bool   `yaml:"disabled" json:"disabled"`
}

type dropdown struct{}

// Dropdown renders a native <select> styled as a Semantic UI dropdown. The
// "options" prop accepts []Option, []string or decoded []any lists.
var Dropdown element.Component = dropdown{}

func (dropdown) Name() string { return "Dropdown" }

func (dropdown) Render(p element.Props, children []element.Node) (element.Node, error) {
	classes := classnames.Join(
		"ui",
		classnames.KeyOnly(p.Bool("fluid"), "fluid"),
		"dropdown",
		p.String("className"),
	)

	selected := p.String("value")
	nodes := make([]element.Node, 0, len(children)+1)
	if placeholder := p.String("placeholder"); placeholder != "" {
		nodes = append(nodes, element.New(element.Tag("option"), element.Props{"value": ""}, element.Text(placeholder)))
	}
	for _, option := range Options(p["options"]) {
		optionProps := element.Props{"value": option.Value}
		if selected != "" && option.Value == selected {
			optionProps["selected"] = true
		}
		if option.Disabled {
			optionProps["disabled"] = true
		}
		nodes = append(nodes, element.New(element.Tag("option"), optionProps, element.Text(option.Text)))
	}
	nodes = append(nodes, children...)

	rest := props.Unhandled(p, dropdownDeclared).With("className", classes)
	return element.New(props.ElementType(element.Tag("select"), p), rest, nodes...), nil
}

// Options normalises the supported option list shapes. Entries with neither
// text nor value are skipped; a missing text falls back to the value.
func Options(value any) []Option {
	var out []Option
	add := func(option Option) {
		if option.Text == "" && option.Value == "" {
			return
		}
		if option.Text == "" {
			option.Text = option.Value
		}
		out = append(out, option)
	}

	switch v := value.(type) {
	case []Option:
		for _, option := range v {
			add(option)
		}
	case []string:
		for _, item := range v {
			add(Option{Value: item})
		}
	case []any:
		for _, item := range v {
			switch entry := item.(type) {
			case Option:
				add(entry)
			case string:
				add(Option{Value: entry})
			case map[string]any:
				option := element.Props(entry)
				add(Option{
					Text:     option.String("text"),
					Value:    option.String("value"),
					Disabled: option.Bool("disabled"),
				})
			case nil:
			default:
				add(Option{Value: fmt.Sprint(entry)})
			}
		}
	}
	return out
}
