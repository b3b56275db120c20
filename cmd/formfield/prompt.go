package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/components"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/form"
	"github.com/goliatone/go-formfield/pkg/render/htmlrender"
	"github.com/goliatone/go-formfield/pkg/sui"
)

// errAborted is returned when the user interrupts a prompt.
var errAborted = errors.New("prompt aborted")

const noControl = "none"

// prompter abstracts the terminal so the field builder can be driven by tests.
type prompter interface {
	Input(message, def string, validate func(string) error) (string, error)
	Select(message string, options []string, def string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyPrompter struct{}

func newSurveyPrompter() prompter {
	return surveyPrompter{}
}

func (surveyPrompter) Input(message, def string, validate func(string) error) (string, error) {
	var out string
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans any) error {
			value, _ := ans.(string)
			return validate(value)
		}))
	}
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &out, opts...)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var out string
	prompt := &survey.Select{Message: message, Options: options}
	if def != "" {
		prompt.Default = def
	}
	err := survey.AskOne(prompt, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out)
	return out, translateSurveyErr(err)
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

func (a *app) promptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Build a single field interactively and print its markup",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			registry := components.NewDefaultRegistry()
			p, err := askField(a.prompter, registry)
			if err != nil {
				return err
			}
			node, err := form.FieldComponent{Logger: a.logger}.Render(p, nil)
			if err != nil {
				return err
			}
			markup, err := htmlrender.RenderString(node)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, markup)
			return err
		},
	}
}

// controlChoices lists the native controls followed by the field components.
func controlChoices() []string {
	choices := []string{noControl}
	for _, tag := range form.TagControls() {
		choices = append(choices, string(tag))
	}
	return append(choices, components.NameCheckbox, components.NameRadio, components.NameDropdown)
}

// askField collects the props of one FormField.
func askField(p prompter, registry *components.Registry) (element.Props, error) {
	props := element.Props{}

	name, err := p.Input("Name", "", nil)
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name != "" {
		props["name"] = name
	}

	label, err := p.Input("Label", "", nil)
	if err != nil {
		return nil, err
	}
	if label = strings.TrimSpace(label); label != "" {
		props[form.KeyLabel] = label
	}

	choice, err := p.Select("Control", controlChoices(), string(form.ControlInput))
	if err != nil {
		return nil, err
	}
	if choice != noControl {
		props[form.KeyControl] = resolveControl(registry, choice)
	}

	if choice == string(form.ControlInput) {
		inputType, err := p.Input("Input type", "text", nil)
		if err != nil {
			return nil, err
		}
		if inputType = strings.TrimSpace(inputType); inputType != "" {
			props[form.KeyType] = inputType
		}
	}

	width, err := p.Input("Width (1-16, blank for none)", "", validateWidth)
	if err != nil {
		return nil, err
	}
	if width = strings.TrimSpace(width); width != "" {
		props[form.KeyWidth] = width
	}

	required, err := p.Confirm("Required?", false)
	if err != nil {
		return nil, err
	}
	if required {
		props[form.KeyRequired] = true
	}
	return props, nil
}

func resolveControl(registry *components.Registry, name string) form.Control {
	if registry != nil {
		if component, ok := registry.Lookup(name); ok {
			return form.Use(component)
		}
	}
	return form.TagControl(name)
}

func validateWidth(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if width, ok := sui.ParseWidth(value); !ok || width == sui.Equal {
		return fmt.Errorf("width %q is not one of one..sixteen", value)
	}
	return nil
}
