// Package formdoc reads declarative form documents (YAML or JSON) and turns
// their field entries into FormField configurations.
package formdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/components"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/form"
)

// Document describes a form and its fields. Submit is the label of the submit
// button; empty means no button.
type Document struct {
	Title     string  `yaml:"title" json:"title"`
	Action    string  `yaml:"action" json:"action"`
	Method    string  `yaml:"method" json:"method"`
	Size      string  `yaml:"size" json:"size"`
	ClassName string  `yaml:"className" json:"className"`
	Submit    string  `yaml:"submit" json:"submit"`
	Fields    []Field `yaml:"fields" json:"fields"`
}

// Field is a single field entry. Control names a tag (input, select,
// textarea, button) or a registered component (checkbox, radio, dropdown).
// Options feed the dropdown control.
type Field struct {
	Name      string         `yaml:"name" json:"name"`
	Label     string         `yaml:"label" json:"label"`
	Control   string         `yaml:"control" json:"control"`
	Type      string         `yaml:"type" json:"type"`
	Width     string         `yaml:"width" json:"width"`
	As        string         `yaml:"as" json:"as"`
	Disabled  bool           `yaml:"disabled" json:"disabled"`
	Error     bool           `yaml:"error" json:"error"`
	Inline    bool           `yaml:"inline" json:"inline"`
	Required  bool           `yaml:"required" json:"required"`
	ClassName string         `yaml:"className" json:"className"`
	Attrs     map[string]any `yaml:"attrs" json:"attrs"`

	Options []components.Option `yaml:"options" json:"options"`
}

// Parse decodes a document. Unknown keys are rejected and field names must be
// unique.
func Parse(data []byte) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, errors.New("formdoc: document is empty")
		}
		return Document{}, fmt.Errorf("formdoc: decode: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Fields))
	for idx, field := range doc.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		if _, exists := seen[name]; exists {
			return Document{}, fmt.Errorf("formdoc: field %d: duplicate name %q", idx, name)
		}
		seen[name] = struct{}{}
	}
	return doc, nil
}

// LoadFile reads and parses the document at path.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("formdoc: read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadFS reads and parses name from fsys.
func LoadFS(fsys fs.FS, name string) (Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("formdoc: read %s: %w", name, err)
	}
	return Parse(data)
}

// Fields converts the entries into field configurations. Controls are
// resolved against registry first, then as tags. Decoding problems are
// returned as warnings; an unresolvable control is an error.
func (d Document) Fields(registry *components.Registry) ([]form.FieldConfig, []form.Warning, error) {
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}

	configs := make([]form.FieldConfig, 0, len(d.Fields))
	var warnings []form.Warning
	for idx, field := range d.Fields {
		p, err := field.props(registry)
		if err != nil {
			return nil, nil, fmt.Errorf("formdoc: field %d (%s): %w", idx, field.Name, err)
		}
		cfg, fieldWarnings := form.FromProps(p)
		warnings = append(warnings, fieldWarnings...)
		configs = append(configs, cfg)
	}
	return configs, warnings, nil
}

// FormProps returns the props for the Form container.
func (d Document) FormProps() element.Props {
	p := element.Props{}
	if d.Action != "" {
		p["action"] = d.Action
	}
	if d.Method != "" {
		p["method"] = strings.ToLower(d.Method)
	}
	if d.Size != "" {
		p["size"] = d.Size
	}
	if d.ClassName != "" {
		p["className"] = d.ClassName
	}
	return p
}

func (f Field) props(registry *components.Registry) (element.Props, error) {
	p := make(element.Props, len(f.Attrs)+8)
	for key, value := range f.Attrs {
		p[key] = value
	}

	if name := strings.TrimSpace(f.Name); name != "" {
		p["name"] = name
	}
	if len(f.Options) > 0 {
		p["options"] = f.Options
	}
	if control := strings.TrimSpace(f.Control); control != "" {
		resolved, err := resolveControl(registry, control)
		if err != nil {
			return nil, err
		}
		p[form.KeyControl] = resolved
	}

	set := func(key, value string) {
		if value != "" {
			p[key] = value
		}
	}
	set(form.KeyLabel, f.Label)
	set(form.KeyType, f.Type)
	set(form.KeyWidth, f.Width)
	set(form.KeyAs, f.As)
	set(form.KeyClassName, f.ClassName)

	p[form.KeyDisabled] = f.Disabled
	p[form.KeyError] = f.Error
	p[form.KeyInline] = f.Inline
	p[form.KeyRequired] = f.Required
	return p, nil
}

func resolveControl(registry *components.Registry, name string) (form.Control, error) {
	if component, ok := registry.Lookup(name); ok {
		return form.Use(component), nil
	}
	tag := form.TagControl(strings.ToLower(name))
	if tag.Known() {
		return tag, nil
	}
	return nil, fmt.Errorf("unknown control %q", name)
}
