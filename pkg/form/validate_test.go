package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-formfield/pkg/components"
	"github.com/goliatone/go-formfield/pkg/element"
)

func warningCodes(warnings []Warning) []string {
	codes := make([]string, 0, len(warnings))
	for _, warning := range warnings {
		codes = append(codes, warning.Code)
	}
	return codes
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  FieldConfig
		want []string
	}{
		{
			name: "valid",
			cfg:  FieldConfig{Control: ControlInput, Label: "Name", Required: true, Width: "six"},
			want: []string{},
		},
		{
			name: "required without label",
			cfg:  FieldConfig{Control: ControlInput, Required: true},
			want: []string{CodeRequiredWithoutLabel},
		},
		{
			name: "type without control",
			cfg:  FieldConfig{Type: "password"},
			want: []string{CodeTypeWithoutControl},
		},
		{
			name: "unknown tag control",
			cfg:  FieldConfig{Control: TagControl("video")},
			want: []string{CodeUnknownControl},
		},
		{
			name: "component controls are not checked against tags",
			cfg:  FieldConfig{Control: Use(components.Checkbox)},
			want: []string{},
		},
		{
			name: "equal width is not a field width",
			cfg:  FieldConfig{Width: "equal"},
			want: []string{CodeInvalidWidth},
		},
		{
			name: "children with control",
			cfg:  FieldConfig{Control: ControlSelect, Children: []element.Node{element.Text("x")}},
			want: []string{CodeChildrenWithControl},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := warningCodes(Validate(tc.cfg))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateDoesNotBlockRendering(t *testing.T) {
	cfg := FieldConfig{Required: true, Type: "text"}
	if len(Validate(cfg)) != 2 {
		t.Fatalf("expected two warnings")
	}
	if _, err := Render(cfg); err != nil {
		t.Fatalf("invalid configurations must still render: %v", err)
	}
}

func TestFromPropsSplitsDeclaredAndRest(t *testing.T) {
	cfg, warnings := FromProps(element.Props{
		"as":         "section",
		"control":    components.Radio,
		"label":      "Size",
		"width":      "3",
		"error":      true,
		"className":  "compact",
		"aria-label": "size",
		"value":      "small",
	})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if got := cfg.As.Name(); got != "section" {
		t.Fatalf("unexpected wrapper %q", got)
	}
	control, ok := cfg.Control.(ComponentControl)
	if !ok || !element.ComponentType(control.Component).Is(components.Radio) {
		t.Fatalf("expected Radio component control, got %#v", cfg.Control)
	}
	if cfg.Width != "three" || !cfg.Error || cfg.ClassName != "compact" || cfg.Label != "Size" {
		t.Fatalf("declared props not decoded: %+v", cfg)
	}
	want := element.Props{"aria-label": "size", "value": "small"}
	if diff := cmp.Diff(want, cfg.Rest); diff != "" {
		t.Fatalf("rest mismatch (-want +got):\n%s", diff)
	}
}

func TestFromPropsReportsBadValues(t *testing.T) {
	cfg, warnings := FromProps(element.Props{
		"as":      42,
		"control": 3.5,
		"width":   "huge",
	})
	if cfg.Control != nil || cfg.Width != "" || !cfg.As.IsZero() {
		t.Fatalf("invalid values must be dropped: %+v", cfg)
	}
	want := []string{CodeInvalidProp, CodeInvalidProp, CodeInvalidWidth}
	if diff := cmp.Diff(want, warningCodes(warnings)); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldConfigPropsRoundTrip(t *testing.T) {
	original := FieldConfig{
		Control:  ControlTextArea,
		Label:    "Bio",
		Width:    "ten",
		Inline:   true,
		Required: true,
		Rest:     element.Props{"rows": 4},
	}
	decoded, warnings := FromProps(original.Props())
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if decoded.Control != original.Control || decoded.Label != original.Label ||
		decoded.Width != original.Width || decoded.Inline != original.Inline ||
		decoded.Required != original.Required {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
	if diff := cmp.Diff(original.Rest, decoded.Rest); diff != "" {
		t.Fatalf("rest mismatch (-want +got):\n%s", diff)
	}
}

func TestLogWarnings(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	component := FieldComponent{Logger: logger}
	if _, err := component.Render(element.Props{"required": true, "type": "text"}, nil); err != nil {
		t.Fatalf("render: %v", err)
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected two warnings logged, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "FormField" || fields["code"] != CodeRequiredWithoutLabel {
		t.Fatalf("unexpected log fields: %v", fields)
	}

	LogWarnings(nil, "FormField", []Warning{{Code: "x"}})
}
