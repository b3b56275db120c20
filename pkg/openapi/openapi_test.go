package openapi

import (
	"context"
	"errors"
	"os"
	"testing"
	"testing/fstest"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/components"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/form"
)

func loadFixture(t *testing.T) []byte {
	t.Helper()
	raw, err := Load(context.Background(), SourceFromFile("testdata/signup.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return raw
}

func TestOperations(t *testing.T) {
	operations, err := Operations(context.Background(), loadFixture(t))
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	ids := make([]string, 0, len(operations))
	for _, operation := range operations {
		ids = append(ids, operation.ID)
	}
	if diff := cmp.Diff([]string{"createAccount", "get:/accounts"}, ids); diff != "" {
		t.Fatalf("operation ids mismatch (-want +got):\n%s", diff)
	}
	if operations[0].Method != "POST" || operations[0].Summary != "Create an account" {
		t.Fatalf("unexpected operation %+v", operations[0])
	}
	if len(operations[1].Properties) != 0 {
		t.Fatalf("get operation has no request body")
	}
}

func TestFieldsFor(t *testing.T) {
	fields, operation, err := FieldsFor(context.Background(), loadFixture(t), "createAccount")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if operation.Path != "/accounts" {
		t.Fatalf("unexpected path %q", operation.Path)
	}

	byName := make(map[string]form.FieldConfig, len(fields))
	var names []string
	for _, field := range fields {
		name := field.Rest.String("name")
		names = append(names, name)
		byName[name] = field
	}
	wantNames := []string{"age", "bio", "email", "firstName", "newsletter", "plan", "tags"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Fatalf("field names mismatch (-want +got):\n%s", diff)
	}

	email := byName["email"]
	if email.Control != form.ControlInput || email.Type != "email" || !email.Required || email.Label != "Email" {
		t.Fatalf("unexpected email field %+v", email)
	}
	wantEmailRest := element.Props{"name": "email", "maxLength": "120", "placeholder": "Work address"}
	if diff := cmp.Diff(wantEmailRest, email.Rest); diff != "" {
		t.Fatalf("email rest mismatch (-want +got):\n%s", diff)
	}

	if got := byName["firstName"]; got.Label != "First Name" || got.Type != "text" {
		t.Fatalf("unexpected firstName field %+v", got)
	}
	if got := byName["bio"]; got.Control != form.ControlTextArea {
		t.Fatalf("long strings must use a textarea, got %#v", got.Control)
	}

	age := byName["age"]
	wantAgeRest := element.Props{"name": "age", "step": "1", "min": "18", "max": "130"}
	if age.Type != "number" {
		t.Fatalf("expected number input, got %q", age.Type)
	}
	if diff := cmp.Diff(wantAgeRest, age.Rest); diff != "" {
		t.Fatalf("age rest mismatch (-want +got):\n%s", diff)
	}

	plan := byName["plan"]
	control, ok := plan.Control.(form.ComponentControl)
	if !ok || !element.ComponentType(control.Component).Is(components.Dropdown) {
		t.Fatalf("enum must use a dropdown, got %#v", plan.Control)
	}
	wantOptions := []components.Option{{Text: "Free", Value: "free"}, {Text: "Pro", Value: "pro"}}
	if diff := cmp.Diff(wantOptions, plan.Rest["options"]); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if plan.Rest["value"] != "free" || !plan.Required {
		t.Fatalf("expected required plan defaulting to free, got %+v", plan)
	}

	newsletter := byName["newsletter"]
	control, ok = newsletter.Control.(form.ComponentControl)
	if !ok || !element.ComponentType(control.Component).Is(components.Checkbox) {
		t.Fatalf("boolean must use a checkbox, got %#v", newsletter.Control)
	}
	if newsletter.Label != "Send me news" || newsletter.Rest["checked"] != true {
		t.Fatalf("unexpected newsletter field %+v", newsletter)
	}

	if tags := byName["tags"]; tags.Rest["multiple"] != true {
		t.Fatalf("enum arrays must be multi selects, got %+v", tags)
	}

	for _, field := range fields {
		if warnings := form.Validate(field); len(warnings) != 0 {
			t.Fatalf("field %s has warnings %v", field.Rest.String("name"), warnings)
		}
	}
}

func TestFieldsForUnknownOperation(t *testing.T) {
	_, _, err := FieldsFor(context.Background(), loadFixture(t), "deleteAccount")
	if !errors.Is(err, ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
}

func TestOperationsRejectsEmptyDocuments(t *testing.T) {
	if _, err := Operations(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	raw := []byte(`{"openapi":"3.0.3","info":{"title":"x","version":"1"},"paths":{}}`)
	if _, err := Operations(context.Background(), raw); err == nil {
		t.Fatalf("expected error for document without paths")
	}
}

func TestLoadSources(t *testing.T) {
	data, err := os.ReadFile("testdata/signup.yaml")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	fsys := fstest.MapFS{"api.yaml": &fstest.MapFile{Data: data}}

	got, err := Load(context.Background(), SourceFromFS("api.yaml"), WithFileSystem(fsys))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("fs payload mismatch")
	}
	if _, err := Load(context.Background(), SourceFromFS("api.yaml")); err == nil {
		t.Fatalf("expected error without filesystem")
	}
	if _, err := Load(context.Background(), SourceFromURL("https://example.com/api.yaml")); err == nil {
		t.Fatalf("expected error when http is disabled")
	}
	if src := SourceFromLocation("https://example.com/api.yaml"); src.Kind != SourceKindURL {
		t.Fatalf("expected url source, got %q", src.Kind)
	}
}

func TestDetect(t *testing.T) {
	cases := map[string]bool{
		`{"openapi":"3.0.0"}`:    true,
		"openapi: 3.1.0\npaths:": true,
		"swagger: '2.0'":         true,
		"title: Sign up\n":       false,
		"":                       false,
	}
	for raw, want := range cases {
		if got := Detect([]byte(raw)); got != want {
			t.Fatalf("Detect(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestLabel(t *testing.T) {
	cases := map[string]string{
		"firstName":  "First Name",
		"first_name": "First Name",
		"address2":   "Address 2",
		"pro":        "Pro",
		"élan_vital": "Élan Vital",
		"über":       "Über",
		"straßeNr2":  "Straße Nr 2",
	}
	for in, want := range cases {
		got := Label(in)
		if !utf8.ValidString(got) {
			t.Fatalf("Label(%q) = %q is not valid UTF-8", in, got)
		}
		if got != want {
			t.Fatalf("Label(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFieldForNonASCIIName(t *testing.T) {
	cfg, ok := FieldFor(Property{Name: "ärzteName", Type: "string"})
	if !ok {
		t.Fatalf("expected a field for a string property")
	}
	if cfg.Label != "Ärzte Name" {
		t.Fatalf("unexpected label %q", cfg.Label)
	}
}
