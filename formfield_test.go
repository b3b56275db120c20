package formfield

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-formfield/pkg/docs"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/form"
	"github.com/goliatone/go-formfield/pkg/formdoc"
	"github.com/goliatone/go-formfield/pkg/openapi"
)

func TestRenderField(t *testing.T) {
	got, err := RenderField(FieldConfig{Control: form.ControlInput, Label: "First Name", Rest: element.Props{"placeholder": "First Name"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<div class="field"><label>First Name</label><input placeholder="First Name"/></div>`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestRenderNode(t *testing.T) {
	got, err := RenderNode(docs.LabelExampleImage())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "Elliot") || !strings.Contains(got, "Stevie") {
		t.Fatalf("unexpected markup %s", got)
	}
}

func TestGenerateHTML(t *testing.T) {
	out, err := GenerateHTML(context.Background(), openapi.SourceFromFile("pkg/openapi/testdata/signup.yaml"), "createAccount", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(string(out), `<form action="/accounts" class="ui form" method="post">`) {
		t.Fatalf("unexpected output %s", out)
	}
}

func TestGenerateHTMLFromDocument(t *testing.T) {
	doc, err := formdoc.Parse([]byte("fields:\n  - name: city\n    label: City\n    control: input\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := GenerateHTMLFromDocument(context.Background(), doc, "html")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := `<form class="ui form"><div class="field"><label>City</label><input name="city"/></div></form>`
	if string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "page.tpl"); err != nil {
		t.Fatalf("expected page.tpl in embedded templates: %v", err)
	}
}
