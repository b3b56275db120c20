package props

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/element"
)

type namedComponent struct{}

func (namedComponent) Name() string { return "Named" }

func (namedComponent) Render(p element.Props, children []element.Node) (element.Node, error) {
	return element.New(element.Tag("div"), p, children...), nil
}

func TestUnhandledIsSetDifference(t *testing.T) {
	all := element.Props{
		"label":     "Email",
		"control":   "input",
		"id":        "email",
		"data-role": "primary",
	}

	got := Unhandled(all, []string{"label", "control", "width"})
	want := element.Props{"id": "email", "data-role": "primary"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unhandled mismatch (-want +got):\n%s", diff)
	}
	if _, ok := all["id"]; !ok {
		t.Fatalf("input props must not be modified")
	}
}

func TestUnhandledEmpty(t *testing.T) {
	if got := Unhandled(nil, []string{"a"}); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
	if got := Unhandled(element.Props{"a": 1}, []string{"a"}); got != nil {
		t.Fatalf("expected nil when everything is declared, got %v", got)
	}
}

func TestElementType(t *testing.T) {
	def := element.Tag("div")

	if got := ElementType(def, nil); got != def {
		t.Fatalf("expected default type, got %q", got.Name())
	}
	if got := ElementType(def, element.Props{AsKey: "fieldset"}); got.Name() != "fieldset" {
		t.Fatalf("expected fieldset override, got %q", got.Name())
	}
	if got := ElementType(def, element.Props{AsKey: "  "}); got != def {
		t.Fatalf("blank override must fall back to default, got %q", got.Name())
	}
	got := ElementType(def, element.Props{AsKey: namedComponent{}})
	if !got.Is(namedComponent{}) {
		t.Fatalf("expected component override, got %q", got.Name())
	}
	if got := ElementType(def, element.Props{AsKey: 42}); got != def {
		t.Fatalf("unsupported override must fall back to default, got %q", got.Name())
	}
}
