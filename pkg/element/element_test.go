package element

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubComponent struct{ name string }

func (s stubComponent) Name() string { return s.name }

func (s stubComponent) Render(props Props, children []Node) (Node, error) {
	return New(Tag("span"), props, children...), nil
}

func TestNewCopiesInputs(t *testing.T) {
	props := Props{"id": "a"}
	children := []Node{Text("one")}

	node := New(Tag("div"), props, children...)
	props["id"] = "mutated"
	children[0] = Text("mutated")

	if got := node.Props.String("id"); got != "a" {
		t.Fatalf("expected props to be copied, got %q", got)
	}
	if got := node.Children[0].Text; got != "one" {
		t.Fatalf("expected children to be copied, got %q", got)
	}
}

func TestTypeIdentity(t *testing.T) {
	stub := stubComponent{name: "Stub"}
	typ := ComponentType(stub)

	if !typ.Is(stub) {
		t.Fatalf("expected type to match its component")
	}
	if typ.Is(stubComponent{name: "Other"}) {
		t.Fatalf("expected type not to match a different component")
	}
	if _, ok := typ.Tag(); ok {
		t.Fatalf("component type should not report a tag")
	}
	if got := Tag("div").Name(); got != "div" {
		t.Fatalf("tag name mismatch: %q", got)
	}
	if !(Type{}).IsZero() {
		t.Fatalf("zero type should report IsZero")
	}
}

func TestPropsHelpers(t *testing.T) {
	props := Props{"disabled": "disabled", "count": 2, "label": "  Name "}

	if !props.Bool("disabled") {
		t.Fatalf("expected attribute-style string to be truthy")
	}
	if props.Bool("missing") {
		t.Fatalf("expected missing key to be false")
	}
	if got := props.String("label"); got != "Name" {
		t.Fatalf("expected trimmed label, got %q", got)
	}
	if got := props.String("count"); got != "2" {
		t.Fatalf("expected formatted count, got %q", got)
	}

	without := props.Without("count")
	if without.Has("count") || !props.Has("count") {
		t.Fatalf("Without must not mutate the receiver")
	}
	if diff := cmp.Diff([]string{"count", "disabled", "label"}, props.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestNodeMarshalJSON(t *testing.T) {
	node := New(Tag("div"), Props{"className": "field"},
		New(ComponentType(stubComponent{name: "Checkbox"}), Props{"label": "Agree"}),
		Text("tail"),
	)

	payload, err := json.Marshal(node)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := map[string]any{
		"tag":   "div",
		"props": map[string]any{"className": "field"},
		"children": []any{
			map[string]any{"component": "Checkbox", "props": map[string]any{"label": "Agree"}},
			map[string]any{"text": "tail"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}
}

func TestTextContent(t *testing.T) {
	node := New(Tag("label"), nil, New(Tag("input"), nil), Text(" "), Text("Agree"))
	if got := node.TextContent(); got != " Agree" {
		t.Fatalf("unexpected text content %q", got)
	}
	if got := len(node.Find("input")); got != 1 {
		t.Fatalf("expected one input child, got %d", got)
	}
}
