package sui

import "testing"

func TestParseWidth(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  Width
		ok    bool
	}{
		{name: "int", input: 4, want: "four", ok: true},
		{name: "numeric string", input: "16", want: "sixteen", ok: true},
		{name: "word", input: " Twelve ", want: "twelve", ok: true},
		{name: "float from json", input: float64(2), want: "two", ok: true},
		{name: "equal", input: "equal", want: Equal, ok: true},
		{name: "zero", input: 0, ok: false},
		{name: "seventeen", input: 17, ok: false},
		{name: "fraction", input: 2.5, ok: false},
		{name: "garbage", input: "wide", ok: false},
		{name: "nil", input: nil, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseWidth(tc.input)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ParseWidth(%v) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestWidthsAreOrdered(t *testing.T) {
	widths := Widths()
	if len(widths) != 16 {
		t.Fatalf("expected 16 widths, got %d", len(widths))
	}
	if widths[0] != "one" || widths[15] != "sixteen" {
		t.Fatalf("unexpected bounds: %q..%q", widths[0], widths[15])
	}
	if NumberToWord(8) != "eight" {
		t.Fatalf("NumberToWord(8) = %q", NumberToWord(8))
	}
}
