// Package sui holds the fixed vocabularies shared by the Semantic UI style
// components: grid widths, sizes and colors.
package sui

import (
	"strconv"
	"strings"
)

// Width is a grid column count expressed as a word token ("four").
type Width string

// Equal is the width token accepted by groups that split space evenly.
const Equal Width = "equal"

var widthWords = []string{
	"one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
}

// Widths returns the sixteen column widths in ascending order.
func Widths() []Width {
	out := make([]Width, len(widthWords))
	for idx, word := range widthWords {
		out[idx] = Width(word)
	}
	return out
}

// NumberToWord converts 1..16 into its word token. Out of range values return
// an empty string.
func NumberToWord(n int) string {
	if n < 1 || n > len(widthWords) {
		return ""
	}
	return widthWords[n-1]
}

// ParseWidth accepts ints, numeric strings and word tokens and returns the
// canonical Width. The boolean is false for anything outside the fixed set.
func ParseWidth(value any) (Width, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case Width:
		return ParseWidth(string(v))
	case int:
		word := NumberToWord(v)
		return Width(word), word != ""
	case int64:
		return ParseWidth(int(v))
	case float64:
		if v != float64(int(v)) {
			return "", false
		}
		return ParseWidth(int(v))
	case string:
		trimmed := strings.ToLower(strings.TrimSpace(v))
		if trimmed == "" {
			return "", false
		}
		if n, err := strconv.Atoi(trimmed); err == nil {
			return ParseWidth(n)
		}
		if trimmed == string(Equal) {
			return Equal, true
		}
		for _, word := range widthWords {
			if word == trimmed {
				return Width(word), true
			}
		}
		return "", false
	default:
		return "", false
	}
}

// Sizes lists the size tokens accepted by Label and Image.
var Sizes = []string{"mini", "tiny", "small", "medium", "large", "big", "huge", "massive"}

// Colors lists the color tokens accepted by Label.
var Colors = []string{
	"red", "orange", "yellow", "olive", "green", "teal", "blue",
	"violet", "purple", "pink", "brown", "grey", "black",
}

// Contains reports whether value is one of the tokens in set.
func Contains(set []string, value string) bool {
	for _, token := range set {
		if token == value {
			return true
		}
	}
	return false
}
