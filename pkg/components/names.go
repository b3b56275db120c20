package components

// Canonical component names used by the default registry and form documents.
const (
	NameCheckbox = "checkbox"
	NameRadio    = "radio"
	NameLabel    = "label"
	NameImage    = "image"
	NameDropdown = "dropdown"
	NameField    = "field"
	NameForm     = "form"
)

// DefaultStylesheet is the Semantic UI bundle referenced by the built-in
// components.
const DefaultStylesheet = "semantic.min.css"
