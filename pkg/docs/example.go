// Package docs holds the example catalogue and renders examples into themed
// documentation pages.
package docs

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-formfield/pkg/element"
)

// ErrExampleNotFound is returned by Lookup for unknown example names.
var ErrExampleNotFound = errors.New("docs: example not found")

// Example is a named, static element tree shown on a documentation page.
type Example struct {
	Name        string
	Section     string
	Title       string
	Description string
	Build       func() (element.Node, error)
}

// Section groups examples under a heading.
type Section struct {
	Name     string
	Examples []Example
}

// Catalog stores examples by name.
type Catalog struct {
	mu       sync.RWMutex
	examples map[string]Example
}

func NewCatalog() *Catalog {
	return &Catalog{examples: make(map[string]Example)}
}

// DefaultCatalog returns a catalogue holding the built-in examples.
func DefaultCatalog() *Catalog {
	catalog := NewCatalog()
	for _, example := range Builtin() {
		catalog.MustRegister(example)
	}
	return catalog
}

// Register adds an example. Names must be unique and Build is required.
func (c *Catalog) Register(example Example) error {
	example.Name = strings.TrimSpace(example.Name)
	if example.Name == "" {
		return errors.New("docs: example name is required")
	}
	if example.Build == nil {
		return fmt.Errorf("docs: example %q has no build function", example.Name)
	}
	if example.Title == "" {
		example.Title = example.Name
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.examples[example.Name]; exists {
		return fmt.Errorf("docs: example %q already registered", example.Name)
	}
	c.examples[example.Name] = example
	return nil
}

func (c *Catalog) MustRegister(example Example) {
	if err := c.Register(example); err != nil {
		panic(err)
	}
}

func (c *Catalog) Lookup(name string) (Example, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	example, ok := c.examples[strings.TrimSpace(name)]
	if !ok {
		return Example{}, fmt.Errorf("%w: %q", ErrExampleNotFound, name)
	}
	return example, nil
}

// List returns every example ordered by section, then name.
func (c *Catalog) List() []Example {
	c.mu.RLock()
	out := make([]Example, 0, len(c.examples))
	for _, example := range c.examples {
		out = append(out, example)
	}
	c.mu.RUnlock()

	slices.SortFunc(out, compareExamples)
	return out
}

// Select resolves names in order. An empty list selects every example.
func (c *Catalog) Select(names ...string) ([]Example, error) {
	if len(names) == 0 {
		return c.List(), nil
	}
	out := make([]Example, 0, len(names))
	for _, name := range names {
		example, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, example)
	}
	return out, nil
}

// Sections groups examples by section, keeping the order of first appearance.
func Sections(examples []Example) []Section {
	var sections []Section
	index := make(map[string]int)
	for _, example := range examples {
		idx, ok := index[example.Section]
		if !ok {
			idx = len(sections)
			index[example.Section] = idx
			sections = append(sections, Section{Name: example.Section})
		}
		sections[idx].Examples = append(sections[idx].Examples, example)
	}
	return sections
}

func compareExamples(a, b Example) int {
	if c := strings.Compare(a.Section, b.Section); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}
