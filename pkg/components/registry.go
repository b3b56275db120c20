package components

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-formfield/pkg/element"
)

// Descriptor bundles a component with the stylesheets it depends on.
type Descriptor struct {
	Name        string
	Component   element.Component
	Stylesheets []string
}

// Registry tracks component descriptors keyed by name. Callers can register new
// components or override defaults.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		components: make(map[string]Descriptor),
	}
}

// NewDefaultRegistry returns a registry holding the built-in controls and
// content components.
func NewDefaultRegistry() *Registry {
	registry := New()
	registry.MustRegister(NameCheckbox, Descriptor{Component: Checkbox, Stylesheets: []string{DefaultStylesheet}})
	registry.MustRegister(NameRadio, Descriptor{Component: Radio, Stylesheets: []string{DefaultStylesheet}})
	registry.MustRegister(NameLabel, Descriptor{Component: Label, Stylesheets: []string{DefaultStylesheet}})
	registry.MustRegister(NameImage, Descriptor{Component: Image, Stylesheets: []string{DefaultStylesheet}})
	registry.MustRegister(NameDropdown, Descriptor{Component: Dropdown, Stylesheets: []string{DefaultStylesheet}})
	return registry
}

// Clone returns a copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New()
	for name, descriptor := range r.components {
		cloned.components[name] = cloneDescriptor(descriptor)
	}
	return cloned
}

// Register associates a descriptor with the provided name. Existing entries are
// replaced.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("components: component name is required")
	}
	if descriptor.Component == nil {
		return fmt.Errorf("components: component for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.components[name] = cloneDescriptor(descriptor)
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.components[normalize(name)]
	if !ok {
		return Descriptor{}, false
	}
	return cloneDescriptor(descriptor), true
}

// Lookup returns the component registered under name.
func (r *Registry) Lookup(name string) (element.Component, bool) {
	descriptor, ok := r.Descriptor(name)
	if !ok {
		return nil, false
	}
	return descriptor.Component, true
}

// Names returns a sorted slice of registered component names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Stylesheets resolves the de-duplicated stylesheets for the provided
// component names, in first-seen order. Names match either the registry key or
// the component's own Name, so the output of render.Components can be passed
// directly.
func (r *Registry) Stylesheets(names []string) []string {
	if len(names) == 0 {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	seen := make(map[string]struct{})
	for _, name := range names {
		descriptor, ok := r.find(name)
		if !ok {
			continue
		}
		for _, href := range descriptor.Stylesheets {
			if href == "" {
				continue
			}
			if _, exists := seen[href]; exists {
				continue
			}
			seen[href] = struct{}{}
			out = append(out, href)
		}
	}
	return out
}

func (r *Registry) find(name string) (Descriptor, bool) {
	key := normalize(name)
	if descriptor, ok := r.components[key]; ok {
		return descriptor, true
	}
	keys := make([]string, 0, len(r.components))
	for registered := range r.components {
		keys = append(keys, registered)
	}
	slices.Sort(keys)
	for _, registered := range keys {
		descriptor := r.components[registered]
		if normalize(descriptor.Component.Name()) == key {
			return descriptor, true
		}
	}
	return Descriptor{}, false
}

func cloneDescriptor(src Descriptor) Descriptor {
	return Descriptor{
		Name:        src.Name,
		Component:   src.Component,
		Stylesheets: slices.Clone(src.Stylesheets),
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
