// Package template defines the engine seam page renderers depend on. The pongo
// subpackage provides the pongo2 implementation.
package template
