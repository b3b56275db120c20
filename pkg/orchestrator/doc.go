// Package orchestrator wires field sources (form documents, OpenAPI
// operations or plain configurations) through validation and FormField
// rendering into a named renderer.
package orchestrator
