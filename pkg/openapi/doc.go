// Package openapi derives FormField configurations from the JSON request body
// of OpenAPI 3 operations. Documents are parsed with kin-openapi.
package openapi
