package openapi

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrOperationNotFound is returned when an operation id is not in the document.
var ErrOperationNotFound = errors.New("openapi: operation not found")

// Operation is the subset of an OpenAPI operation needed to build a form.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	// Properties are the top level properties of the request body schema,
	// sorted by name.
	Properties []Property
}

// Property is one request body property.
type Property struct {
	Name        string
	Type        string
	Format      string
	Title       string
	Description string
	Enum        []any
	Default     any
	Pattern     string
	MaxLength   *uint64
	Minimum     *float64
	Maximum     *float64
	Required    bool
	ReadOnly    bool
	// Items holds the element schema of array properties.
	Items *Property
}

// ParserOption configures Operations.
type ParserOption func(*parserOptions)

type parserOptions struct {
	validate     bool
	externalRefs bool
}

// WithValidation validates the document before extracting operations.
func WithValidation(enabled bool) ParserOption {
	return func(opts *parserOptions) {
		opts.validate = enabled
	}
}

// WithExternalRefs allows $ref pointers to other documents.
func WithExternalRefs(enabled bool) ParserOption {
	return func(opts *parserOptions) {
		opts.externalRefs = enabled
	}
}

// Operations parses raw and returns its operations sorted by id. Operations
// without an operationId get "<method>:<path>".
func Operations(ctx context.Context, raw []byte, options ...ParserOption) ([]Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}
	opts := parserOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: opts.externalRefs,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}
	if opts.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi parser: document does not contain any paths")
	}

	var operations []Operation
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			if operation == nil {
				continue
			}
			operations = append(operations, convertOperation(strings.ToUpper(method), path, operation))
		}
	}
	slices.SortFunc(operations, func(a, b Operation) int {
		return strings.Compare(a.ID, b.ID)
	})
	return operations, nil
}

// FindOperation parses raw and returns the operation with the given id.
func FindOperation(ctx context.Context, raw []byte, operationID string, options ...ParserOption) (Operation, error) {
	operations, err := Operations(ctx, raw, options...)
	if err != nil {
		return Operation{}, err
	}
	for _, operation := range operations {
		if operation.ID == operationID {
			return operation, nil
		}
	}
	return Operation{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
}

func convertOperation(method, path string, operation *openapi3.Operation) Operation {
	id := operation.OperationID
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}
	return Operation{
		ID:          id,
		Method:      method,
		Path:        path,
		Summary:     operation.Summary,
		Description: operation.Description,
		Properties:  requestProperties(operation.RequestBody),
	}
}

func requestProperties(body *openapi3.RequestBodyRef) []Property {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt != nil {
			return objectProperties(mt.Schema)
		}
	}
	return nil
}

func objectProperties(ref *openapi3.SchemaRef) []Property {
	if ref == nil || ref.Value == nil {
		return nil
	}
	schema := ref.Value
	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	properties := make([]Property, 0, len(schema.Properties))
	for name, property := range schema.Properties {
		converted := convertProperty(name, property)
		_, converted.Required = required[name]
		properties = append(properties, converted)
	}
	slices.SortFunc(properties, func(a, b Property) int {
		return strings.Compare(a.Name, b.Name)
	})
	return properties
}

func convertProperty(name string, ref *openapi3.SchemaRef) Property {
	property := Property{Name: name}
	if ref == nil || ref.Value == nil {
		return property
	}
	src := ref.Value
	property.Type = schemaType(src.Type)
	property.Format = src.Format
	property.Title = src.Title
	property.Description = src.Description
	property.Default = src.Default
	property.Pattern = src.Pattern
	property.ReadOnly = src.ReadOnly
	if len(src.Enum) > 0 {
		property.Enum = slices.Clone(src.Enum)
	}
	if src.MaxLength != nil {
		value := *src.MaxLength
		property.MaxLength = &value
	}
	if src.Min != nil {
		value := *src.Min
		property.Minimum = &value
	}
	if src.Max != nil {
		value := *src.Max
		property.Maximum = &value
	}
	if src.Items != nil {
		items := convertProperty(name, src.Items)
		property.Items = &items
	}
	return property
}

// schemaType returns the first non-null type.
func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, value := range types.Slice() {
		if value != "null" {
			return value
		}
	}
	return ""
}
