package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single validation failure located by its JSON path.
// Array elements are addressed by index, e.g. "routeOptions.0.mode".
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// SchemaError carries every failure found while validating one payload
type SchemaError struct {
	Errors []FieldError
}

func (e *SchemaError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if fe.Path == "" {
			parts = append(parts, fe.Message)
			continue
		}
		parts = append(parts, fe.Path+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Result is the outcome of SafeParse
type Result[T any] struct {
	Success bool         `json:"success"`
	Data    *T           `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// defaulter is implemented by types that fill absent fields after decoding
type defaulter interface {
	ApplyDefaults()
}

// Schema validates JSON payloads into T
type Schema[T any] struct {
	name     string
	messages map[string]string
}

func newSchema[T any](name string, messages map[string]string) *Schema[T] {
	return &Schema[T]{name: name, messages: messages}
}

// Name returns the registry name of the schema
func (s *Schema[T]) Name() string {
	return s.name
}

// Parse decodes and validates payload. A failure is always a *SchemaError.
func (s *Schema[T]) Parse(payload []byte) (T, error) {
	var out T

	if !json.Valid(payload) {
		return out, &SchemaError{Errors: []FieldError{{Path: "", Message: "Invalid JSON"}}}
	}

	typ := reflect.TypeOf(out)
	shape := shapeChecker{messages: s.messages}
	shape.check(typ, payload, nil)
	if len(shape.errs) > 0 {
		return out, &SchemaError{Errors: shape.errs}
	}

	clean, err := declaredOnly(typ, payload)
	if err != nil {
		return out, &SchemaError{Errors: []FieldError{{Path: "", Message: "Invalid JSON"}}}
	}
	if err := json.Unmarshal(clean, &out); err != nil {
		return out, &SchemaError{Errors: []FieldError{{Path: "", Message: "Invalid JSON"}}}
	}
	if d, ok := any(&out).(defaulter); ok {
		d.ApplyDefaults()
	}

	if err := s.Check(out); err != nil {
		return out, err
	}
	return out, nil
}

// SafeParse is Parse without an error return
func (s *Schema[T]) SafeParse(payload []byte) Result[T] {
	v, err := s.Parse(payload)
	if err != nil {
		var se *SchemaError
		if errors.As(err, &se) {
			return Result[T]{Errors: se.Errors}
		}
		return Result[T]{Errors: []FieldError{{Message: err.Error()}}}
	}
	return Result[T]{Success: true, Data: &v}
}

// Check runs the field constraints against an already decoded value
func (s *Schema[T]) Check(v T) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &SchemaError{Errors: []FieldError{{Message: err.Error()}}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		out = append(out, FieldError{Path: path, Message: s.message(path, fe)})
	}
	return &SchemaError{Errors: out}
}

// Validate is Parse for callers that only know the schema by name
func (s *Schema[T]) Validate(payload []byte) (any, error) {
	v, err := s.Parse(payload)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Schema[T]) message(path string, fe validator.FieldError) string {
	if msg, ok := s.messages[messageKey(path, fe.Tag())]; ok {
		return msg
	}
	return defaultMessage(fe)
}

var indexPattern = regexp.MustCompile(`\[(\d+)\]`)

// fieldPath turns a validator namespace such as "Trip.routeOptions[0].mode"
// into "routeOptions.0.mode"
func fieldPath(namespace string) string {
	ns := indexPattern.ReplaceAllString(namespace, ".$1")
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ""
}

// messageKey replaces array indexes with "*" so one entry covers every element
func messageKey(path, tag string) string {
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		if seg != "" && strings.Trim(seg, "0123456789") == "" {
			segments[i] = "*"
		}
	}
	return strings.Join(segments, ".") + ":" + tag
}
