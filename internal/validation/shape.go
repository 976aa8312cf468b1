package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/Rrens/ecotrip/internal/domain"
)

// strictObject is implemented by types that reject undeclared JSON keys
type strictObject interface {
	Strict() bool
}

var (
	strictType      = reflect.TypeOf((*strictObject)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
)

// leafNames names the JSON type expected by custom-decoded fields
var leafNames = map[reflect.Type]string{
	reflect.TypeOf(domain.DateValue{}): "string",
}

// shapeChecker walks raw JSON alongside the Go type it will decode into and
// reports missing fields, JSON type mismatches, numbers that do not fit their
// field and undeclared keys on strict objects. Constraints are left to the
// validator.
type shapeChecker struct {
	messages map[string]string
	errs     []FieldError
}

func (c *shapeChecker) check(t reflect.Type, raw json.RawMessage, path []string) {
	errs := &c.errs
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	got := jsonKind(raw)
	if got == "null" {
		addError(errs, path, fmt.Sprintf("Expected %s, received null", expectedName(t)))
		return
	}

	if reflect.PointerTo(t).Implements(unmarshalerType) {
		if err := json.Unmarshal(raw, reflect.New(t).Interface()); err != nil {
			addError(errs, path, fmt.Sprintf("Expected %s, received %s", expectedName(t), got))
		}
		return
	}

	switch t.Kind() {
	case reflect.String:
		if got != "string" {
			addError(errs, path, "Expected string, received "+got)
		}

	case reflect.Bool:
		if got != "boolean" {
			addError(errs, path, "Expected boolean, received "+got)
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if got != "number" {
			addError(errs, path, "Expected number, received "+got)
			return
		}
		if !c.finite(raw, path) {
			return
		}
		if _, err := strconv.ParseInt(string(bytes.TrimSpace(raw)), 10, t.Bits()); err != nil {
			if isIntegerLiteral(raw) {
				addError(errs, path, "Number is out of range")
			} else {
				addError(errs, path, "Expected integer, received float")
			}
		}

	case reflect.Float32, reflect.Float64:
		if got != "number" {
			addError(errs, path, "Expected number, received "+got)
			return
		}
		c.finite(raw, path)

	case reflect.Slice:
		if got != "array" {
			addError(errs, path, "Expected array, received "+got)
			return
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			addError(errs, path, "Invalid array")
			return
		}
		for i, item := range items {
			c.check(t.Elem(), item, appendPath(path, strconv.Itoa(i)))
		}

	case reflect.Struct:
		if got != "object" {
			addError(errs, path, "Expected object, received "+got)
			return
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			addError(errs, path, "Invalid object")
			return
		}
		c.object(t, obj, path)
	}
}

// finite reports numbers beyond float64 range the way the "finite" rule does
func (c *shapeChecker) finite(raw json.RawMessage, path []string) bool {
	f, err := strconv.ParseFloat(string(bytes.TrimSpace(raw)), 64)
	if err == nil && !math.IsInf(f, 0) {
		return true
	}
	p := strings.Join(path, ".")
	msg, ok := c.messages[messageKey(p, "finite")]
	if !ok {
		msg = "Number must be finite"
	}
	c.errs = append(c.errs, FieldError{Path: p, Message: msg})
	return false
}

func (c *shapeChecker) object(t reflect.Type, obj map[string]json.RawMessage, path []string) {
	errs := &c.errs
	declared := make(map[string]bool, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, jsonOmitEmpty := jsonName(field)
		if name == "" {
			continue
		}
		declared[name] = true

		raw, ok := obj[name]
		if !ok {
			if !isOptional(field, jsonOmitEmpty) {
				addError(errs, appendPath(path, name), "Required")
			}
			continue
		}
		c.check(field.Type, raw, appendPath(path, name))
	}

	if !t.Implements(strictType) {
		return
	}

	var unknown []string
	for key := range obj {
		if !declared[key] {
			unknown = append(unknown, "'"+key+"'")
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		addError(errs, path, "Unrecognized key(s) in object: "+strings.Join(unknown, ", "))
	}
}

// declaredOnly re-encodes raw keeping only the keys that exactly match a
// declared field, so decoding cannot pick up case-folded duplicates.
// raw must already have passed the shape check.
func declaredOnly(t reflect.Type, raw json.RawMessage) (json.RawMessage, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return raw, nil
	}

	switch t.Kind() {
	case reflect.Slice:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		for i, item := range items {
			clean, err := declaredOnly(t.Elem(), item)
			if err != nil {
				return nil, err
			}
			items[i] = clean
		}
		return json.Marshal(items)

	case reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, err
		}
		out := make(map[string]json.RawMessage, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name, _ := jsonName(field)
			value, ok := obj[name]
			if name == "" || !ok {
				continue
			}
			clean, err := declaredOnly(field.Type, value)
			if err != nil {
				return nil, err
			}
			out[name] = clean
		}
		return json.Marshal(out)
	}

	return raw, nil
}

// isOptional reports whether a field may be absent from the payload
func isOptional(field reflect.StructField, jsonOmitEmpty bool) bool {
	if jsonOmitEmpty || field.Type.Kind() == reflect.Pointer {
		return true
	}
	rules := strings.Split(field.Tag.Get("validate"), ",")
	return rules[0] == "omitempty" || rules[0] == "omitnil"
}

func jsonName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	if name == "" {
		name = field.Name
	}
	omitEmpty := false
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty
}

// jsonKind names the JSON type of a raw value the way error messages do
func jsonKind(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "undefined"
	}
	switch raw[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func expectedName(t reflect.Type) string {
	if name, ok := leafNames[t]; ok {
		return name
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice:
		return "array"
	case reflect.Struct:
		return "object"
	}
	return "value"
}

func isIntegerLiteral(raw json.RawMessage) bool {
	return !bytes.ContainsAny(bytes.TrimSpace(raw), ".eE")
}

func appendPath(path []string, segment string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, segment)
}

func addError(errs *[]FieldError, path []string, message string) {
	*errs = append(*errs, FieldError{Path: strings.Join(path, "."), Message: message})
}
