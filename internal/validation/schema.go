// Package validation checks decoded JSON payloads against a declarative
// field schema before anything is sent to the store.
//
// Field rules are go-playground/validator tags evaluated per field, so a
// schema can run in full mode (required fields must be present) or in
// partial mode (every field optional, present fields keep their rules).
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Kind is the JSON type a field must carry
type Kind int

const (
	String Kind = iota
	Number
)

// Field describes one accepted key of a payload
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	// Rules is a validator tag string such as "notblank" or "gt=0"
	Rules string
	// Messages maps a validator tag, or "required" and "type", to the
	// message reported to the caller
	Messages map[string]string
}

func (f Field) message(tag string) string {
	if msg, ok := f.Messages[tag]; ok {
		return msg
	}
	return fmt.Sprintf("%s no es válido", f.Name)
}

// Schema is an ordered set of fields
type Schema struct {
	fields   []Field
	validate *validator.Validate
}

// NewSchema creates a schema with the given fields
func NewSchema(fields ...Field) *Schema {
	v := validator.New()
	// notblank is not part of the baked-in tags
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return &Schema{
		fields:   fields,
		validate: v,
	}
}

// Partial returns a copy of the schema where no field is required
func (s *Schema) Partial() *Schema {
	fields := make([]Field, len(s.fields))
	for i, f := range s.fields {
		f.Required = false
		fields[i] = f
	}
	return &Schema{fields: fields, validate: s.validate}
}

// Parse validates raw against the schema and returns the decoded values of
// the fields that were present. Keys unknown to the schema are dropped.
// The returned values are string or float64 according to the field kind.
func (s *Schema) Parse(raw map[string]json.RawMessage) (map[string]any, error) {
	values := make(map[string]any, len(s.fields))
	var errs Errors

	for _, f := range s.fields {
		data, present := raw[f.Name]
		if !present {
			if f.Required {
				errs = append(errs, FieldError{Field: f.Name, Tag: "required", Message: f.message("required")})
			}
			continue
		}

		value, ok := decode(f.Kind, data)
		if !ok {
			errs = append(errs, FieldError{Field: f.Name, Tag: "type", Message: f.message("type")})
			continue
		}

		if f.Rules != "" {
			if err := s.validate.Var(value, f.Rules); err != nil {
				tag := f.Rules
				if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
					tag = verrs[0].Tag()
				}
				errs = append(errs, FieldError{Field: f.Name, Tag: tag, Message: f.message(tag)})
				continue
			}
		}

		values[f.Name] = value
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}

func decode(kind Kind, data json.RawMessage) (any, bool) {
	// null never satisfies a typed field
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, false
	}

	switch kind {
	case String:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, false
		}
		return s, true
	case Number:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, false
		}
		return n, true
	}
	return nil, false
}

// FieldError is a single failed rule
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Errors collects every failed rule of one payload
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		if fe.Field == "" {
			parts = append(parts, fe.Message)
			continue
		}
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// DecodeObject parses a request body as a JSON object. An empty body or a
// literal null decodes to an empty object.
func DecodeObject(data []byte) (map[string]json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return map[string]json.RawMessage{}, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}
