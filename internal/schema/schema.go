package schema

import (
	"fmt"
	"net/mail"
)

// Kind identifies an entity kind. The collection name in the document store
// is the string value of the kind (lowercased entity name).
type Kind string

const (
	KindUser           Kind = "user"
	KindBlogPost       Kind = "blogpost"
	KindContactMessage Kind = "contactmessage"
	KindProduct        Kind = "product"
)

// FieldType is the declared type of a schema field.
type FieldType int

const (
	TypeString FieldType = iota
	TypeBool
	TypeFloat
	TypeStringList
)

func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeFloat:
		return "float"
	case TypeStringList:
		return "string list"
	}
	return "unknown"
}

// Format is an additional syntactic constraint on a string field.
type Format int

const (
	FormatNone Format = iota
	FormatEmail
)

// FieldSpec describes one field of a stored entity: its name, type, whether
// it must be present in input, the default applied when absent, and an
// optional format constraint.
type FieldSpec struct {
	Name     string
	Type     FieldType
	Required bool
	Default  interface{}
	Format   Format
}

// ValidationError reports the first offending field of an invalid document.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// registry holds the immutable, process-wide field specifications per kind.
// Order matters only for presentation (the /schema endpoint).
var registry = map[Kind][]FieldSpec{
	KindUser: {
		{Name: "name", Type: TypeString, Required: true},
		{Name: "email", Type: TypeString, Required: true, Format: FormatEmail},
		{Name: "password_hash", Type: TypeString, Required: true},
		{Name: "is_active", Type: TypeBool, Default: true},
	},
	KindBlogPost: {
		{Name: "title", Type: TypeString, Required: true},
		{Name: "slug", Type: TypeString, Required: true},
		{Name: "excerpt", Type: TypeString},
		{Name: "content", Type: TypeString, Required: true},
		{Name: "tags", Type: TypeStringList, Default: []string{}},
		{Name: "author", Type: TypeString},
		{Name: "published", Type: TypeBool, Default: true},
	},
	KindContactMessage: {
		{Name: "name", Type: TypeString, Required: true},
		{Name: "email", Type: TypeString, Required: true, Format: FormatEmail},
		{Name: "message", Type: TypeString, Required: true},
	},
	KindProduct: {
		{Name: "title", Type: TypeString, Required: true},
		{Name: "description", Type: TypeString},
		{Name: "price", Type: TypeFloat, Required: true},
		{Name: "category", Type: TypeString, Required: true},
		{Name: "in_stock", Type: TypeBool, Default: true},
	},
}

// Fields returns the ordered field specifications for the given kind, or nil
// when the kind is not registered. The returned slice must not be mutated.
func Fields(kind Kind) []FieldSpec {
	return registry[kind]
}

// FieldNames returns just the field names for the given kind.
func FieldNames(kind Kind) []string {
	specs := registry[kind]
	names := make([]string, 0, len(specs))
	for _, f := range specs {
		names = append(names, f.Name)
	}
	return names
}

// Validate checks a raw key/value document against the registered shape of
// kind. It returns a copy of the document with defaults applied for absent
// optional fields, or a *ValidationError naming the first offending field.
func Validate(kind Kind, doc map[string]interface{}) (map[string]interface{}, error) {
	specs, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
	out := make(map[string]interface{}, len(specs))
	for _, f := range specs {
		v, present := doc[f.Name]
		if !present || v == nil {
			if f.Required {
				return nil, &ValidationError{Field: f.Name, Reason: "required"}
			}
			if f.Default != nil {
				out[f.Name] = f.Default
			}
			continue
		}
		cv, err := coerce(f, v)
		if err != nil {
			return nil, err
		}
		out[f.Name] = cv
	}
	return out, nil
}

func coerce(f FieldSpec, v interface{}) (interface{}, error) {
	switch f.Type {
	case TypeString:
		s, ok := v.(string)
		if !ok {
			return nil, &ValidationError{Field: f.Name, Reason: fmt.Sprintf("expected string, got %T", v)}
		}
		if f.Format == FormatEmail && !validEmail(s) {
			return nil, &ValidationError{Field: f.Name, Reason: "invalid email address"}
		}
		return s, nil
	case TypeBool:
		b, ok := v.(bool)
		if !ok {
			return nil, &ValidationError{Field: f.Name, Reason: fmt.Sprintf("expected bool, got %T", v)}
		}
		return b, nil
	case TypeFloat:
		// JSON decoding yields float64; accept common integer forms too.
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		case int32:
			return float64(n), nil
		case int64:
			return float64(n), nil
		}
		return nil, &ValidationError{Field: f.Name, Reason: fmt.Sprintf("expected number, got %T", v)}
	case TypeStringList:
		switch l := v.(type) {
		case []string:
			return l, nil
		case []interface{}:
			out := make([]string, 0, len(l))
			for _, e := range l {
				s, ok := e.(string)
				if !ok {
					return nil, &ValidationError{Field: f.Name, Reason: fmt.Sprintf("expected string element, got %T", e)}
				}
				out = append(out, s)
			}
			return out, nil
		}
		return nil, &ValidationError{Field: f.Name, Reason: fmt.Sprintf("expected string list, got %T", v)}
	}
	return nil, &ValidationError{Field: f.Name, Reason: "unsupported field type"}
}

// validEmail accepts only bare addresses (no display names), matching the
// strictness of the request-level binding validation.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}
