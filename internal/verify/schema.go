package verify

import (
	"strings"

	"github.com/corpus-core/colibri-stateless-sub002/internal/bytesutil"
)

// SchemaKind enumerates the compact primitive and composite types spec.md
// §4.7 defines for request-argument validation.
type SchemaKind int

const (
	KindAddress SchemaKind = iota // 20-byte hex
	KindBytes32                   // 32-byte hex
	KindBytes                     // arbitrary hex
	KindHexUint                   // 0x-prefixed hex integer
	KindSUint                     // decimal-string integer
	KindUint                      // native JSON number
	KindBool
	KindBlock // block tag: number, hex, or "latest"/"earliest"/"pending"/"finalized"/"safe"
	KindArray
	KindObject
	KindTuple // fixed-length positional array, each slot its own schema
)

// Schema is a recursive type descriptor. Array uses Elem; Object uses
// Fields (required) and Optional (may be absent); Wildcard, when set,
// validates any extra object key not named in Fields/Optional (the "*":T
// entry spec.md §4.7 mentions).
type Schema struct {
	Kind     SchemaKind
	Elem     *Schema
	Elems    []*Schema // KindTuple
	Fields   map[string]*Schema
	Optional map[string]*Schema
	Wildcard *Schema
}

func Address() *Schema { return &Schema{Kind: KindAddress} }
func Bytes32() *Schema  { return &Schema{Kind: KindBytes32} }
func Bytes() *Schema    { return &Schema{Kind: KindBytes} }
func HexUint() *Schema  { return &Schema{Kind: KindHexUint} }
func SUint() *Schema    { return &Schema{Kind: KindSUint} }
func Uint() *Schema     { return &Schema{Kind: KindUint} }
func Bool() *Schema     { return &Schema{Kind: KindBool} }
func Block() *Schema    { return &Schema{Kind: KindBlock} }
func Array(elem *Schema) *Schema { return &Schema{Kind: KindArray, Elem: elem} }
func Tuple(elems ...*Schema) *Schema { return &Schema{Kind: KindTuple, Elems: elems} }
func Object(fields, optional map[string]*Schema, wildcard *Schema) *Schema {
	return &Schema{Kind: KindObject, Fields: fields, Optional: optional, Wildcard: wildcard}
}

var blockTags = map[string]bool{
	"latest": true, "earliest": true, "pending": true, "finalized": true, "safe": true,
}

// Validate checks value (as produced by encoding/json.Unmarshal into
// interface{}) against schema, returning a diagnostic InvalidInput error
// on mismatch or nil on success — the Go rendering of spec.md's "NULL on
// success, allocated error string on failure" contract.
func Validate(schema *Schema, value interface{}) error {
	switch schema.Kind {
	case KindAddress:
		return validateHexLen(value, 20, "address")
	case KindBytes32:
		return validateHexLen(value, 32, "bytes32")
	case KindBytes:
		s, ok := value.(string)
		if !ok {
			return Errorf(ErrInvalidInput, "bytes must be a hex string")
		}
		if _, err := bytesutil.DecodeHex(s); err != nil {
			return Errorf(ErrInvalidInput, "bytes: %v", err)
		}
		return nil
	case KindHexUint:
		s, ok := value.(string)
		if !ok || !strings.HasPrefix(s, "0x") {
			return Errorf(ErrInvalidInput, "hexuint must be a 0x-prefixed string")
		}
		if _, err := bytesutil.DecodeHex(s); err != nil {
			return Errorf(ErrInvalidInput, "hexuint: %v", err)
		}
		return nil
	case KindSUint:
		s, ok := value.(string)
		if !ok {
			return Errorf(ErrInvalidInput, "suint must be a decimal string")
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return Errorf(ErrInvalidInput, "suint must contain only digits")
			}
		}
		if s == "" {
			return Errorf(ErrInvalidInput, "suint must not be empty")
		}
		return nil
	case KindUint:
		if _, ok := value.(float64); !ok {
			return Errorf(ErrInvalidInput, "uint must be a JSON number")
		}
		return nil
	case KindBool:
		if _, ok := value.(bool); !ok {
			return Errorf(ErrInvalidInput, "bool must be a JSON boolean")
		}
		return nil
	case KindBlock:
		switch v := value.(type) {
		case string:
			if blockTags[v] || strings.HasPrefix(v, "0x") {
				return nil
			}
			return Errorf(ErrInvalidInput, "block tag %q not recognized", v)
		case float64:
			return nil
		default:
			return Errorf(ErrInvalidInput, "block must be a tag string or number")
		}
	case KindArray:
		arr, ok := value.([]interface{})
		if !ok {
			return Errorf(ErrInvalidInput, "expected array")
		}
		for i, el := range arr {
			if err := Validate(schema.Elem, el); err != nil {
				return Errorf(ErrInvalidInput, "array[%d]: %v", i, err)
			}
		}
		return nil
	case KindTuple:
		arr, ok := value.([]interface{})
		if !ok || len(arr) != len(schema.Elems) {
			return Errorf(ErrInvalidInput, "expected a %d-element array", len(schema.Elems))
		}
		for i, elemSchema := range schema.Elems {
			if err := Validate(elemSchema, arr[i]); err != nil {
				return Errorf(ErrInvalidInput, "tuple[%d]: %v", i, err)
			}
		}
		return nil
	case KindObject:
		obj, ok := value.(map[string]interface{})
		if !ok {
			return Errorf(ErrInvalidInput, "expected object")
		}
		for name, fieldSchema := range schema.Fields {
			v, present := obj[name]
			if !present {
				return Errorf(ErrInvalidInput, "missing required field %q", name)
			}
			if err := Validate(fieldSchema, v); err != nil {
				return Errorf(ErrInvalidInput, "field %q: %v", name, err)
			}
		}
		for name, v := range obj {
			if _, ok := schema.Fields[name]; ok {
				continue
			}
			if fieldSchema, ok := schema.Optional[name]; ok {
				if err := Validate(fieldSchema, v); err != nil {
					return Errorf(ErrInvalidInput, "field %q: %v", name, err)
				}
				continue
			}
			if schema.Wildcard != nil {
				if err := Validate(schema.Wildcard, v); err != nil {
					return Errorf(ErrInvalidInput, "field %q: %v", name, err)
				}
				continue
			}
			return Errorf(ErrInvalidInput, "unexpected field %q", name)
		}
		return nil
	default:
		return Errorf(ErrInvalidInput, "unknown schema kind")
	}
}

func validateHexLen(value interface{}, n int, name string) error {
	s, ok := value.(string)
	if !ok {
		return Errorf(ErrInvalidInput, "%s must be a hex string", name)
	}
	b, err := bytesutil.DecodeHex(s)
	if err != nil {
		return Errorf(ErrInvalidInput, "%s: %v", name, err)
	}
	if len(b) != n {
		return Errorf(ErrInvalidInput, "%s must be %d bytes, got %d", name, n, len(b))
	}
	return nil
}
