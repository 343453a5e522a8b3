package ssz

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/corpus-core/colibri-stateless-sub002/internal/bytesutil"
)

// normalizeFieldName folds a field name to a comparison key that treats
// camelCase and snake_case spellings of the same name as equal:
// lower-case, underscores stripped. Container fields are matched on this
// key alone; mapstructure is used only for weakly-typed uint decoding.
func normalizeFieldName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// FromJSON converts a decoded JSON value into the canonical SSZ encoding
// for def. obj is whatever encoding/json.Unmarshal produced into an
// interface{} (map[string]interface{}, []interface{}, string, float64,
// bool, or nil).
func FromJSON(def *Def, obj interface{}) ([]byte, error) {
	switch def.Kind {
	case KindUint:
		v, err := jsonToUint(obj, def.ByteLen)
		if err != nil {
			return nil, err
		}
		return uintToBytes(v, def.ByteLen), nil

	case KindBoolean:
		b, ok := obj.(bool)
		if !ok {
			return nil, fmt.Errorf("ssz: expected bool, got %T", obj)
		}
		if b {
			return []byte{1}, nil
		}
		return []byte{0}, nil

	case KindBitvector, KindBitlist:
		s, ok := obj.(string)
		if !ok {
			return nil, fmt.Errorf("ssz: expected hex string for %s", def.Kind)
		}
		raw, err := bytesutil.DecodeHex(s)
		if err != nil {
			return nil, err
		}
		return raw, nil

	case KindVector, KindList:
		return jsonArrayToSSZ(def, obj)

	case KindContainer:
		return jsonContainerToSSZ(def, obj)

	case KindUnion:
		return jsonUnionToSSZ(def, obj)
	}
	return nil, errUnknownKind(def)
}

func jsonToUint(obj interface{}, byteLen int) (uint64, error) {
	var out uint64
	switch v := obj.(type) {
	case string:
		s := v
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			parsed, err := strconv.ParseUint(s[2:], 16, 64)
			if err != nil {
				return 0, fmt.Errorf("ssz: invalid hex uint %q: %w", s, err)
			}
			out = parsed
		} else {
			parsed, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("ssz: invalid decimal uint %q: %w", s, err)
			}
			out = parsed
		}
	default:
		// mapstructure's weak-typing uniformly handles the remaining JSON
		// shapes (float64, int, bool) that encoding/json can hand us.
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &out,
		})
		if err != nil {
			return 0, err
		}
		if err := dec.Decode(obj); err != nil {
			return 0, fmt.Errorf("ssz: cannot decode %T as uint: %w", obj, err)
		}
	}
	if byteLen < 8 {
		max := uint64(1)<<(uint(byteLen)*8) - 1
		if out > max {
			return 0, fmt.Errorf("ssz: value %d overflows uint%d", out, byteLen*8)
		}
	}
	return out, nil
}

func uintToBytes(v uint64, byteLen int) []byte {
	out := make([]byte, byteLen)
	for i := 0; i < byteLen && i < 8; i++ {
		out[i] = byte(v >> (8 * uint(i)))
	}
	return out
}

func jsonArrayToSSZ(def *Def, obj interface{}) ([]byte, error) {
	arr, ok := obj.([]interface{})
	if !ok {
		return nil, fmt.Errorf("ssz: expected array for %s", def.Kind)
	}
	n := def.Limit
	if def.Kind == KindList {
		n = len(arr)
		if n > def.Limit {
			return nil, fmt.Errorf("ssz: array length %d exceeds list limit %d", n, def.Limit)
		}
	} else if len(arr) != def.Limit {
		return nil, fmt.Errorf("ssz: expected %d elements, got %d", def.Limit, len(arr))
	}

	if def.Elem.IsFixedSize() {
		var out []byte
		for i := 0; i < n; i++ {
			enc, err := FromJSON(def.Elem, arr[i])
			if err != nil {
				return nil, err
			}
			out = append(out, enc...)
		}
		return out, nil
	}

	var elems [][]byte
	for i := 0; i < n; i++ {
		enc, err := FromJSON(def.Elem, arr[i])
		if err != nil {
			return nil, err
		}
		elems = append(elems, enc)
	}
	return PutList(false, elems)
}

func jsonContainerToSSZ(def *Def, obj interface{}) ([]byte, error) {
	m, ok := obj.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("ssz: expected JSON object for container")
	}
	normalized := make(map[string]interface{}, len(m))
	for k, v := range m {
		normalized[normalizeFieldName(k)] = v
	}

	b := NewBuilder()
	for _, f := range def.Fields {
		raw, present := normalized[normalizeFieldName(f.Name)]
		if !present {
			return nil, fmt.Errorf("ssz: missing field %q", f.Name)
		}
		enc, err := FromJSON(f.Def, raw)
		if err != nil {
			return nil, fmt.Errorf("ssz: field %q: %w", f.Name, err)
		}
		if f.Def.IsFixedSize() {
			if err := b.PutFixed(enc); err != nil {
				return nil, err
			}
		} else {
			if err := b.PutDynamic(enc); err != nil {
				return nil, err
			}
		}
	}
	return b.Finalize()
}

func jsonUnionToSSZ(def *Def, obj interface{}) ([]byte, error) {
	m, ok := obj.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("ssz: expected JSON object for union")
	}
	rawSel, present := m["selector"]
	if !present {
		return nil, fmt.Errorf("ssz: union object missing \"selector\"")
	}
	sel, err := jsonToUint(rawSel, 1)
	if err != nil {
		return nil, err
	}
	if int(sel) >= len(def.Variants) {
		return nil, ErrUnionSelector
	}
	payload, err := FromJSON(def.Variants[sel], m["value"])
	if err != nil {
		return nil, err
	}
	return PutUnion(byte(sel), payload), nil
}

// ToJSON converts an encoded SSZ value back into a JSON-marshalable Go
// value (map[string]interface{}, []interface{}, string, float64, bool).
func ToJSON(def *Def, ob []byte) (interface{}, error) {
	switch def.Kind {
	case KindUint:
		v := bytesToUint(ob)
		if def.ByteLen > 8 {
			return bytesutil.EncodeHex(ob), nil
		}
		return v, nil

	case KindBoolean:
		return ob[0] == 1, nil

	case KindBitvector, KindBitlist:
		return bytesutil.EncodeHex(ob), nil

	case KindVector, KindList:
		return jsonArrayFromSSZ(def, ob)

	case KindContainer:
		return jsonContainerFromSSZ(def, ob)

	case KindUnion:
		selector := ob[0]
		val, err := ToJSON(def.Variants[selector], ob[1:])
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"selector": selector, "value": val}, nil
	}
	return nil, errUnknownKind(def)
}

func bytesToUint(b []byte) uint64 {
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

func jsonArrayFromSSZ(def *Def, ob []byte) (interface{}, error) {
	if def.Elem.IsFixedSize() {
		elemLen, _ := FixedLength(def.Elem)
		n := len(ob) / elemLen
		if def.Kind == KindVector {
			n = def.Limit
		}
		out := make([]interface{}, n)
		for i := 0; i < n; i++ {
			v, err := ToJSON(def.Elem, ob[i*elemLen:(i+1)*elemLen])
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	n := def.Limit
	if def.Kind == KindList {
		var err error
		n, err = offsetCount(ob)
		if err != nil {
			return nil, err
		}
	}
	elems, err := splitOffsetSequence(ob, n)
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, len(elems))
	for i, e := range elems {
		v, err := ToJSON(def.Elem, e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func jsonContainerFromSSZ(def *Def, ob []byte) (interface{}, error) {
	fields, err := splitContainerFields(def, ob)
	if err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, len(def.Fields))
	for i, f := range def.Fields {
		v, err := ToJSON(f.Def, fields[i])
		if err != nil {
			return nil, fmt.Errorf("ssz: field %q: %w", f.Name, err)
		}
		out[f.Name] = v
	}
	return out, nil
}

// MarshalJSON is a convenience wrapper returning compact JSON text.
func MarshalJSON(def *Def, ob []byte) ([]byte, error) {
	v, err := ToJSON(def, ob)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
