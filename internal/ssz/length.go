package ssz

import "fmt"

// FixedLength returns the statically known encoded byte length of def, and
// true, when def.IsFixedSize(); otherwise it returns (4, false), since a
// variable-size field occupies a 4-byte offset in its container's fixed
// part.
func FixedLength(def *Def) (int, bool) {
	if !def.IsFixedSize() {
		return 4, false
	}
	switch def.Kind {
	case KindUint:
		return def.ByteLen, true
	case KindBoolean:
		return 1, true
	case KindBitvector:
		return (def.Limit + 7) / 8, true
	case KindVector:
		elemLen, ok := FixedLength(def.Elem)
		if !ok {
			return 4, false
		}
		return elemLen * def.Limit, true
	case KindContainer:
		total := 0
		for _, f := range def.Fields {
			l, ok := FixedLength(f.Def)
			if !ok {
				return 4, false
			}
			total += l
		}
		return total, true
	default:
		return 4, false
	}
}

// fixedPartLength returns the length of def's fixed part when def is itself
// variable-size (e.g. the offset-table width of a container or the element
// stride of a vector/list of variable-size elements).
func fixedPartLength(def *Def) (int, error) {
	switch def.Kind {
	case KindBitlist:
		return 0, nil
	case KindList:
		if def.Elem.IsFixedSize() {
			l, _ := FixedLength(def.Elem)
			return l, nil
		}
		return 4, nil // each element contributes one 4-byte offset
	case KindContainer:
		total := 0
		for _, f := range def.Fields {
			l, ok := FixedLength(f.Def)
			if ok {
				total += l
			} else {
				total += 4
			}
		}
		return total, nil
	case KindUnion:
		return 1, nil // selector byte; payload is fully variable
	default:
		return 0, fmt.Errorf("ssz: %s has no variable fixed-part", def.Kind)
	}
}
