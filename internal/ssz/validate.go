package ssz

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrObjectTooLarge    = errors.New("ssz: object exceeds 1 GiB")
	ErrInvalidBoolean    = errors.New("ssz: boolean byte is neither 0 nor 1")
	ErrLengthMismatch    = errors.New("ssz: fixed-size value has the wrong length")
	ErrOffsetNotMonotone = errors.New("ssz: offsets are not strictly monotonically increasing")
	ErrOffsetOutOfRange  = errors.New("ssz: offset points outside the payload")
	ErrFirstOffset       = errors.New("ssz: first offset does not equal the fixed-part length")
	ErrUnionSelector     = errors.New("ssz: union selector exceeds variant count")
	ErrBitlistNoSentinel = errors.New("ssz: bitlist is missing its sentinel bit")
)

// Validate reports whether ob is a structurally well-formed encoding of
// def, per spec.md's is_valid(ob, recursive, state_out): object size is
// bounded, booleans are 0/1, vector lengths match, list offset tables are
// strictly monotonic with the first offset equal to the fixed-part length,
// container offsets stay within the payload, union selectors are in range,
// and bitlists carry their sentinel bit. When recursive is true, every
// nested field/element is validated too, not just the top-level framing.
func Validate(def *Def, ob []byte, recursive bool) (bool, error) {
	if len(ob) > MaxObjectBytes {
		return false, ErrObjectTooLarge
	}
	ok, err := validate(def, ob, recursive)
	if err != nil {
		return false, err
	}
	return ok, nil
}

func validate(def *Def, ob []byte, recursive bool) (bool, error) {
	switch def.Kind {
	case KindUint:
		if len(ob) != def.ByteLen {
			return false, fmt.Errorf("%w: want %d got %d", ErrLengthMismatch, def.ByteLen, len(ob))
		}
		return true, nil

	case KindBoolean:
		if len(ob) != 1 {
			return false, fmt.Errorf("%w: want 1 got %d", ErrLengthMismatch, len(ob))
		}
		if ob[0] != 0 && ob[0] != 1 {
			return false, ErrInvalidBoolean
		}
		return true, nil

	case KindBitvector:
		want := (def.Limit + 7) / 8
		if len(ob) != want {
			return false, fmt.Errorf("%w: want %d got %d", ErrLengthMismatch, want, len(ob))
		}
		return true, nil

	case KindBitlist:
		if len(ob) == 0 {
			return false, ErrBitlistNoSentinel
		}
		last := ob[len(ob)-1]
		if last == 0 {
			return false, ErrBitlistNoSentinel
		}
		bitLen := (len(ob)-1)*8 + highestSetBit(last)
		if bitLen > def.Limit {
			return false, fmt.Errorf("ssz: bitlist length %d exceeds limit %d", bitLen, def.Limit)
		}
		return true, nil

	case KindVector:
		return validateVector(def, ob, recursive)

	case KindList:
		return validateList(def, ob, recursive)

	case KindContainer:
		return validateContainer(def, ob, recursive)

	case KindUnion:
		return validateUnion(def, ob, recursive)
	}
	return false, fmt.Errorf("ssz: unknown kind %s", def.Kind)
}

func highestSetBit(b byte) int {
	for i := 7; i >= 0; i-- {
		if b&(1<<uint(i)) != 0 {
			return i
		}
	}
	return -1
}

func validateVector(def *Def, ob []byte, recursive bool) (bool, error) {
	if def.Elem.IsFixedSize() {
		elemLen, _ := FixedLength(def.Elem)
		want := elemLen * def.Limit
		if len(ob) != want {
			return false, fmt.Errorf("%w: want %d got %d", ErrLengthMismatch, want, len(ob))
		}
		if !recursive {
			return true, nil
		}
		for i := 0; i < def.Limit; i++ {
			chunk := ob[i*elemLen : (i+1)*elemLen]
			if ok, err := validate(def.Elem, chunk, recursive); !ok {
				return false, err
			}
		}
		return true, nil
	}
	return validateOffsetSequence(def.Elem, ob, def.Limit, recursive)
}

func validateList(def *Def, ob []byte, recursive bool) (bool, error) {
	if def.Elem.IsFixedSize() {
		elemLen, _ := FixedLength(def.Elem)
		if elemLen == 0 {
			return false, fmt.Errorf("ssz: zero-width list element")
		}
		if len(ob)%elemLen != 0 {
			return false, fmt.Errorf("%w: %d not a multiple of element length %d", ErrLengthMismatch, len(ob), elemLen)
		}
		n := len(ob) / elemLen
		if n > def.Limit {
			return false, fmt.Errorf("ssz: list length %d exceeds limit %d", n, def.Limit)
		}
		if !recursive {
			return true, nil
		}
		for i := 0; i < n; i++ {
			chunk := ob[i*elemLen : (i+1)*elemLen]
			if ok, err := validate(def.Elem, chunk, recursive); !ok {
				return false, err
			}
		}
		return true, nil
	}
	n, _ := offsetCount(ob)
	if n > def.Limit {
		return false, fmt.Errorf("ssz: list length %d exceeds limit %d", n, def.Limit)
	}
	return validateOffsetSequence(def.Elem, ob, -1, recursive)
}

// validateOffsetSequence validates a variable-size vector/list body: a
// table of ascending 4-byte offsets followed by the variable payloads they
// point into. want < 0 means "however many offsets fit" (the list case);
// otherwise exactly want elements are expected (the vector case).
func validateOffsetSequence(elem *Def, ob []byte, want int, recursive bool) (bool, error) {
	n, err := offsetCount(ob)
	if err != nil {
		return false, err
	}
	if want >= 0 && n != want {
		return false, fmt.Errorf("%w: want %d elements got %d", ErrLengthMismatch, want, n)
	}
	offsets := make([]int, n)
	for i := 0; i < n; i++ {
		offsets[i] = int(binary.LittleEndian.Uint32(ob[i*4 : i*4+4]))
	}
	if n > 0 && offsets[0] != n*4 {
		return false, ErrFirstOffset
	}
	for i := 0; i < n; i++ {
		lo := offsets[i]
		hi := len(ob)
		if i+1 < n {
			hi = offsets[i+1]
		}
		if hi < lo {
			return false, ErrOffsetNotMonotone
		}
		if lo < 0 || hi > len(ob) {
			return false, ErrOffsetOutOfRange
		}
		if recursive {
			if ok, err := validate(elem, ob[lo:hi], recursive); !ok {
				return false, err
			}
		}
	}
	return true, nil
}

func offsetCount(ob []byte) (int, error) {
	if len(ob) == 0 {
		return 0, nil
	}
	if len(ob) < 4 {
		return 0, fmt.Errorf("ssz: truncated offset table")
	}
	first := int(binary.LittleEndian.Uint32(ob[0:4]))
	if first%4 != 0 {
		return 0, ErrFirstOffset
	}
	n := first / 4
	if n*4 > len(ob) {
		return 0, ErrOffsetOutOfRange
	}
	return n, nil
}

func validateContainer(def *Def, ob []byte, recursive bool) (bool, error) {
	fixedLen, err := fixedPartLength(def)
	if err != nil {
		return false, err
	}
	if len(ob) < fixedLen {
		return false, fmt.Errorf("%w: container shorter than its fixed part", ErrLengthMismatch)
	}

	var varOffsets []int
	pos := 0
	for _, f := range def.Fields {
		if l, ok := FixedLength(f.Def); ok {
			chunk := ob[pos : pos+l]
			if recursive {
				if ok, err := validate(f.Def, chunk, recursive); !ok {
					return false, err
				}
			}
			pos += l
		} else {
			off := int(binary.LittleEndian.Uint32(ob[pos : pos+4]))
			varOffsets = append(varOffsets, off)
			pos += 4
		}
	}
	if len(varOffsets) == 0 {
		return true, nil
	}
	if varOffsets[0] != fixedLen {
		return false, ErrFirstOffset
	}
	varIdx := 0
	for _, f := range def.Fields {
		if _, ok := FixedLength(f.Def); ok {
			continue
		}
		lo := varOffsets[varIdx]
		hi := len(ob)
		if varIdx+1 < len(varOffsets) {
			hi = varOffsets[varIdx+1]
		}
		if hi < lo {
			return false, ErrOffsetNotMonotone
		}
		if lo < 0 || hi > len(ob) {
			return false, ErrOffsetOutOfRange
		}
		if recursive {
			if ok, err := validate(f.Def, ob[lo:hi], recursive); !ok {
				return false, err
			}
		}
		varIdx++
	}
	return true, nil
}

func validateUnion(def *Def, ob []byte, recursive bool) (bool, error) {
	if len(ob) < 1 {
		return false, fmt.Errorf("%w: union has no selector byte", ErrLengthMismatch)
	}
	selector := int(ob[0])
	if selector >= len(def.Variants) {
		return false, ErrUnionSelector
	}
	if !recursive {
		return true, nil
	}
	return validate(def.Variants[selector], ob[1:], recursive)
}
