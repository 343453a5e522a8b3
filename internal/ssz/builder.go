package ssz

import (
	"github.com/corpus-core/colibri-stateless-sub002/internal/bytesutil"
)

// Builder assembles a container or list encoding by separately collecting
// the fixed section (patched with offsets on Finalize) and the dynamic
// section appended after it, per spec.md's builder design.
type Builder struct {
	fixed      *bytesutil.Buffer
	dynamic    *bytesutil.Buffer
	offsetAt   []int // byte position in the fixed section of each placeholder
	dynFieldLn []int // length of the dynamic payload each placeholder points at
}

// NewBuilder starts a builder.
func NewBuilder() *Builder {
	return &Builder{
		fixed:   bytesutil.NewBuffer(0),
		dynamic: bytesutil.NewBuffer(0),
	}
}

// PutFixed appends a fixed-size field's raw encoding directly into the
// fixed section.
func (b *Builder) PutFixed(encoded []byte) error {
	return b.fixed.Append(encoded)
}

// PutDynamic appends a variable-size field: a 4-byte offset placeholder is
// written into the fixed section now, and the field's encoding is queued
// in the dynamic section; the placeholder is patched in Finalize once the
// fixed section's total length is known.
func (b *Builder) PutDynamic(encoded []byte) error {
	b.offsetAt = append(b.offsetAt, b.fixed.Len())
	if err := b.fixed.Append([]byte{0, 0, 0, 0}); err != nil {
		return err
	}
	b.dynFieldLn = append(b.dynFieldLn, len(encoded))
	return b.dynamic.Append(encoded)
}

// PutList builds and appends a list's encoding: fixed-size elements are
// packed directly; variable-size elements get their own offset table
// ahead of the element payloads, per the list encoding rules.
func PutList(elemFixed bool, elems [][]byte) ([]byte, error) {
	if elemFixed {
		out := make([]byte, 0, sumLens(elems))
		for _, e := range elems {
			out = append(out, e...)
		}
		return out, nil
	}
	b := NewBuilder()
	for _, e := range elems {
		if err := b.PutDynamic(e); err != nil {
			return nil, err
		}
	}
	return b.Finalize()
}

func sumLens(bs [][]byte) int {
	n := 0
	for _, b := range bs {
		n += len(b)
	}
	return n
}

// Finalize patches every offset placeholder to point past the fixed
// section, at the position its dynamic payload begins, and returns the
// concatenated fixed+dynamic encoding.
func (b *Builder) Finalize() ([]byte, error) {
	fixedLen := b.fixed.Len()
	out := append([]byte{}, b.fixed.Bytes()...)

	pos := 0
	for i, off := range b.offsetAt {
		putUint32LE(out[off:off+4], uint32(fixedLen+pos))
		pos += b.dynFieldLn[i]
	}
	return append(out, b.dynamic.Bytes()...), nil
}

func putUint32LE(dst []byte, v uint32) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}

// PutUnion prepends the variant selector byte to a payload, per spec.md's
// "Unions automatically prepend the selector byte."
func PutUnion(selector byte, payload []byte) []byte {
	out := make([]byte, 1+len(payload))
	out[0] = selector
	copy(out[1:], payload)
	return out
}
