// Package bytesutil provides the byte- and buffer-level primitives every
// other package in this module is built on: fixed-size non-owning views,
// growable buffers (including a stack-buffer mode that never reallocates),
// and endian-aware integer codecs.
package bytesutil

import "errors"

// ErrFixedBufferFull is returned by Buffer.Grow when a stack buffer (one
// backed by caller-supplied storage) cannot accommodate the requested size.
var ErrFixedBufferFull = errors.New("bytesutil: fixed buffer capacity exceeded")

// Buffer is a growable byte buffer. In normal mode it grows by doubling its
// backing array, amortizing the cost of repeated appends. In "stack buffer"
// mode it is backed by caller-provided storage and Grow fails instead of
// reallocating, so the caller can place it on the stack or in a pool without
// escaping to the heap.
type Buffer struct {
	data  []byte
	fixed bool
}

// NewBuffer returns an empty growable buffer with the given initial capacity
// hint.
func NewBuffer(capHint int) *Buffer {
	if capHint < 0 {
		capHint = 0
	}
	return &Buffer{data: make([]byte, 0, capHint)}
}

// NewStackBuffer wraps caller-supplied storage. The returned Buffer never
// reallocates; Append/AppendByte fail with ErrFixedBufferFull once cap(storage)
// is exhausted.
func NewStackBuffer(storage []byte) *Buffer {
	return &Buffer{data: storage[:0], fixed: true}
}

// Len returns the number of bytes currently written.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the buffer's contents. The returned slice aliases the
// buffer's storage and is invalidated by the next mutating call.
func (b *Buffer) Bytes() []byte { return b.data }

// Reset empties the buffer without releasing its storage.
func (b *Buffer) Reset() { b.data = b.data[:0] }

// Grow ensures at least n additional bytes of capacity are available,
// reallocating (doubling, at minimum) unless the buffer is in fixed mode.
func (b *Buffer) Grow(n int) error {
	if cap(b.data)-len(b.data) >= n {
		return nil
	}
	if b.fixed {
		return ErrFixedBufferFull
	}
	needed := len(b.data) + n
	newCap := cap(b.data)
	if newCap == 0 {
		newCap = 16
	}
	for newCap < needed {
		newCap *= 2
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
	return nil
}

// Append writes p to the buffer, growing as needed (or failing in fixed mode).
func (b *Buffer) Append(p []byte) error {
	if err := b.Grow(len(p)); err != nil {
		return err
	}
	b.data = append(b.data, p...)
	return nil
}

// AppendByte writes a single byte to the buffer.
func (b *Buffer) AppendByte(v byte) error {
	return b.Append([]byte{v})
}

// View is a non-owning fixed-size view into a backing array: a pointer plus
// a length, with no ownership semantics — slicing it never copies.
type View struct {
	base []byte
}

// NewView wraps b without copying. Mutations to b are visible through the
// view and vice versa.
func NewView(b []byte) View { return View{base: b} }

// Len returns the view's length.
func (v View) Len() int { return len(v.base) }

// Bytes returns the aliased slice.
func (v View) Bytes() []byte { return v.base }

// Slice returns a sub-view [lo:hi), still aliasing the same backing array.
func (v View) Slice(lo, hi int) (View, error) {
	if lo < 0 || hi > len(v.base) || lo > hi {
		return View{}, errors.New("bytesutil: view slice out of range")
	}
	return View{base: v.base[lo:hi]}, nil
}
