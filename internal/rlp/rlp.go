// Package rlp implements Ethereum's Recursive Length Prefix encoding.
//
// The decoder is deliberately index-addressed and allocation-free: Decode
// never copies, it returns slices that alias src. This is a different
// contract from go-ethereum's reflection-based rlp.Decode (which unmarshals
// into structs); the wire format is the same one go-ethereum implements
// (length-prefix thresholds 0x80/0xb7/0xc0/0xf7), just exposed as a
// positional/zero-copy reader, per spec.md §4.2.
package rlp

import "errors"

// Kind classifies the outcome of a Decode call.
type Kind int

const (
	// NotFound means index was out of range for the number of elements the
	// top-level encoding contains.
	NotFound Kind = iota
	// Item means the element at index is a byte-string item.
	Item
	// List means the element at index is itself an RLP list.
	List
	// OutOfRange means the encoding's length prefix claims a slice the
	// encompassing src does not actually have room for.
	OutOfRange
)

var (
	// ErrEmptyInput is returned decoding a zero-length source.
	ErrEmptyInput = errors.New("rlp: empty input")
	// ErrMalformed is returned for structurally invalid length prefixes.
	ErrMalformed = errors.New("rlp: malformed encoding")
)

// Decode returns the index-th top-level element of src (0-based). index
// == -1 returns (nil, NotFound, nil) and does not report the element
// count; DecodeCount returns it.
//
// out, when index >= 0, aliases a sub-slice of src; no allocation occurs.
func Decode(src []byte, index int) (out []byte, kind Kind, err error) {
	if len(src) == 0 {
		return nil, NotFound, ErrEmptyInput
	}
	if index == -1 {
		return nil, NotFound, nil
	}
	if index < -1 {
		return nil, NotFound, errors.New("rlp: negative index")
	}

	pos := 0
	i := 0
	for pos < len(src) {
		elemStart, elemLen, elemKind, headerLen, derr := decodeHeader(src[pos:])
		if derr != nil {
			return nil, NotFound, derr
		}
		total := headerLen + elemLen
		if pos+total > len(src) {
			return nil, OutOfRange, ErrMalformed
		}
		if i == index {
			lo := pos + elemStart
			hi := pos + headerLen + elemLen
			if lo < 0 || hi > len(src) || lo > hi {
				return nil, OutOfRange, ErrMalformed
			}
			return src[lo:hi], elemKind, nil
		}
		pos += total
		i++
	}
	return nil, NotFound, nil
}

// Unwrap strips a single enclosing list header from src, returning its
// payload — the concatenation of child item encodings — so a caller
// holding a complete list value (e.g. one MPT node's or one RLP-encoded
// record's full wire bytes) can then address its children positionally
// via Decode/DecodeCount. It is an error unless src is exactly one
// top-level list spanning its whole length.
func Unwrap(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}
	elemStart, elemLen, kind, headerLen, err := decodeHeader(src)
	if err != nil {
		return nil, err
	}
	if kind != List {
		return nil, ErrMalformed
	}
	if headerLen+elemLen != len(src) {
		return nil, ErrMalformed
	}
	return src[elemStart : elemStart+elemLen], nil
}

// DecodeCount returns the number of top-level elements encoded in src.
func DecodeCount(src []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrEmptyInput
	}
	pos := 0
	n := 0
	for pos < len(src) {
		_, elemLen, _, headerLen, err := decodeHeader(src[pos:])
		if err != nil {
			return 0, err
		}
		total := headerLen + elemLen
		if pos+total > len(src) {
			return 0, ErrMalformed
		}
		pos += total
		n++
	}
	return n, nil
}

// decodeHeader parses the length-prefix at the start of b and returns the
// number of header bytes (headerLen), the payload length (elemLen), the
// element's Kind, and elemStart == headerLen (payload begins right after the
// header — kept separate for readability at call sites).
func decodeHeader(b []byte) (elemStart, elemLen int, kind Kind, headerLen int, err error) {
	if len(b) == 0 {
		return 0, 0, NotFound, 0, ErrEmptyInput
	}
	first := b[0]
	switch {
	case first < 0x80:
		return 0, 1, Item, 0, nil
	case first <= 0xb7:
		return 1, int(first - 0x80), Item, 1, nil
	case first <= 0xbf:
		lenOfLen := int(first - 0xb7)
		if len(b) < 1+lenOfLen {
			return 0, 0, NotFound, 0, ErrMalformed
		}
		l, err := beUint(b[1 : 1+lenOfLen])
		if err != nil {
			return 0, 0, NotFound, 0, err
		}
		return 1 + lenOfLen, l, Item, 1 + lenOfLen, nil
	case first <= 0xf7:
		return 1, int(first - 0xc0), List, 1, nil
	default:
		lenOfLen := int(first - 0xf7)
		if len(b) < 1+lenOfLen {
			return 0, 0, NotFound, 0, ErrMalformed
		}
		l, err := beUint(b[1 : 1+lenOfLen])
		if err != nil {
			return 0, 0, NotFound, 0, err
		}
		return 1 + lenOfLen, l, List, 1 + lenOfLen, nil
	}
}

func beUint(b []byte) (int, error) {
	if len(b) > 8 {
		return 0, errors.New("rlp: length prefix too large")
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return int(v), nil
}
