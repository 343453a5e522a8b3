package ssz

import (
	fastssz "github.com/ferranbt/fastssz"
)

// chunkify packs an SSZ value's fields into a sequence of 32-byte Merkle
// leaves, per the consensus-spec pack()/chunk-count rules. Only the
// generic, runtime Def-interpreted objects this package handles need this:
// fastssz's own per-type chunking lives in code-generated
// HashTreeRootWith methods, which don't exist for a value whose shape is
// only known at runtime via Def.
func chunkify(def *Def, ob []byte) ([][32]byte, error) {
	switch def.Kind {
	case KindUint, KindBoolean, KindBitvector:
		return pack(ob), nil

	case KindBitlist:
		return pack(bitlistBody(ob)), nil

	case KindVector:
		if def.Elem.isBasic() {
			return pack(ob), nil
		}
		elems, err := splitOffsetSequence(ob, def.Limit)
		if err != nil {
			return nil, err
		}
		return hashEach(def.Elem, elems)

	case KindList:
		if def.Elem.isBasic() {
			return pack(ob), nil
		}
		n, err := offsetCount(ob)
		if err != nil {
			return nil, err
		}
		elems, err := splitOffsetSequence(ob, n)
		if err != nil {
			return nil, err
		}
		return hashEach(def.Elem, elems)

	case KindContainer:
		fields, err := splitContainerFields(def, ob)
		if err != nil {
			return nil, err
		}
		leaves := make([][32]byte, len(def.Fields))
		for i, f := range def.Fields {
			r, err := HashTreeRoot(f.Def, fields[i])
			if err != nil {
				return nil, err
			}
			leaves[i] = r
		}
		return leaves, nil

	case KindUnion:
		selector := ob[0]
		r, err := HashTreeRoot(def.Variants[selector], ob[1:])
		if err != nil {
			return nil, err
		}
		return [][32]byte{r}, nil
	}
	return nil, errUnknownKind(def)
}

func hashEach(elem *Def, elems [][]byte) ([][32]byte, error) {
	leaves := make([][32]byte, len(elems))
	for i, e := range elems {
		r, err := HashTreeRoot(elem, e)
		if err != nil {
			return nil, err
		}
		leaves[i] = r
	}
	return leaves, nil
}

// pack splits b into 32-byte chunks, zero-padding the final chunk. An empty
// input still yields a single all-zero chunk, matching the consensus-spec
// convention that empty basic-type sequences merkleize to one zero leaf.
func pack(b []byte) [][32]byte {
	n := (len(b) + 31) / 32
	if n == 0 {
		n = 1
	}
	out := make([][32]byte, n)
	for i := 0; i < n; i++ {
		lo := i * 32
		hi := lo + 32
		if hi > len(b) {
			hi = len(b)
		}
		if lo < len(b) {
			copy(out[i][:], b[lo:hi])
		}
	}
	return out
}

// bitlistBody strips the trailing sentinel bit, returning just the
// bitLen-bit payload for packing.
func bitlistBody(ob []byte) []byte {
	bitLen := bitlistLen(ob)
	byteLen := (bitLen + 7) / 8
	if byteLen == 0 {
		return nil
	}
	out := make([]byte, byteLen)
	copy(out, ob[:byteLen])
	last := ob[len(ob)-1]
	sentinel := byte(1) << uint(highestSetBit(last))
	if byteLen == len(ob) {
		out[byteLen-1] &^= sentinel
	}
	return out
}

func bitlistLen(ob []byte) int {
	last := ob[len(ob)-1]
	return (len(ob)-1)*8 + highestSetBit(last)
}

// splitOffsetSequence slices a variable-size vector/list body (an offset
// table of n 4-byte little-endian offsets, followed by the elements they
// address) into its n element byte ranges.
func splitOffsetSequence(ob []byte, n int) ([][]byte, error) {
	if n == 0 {
		return nil, nil
	}
	offsets := make([]int, n)
	for i := 0; i < n; i++ {
		offsets[i] = leUint32(ob[i*4 : i*4+4])
	}
	out := make([][]byte, n)
	for i := 0; i < n; i++ {
		lo := offsets[i]
		hi := len(ob)
		if i+1 < n {
			hi = offsets[i+1]
		}
		out[i] = ob[lo:hi]
	}
	return out, nil
}

// splitContainerFields slices a container encoding into each field's byte
// range: fixed-size fields occupy their statically known width in the
// fixed part; variable-size fields are addressed by a 4-byte offset stored
// in their place in the fixed part.
func splitContainerFields(def *Def, ob []byte) ([][]byte, error) {
	fixedLen, err := fixedPartLength(def)
	if err != nil {
		return nil, err
	}
	out := make([][]byte, len(def.Fields))
	var varIdx []int
	var varOffsets []int
	pos := 0
	for i, f := range def.Fields {
		if l, ok := FixedLength(f.Def); ok {
			out[i] = ob[pos : pos+l]
			pos += l
		} else {
			varOffsets = append(varOffsets, leUint32(ob[pos:pos+4]))
			varIdx = append(varIdx, i)
			pos += 4
		}
	}
	_ = fixedLen
	for j, i := range varIdx {
		lo := varOffsets[j]
		hi := len(ob)
		if j+1 < len(varOffsets) {
			hi = varOffsets[j+1]
		}
		out[i] = ob[lo:hi]
	}
	return out, nil
}

func leUint32(b []byte) int {
	return int(b[0]) | int(b[1])<<8 | int(b[2])<<16 | int(b[3])<<24
}

func errUnknownKind(def *Def) error {
	return &unknownKindError{def.Kind}
}

type unknownKindError struct{ k Kind }

func (e *unknownKindError) Error() string { return "ssz: unknown kind " + e.k.String() }

// merkleizeChunks folds leaves up to their root, padding with zero hashes
// to the next power of two and optionally mixing in a length (for
// list/bitlist), using fastssz's Hasher so the SHA-256 pairing matches
// what fastssz's own generated HashTreeRootWith methods produce.
func merkleizeChunks(leaves [][32]byte, limit int, mixinLen *uint64) ([32]byte, error) {
	hh := fastssz.NewHasher()
	indx := hh.Index()
	for _, l := range leaves {
		hh.Append(l[:])
	}
	var err error
	if mixinLen != nil {
		lim := uint64(limit)
		if limit == 0 {
			lim = uint64(len(leaves))
		}
		err = hh.MerkleizeWithMixin(indx, *mixinLen, lim)
	} else {
		err = hh.Merkleize(indx)
	}
	if err != nil {
		return [32]byte{}, err
	}
	return hh.HashRoot()
}

// HashTreeRoot computes the SSZ hash-tree-root of an encoded value per def.
func HashTreeRoot(def *Def, ob []byte) ([32]byte, error) {
	leaves, err := chunkify(def, ob)
	if err != nil {
		return [32]byte{}, err
	}
	switch def.Kind {
	case KindList:
		n := elementCountFor(def, ob)
		l := uint64(n)
		return merkleizeChunks(leaves, def.chunkCount(), &l)
	case KindBitlist:
		l := uint64(bitlistLen(ob))
		return merkleizeChunks(leaves, def.chunkCount(), &l)
	default:
		return merkleizeChunks(leaves, 0, nil)
	}
}

func elementCountFor(def *Def, ob []byte) int {
	if def.Elem.isBasic() {
		elemLen, _ := FixedLength(def.Elem)
		if elemLen == 0 {
			return 0
		}
		return (len(ob) + elemLen - 1) / elemLen
	}
	n, _ := offsetCount(ob)
	return n
}
