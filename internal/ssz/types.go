// Package ssz implements the subset of SimpleSerialize needed to validate,
// merkleize, and prove membership in beacon-chain typed objects: a small
// type model (Kind/Def), hash-tree-root via a Merkleizing hasher, and
// generalized-index (gindex) based Merkle proof verification.
//
// Hash-tree-root and single-leaf proof verification are built on
// github.com/ferranbt/fastssz's Hasher and Proof/VerifyProof primitives.
// Proof generation (ProveGindex) and the shared-witness multiproof fold
// (CalculateMultiMerkleRoot) walk this package's own tree; fastssz's Node
// type is not used.
package ssz

import "fmt"

// Kind enumerates the eight SSZ type categories.
type Kind int

const (
	KindUint Kind = iota
	KindBoolean
	KindBitvector
	KindBitlist
	KindVector
	KindList
	KindContainer
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindBoolean:
		return "boolean"
	case KindBitvector:
		return "bitvector"
	case KindBitlist:
		return "bitlist"
	case KindVector:
		return "vector"
	case KindList:
		return "list"
	case KindContainer:
		return "container"
	case KindUnion:
		return "union"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MaxObjectBytes bounds any single SSZ object, per the 1 GiB ceiling the
// type model enforces during validation.
const MaxObjectBytes = 1 << 30

// Field describes one member of a container, in declaration order (order
// is load-bearing: it determines both offset layout and the field's gindex
// path component).
type Field struct {
	Name string
	Def  *Def
}

// Def is the recursive type descriptor for every SSZ value this package
// handles. Only the fields relevant to Kind are populated; callers build
// Defs with the helpers below rather than constructing the struct by hand.
type Def struct {
	Kind Kind

	// KindUint
	ByteLen int // 1, 2, 4, 8, 16, or 32

	// KindVector, KindList, KindBitvector, KindBitlist
	Elem  *Def // element type (Vector/List only)
	Limit int  // vector/bitvector length, or list/bitlist max length

	// KindContainer
	Fields []Field

	// KindUnion
	Variants []*Def
}

func Uint(byteLen int) *Def {
	return &Def{Kind: KindUint, ByteLen: byteLen}
}

func Boolean() *Def {
	return &Def{Kind: KindBoolean}
}

func Bitvector(n int) *Def {
	return &Def{Kind: KindBitvector, Limit: n}
}

func Bitlist(maxN int) *Def {
	return &Def{Kind: KindBitlist, Limit: maxN}
}

func Vector(elem *Def, n int) *Def {
	return &Def{Kind: KindVector, Elem: elem, Limit: n}
}

func List(elem *Def, maxN int) *Def {
	return &Def{Kind: KindList, Elem: elem, Limit: maxN}
}

func Container(fields ...Field) *Def {
	return &Def{Kind: KindContainer, Fields: fields}
}

func Union(variants ...*Def) *Def {
	return &Def{Kind: KindUnion, Variants: variants}
}

// IsFixedSize reports whether values of def have a statically known,
// constant encoded length (true for uint/boolean/bitvector/vector-of-fixed,
// false for bitlist/list/union and any container containing a variable
// field).
func (d *Def) IsFixedSize() bool {
	switch d.Kind {
	case KindUint, KindBoolean, KindBitvector:
		return true
	case KindBitlist, KindList, KindUnion:
		return false
	case KindVector:
		return d.Elem.IsFixedSize()
	case KindContainer:
		for _, f := range d.Fields {
			if !f.Def.IsFixedSize() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// chunkCount returns the number of 32-byte Merkle leaves def's values
// pack into before mixing in a length, per the SSZ Merkleization spec.
func (d *Def) chunkCount() int {
	switch d.Kind {
	case KindUint, KindBoolean:
		return 1
	case KindBitvector:
		return (d.Limit + 255) / 256
	case KindBitlist:
		return (d.Limit + 255) / 256
	case KindVector:
		if d.Elem.isBasic() {
			perChunk := 32 / d.Elem.fixedByteLen()
			if perChunk < 1 {
				perChunk = 1
			}
			return (d.Limit + perChunk - 1) / perChunk
		}
		return d.Limit
	case KindList:
		if d.Elem.isBasic() {
			perChunk := 32 / d.Elem.fixedByteLen()
			if perChunk < 1 {
				perChunk = 1
			}
			return (d.Limit + perChunk - 1) / perChunk
		}
		return d.Limit
	case KindContainer:
		return len(d.Fields)
	case KindUnion:
		return 1
	default:
		return 0
	}
}

func (d *Def) isBasic() bool {
	return d.Kind == KindUint || d.Kind == KindBoolean
}

func (d *Def) fixedByteLen() int {
	switch d.Kind {
	case KindUint:
		return d.ByteLen
	case KindBoolean:
		return 1
	default:
		return 0
	}
}
