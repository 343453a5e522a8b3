package ssz

import (
	"fmt"
	"math/bits"
)

// Gindex is a generalized index into a Merkle tree: root is 1, and a node's
// children are 2*i and 2*i+1.
type Gindex uint64

// AddGindex composes a child gindex relative to a parent gindex, per the
// SSZ generalized-index algebra (concat_generalized_indices in the
// consensus specs): the parent's leading bit is replaced by the child's
// full bit pattern.
func AddGindex(parent, child Gindex) Gindex {
	if child == 0 {
		return parent
	}
	childBits := bits.Len64(uint64(child)) - 1
	return Gindex(uint64(parent)<<uint(childBits) | (uint64(child) &^ (uint64(1) << uint(childBits))))
}

// Depth returns the number of edges from the tree root to the node at g.
func (g Gindex) Depth() int {
	if g == 0 {
		return 0
	}
	return bits.Len64(uint64(g)) - 1
}

// PathElem addresses one step into a container (by field index) or a
// vector/list (by element index).
type PathElem struct {
	Field int // container field index
	Index int // vector/list element index
	IsLen bool
}

// FieldPath builds a PathElem selecting container field i.
func FieldPath(i int) PathElem { return PathElem{Field: i} }

// IndexPath builds a PathElem selecting vector/list element i.
func IndexPath(i int) PathElem { return PathElem{Index: i, Field: -1} }

// GindexOf computes the generalized index reached by walking path through
// def, per spec.md's gindex(def, path...). Each PathElem selects either a
// container field or a vector/list element; the element kind at each step
// determines the tree's branching factor (chunkCount) used to fold the
// index into the generalized-index bit pattern.
func GindexOf(def *Def, path ...PathElem) (Gindex, error) {
	g := Gindex(1)
	cur := def
	for _, p := range path {
		switch cur.Kind {
		case KindContainer:
			if p.Field < 0 || p.Field >= len(cur.Fields) {
				return 0, fmt.Errorf("ssz: field index %d out of range for %d fields", p.Field, len(cur.Fields))
			}
			width := nextPow2(len(cur.Fields))
			g = AddGindex(g, Gindex(width+p.Field))
			cur = cur.Fields[p.Field].Def

		case KindVector, KindList:
			if cur.Kind == KindList {
				// A list's root mixes in a length: gindex 2 is the chunks
				// subtree, gindex 3 the length leaf.
				g = AddGindex(g, Gindex(2))
			}
			chunks := cur.chunkCount()
			width := nextPow2(chunks)
			if cur.Elem.isBasic() {
				perChunk := 32 / cur.Elem.fixedByteLen()
				if perChunk < 1 {
					perChunk = 1
				}
				g = AddGindex(g, Gindex(width+p.Index/perChunk))
			} else {
				g = AddGindex(g, Gindex(width+p.Index))
			}
			cur = cur.Elem

		default:
			return 0, fmt.Errorf("ssz: cannot path into kind %s", cur.Kind)
		}
	}
	return g, nil
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}
