package ssz

import (
	"errors"
	"fmt"
	"sort"

	fastssz "github.com/ferranbt/fastssz"
	sha256 "github.com/minio/sha256-simd"
)

var zeroHashes = buildZeroHashes(64)

func buildZeroHashes(levels int) [][32]byte {
	out := make([][32]byte, levels)
	for i := 1; i < levels; i++ {
		out[i] = hashPair(out[i-1], out[i-1])
	}
	return out
}

func hashPair(l, r [32]byte) [32]byte {
	h := sha256.New()
	h.Write(l[:])
	h.Write(r[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// node is a binary Merkle tree node built from a Def-interpreted value,
// mirroring the layout GindexOf assigns: deep enough to answer a Prove
// call for any gindex GindexOf could have produced against the same def.
type node struct {
	hash        [32]byte
	left, right *node
}

func leafNode(h [32]byte) *node { return &node{hash: h} }

// buildBinaryTree merkleizes leaves bottom-up, padding to the next power
// of two (or to padTo if it's larger) with the canonical SSZ zero hashes.
func buildBinaryTree(leaves []*node, padTo int) *node {
	n := len(leaves)
	if padTo > n {
		n = padTo
	}
	width := nextPow2(n)
	if width == 0 {
		width = 1
	}
	level := make([]*node, width)
	copy(level, leaves)
	depth := 0
	for w := width; w > 1; w >>= 1 {
		depth++
	}
	for i := len(leaves); i < width; i++ {
		level[i] = leafNode(zeroHashAt(0))
	}
	lvl := 0
	for len(level) > 1 {
		next := make([]*node, len(level)/2)
		for i := 0; i < len(next); i++ {
			l, r := level[2*i], level[2*i+1]
			next[i] = &node{hash: hashPair(l.hash, r.hash), left: l, right: r}
		}
		level = next
		lvl++
	}
	if len(level) == 0 {
		return leafNode(zeroHashAt(0))
	}
	return level[0]
}

func zeroHashAt(depth int) [32]byte {
	if depth < len(zeroHashes) {
		return zeroHashes[depth]
	}
	h := zeroHashes[len(zeroHashes)-1]
	for i := len(zeroHashes); i <= depth; i++ {
		h = hashPair(h, h)
	}
	return h
}

// buildValueTree recursively builds the full provable Merkle tree for an
// encoded value per def, following the same chunking/mixin rules as
// HashTreeRoot (and, for list/bitlist, the gindex-2/gindex-3 split
// GindexOf assumes).
func buildValueTree(def *Def, ob []byte) (*node, error) {
	switch def.Kind {
	case KindUint, KindBoolean, KindBitvector:
		leaves := leafNodesFromChunks(pack(ob))
		return buildBinaryTree(leaves, 0), nil

	case KindBitlist:
		chunksRoot := buildBinaryTree(leafNodesFromChunks(pack(bitlistBody(ob))), def.chunkCount())
		lengthLeaf := leafNode(lengthMixinLeaf(uint64(bitlistLen(ob))))
		return &node{hash: hashPair(chunksRoot.hash, lengthLeaf.hash), left: chunksRoot, right: lengthLeaf}, nil

	case KindVector:
		if def.Elem.isBasic() {
			leaves := leafNodesFromChunks(pack(ob))
			return buildBinaryTree(leaves, 0), nil
		}
		elems, err := splitOffsetSequence(ob, def.Limit)
		if err != nil {
			return nil, err
		}
		children, err := buildEach(def.Elem, elems)
		if err != nil {
			return nil, err
		}
		return buildBinaryTree(children, 0), nil

	case KindList:
		var children []*node
		var n int
		if def.Elem.isBasic() {
			leaves := leafNodesFromChunks(pack(ob))
			children = leaves
			n = elementCountFor(def, ob)
		} else {
			cnt, err := offsetCount(ob)
			if err != nil {
				return nil, err
			}
			elems, err := splitOffsetSequence(ob, cnt)
			if err != nil {
				return nil, err
			}
			children, err = buildEach(def.Elem, elems)
			if err != nil {
				return nil, err
			}
			n = cnt
		}
		chunksRoot := buildBinaryTree(children, def.chunkCount())
		lengthLeaf := leafNode(lengthMixinLeaf(uint64(n)))
		return &node{hash: hashPair(chunksRoot.hash, lengthLeaf.hash), left: chunksRoot, right: lengthLeaf}, nil

	case KindContainer:
		fields, err := splitContainerFields(def, ob)
		if err != nil {
			return nil, err
		}
		children := make([]*node, len(def.Fields))
		for i, f := range def.Fields {
			c, err := buildValueTree(f.Def, fields[i])
			if err != nil {
				return nil, err
			}
			children[i] = c
		}
		return buildBinaryTree(children, 0), nil

	case KindUnion:
		selector := ob[0]
		return buildValueTree(def.Variants[selector], ob[1:])
	}
	return nil, errUnknownKind(def)
}

func buildEach(elem *Def, elems [][]byte) ([]*node, error) {
	out := make([]*node, len(elems))
	for i, e := range elems {
		n, err := buildValueTree(elem, e)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func leafNodesFromChunks(chunks [][32]byte) []*node {
	out := make([]*node, len(chunks))
	for i, c := range chunks {
		out[i] = leafNode(c)
	}
	return out
}

func lengthMixinLeaf(n uint64) [32]byte {
	var out [32]byte
	for i := 0; i < 8; i++ {
		out[i] = byte(n >> (8 * uint(i)))
	}
	return out
}

// Proof is a single-leaf Merkle proof: the leaf value, its generalized
// index, and the sibling hash at every level from the leaf up to the root.
type Proof struct {
	Gindex Gindex
	Leaf   [32]byte
	Branch [][32]byte
}

var (
	ErrGindexNotFound = errors.New("ssz: generalized index not present in tree")
)

// ProveGindex builds a single-leaf Merkle proof for the node at gindex g in
// the tree for (def, ob).
func ProveGindex(def *Def, ob []byte, g Gindex) (*Proof, error) {
	root, err := buildValueTree(def, ob)
	if err != nil {
		return nil, err
	}
	return proveFromNode(root, g)
}

func proveFromNode(root *node, g Gindex) (*Proof, error) {
	depth := g.Depth()
	path := make([]byte, depth) // 0 = left, 1 = right, MSB-to-root first
	v := uint64(g)
	for i := depth - 1; i >= 0; i-- {
		path[i] = byte(v & 1)
		v >>= 1
	}
	cur := root
	var branch [][32]byte
	for _, step := range path {
		if cur == nil {
			return nil, ErrGindexNotFound
		}
		if step == 0 {
			if cur.right != nil {
				branch = append(branch, cur.right.hash)
			} else {
				branch = append(branch, zeroHashAt(0))
			}
			cur = cur.left
		} else {
			if cur.left != nil {
				branch = append(branch, cur.left.hash)
			} else {
				branch = append(branch, zeroHashAt(0))
			}
			cur = cur.right
		}
	}
	// branch was collected root-to-leaf; VerifyProof expects leaf-to-root.
	for i, j := 0, len(branch)-1; i < j; i, j = i+1, j-1 {
		branch[i], branch[j] = branch[j], branch[i]
	}
	if cur == nil {
		return nil, ErrGindexNotFound
	}
	return &Proof{Gindex: g, Leaf: cur.hash, Branch: branch}, nil
}

// VerifyGindex checks a single-leaf proof against root, using fastssz's
// VerifyProof — the same routine the example pack's beacon-chain client
// calls for light-client branch checks (BlockRootGeneralizedIndex,
// ExecutionPayloadGeneralizedIndex) — rather than reimplementing the
// sibling-hash walk a second time.
func VerifyGindex(root [32]byte, p *Proof) (bool, error) {
	hashes := make([][]byte, len(p.Branch))
	for i, h := range p.Branch {
		h := h
		hashes[i] = h[:]
	}
	fp := &fastssz.Proof{
		Index:  int(p.Gindex),
		Leaf:   p.Leaf[:],
		Hashes: hashes,
	}
	return fastssz.VerifyProof(root[:], fp)
}

// VerifyMulti verifies a batch of independently-generated single-leaf
// proofs against the same root. Use this when proofs were produced one at
// a time (e.g. by ProveGindex); for a proof that shares one witness list
// across several leaves, use VerifyMultiProof instead.
func VerifyMulti(root [32]byte, proofs []*Proof) (bool, error) {
	for _, p := range proofs {
		ok, err := VerifyGindex(root, p)
		if err != nil {
			return false, fmt.Errorf("ssz: verify gindex %d: %w", p.Gindex, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// branchIndices returns the sibling gindex at every level from index up to
// (but not including) the root.
func branchIndices(index Gindex) []Gindex {
	var out []Gindex
	for index > 1 {
		out = append(out, index^1)
		index >>= 1
	}
	return out
}

// pathIndices returns index and every ancestor gindex up to the root.
func pathIndices(index Gindex) []Gindex {
	out := []Gindex{index}
	for index > 1 {
		index >>= 1
		out = append(out, index)
	}
	return out
}

// helperIndices returns the generalized indices of every node a multiproof
// over indices needs as an external witness: every branch sibling that
// isn't itself an ancestor (or the node) of some other index in the set,
// sorted from deepest to shallowest so CalculateMultiMerkleRoot can fold
// them bottom-up deterministically.
func helperIndices(indices []Gindex) []Gindex {
	isPath := make(map[Gindex]bool)
	for _, idx := range indices {
		for _, p := range pathIndices(idx) {
			isPath[p] = true
		}
	}
	seen := make(map[Gindex]bool)
	var out []Gindex
	for _, idx := range indices {
		for _, b := range branchIndices(idx) {
			if isPath[b] || seen[b] {
				continue
			}
			seen[b] = true
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}

// CalculateMultiMerkleRoot folds a set of known leaves plus a witness list
// (ordered to match helperIndices(indices)) bottom-up into a single root,
// per spec.md's multi-leaf Merkle algorithm: known positions pair off to
// yield their parent for free; only positions with an unknown sibling
// consume a witness entry, and every witness entry MUST be consumed
// exactly once (len(witness) != len(helperIndices(indices)) is an error).
func CalculateMultiMerkleRoot(leaves map[Gindex][32]byte, witness [][32]byte, indices []Gindex) ([32]byte, error) {
	helpers := helperIndices(indices)
	if len(witness) != len(helpers) {
		return [32]byte{}, fmt.Errorf("ssz: multiproof wants %d witness hashes, got %d", len(helpers), len(witness))
	}

	objects := make(map[Gindex][32]byte, len(leaves)+len(witness))
	for idx, leaf := range leaves {
		objects[idx] = leaf
	}
	for i, h := range helpers {
		objects[h] = witness[i]
	}

	keys := make([]Gindex, 0, len(objects))
	for k := range objects {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] > keys[j] })

	for pos := 0; pos < len(keys); pos++ {
		k := keys[pos]
		if k <= 1 {
			continue
		}
		sibling := k ^ 1
		parent := k >> 1
		_, hasK := objects[k]
		_, hasSib := objects[sibling]
		_, hasParent := objects[parent]
		if hasK && hasSib && !hasParent {
			left := objects[parent<<1]
			right := objects[(parent<<1)|1]
			objects[parent] = hashPair(left, right)
			keys = append(keys, parent)
		}
	}

	root, ok := objects[1]
	if !ok {
		return [32]byte{}, errors.New("ssz: multiproof did not resolve to a root")
	}
	return root, nil
}

// VerifyMultiProof checks that leaves (keyed by gindex) plus witness
// combine to root under the shared-witness multiproof algorithm.
func VerifyMultiProof(root [32]byte, leaves map[Gindex][32]byte, witness [][32]byte, indices []Gindex) (bool, error) {
	got, err := CalculateMultiMerkleRoot(leaves, witness, indices)
	if err != nil {
		return false, err
	}
	return got == root, nil
}
