package mpt

// trieNode is an in-memory (unkeyed, pointer-linked) trie node, as opposed
// to Node which is a decoded wire encoding. Trie builds a tree of these as
// keys are Set, then Encode()s each one on demand to compute hashes and
// proofs.
type trieNode struct {
	kind NodeKind

	path  []byte // nibbles; Leaf, Extension
	value []byte // Leaf's value, or Branch's value-at-this-path slot

	child    *trieNode    // Extension
	children [16]*trieNode // Branch
}

// Trie is a mutable in-memory Merkle-Patricia trie used to assemble the
// transactions and receipts tries during block verification, per spec.md's
// "Writer" component.
type Trie struct {
	root *trieNode
}

// NewTrie returns an empty trie.
func NewTrie() *Trie { return &Trie{} }

// Set inserts or overwrites the value at key.
func (t *Trie) Set(key, value []byte) {
	t.root = insert(t.root, ToNibbles(key), value)
}

func insert(n *trieNode, path, value []byte) *trieNode {
	if n == nil {
		return &trieNode{kind: KindLeaf, path: path, value: value}
	}

	if n.kind == KindBranch {
		if len(path) == 0 {
			n.value = value
			return n
		}
		idx := path[0]
		n.children[idx] = insert(n.children[idx], path[1:], value)
		return n
	}

	cp := commonPrefixLen(n.path, path)

	if cp == len(n.path) {
		remaining := path[cp:]
		if n.kind == KindLeaf {
			if len(remaining) == 0 {
				n.value = value
				return n
			}
			branch := &trieNode{kind: KindBranch, value: n.value}
			idx := remaining[0]
			branch.children[idx] = insert(nil, remaining[1:], value)
			return wrapExtension(n.path[:cp], branch)
		}
		// Extension: the new key continues past this node's path, so just
		// recurse into the subtree it points to.
		n.child = insert(n.child, remaining, value)
		return n
	}

	// Paths diverge at cp: split into a branch with both remainders.
	branch := &trieNode{kind: KindBranch}
	oldIdx := n.path[cp]
	oldRest := n.path[cp+1:]
	if n.kind == KindLeaf {
		branch.children[oldIdx] = &trieNode{kind: KindLeaf, path: oldRest, value: n.value}
	} else {
		branch.children[oldIdx] = wrapExtension(oldRest, n.child)
	}

	newRemaining := path[cp:]
	if len(newRemaining) == 0 {
		branch.value = value
	} else {
		newIdx := newRemaining[0]
		branch.children[newIdx] = insert(nil, newRemaining[1:], value)
	}

	return wrapExtension(n.path[:cp], branch)
}

// wrapExtension returns child directly when prefix is empty (no extension
// node needed), or an extension over it otherwise.
func wrapExtension(prefix []byte, child *trieNode) *trieNode {
	if len(prefix) == 0 {
		return child
	}
	if child.kind == KindExtension {
		// Merge consecutive extensions into one (keeps the tree canonical).
		merged := append(append([]byte{}, prefix...), child.path...)
		return &trieNode{kind: KindExtension, path: merged, child: child.child}
	}
	return &trieNode{kind: KindExtension, path: prefix, child: child}
}

// encode returns n's canonical RLP encoding.
func encode(n *trieNode) []byte {
	if n == nil {
		return rlpEmptyItem()
	}
	switch n.kind {
	case KindLeaf:
		return (&Node{Kind: KindLeaf, Path: n.path, Value: n.value}).Encode()
	case KindExtension:
		return (&Node{Kind: KindExtension, Path: n.path, Child: childRef(n.child)}).Encode()
	default: // KindBranch
		var wire Node
		wire.Kind = KindBranch
		for i := 0; i < 16; i++ {
			wire.Children[i] = childRef(n.children[i])
		}
		wire.Children[16] = n.value
		return wire.Encode()
	}
}

// childRef returns the reference a parent node should store for child: its
// raw encoding when short enough to inline (< 32 bytes), or its Keccak-256
// hash otherwise.
func childRef(child *trieNode) []byte {
	if child == nil {
		return nil
	}
	enc := encode(child)
	if len(enc) < 32 {
		return enc
	}
	return Keccak256(enc)
}

func rlpEmptyItem() []byte { return nil }

// EmptyRootHash is Keccak256(rlp("")), the canonical root of a trie with
// no entries — the EMPTY_ROOT invariant callers check storage/account
// tries against.
var EmptyRootHash = Keccak256([]byte{0x80})

// Hash returns the trie's current root hash. The root is always referenced
// by its hash regardless of encoded length, per Ethereum convention.
func (t *Trie) Hash() []byte {
	if t.root == nil {
		return append([]byte{}, EmptyRootHash...)
	}
	return Keccak256(encode(t.root))
}

// CreateMerkleProof walks from the root along key, emitting each
// traversed node's canonical encoding into an ordered list, per spec.md's
// create_merkle_proof(root, path).
func (t *Trie) CreateMerkleProof(key []byte) [][]byte {
	var proof [][]byte
	nibbles := ToNibbles(key)
	n := t.root
	for n != nil {
		proof = append(proof, encode(n))
		switch n.kind {
		case KindLeaf:
			return proof
		case KindExtension:
			if len(nibbles) < len(n.path) {
				return proof
			}
			nibbles = nibbles[len(n.path):]
			n = n.child
		case KindBranch:
			if len(nibbles) == 0 {
				return proof
			}
			idx := nibbles[0]
			nibbles = nibbles[1:]
			n = n.children[idx]
		}
	}
	return proof
}
