package mpt

import (
	"errors"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/corpus-core/colibri-stateless-sub002/internal/rlp"
)

var (
	errEmptyPath    = errors.New("mpt: empty hex-prefix encoding")
	ErrMalformedRLP = errors.New("mpt: node is not well-formed RLP")
	ErrUnknownNode  = errors.New("mpt: node RLP has neither 2 nor 17 elements")
	ErrTooDeep      = errors.New("mpt: trie traversal exceeded maximum depth")
	ErrHashMismatch = errors.New("mpt: node encoding does not hash to the expected reference")
)

// maxDepth bounds proof traversal per spec.md's "Depth MUST be bounded
// (≤ 64)" requirement.
const maxDepth = 64

// NodeKind classifies a decoded trie node.
type NodeKind int

const (
	KindLeaf NodeKind = iota
	KindExtension
	KindBranch
)

// Node is a decoded leaf/extension/branch node. Exactly one of the
// Leaf/Extension/Branch-shaped field groups is meaningful, selected by
// Kind.
type Node struct {
	Kind NodeKind

	// Leaf, Extension
	Path []byte // nibbles, with the hex-prefix flag already stripped
	// Leaf
	Value []byte
	// Extension
	Child []byte // child_ref: either a 32-byte hash or an inlined encoded node

	// Branch
	Children [17][]byte // 16 child refs by nibble + 1 value-at-this-path
}

// Keccak256 is the hash function every trie reference and proof
// membership check in this package uses, per the Ethereum variant of the
// trie spec.md describes.
func Keccak256(b []byte) []byte {
	return crypto.Keccak256(b)
}

// DecodeNode parses a single RLP-encoded trie node. enc is the node's
// complete wire encoding (the same bytes CreateMerkleProof appends to a
// proof and VerifyProof hash-checks) — a single top-level RLP list whose
// children this unwraps before counting/indexing them.
func DecodeNode(enc []byte) (*Node, error) {
	payload, err := rlp.Unwrap(enc)
	if err != nil {
		return nil, ErrMalformedRLP
	}
	n, err := rlp.DecodeCount(payload)
	if err != nil {
		return nil, ErrMalformedRLP
	}
	switch n {
	case 2:
		pathEnc, kind, err := rlp.Decode(payload, 0)
		if err != nil || kind != rlp.Item {
			return nil, ErrMalformedRLP
		}
		second, kind2, err := rlp.Decode(payload, 1)
		if err != nil {
			return nil, ErrMalformedRLP
		}
		nibbles, isLeaf, err := DecodeHexPrefix(pathEnc)
		if err != nil {
			return nil, err
		}
		if isLeaf {
			if kind2 != rlp.Item {
				return nil, ErrMalformedRLP
			}
			return &Node{Kind: KindLeaf, Path: nibbles, Value: second}, nil
		}
		return &Node{Kind: KindExtension, Path: nibbles, Child: second}, nil

	case 17:
		var node Node
		node.Kind = KindBranch
		for i := 0; i < 17; i++ {
			item, _, err := rlp.Decode(payload, i)
			if err != nil {
				return nil, ErrMalformedRLP
			}
			node.Children[i] = item
		}
		return &node, nil

	default:
		return nil, ErrUnknownNode
	}
}

// Encode canonically RLP-encodes n back into its wire form.
func (n *Node) Encode() []byte {
	switch n.Kind {
	case KindLeaf:
		path := EncodeHexPrefix(n.Path, true)
		return rlp.EncodeList(rlp.EncodeItem(path), rlp.EncodeItem(n.Value))
	case KindExtension:
		path := EncodeHexPrefix(n.Path, false)
		return rlp.EncodeList(rlp.EncodeItem(path), childItem(n.Child))
	case KindBranch:
		items := make([][]byte, 17)
		for i := 0; i < 16; i++ {
			items[i] = childItem(n.Children[i])
		}
		items[16] = rlp.EncodeItem(n.Children[16])
		return rlp.EncodeList(items...)
	}
	return nil
}

// childItem wraps a child reference for inclusion as an RLP list element:
// a 32-byte hash is a plain RLP item, but a short (< 32 byte) inlined
// child is itself already a complete encoded RLP list and must be spliced
// in as-is rather than re-wrapped as a byte string.
func childItem(ref []byte) []byte {
	if len(ref) == 32 {
		return rlp.EncodeItem(ref)
	}
	if len(ref) == 0 {
		return rlp.EncodeItem(nil)
	}
	return ref
}

// resolveChildRef returns the node encoding a child reference points to:
// either the literal embedded encoding (when inlined, < 32 bytes) or, for
// a 32-byte hash reference, the encoding looked up from available (the
// proof's remaining node list, keyed by hash).
func resolveChildRef(ref []byte, available map[string][]byte) ([]byte, bool) {
	if len(ref) == 0 {
		return nil, false
	}
	if len(ref) < 32 {
		return ref, true
	}
	enc, ok := available[string(ref)]
	return enc, ok
}
