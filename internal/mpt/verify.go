package mpt

import "bytes"

// Result classifies the outcome of verifying a Merkle-Patricia proof.
type Result int

const (
	// Found means the proof terminates in a leaf or branch value matching
	// path, and Value holds it.
	Found Result = iota
	// NotExisting means the proof is a valid absence proof: it ends at a
	// non-matching leaf or an empty branch slot along path.
	NotExisting
	// Invalid means a node's hash didn't match its expected reference, a
	// node failed to decode, or traversal exceeded maxDepth.
	Invalid
)

// VerifyProof checks a Merkle-Patricia proof: expectedRoot is the trie
// root the first proof node MUST hash to; path is the raw (un-nibbled) key
// being proven; proof is the ordered list of node encodings the prover
// claims make up the path from root to leaf. Embedded (< 32 byte) child
// references are resolved directly from the node that carries them;
// hash references are resolved by Keccak-256 against the remaining proof
// nodes.
func VerifyProof(expectedRoot []byte, path []byte, proof [][]byte) (Result, []byte, error) {
	if len(proof) == 0 {
		return Invalid, nil, ErrMalformedRLP
	}

	byHash := make(map[string][]byte, len(proof))
	for _, enc := range proof {
		byHash[string(Keccak256(enc))] = enc
	}

	nibbles := ToNibbles(path)
	cur := proof[0]
	expect := append([]byte{}, expectedRoot...)

	for depth := 0; ; depth++ {
		if depth > maxDepth {
			return Invalid, nil, ErrTooDeep
		}
		if !bytes.Equal(Keccak256(cur), expect) {
			return Invalid, nil, ErrHashMismatch
		}
		node, err := DecodeNode(cur)
		if err != nil {
			return Invalid, nil, err
		}

		switch node.Kind {
		case KindLeaf:
			if bytes.Equal(node.Path, nibbles) {
				return Found, node.Value, nil
			}
			return NotExisting, nil, nil

		case KindExtension:
			if len(nibbles) < len(node.Path) || !bytes.Equal(nibbles[:len(node.Path)], node.Path) {
				return NotExisting, nil, nil
			}
			nibbles = nibbles[len(node.Path):]
			next, ok := resolveChildRef(node.Child, byHash)
			if !ok {
				return Invalid, nil, ErrMalformedRLP
			}
			cur = next
			expect = node.Child
			if len(expect) != 32 {
				// Inlined child: its "expected hash" check is skipped
				// (there's nothing to hash against); verify it directly.
				expect = Keccak256(next)
			}

		case KindBranch:
			if len(nibbles) == 0 {
				if len(node.Children[16]) == 0 {
					return NotExisting, nil, nil
				}
				return Found, node.Children[16], nil
			}
			idx := nibbles[0]
			ref := node.Children[idx]
			if len(ref) == 0 {
				return NotExisting, nil, nil
			}
			next, ok := resolveChildRef(ref, byHash)
			if !ok {
				return Invalid, nil, ErrMalformedRLP
			}
			nibbles = nibbles[1:]
			cur = next
			expect = ref
			if len(expect) != 32 {
				expect = Keccak256(next)
			}
		}
	}
}
