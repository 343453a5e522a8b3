package synccommittee

import (
	"fmt"

	"github.com/corpus-core/colibri-stateless-sub002/internal/bytesutil"
	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
)

// Framing selects how DecodeUpdatesBlob interprets a client-updates blob.
// FramingAuto runs the heuristic sniff spec.md §4.6 describes; the two
// explicit values let a host that already knows which prover produced the
// blob skip the sniff entirely.
type Framing int

const (
	FramingAuto Framing = iota
	FramingLengthPrefixed
	FramingLighthouseOffsetTable
)

// UpdateEntry is one decoded client-updates blob entry.
type UpdateEntry struct {
	Fork   chainspec.Fork
	Update *LightClientUpdate
}

// DecodeUpdatesBlob parses a concatenation of light-client update entries.
// digests maps each chain's 4-byte fork-digest values to the Fork they
// identify, since client-updates blobs carry no fork name, only a digest.
//
// Processing stops on the first invalid entry, per spec.md §4.6, returning
// every entry successfully decoded before it.
func DecodeUpdatesBlob(blob []byte, digests map[[4]byte]chainspec.Fork, framing Framing) ([]UpdateEntry, error) {
	if framing == FramingAuto {
		framing = sniffFraming(blob)
	}
	switch framing {
	case FramingLighthouseOffsetTable:
		return decodeLighthouseFraming(blob, digests)
	default:
		return decodeLengthPrefixedFraming(blob, digests)
	}
}

// sniffFraming implements the heuristic spec.md §4.6 mandates: a
// length-prefixed entry's first 8 bytes are a little-endian length
// followed by a 4-byte fork digest, so bytes 4..8 are usually zero for any
// realistic entry length. Lighthouse's variant instead leads with a table
// of absolute little-endian offsets, so its first 4 bytes form a small
// valid offset and bytes 4..8 are non-zero (the second offset).
func sniffFraming(blob []byte) Framing {
	if len(blob) < 8 {
		return FramingLengthPrefixed
	}
	firstOffset, err := bytesutil.Uint32LE(blob[0:4])
	if err != nil {
		return FramingLengthPrefixed
	}
	second := blob[4:8]
	nonZero := second[0] != 0 || second[1] != 0 || second[2] != 0 || second[3] != 0
	if uint64(firstOffset) > 0 && uint64(firstOffset) < uint64(len(blob)) && nonZero {
		return FramingLighthouseOffsetTable
	}
	return FramingLengthPrefixed
}

func decodeLengthPrefixedFraming(blob []byte, digests map[[4]byte]chainspec.Fork) ([]UpdateEntry, error) {
	var out []UpdateEntry
	pos := 0
	for pos < len(blob) {
		if pos+12 > len(blob) {
			break
		}
		length, err := bytesutil.Uint64LE(blob[pos : pos+8])
		if err != nil {
			break
		}
		pos += 8
		var digest [4]byte
		copy(digest[:], blob[pos:pos+4])
		pos += 4

		fork, ok := digests[digest]
		if !ok {
			break
		}
		payloadLen := int(length) - 4
		if payloadLen < 0 || pos+payloadLen > len(blob) {
			break
		}
		update, err := DecodeLightClientUpdate(fork, blob[pos:pos+payloadLen])
		if err != nil {
			break
		}
		out = append(out, UpdateEntry{Fork: fork, Update: update})
		pos += payloadLen
	}
	return out, nil
}

// decodeLighthouseFraming reads a leading table of little-endian absolute
// offsets (one per entry) followed by the entries themselves, each still
// prefixed by its 4-byte fork digest.
func decodeLighthouseFraming(blob []byte, digests map[[4]byte]chainspec.Fork) ([]UpdateEntry, error) {
	firstOffset, err := bytesutil.Uint32LE(blob[0:4])
	if err != nil {
		return nil, fmt.Errorf("synccommittee: malformed lighthouse offset table: %w", err)
	}
	if int(firstOffset)%4 != 0 || int(firstOffset) > len(blob) {
		return nil, fmt.Errorf("synccommittee: malformed lighthouse offset table")
	}
	count := int(firstOffset) / 4
	offsets := make([]int, count)
	for i := 0; i < count; i++ {
		o, err := bytesutil.Uint32LE(blob[i*4 : i*4+4])
		if err != nil {
			return nil, fmt.Errorf("synccommittee: malformed lighthouse offset table entry %d: %w", i, err)
		}
		offsets[i] = int(o)
	}

	var out []UpdateEntry
	for i, off := range offsets {
		end := len(blob)
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		if off < 0 || end > len(blob) || off+4 > end {
			break
		}
		var digest [4]byte
		copy(digest[:], blob[off:off+4])
		fork, ok := digests[digest]
		if !ok {
			break
		}
		update, err := DecodeLightClientUpdate(fork, blob[off+4:end])
		if err != nil {
			break
		}
		out = append(out, UpdateEntry{Fork: fork, Update: update})
	}
	return out, nil
}
