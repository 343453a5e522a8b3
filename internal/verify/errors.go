// Package verify implements the dispatcher described in spec.md §4.7: it
// validates a request's arguments against a compact schema, advances the
// sync-committee trust engine from any attached sync_data, and routes the
// proof's SSZ union tag to a registered proof verifier.
//
// The success/pending/fail trichotomy and its errors.Is-based control flow
// are modeled on the teacher's relays/beacon/header/header.go dispatch
// idiom: a small sentinel-error taxonomy switched on to decide whether to
// retry, suspend, or fail outright.
package verify

import "github.com/corpus-core/colibri-stateless-sub002/internal/verrors"

// ErrorKind, VerifyError, and Errorf are re-exported from internal/verrors
// (the taxonomy's real home) so every pre-existing caller of verify.Errorf
// keeps working unchanged; internal/verrors exists as its own leaf package
// because the proof verifiers this package dispatches to need the same
// taxonomy without importing back into verify.
type ErrorKind = verrors.ErrorKind

const (
	ErrInvalidInput         = verrors.ErrInvalidInput
	ErrUnsupportedChain     = verrors.ErrUnsupportedChain
	ErrUnsupportedMethod    = verrors.ErrUnsupportedMethod
	ErrUnsupportedProofKind = verrors.ErrUnsupportedProofKind
	ErrCryptoFailure        = verrors.ErrCryptoFailure
	ErrMerkleMismatch       = verrors.ErrMerkleMismatch
	ErrProofInconsistent    = verrors.ErrProofInconsistent
	ErrMissingProof         = verrors.ErrMissingProof
	ErrPending              = verrors.ErrPending
)

type VerifyError = verrors.VerifyError

func Errorf(kind ErrorKind, format string, args ...interface{}) *VerifyError {
	return verrors.Errorf(kind, format, args...)
}
