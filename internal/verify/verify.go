// Package verify's dispatcher ties the per-method schema check, the
// sync-committee trust engine, and the proof-kind verifiers together into
// the single cooperative state machine spec.md §4.7 describes: feed
// sync_data, switch on the proof's kind, delegate, and report success,
// pending, or failure — never blocking, never retrying internally beyond
// the one-period BLS fallback already built into internal/synccommittee.
package verify

import (
	"errors"
	"strconv"

	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/codecache"
	log "github.com/sirupsen/logrus"

	"github.com/corpus-core/colibri-stateless-sub002/internal/l2"
	"github.com/corpus-core/colibri-stateless-sub002/internal/proofs/account"
	"github.com/corpus-core/colibri-stateless-sub002/internal/proofs/block"
	"github.com/corpus-core/colibri-stateless-sub002/internal/proofs/call"
	"github.com/corpus-core/colibri-stateless-sub002/internal/proofs/receipt"
	"github.com/corpus-core/colibri-stateless-sub002/internal/proofs/transaction"
	"github.com/corpus-core/colibri-stateless-sub002/internal/synccommittee"
)

// ProofKind is the SSZ union tag spec.md §4.7 step 3 switches on to pick a
// verifier.
type ProofKind int

const (
	ProofNone ProofKind = iota
	ProofAccount
	ProofTransaction
	ProofReceipt
	ProofLogs
	ProofBlock
	ProofCall
	ProofL2Output
)

// Outcome is the three-way verdict spec.md §4.7/§5 describes.
type Outcome int

const (
	Fail Outcome = iota
	Success
	Pending
)

// DataRequest is an outstanding external fetch the host must satisfy
// before the dispatcher can make progress, content-addressed by Hash so
// resumed calls can match a fulfilled response to the request that asked
// for it.
type DataRequest struct {
	Kind string // "beacon_update" | "eth_getCode" | "rest" | "intern"
	Hash [32]byte
	Args map[string]string
}

// ProofBundle is the tagged union of every proof kind this dispatcher
// knows how to verify, one populated pointer field per Kind — an
// exhaustive switch over a sum type rather than an interface hierarchy,
// per SPEC_FULL.md §3.
type ProofBundle struct {
	Kind        ProofKind
	Account     *account.Request
	Transaction *transaction.Request
	Receipt     *ReceiptProof
	Block       *block.Request
	Call        *call.Request
	L2Output    *l2.Request
}

// ReceiptProof bundles a receipt.Request with the logs the caller wants
// bound against its decoded receipt, so the dispatcher can drive both
// spec.md §4.10 steps (receipt verify, then per-log bind) from one tag.
type ReceiptProof struct {
	Receipt *receipt.Request
	Logs    []*receipt.LogEntry
}

// Context is everything one verify(ctx) invocation carries: the target
// chain and method, any sync_data to feed the trust engine first, the
// proof to dispatch, and (on resume) externally-fetched data keyed by the
// DataRequest hash that asked for it.
type Context struct {
	ChainID    uint64
	Method     string
	Args       interface{} // decoded JSON args, validated against Methods.SchemaOf
	SyncData   []byte
	SyncForks  map[[4]byte]chainspec.Fork
	Proof      *ProofBundle
	StateRoot  [32]byte
	WantResult interface{}

	Fulfilled map[[32]byte][]byte
}

// Result is what a successful or pending verify call returns.
type Result struct {
	Outcome Outcome
	Data    interface{} // the proof-kind verifier's decoded Result, on Success
	Pending []DataRequest
	Err     error
}

// Dispatcher holds the process-wide state a verify call consults: the
// chain registry, the per-chain method tables, the sync-committee trust
// store, and the code cache every call proof shares.
type Dispatcher struct {
	Chains  *chainspec.Registry
	Methods *Methods
	Store   *synccommittee.Store
	Code    *codecache.Cache
}

func NewDispatcher(chains *chainspec.Registry, methods *Methods) *Dispatcher {
	return &Dispatcher{
		Chains:  chains,
		Methods: methods,
		Store:   synccommittee.NewStore(),
		Code:    codecache.NewCache(),
	}
}

// Verify implements spec.md §4.7's verify loop contract.
func (d *Dispatcher) Verify(ctx *Context) *Result {
	c, ok := d.Chains.Get(ctx.ChainID)
	if !ok {
		return fail(Errorf(ErrUnsupportedChain, "chain %d is not configured", ctx.ChainID))
	}

	if ctx.Method != "" {
		class := d.Methods.ClassOf(ctx.ChainID, ctx.Method)
		if class == MethodUndefined {
			return fail(Errorf(ErrUnsupportedMethod, "method %q is not defined for chain %d", ctx.Method, ctx.ChainID))
		}
		if schema, has := d.Methods.SchemaOf(ctx.ChainID, ctx.Method); has {
			if err := Validate(schema, ctx.Args); err != nil {
				return fail(err)
			}
		}
	}

	if len(ctx.SyncData) > 0 {
		if res := d.processSyncData(c, ctx); res != nil {
			return res
		}
	}

	for hash, data := range ctx.Fulfilled {
		if _, err := codecache.ResolveFetched(d.Code, hash, data); err != nil {
			return fail(err)
		}
	}

	if ctx.Proof == nil || ctx.Proof.Kind == ProofNone {
		log.WithField("chain", ctx.ChainID).Debug("verify: trust bootstrap, no proof to check")
		return &Result{Outcome: Success}
	}

	return d.verifyProof(c, ctx)
}

func (d *Dispatcher) processSyncData(c *chainspec.ChainSpec, ctx *Context) *Result {
	entries, err := synccommittee.DecodeUpdatesBlob(ctx.SyncData, ctx.SyncForks, synccommittee.FramingAuto)
	if err != nil {
		return fail(Errorf(ErrInvalidInput, "sync_data: %v", err))
	}
	if len(entries) == 0 {
		return fail(Errorf(ErrInvalidInput, "sync_data: no valid light-client update entry"))
	}
	for _, e := range entries {
		if err := synccommittee.ProcessLightClientUpdate(d.Store, c, ctx.ChainID, e.Fork, e.Update, nil); err != nil {
			log.WithError(err).Warn("verify: rejected a light-client update entry")
			return fail(Errorf(ErrCryptoFailure, "sync_data: %v", err))
		}
	}
	log.WithFields(log.Fields{"chain": ctx.ChainID, "entries": len(entries)}).Info("verify: advanced sync-committee trust state")
	return nil
}

func (d *Dispatcher) verifyProof(c *chainspec.ChainSpec, ctx *Context) *Result {
	p := ctx.Proof
	switch p.Kind {
	case ProofAccount:
		res, err := account.Verify(d.Store, c, ctx.ChainID, p.Account, ctx.StateRoot)
		return finishProof(res, err, ctx.ChainID)

	case ProofTransaction:
		res, err := transaction.Verify(d.Store, c, p.Transaction)
		return finishProof(res, err, ctx.ChainID)

	case ProofReceipt:
		if p.Receipt == nil || p.Receipt.Receipt == nil {
			return fail(Errorf(ErrInvalidInput, "receipt proof missing"))
		}
		rec, err := receipt.Verify(d.Store, c, ctx.ChainID, p.Receipt.Receipt)
		return finishProof(rec, err, ctx.ChainID)

	case ProofLogs:
		if p.Receipt == nil || p.Receipt.Receipt == nil {
			return fail(Errorf(ErrInvalidInput, "logs proof missing its covering receipt"))
		}
		rec, err := receipt.Verify(d.Store, c, ctx.ChainID, p.Receipt.Receipt)
		if err != nil {
			if isPeriodPending(err) {
				return pendingBeaconUpdate(ctx.ChainID)
			}
			return fail(err)
		}
		for _, entry := range p.Receipt.Logs {
			if err := receipt.VerifyLog(rec, entry, entry.BlockHash, entry.BlockNumber, entry.TransactionHash); err != nil {
				return fail(err)
			}
		}
		return &Result{Outcome: Success, Data: p.Receipt.Logs}

	case ProofBlock:
		res, err := block.Verify(d.Store, c, ctx.ChainID, p.Block)
		return finishProof(res, err, ctx.ChainID)

	case ProofCall:
		wantResult, _ := ctx.WantResult.([]byte)
		res, err := call.Verify(d.Store, c, ctx.ChainID, d.Code, p.Call, ctx.StateRoot, wantResult)
		if err != nil {
			if pc, ok := err.(*call.PendingCode); ok {
				return &Result{Outcome: Pending, Pending: []DataRequest{{
					Kind: "eth_getCode",
					Hash: pc.CodeHash,
					Args: map[string]string{"address": hexAddr(pc.Address)},
				}}}
			}
			if isPeriodPending(err) {
				return pendingBeaconUpdate(ctx.ChainID)
			}
			return fail(err)
		}
		return &Result{Outcome: Success, Data: res}

	case ProofL2Output:
		res, err := l2.Verify(d.Store, c, ctx.ChainID, p.L2Output, ctx.StateRoot)
		return finishProof(res, err, ctx.ChainID)

	default:
		return fail(Errorf(ErrUnsupportedProofKind, "proof kind %d is not supported", p.Kind))
	}
}

// finishProof turns a proof verifier's (result, error) pair into a
// dispatch Result: success, a pending beacon_update request when the
// failure is an unknown sync-committee period (spec.md §5 suspension
// point 1), or an outright failure otherwise.
func finishProof(res interface{}, err error, chainID uint64) *Result {
	if err == nil {
		return &Result{Outcome: Success, Data: res}
	}
	if isPeriodPending(err) {
		return pendingBeaconUpdate(chainID)
	}
	return fail(err)
}

// isPeriodPending reports whether err is a VerifyError raised because the
// sync-committee period needed to check a header's signature has no
// stored committee yet (synccommittee.ErrPeriodUnknown, surfaced through
// internal/beaconproof as ErrPending).
func isPeriodPending(err error) bool {
	var ve *VerifyError
	return errors.As(err, &ve) && ve.Kind == ErrPending
}

func pendingBeaconUpdate(chainID uint64) *Result {
	return &Result{Outcome: Pending, Pending: []DataRequest{{
		Kind: "beacon_update",
		Args: map[string]string{"chain": strconv.FormatUint(chainID, 10)},
	}}}
}

func hexAddr(addr [20]byte) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, 2+len(addr)*2)
	out[0], out[1] = '0', 'x'
	for i, b := range addr {
		out[2+i*2] = hexdigits[b>>4]
		out[2+i*2+1] = hexdigits[b&0xf]
	}
	return string(out)
}

func fail(err error) *Result {
	return &Result{Outcome: Fail, Err: err}
}
