// Package evmhost implements the host interface spec.md §4.12 exposes to
// an EVM execution engine: a layered overlay of proof-backed accounts,
// child-frame staging for nested calls, and the copy-merge/discard commit
// rules of §4.12.1. The EVM interpreter itself is an external
// collaborator (spec.md §1's explicit non-goal); this package is the
// contract it is driven through, modeled on the teacher's layered
// cache/overlay idiom (relays/beacon/cache) applied to account state
// instead of block roots.
package evmhost

import (
	"math/big"
)

// StorageStatus classifies a set_storage transition. Values map 1:1 to
// EVMC's storage-status codes, per spec.md §6.
type StorageStatus int

const (
	StorageUnchanged StorageStatus = iota
	StorageModified
	StorageModifiedAgain
	StorageAdded
	StorageDeleted
)

// Account is one address's state as the host interface sees it: either a
// read-only proof-sourced snapshot, or an overlay entry recording writes
// made during the current call.
type Account struct {
	Balance *big.Int
	Code    []byte
	CodeHash [32]byte
	Storage map[[32]byte][32]byte
	Deleted bool
}

func newAccount() *Account {
	return &Account{Balance: new(big.Int), Storage: make(map[[32]byte][32]byte)}
}

func cloneAccount(a *Account) *Account {
	c := &Account{Balance: new(big.Int), CodeHash: a.CodeHash, Deleted: a.Deleted, Storage: make(map[[32]byte][32]byte, len(a.Storage))}
	if a.Balance != nil {
		c.Balance.Set(a.Balance)
	}
	if a.Code != nil {
		c.Code = append([]byte{}, a.Code...)
	}
	for k, v := range a.Storage {
		c.Storage[k] = v
	}
	return c
}

// Frame is one call's overlay: proof-sourced accounts (Source, shared and
// read-only across the whole call tree), this frame's writes (Changed),
// and a parent pointer reads walk up when an address has no local entry.
type Frame struct {
	Source  map[[20]byte]*Account
	Changed map[[20]byte]*Account
	Parent  *Frame
}

// NewRootFrame creates the outermost frame over source, the read-only
// accounts the proof supplied.
func NewRootFrame(source map[[20]byte]*Account) *Frame {
	return &Frame{Source: source, Changed: make(map[[20]byte]*Account)}
}

// Child allocates a new frame for a nested call, sharing f's Source map
// (proof-backed accounts never change identity) but starting with an
// empty Changed overlay and f as its parent.
func (f *Frame) Child() *Frame {
	return &Frame{Source: f.Source, Changed: make(map[[20]byte]*Account), Parent: f}
}

// lookup walks the current frame then its ancestors, returning the
// nearest Changed entry, falling back to the shared Source snapshot.
func (f *Frame) lookup(addr [20]byte) *Account {
	for fr := f; fr != nil; fr = fr.Parent {
		if a, ok := fr.Changed[addr]; ok {
			return a
		}
	}
	return f.Source[addr]
}

// createOrGet returns addr's entry in f.Changed, copying from the nearest
// visible snapshot (ancestor overlay or Source) on first write, so a
// frame's writes never mutate a shared ancestor's state.
func (f *Frame) createOrGet(addr [20]byte) *Account {
	if a, ok := f.Changed[addr]; ok {
		return a
	}
	var a *Account
	if src := f.lookup(addr); src != nil {
		a = cloneAccount(src)
	} else {
		a = newAccount()
	}
	f.Changed[addr] = a
	return a
}

// AccountExists is account_exists(addr): true iff the proof (or an
// overlay write) knows the account and it is not marked deleted.
func (f *Frame) AccountExists(addr [20]byte) bool {
	a := f.lookup(addr)
	return a != nil && !a.Deleted
}

// GetStorage is get_storage(addr,key): overlay value if present, else the
// proof-supplied storage leaf, else the zero value.
func (f *Frame) GetStorage(addr [20]byte, key [32]byte) [32]byte {
	a := f.lookup(addr)
	if a == nil {
		return [32]byte{}
	}
	return a.Storage[key]
}

// SetStorage is set_storage(addr,key,val): writes into the current
// frame's overlay and classifies the transition using the classical
// gas-refund rules.
func (f *Frame) SetStorage(addr [20]byte, key [32]byte, val [32]byte) StorageStatus {
	// original is the slot's value before the call began: the
	// proof-supplied Source value, not the frame chain's current one.
	var original [32]byte
	if src := f.Source[addr]; src != nil {
		original = src.Storage[key]
	}
	a := f.createOrGet(addr)
	current := a.Storage[key]
	a.Storage[key] = val

	switch {
	case current == val:
		return StorageUnchanged
	case original == current:
		if original == ([32]byte{}) {
			return StorageAdded
		}
		if val == ([32]byte{}) {
			return StorageDeleted
		}
		return StorageModified
	default:
		return StorageModifiedAgain
	}
}

// GetBalance is get_balance(addr): overlay-then-proof, zero if unknown.
func (f *Frame) GetBalance(addr [20]byte) *big.Int {
	a := f.lookup(addr)
	if a == nil || a.Balance == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.Balance)
}

// GetCodeSize is get_code_size(addr).
func (f *Frame) GetCodeSize(addr [20]byte) int {
	a := f.lookup(addr)
	if a == nil {
		return 0
	}
	return len(a.Code)
}

// GetCodeHash is get_code_hash(addr).
func (f *Frame) GetCodeHash(addr [20]byte) [32]byte {
	a := f.lookup(addr)
	if a == nil {
		return [32]byte{}
	}
	return a.CodeHash
}

// CopyCode is copy_code(addr): returns the account's code bytes (callers
// slice further as needed; EVMC's offset/size windowing is left to the
// caller since it has no bearing on proof verification).
func (f *Frame) CopyCode(addr [20]byte) []byte {
	a := f.lookup(addr)
	if a == nil {
		return nil
	}
	return a.Code
}

// SelfDestruct is selfdestruct(addr, beneficiary): it marks addr deleted in
// the current frame and drops its local storage overlay. It takes no
// beneficiary and moves no balance.
func (f *Frame) SelfDestruct(addr [20]byte) {
	a := f.createOrGet(addr)
	a.Deleted = true
	a.Storage = make(map[[32]byte][32]byte)
}

// Commit merges every changed_account in f into its parent: create_or_get
// then overwrite balance/code/storage, per spec.md §4.12.1. Calling
// Commit on the root frame is a no-op (nothing to merge into).
func (f *Frame) Commit() {
	if f.Parent == nil {
		return
	}
	for addr, child := range f.Changed {
		dst := f.Parent.createOrGet(addr)
		dst.Balance = child.Balance
		if child.Code != nil {
			dst.Code = child.Code
			dst.CodeHash = child.CodeHash
		}
		dst.Deleted = child.Deleted
		for k, v := range child.Storage {
			dst.Storage[k] = v
		}
	}
}

// Discard drops f's overlay without merging — the revert path. Since f's
// Changed map is simply not merged into its parent, discarding is just
// not calling Commit; this method exists for call-site clarity.
func (f *Frame) Discard() {}
