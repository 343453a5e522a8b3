package verify

// MethodClass is the three-way taxonomy spec.md §4.7 assigns to every
// (chain, method) pair.
type MethodClass int

const (
	MethodUndefined MethodClass = iota
	MethodLocal
	MethodProofable
)

// MethodTable is the fixed method set for one chain: method name to class,
// plus the request schema proofable methods validate their args against.
type MethodTable struct {
	Classes map[string]MethodClass
	Schemas map[string]*Schema
}

// Methods is the per-chain lookup table the dispatcher consults. It is
// built once at startup (spec.md: "the method set per chain is fixed") and
// never mutated by a verify call.
type Methods struct {
	byChain map[uint64]*MethodTable
}

func NewMethods() *Methods {
	return &Methods{byChain: make(map[uint64]*MethodTable)}
}

func (m *Methods) Set(chainID uint64, table *MethodTable) {
	m.byChain[chainID] = table
}

// ClassOf returns method's class for chainID, or MethodUndefined if the
// chain or method is not configured.
func (m *Methods) ClassOf(chainID uint64, method string) MethodClass {
	t, ok := m.byChain[chainID]
	if !ok {
		return MethodUndefined
	}
	c, ok := t.Classes[method]
	if !ok {
		return MethodUndefined
	}
	return c
}

// SchemaOf returns the proofable method's argument schema, if any.
func (m *Methods) SchemaOf(chainID uint64, method string) (*Schema, bool) {
	t, ok := m.byChain[chainID]
	if !ok {
		return nil, false
	}
	s, ok := t.Schemas[method]
	return s, ok
}

// DefaultMainnetMethods is a representative method table covering the
// proof-kind surface §4.8–§4.13 verify, enough for the dispatcher's tests
// and for a host to extend. A real deployment supplies its own via config.
func DefaultMainnetMethods() *MethodTable {
	return &MethodTable{
		Classes: map[string]MethodClass{
			"eth_chainId":                             MethodLocal,
			"web3_sha3":                               MethodLocal,
			"eth_getBalance":                          MethodProofable,
			"eth_getTransactionCount":                  MethodProofable,
			"eth_getCode":                              MethodProofable,
			"eth_getStorageAt":                         MethodProofable,
			"eth_getTransactionByHash":                 MethodProofable,
			"eth_getTransactionByBlockHashAndIndex":     MethodProofable,
			"eth_getTransactionByBlockNumberAndIndex":   MethodProofable,
			"eth_getTransactionReceipt":                 MethodProofable,
			"eth_getLogs":                               MethodProofable,
			"eth_getBlockByHash":                        MethodProofable,
			"eth_getBlockByNumber":                       MethodProofable,
			"eth_blockNumber":                            MethodProofable,
			"eth_call":                                   MethodProofable,
		},
		Schemas: map[string]*Schema{
			"eth_getBalance":           Tuple(Address(), Block()),
			"eth_getTransactionCount":  Tuple(Address(), Block()),
			"eth_getCode":              Tuple(Address(), Block()),
			"eth_getStorageAt":         Tuple(Address(), Bytes32(), Block()),
			"eth_getTransactionByHash": Tuple(Bytes32()),
			"eth_getTransactionReceipt": Tuple(Bytes32()),
			"eth_call": Tuple(Object(
				map[string]*Schema{"to": Address()},
				map[string]*Schema{
					"from":     Address(),
					"data":     Bytes(),
					"input":    Bytes(),
					"value":    HexUint(),
					"gas":      HexUint(),
					"gasPrice": HexUint(),
				},
				nil,
			), Block()),
		},
	}
}
