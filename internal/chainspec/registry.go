package chainspec

import (
	"fmt"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Registry holds every chain this verifier instance is configured to
// accept proofs for, keyed by chain id. internal/verify's Dispatcher.Verify
// looks up its target chain here before feeding any proof data through.
type Registry struct {
	mu     sync.RWMutex
	chains map[uint64]*ChainSpec
}

func NewRegistry() *Registry {
	return &Registry{chains: make(map[uint64]*ChainSpec)}
}

func (r *Registry) Put(spec *ChainSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chains[spec.ChainID] = spec
}

func (r *Registry) Get(chainID uint64) (*ChainSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.chains[chainID]
	return s, ok
}

// LoadFile reads a YAML/JSON/TOML chain registry file via viper (the same
// ReadInConfig/Unmarshal pattern the teacher's beacon relay command uses
// for its own top-level config) and decodes it with mapstructure into a
// slice of ChainSpec, one registry entry per configured chain.
func LoadFile(path string) (*Registry, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("chainspec: read config: %w", err)
	}

	var raw struct {
		Chains []*ChainSpec `mapstructure:"chains"`
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("chainspec: decode config: %w", err)
	}

	reg := NewRegistry()
	for _, c := range raw.Chains {
		if c.ChainID == 0 {
			return nil, fmt.Errorf("chainspec: chain entry %q missing chainId", c.Name)
		}
		reg.Put(c)
	}
	return reg, nil
}
