package runes

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/runesmith/internal/effects"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
)

// Registry is the catalog of known runes by key
type Registry struct {
	mu    sync.RWMutex
	runes map[effects.Tag]*Rune
}

// NewRegistry creates a registry holding rs. It panics on duplicate keys.
func NewRegistry(rs ...*Rune) *Registry {
	reg := &Registry{runes: make(map[effects.Tag]*Rune, len(rs))}
	for _, r := range rs {
		if err := reg.Register(r); err != nil {
			panic(err)
		}
	}
	return reg
}

// Register adds r to the registry
func (reg *Registry) Register(r *Rune) error {
	if r == nil {
		return dnderr.InvalidArgument("rune cannot be nil")
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.runes[r.Key]; exists {
		return dnderr.AlreadyExistsf("rune %s is already registered", r.Key)
	}
	reg.runes[r.Key] = r
	return nil
}

// Get returns the rune with key
func (reg *Registry) Get(key effects.Tag) (*Rune, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	r, ok := reg.runes[key]
	if !ok {
		return nil, dnderr.NotFoundf("rune %s not found", key)
	}
	return r, nil
}

// All returns every rune ordered by level, then name
func (reg *Registry) All() []*Rune {
	reg.mu.RLock()
	out := make([]*Rune, 0, len(reg.runes))
	for _, r := range reg.runes {
		out = append(out, r)
	}
	reg.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Learnable returns the runes a character of level may learn
func (reg *Registry) Learnable(level int) []*Rune {
	var out []*Rune
	for _, r := range reg.All() {
		if r.Level <= level {
			out = append(out, r)
		}
	}
	return out
}
