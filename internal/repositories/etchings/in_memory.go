package etchings

import (
	"context"
	"slices"
	"sort"
	"sync"

	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
)

type inMemoryRepository struct {
	mu           sync.RWMutex
	loadouts     map[string]*Loadout
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory loadout repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		loadouts:     make(map[string]*Loadout),
		timeProvider: RealTimeProvider{},
	}
}

func (r *inMemoryRepository) Save(_ context.Context, loadout *Loadout) error {
	if loadout == nil {
		return dnderr.InvalidArgument("loadout cannot be nil")
	}
	if loadout.CasterID == "" {
		return dnderr.InvalidArgument("loadout caster id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	loadout.UpdatedAt = r.timeProvider.Now()
	r.loadouts[loadout.CasterID] = clone(loadout)
	return nil
}

func (r *inMemoryRepository) Get(_ context.Context, casterID string) (*Loadout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loadout, exists := r.loadouts[casterID]
	if !exists {
		return nil, dnderr.NotFoundf("loadout for %s not found", casterID)
	}
	return clone(loadout), nil
}

func (r *inMemoryRepository) GetMany(ctx context.Context, casterIDs []string) ([]*Loadout, error) {
	out := make([]*Loadout, 0, len(casterIDs))
	for _, id := range casterIDs {
		loadout, err := r.Get(ctx, id)
		if err != nil {
			if dnderr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		out = append(out, loadout)
	}
	return out, nil
}

func (r *inMemoryRepository) Delete(_ context.Context, casterID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.loadouts[casterID]; !exists {
		return dnderr.NotFoundf("loadout for %s not found", casterID)
	}
	delete(r.loadouts, casterID)
	return nil
}

func (r *inMemoryRepository) ListCasters(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.loadouts))
	for id := range r.loadouts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// clone keeps callers from mutating stored loadouts
func clone(l *Loadout) *Loadout {
	cp := *l
	cp.Etchings = slices.Clone(l.Etchings)
	return &cp
}
