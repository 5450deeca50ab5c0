// Package etchings stores the runes each runesmith etches before combat.
package etchings

//go:generate mockgen -destination=mock/mock_repository.go -package=mocketchings -source=repository.go

import (
	"context"
	"time"
)

// Etching is one rune a caster etches at the start of every encounter
type Etching struct {
	RuneKey  string `json:"rune_key"`
	TargetID string `json:"target_id"`
	// ItemID picks the item for runes drawn on equipment
	ItemID string `json:"item_id,omitempty"`
}

// Loadout is a caster's full set of etchings
type Loadout struct {
	CasterID  string    `json:"caster_id"`
	Etchings  []Etching `json:"etchings"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository defines the interface for loadout storage operations
type Repository interface {
	Save(ctx context.Context, loadout *Loadout) error
	Get(ctx context.Context, casterID string) (*Loadout, error)
	// GetMany returns loadouts for the casters that have one, in the order asked
	GetMany(ctx context.Context, casterIDs []string) ([]*Loadout, error)
	Delete(ctx context.Context, casterID string) error
	ListCasters(ctx context.Context) ([]string, error)
}
