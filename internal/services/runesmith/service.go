// Package runesmith builds the Trace, Etch and Invoke actions for runes and
// runs the apply and invoke procedures behind them.
package runesmith

//go:generate mockgen -destination=mock/mock_service.go -package=mockrunesmith -source=service.go

import (
	"context"
	"log"

	"github.com/KirkDiggler/runesmith/internal/config"
	"github.com/KirkDiggler/runesmith/internal/dice"
	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	"github.com/KirkDiggler/runesmith/internal/effects"
	"github.com/KirkDiggler/runesmith/internal/repositories/etchings"
	"github.com/KirkDiggler/runesmith/internal/uuid"
)

// Service defines the rune service interface. It also serves as the runtime
// rune invocations call back into.
type Service interface {
	runes.Runtime

	// Trace builds the temporary application action for a rune
	Trace(actor *combat.Creature, r *runes.Rune, opts TraceOptions) *combat.Action

	// Etch builds the durable application action for a rune
	Etch(actor *combat.Creature, r *runes.Rune) *combat.Action

	// Invoke builds the action that invokes one drawn rune. It is nil when
	// the rune has no invocation.
	Invoke(opts InvokeOptions) *combat.Action

	// Apply places a new instance of a rune on a target
	Apply(ctx context.Context, input *ApplyInput) (*runes.DrawnRune, error)

	// InvokeDrawn runs a drawn rune's invocation with the encounter's hooks around it
	InvokeDrawn(ctx context.Context, input *InvokeInput) error

	// ClearAllImmunity removes every immunity marker from a creature
	ClearAllImmunity(creature *combat.Creature) int

	// ClearEncounterImmunity removes every immunity marker in the encounter
	ClearEncounterImmunity() int

	// PickTrace offers every legal rune and target to the picker and traces the choice
	PickTrace(ctx context.Context, actor *combat.Creature, rs []*runes.Rune, opts TraceOptions) (*combat.Result, error)

	// InvokeActivity lets the actor invoke drawn runes until they pass
	InvokeActivity(ctx context.Context, actor *combat.Creature) (*ActivityResult, error)

	// RemoveAllFrom removes every rune a caster drew
	RemoveAllFrom(caster *combat.Creature) int

	// PlantOnShield raises a creature's shield and traces a rune onto it
	PlantOnShield(ctx context.Context, actor, holder *combat.Creature, r *runes.Rune) (*runes.DrawnRune, error)

	// EtchLoadouts etches each caster's stored loadout
	EtchLoadouts(ctx context.Context, repo etchings.Repository, casters []*combat.Creature) (int, error)

	// Ledger returns the encounter's drawn runes
	Ledger() *runes.Ledger
}

type service struct {
	enc           *combat.Encounter
	ledger        *runes.Ledger
	roller        dice.Roller
	picker        combat.Picker
	cfg           *config.Config
	registry      *runes.Registry
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Encounter *combat.Encounter
	Roller    dice.Roller
	Picker    combat.Picker

	// Ledger defaults to a new ledger over Encounter
	Ledger *runes.Ledger
	// Config defaults to config.Default
	Config *config.Config
	// Registry resolves stored loadouts to runes
	Registry      *runes.Registry
	UUIDGenerator uuid.Generator
}

// NewService creates a new rune service for one encounter
func NewService(cfg *ServiceConfig) Service {
	if cfg.Encounter == nil {
		panic("encounter is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}
	if cfg.Picker == nil {
		panic("picker is required")
	}

	svc := &service{
		enc:      cfg.Encounter,
		ledger:   cfg.Ledger,
		roller:   cfg.Roller,
		picker:   cfg.Picker,
		cfg:      cfg.Config,
		registry: cfg.Registry,
	}

	if svc.ledger == nil {
		svc.ledger = runes.NewLedger(cfg.Encounter)
	}
	if svc.cfg == nil {
		svc.cfg = config.Default()
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

func (s *service) Encounter() *combat.Encounter {
	return s.enc
}

func (s *service) Roller() dice.Roller {
	return s.roller
}

func (s *service) Picker() combat.Picker {
	return s.picker
}

func (s *service) Ledger() *runes.Ledger {
	return s.ledger
}

func (s *service) Remove(d *runes.DrawnRune) {
	if d == nil {
		return
	}
	s.ledger.Remove(d)
}

func (s *service) InstancesOn(creatureID string) []*runes.DrawnRune {
	return s.ledger.InstancesOn(creatureID)
}

func (s *service) RemoveAllFrom(caster *combat.Creature) int {
	if caster == nil {
		return 0
	}
	count := s.ledger.RemoveAllFrom(caster.ID)
	log.Printf("[RUNES] Removed %d runes drawn by %s", count, caster.Name)
	return count
}

// runeTags is the union of a rune's tags and extra action tags
func runeTags(r *runes.Rune, extra ...effects.Tag) effects.Tags {
	return r.Tags.Union(extra...)
}
