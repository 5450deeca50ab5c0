package runesmith

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
)

// Cost selects which Trace variant to build
type Cost int

const (
	Cost0 Cost = iota
	Cost1
	Cost2
	// CostVariable lets the performer choose 1 or 2 actions
	CostVariable
)

// MarkerSingTheRunes turns the actor's next Trace into a sung one
const MarkerSingTheRunes combat.Marker = "sing-the-runes"

// ReasonNoFreeHand rejects tracing with both hands full
const ReasonNoFreeHand = "must have a free hand"

const (
	traceEpilogue = "The rune fades at the end of your next turn."
	etchEpilogue  = "The rune lasts until the end of the encounter."
)

// TraceOptions selects a Trace variant. Range only affects the 2-action
// variant; it is in grid steps and defaults to the configured trace range.
type TraceOptions struct {
	Cost  Cost
	Range int
	// Sing drops the manipulate requirement and collapses the cost to one action
	Sing bool
}

func (s *service) Trace(actor *combat.Creature, r *runes.Rune, opts TraceOptions) *combat.Action {
	opts.Sing = opts.Sing || actor.HasMarker(MarkerSingTheRunes)
	return combat.NewAction(s.traceConfig(actor, r, opts))
}

func (s *service) traceConfig(actor *combat.Creature, r *runes.Rune, opts TraceOptions) combat.ActionConfig {
	rng := opts.Range
	if rng <= 0 {
		rng = s.cfg.TraceSteps()
	}

	usable := usableCondition(r)
	conds := []combat.Condition{freeHandCondition, usable}
	if opts.Sing {
		conds = []combat.Condition{usable}
	}

	adjacent := combat.WithCondition(combat.AdjacentOrSelf(), conds...)
	ranged := combat.WithCondition(combat.Ranged(rng), conds...)

	cfg := combat.ActionConfig{
		Name: "Trace " + r.Name,
		Description: r.Description(actor.Level, runes.DescribeOptions{
			Prologue: "Trace a rune onto a creature or its gear.",
			Epilogue: traceEpilogue,
		}),
		Tags: runeTags(r,
			combat.TagConcentrate,
			combat.TagMagical,
			combat.TagManipulate,
			runes.TagTraced,
			combat.TagSpellLike,
		),
		Effect: func(ctx context.Context, ac *combat.ActionContext, target *combat.Creature) error {
			return s.applyOrRevert(ctx, ac, target, r, "traced")
		},
	}

	switch opts.Cost {
	case Cost0:
		cfg.Cost = 0
		cfg.Target = combat.WithCondition(combat.Self(), usable)
	case Cost1:
		cfg.Cost = 1
		cfg.Target = adjacent
	case Cost2:
		cfg.Cost = 2
		cfg.Target = ranged
	case CostVariable:
		cfg.Costs = []int{1, 2}
		cfg.Target = combat.CostDependent(map[int]combat.TargetSpec{
			1: adjacent,
			2: ranged,
		})
	}

	// Applied last so it sees the final cost and target
	if opts.Sing {
		cfg.Name = "Sing " + r.Name
		cfg.Tags.Remove(combat.TagManipulate)
		if cfg.Cost > 0 || len(cfg.Costs) > 0 {
			cfg.Cost = 1
			cfg.Costs = nil
			if opts.Cost == CostVariable {
				cfg.Target = ranged
			}
		}
		cfg.Cleanup = func(_ context.Context, ac *combat.ActionContext) {
			ac.Actor.SetMarker(MarkerSingTheRunes, false)
		}
	}

	return cfg
}

func (s *service) Etch(actor *combat.Creature, r *runes.Rune) *combat.Action {
	cfg := s.traceConfig(actor, r, TraceOptions{Cost: Cost2})

	cfg.Name = "Etch " + r.Name
	cfg.Description = r.Description(actor.Level, runes.DescribeOptions{
		Prologue: "Etch a rune onto an ally or its gear before combat.",
		Epilogue: etchEpilogue,
	})
	cfg.Cost = 0
	cfg.Tags.Remove(runes.TagTraced, combat.TagConcentrate, combat.TagManipulate).Add(runes.TagEtched)
	// Still needs line of effect across the area
	cfg.Target = combat.WithCondition(combat.RangedFriendly(-1), usableCondition(r))
	cfg.Effect = func(ctx context.Context, ac *combat.ActionContext, target *combat.Creature) error {
		return s.applyOrRevert(ctx, ac, target, r, "etched")
	}

	return combat.NewAction(cfg)
}

func (s *service) applyOrRevert(ctx context.Context, ac *combat.ActionContext, target *combat.Creature, r *runes.Rune, verb string) error {
	d, err := s.Apply(ctx, &ApplyInput{
		Action: ac,
		Caster: ac.Actor,
		Target: target,
		Rune:   r,
	})
	if err != nil {
		return err
	}
	if d == nil {
		ac.Revert(fmt.Sprintf("%s could not be %s on %s", r.Name, verb, target.Name))
	}
	return nil
}

func freeHandCondition(_ *combat.Encounter, actor, _ *combat.Creature) combat.Usability {
	if !actor.HasFreeHand() {
		return combat.NotUsable(ReasonNoFreeHand)
	}
	return combat.Usable
}

func usableCondition(r *runes.Rune) combat.Condition {
	return func(_ *combat.Encounter, actor, candidate *combat.Creature) combat.Usability {
		return r.CheckUsable(actor, candidate)
	}
}
