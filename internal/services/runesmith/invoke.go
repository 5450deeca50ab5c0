package runesmith

import (
	"context"
	"log"

	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
)

// InvokeOptions selects what an Invoke action triggers
type InvokeOptions struct {
	// Activity is the activity the invocation is part of, if any. Invocations
	// inside an activity cost nothing on their own.
	Activity *combat.ActionContext
	Actor    *combat.Creature
	Drawn    *runes.DrawnRune
	// Range is in grid steps and defaults to the configured invoke range
	Range int
	// ClearImmunity wipes every immunity marker once targets are chosen
	ClearImmunity bool
	// RequireBearer only allows the creature bearing exactly Drawn
	RequireBearer bool
}

// InvokeInput contains data for invoking one drawn rune
type InvokeInput struct {
	Action *combat.ActionContext
	Caster *combat.Creature
	Bearer *combat.Creature
	Drawn  *runes.DrawnRune
}

func (s *service) Invoke(opts InvokeOptions) *combat.Action {
	if opts.Drawn == nil || opts.Actor == nil {
		return nil
	}
	r := opts.Drawn.Rune
	if !r.CanInvoke() {
		return nil
	}

	rng := opts.Range
	if rng <= 0 {
		rng = s.cfg.InvokeSteps()
	}

	target := combat.Ranged(rng)
	if opts.RequireBearer {
		d := opts.Drawn
		target = combat.WithCondition(target, func(_ *combat.Encounter, _, candidate *combat.Creature) combat.Usability {
			if !s.ledger.Bears(candidate, d) {
				return combat.NotUsable(r.Name + " not applied")
			}
			return combat.Usable
		})
	}

	cfg := combat.ActionConfig{
		Name: "Invoke " + opts.Drawn.DisplayName,
		Description: r.Description(opts.Actor.Level, runes.DescribeOptions{
			Prologue: "Invoke a rune you can see, ending it.",
		}),
		Cost:   1,
		Tags:   runeTags(r, runes.TagInvoke, combat.TagNoConcealment, combat.TagSpellLike),
		Target: target,
		Effect: func(ctx context.Context, ac *combat.ActionContext, bearer *combat.Creature) error {
			return s.InvokeDrawn(ctx, &InvokeInput{
				Action: ac,
				Caster: ac.Actor,
				Bearer: bearer,
				Drawn:  opts.Drawn,
			})
		},
	}
	if opts.Activity != nil {
		cfg.Cost = 0
	}

	if save, ok := r.Save(); ok {
		cfg.Tooltip = func(_ *combat.Encounter, actor, target *combat.Creature) string {
			return combat.SavePreview(target, save, actor.ClassDC)
		}
	}

	if opts.ClearImmunity {
		cfg.AfterTargetsChosen = func(context.Context, *combat.ActionContext) error {
			s.ClearEncounterImmunity()
			return nil
		}
	}

	return combat.NewAction(cfg)
}

// InvokeDrawn runs the drawn rune's invocation. Every borne instance's
// before hook runs first and may revert the action, which skips the
// invocation and the after hooks. After hooks cannot revert.
func (s *service) InvokeDrawn(ctx context.Context, input *InvokeInput) error {
	if input == nil || input.Action == nil || input.Drawn == nil {
		return dnderr.InvalidArgument("action and drawn rune are required")
	}

	d := input.Drawn
	r := d.Rune
	if !r.CanInvoke() || d.Suppressed {
		return nil
	}

	hc := runes.HookContext{
		Action:  input.Action,
		Invoked: d,
		Caster:  input.Caster,
		Bearer:  input.Bearer,
	}

	s.sweep(ctx, hc, func(other *runes.DrawnRune) runes.HookFunc { return other.BeforeAnyInvoke })
	if input.Action.Reverted() {
		log.Printf("[RUNES] Invocation of %s was stopped: %s", d, input.Action.RevertReason())
		return nil
	}

	err := r.Invoke(ctx, runes.InvokeInput{
		Action:  input.Action,
		Rune:    r,
		Caster:  input.Caster,
		Bearer:  input.Bearer,
		Drawn:   d,
		Runtime: s,
	})
	if err != nil {
		return dnderr.Wrapf(err, "failed to invoke %s", d.DisplayName)
	}
	s.ledger.NotifyInvoked(d)

	// The invocation has resolved; after hooks get a view they cannot revert
	after := hc
	after.Action = resolvedView(input.Action)
	s.sweep(ctx, after, func(other *runes.DrawnRune) runes.HookFunc { return other.AfterAnyInvoke })
	if after.Action.Reverted() {
		log.Printf("[RUNES] Ignored revert of resolved invocation %s: %s", d, after.Action.RevertReason())
	}
	return nil
}

// resolvedView copies what hooks read from ac into a detached context
func resolvedView(ac *combat.ActionContext) *combat.ActionContext {
	return &combat.ActionContext{
		Action:    ac.Action,
		Encounter: ac.Encounter,
		Actor:     ac.Actor,
		Cost:      ac.Cost,
		Targets:   ac.Targets,
		Parent:    ac.Parent,
	}
}

// sweep runs a hook of every borne instance in encounter order
func (s *service) sweep(ctx context.Context, hc runes.HookContext, hook func(*runes.DrawnRune) runes.HookFunc) {
	for _, other := range s.ledger.All() {
		if fn := hook(other); fn != nil {
			fn(ctx, other, hc)
		}
	}
}
