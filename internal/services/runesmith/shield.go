package runesmith

import (
	"context"

	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	"github.com/KirkDiggler/runesmith/internal/effects"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
)

// RaiseShield builds the action that raises the actor's shield
func RaiseShield() *combat.Action {
	return combat.NewAction(combat.ActionConfig{
		Name:   "Raise a Shield",
		Cost:   1,
		Tags:   effects.NewTags("shield"),
		Target: combat.Self(),
		Effect: func(_ context.Context, ac *combat.ActionContext, target *combat.Creature) error {
			shield := target.Shield()
			if shield == nil {
				ac.Revert(target.Name + " has no shield")
				return nil
			}
			if shield.Raised {
				return nil
			}
			shield.Raised = true
			ac.OnRevert(func() { shield.Raised = false })
			return nil
		},
	})
}

// PlantOnShield has holder raise their shield, then traces r onto the shield
// whether or not r is normally usable there
func (s *service) PlantOnShield(ctx context.Context, actor, holder *combat.Creature, r *runes.Rune) (*runes.DrawnRune, error) {
	if actor == nil || holder == nil || r == nil {
		return nil, dnderr.InvalidArgument("actor, holder and rune are required")
	}
	shield := holder.Shield()
	if shield == nil {
		return nil, dnderr.InvalidArgumentf("%s has no shield", holder.Name)
	}

	var planted *runes.DrawnRune
	plant := combat.NewAction(combat.ActionConfig{
		Name: "Plant " + r.Name,
		Description: r.Description(actor.Level, runes.DescribeOptions{
			Prologue: "Raise a shield and trace a rune onto it.",
			Epilogue: traceEpilogue,
		}),
		Cost:   1,
		Tags:   runeTags(r, combat.TagMagical, runes.TagTraced),
		Target: combat.AdjacentOrSelf(),
		Effect: func(ctx context.Context, ac *combat.ActionContext, target *combat.Creature) error {
			wasRaised := shield.Raised
			raised, err := RaiseShield().Execute(ctx, s.enc, target, combat.ExecuteInput{
				Targets: []*combat.Creature{target},
				Parent:  ac,
			})
			if err != nil {
				return err
			}
			if raised.Reverted {
				ac.Revert(raised.RevertReason)
				return nil
			}
			ac.OnRevert(func() { shield.Raised = wasRaised })

			d, err := s.Apply(ctx, &ApplyInput{
				Action:          ac,
				Caster:          ac.Actor,
				Target:          target,
				Rune:            r,
				IgnoreUsability: true,
				Item:            shield,
			})
			if err != nil {
				return err
			}
			if d == nil {
				ac.Revert(r.Name + " could not be planted")
				return nil
			}
			planted = d
			return nil
		},
	})

	res, err := plant.Execute(ctx, s.enc, actor, combat.ExecuteInput{
		Targets: []*combat.Creature{holder},
	})
	if err != nil {
		return nil, err
	}
	if res.Reverted {
		return nil, nil
	}
	return planted, nil
}
