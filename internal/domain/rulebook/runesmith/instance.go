package runesmith

import (
	"context"
	"slices"

	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
)

// ReasonNotCreature rejects targets that aren't living creatures
const ReasonNotCreature = "must target a creature"

func creatureUsable(_, target *combat.Creature) combat.Usability {
	if target == nil || !target.IsAlive() {
		return combat.NotUsable(ReasonNotCreature)
	}
	return combat.Usable
}

func onCreature(_ context.Context, in runes.InstanceInput) *runes.DrawnRune {
	return runes.NewDrawn(in.ID, in.Rune, in.Caster, in.Target)
}

// itemFilter decides which of a target's items a rune can be drawn on
type itemFilter func(item *combat.Item) bool

func eligibleItems(target *combat.Creature, fits itemFilter) []*combat.Item {
	var out []*combat.Item
	for _, item := range target.Items {
		if fits(item) {
			out = append(out, item)
		}
	}
	return out
}

func holding(reason string, fits itemFilter) runes.UsableFunc {
	return func(_, target *combat.Creature) combat.Usability {
		if target == nil || len(eligibleItems(target, fits)) == 0 {
			return combat.NotUsable(reason)
		}
		return combat.Usable
	}
}

// onItem draws the rune on one of the target's items, asking which when
// there is more than one
func onItem(fits itemFilter) runes.InstanceFunc {
	return func(ctx context.Context, in runes.InstanceInput) *runes.DrawnRune {
		item := chooseItem(ctx, in, eligibleItems(in.Target, fits))
		if item == nil {
			return nil
		}
		d := runes.NewDrawn(in.ID, in.Rune, in.Caster, in.Target)
		d.BindTo(item)
		return d
	}
}

func chooseItem(ctx context.Context, in runes.InstanceInput, candidates []*combat.Item) *combat.Item {
	if in.Item != nil {
		if i := slices.IndexFunc(candidates, func(c *combat.Item) bool { return c.ID == in.Item.ID }); i >= 0 {
			return candidates[i]
		}
	}
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	}
	if in.Picker == nil {
		return candidates[0]
	}

	options := make([]combat.Option, 0, len(candidates)+1)
	for _, item := range candidates {
		options = append(options, combat.Option{
			Kind:     combat.OptionCreature,
			Label:    item.Name,
			Creature: in.Target,
			Key:      item.ID,
		})
	}
	picked, err := in.Picker.Pick(ctx, &combat.Request{
		Prompt:  "Choose an item to draw " + in.Rune.Name + " on",
		Actor:   in.Caster,
		Options: append(options, combat.CancelOption()),
	})
	if err != nil || picked == nil || picked.Kind != combat.OptionCreature {
		return nil
	}
	return in.Target.Item(picked.Key)
}

func weaponDealing(types ...string) itemFilter {
	return func(item *combat.Item) bool {
		return item.Kind == combat.ItemWeapon && slices.Contains(types, item.DamageType)
	}
}

func ofKind(kind combat.ItemKind) itemFilter {
	return func(item *combat.Item) bool {
		return item.Kind == kind
	}
}

func anyOf(filters ...itemFilter) itemFilter {
	return func(item *combat.Item) bool {
		for _, fits := range filters {
			if fits(item) {
				return true
			}
		}
		return false
	}
}
