package runesmith

import (
	"context"
	"log"

	"github.com/KirkDiggler/runesmith/internal/catalog"
	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
)

func esvadir(entry *catalog.Entry) runes.Definition {
	fits := weaponDealing("piercing", "slashing")

	def := entry.Definition()
	def.Usable = holding("must be holding a piercing or slashing weapon", fits)
	def.NewInstance = onItem(fits)
	def.Invoke = func(ctx context.Context, in runes.InvokeInput) error {
		enc := in.Runtime.Encounter()

		var options []combat.Option
		for _, c := range adjacentTo(enc, in.Bearer) {
			if in.Runtime.IsImmune(c, in.Rune) {
				continue
			}
			options = append(options, combat.Option{
				Kind:     combat.OptionCreature,
				Label:    c.Name,
				Creature: c,
				Key:      c.ID,
			})
		}
		if len(options) == 0 {
			log.Printf("[RUNES] %s fades with nobody next to %s", in.Drawn, in.Bearer.Name)
			in.Runtime.Remove(in.Drawn)
			return nil
		}

		picked, err := in.Runtime.Picker().Pick(ctx, &combat.Request{
			Prompt:  "Choose a creature for " + in.Rune.Name + " to cut",
			Actor:   in.Caster,
			Options: append(options, combat.CancelOption()),
		})
		if err != nil {
			return dnderr.Wrap(err, "failed to pick a creature")
		}
		if picked == nil || picked.Kind != combat.OptionCreature {
			in.Action.Revert("cancelled")
			return nil
		}

		// The cut creature is the one made immune, not the bearer
		victim := picked.Creature
		if _, err := basicSaveDamage(in, victim, entry, combat.Fortitude); err != nil {
			return err
		}
		in.Runtime.Remove(in.Drawn)
		in.Runtime.ApplyImmunity(victim, in.Rune)
		return nil
	}
	return def
}
