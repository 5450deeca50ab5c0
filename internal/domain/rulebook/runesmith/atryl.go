package runesmith

import (
	"context"

	"github.com/KirkDiggler/runesmith/internal/catalog"
	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
)

// atryl burns its bearer when invoked
func atryl(entry *catalog.Entry) runes.Definition {
	return burstOnBearer(entry, combat.Fortitude)
}

// ranshu shocks its bearer when invoked
func ranshu(entry *catalog.Entry) runes.Definition {
	return burstOnBearer(entry, combat.Reflex)
}

// burstOnBearer is a creature rune whose invocation damages the bearer
func burstOnBearer(entry *catalog.Entry, save combat.Save) runes.Definition {
	def := entry.Definition()
	def.Usable = creatureUsable
	def.NewInstance = onCreature
	def.Invoke = func(_ context.Context, in runes.InvokeInput) error {
		if _, err := basicSaveDamage(in, in.Bearer, entry, save); err != nil {
			return err
		}
		in.Runtime.Remove(in.Drawn)
		in.Runtime.ApplyImmunity(in.Bearer, in.Rune)
		return nil
	}
	return def
}
