package runesmith

import (
	"context"

	"github.com/KirkDiggler/runesmith/internal/catalog"
	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
)

func marssyl(entry *catalog.Entry) runes.Definition {
	fits := anyOf(weaponDealing("bludgeoning"), ofKind(combat.ItemHandwraps))

	def := entry.Definition()
	def.Usable = holding("must be holding a bludgeoning weapon or wearing handwraps", fits)
	def.NewInstance = onItem(fits)
	def.Invoke = func(_ context.Context, in runes.InvokeInput) error {
		enc := in.Runtime.Encounter()
		origin := in.Bearer.Position

		for _, c := range adjacentTo(enc, in.Bearer) {
			if c.IsFriendlyTo(in.Bearer) || in.Runtime.IsImmune(c, in.Rune) {
				continue
			}
			degree, err := basicSaveDamage(in, c, entry, combat.Fortitude)
			if err != nil {
				return err
			}
			if degree <= combat.Failure {
				enc.Push(c, origin, 1)
			}
			in.Runtime.ApplyImmunity(c, in.Rune)
		}
		in.Runtime.Remove(in.Drawn)
		return nil
	}
	return def
}
