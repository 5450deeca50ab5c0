package runesmith

import (
	"log"

	"github.com/KirkDiggler/runesmith/internal/catalog"
	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
)

// basicSaveDamage rolls target's save against the caster's class DC, then
// deals the rune's heightened damage scaled by the result
func basicSaveDamage(in runes.InvokeInput, target *combat.Creature, entry *catalog.Entry, save combat.Save) (combat.Degree, error) {
	expr, err := entry.DamageAt(in.Caster.Level)
	if err != nil {
		return combat.Failure, err
	}

	roller := in.Runtime.Roller()
	result, err := combat.SavingThrow(roller, target, save, in.Caster.ClassDC)
	if err != nil {
		return combat.Failure, dnderr.Wrapf(err, "failed to roll %s save", save)
	}
	roll, err := expr.Roll(roller)
	if err != nil {
		return combat.Failure, dnderr.Wrapf(err, "failed to roll %s damage", in.Rune.Name)
	}

	dealt := target.TakeDamage(combat.BasicSaveDamage(result.Degree, roll.Total), entry.Damage.Type)
	log.Printf("[RUNES] %s: %s rolled %d (%s) against DC %d and took %d %s damage",
		in.Rune.Name, target.Name, result.Roll.Total, result.Degree, result.DC, dealt, entry.Damage.Type)
	return result.Degree, nil
}

// adjacentTo returns the living creatures within one step of c
func adjacentTo(enc *combat.Encounter, c *combat.Creature) []*combat.Creature {
	var out []*combat.Creature
	for _, other := range enc.Creatures() {
		if other.ID != c.ID && other.IsAlive() && enc.Distance(c, other) <= 1 {
			out = append(out, other)
		}
	}
	return out
}
