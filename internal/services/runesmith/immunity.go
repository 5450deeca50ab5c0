package runesmith

import (
	"log"

	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	"github.com/KirkDiggler/runesmith/internal/effects"
)

// ApplyImmunity keeps target from being affected by r again in this activity.
// The marker also expires at the end of the current turn.
func (s *service) ApplyImmunity(target *combat.Creature, r *runes.Rune) *effects.Effect {
	if target == nil || r == nil {
		return nil
	}

	marker := effects.NewBuilder("Immune to "+r.Name).
		WithID(s.uuidGenerator.New()).
		WithTags(runes.TagImmunity, r.Key).
		Expires(effects.ExpireEndOfAnyTurn).
		Hidden().
		Build()

	if err := target.Effects.Add(marker); err != nil {
		log.Printf("[RUNES] Failed to mark %s immune to %s: %v", target.Name, r.Name, err)
		return nil
	}
	return marker
}

func (s *service) IsImmune(target *combat.Creature, r *runes.Rune) bool {
	if target == nil || r == nil {
		return false
	}
	return target.Effects.HasTags(runes.TagImmunity, r.Key)
}

func (s *service) ClearAllImmunity(creature *combat.Creature) int {
	if creature == nil {
		return 0
	}
	removed := creature.Effects.RemoveWhere(func(e *effects.Effect) bool {
		return e.HasTag(runes.TagImmunity)
	})
	return len(removed)
}

func (s *service) ClearEncounterImmunity() int {
	count := 0
	for _, c := range s.enc.Creatures() {
		count += s.ClearAllImmunity(c)
	}
	return count
}
