package runesmith

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/runesmith/internal/catalog"
	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	"github.com/KirkDiggler/runesmith/internal/effects"
)

// trolistri is a diacritic that locks its base rune to the runesmith who
// drew it. It has no invocation of its own.
func trolistri(entry *catalog.Entry) runes.Definition {
	def := entry.Definition()
	def.Usable = func(caster, target *combat.Creature) combat.Usability {
		if target == nil || len(baseRunes(caster, target)) == 0 {
			return combat.NotUsable("must be drawn on one of your runes")
		}
		return combat.Usable
	}
	def.NewInstance = func(ctx context.Context, in runes.InstanceInput) *runes.DrawnRune {
		base := chooseBase(ctx, in, baseRunes(in.Caster, in.Target))
		if base == nil {
			return nil
		}

		d := runes.NewDrawn(in.ID, in.Rune, in.Caster, in.Target)
		d.Attachment = runes.OnRune(base.ID)
		d.DisplayName = fmt.Sprintf("%s (%s)", in.Rune.Name, base.Name)
		d.BeforeAnyInvoke = lockToSource
		return d
	}
	return def
}

func lockToSource(_ context.Context, self *runes.DrawnRune, hc runes.HookContext) {
	if hc.Invoked == nil || hc.Invoked.ID != self.Attachment.DrawnID {
		return
	}
	if hc.Caster != nil && hc.Caster.ID == self.SourceID {
		return
	}
	log.Printf("[RUNES] %s stops an invocation of %s", self, hc.Invoked)
	hc.Action.Revert(fmt.Sprintf("%s is locked by %s", hc.Invoked.DisplayName, self.Rune.Name))
}

// baseRunes are the non-diacritic runes caster drew that target bears
func baseRunes(caster, target *combat.Creature) []*effects.Effect {
	var out []*effects.Effect
	for _, e := range target.Effects.FindByTags(runes.TagRune) {
		if !e.HasTag(runes.TagDiacritic) && caster != nil && e.SourceID == caster.ID {
			out = append(out, e)
		}
	}
	return out
}

func chooseBase(ctx context.Context, in runes.InstanceInput, bases []*effects.Effect) *effects.Effect {
	switch len(bases) {
	case 0:
		return nil
	case 1:
		return bases[0]
	}
	if in.Picker == nil {
		return bases[0]
	}

	options := make([]combat.Option, 0, len(bases)+1)
	for _, e := range bases {
		options = append(options, combat.Option{
			Kind:     combat.OptionCreature,
			Label:    e.Name,
			Creature: in.Target,
			Key:      e.ID,
		})
	}
	picked, err := in.Picker.Pick(ctx, &combat.Request{
		Prompt:  "Choose a rune to mark with " + in.Rune.Name,
		Actor:   in.Caster,
		Options: append(options, combat.CancelOption()),
	})
	if err != nil || picked == nil || picked.Kind != combat.OptionCreature {
		return nil
	}
	return in.Target.Effects.Get(picked.Key)
}
