package runesmith

import (
	"context"
	"log"

	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/effects"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
	"github.com/KirkDiggler/runesmith/internal/repositories/etchings"
)

// EtchLoadouts etches every stored etching of the given casters. Etchings
// naming unknown runes or absent targets are skipped. It returns how many
// runes were etched.
func (s *service) EtchLoadouts(ctx context.Context, repo etchings.Repository, casters []*combat.Creature) (int, error) {
	if repo == nil {
		return 0, dnderr.InvalidArgument("repository is required")
	}
	if s.registry == nil {
		return 0, dnderr.Misconfiguredf("etching loadouts needs a rune registry")
	}

	ids := make([]string, 0, len(casters))
	for _, c := range casters {
		ids = append(ids, c.ID)
	}

	loadouts, err := repo.GetMany(ctx, ids)
	if err != nil {
		return 0, dnderr.Wrap(err, "failed to load etchings")
	}

	count := 0
	for _, loadout := range loadouts {
		caster := s.enc.Creature(loadout.CasterID)
		if caster == nil {
			continue
		}
		for _, etching := range loadout.Etchings {
			ok, err := s.etch(ctx, caster, etching)
			if err != nil {
				return count, err
			}
			if ok {
				count++
			}
		}
	}

	log.Printf("[RUNES] Etched %d runes from %d loadouts", count, len(loadouts))
	return count, nil
}

func (s *service) etch(ctx context.Context, caster *combat.Creature, etching etchings.Etching) (bool, error) {
	r, err := s.registry.Get(effects.Tag(etching.RuneKey))
	if err != nil {
		log.Printf("[RUNES] Skipping etching for %s: %v", caster.Name, err)
		return false, nil
	}
	target := s.enc.Creature(etching.TargetID)
	if target == nil {
		log.Printf("[RUNES] Skipping %s etching: %s is not in the encounter", r.Name, etching.TargetID)
		return false, nil
	}

	if etching.ItemID != "" {
		ctx = WithPreferredItem(ctx, etching.ItemID)
	}

	res, err := s.Etch(caster, r).Execute(ctx, s.enc, caster, combat.ExecuteInput{
		Targets: []*combat.Creature{target},
	})
	if err != nil {
		if dnderr.IsValidation(err) {
			log.Printf("[RUNES] Skipping %s etching on %s: %v", r.Name, target.Name, err)
			return false, nil
		}
		return false, err
	}
	return !res.Reverted, nil
}
