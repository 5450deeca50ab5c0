package runesmith_test

import (
	"context"

	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
	"github.com/KirkDiggler/runesmith/internal/services/runesmith"
)

func (s *ServiceTestSuite) TestApply_RequiresInput() {
	_, err := s.svc.Apply(s.ctx, nil)
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.svc.Apply(s.ctx, &runesmith.ApplyInput{Caster: s.smith, Rune: s.atryl})
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestApply_Unusable() {
	never := runes.MustNew(runes.Definition{
		Key:   "never",
		Name:  "Never",
		Level: 1,
		Usable: func(_, _ *combat.Creature) combat.Usability {
			return combat.NotUsable("nope")
		},
		NewInstance: creatureInstance,
	})

	d, err := s.svc.Apply(s.ctx, &runesmith.ApplyInput{Caster: s.smith, Target: s.goblin, Rune: never})
	s.NoError(err)
	s.Nil(d)
	s.Zero(s.svc.Ledger().Len())

	d, err = s.svc.Apply(s.ctx, &runesmith.ApplyInput{Caster: s.smith, Target: s.goblin, Rune: never, IgnoreUsability: true})
	s.Require().NoError(err)
	s.Require().NotNil(d)
	s.True(s.svc.Ledger().Bears(s.goblin, d))
}

func (s *ServiceTestSuite) TestApply_NoFactory() {
	bare := runes.MustNew(runes.Definition{Key: "bare", Name: "Bare", Level: 1})

	d, err := s.svc.Apply(s.ctx, &runesmith.ApplyInput{Caster: s.smith, Target: s.goblin, Rune: bare})
	s.NoError(err)
	s.Nil(d)
	s.Empty(s.goblin.Effects.List())
}

func (s *ServiceTestSuite) TestApply_FactoryDeclines() {
	declines := runes.MustNew(runes.Definition{
		Key:   "declines",
		Name:  "Declines",
		Level: 1,
		NewInstance: func(context.Context, runes.InstanceInput) *runes.DrawnRune {
			return nil
		},
	})

	d, err := s.svc.Apply(s.ctx, &runesmith.ApplyInput{Caster: s.smith, Target: s.goblin, Rune: declines})
	s.NoError(err)
	s.Nil(d)
}

func (s *ServiceTestSuite) TestApply_WithoutActionKeepsFactoryMedium() {
	d, err := s.svc.Apply(s.ctx, &runesmith.ApplyInput{Caster: s.smith, Target: s.goblin, Rune: s.atryl})
	s.Require().NoError(err)
	s.True(d.IsTemporary())
	s.Equal("id-1", d.ID)
	s.Equal(1, s.svc.Ledger().Len())
}

func (s *ServiceTestSuite) TestApply_BindsToItem() {
	sword := &combat.Item{ID: "sword", Name: "Longsword", Kind: combat.ItemWeapon, Hands: 1}
	s.ally.GiveItem(sword)

	d, err := s.svc.Apply(s.ctx, &runesmith.ApplyInput{Caster: s.smith, Target: s.ally, Rune: s.atryl, Item: sword})
	s.Require().NoError(err)
	s.Equal(runes.OnItem("sword"), d.Attachment)
	s.Equal("Atryl (Longsword)", d.DisplayName)

	s.Require().NoError(s.enc.TransferItem("sword", "goblin"))
	s.True(s.svc.Ledger().Bears(s.goblin, d))
}

func (s *ServiceTestSuite) TestApply_PreferredItemReachesFactory() {
	sword := &combat.Item{ID: "sword", Name: "Longsword", Kind: combat.ItemWeapon, Hands: 1}
	s.ally.GiveItem(sword)

	var got *combat.Item
	spy := runes.MustNew(runes.Definition{
		Key:   "spy",
		Name:  "Spy",
		Level: 1,
		NewInstance: func(ctx context.Context, in runes.InstanceInput) *runes.DrawnRune {
			got = in.Item
			return creatureInstance(ctx, in)
		},
	})

	ctx := runesmith.WithPreferredItem(s.ctx, "sword")
	d, err := s.svc.Apply(ctx, &runesmith.ApplyInput{Caster: s.smith, Target: s.ally, Rune: spy})
	s.Require().NoError(err)
	s.Same(sword, got)
	s.Equal(runes.AttachedToCreature, d.Attachment.Kind, "a preference alone does not bind")

	got = nil
	_, err = s.svc.Apply(ctx, &runesmith.ApplyInput{Caster: s.smith, Target: s.goblin, Rune: spy})
	s.Require().NoError(err)
	s.Nil(got, "the goblin carries no sword")
}

func (s *ServiceTestSuite) TestApply_RevertedActionRemovesInstance() {
	var drawn *runes.DrawnRune
	action := combat.NewAction(combat.ActionConfig{
		Name:   "Trace then fail",
		Cost:   1,
		Tags:   s.atryl.Tags.Union(runes.TagTraced),
		Target: combat.Ranged(10),
		Effect: func(ctx context.Context, ac *combat.ActionContext, target *combat.Creature) error {
			d, err := s.svc.Apply(ctx, &runesmith.ApplyInput{Action: ac, Caster: ac.Actor, Target: target, Rune: s.atryl})
			if err != nil {
				return err
			}
			drawn = d
			ac.Revert("changed my mind")
			return nil
		},
	})

	res, err := action.Execute(s.ctx, s.enc, s.smith, combat.ExecuteInput{Targets: []*combat.Creature{s.goblin}})
	s.Require().NoError(err)
	s.True(res.Reverted)
	s.Require().NotNil(drawn)
	s.False(s.svc.Ledger().Has(drawn.ID))
	s.Empty(s.goblin.Effects.List())
}

func (s *ServiceTestSuite) TestApply_EtchedActionMakesDurable() {
	res, err := s.svc.Etch(s.smith, s.atryl).
		Execute(s.ctx, s.enc, s.smith, combat.ExecuteInput{Targets: []*combat.Creature{s.ally}})
	s.Require().NoError(err)
	s.False(res.Reverted)

	drawn := s.svc.InstancesOn("ally")
	s.Require().Len(drawn, 1)
	s.True(drawn[0].IsDurable())
	s.True(drawn[0].Tags.Has(runes.TagEtched))
}

func (s *ServiceTestSuite) TestRemoveAllFrom() {
	s.trace(s.atryl, s.goblin)
	s.trace(s.atryl, s.ally)

	s.Equal(2, s.svc.RemoveAllFrom(s.smith))
	s.Zero(s.svc.Ledger().Len())
	s.Zero(s.svc.RemoveAllFrom(nil))
}
