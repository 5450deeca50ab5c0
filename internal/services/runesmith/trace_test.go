package runesmith_test

import (
	"context"

	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	"github.com/KirkDiggler/runesmith/internal/effects"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
	"github.com/KirkDiggler/runesmith/internal/services/runesmith"
)

func (s *ServiceTestSuite) TestTrace_TagsAndCosts() {
	action := s.svc.Trace(s.smith, s.atryl, runesmith.TraceOptions{Cost: runesmith.Cost2})

	s.Equal("Trace Atryl", action.Name())
	s.Equal(2, action.Cost())
	s.True(action.Tags().HasAll(
		"atryl", "fire", runes.TagRune,
		combat.TagConcentrate, combat.TagMagical, combat.TagManipulate,
		runes.TagTraced, combat.TagSpellLike,
	))
	s.Contains(action.Description(), "Invocation: 2d6 fire damage.")

	s.Equal(0, s.svc.Trace(s.smith, s.atryl, runesmith.TraceOptions{Cost: runesmith.Cost0}).Cost())
	s.Equal(1, s.svc.Trace(s.smith, s.atryl, runesmith.TraceOptions{Cost: runesmith.Cost1}).Cost())

	variable := s.svc.Trace(s.smith, s.atryl, runesmith.TraceOptions{Cost: runesmith.CostVariable})
	s.True(variable.IsVariable())
	s.Equal([]int{1, 2}, variable.Costs())
}

func (s *ServiceTestSuite) TestTrace_TargetsByCost() {
	adjacent := s.creature("adjacent", "Adjacent", combat.FactionEnemies, 1, 1)

	tests := []struct {
		name      string
		cost      runesmith.Cost
		at        int
		candidate *combat.Creature
		legal     bool
		reason    string
	}{
		{name: "self only at 0", cost: runesmith.Cost0, at: 0, candidate: s.smith, legal: true},
		{name: "not others at 0", cost: runesmith.Cost0, at: 0, candidate: adjacent, reason: combat.ReasonNotSelf},
		{name: "adjacent at 1", cost: runesmith.Cost1, at: 1, candidate: adjacent, legal: true},
		{name: "self at 1", cost: runesmith.Cost1, at: 1, candidate: s.smith, legal: true},
		{name: "not far at 1", cost: runesmith.Cost1, at: 1, candidate: s.goblin, reason: combat.ReasonOutOfRange},
		{name: "ranged at 2", cost: runesmith.Cost2, at: 2, candidate: s.goblin, legal: true},
		{name: "beyond range at 2", cost: runesmith.Cost2, at: 2, candidate: s.far, reason: combat.ReasonOutOfRange},
		{name: "variable adjacent", cost: runesmith.CostVariable, at: 1, candidate: adjacent, legal: true},
		{name: "variable ranged needs 2", cost: runesmith.CostVariable, at: 1, candidate: s.goblin, reason: combat.ReasonOutOfRange},
		{name: "variable ranged", cost: runesmith.CostVariable, at: 2, candidate: s.goblin, legal: true},
		{name: "variable has no 0", cost: runesmith.CostVariable, at: 0, candidate: s.smith, reason: combat.ReasonNoCostOption},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			action := s.svc.Trace(s.smith, s.atryl, runesmith.TraceOptions{Cost: tt.cost})
			u := action.LegalTarget(s.enc, s.smith, tt.candidate, tt.at)
			s.Equal(tt.legal, u.Legal)
			s.Equal(tt.reason, u.Reason)
		})
	}
}

func (s *ServiceTestSuite) TestTrace_RangeOverride() {
	action := s.svc.Trace(s.smith, s.atryl, runesmith.TraceOptions{Cost: runesmith.Cost2, Range: 8})
	s.True(action.LegalTarget(s.enc, s.smith, s.far, 2).Legal)
}

func (s *ServiceTestSuite) TestTrace_OntoTargetInRange() {
	d := s.trace(s.atryl, s.goblin)

	s.True(d.IsTemporary())
	s.Equal("smith", d.SourceID)
	s.Equal("goblin", d.OwnerID)
	s.True(d.Tags.Has(runes.TagTraced))
	s.True(s.svc.Ledger().Bears(s.goblin, d))
	s.Equal(effects.ExpireEndOfSourcesNextTurn, s.goblin.Effects.Get(d.ID).Expiration)
}

func (s *ServiceTestSuite) TestTrace_BeyondRangeCreatesNothing() {
	action := s.svc.Trace(s.smith, s.atryl, runesmith.TraceOptions{Cost: runesmith.Cost2})
	s.Equal(combat.ReasonOutOfRange, action.LegalTarget(s.enc, s.smith, s.far, 2).Reason)

	_, err := action.Execute(s.ctx, s.enc, s.smith, combat.ExecuteInput{Targets: []*combat.Creature{s.far}})
	s.True(dnderr.IsValidation(err))
	s.Zero(s.svc.Ledger().Len())
	s.Empty(s.far.Effects.List())
}

func (s *ServiceTestSuite) TestTrace_NeedsFreeHand() {
	s.smith.GiveItem(&combat.Item{ID: "maul", Name: "Maul", Kind: combat.ItemWeapon, Hands: 2})

	for _, cost := range []runesmith.Cost{runesmith.Cost1, runesmith.Cost2} {
		action := s.svc.Trace(s.smith, s.atryl, runesmith.TraceOptions{Cost: cost})
		for _, c := range []*combat.Creature{s.smith, s.ally, s.goblin} {
			u := action.LegalTarget(s.enc, s.smith, c, action.Cost())
			s.False(u.Legal)
			s.Equal(runesmith.ReasonNoFreeHand, u.Reason)
		}
	}

	self := s.svc.Trace(s.smith, s.atryl, runesmith.TraceOptions{Cost: runesmith.Cost0})
	s.True(self.LegalTarget(s.enc, s.smith, s.smith, 0).Legal)
}

func (s *ServiceTestSuite) TestTrace_UsabilityRejectsCandidate() {
	picky := runes.MustNew(runes.Definition{
		Key:   "picky",
		Name:  "Picky",
		Level: 1,
		Usable: func(_, target *combat.Creature) combat.Usability {
			if target.Faction != combat.FactionEnemies {
				return combat.NotUsable("must target an enemy")
			}
			return combat.Usable
		},
		NewInstance: creatureInstance,
	})

	action := s.svc.Trace(s.smith, picky, runesmith.TraceOptions{Cost: runesmith.Cost2})
	s.Equal("must target an enemy", action.LegalTarget(s.enc, s.smith, s.ally, 2).Reason)
	s.True(action.LegalTarget(s.enc, s.smith, s.goblin, 2).Legal)
}

func (s *ServiceTestSuite) TestTrace_Sing() {
	s.smith.GiveItem(&combat.Item{ID: "maul", Name: "Maul", Kind: combat.ItemWeapon, Hands: 2})
	s.smith.SetMarker(runesmith.MarkerSingTheRunes, true)

	action := s.svc.Trace(s.smith, s.atryl, runesmith.TraceOptions{Cost: runesmith.Cost2})
	s.Equal("Sing Atryl", action.Name())
	s.Equal(1, action.Cost())
	s.False(action.HasTag(combat.TagManipulate))
	s.True(action.LegalTarget(s.enc, s.smith, s.goblin, 1).Legal, "singing needs no free hand")

	res, err := action.Execute(s.ctx, s.enc, s.smith, combat.ExecuteInput{Targets: []*combat.Creature{s.goblin}})
	s.Require().NoError(err)
	s.False(res.Reverted)
	s.False(s.smith.HasMarker(runesmith.MarkerSingTheRunes), "the marker is used up")

	again := s.svc.Trace(s.smith, s.atryl, runesmith.TraceOptions{Cost: runesmith.Cost2})
	s.Equal(2, again.Cost())
}

func (s *ServiceTestSuite) TestTrace_SingCollapsesCosts() {
	free := s.svc.Trace(s.smith, s.atryl, runesmith.TraceOptions{Cost: runesmith.Cost0, Sing: true})
	s.Equal(0, free.Cost())

	variable := s.svc.Trace(s.smith, s.atryl, runesmith.TraceOptions{Cost: runesmith.CostVariable, Sing: true})
	s.False(variable.IsVariable())
	s.Equal(1, variable.Cost())
	s.True(variable.LegalTarget(s.enc, s.smith, s.goblin, 1).Legal)
}

func (s *ServiceTestSuite) TestTrace_RevertUndoesEarlierTargets() {
	calls := 0
	fickle := runes.MustNew(runes.Definition{
		Key:   "fickle",
		Name:  "Fickle",
		Level: 1,
		NewInstance: func(ctx context.Context, in runes.InstanceInput) *runes.DrawnRune {
			calls++
			if in.Target.ID == "goblin" {
				return nil
			}
			return creatureInstance(ctx, in)
		},
	})

	res, err := s.svc.Trace(s.smith, fickle, runesmith.TraceOptions{Cost: runesmith.Cost2}).
		Execute(s.ctx, s.enc, s.smith, combat.ExecuteInput{Targets: []*combat.Creature{s.ally, s.goblin}})
	s.Require().NoError(err)
	s.True(res.Reverted)
	s.Equal(2, calls)
	s.Zero(s.svc.Ledger().Len())
	s.Empty(s.ally.Effects.List())
}

func (s *ServiceTestSuite) TestEtch() {
	action := s.svc.Etch(s.smith, s.atryl)

	s.Equal("Etch Atryl", action.Name())
	s.Equal(0, action.Cost())
	s.True(action.HasTag(runes.TagEtched))
	s.False(action.Tags().HasAny(runes.TagTraced, combat.TagConcentrate, combat.TagManipulate))
	s.True(action.HasTag(combat.TagMagical))

	s.True(action.LegalTarget(s.enc, s.smith, s.ally, 0).Legal)
	s.Equal(combat.ReasonNotFriendly, action.LegalTarget(s.enc, s.smith, s.goblin, 0).Reason)

	distant := s.creature("distant", "Distant Ally", combat.FactionParty, 30, 0)
	s.True(action.LegalTarget(s.enc, s.smith, distant, 0).Legal, "etching ignores range")

	s.enc.AddBlocker(combat.Position{X: 10, Y: 0})
	s.Equal(combat.ReasonNoLine, action.LegalTarget(s.enc, s.smith, distant, 0).Reason,
		"etching is still blocked by walls")
}

func (s *ServiceTestSuite) TestEtch_BeforeEncounterLastsUntilItEnds() {
	res, err := s.svc.Etch(s.smith, s.atryl).
		Execute(s.ctx, s.enc, s.smith, combat.ExecuteInput{Targets: []*combat.Creature{s.ally}})
	s.Require().NoError(err)
	s.False(res.Reverted)

	drawn := s.svc.InstancesOn("ally")
	s.Require().Len(drawn, 1)
	d := drawn[0]
	s.True(d.IsDurable())
	s.False(d.IsTemporary())
	s.Equal(effects.ExpireNever, s.ally.Effects.Get(d.ID).Expiration)

	s.Require().NoError(s.enc.Begin())
	for i := 0; i < 8; i++ {
		s.Require().NoError(s.enc.NextTurn())
	}
	s.True(s.svc.Ledger().Bears(s.ally, d))

	s.Require().NoError(s.enc.End())
	s.False(s.svc.Ledger().Has(d.ID))
	s.Empty(s.ally.Effects.List())
}

func (s *ServiceTestSuite) TestEtch_RespectsUsability() {
	enemiesOnly := runes.MustNew(runes.Definition{
		Key:   "hostile",
		Name:  "Hostile",
		Level: 1,
		Usable: func(_, target *combat.Creature) combat.Usability {
			return combat.NotUsable("never on allies")
		},
		NewInstance: creatureInstance,
	})
	action := s.svc.Etch(s.smith, enemiesOnly)
	s.Equal("never on allies", action.LegalTarget(s.enc, s.smith, s.ally, 0).Reason)
}
