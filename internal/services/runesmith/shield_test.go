package runesmith_test

import (
	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
	"github.com/KirkDiggler/runesmith/internal/services/runesmith"
)

func (s *ServiceTestSuite) TestRaiseShield() {
	shield := &combat.Item{ID: "shield", Name: "Steel Shield", Kind: combat.ItemShield, Hands: 1}
	s.smith.GiveItem(shield)

	res, err := runesmith.RaiseShield().Execute(s.ctx, s.enc, s.smith, combat.ExecuteInput{Targets: []*combat.Creature{s.smith}})
	s.Require().NoError(err)
	s.False(res.Reverted)
	s.True(shield.Raised)

	res, err = runesmith.RaiseShield().Execute(s.ctx, s.enc, s.ally, combat.ExecuteInput{Targets: []*combat.Creature{s.ally}})
	s.Require().NoError(err)
	s.True(res.Reverted)
}

func (s *ServiceTestSuite) TestPlantOnShield() {
	guard := s.creature("guard", "Guard", combat.FactionParty, 1, 0)
	shield := &combat.Item{ID: "shield", Name: "Steel Shield", Kind: combat.ItemShield, Hands: 1}
	guard.GiveItem(shield)

	picky := runes.MustNew(runes.Definition{
		Key:   "picky",
		Name:  "Picky",
		Level: 1,
		Usable: func(_, _ *combat.Creature) combat.Usability {
			return combat.NotUsable("never on shields")
		},
		NewInstance: creatureInstance,
	})

	d, err := s.svc.PlantOnShield(s.ctx, s.smith, guard, picky)
	s.Require().NoError(err)
	s.Require().NotNil(d, "planting ignores usability")

	s.True(shield.Raised)
	s.Equal(runes.OnItem("shield"), d.Attachment)
	s.Equal("Picky (Steel Shield)", d.DisplayName)
	s.True(d.IsTemporary())
	s.True(s.svc.Ledger().Bears(guard, d))

	s.Require().NoError(s.enc.TransferItem("shield", "ally"))
	s.True(s.svc.Ledger().Bears(s.ally, d))
}

func (s *ServiceTestSuite) TestPlantOnShield_RevertKeepsShieldState() {
	guard := s.creature("guard", "Guard", combat.FactionParty, 1, 0)
	shield := &combat.Item{ID: "shield", Name: "Steel Shield", Kind: combat.ItemShield, Hands: 1}
	guard.GiveItem(shield)

	bare := runes.MustNew(runes.Definition{Key: "bare", Name: "Bare", Level: 1})
	d, err := s.svc.PlantOnShield(s.ctx, s.smith, guard, bare)
	s.NoError(err)
	s.Nil(d)
	s.False(shield.Raised, "the raise is undone with the plant")

	shield.Raised = true
	d, err = s.svc.PlantOnShield(s.ctx, s.smith, guard, bare)
	s.NoError(err)
	s.Nil(d)
	s.True(shield.Raised, "an already raised shield stays up")
}

func (s *ServiceTestSuite) TestPlantOnShield_Errors() {
	_, err := s.svc.PlantOnShield(s.ctx, s.smith, s.ally, s.atryl)
	s.True(dnderr.IsInvalidArgument(err), "the ally has no shield")

	_, err = s.svc.PlantOnShield(s.ctx, nil, s.ally, s.atryl)
	s.True(dnderr.IsInvalidArgument(err))

	s.ally.GiveItem(&combat.Item{ID: "shield", Name: "Shield", Kind: combat.ItemShield, Hands: 1})
	_, err = s.svc.PlantOnShield(s.ctx, s.smith, s.ally, s.atryl)
	s.True(dnderr.IsValidation(err), "the ally is out of reach")
}
