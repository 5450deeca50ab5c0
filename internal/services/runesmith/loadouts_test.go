package runesmith_test

import (
	"context"

	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
	"github.com/KirkDiggler/runesmith/internal/repositories/etchings"
	mocketchings "github.com/KirkDiggler/runesmith/internal/repositories/etchings/mock"
	"github.com/KirkDiggler/runesmith/internal/services/runesmith"
	"go.uber.org/mock/gomock"
)

// withRegistry returns a service sharing the suite's ledger that can resolve stored runes
func (s *ServiceTestSuite) withRegistry(rs ...*runes.Rune) runesmith.Service {
	return runesmith.NewService(&runesmith.ServiceConfig{
		Encounter: s.enc,
		Roller:    s.roller,
		Picker:    s.picker,
		Ledger:    s.svc.Ledger(),
		Registry:  runes.NewRegistry(rs...),
	})
}

func (s *ServiceTestSuite) TestEtchLoadouts() {
	repo := etchings.NewInMemoryRepository()
	s.Require().NoError(repo.Save(s.ctx, &etchings.Loadout{
		CasterID: "smith",
		Etchings: []etchings.Etching{
			{RuneKey: "atryl", TargetID: "ally"},
			{RuneKey: "atryl", TargetID: "smith"},
			{RuneKey: "unknown", TargetID: "ally"},
			{RuneKey: "atryl", TargetID: "missing"},
			{RuneKey: "atryl", TargetID: "goblin"},
		},
	}))
	svc := s.withRegistry(s.atryl)

	count, err := svc.EtchLoadouts(s.ctx, repo, []*combat.Creature{s.smith, s.ally})
	s.Require().NoError(err)
	s.Equal(2, count)

	s.Len(svc.InstancesOn("ally"), 1)
	s.Len(svc.InstancesOn("smith"), 1)
	s.Empty(svc.InstancesOn("goblin"), "enemies cannot be etched")
	for _, d := range svc.Ledger().All() {
		s.True(d.IsDurable())
	}
}

func (s *ServiceTestSuite) TestEtchLoadouts_PreferredItem() {
	wraps := &combat.Item{ID: "wraps", Name: "Handwraps", Kind: combat.ItemHandwraps, Worn: true}
	s.ally.GiveItem(wraps)

	fists := runes.MustNew(runes.Definition{
		Key:   "fists",
		Name:  "Fists",
		Level: 1,
		NewInstance: func(_ context.Context, in runes.InstanceInput) *runes.DrawnRune {
			if in.Item == nil {
				return nil
			}
			d := runes.NewDrawn(in.ID, in.Rune, in.Caster, in.Target)
			d.BindTo(in.Item)
			return d
		},
	})

	repo := etchings.NewInMemoryRepository()
	s.Require().NoError(repo.Save(s.ctx, &etchings.Loadout{
		CasterID: "smith",
		Etchings: []etchings.Etching{{RuneKey: "fists", TargetID: "ally", ItemID: "wraps"}},
	}))

	svc := s.withRegistry(fists)
	count, err := svc.EtchLoadouts(s.ctx, repo, []*combat.Creature{s.smith})
	s.Require().NoError(err)
	s.Equal(1, count)

	drawn := svc.InstancesOn("ally")
	s.Require().Len(drawn, 1)
	s.Equal(runes.OnItem("wraps"), drawn[0].Attachment)
	s.Equal("Fists (Handwraps)", drawn[0].DisplayName)
}

func (s *ServiceTestSuite) TestEtchLoadouts_Errors() {
	_, err := s.withRegistry().EtchLoadouts(s.ctx, nil, []*combat.Creature{s.smith})
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.svc.EtchLoadouts(s.ctx, etchings.NewInMemoryRepository(), []*combat.Creature{s.smith})
	s.True(dnderr.IsMisconfigured(err), "no registry")

	repo := mocketchings.NewMockRepository(s.ctrl)
	repo.EXPECT().GetMany(gomock.Any(), []string{"smith"}).Return(nil, dnderr.New(dnderr.CodeUnavailable, "redis is down"))

	count, err := s.withRegistry(s.atryl).EtchLoadouts(s.ctx, repo, []*combat.Creature{s.smith})
	s.Error(err)
	s.Zero(count)
	s.Contains(err.Error(), "redis is down")
}

func (s *ServiceTestSuite) TestNewService_RequiresDependencies() {
	s.Panics(func() { runesmith.NewService(&runesmith.ServiceConfig{}) })
	s.Panics(func() {
		runesmith.NewService(&runesmith.ServiceConfig{Encounter: s.enc, Roller: s.roller})
	})
	s.Panics(func() {
		runesmith.NewService(&runesmith.ServiceConfig{Encounter: s.enc, Picker: s.picker})
	})
}
