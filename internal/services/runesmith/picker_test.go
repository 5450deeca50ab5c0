package runesmith_test

import (
	"context"

	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	"github.com/KirkDiggler/runesmith/internal/services/runesmith"
	"go.uber.org/mock/gomock"
)

// pickCreature answers the next pick with the option naming creatureID
func pickCreature(creatureID string) func(context.Context, *combat.Request) (*combat.Option, error) {
	return func(_ context.Context, req *combat.Request) (*combat.Option, error) {
		for i := range req.Options {
			if o := req.Options[i]; o.Kind == combat.OptionCreature && o.Creature.ID == creatureID {
				return &req.Options[i], nil
			}
		}
		return nil, nil
	}
}

func pickKind(kind combat.OptionKind) func(context.Context, *combat.Request) (*combat.Option, error) {
	return func(_ context.Context, req *combat.Request) (*combat.Option, error) {
		for i := range req.Options {
			if req.Options[i].Kind == kind {
				return &req.Options[i], nil
			}
		}
		return nil, nil
	}
}

func labels(req *combat.Request) []string {
	out := make([]string, 0, len(req.Options))
	for _, o := range req.Options {
		out = append(out, o.Label)
	}
	return out
}

func (s *ServiceTestSuite) TestPickTrace() {
	var offered []string
	s.picker.EXPECT().Pick(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *combat.Request) (*combat.Option, error) {
			offered = labels(req)
			return pickCreature("goblin")(ctx, req)
		})

	res, err := s.svc.PickTrace(s.ctx, s.smith, []*runes.Rune{s.atryl}, runesmith.TraceOptions{Cost: runesmith.Cost2})
	s.Require().NoError(err)
	s.Require().NotNil(res)
	s.False(res.Reverted)

	s.Equal([]string{
		"Trace Atryl on Smith",
		"Trace Atryl on Ally",
		"Trace Atryl on Goblin",
		"Cancel",
	}, offered, "the far goblin is out of range")
	s.Len(s.svc.InstancesOn("goblin"), 1)
	s.Equal(1, s.svc.Ledger().Len())
}

func (s *ServiceTestSuite) TestPickTrace_VariableCost() {
	s.picker.EXPECT().Pick(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *combat.Request) (*combat.Option, error) {
			s.Equal([]string{
				"Trace Atryl on Smith (1 action)",
				"Trace Atryl on Smith (2 actions)",
				"Trace Atryl on Ally (2 actions)",
				"Trace Atryl on Goblin (2 actions)",
				"Cancel",
			}, labels(req))
			return &req.Options[2], nil
		})

	res, err := s.svc.PickTrace(s.ctx, s.smith, []*runes.Rune{s.atryl}, runesmith.TraceOptions{Cost: runesmith.CostVariable})
	s.Require().NoError(err)
	s.Equal(2, res.Cost)
	s.Len(s.svc.InstancesOn("ally"), 1)
}

func (s *ServiceTestSuite) TestPickTrace_Cancel() {
	s.picker.EXPECT().Pick(gomock.Any(), gomock.Any()).DoAndReturn(pickKind(combat.OptionCancel))

	res, err := s.svc.PickTrace(s.ctx, s.smith, []*runes.Rune{s.atryl}, runesmith.TraceOptions{Cost: runesmith.Cost2})
	s.NoError(err)
	s.Nil(res)
	s.Zero(s.svc.Ledger().Len())
}

func (s *ServiceTestSuite) TestPickTrace_NothingLegal() {
	s.smith.GiveItem(&combat.Item{ID: "maul", Name: "Maul", Kind: combat.ItemWeapon, Hands: 2})

	// The picker is never asked
	res, err := s.svc.PickTrace(s.ctx, s.smith, []*runes.Rune{s.atryl}, runesmith.TraceOptions{Cost: runesmith.Cost2})
	s.NoError(err)
	s.Nil(res)
}

func (s *ServiceTestSuite) TestInvokeActivity() {
	onAlly := s.trace(s.atryl, s.ally)
	onGoblin := s.trace(s.atryl, s.goblin)
	s.pickFirst()
	s.roller.SetRolls([]int{5, 5})

	out, err := s.svc.InvokeActivity(s.ctx, s.smith)
	s.Require().NoError(err)
	s.False(out.Result.Reverted)
	s.Equal(1, out.Result.Cost)

	s.Equal([]*runes.DrawnRune{onAlly, onGoblin}, out.Invoked)
	s.Equal(2, s.invocations)
	s.Equal(14, s.ally.HP)
	s.Equal(14, s.goblin.HP)
	s.Zero(s.svc.Ledger().Len())

	s.False(s.svc.IsImmune(s.ally, s.atryl), "immunity ends with the activity")
	s.False(s.svc.IsImmune(s.goblin, s.atryl))
}

func (s *ServiceTestSuite) TestInvokeActivity_OncePerCreature() {
	s.trace(s.atryl, s.goblin)
	s.trace(s.atryl, s.goblin)
	s.pickFirst()
	s.roller.SetRolls([]int{5})

	out, err := s.svc.InvokeActivity(s.ctx, s.smith)
	s.Require().NoError(err)
	s.Len(out.Invoked, 1)
	s.Equal(1, s.invocations)
	s.Equal(14, s.goblin.HP)
	s.Len(s.svc.InstancesOn("goblin"), 1, "the second rune waits for another activity")
}

func (s *ServiceTestSuite) TestInvokeActivity_OffersTooltips() {
	s.trace(s.atryl, s.goblin)

	gomock.InOrder(
		s.picker.EXPECT().Pick(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *combat.Request) (*combat.Option, error) {
				s.Require().Len(req.Options, 3)
				s.Equal("Atryl on Goblin", req.Options[0].Label)
				s.Contains(req.Options[0].Tooltip, "fortitude save DC 17")
				s.Equal(combat.OptionPass, req.Options[1].Kind)
				s.Equal("Done invoking", req.Options[1].Label)
				s.Equal(combat.OptionCancel, req.Options[2].Kind)
				return &req.Options[1], nil
			}),
	)

	out, err := s.svc.InvokeActivity(s.ctx, s.smith)
	s.Require().NoError(err)
	s.Empty(out.Invoked)
	s.False(out.Result.Reverted, "passing keeps the activity")
	s.Equal(1, s.svc.Ledger().Len())
}

func (s *ServiceTestSuite) TestInvokeActivity_SkipsOutOfRange() {
	s.trace(s.atryl, s.goblin)
	s.goblin.Position = combat.Position{X: 9, Y: 0}

	out, err := s.svc.InvokeActivity(s.ctx, s.smith)
	s.Require().NoError(err)
	s.Empty(out.Invoked)
	s.Equal(1, s.svc.Ledger().Len())
}

func (s *ServiceTestSuite) TestInvokeActivity_CancelFirst() {
	s.trace(s.atryl, s.goblin)
	s.picker.EXPECT().Pick(gomock.Any(), gomock.Any()).DoAndReturn(pickKind(combat.OptionCancel))

	out, err := s.svc.InvokeActivity(s.ctx, s.smith)
	s.Require().NoError(err)
	s.True(out.Result.Reverted)
	s.Empty(out.Invoked)
	s.Zero(s.invocations)
}

func (s *ServiceTestSuite) TestInvokeActivity_CancelAfterInvoking() {
	s.trace(s.atryl, s.ally)
	s.trace(s.atryl, s.goblin)
	s.roller.SetRolls([]int{5})

	gomock.InOrder(
		s.picker.EXPECT().Pick(gomock.Any(), gomock.Any()).DoAndReturn(pickCreature("ally")),
		s.picker.EXPECT().Pick(gomock.Any(), gomock.Any()).DoAndReturn(pickKind(combat.OptionCancel)),
	)

	out, err := s.svc.InvokeActivity(s.ctx, s.smith)
	s.Require().NoError(err)
	s.False(out.Result.Reverted, "a resolved invocation cannot be taken back")
	s.Len(out.Invoked, 1)
	s.Equal(14, s.ally.HP)
	s.Len(s.svc.InstancesOn("goblin"), 1)
}
