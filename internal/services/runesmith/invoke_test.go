package runesmith_test

import (
	"context"

	"github.com/KirkDiggler/runesmith/internal/config"
	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	"github.com/KirkDiggler/runesmith/internal/effects"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
	"github.com/KirkDiggler/runesmith/internal/events"
	"github.com/KirkDiggler/runesmith/internal/services/runesmith"
)

func (s *ServiceTestSuite) invoke(d *runes.DrawnRune, bearer *combat.Creature) *combat.Result {
	res, err := s.svc.Invoke(runesmith.InvokeOptions{Actor: s.smith, Drawn: d}).
		Execute(s.ctx, s.enc, s.smith, combat.ExecuteInput{Targets: []*combat.Creature{bearer}})
	s.Require().NoError(err)
	return res
}

func (s *ServiceTestSuite) TestInvoke_NilWithoutInvocation() {
	quiet := runes.MustNew(runes.Definition{Key: "quiet", Name: "Quiet", Level: 1, NewInstance: creatureInstance})
	d := s.trace(quiet, s.goblin)

	s.Nil(s.svc.Invoke(runesmith.InvokeOptions{Actor: s.smith, Drawn: d}))
	s.Nil(s.svc.Invoke(runesmith.InvokeOptions{Actor: s.smith}))
}

func (s *ServiceTestSuite) TestInvoke_Action() {
	d := s.trace(s.atryl, s.goblin)
	action := s.svc.Invoke(runesmith.InvokeOptions{Actor: s.smith, Drawn: d})

	s.Equal("Invoke Atryl", action.Name())
	s.Equal(1, action.Cost())
	s.True(action.Tags().HasAll("atryl", runes.TagRune, runes.TagInvoke, combat.TagNoConcealment, combat.TagSpellLike))
	s.True(action.LegalTarget(s.enc, s.smith, s.goblin, 1).Legal)
	s.Equal(combat.ReasonOutOfRange, action.LegalTarget(s.enc, s.smith, s.far, 1).Reason)

	inside := s.svc.Invoke(runesmith.InvokeOptions{Actor: s.smith, Drawn: d, Activity: &combat.ActionContext{}})
	s.Equal(0, inside.Cost())
}

func (s *ServiceTestSuite) TestInvoke_RangeFromConfiguredFeet() {
	d := s.trace(s.atryl, s.goblin)

	cfg := config.Default()
	cfg.Runes.FeetPerStep = 10
	svc := runesmith.NewService(&runesmith.ServiceConfig{
		Encounter: s.enc,
		Roller:    s.roller,
		Picker:    s.picker,
		Ledger:    s.svc.Ledger(),
		Config:    cfg,
	})

	action := svc.Invoke(runesmith.InvokeOptions{Actor: s.smith, Drawn: d})
	s.Equal(combat.ReasonOutOfRange, action.LegalTarget(s.enc, s.smith, s.goblin, 1).Reason, "30 feet is 3 squares")
	s.True(action.LegalTarget(s.enc, s.smith, s.ally, 1).Legal)
}

func (s *ServiceTestSuite) TestInvoke_DamagesRemovesAndGrantsImmunity() {
	d := s.trace(s.atryl, s.goblin)

	var invokedEvents int
	s.bus.Subscribe(events.OnRuneInvoked, events.ListenerFunc("count", events.PriorityLogging, func(events.Event) error {
		invokedEvents++
		return nil
	}))

	s.roller.SetRolls([]int{5})
	res := s.invoke(d, s.goblin)

	s.False(res.Reverted)
	s.Equal(1, s.invocations)
	s.Equal(14, s.goblin.HP)
	s.False(s.svc.Ledger().Has(d.ID))
	s.Empty(s.svc.InstancesOn("goblin"))
	s.True(s.svc.IsImmune(s.goblin, s.atryl))
	s.Equal(1, invokedEvents)
	s.Zero(s.roller.Remaining())
}

func (s *ServiceTestSuite) TestInvoke_SuccessfulSaveStillEndsRune() {
	d := s.trace(s.atryl, s.goblin)

	s.roller.SetRolls([]int{19})
	s.invoke(d, s.goblin)

	s.Equal(20, s.goblin.HP)
	s.False(s.svc.Ledger().Has(d.ID))
}

func (s *ServiceTestSuite) TestInvoke_RequireBearer() {
	onGoblin := s.trace(s.atryl, s.goblin)
	onAlly := s.trace(s.atryl, s.ally)

	action := s.svc.Invoke(runesmith.InvokeOptions{Actor: s.smith, Drawn: onGoblin, RequireBearer: true})
	s.True(action.LegalTarget(s.enc, s.smith, s.goblin, 1).Legal)

	u := action.LegalTarget(s.enc, s.smith, s.ally, 1)
	s.False(u.Legal, "the ally bears an Atryl, but not this one")
	s.Equal("Atryl not applied", u.Reason)

	s.svc.Remove(onGoblin)
	s.Equal("Atryl not applied", action.LegalTarget(s.enc, s.smith, s.goblin, 1).Reason)

	other := s.svc.Invoke(runesmith.InvokeOptions{Actor: s.smith, Drawn: onAlly, RequireBearer: true})
	s.True(other.LegalTarget(s.enc, s.smith, s.ally, 1).Legal)
}

func (s *ServiceTestSuite) TestInvoke_Tooltip() {
	s.goblin.Saves[combat.Fortitude] = 4
	d := s.trace(s.atryl, s.goblin)

	tip, ok := s.svc.Invoke(runesmith.InvokeOptions{Actor: s.smith, Drawn: d}).Tooltip(s.enc, s.smith, s.goblin)
	s.True(ok)
	s.Equal("fortitude save DC 17 (Goblin +4, succeeds on 13 or higher)", tip)

	calm := runes.MustNew(runes.Definition{
		Key:         "calm",
		Name:        "Calm",
		Level:       1,
		InvokeTags:  []effects.Tag{runes.InvokeNoRoll, runes.InvokeFortitude},
		NewInstance: creatureInstance,
		Invoke: func(context.Context, runes.InvokeInput) error {
			return nil
		},
	})
	quiet := s.trace(calm, s.goblin)
	s.False(s.svc.Invoke(runesmith.InvokeOptions{Actor: s.smith, Drawn: quiet}).HasTooltip())
}

func (s *ServiceTestSuite) TestInvoke_ClearImmunity() {
	s.svc.ApplyImmunity(s.goblin, s.atryl)
	s.svc.ApplyImmunity(s.ally, s.atryl)
	d := s.trace(s.atryl, s.goblin)

	s.roller.SetRolls([]int{5})
	_, err := s.svc.Invoke(runesmith.InvokeOptions{Actor: s.smith, Drawn: d, ClearImmunity: true}).
		Execute(s.ctx, s.enc, s.smith, combat.ExecuteInput{Targets: []*combat.Creature{s.goblin}})
	s.Require().NoError(err)

	s.False(s.svc.IsImmune(s.ally, s.atryl), "cleared before the invocation")
	s.True(s.svc.IsImmune(s.goblin, s.atryl), "granted again by the invocation")
}

func (s *ServiceTestSuite) TestInvokeDrawn_RequiresInput() {
	s.True(dnderr.IsInvalidArgument(s.svc.InvokeDrawn(s.ctx, nil)))
	s.True(dnderr.IsInvalidArgument(s.svc.InvokeDrawn(s.ctx, &runesmith.InvokeInput{Caster: s.smith})))
}

func (s *ServiceTestSuite) TestInvokeDrawn_SuppressedIsNoop() {
	d := s.trace(s.atryl, s.goblin)
	d.Suppressed = true

	res := s.invoke(d, s.goblin)
	s.False(res.Reverted)
	s.Zero(s.invocations)
	s.True(s.svc.Ledger().Has(d.ID))
}

func (s *ServiceTestSuite) TestInvokeDrawn_BeforeHookBlocks() {
	d := s.trace(s.atryl, s.goblin)

	var afterCalls int
	guard := runes.MustNew(runes.Definition{
		Key:   "guard",
		Name:  "Guard",
		Level: 1,
		NewInstance: func(ctx context.Context, in runes.InstanceInput) *runes.DrawnRune {
			g := creatureInstance(ctx, in)
			g.BeforeAnyInvoke = func(_ context.Context, _ *runes.DrawnRune, hc runes.HookContext) {
				hc.Action.Revert("guarded")
			}
			g.AfterAnyInvoke = func(context.Context, *runes.DrawnRune, runes.HookContext) {
				afterCalls++
			}
			return g
		},
	})
	s.trace(guard, s.ally)

	res := s.invoke(d, s.goblin)
	s.True(res.Reverted)
	s.Equal("guarded", res.RevertReason)
	s.Zero(s.invocations)
	s.Zero(afterCalls)
	s.True(s.svc.Ledger().Bears(s.goblin, d), "a blocked rune stays put")
	s.False(s.svc.IsImmune(s.goblin, s.atryl))
	s.Equal(20, s.goblin.HP)
}

func (s *ServiceTestSuite) TestInvokeDrawn_HooksSeeEveryInvocation() {
	d := s.trace(s.atryl, s.goblin)

	var seen []string
	watcher := runes.MustNew(runes.Definition{
		Key:   "watcher",
		Name:  "Watcher",
		Level: 1,
		NewInstance: func(ctx context.Context, in runes.InstanceInput) *runes.DrawnRune {
			w := creatureInstance(ctx, in)
			w.BeforeAnyInvoke = func(_ context.Context, self *runes.DrawnRune, hc runes.HookContext) {
				seen = append(seen, "before "+hc.Invoked.ID+" by "+self.ID)
			}
			w.AfterAnyInvoke = func(_ context.Context, self *runes.DrawnRune, hc runes.HookContext) {
				seen = append(seen, "after "+hc.Invoked.ID+" on "+hc.Bearer.ID)
			}
			return w
		},
	})
	w := s.trace(watcher, s.ally)

	s.roller.SetRolls([]int{5})
	s.invoke(d, s.goblin)

	s.Equal([]string{
		"before " + d.ID + " by " + w.ID,
		"after " + d.ID + " on goblin",
	}, seen)
	s.Equal(1, s.invocations)
}

func (s *ServiceTestSuite) TestInvokeDrawn_AfterHookCannotRevert() {
	d := s.trace(s.atryl, s.goblin)

	veto := runes.MustNew(runes.Definition{
		Key:   "veto",
		Name:  "Veto",
		Level: 1,
		NewInstance: func(ctx context.Context, in runes.InstanceInput) *runes.DrawnRune {
			v := creatureInstance(ctx, in)
			v.AfterAnyInvoke = func(_ context.Context, _ *runes.DrawnRune, hc runes.HookContext) {
				hc.Action.Revert("too late")
			}
			return v
		},
	})
	s.trace(veto, s.ally)

	s.roller.SetRolls([]int{5})
	res := s.invoke(d, s.goblin)

	s.False(res.Reverted, "the invocation already resolved")
	s.Empty(res.RevertReason)
	s.Equal(1, s.invocations)
	s.Equal(14, s.goblin.HP)
	s.False(s.svc.Ledger().Has(d.ID))
	s.True(s.svc.IsImmune(s.goblin, s.atryl))
}

func (s *ServiceTestSuite) TestInvokeDrawn_InvocationError() {
	broken := runes.MustNew(runes.Definition{
		Key:         "broken",
		Name:        "Broken",
		Level:       1,
		NewInstance: creatureInstance,
		Invoke: func(context.Context, runes.InvokeInput) error {
			return dnderr.New(dnderr.CodeInternal, "cracked")
		},
	})
	d := s.trace(broken, s.goblin)

	_, err := s.svc.Invoke(runesmith.InvokeOptions{Actor: s.smith, Drawn: d}).
		Execute(s.ctx, s.enc, s.smith, combat.ExecuteInput{Targets: []*combat.Creature{s.goblin}})
	s.Error(err)
	s.Contains(err.Error(), "cracked")
}

func (s *ServiceTestSuite) TestImmunity() {
	s.False(s.svc.IsImmune(s.goblin, s.atryl))

	marker := s.svc.ApplyImmunity(s.goblin, s.atryl)
	s.Require().NotNil(marker)
	s.True(marker.Hidden)
	s.True(s.svc.IsImmune(s.goblin, s.atryl))
	s.Zero(s.svc.Ledger().Len(), "immunity is not a drawn rune")

	other := runes.MustNew(runes.Definition{Key: "other", Name: "Other", Level: 1})
	s.False(s.svc.IsImmune(s.goblin, other))

	s.Equal(1, s.svc.ClearAllImmunity(s.goblin))
	s.False(s.svc.IsImmune(s.goblin, s.atryl))

	s.svc.ApplyImmunity(s.goblin, s.atryl)
	s.svc.ApplyImmunity(s.ally, other)
	s.Equal(2, s.svc.ClearEncounterImmunity())

	s.Nil(s.svc.ApplyImmunity(nil, s.atryl))
	s.False(s.svc.IsImmune(nil, s.atryl))
}

func (s *ServiceTestSuite) TestImmunity_ExpiresAtEndOfTurn() {
	s.Require().NoError(s.enc.Begin())
	s.svc.ApplyImmunity(s.goblin, s.atryl)

	s.Require().NoError(s.enc.NextTurn())
	s.False(s.svc.IsImmune(s.goblin, s.atryl))
}
