package runesmith

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	"github.com/KirkDiggler/runesmith/internal/effects"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
)

// ActivityResult describes how an Invoke activity ended
type ActivityResult struct {
	Result *combat.Result
	// Invoked lists the drawn runes whose invocation ran, in order
	Invoked []*runes.DrawnRune
}

type traceChoice struct {
	action *combat.Action
	cost   int
	target *combat.Creature
}

func (s *service) PickTrace(ctx context.Context, actor *combat.Creature, rs []*runes.Rune, opts TraceOptions) (*combat.Result, error) {
	if actor == nil {
		return nil, dnderr.InvalidArgument("actor is required")
	}

	var choices []traceChoice
	var options []combat.Option
	for _, r := range rs {
		action := s.Trace(actor, r, opts)
		for _, cost := range action.Costs() {
			for _, c := range s.enc.Creatures() {
				if !action.LegalTarget(s.enc, actor, c, cost).Legal {
					continue
				}
				label := fmt.Sprintf("%s on %s", action.Name(), c.Name)
				if action.IsVariable() {
					label = fmt.Sprintf("%s (%s)", label, actionsLabel(cost))
				}
				options = append(options, combat.Option{
					Kind:     combat.OptionCreature,
					Label:    label,
					Creature: c,
					Key:      strconv.Itoa(len(choices)),
				})
				choices = append(choices, traceChoice{action: action, cost: cost, target: c})
			}
		}
	}
	if len(choices) == 0 {
		log.Printf("[RUNES] %s has nothing to trace", actor.Name)
		return nil, nil
	}

	picked, err := s.picker.Pick(ctx, &combat.Request{
		Prompt:  "Choose a rune to trace and a target",
		Actor:   actor,
		Options: append(options, combat.CancelOption()),
	})
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to pick a rune to trace")
	}
	choice, ok := lookupChoice(picked, choices)
	if !ok {
		return nil, nil
	}

	return choice.action.Execute(ctx, s.enc, actor, combat.ExecuteInput{
		Cost:    choice.cost,
		Targets: []*combat.Creature{choice.target},
	})
}

func lookupChoice(picked *combat.Option, choices []traceChoice) (traceChoice, bool) {
	if picked == nil || picked.Kind != combat.OptionCreature {
		return traceChoice{}, false
	}
	i, err := strconv.Atoi(picked.Key)
	if err != nil || i < 0 || i >= len(choices) {
		return traceChoice{}, false
	}
	return choices[i], true
}

func actionsLabel(cost int) string {
	if cost == 1 {
		return "1 action"
	}
	return fmt.Sprintf("%d actions", cost)
}

// InvokeActivity offers every drawn rune the actor can invoke, one at a time,
// until they pass or nothing is left. Each rune affects a creature at most
// once per activity, and all immunity is cleared when the activity ends.
func (s *service) InvokeActivity(ctx context.Context, actor *combat.Creature) (*ActivityResult, error) {
	if actor == nil {
		return nil, dnderr.InvalidArgument("actor is required")
	}
	defer s.ClearEncounterImmunity()

	out := &ActivityResult{}
	activity := combat.NewAction(combat.ActionConfig{
		Name:        "Invoke Rune",
		Description: "Invoke any number of runes within range, one after another.",
		Cost:        1,
		Tags:        effects.NewTags(runes.TagRune, runes.TagInvoke, combat.TagMagical, combat.TagConcentrate),
		Target:      combat.Self(),
		Effect: func(ctx context.Context, ac *combat.ActionContext, _ *combat.Creature) error {
			invoked, err := s.invokeLoop(ctx, ac)
			out.Invoked = invoked
			return err
		},
	})

	res, err := activity.Execute(ctx, s.enc, actor, combat.ExecuteInput{
		Cost:    1,
		Targets: []*combat.Creature{actor},
	})
	if err != nil {
		return nil, err
	}
	out.Result = res
	return out, nil
}

func (s *service) invokeLoop(ctx context.Context, activity *combat.ActionContext) ([]*runes.DrawnRune, error) {
	actor := activity.Actor
	attempted := make(map[string]bool)
	var invoked []*runes.DrawnRune

	for {
		actions := make(map[string]*combat.Action)
		var options []combat.Option
		for _, d := range s.ledger.All() {
			if attempted[d.ID] || d.Suppressed {
				continue
			}
			action := s.Invoke(InvokeOptions{
				Activity:      activity,
				Actor:         actor,
				Drawn:         d,
				RequireBearer: true,
			})
			if action == nil {
				continue
			}
			bearer := s.enc.Creature(d.OwnerID)
			if s.IsImmune(bearer, d.Rune) || !action.LegalTarget(s.enc, actor, bearer, 0).Legal {
				continue
			}

			option := combat.Option{
				Kind:     combat.OptionCreature,
				Label:    fmt.Sprintf("%s on %s", d.DisplayName, bearer.Name),
				Creature: bearer,
				Key:      d.ID,
			}
			if tip, ok := action.Tooltip(s.enc, actor, bearer); ok {
				option.Tooltip = tip
			}
			options = append(options, option)
			actions[d.ID] = action
		}
		if len(options) == 0 {
			return invoked, nil
		}

		options = append(options, combat.PassOption("Done invoking"), combat.CancelOption())
		picked, err := s.picker.Pick(ctx, &combat.Request{
			Prompt:  "Choose a rune to invoke",
			Actor:   actor,
			Options: options,
		})
		if err != nil {
			return invoked, dnderr.Wrap(err, "failed to pick a rune to invoke")
		}

		switch {
		case picked == nil || picked.Kind == combat.OptionPass:
			return invoked, nil
		case picked.Kind == combat.OptionCancel:
			// Invocations already resolved can't be taken back
			if len(invoked) == 0 {
				activity.Revert("cancelled")
			}
			return invoked, nil
		}

		d := s.ledger.Get(picked.Key)
		action, ok := actions[picked.Key]
		if d == nil || !ok {
			return invoked, dnderr.InvalidArgumentf("picked unknown rune %q", picked.Key)
		}
		attempted[d.ID] = true

		res, err := action.Execute(ctx, s.enc, actor, combat.ExecuteInput{
			Targets: []*combat.Creature{picked.Creature},
			Parent:  activity,
		})
		if err != nil {
			return invoked, err
		}
		if !res.Reverted {
			invoked = append(invoked, d)
		}
	}
}
