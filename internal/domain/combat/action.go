package combat

import (
	"context"
	"log"
	"slices"

	"github.com/KirkDiggler/runesmith/internal/effects"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
)

// Common action tags
const (
	TagConcentrate   effects.Tag = "concentrate"
	TagManipulate    effects.Tag = "manipulate"
	TagMagical       effects.Tag = "magical"
	TagSpellLike     effects.Tag = "spell-like"
	TagNoConcealment effects.Tag = "unaffected-by-concealment"
)

// ActionConfig is everything an action needs, assembled before the action is built
type ActionConfig struct {
	Name        string
	Description string

	// Cost is the fixed action cost. Costs, when set, lets the performer
	// choose among several and Cost is ignored.
	Cost  int
	Costs []int

	Tags   effects.Tags
	Target TargetSpec

	// AfterTargetsChosen runs once targets are confirmed, before any effect
	AfterTargetsChosen func(ctx context.Context, ac *ActionContext) error
	// Effect runs once per target in target order
	Effect func(ctx context.Context, ac *ActionContext, target *Creature) error
	// Cleanup runs after a successful execution
	Cleanup func(ctx context.Context, ac *ActionContext)
	// Tooltip previews the outcome against a candidate
	Tooltip func(enc *Encounter, actor, target *Creature) string
}

// Action is an immutable costed, tagged and targeted unit of execution
type Action struct {
	cfg ActionConfig
}

// NewAction builds an action from its configuration
func NewAction(cfg ActionConfig) *Action {
	cfg.Tags = cfg.Tags.Clone()
	cfg.Costs = slices.Clone(cfg.Costs)
	return &Action{cfg: cfg}
}

func (a *Action) Name() string        { return a.cfg.Name }
func (a *Action) Description() string { return a.cfg.Description }
func (a *Action) Target() TargetSpec  { return a.cfg.Target }

// Cost returns the fixed cost, or the cheapest choice for variable actions
func (a *Action) Cost() int {
	if len(a.cfg.Costs) > 0 {
		return slices.Min(a.cfg.Costs)
	}
	return a.cfg.Cost
}

// Costs returns the costs the performer may choose from
func (a *Action) Costs() []int {
	if len(a.cfg.Costs) > 0 {
		return slices.Clone(a.cfg.Costs)
	}
	return []int{a.cfg.Cost}
}

// IsVariable reports whether the performer chooses the cost
func (a *Action) IsVariable() bool {
	return len(a.cfg.Costs) > 0
}

// Tags returns a copy of the action's tags
func (a *Action) Tags() effects.Tags {
	return a.cfg.Tags.Clone()
}

// HasTag reports whether the action carries tag
func (a *Action) HasTag(tag effects.Tag) bool {
	return a.cfg.Tags.Has(tag)
}

// Tooltip returns the targeting preview for a candidate, if the action has one
func (a *Action) Tooltip(enc *Encounter, actor, target *Creature) (string, bool) {
	if a.cfg.Tooltip == nil {
		return "", false
	}
	return a.cfg.Tooltip(enc, actor, target), true
}

// HasTooltip reports whether the action previews outcomes
func (a *Action) HasTooltip() bool {
	return a.cfg.Tooltip != nil
}

// TargetFor resolves the target spec for a chosen cost
func (a *Action) TargetFor(cost int) (TargetSpec, error) {
	if a.cfg.Target == nil {
		return nil, dnderr.Misconfiguredf("action %s has no target", a.cfg.Name)
	}
	dependent, ok := a.cfg.Target.(*CostDependentTarget)
	if !ok {
		return a.cfg.Target, nil
	}
	spec, ok := dependent.For(cost)
	if !ok {
		return nil, dnderr.Misconfiguredf("action %s has no target option for cost %d", a.cfg.Name, cost)
	}
	return spec, nil
}

// LegalTarget checks a candidate at a cost
func (a *Action) LegalTarget(enc *Encounter, actor, candidate *Creature, cost int) Usability {
	spec, err := a.TargetFor(cost)
	if err != nil {
		return NotUsable(ReasonNoCostOption)
	}
	return spec.Legal(enc, actor, candidate)
}

// ExecuteInput is the performer's choices for one execution
type ExecuteInput struct {
	Cost    int
	Targets []*Creature
	// Parent is the activity this action runs inside, if any
	Parent *ActionContext
}

// Result describes how an execution ended
type Result struct {
	Reverted     bool
	RevertReason string
	Cost         int
	Targets      []*Creature
}

// ActionContext is the state of one execution of an action
type ActionContext struct {
	Action    *Action
	Encounter *Encounter
	Actor     *Creature
	Cost      int
	Targets   []*Creature
	Parent    *ActionContext

	reverted     bool
	revertReason string
	undo         []func()
}

// Revert marks the execution as undone. Remaining target effects are skipped.
func (ac *ActionContext) Revert(reason string) {
	if ac.reverted {
		return
	}
	ac.reverted = true
	ac.revertReason = reason
}

// Reverted reports whether Revert was called
func (ac *ActionContext) Reverted() bool {
	return ac.reverted
}

// RevertReason returns the reason given to Revert
func (ac *ActionContext) RevertReason() string {
	return ac.revertReason
}

// OnRevert registers a function that undoes state this execution committed
func (ac *ActionContext) OnRevert(fn func()) {
	if fn != nil {
		ac.undo = append(ac.undo, fn)
	}
}

func (ac *ActionContext) rollback() {
	for i := len(ac.undo) - 1; i >= 0; i-- {
		ac.undo[i]()
	}
	ac.undo = nil
}

// Execute runs the action against the chosen targets
func (a *Action) Execute(ctx context.Context, enc *Encounter, actor *Creature, input ExecuteInput) (*Result, error) {
	if enc == nil || actor == nil {
		return nil, dnderr.InvalidArgument("encounter and actor are required")
	}

	cost := a.cfg.Cost
	if a.IsVariable() {
		if !slices.Contains(a.cfg.Costs, input.Cost) {
			return nil, dnderr.InvalidArgumentf("action %s cannot be used for %d actions", a.cfg.Name, input.Cost)
		}
		cost = input.Cost
	}

	spec, err := a.TargetFor(cost)
	if err != nil {
		return nil, err
	}
	for _, target := range input.Targets {
		if u := spec.Legal(enc, actor, target); !u.Legal {
			return nil, dnderr.Validationf("%s cannot target %s: %s", a.cfg.Name, nameOf(target), u.Reason).
				WithMeta("reason", u.Reason)
		}
	}

	ac := &ActionContext{
		Action:    a,
		Encounter: enc,
		Actor:     actor,
		Cost:      cost,
		Targets:   slices.Clone(input.Targets),
		Parent:    input.Parent,
	}

	if err := a.run(ctx, ac); err != nil {
		ac.rollback()
		return nil, err
	}

	if ac.reverted {
		log.Printf("[ACTION] %s by %s reverted: %s", a.cfg.Name, actor.Name, ac.revertReason)
		ac.rollback()
		return &Result{Reverted: true, RevertReason: ac.revertReason, Cost: cost, Targets: ac.Targets}, nil
	}

	if a.cfg.Cleanup != nil {
		a.cfg.Cleanup(ctx, ac)
	}
	return &Result{Cost: cost, Targets: ac.Targets}, nil
}

func (a *Action) run(ctx context.Context, ac *ActionContext) error {
	if a.cfg.AfterTargetsChosen != nil {
		if err := a.cfg.AfterTargetsChosen(ctx, ac); err != nil {
			return err
		}
	}
	if a.cfg.Effect == nil {
		return nil
	}
	for _, target := range ac.Targets {
		if ac.reverted {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.cfg.Effect(ctx, ac, target); err != nil {
			return dnderr.Wrapf(err, "%s on %s", a.cfg.Name, nameOf(target))
		}
	}
	return nil
}

func nameOf(c *Creature) string {
	if c == nil {
		return "<none>"
	}
	return c.Name
}
