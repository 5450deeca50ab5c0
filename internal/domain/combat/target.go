package combat

import (
	"fmt"
	"sort"
)

// Reasons surfaced to the chooser when geometry rules a candidate out
const (
	ReasonNotSelf      = "must target yourself"
	ReasonOutOfRange   = "out of range"
	ReasonNoLine       = "no line of effect"
	ReasonNotFriendly  = "must target an ally"
	ReasonNoTarget     = "no target"
	ReasonNoCostOption = "no target option for this cost"
)

// TargetSpec decides which creatures an action may target
type TargetSpec interface {
	Legal(enc *Encounter, actor, candidate *Creature) Usability
	Describe() string
}

type targetKind int

const (
	targetSelf targetKind = iota
	targetAdjacentOrSelf
	targetRanged
)

type creatureTarget struct {
	kind       targetKind
	rangeSteps int // < 0 is the whole area
	friendly   bool
	conditions []Condition
}

// Self targets only the actor
func Self() TargetSpec {
	return &creatureTarget{kind: targetSelf}
}

// AdjacentOrSelf targets the actor or a creature within one step
func AdjacentOrSelf() TargetSpec {
	return &creatureTarget{kind: targetAdjacentOrSelf, rangeSteps: 1}
}

// Ranged targets any creature within steps
func Ranged(steps int) TargetSpec {
	return &creatureTarget{kind: targetRanged, rangeSteps: steps}
}

// RangedFriendly targets an ally within steps. A negative range covers the
// whole area but still needs line of effect.
func RangedFriendly(steps int) TargetSpec {
	return &creatureTarget{kind: targetRanged, rangeSteps: steps, friendly: true}
}

// WithCondition returns a copy of spec that also requires every condition
func WithCondition(spec TargetSpec, conds ...Condition) TargetSpec {
	switch s := spec.(type) {
	case *creatureTarget:
		cp := *s
		cp.conditions = append(append([]Condition(nil), s.conditions...), conds...)
		return &cp
	case *CostDependentTarget:
		out := make(map[int]TargetSpec, len(s.specs))
		for cost, inner := range s.specs {
			out[cost] = WithCondition(inner, conds...)
		}
		return &CostDependentTarget{specs: out}
	default:
		return &conditionalTarget{inner: spec, conditions: conds}
	}
}

func (t *creatureTarget) Legal(enc *Encounter, actor, candidate *Creature) Usability {
	if candidate == nil || actor == nil {
		return NotUsable(ReasonNoTarget)
	}
	switch t.kind {
	case targetSelf:
		if candidate.ID != actor.ID {
			return NotUsable(ReasonNotSelf)
		}
	case targetAdjacentOrSelf:
		if candidate.ID != actor.ID && enc.Distance(actor, candidate) > 1 {
			return NotUsable(ReasonOutOfRange)
		}
	case targetRanged:
		if t.friendly && !actor.IsFriendlyTo(candidate) {
			return NotUsable(ReasonNotFriendly)
		}
		if t.rangeSteps >= 0 && enc.Distance(actor, candidate) > t.rangeSteps {
			return NotUsable(ReasonOutOfRange)
		}
		if !enc.HasLineOfEffect(actor, candidate) {
			return NotUsable(ReasonNoLine)
		}
	}
	return Conditions(enc, actor, candidate, t.conditions...)
}

func (t *creatureTarget) Describe() string {
	switch t.kind {
	case targetSelf:
		return "self"
	case targetAdjacentOrSelf:
		return "adjacent creature or self"
	}
	who := "creature"
	if t.friendly {
		who = "ally"
	}
	if t.rangeSteps < 0 {
		return fmt.Sprintf("any %s", who)
	}
	return fmt.Sprintf("%s within %d", who, t.rangeSteps)
}

type conditionalTarget struct {
	inner      TargetSpec
	conditions []Condition
}

func (t *conditionalTarget) Legal(enc *Encounter, actor, candidate *Creature) Usability {
	if u := t.inner.Legal(enc, actor, candidate); !u.Legal {
		return u
	}
	return Conditions(enc, actor, candidate, t.conditions...)
}

func (t *conditionalTarget) Describe() string {
	return t.inner.Describe()
}

// CostDependentTarget picks a target spec by the action cost chosen
type CostDependentTarget struct {
	specs map[int]TargetSpec
}

// CostDependent builds a spec whose legality depends on the chosen cost
func CostDependent(specs map[int]TargetSpec) *CostDependentTarget {
	cp := make(map[int]TargetSpec, len(specs))
	for cost, spec := range specs {
		cp[cost] = spec
	}
	return &CostDependentTarget{specs: cp}
}

// For returns the target spec for a cost
func (t *CostDependentTarget) For(cost int) (TargetSpec, bool) {
	spec, ok := t.specs[cost]
	return spec, ok
}

// Costs returns the costs with a spec, cheapest first
func (t *CostDependentTarget) Costs() []int {
	costs := make([]int, 0, len(t.specs))
	for cost := range t.specs {
		costs = append(costs, cost)
	}
	sort.Ints(costs)
	return costs
}

// Legal is legal if any cost's spec allows the candidate. The first
// rejection is reported otherwise.
func (t *CostDependentTarget) Legal(enc *Encounter, actor, candidate *Creature) Usability {
	var first *Usability
	for _, cost := range t.Costs() {
		u := t.specs[cost].Legal(enc, actor, candidate)
		if u.Legal {
			return u
		}
		if first == nil {
			first = &u
		}
	}
	if first == nil {
		return NotUsable(ReasonNoCostOption)
	}
	return *first
}

// LegalAt checks the candidate against the target spec for one cost
func (t *CostDependentTarget) LegalAt(cost int, enc *Encounter, actor, candidate *Creature) Usability {
	spec, ok := t.For(cost)
	if !ok {
		return NotUsable(ReasonNoCostOption)
	}
	return spec.Legal(enc, actor, candidate)
}

func (t *CostDependentTarget) Describe() string {
	out := ""
	for i, cost := range t.Costs() {
		if i > 0 {
			out += "; "
		}
		out += fmt.Sprintf("%d: %s", cost, t.specs[cost].Describe())
	}
	return out
}
