package runes

import (
	"context"

	"github.com/KirkDiggler/runesmith/internal/dice"
	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/effects"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
)

// HeightenFunc scales a text field to a level. It must be pure.
type HeightenFunc func(r *Rune, level int) string

// UsableFunc decides whether caster may place the rune on target
type UsableFunc func(caster, target *combat.Creature) combat.Usability

// InstanceFunc builds the instance a rune places on a target. Returning nil
// means the rune could not be placed.
type InstanceFunc func(ctx context.Context, in InstanceInput) *DrawnRune

// InvokeFunc runs a rune's invocation. It is responsible for removing the
// instance and applying immunity itself.
type InvokeFunc func(ctx context.Context, in InvokeInput) error

// InstanceInput is what an instance factory receives
type InstanceInput struct {
	Action *combat.ActionContext
	Caster *combat.Creature
	Target *combat.Creature
	Rune   *Rune
	// ID is the id the new instance must use
	ID string
	// Item is the item to draw on when the caller already chose one
	Item *combat.Item
	// Picker answers sub-target prompts such as which item to draw on
	Picker combat.Picker
}

// InvokeInput is what an invocation receives
type InvokeInput struct {
	Action  *combat.ActionContext
	Rune    *Rune
	Caster  *combat.Creature
	Bearer  *combat.Creature
	Drawn   *DrawnRune
	Runtime Runtime
}

// Runtime is the part of the rune service an invocation may call back into
type Runtime interface {
	Encounter() *combat.Encounter
	Roller() dice.Roller
	Picker() combat.Picker
	Remove(d *DrawnRune)
	ApplyImmunity(target *combat.Creature, r *Rune) *effects.Effect
	IsImmune(target *combat.Creature, r *Rune) bool
	InstancesOn(creatureID string) []*DrawnRune
}

// Definition is everything needed to build a Rune. A nil Usable allows any target.
type Definition struct {
	Key   effects.Tag
	Name  string
	Level int

	UsageText   string
	FlavorText  string
	PassiveText string
	InvokeText  string
	LevelText   string

	HeightenPassive HeightenFunc
	HeightenInvoke  HeightenFunc
	HeightenLevel   HeightenFunc

	Tags       []effects.Tag
	UsageTags  []effects.Tag
	InvokeTags []effects.Tag

	Usable      UsableFunc
	NewInstance InstanceFunc
	Invoke      InvokeFunc
}

// Rune is the template of one kind of rune. Its fields must not be changed
// after New returns.
type Rune struct {
	Key   effects.Tag
	Name  string
	Level int

	UsageText   string
	FlavorText  string
	PassiveText string
	InvokeText  string
	LevelText   string

	HeightenPassive HeightenFunc
	HeightenInvoke  HeightenFunc
	HeightenLevel   HeightenFunc

	Tags       effects.Tags
	UsageTags  effects.Tags
	InvokeTags effects.Tags

	Usable      UsableFunc
	NewInstance InstanceFunc
	Invoke      InvokeFunc
}

// New builds a rune from its definition. The rune's key is always one of its tags.
func New(def Definition) (*Rune, error) {
	if def.Key == "" {
		return nil, dnderr.Misconfiguredf("rune %q has no key", def.Name)
	}
	if def.Name == "" {
		return nil, dnderr.Misconfiguredf("rune %s has no name", def.Key)
	}
	if def.Level < 1 {
		return nil, dnderr.Misconfiguredf("rune %s has level %d", def.Key, def.Level)
	}

	r := &Rune{
		Key:             def.Key,
		Name:            def.Name,
		Level:           def.Level,
		UsageText:       def.UsageText,
		FlavorText:      def.FlavorText,
		PassiveText:     def.PassiveText,
		InvokeText:      def.InvokeText,
		LevelText:       def.LevelText,
		HeightenPassive: orBase(def.HeightenPassive, func(r *Rune) string { return r.PassiveText }),
		HeightenInvoke:  orBase(def.HeightenInvoke, func(r *Rune) string { return r.InvokeText }),
		HeightenLevel:   orBase(def.HeightenLevel, func(r *Rune) string { return r.LevelText }),
		Tags:            effects.NewTags(def.Tags...).Add(TagRune, def.Key),
		UsageTags:       effects.NewTags(def.UsageTags...),
		InvokeTags:      effects.NewTags(def.InvokeTags...),
		Usable:          def.Usable,
		NewInstance:     def.NewInstance,
		Invoke:          def.Invoke,
	}
	if r.Usable == nil {
		r.Usable = func(_, _ *combat.Creature) combat.Usability { return combat.Usable }
	}
	return r, nil
}

// MustNew is New for package-level content that is known to be valid
func MustNew(def Definition) *Rune {
	r, err := New(def)
	if err != nil {
		panic(err)
	}
	return r
}

// CanInvoke reports whether the rune has an invocation
func (r *Rune) CanInvoke() bool {
	return r.Invoke != nil
}

// IsDiacritic reports whether the rune is drawn onto other runes
func (r *Rune) IsDiacritic() bool {
	return r.Tags.Has(TagDiacritic)
}

// Save returns the saving throw the rune's invocation asks for
func (r *Rune) Save() (combat.Save, bool) {
	return SaveOf(r.InvokeTags)
}

// CheckUsable runs the rune's usability predicate. A rune built without New
// may have none, which rejects every target.
func (r *Rune) CheckUsable(caster, target *combat.Creature) combat.Usability {
	if r.Usable == nil {
		return combat.NotUsable(r.Name + " cannot be placed")
	}
	return r.Usable(caster, target)
}

func (r *Rune) String() string {
	return r.Name
}

func orBase(fn HeightenFunc, base func(r *Rune) string) HeightenFunc {
	if fn != nil {
		return fn
	}
	return func(r *Rune, _ int) string { return base(r) }
}
