package runes

import (
	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/effects"
)

// Tags every rune action or instance may carry
const (
	TagRune      effects.Tag = "rune"
	TagTraced    effects.Tag = "traced"
	TagEtched    effects.Tag = "etched"
	TagInvoke    effects.Tag = "invoke"
	TagImmunity  effects.Tag = "immunity"
	TagDiacritic effects.Tag = "diacritic"
)

// Usage tags describe where a rune can be placed
const (
	UsageCreature effects.Tag = "usage:creature"
	UsageWeapon   effects.Tag = "usage:weapon"
	UsageShield   effects.Tag = "usage:shield"
	UsageArmor    effects.Tag = "usage:armor"
	UsageUnarmed  effects.Tag = "usage:unarmed"
)

// Invoke tags describe what invoking a rune does
const (
	InvokeDamage    effects.Tag = "invoke:damage"
	InvokeFortitude effects.Tag = "invoke:fortitude"
	InvokeReflex    effects.Tag = "invoke:reflex"
	InvokeWill      effects.Tag = "invoke:will"
	InvokeNoRoll    effects.Tag = "invoke:no-roll"
)

// SaveOf returns the saving throw an invocation asks for. It is false when
// the invocation has no save or involves no roll.
func SaveOf(invokeTags effects.Tags) (combat.Save, bool) {
	if invokeTags.Has(InvokeNoRoll) {
		return "", false
	}
	switch {
	case invokeTags.Has(InvokeFortitude):
		return combat.Fortitude, true
	case invokeTags.Has(InvokeReflex):
		return combat.Reflex, true
	case invokeTags.Has(InvokeWill):
		return combat.Will, true
	}
	return "", false
}
