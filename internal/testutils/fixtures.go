package testutils

import (
	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/repositories/etchings"
)

// CreateTestCreature creates a living creature at a grid position
func CreateTestCreature(id, name string, faction combat.Faction, x, y int) *combat.Creature {
	c := combat.NewCreature(id, name, 1, faction)
	c.HP, c.MaxHP = 20, 20
	c.ClassDC = 17
	c.Position = combat.Position{X: x, Y: y}
	return c
}

// CreateTestWeapon creates a one-handed weapon dealing damageType
func CreateTestWeapon(id, name, damageType string) *combat.Item {
	return &combat.Item{
		ID:         id,
		Name:       name,
		Kind:       combat.ItemWeapon,
		Hands:      1,
		DamageType: damageType,
	}
}

// CreateTestShield creates a lowered shield
func CreateTestShield(id string) *combat.Item {
	return &combat.Item{
		ID:    id,
		Name:  "Steel Shield",
		Kind:  combat.ItemShield,
		Hands: 1,
	}
}

// CreateTestLoadout creates a loadout etching runeKey on each target
func CreateTestLoadout(casterID, runeKey string, targetIDs ...string) *etchings.Loadout {
	loadout := &etchings.Loadout{CasterID: casterID}
	for _, id := range targetIDs {
		loadout.Etchings = append(loadout.Etchings, etchings.Etching{
			RuneKey:  runeKey,
			TargetID: id,
		})
	}
	return loadout
}
