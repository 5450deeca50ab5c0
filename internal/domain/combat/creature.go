package combat

import (
	"github.com/KirkDiggler/runesmith/internal/effects"
)

// Faction groups creatures that are friendly to each other
type Faction string

const (
	FactionParty   Faction = "party"
	FactionEnemies Faction = "enemies"
)

// Position is a square on the battle grid
type Position struct {
	X int
	Y int
}

// ItemKind classifies what an item is for rune placement
type ItemKind string

const (
	ItemWeapon    ItemKind = "weapon"
	ItemShield    ItemKind = "shield"
	ItemArmor     ItemKind = "armor"
	ItemHandwraps ItemKind = "handwraps" // worn; lends runes to unarmed strikes
)

// Item is something a creature holds or wears
type Item struct {
	ID     string
	Name   string
	Kind   ItemKind
	Hands  int  // hands used while held; worn items use none
	Worn   bool // worn items don't occupy hands
	Raised bool // shields only
	// DamageType is what a weapon deals, e.g. "slashing"
	DamageType string
}

// Save is a saving throw defense
type Save string

const (
	Fortitude Save = "fortitude"
	Reflex    Save = "reflex"
	Will      Save = "will"
)

// Marker is an actor state flag set by other features (e.g. a stance)
type Marker string

// Creature is a combatant the host engine tracks
type Creature struct {
	ID       string
	Name     string
	Level    int
	Faction  Faction
	Position Position
	Hands    int

	HP      int
	MaxHP   int
	AC      int
	ClassDC int
	Saves   map[Save]int

	// Resistances reduce damage of a type by a flat amount
	Resistances map[string]int

	Items   []*Item
	Markers map[Marker]bool
	Effects *effects.Manager
}

// NewCreature creates a creature with two hands and an empty effect list
func NewCreature(id, name string, level int, faction Faction) *Creature {
	return &Creature{
		ID:          id,
		Name:        name,
		Level:       level,
		Faction:     faction,
		Hands:       2,
		Saves:       make(map[Save]int),
		Resistances: make(map[string]int),
		Markers:     make(map[Marker]bool),
		Effects:     effects.NewManager(id, nil),
	}
}

// IsAlive returns true if the creature has hit points left
func (c *Creature) IsAlive() bool {
	return c.HP > 0
}

// IsFriendlyTo reports whether other is on the same side
func (c *Creature) IsFriendlyTo(other *Creature) bool {
	return other != nil && c.Faction == other.Faction
}

// FreeHands returns hands not occupied by held items
func (c *Creature) FreeHands() int {
	used := 0
	for _, item := range c.Items {
		if !item.Worn {
			used += item.Hands
		}
	}
	if free := c.Hands - used; free > 0 {
		return free
	}
	return 0
}

// HasFreeHand reports whether the creature can manipulate something
func (c *Creature) HasFreeHand() bool {
	return c.FreeHands() > 0
}

// Item returns the held or worn item with id
func (c *Creature) Item(id string) *Item {
	for _, item := range c.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Holds reports whether the creature holds or wears the item
func (c *Creature) Holds(itemID string) bool {
	return c.Item(itemID) != nil
}

// ItemsOfKind returns held or worn items of a kind in carry order
func (c *Creature) ItemsOfKind(kind ItemKind) []*Item {
	var out []*Item
	for _, item := range c.Items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}

// Shield returns the first shield the creature holds
func (c *Creature) Shield() *Item {
	if shields := c.ItemsOfKind(ItemShield); len(shields) > 0 {
		return shields[0]
	}
	return nil
}

// UnarmedStrike returns the worn item that carries runes for unarmed strikes
func (c *Creature) UnarmedStrike() *Item {
	if wraps := c.ItemsOfKind(ItemHandwraps); len(wraps) > 0 {
		return wraps[0]
	}
	return nil
}

// GiveItem puts an item in the creature's hands (or on its body if worn)
func (c *Creature) GiveItem(item *Item) {
	c.Items = append(c.Items, item)
}

// takeItem removes and returns the item with id
func (c *Creature) takeItem(id string) *Item {
	for i, item := range c.Items {
		if item.ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return item
		}
	}
	return nil
}

// HasMarker reports whether a state marker is set
func (c *Creature) HasMarker(m Marker) bool {
	return c.Markers[m]
}

// SetMarker sets or clears a state marker
func (c *Creature) SetMarker(m Marker, on bool) {
	if c.Markers == nil {
		c.Markers = make(map[Marker]bool)
	}
	if !on {
		delete(c.Markers, m)
		return
	}
	c.Markers[m] = true
}

// TakeDamage applies damage after resistance and returns what was dealt
func (c *Creature) TakeDamage(amount int, damageType string) int {
	if amount <= 0 {
		return 0
	}
	amount -= c.Resistances[damageType]
	if amount < 0 {
		amount = 0
	}
	if amount > c.HP {
		amount = c.HP
	}
	c.HP -= amount
	return amount
}
