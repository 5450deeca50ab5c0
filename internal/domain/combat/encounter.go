package combat

import (
	"fmt"
	"log"
	"sync"

	"github.com/KirkDiggler/runesmith/internal/effects"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
	"github.com/KirkDiggler/runesmith/internal/events"
)

// EncounterStatus represents the current state of an encounter
type EncounterStatus string

const (
	EncounterStatusSetup     EncounterStatus = "setup"
	EncounterStatusActive    EncounterStatus = "active"
	EncounterStatusCompleted EncounterStatus = "completed"
)

// Encounter is the battle every rune lives in. Creatures act in the order
// they were added.
type Encounter struct {
	mu sync.RWMutex

	ID     string
	Status EncounterStatus
	Round  int

	turn      int
	creatures []*Creature
	byID      map[string]*Creature
	ground    map[string]*Item
	blockers  map[Position]bool
	bus       *events.Bus
}

// NewEncounter creates an encounter in setup
func NewEncounter(id string, bus *events.Bus) *Encounter {
	if bus == nil {
		bus = events.NewBus()
	}
	return &Encounter{
		ID:       id,
		Status:   EncounterStatusSetup,
		byID:     make(map[string]*Creature),
		ground:   make(map[string]*Item),
		blockers: make(map[Position]bool),
		bus:      bus,
	}
}

// Bus returns the encounter's event bus
func (e *Encounter) Bus() *events.Bus {
	return e.bus
}

// AddCreature adds a creature to the end of the turn order
func (e *Encounter) AddCreature(c *Creature) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if c.Effects == nil {
		c.Effects = effects.NewManager(c.ID, e.bus)
	}
	c.Effects.SetEventBus(e.bus)
	e.creatures = append(e.creatures, c)
	e.byID[c.ID] = c
}

// Creatures returns every creature in turn order
func (e *Encounter) Creatures() []*Creature {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*Creature, len(e.creatures))
	copy(out, e.creatures)
	return out
}

// Creature returns the creature with id, or nil
func (e *Encounter) Creature(id string) *Creature {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.byID[id]
}

// ActiveCreature returns the creature whose turn it is, or nil outside combat
func (e *Encounter) ActiveCreature() *Creature {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.Status != EncounterStatusActive || len(e.creatures) == 0 {
		return nil
	}
	return e.creatures[e.turn]
}

// IsTurnOf reports whether it is currently c's turn
func (e *Encounter) IsTurnOf(c *Creature) bool {
	active := e.ActiveCreature()
	return active != nil && c != nil && active.ID == c.ID
}

// Begin starts round one
func (e *Encounter) Begin() error {
	e.mu.Lock()
	if e.Status != EncounterStatusSetup {
		e.mu.Unlock()
		return dnderr.InvalidArgumentf("encounter %s already started", e.ID)
	}
	if len(e.creatures) == 0 {
		e.mu.Unlock()
		return dnderr.InvalidArgumentf("encounter %s has no creatures", e.ID)
	}
	e.Status = EncounterStatusActive
	e.Round = 1
	e.turn = 0
	e.mu.Unlock()

	log.Printf("[ENCOUNTER] %s begins", e.ID)
	if err := e.bus.Emit(&events.EncounterEvent{
		BaseEvent: events.BaseEvent{Type: events.OnEncounterBegin, EncounterID: e.ID},
		Round:     1,
	}); err != nil {
		return err
	}
	return e.StartTurn()
}

// StartTurn announces the active creature's turn
func (e *Encounter) StartTurn() error {
	active := e.ActiveCreature()
	if active == nil {
		return dnderr.InvalidArgumentf("encounter %s is not active", e.ID)
	}
	return e.bus.Emit(events.NewTurnEvent(events.OnTurnStart, e.ID, active.ID, e.Round))
}

// EndTurn ends the active creature's turn and expires effects on every creature
func (e *Encounter) EndTurn() error {
	ending := e.ActiveCreature()
	if ending == nil {
		return dnderr.InvalidArgumentf("encounter %s is not active", e.ID)
	}

	if err := e.bus.Emit(events.NewTurnEvent(events.OnTurnEnd, e.ID, ending.ID, e.Round)); err != nil {
		return err
	}

	for _, c := range e.Creatures() {
		c.Effects.ProcessTurnEnd(ending.ID)
	}
	return nil
}

// NextTurn ends the current turn and starts the next one
func (e *Encounter) NextTurn() error {
	if err := e.EndTurn(); err != nil {
		return err
	}

	e.mu.Lock()
	e.turn++
	if e.turn >= len(e.creatures) {
		e.turn = 0
		e.Round++
	}
	e.mu.Unlock()

	return e.StartTurn()
}

// End completes the encounter
func (e *Encounter) End() error {
	e.mu.Lock()
	if e.Status == EncounterStatusCompleted {
		e.mu.Unlock()
		return nil
	}
	e.Status = EncounterStatusCompleted
	round := e.Round
	e.mu.Unlock()

	log.Printf("[ENCOUNTER] %s ends after round %d", e.ID, round)
	return e.bus.Emit(&events.EncounterEvent{
		BaseEvent: events.BaseEvent{Type: events.OnEncounterEnd, EncounterID: e.ID},
		Round:     round,
	})
}

// Distance returns the grid distance in steps between two creatures
func (e *Encounter) Distance(a, b *Creature) int {
	return distance(a.Position, b.Position)
}

// AddBlocker places a wall that blocks line of effect
func (e *Encounter) AddBlocker(p Position) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.blockers[p] = true
}

// HasLineOfEffect reports whether no wall lies between the two creatures
func (e *Encounter) HasLineOfEffect(a, b *Creature) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.blockers) == 0 {
		return true
	}
	for _, p := range lineBetween(a.Position, b.Position) {
		if e.blockers[p] {
			return false
		}
	}
	return true
}

// Push moves c up to steps squares directly away from origin, stopping at
// walls and occupied squares. It returns how far c moved.
func (e *Encounter) Push(c *Creature, origin Position, steps int) int {
	dx, dy := sign(c.Position.X-origin.X), sign(c.Position.Y-origin.Y)
	if dx == 0 && dy == 0 {
		return 0
	}

	moved := 0
	for ; moved < steps; moved++ {
		next := Position{X: c.Position.X + dx, Y: c.Position.Y + dy}
		if e.isBlocked(next) || e.occupant(next) != nil {
			break
		}
		c.Position = next
	}
	if moved > 0 {
		log.Printf("[ENCOUNTER] %s pushed %d to (%d,%d)", c.Name, moved, c.Position.X, c.Position.Y)
	}
	return moved
}

func (e *Encounter) isBlocked(p Position) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.blockers[p]
}

func (e *Encounter) occupant(p Position) *Creature {
	for _, c := range e.Creatures() {
		if c.Position == p {
			return c
		}
	}
	return nil
}

// HolderOf returns the creature holding or wearing the item, or nil if it is on the ground
func (e *Encounter) HolderOf(itemID string) *Creature {
	for _, c := range e.Creatures() {
		if c.Holds(itemID) {
			return c
		}
	}
	return nil
}

// TransferItem moves an item to toID, or to the ground when toID is empty
func (e *Encounter) TransferItem(itemID, toID string) error {
	var to *Creature
	if toID != "" {
		if to = e.Creature(toID); to == nil {
			return dnderr.NotFoundf("creature %s not found", toID)
		}
	}

	var item *Item
	fromID := ""
	if from := e.HolderOf(itemID); from != nil {
		if from == to {
			return nil
		}
		fromID = from.ID
		item = from.takeItem(itemID)
	} else {
		e.mu.Lock()
		item = e.ground[itemID]
		delete(e.ground, itemID)
		e.mu.Unlock()
	}
	if item == nil {
		return dnderr.NotFoundf("item %s not found", itemID)
	}

	if to != nil {
		to.GiveItem(item)
	} else {
		e.mu.Lock()
		e.ground[itemID] = item
		e.mu.Unlock()
	}

	log.Printf("[ENCOUNTER] %s moved from %q to %q", item.Name, fromID, toID)
	return e.bus.Emit(events.NewItemHolderChangedEvent(e.ID, itemID, fromID, toID))
}

// String renders a short summary for logs
func (e *Encounter) String() string {
	return fmt.Sprintf("encounter %s (round %d, %d creatures)", e.ID, e.Round, len(e.Creatures()))
}

func distance(a, b Position) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// lineBetween returns the squares strictly between a and b
func lineBetween(a, b Position) []Position {
	steps := distance(a, b)
	if steps <= 1 {
		return nil
	}
	out := make([]Position, 0, steps-1)
	for i := 1; i < steps; i++ {
		out = append(out, Position{
			X: a.X + roundDiv((b.X-a.X)*i, steps),
			Y: a.Y + roundDiv((b.Y-a.Y)*i, steps),
		})
	}
	return out
}

func roundDiv(n, d int) int {
	if n >= 0 {
		return (n + d/2) / d
	}
	return -((-n + d/2) / d)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
