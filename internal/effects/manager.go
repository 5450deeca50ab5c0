package effects

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/runesmith/internal/events"
)

// Manager holds the effects attached to one creature, in attachment order
type Manager struct {
	mu       sync.RWMutex
	effects  []*Effect
	index    map[string]*Effect
	entityID string
	eventBus *events.Bus
}

// NewManager creates an effect manager for a creature. The bus may be nil.
func NewManager(entityID string, eventBus *events.Bus) *Manager {
	return &Manager{
		index:    make(map[string]*Effect),
		entityID: entityID,
		eventBus: eventBus,
	}
}

// EntityID returns the creature this manager belongs to
func (m *Manager) EntityID() string {
	return m.entityID
}

// SetEventBus points the manager at an encounter's bus
func (m *Manager) SetEventBus(bus *events.Bus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventBus = bus
}

// Add attaches an effect
func (m *Manager) Add(effect *Effect) error {
	if effect == nil {
		return fmt.Errorf("effect cannot be nil")
	}
	if effect.ID == "" {
		return fmt.Errorf("effect must have an ID")
	}
	if effect.Tags == nil {
		effect.Tags = NewTags()
	}

	m.mu.Lock()
	if _, exists := m.index[effect.ID]; exists {
		m.mu.Unlock()
		return fmt.Errorf("effect %s already attached to %s", effect.ID, m.entityID)
	}
	if effect.AppliedAt.IsZero() {
		effect.AppliedAt = time.Now()
	}
	m.effects = append(m.effects, effect)
	m.index[effect.ID] = effect
	bus := m.eventBus
	m.mu.Unlock()

	m.emit(bus, events.OnEffectApplied, effect, "")
	return nil
}

// Get returns the effect with id, or nil
func (m *Manager) Get(id string) *Effect {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.index[id]
}

// Has reports whether an effect with id is attached
func (m *Manager) Has(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.index[id]
	return ok
}

// List returns the attached effects in attachment order
func (m *Manager) List() []*Effect {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Effect, len(m.effects))
	copy(out, m.effects)
	return out
}

// FindByTags returns effects carrying every tag given
func (m *Manager) FindByTags(tags ...Tag) []*Effect {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Effect
	for _, e := range m.effects {
		if e.Tags.HasAll(tags...) {
			out = append(out, e)
		}
	}
	return out
}

// HasTags reports whether any attached effect carries every tag given
func (m *Manager) HasTags(tags ...Tag) bool {
	return len(m.FindByTags(tags...)) > 0
}

// Remove detaches the effect with id. Returns nil if it was not attached.
func (m *Manager) Remove(id string) *Effect {
	removed := m.removeWhere(func(e *Effect) bool { return e.ID == id }, events.RemovalExplicit)
	if len(removed) == 0 {
		return nil
	}
	return removed[0]
}

// Detach removes the effect for a move to another creature
func (m *Manager) Detach(id string) *Effect {
	removed := m.removeWhere(func(e *Effect) bool { return e.ID == id }, events.RemovalRelocated)
	if len(removed) == 0 {
		return nil
	}
	return removed[0]
}

// RemoveWhere detaches every effect matching pred
func (m *Manager) RemoveWhere(pred func(*Effect) bool) []*Effect {
	return m.removeWhere(pred, events.RemovalExplicit)
}

// ProcessTurnEnd expires effects at the end of endingID's turn
func (m *Manager) ProcessTurnEnd(endingID string) []*Effect {
	expired := m.removeWhere(func(e *Effect) bool {
		switch e.Expiration {
		case ExpireEndOfAnyTurn:
			return true
		case ExpireEndOfSourcesNextTurn:
			if e.SourceID != endingID {
				return false
			}
			if e.CannotExpireThisTurn {
				// The turn the effect was created in is over; the next one counts
				e.CannotExpireThisTurn = false
				return false
			}
			return true
		}
		return false
	}, events.RemovalExpired)

	for _, e := range expired {
		log.Printf("[EFFECTS] %s expired on entity %s", e.Name, m.entityID)
	}
	return expired
}

func (m *Manager) removeWhere(pred func(*Effect) bool, reason events.RemovalReason) []*Effect {
	m.mu.Lock()
	var removed []*Effect
	kept := m.effects[:0]
	for _, e := range m.effects {
		if pred(e) {
			removed = append(removed, e)
			delete(m.index, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so removed effects can be collected
	for i := len(kept); i < len(m.effects); i++ {
		m.effects[i] = nil
	}
	m.effects = kept
	bus := m.eventBus
	m.mu.Unlock()

	for _, e := range removed {
		m.emit(bus, events.OnEffectRemoved, e, reason)
	}
	return removed
}

func (m *Manager) emit(bus *events.Bus, eventType events.EventType, effect *Effect, reason events.RemovalReason) {
	if bus == nil {
		return
	}
	event := &events.EffectEvent{
		BaseEvent:  events.BaseEvent{Type: eventType},
		CreatureID: m.entityID,
		EffectID:   effect.ID,
		EffectName: effect.Name,
		Reason:     reason,
	}
	if err := bus.Emit(event); err != nil {
		log.Printf("[EFFECTS] Failed to emit %s for %s on %s: %v", eventType, effect.Name, m.entityID, err)
	}
}
