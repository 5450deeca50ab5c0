package runes

import (
	"log"
	"slices"
	"sync"

	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
	"github.com/KirkDiggler/runesmith/internal/events"
)

// Ledger holds every drawn rune of one encounter by id. Each instance is
// mirrored by an effect with the same id on its bearer, so bearing an
// instance is an id lookup on the bearer's effects.
type Ledger struct {
	mu    sync.RWMutex
	enc   *combat.Encounter
	byID  map[string]*DrawnRune
	order []string

	listenerID string
}

// NewLedger creates a ledger and subscribes it to the encounter's bus
func NewLedger(enc *combat.Encounter) *Ledger {
	l := &Ledger{
		enc:        enc,
		byID:       make(map[string]*DrawnRune),
		listenerID: "runes-ledger-" + enc.ID,
	}

	bus := enc.Bus()
	bus.Subscribe(events.OnEffectRemoved, events.ListenerFunc(l.listenerID, events.PriorityBookkeeping, l.onEffectRemoved))
	bus.Subscribe(events.OnItemHolderChanged, events.ListenerFunc(l.listenerID, events.PriorityBookkeeping, l.onItemHolderChanged))
	bus.Subscribe(events.OnEncounterEnd, events.ListenerFunc(l.listenerID, events.PriorityBookkeeping, l.onEncounterEnd))
	bus.Subscribe(events.OnTurnEnd, events.ListenerFunc(l.listenerID, events.PriorityBookkeeping, l.onTurnEnd))
	return l
}

// Close unsubscribes the ledger from the bus
func (l *Ledger) Close() {
	bus := l.enc.Bus()
	bus.Unsubscribe(events.OnEffectRemoved, l.listenerID)
	bus.Unsubscribe(events.OnItemHolderChanged, l.listenerID)
	bus.Unsubscribe(events.OnEncounterEnd, l.listenerID)
	bus.Unsubscribe(events.OnTurnEnd, l.listenerID)
}

// Encounter returns the encounter the ledger tracks
func (l *Ledger) Encounter() *combat.Encounter {
	return l.enc
}

// Attach places d on bearer. Temporary instances drawn during their
// source's turn survive the end of that turn.
func (l *Ledger) Attach(d *DrawnRune, bearer *combat.Creature) error {
	if d == nil || bearer == nil {
		return dnderr.InvalidArgument("drawn rune and bearer are required")
	}

	l.mu.Lock()
	if _, exists := l.byID[d.ID]; exists {
		l.mu.Unlock()
		return dnderr.AlreadyExistsf("drawn rune %s is already attached", d.ID)
	}
	l.byID[d.ID] = d
	l.order = append(l.order, d.ID)
	l.mu.Unlock()

	d.OwnerID = bearer.ID
	if !d.IsAttached() {
		d.Attachment = OnCreature()
	}

	duringOwnTurn := l.enc.IsTurnOf(l.enc.Creature(d.SourceID))
	if err := bearer.Effects.Add(d.effectFor(duringOwnTurn)); err != nil {
		l.forget(d.ID)
		return dnderr.Wrapf(err, "failed to attach %s to %s", d.DisplayName, bearer.Name)
	}

	log.Printf("[RUNES] %s drew %s on %s (%s)", d.SourceID, d.DisplayName, bearer.Name, d.Medium)
	l.emit(events.OnRuneApplied, d)
	return nil
}

// Get returns the instance with id, or nil
func (l *Ledger) Get(id string) *DrawnRune {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.byID[id]
}

// Has reports whether the instance with id exists
func (l *Ledger) Has(id string) bool {
	return l.Get(id) != nil
}

// Len returns how many instances exist
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.byID)
}

// Bears reports whether creature currently bears exactly d
func (l *Ledger) Bears(creature *combat.Creature, d *DrawnRune) bool {
	if creature == nil || d == nil || !l.Has(d.ID) {
		return false
	}
	return creature.Effects.Has(d.ID)
}

// InstancesOn returns the instances a creature bears in attachment order
func (l *Ledger) InstancesOn(creatureID string) []*DrawnRune {
	creature := l.enc.Creature(creatureID)
	if creature == nil {
		return nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []*DrawnRune
	for _, e := range creature.Effects.List() {
		if d, ok := l.byID[e.ID]; ok {
			out = append(out, d)
		}
	}
	return out
}

// All returns borne instances in encounter creature order, then each
// creature's attachment order
func (l *Ledger) All() []*DrawnRune {
	var out []*DrawnRune
	for _, c := range l.enc.Creatures() {
		out = append(out, l.InstancesOn(c.ID)...)
	}
	return out
}

// Remove deletes d and every diacritic drawn on it. It returns what was removed.
func (l *Ledger) Remove(d *DrawnRune) []*DrawnRune {
	if d == nil {
		return nil
	}
	removed := l.forget(d.ID)
	for _, r := range removed {
		l.release(r, true)
	}
	return removed
}

// RemoveAllFrom removes every instance drawn by casterID
func (l *Ledger) RemoveAllFrom(casterID string) int {
	count := 0
	for _, d := range l.snapshot() {
		if d.SourceID == casterID && l.Has(d.ID) {
			count += len(l.Remove(d))
		}
	}
	return count
}

// NotifyInvoked publishes that d was invoked
func (l *Ledger) NotifyInvoked(d *DrawnRune) {
	l.emit(events.OnRuneInvoked, d)
}

// Reevaluate moves a bound instance to whoever holds what it is bound to.
// It returns true if the instance changed bearer. Calling it again without a
// change in holder only recomputes the display name.
func (l *Ledger) Reevaluate(d *DrawnRune) bool {
	if d == nil || d.Binding == nil || !l.Has(d.ID) {
		return false
	}

	d.nameAfterBinding(l.enc)

	holder := d.Binding.Holder(l.enc, d)
	holderID := ""
	if holder != nil {
		holderID = holder.ID
	}
	if holderID == d.OwnerID {
		d.syncEffect()
		return false
	}

	l.relocate(d, holder)
	return true
}

func (l *Ledger) relocate(d *DrawnRune, holder *combat.Creature) {
	fromID := d.OwnerID
	if from := l.enc.Creature(fromID); from != nil {
		from.Effects.Detach(d.ID)
	}

	d.OwnerID = ""
	d.Hidden = holder == nil
	if holder != nil {
		d.OwnerID = holder.ID
		if d.effect == nil {
			d.effectFor(false)
		}
		d.syncEffect()
		if err := holder.Effects.Add(d.effect); err != nil {
			log.Printf("[RUNES] Failed to move %s to %s: %v", d, holder.Name, err)
		}
	}
	log.Printf("[RUNES] %s moved from %q to %q", d, fromID, d.OwnerID)

	for _, diacritic := range l.diacriticsOf(d.ID) {
		l.relocate(diacritic, holder)
	}
}

func (l *Ledger) diacriticsOf(id string) []*DrawnRune {
	var out []*DrawnRune
	for _, d := range l.snapshot() {
		if d.Attachment.Kind == AttachedToRune && d.Attachment.DrawnID == id {
			out = append(out, d)
		}
	}
	return out
}

// snapshot returns every instance in the order it was attached
func (l *Ledger) snapshot() []*DrawnRune {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*DrawnRune, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.byID[id])
	}
	return out
}

// forget drops id and its diacritics from the ledger without touching bearers
func (l *Ledger) forget(id string) []*DrawnRune {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.forgetLocked(id)
}

func (l *Ledger) forgetLocked(id string) []*DrawnRune {
	d, ok := l.byID[id]
	if !ok {
		return nil
	}
	delete(l.byID, id)
	l.order = slices.DeleteFunc(l.order, func(other string) bool { return other == id })

	removed := []*DrawnRune{d}
	for _, otherID := range slices.Clone(l.order) {
		other, ok := l.byID[otherID]
		if ok && other.Attachment.Kind == AttachedToRune && other.Attachment.DrawnID == id {
			removed = append(removed, l.forgetLocked(otherID)...)
		}
	}
	return removed
}

// release takes a forgotten instance off its bearer
func (l *Ledger) release(d *DrawnRune, removeEffect bool) {
	if removeEffect {
		if owner := l.enc.Creature(d.OwnerID); owner != nil {
			owner.Effects.Remove(d.ID)
		}
	}
	d.Attachment = Attachment{}
	d.effect = nil
	log.Printf("[RUNES] %s removed from %q", d, d.OwnerID)
	l.emit(events.OnRuneRemoved, d)
}

func (l *Ledger) onEffectRemoved(e events.Event) error {
	event, ok := e.(*events.EffectEvent)
	if !ok || event.Reason == events.RemovalRelocated {
		return nil
	}

	d := l.Get(event.EffectID)
	if d == nil || d.OwnerID != event.CreatureID {
		return nil
	}

	// The bearer already dropped the effect; diacritics still hold theirs
	for _, r := range l.forget(d.ID) {
		l.release(r, r != d)
	}
	return nil
}

func (l *Ledger) onItemHolderChanged(e events.Event) error {
	event, ok := e.(*events.ItemHolderChangedEvent)
	if !ok {
		return nil
	}
	for _, d := range l.snapshot() {
		if d.Binding != nil && d.Binding.Watches(event.ItemID) {
			l.Reevaluate(d)
		}
	}
	return nil
}

// onTurnEnd expires temporary instances nobody bears, such as runes on a
// dropped item. Borne instances expire through their bearer's effects.
func (l *Ledger) onTurnEnd(e events.Event) error {
	event, ok := e.(*events.TurnEvent)
	if !ok {
		return nil
	}
	for _, d := range l.snapshot() {
		if d.OwnerID != "" || !d.IsTemporary() || d.SourceID != event.CreatureID || d.effect == nil || !l.Has(d.ID) {
			continue
		}
		if d.effect.CannotExpireThisTurn {
			d.effect.CannotExpireThisTurn = false
			continue
		}
		log.Printf("[RUNES] %s expired while unborne", d)
		l.Remove(d)
	}
	return nil
}

func (l *Ledger) onEncounterEnd(events.Event) error {
	count := 0
	for _, d := range l.snapshot() {
		if l.Has(d.ID) {
			count += len(l.Remove(d))
		}
	}
	log.Printf("[RUNES] Encounter %s ended, removed %d drawn runes", l.enc.ID, count)
	return nil
}

func (l *Ledger) emit(eventType events.EventType, d *DrawnRune) {
	err := l.enc.Bus().Emit(&events.RuneEvent{
		BaseEvent: events.BaseEvent{Type: eventType, EncounterID: l.enc.ID},
		DrawnID:   d.ID,
		RuneKey:   string(d.Rune.Key),
		SourceID:  d.SourceID,
		OwnerID:   d.OwnerID,
	})
	if err != nil {
		log.Printf("[RUNES] Failed to emit %s for %s: %v", eventType, d, err)
	}
}
