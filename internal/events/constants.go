package events

// Event type constants
const (
	// Encounter flow
	OnEncounterBegin EventType = "on_encounter_begin"
	OnEncounterEnd   EventType = "on_encounter_end"
	OnTurnStart      EventType = "on_turn_start"
	OnTurnEnd        EventType = "on_turn_end"

	// Items
	OnItemHolderChanged EventType = "on_item_holder_changed"

	// Effects
	OnEffectApplied EventType = "on_effect_applied"
	OnEffectRemoved EventType = "on_effect_removed"

	// Runes
	OnRuneApplied EventType = "on_rune_applied"
	OnRuneInvoked EventType = "on_rune_invoked"
	OnRuneRemoved EventType = "on_rune_removed"
)

// Priority levels for listener ordering
const (
	PriorityBookkeeping = 0   // Ledgers and indexes that others read
	PriorityFeatures    = 100 // Class features reacting to events
	PriorityLogging     = 500 // Observers
)
