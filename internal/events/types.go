package events

// EventType represents the type of game event
type EventType string

// Event is the base interface for all game events
type Event interface {
	GetType() EventType
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type        EventType
	EncounterID string
	Cancelled   bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// TurnEvent is emitted when a creature's turn starts or ends
type TurnEvent struct {
	BaseEvent
	CreatureID string
	Round      int
}

// EncounterEvent is emitted when an encounter begins or ends
type EncounterEvent struct {
	BaseEvent
	Round int
}

// ItemHolderChangedEvent is emitted when an item moves between creatures.
// An empty FromID or ToID means the item was on the ground.
type ItemHolderChangedEvent struct {
	BaseEvent
	ItemID string
	FromID string
	ToID   string
}

// EffectEvent is emitted when an effect is attached to or removed from a creature
type EffectEvent struct {
	BaseEvent
	CreatureID string
	EffectID   string
	EffectName string
	Reason     RemovalReason
}

// RuneEvent is emitted for rune lifecycle steps
type RuneEvent struct {
	BaseEvent
	DrawnID  string
	RuneKey  string
	SourceID string
	OwnerID  string
}

// RemovalReason explains why an effect left a creature
type RemovalReason string

const (
	RemovalExplicit  RemovalReason = "explicit"
	RemovalExpired   RemovalReason = "expired"
	RemovalRelocated RemovalReason = "relocated"
)

// NewTurnEvent creates a turn event
func NewTurnEvent(eventType EventType, encounterID, creatureID string, round int) *TurnEvent {
	return &TurnEvent{
		BaseEvent:  BaseEvent{Type: eventType, EncounterID: encounterID},
		CreatureID: creatureID,
		Round:      round,
	}
}

// NewItemHolderChangedEvent creates an item transfer event
func NewItemHolderChangedEvent(encounterID, itemID, fromID, toID string) *ItemHolderChangedEvent {
	return &ItemHolderChangedEvent{
		BaseEvent: BaseEvent{Type: OnItemHolderChanged, EncounterID: encounterID},
		ItemID:    itemID,
		FromID:    fromID,
		ToID:      toID,
	}
}
