package runes

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/effects"
)

// Medium is how a rune was placed
type Medium int

const (
	MediumTemporary Medium = iota
	MediumDurable
)

func (m Medium) String() string {
	if m == MediumDurable {
		return "durable"
	}
	return "temporary"
}

// AttachmentKind says what a drawn rune is really drawn on
type AttachmentKind int

const (
	AttachedNowhere AttachmentKind = iota
	AttachedToCreature
	AttachedToItem
	AttachedToRune
)

// Attachment is the true attachment point of a drawn rune. Only the field
// matching Kind is set.
type Attachment struct {
	Kind    AttachmentKind
	ItemID  string
	DrawnID string
}

// OnCreature attaches to the bearer itself
func OnCreature() Attachment {
	return Attachment{Kind: AttachedToCreature}
}

// OnItem attaches to an item the bearer holds or wears
func OnItem(itemID string) Attachment {
	return Attachment{Kind: AttachedToItem, ItemID: itemID}
}

// OnRune attaches a diacritic to another drawn rune
func OnRune(drawnID string) Attachment {
	return Attachment{Kind: AttachedToRune, DrawnID: drawnID}
}

// Binding makes a drawn rune follow whoever holds something
type Binding interface {
	// Holder returns who should bear the rune now, or nil if nobody does
	Holder(enc *combat.Encounter, d *DrawnRune) *combat.Creature
	// Label names what the rune is bound to for display
	Label(enc *combat.Encounter) string
	// Watches reports whether moving itemID can change the holder
	Watches(itemID string) bool
}

// ItemBinding follows a held item
type ItemBinding struct {
	ItemID   string
	ItemName string
}

func (b ItemBinding) Holder(enc *combat.Encounter, _ *DrawnRune) *combat.Creature {
	return enc.HolderOf(b.ItemID)
}

func (b ItemBinding) Label(*combat.Encounter) string {
	if b.ItemName != "" {
		return b.ItemName
	}
	return b.ItemID
}

func (b ItemBinding) Watches(itemID string) bool {
	return b.ItemID == itemID
}

// UnarmedBinding follows whoever strikes with the runed fists. With an
// ItemID it tracks the handwraps that lend their runes to unarmed strikes;
// without one the rune stays on the bearer's own fists.
type UnarmedBinding struct {
	ItemID   string
	ItemName string
}

func (b UnarmedBinding) Holder(enc *combat.Encounter, d *DrawnRune) *combat.Creature {
	if b.ItemID == "" {
		return enc.Creature(d.OwnerID)
	}
	holder := enc.HolderOf(b.ItemID)
	if holder == nil || holder.UnarmedStrike() == nil || holder.UnarmedStrike().ID != b.ItemID {
		return nil
	}
	return holder
}

func (b UnarmedBinding) Label(*combat.Encounter) string {
	if b.ItemName != "" {
		return b.ItemName
	}
	return "unarmed"
}

func (b UnarmedBinding) Watches(itemID string) bool {
	return b.ItemID != "" && b.ItemID == itemID
}

// HookContext is passed to instance hooks around any invocation in the encounter
type HookContext struct {
	Action  *combat.ActionContext
	Invoked *DrawnRune
	Caster  *combat.Creature
	Bearer  *combat.Creature
}

// HookFunc reacts to an invocation. A before hook may revert hc.Action to
// stop it; an after hook runs once the invocation resolved and cannot.
type HookFunc func(ctx context.Context, self *DrawnRune, hc HookContext)

// DrawnRune is a rune placed on a bearer
type DrawnRune struct {
	ID   string
	Rune *Rune

	SourceID   string
	OwnerID    string
	Attachment Attachment

	Medium     Medium
	Suppressed bool
	Hidden     bool

	Tags        effects.Tags
	DisplayName string

	Binding Binding

	BeforeAnyInvoke HookFunc
	AfterAnyInvoke  HookFunc

	effect *effects.Effect
}

// NewDrawn creates a temporary instance of r drawn by caster onto target
func NewDrawn(id string, r *Rune, caster, target *combat.Creature) *DrawnRune {
	d := &DrawnRune{
		ID:          id,
		Rune:        r,
		SourceID:    caster.ID,
		OwnerID:     target.ID,
		Attachment:  OnCreature(),
		Tags:        r.Tags.Clone(),
		DisplayName: r.Name,
	}
	d.MakeTemporary()
	return d
}

// IsTemporary reports whether the instance was traced
func (d *DrawnRune) IsTemporary() bool {
	return d.Medium == MediumTemporary
}

// IsDurable reports whether the instance was etched
func (d *DrawnRune) IsDurable() bool {
	return d.Medium == MediumDurable
}

// MakeTemporary switches the instance to the temporary medium
func (d *DrawnRune) MakeTemporary() {
	d.Medium = MediumTemporary
	d.Tags.Remove(TagEtched).Add(TagTraced)
	d.syncEffect()
}

// MakeDurable switches the instance to the durable medium
func (d *DrawnRune) MakeDurable() {
	d.Medium = MediumDurable
	d.Tags.Remove(TagTraced).Add(TagEtched)
	d.syncEffect()
}

// Expiration is when the instance leaves its bearer on its own
func (d *DrawnRune) Expiration() effects.Expiration {
	if d.Medium == MediumDurable {
		return effects.ExpireNever
	}
	return effects.ExpireEndOfSourcesNextTurn
}

// IsAttached reports whether the instance has a true attachment point
func (d *DrawnRune) IsAttached() bool {
	return d.Attachment.Kind != AttachedNowhere
}

// BindTo makes the instance follow an item, setting its attachment to match
func (d *DrawnRune) BindTo(item *combat.Item) {
	if item.Kind == combat.ItemHandwraps {
		d.Binding = UnarmedBinding{ItemID: item.ID, ItemName: item.Name}
	} else {
		d.Binding = ItemBinding{ItemID: item.ID, ItemName: item.Name}
	}
	d.Attachment = OnItem(item.ID)
	d.nameAfterBinding(nil)
}

// nameAfterBinding sets the display name from the rune and what it is bound to
func (d *DrawnRune) nameAfterBinding(enc *combat.Encounter) {
	d.DisplayName = fmt.Sprintf("%s (%s)", d.Rune.Name, d.Binding.Label(enc))
}

func (d *DrawnRune) String() string {
	return fmt.Sprintf("%s[%s]", d.DisplayName, d.ID)
}

// effectFor builds the effect that stands for the instance on its bearer
func (d *DrawnRune) effectFor(cannotExpireThisTurn bool) *effects.Effect {
	b := effects.NewBuilder(d.DisplayName).
		WithID(d.ID).
		WithSource(d.SourceID).
		WithDescription(d.Rune.PassiveText).
		WithTags(d.Tags.Sorted()...).
		Expires(d.Expiration())
	if cannotExpireThisTurn && d.Medium == MediumTemporary {
		b = b.CannotExpireThisTurn()
	}
	if d.Hidden {
		b = b.Hidden()
	}
	d.effect = b.Build()
	return d.effect
}

func (d *DrawnRune) syncEffect() {
	if d.effect == nil {
		return
	}
	d.effect.Name = d.DisplayName
	d.effect.Tags = d.Tags.Clone()
	d.effect.Expiration = d.Expiration()
	d.effect.Hidden = d.Hidden
	if d.Medium == MediumDurable {
		d.effect.CannotExpireThisTurn = false
	}
}
