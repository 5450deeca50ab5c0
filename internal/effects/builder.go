package effects

import (
	"fmt"
	"time"
)

// Builder helps create effects
type Builder struct {
	effect *Effect
}

// NewBuilder creates a new effect builder
func NewBuilder(name string) *Builder {
	return &Builder{
		effect: &Effect{
			ID:         fmt.Sprintf("%s_%d", name, time.Now().UnixNano()),
			Name:       name,
			Tags:       NewTags(),
			Expiration: ExpireNever,
		},
	}
}

// WithID overrides the generated id
func (b *Builder) WithID(id string) *Builder {
	b.effect.ID = id
	return b
}

// WithSource sets the creature that created the effect
func (b *Builder) WithSource(sourceID string) *Builder {
	b.effect.SourceID = sourceID
	return b
}

// WithDescription adds a description
func (b *Builder) WithDescription(desc string) *Builder {
	b.effect.Description = desc
	return b
}

// WithTags adds tags
func (b *Builder) WithTags(tags ...Tag) *Builder {
	b.effect.Tags.Add(tags...)
	return b
}

// Expires sets the expiration policy
func (b *Builder) Expires(expiration Expiration) *Builder {
	b.effect.Expiration = expiration
	return b
}

// CannotExpireThisTurn protects the effect from the current turn's end
func (b *Builder) CannotExpireThisTurn() *Builder {
	b.effect.CannotExpireThisTurn = true
	return b
}

// Hidden keeps the effect off the status display
func (b *Builder) Hidden() *Builder {
	b.effect.Hidden = true
	return b
}

// Build returns the constructed effect
func (b *Builder) Build() *Effect {
	return b.effect
}
