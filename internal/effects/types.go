package effects

import (
	"sort"
	"time"
)

// Tag is a classification label carried by effects and actions
type Tag string

// Tags is a set of labels
type Tags map[Tag]struct{}

// NewTags creates a tag set
func NewTags(tags ...Tag) Tags {
	set := make(Tags, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

// Has reports whether the set contains tag
func (t Tags) Has(tag Tag) bool {
	_, ok := t[tag]
	return ok
}

// HasAll reports whether the set contains every tag given
func (t Tags) HasAll(tags ...Tag) bool {
	for _, tag := range tags {
		if !t.Has(tag) {
			return false
		}
	}
	return true
}

// HasAny reports whether the set contains at least one of tags
func (t Tags) HasAny(tags ...Tag) bool {
	for _, tag := range tags {
		if t.Has(tag) {
			return true
		}
	}
	return false
}

// Add inserts tags and returns the set
func (t Tags) Add(tags ...Tag) Tags {
	for _, tag := range tags {
		t[tag] = struct{}{}
	}
	return t
}

// Remove deletes tags and returns the set
func (t Tags) Remove(tags ...Tag) Tags {
	for _, tag := range tags {
		delete(t, tag)
	}
	return t
}

// Clone returns an independent copy
func (t Tags) Clone() Tags {
	out := make(Tags, len(t))
	for tag := range t {
		out[tag] = struct{}{}
	}
	return out
}

// Union returns a new set holding t and others
func (t Tags) Union(others ...Tag) Tags {
	return t.Clone().Add(others...)
}

// Sorted returns the tags in lexical order
func (t Tags) Sorted() []Tag {
	out := make([]Tag, 0, len(t))
	for tag := range t {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Expiration is when an effect leaves its creature on its own
type Expiration string

const (
	// ExpireNever effects are only removed explicitly
	ExpireNever Expiration = "never"
	// ExpireEndOfAnyTurn effects are removed at the end of whichever turn ends next
	ExpireEndOfAnyTurn Expiration = "end_of_any_turn"
	// ExpireEndOfSourcesNextTurn effects are removed when their source's next turn ends
	ExpireEndOfSourcesNextTurn Expiration = "end_of_sources_next_turn"
)

// Effect is a named, tagged, stateful effect attached to a creature
type Effect struct {
	ID          string
	Name        string
	Description string
	SourceID    string // creature that created the effect
	Tags        Tags
	Expiration  Expiration

	// CannotExpireThisTurn skips the first qualifying turn end. It is set when
	// an effect is created during its source's own turn.
	CannotExpireThisTurn bool

	// Hidden effects are kept off the bearer's status display
	Hidden bool

	AppliedAt time.Time
}

// HasTag reports whether the effect carries tag
func (e *Effect) HasTag(tag Tag) bool {
	return e.Tags.Has(tag)
}
