package runesmith

import (
	"context"
	"log"

	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
)

// ApplyInput contains data for placing a rune on a target
type ApplyInput struct {
	Action *combat.ActionContext
	Caster *combat.Creature
	Target *combat.Creature
	Rune   *runes.Rune

	// IgnoreUsability is for callers that already validated placement
	IgnoreUsability bool
	// Item binds the new instance to an item the target carries
	Item *combat.Item
}

type preferredItemKey struct{}

// WithPreferredItem asks rune factories under ctx to draw on itemID when the
// target carries it
func WithPreferredItem(ctx context.Context, itemID string) context.Context {
	return context.WithValue(ctx, preferredItemKey{}, itemID)
}

func preferredItem(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(preferredItemKey{}).(string)
	return id, ok && id != ""
}

// Apply places a new instance of a rune on a target. It returns nil without
// an error when the rune can't be placed there.
func (s *service) Apply(ctx context.Context, input *ApplyInput) (*runes.DrawnRune, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if input.Caster == nil || input.Target == nil || input.Rune == nil {
		return nil, dnderr.InvalidArgument("caster, target and rune are required")
	}

	r := input.Rune
	if !input.IgnoreUsability {
		if u := r.CheckUsable(input.Caster, input.Target); !u.Legal {
			log.Printf("[RUNES] %s cannot place %s on %s: %s", input.Caster.Name, r.Name, input.Target.Name, u.Reason)
			return nil, nil
		}
	}
	if r.NewInstance == nil {
		return nil, nil
	}

	item := input.Item
	if item == nil {
		if id, ok := preferredItem(ctx); ok {
			item = input.Target.Item(id)
		}
	}

	d := r.NewInstance(ctx, runes.InstanceInput{
		Action: input.Action,
		Caster: input.Caster,
		Target: input.Target,
		Rune:   r,
		ID:     s.uuidGenerator.New(),
		Item:   item,
		Picker: s.picker,
	})
	if d == nil {
		return nil, nil
	}

	if input.Action != nil {
		switch {
		case input.Action.Action.HasTag(runes.TagEtched):
			d.MakeDurable()
		case input.Action.Action.HasTag(runes.TagTraced):
			d.MakeTemporary()
		}
	}
	if input.Item != nil && d.Attachment.Kind != runes.AttachedToItem {
		d.BindTo(input.Item)
	}

	if err := s.ledger.Attach(d, input.Target); err != nil {
		return nil, dnderr.Wrapf(err, "failed to apply %s", r.Name)
	}
	if input.Action != nil {
		input.Action.OnRevert(func() { s.ledger.Remove(d) })
	}

	return d, nil
}
