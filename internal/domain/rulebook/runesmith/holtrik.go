package runesmith

import (
	"context"

	"github.com/KirkDiggler/runesmith/internal/catalog"
	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
)

func holtrik(entry *catalog.Entry) runes.Definition {
	fits := ofKind(combat.ItemShield)

	def := entry.Definition()
	def.Usable = holding("must be holding a shield", fits)
	def.NewInstance = onItem(fits)
	def.Invoke = func(_ context.Context, in runes.InvokeInput) error {
		if shield := in.Bearer.Shield(); shield != nil && !shield.Raised {
			shield.Raised = true
			in.Action.OnRevert(func() { shield.Raised = false })
		}
		in.Runtime.Remove(in.Drawn)
		in.Runtime.ApplyImmunity(in.Bearer, in.Rune)
		return nil
	}
	return def
}
