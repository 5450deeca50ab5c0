// Package runesmith holds the runes a runesmith can learn. Text comes from
// the catalog; this package binds each rune's behavior by key.
package runesmith

import (
	"log"

	"github.com/KirkDiggler/runesmith/internal/catalog"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
)

// Rune keys
const (
	KeyAtryl     = "atryl"
	KeyEsvadir   = "esvadir"
	KeyHoltrik   = "holtrik"
	KeyMarssyl   = "marssyl"
	KeyRanshu    = "ranshu"
	KeyTrolistri = "trolistri"
)

type builder func(entry *catalog.Entry) runes.Definition

var builders = map[string]builder{
	KeyAtryl:     atryl,
	KeyEsvadir:   esvadir,
	KeyHoltrik:   holtrik,
	KeyMarssyl:   marssyl,
	KeyRanshu:    ranshu,
	KeyTrolistri: trolistri,
}

// Runes builds every catalog rune that has behavior here, in key order
func Runes(cat *catalog.Catalog) ([]*runes.Rune, error) {
	if cat == nil {
		return nil, dnderr.InvalidArgument("catalog is required")
	}

	var out []*runes.Rune
	for _, key := range cat.Keys() {
		build, ok := builders[key]
		if !ok {
			log.Printf("[RUNES] Catalog rune %s has no behavior, skipping", key)
			continue
		}
		entry, err := cat.Entry(key)
		if err != nil {
			return nil, err
		}
		r, err := runes.New(build(entry))
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to build rune %s", key)
		}
		out = append(out, r)
	}
	return out, nil
}

// NewRegistry builds a registry of every rune in the catalog
func NewRegistry(cat *catalog.Catalog) (*runes.Registry, error) {
	rs, err := Runes(cat)
	if err != nil {
		return nil, err
	}

	reg := runes.NewRegistry()
	for _, r := range rs {
		if err := reg.Register(r); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
