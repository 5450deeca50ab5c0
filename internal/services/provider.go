package services

import (
	"github.com/KirkDiggler/runesmith/internal/catalog"
	"github.com/KirkDiggler/runesmith/internal/config"
	"github.com/KirkDiggler/runesmith/internal/dice"
	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/rulebook/runesmith"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
	"github.com/KirkDiggler/runesmith/internal/repositories/etchings"
	runesvc "github.com/KirkDiggler/runesmith/internal/services/runesmith"
)

// Provider holds what every encounter's rune service shares
type Provider struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Registry *runes.Registry
	Etchings etchings.Repository
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Config             *config.Config
	Catalog            *catalog.Catalog
	EtchingsRepository etchings.Repository
}

// NewProvider creates a new service provider with the rune content loaded
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = config.Default()
	}

	// Use in-memory repository if none provided
	repo := cfg.EtchingsRepository
	if repo == nil {
		repo = etchings.NewInMemoryRepository()
	}

	cat := cfg.Catalog
	if cat == nil {
		var err error
		if cat, err = catalog.Load(); err != nil {
			return nil, dnderr.Wrap(err, "failed to load rune catalog")
		}
	}

	registry, err := runesmith.NewRegistry(cat)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to build rune registry")
	}

	return &Provider{
		Config:   appCfg,
		Catalog:  cat,
		Registry: registry,
		Etchings: repo,
	}, nil
}

// RuneService creates the rune service for one encounter
func (p *Provider) RuneService(enc *combat.Encounter, roller dice.Roller, picker combat.Picker) runesvc.Service {
	return runesvc.NewService(&runesvc.ServiceConfig{
		Encounter: enc,
		Roller:    roller,
		Picker:    picker,
		Config:    p.Config,
		Registry:  p.Registry,
	})
}
