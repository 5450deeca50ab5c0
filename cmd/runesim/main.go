package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/runesmith/internal/config"
	"github.com/KirkDiggler/runesmith/internal/dice"
	"github.com/KirkDiggler/runesmith/internal/domain/combat"
	"github.com/KirkDiggler/runesmith/internal/domain/rulebook/runesmith"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
	"github.com/KirkDiggler/runesmith/internal/events"
	"github.com/KirkDiggler/runesmith/internal/repositories/etchings"
	"github.com/KirkDiggler/runesmith/internal/services"
	runesvc "github.com/KirkDiggler/runesmith/internal/services/runesmith"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	repo, closeRepo := newRepository(ctx, cfg)
	defer closeRepo()

	provider, err := services.NewProvider(&services.ProviderConfig{
		Config:             cfg,
		EtchingsRepository: repo,
	})
	if err != nil {
		log.Fatalf("Failed to create service provider: %v", err)
	}

	enc, smith, fighter := newEncounter()

	if err := seedLoadout(ctx, repo, smith, fighter); err != nil {
		log.Fatalf("Failed to seed loadout: %v", err)
	}

	svc := provider.RuneService(enc, dice.NewRandomRoller(), combat.FirstChoicePicker{})
	defer svc.Ledger().Close()

	etched, err := svc.EtchLoadouts(ctx, repo, []*combat.Creature{smith})
	if err != nil {
		log.Fatalf("Failed to etch loadouts: %v", err)
	}
	fmt.Printf("Etched %d runes before combat\n", etched)

	if err := enc.Begin(); err != nil {
		log.Fatalf("Failed to begin encounter: %v", err)
	}

	// Round one: trace on the nearest foe, then set everything off
	learnable := provider.Registry.Learnable(smith.Level)
	if _, err := svc.PickTrace(ctx, smith, learnable, runesvc.TraceOptions{Cost: runesvc.Cost2}); err != nil {
		log.Fatalf("Failed to trace: %v", err)
	}
	printRunes(svc, enc)

	out, err := svc.InvokeActivity(ctx, smith)
	if err != nil {
		log.Fatalf("Failed to invoke: %v", err)
	}
	fmt.Printf("Invoked %d runes\n", len(out.Invoked))
	printRunes(svc, enc)

	for _, c := range enc.Creatures() {
		fmt.Printf("  %-10s %2d/%d HP at (%d,%d)\n", c.Name, c.HP, c.MaxHP, c.Position.X, c.Position.Y)
	}

	if err := enc.End(); err != nil {
		log.Printf("Failed to end encounter: %v", err)
	}
	fmt.Printf("%d runes remain after the encounter\n", svc.Ledger().Len())
}

// newRepository connects to Redis when configured, falling back to memory
func newRepository(ctx context.Context, cfg *config.Config) (etchings.Repository, func()) {
	if cfg.Redis.URL == "" {
		log.Println("No REDIS_URL found, using in-memory etchings")
		return etchings.NewInMemoryRepository(), func() {}
	}

	log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory etchings")
		return etchings.NewInMemoryRepository(), func() {}
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		log.Printf("Failed to connect to Redis: %v", pingErr)
		log.Println("Falling back to in-memory etchings")
		_ = client.Close()
		return etchings.NewInMemoryRepository(), func() {}
	}
	log.Println("Successfully connected to Redis")

	return etchings.NewRedis(client), func() {
		if err := client.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}
}

func newEncounter() (enc *combat.Encounter, smith, fighter *combat.Creature) {
	enc = combat.NewEncounter("runesim", events.NewBus())

	smith = combat.NewCreature("smith", "Runesmith", 1, combat.FactionParty)
	smith.HP, smith.MaxHP, smith.ClassDC = 16, 16, 17
	smith.Position = combat.Position{X: 0, Y: 0}

	fighter = combat.NewCreature("fighter", "Fighter", 1, combat.FactionParty)
	fighter.HP, fighter.MaxHP = 20, 20
	fighter.Position = combat.Position{X: 3, Y: 1}
	fighter.GiveItem(&combat.Item{ID: "longsword", Name: "Longsword", Kind: combat.ItemWeapon, Hands: 1, DamageType: "slashing"})

	goblin := combat.NewCreature("goblin", "Goblin", 1, combat.FactionEnemies)
	goblin.HP, goblin.MaxHP = 12, 12
	goblin.Saves[combat.Fortitude] = 3
	goblin.Position = combat.Position{X: 4, Y: 1}

	warrior := combat.NewCreature("warrior", "Goblin Warrior", 1, combat.FactionEnemies)
	warrior.HP, warrior.MaxHP = 15, 15
	warrior.Saves[combat.Fortitude] = 5
	warrior.Position = combat.Position{X: 5, Y: 3}

	for _, c := range []*combat.Creature{smith, fighter, goblin, warrior} {
		enc.AddCreature(c)
	}
	return enc, smith, fighter
}

// seedLoadout stores a starting loadout the first time the smith is simulated
func seedLoadout(ctx context.Context, repo etchings.Repository, smith, fighter *combat.Creature) error {
	_, err := repo.Get(ctx, smith.ID)
	if err == nil {
		return nil
	}
	if !dnderr.IsNotFound(err) {
		return err
	}
	return repo.Save(ctx, &etchings.Loadout{
		CasterID: smith.ID,
		Etchings: []etchings.Etching{
			{RuneKey: runesmith.KeyEsvadir, TargetID: fighter.ID, ItemID: "longsword"},
		},
	})
}

func printRunes(svc runesvc.Service, enc *combat.Encounter) {
	for _, c := range enc.Creatures() {
		for _, d := range svc.InstancesOn(c.ID) {
			fmt.Printf("  %s bears %s (%s)\n", c.Name, d.DisplayName, d.Medium)
		}
	}
}
