package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/runesmith/internal/repositories/etchings"
)

func main() {
	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo := etchings.NewRedis(client)

	casters, err := repo.ListCasters(ctx)
	if err != nil {
		log.Fatalf("Failed to list casters: %v", err)
	}

	loadouts, err := repo.GetMany(ctx, casters)
	if err != nil {
		log.Fatalf("Failed to load etchings: %v", err)
	}

	fmt.Printf("Found %d loadouts:\n", len(loadouts))
	for _, loadout := range loadouts {
		fmt.Printf("  %s (updated %s):\n", loadout.CasterID, loadout.UpdatedAt.Format("2006-01-02 15:04"))
		for _, e := range loadout.Etchings {
			if e.ItemID != "" {
				fmt.Printf("    %s on %s's %s\n", e.RuneKey, e.TargetID, e.ItemID)
				continue
			}
			fmt.Printf("    %s on %s\n", e.RuneKey, e.TargetID)
		}
	}

	// Casters indexed without a stored loadout
	if missing := len(casters) - len(loadouts); missing > 0 {
		fmt.Printf("\n%d casters have no loadout stored\n", missing)
	}
}
