package etchings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const castersKey = "etchings:casters"

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// RedisConfig holds the redis repository's dependencies
type RedisConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

// NewRedisRepository creates a redis-backed loadout repository
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, dnderr.InvalidArgument("redis client is required")
	}

	repo := &redisRepo{
		client:       cfg.Client,
		timeProvider: cfg.TimeProvider,
	}
	if repo.timeProvider == nil {
		repo.timeProvider = RealTimeProvider{}
	}
	return repo, nil
}

// NewRedis creates a redis-backed loadout repository with the wall clock
func NewRedis(client redis.UniversalClient) Repository {
	repo, err := NewRedisRepository(&RedisConfig{Client: client})
	if err != nil {
		// Only a nil client gets here
		panic(err)
	}
	return repo
}

func loadoutKey(casterID string) string {
	return fmt.Sprintf("etchings:%s", casterID)
}

func (r *redisRepo) Save(ctx context.Context, loadout *Loadout) error {
	if loadout == nil {
		return dnderr.InvalidArgument("loadout cannot be nil")
	}
	if loadout.CasterID == "" {
		return dnderr.InvalidArgument("loadout caster id is required")
	}

	loadout.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(loadout)
	if err != nil {
		return fmt.Errorf("failed to marshal loadout: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, loadoutKey(loadout.CasterID), string(jsonData), 0)
	pipe.SAdd(ctx, castersKey, loadout.CasterID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save loadout in Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, casterID string) (*Loadout, error) {
	if casterID == "" {
		return nil, dnderr.InvalidArgument("caster id is required")
	}

	jsonData, err := r.client.Get(ctx, loadoutKey(casterID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("loadout for %s not found", casterID)
		}
		return nil, fmt.Errorf("failed to get loadout from Redis: %w", err)
	}

	var loadout Loadout
	if err := json.Unmarshal(jsonData, &loadout); err != nil {
		return nil, fmt.Errorf("failed to unmarshal loadout: %w", err)
	}

	return &loadout, nil
}

func (r *redisRepo) GetMany(ctx context.Context, casterIDs []string) ([]*Loadout, error) {
	found := make([]*Loadout, len(casterIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range casterIDs {
		g.Go(func() error {
			loadout, err := r.Get(ctx, id)
			if err != nil {
				if dnderr.IsNotFound(err) {
					return nil
				}
				return fmt.Errorf("failed to get loadout %s: %w", id, err)
			}
			found[i] = loadout
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return compact(found), nil
}

func (r *redisRepo) Delete(ctx context.Context, casterID string) error {
	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, loadoutKey(casterID))
	pipe.SRem(ctx, castersKey, casterID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete loadout from Redis: %w", err)
	}

	if del.Val() == 0 {
		return dnderr.NotFoundf("loadout for %s not found", casterID)
	}
	return nil
}

func (r *redisRepo) ListCasters(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, castersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list casters from Redis: %w", err)
	}
	return ids, nil
}

func compact(loadouts []*Loadout) []*Loadout {
	out := make([]*Loadout, 0, len(loadouts))
	for _, l := range loadouts {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}
