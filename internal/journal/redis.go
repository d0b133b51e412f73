package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
)

const recentKey = "outcomes:recent"

func entryKey(id string) string {
	return fmt.Sprintf("outcome:%s", id)
}

type redisRepo struct {
	client           redis.UniversalClient
	timeProvider     TimeProvider
	fetchConcurrency int
}

// RedisConfig holds configuration for the Redis journal
type RedisConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider // Optional - defaults to the wall clock
	// FetchConcurrency caps parallel GETs in ListRecent. Zero means unbounded.
	FetchConcurrency int
}

// NewRedis creates a Redis-backed journal
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, dnderr.InvalidArgumentf("redis client is required")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = RealTimeProvider{}
	}

	return &redisRepo{
		client:           cfg.Client,
		timeProvider:     timeProvider,
		fetchConcurrency: cfg.FetchConcurrency,
	}, nil
}

func (r *redisRepo) Append(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return dnderr.InvalidArgumentf("entry cannot be nil")
	}
	if entry.ID == "" {
		return dnderr.InvalidArgumentf("entry ID cannot be empty")
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.timeProvider.Now()
	}

	jsonData, err := json.Marshal(entry)
	if err != nil {
		return dnderr.Wrapf(err, "failed to marshal outcome %s", entry.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, entryKey(entry.ID), string(jsonData), 0)
	pipe.LPush(ctx, recentKey, entry.ID)
	trimmed := pipe.LRange(ctx, recentKey, MaxRecent, -1)
	pipe.LTrim(ctx, recentKey, 0, MaxRecent-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to append outcome to Redis").
			WithMeta("id", entry.ID)
	}

	// entries that fell off the index are unreachable from ListRecent
	if ids := trimmed.Val(); len(ids) > 0 {
		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = entryKey(id)
		}
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			log.Printf("Failed to delete %d trimmed outcomes: %v", len(keys), err)
		}
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*Entry, error) {
	if id == "" {
		return nil, dnderr.InvalidArgumentf("id cannot be empty")
	}

	jsonData, err := r.client.Get(ctx, entryKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("outcome not found: %s", id)
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get outcome from Redis").
			WithMeta("id", id)
	}

	var entry Entry
	if err := json.Unmarshal(jsonData, &entry); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeParse, "failed to unmarshal outcome").
			WithMeta("id", id)
	}

	return &entry, nil
}

func (r *redisRepo) ListRecent(ctx context.Context, limit int) ([]*Entry, error) {
	if limit < 1 {
		limit = DefaultListLimit
	}

	ids, err := r.client.LRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to read recent outcomes")
	}

	fetched := make([]*Entry, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	if r.fetchConcurrency > 0 {
		g.SetLimit(r.fetchConcurrency)
	}
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			entry, err := r.Get(gctx, id)
			if err != nil {
				// the index can briefly outlive a deleted entry
				if dnderr.IsNotFound(err) {
					return nil
				}
				return fmt.Errorf("failed to get outcome %s: %w", id, err)
			}
			fetched[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0, len(fetched))
	for _, entry := range fetched {
		if entry != nil {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
