// Package app wires configuration into the collaborators every demo binary
// shares.
package app

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inferenco/cedra-randomness-demos/internal/announce"
	"github.com/inferenco/cedra-randomness-demos/internal/bestiary"
	"github.com/inferenco/cedra-randomness-demos/internal/clients/cedra"
	"github.com/inferenco/cedra-randomness-demos/internal/clients/dnd5e"
	"github.com/inferenco/cedra-randomness-demos/internal/clients/indexer"
	"github.com/inferenco/cedra-randomness-demos/internal/config"
	"github.com/inferenco/cedra-randomness-demos/internal/demos"
	"github.com/inferenco/cedra-randomness-demos/internal/dice"
	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
	"github.com/inferenco/cedra-randomness-demos/internal/journal"
	"github.com/inferenco/cedra-randomness-demos/internal/poll"
	"github.com/inferenco/cedra-randomness-demos/internal/randomness"
	"github.com/inferenco/cedra-randomness-demos/internal/render"
)

const redisPingTimeout = 5 * time.Second

// Env is everything a demo binary needs
type Env struct {
	Config    *config.Config
	CLI       cedra.Client
	Indexer   indexer.Client
	Provider  *randomness.Provider
	Journal   journal.Repository
	Announcer announce.Announcer
	Bestiary  *bestiary.Bestiary
	Roller    dice.Roller

	redisClient *redis.Client
}

// Bootstrap builds an Env from cfg. Optional integrations that fail to come
// up are logged and replaced with local stand-ins.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Env, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgumentf("config is required")
	}

	env := &Env{
		Config: cfg,
		Roller: dice.NewRandomRoller(),
	}

	cli, err := cedra.New(&cedra.Config{
		Binary:  cfg.Cedra.Binary,
		Profile: cfg.Cedra.Profile,
	})
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to create Cedra CLI client")
	}
	env.CLI = cli

	idx, err := indexer.New(&indexer.Config{
		BaseURL: cfg.Cedra.IndexerURL,
		HttpClient: &http.Client{
			Timeout: cfg.Cedra.HTTPTimeout,
		},
	})
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to create indexer client")
	}
	env.Indexer = idx

	env.Journal, env.redisClient = openJournal(ctx, cfg.Redis.URL)

	policy := poll.DefaultPolicy()
	policy.Attempts = cfg.Cedra.PollAttempts
	policy.Delay = cfg.Cedra.PollDelay

	provider, err := randomness.NewProvider(ctx, &randomness.ProviderConfig{
		CLI:             cli,
		Indexer:         idx,
		Roller:          env.Roller,
		Journal:         env.Journal,
		Poll:            policy,
		ContractAddress: cfg.Cedra.ContractAddress,
		Module:          cfg.Cedra.Module,
	})
	if err != nil {
		env.Close()
		return nil, dnderr.Wrap(err, "failed to create randomness provider")
	}
	env.Provider = provider

	env.Announcer = newAnnouncer(cfg.Discord)
	env.Bestiary = newBestiary(cfg.DND5E)

	return env, nil
}

// Runner builds a demo runner on the given terminal
func (e *Env) Runner(in io.Reader, out io.Writer) (*demos.Runner, error) {
	return demos.New(&demos.Config{
		In:         in,
		Out:        out,
		Randomness: e.Provider,
		Animator:   render.NewAnimator(out),
		Roller:     e.Roller,
		Announcer:  e.Announcer,
		Bestiary:   e.Bestiary,
	})
}

// Close releases the Redis connection if one was opened
func (e *Env) Close() {
	if e == nil || e.redisClient == nil {
		return
	}
	if err := e.redisClient.Close(); err != nil {
		log.Printf("Error closing Redis connection: %v", err)
	}
	e.redisClient = nil
}

// openJournal connects to Redis when url is set and answers a ping, and
// falls back to an in-memory journal otherwise.
func openJournal(ctx context.Context, url string) (journal.Repository, *redis.Client) {
	if url == "" {
		return journal.NewInMemoryRepository(nil), nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory journal")
		return journal.NewInMemoryRepository(nil), nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory journal")
		_ = client.Close()
		return journal.NewInMemoryRepository(nil), nil
	}

	repo, err := journal.NewRedis(&journal.RedisConfig{Client: client})
	if err != nil {
		log.Printf("Failed to create Redis journal: %v", err)
		_ = client.Close()
		return journal.NewInMemoryRepository(nil), nil
	}

	return repo, client
}

func newAnnouncer(cfg config.DiscordConfig) announce.Announcer {
	if !cfg.AnnouncementsEnabled() {
		return announce.Noop{}
	}

	a, err := announce.NewDiscord(&announce.DiscordConfig{
		WebhookID: cfg.WebhookID,
		Token:     cfg.WebhookToken,
	})
	if err != nil {
		log.Printf("Failed to create Discord announcer: %v", err)
		return announce.Noop{}
	}
	return a
}

func newBestiary(cfg config.DND5EConfig) *bestiary.Bestiary {
	if !cfg.Enabled {
		return bestiary.New(nil)
	}

	client, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	})
	if err != nil {
		log.Printf("Failed to create D&D 5e client: %v", err)
		return bestiary.New(nil)
	}
	return bestiary.New(client)
}
