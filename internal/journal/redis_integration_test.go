//go:build integration
// +build integration

package journal_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
	"github.com/inferenco/cedra-randomness-demos/internal/journal"
	"github.com/inferenco/cedra-randomness-demos/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)

	repo, err := journal.NewRedis(&journal.RedisConfig{Client: client})
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("append and retrieve", func(t *testing.T) {
		entry := &journal.Entry{
			ID:        "outcome-1",
			Operation: "roll",
			Source:    "chain",
			Value:     json.RawMessage(`5`),
			TxHash:    "0x9f2c4e",
		}
		require.NoError(t, repo.Append(ctx, entry))
		assert.False(t, entry.CreatedAt.IsZero())

		got, err := repo.Get(ctx, "outcome-1")
		require.NoError(t, err)
		assert.Equal(t, "roll", got.Operation)
		assert.Equal(t, "0x9f2c4e", got.TxHash)
		assert.JSONEq(t, `5`, string(got.Value))
	})

	t.Run("recent is newest first", func(t *testing.T) {
		require.NoError(t, repo.Append(ctx, &journal.Entry{ID: "outcome-2", Operation: "flip"}))
		require.NoError(t, repo.Append(ctx, &journal.Entry{ID: "outcome-3", Operation: "deal_hand"}))

		entries, err := repo.ListRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "outcome-3", entries[0].ID)
		assert.Equal(t, "outcome-2", entries[1].ID)
	})

	t.Run("missing entry", func(t *testing.T) {
		_, err := repo.Get(ctx, "nope")
		assert.True(t, dnderr.IsNotFound(err))
	})
}
