// Package journal records every outcome the randomness provider hands out so
// results can be audited after a demo exits.
package journal

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/inferenco/cedra-randomness-demos/internal/journal Repository,TimeProvider

import (
	"context"
	"encoding/json"
	"time"
)

const (
	// MaxRecent is how many outcome IDs the recent index keeps
	MaxRecent = 1000

	// DefaultListLimit is used when ListRecent is called with a limit below 1
	DefaultListLimit = 20
)

// Entry is one recorded outcome
type Entry struct {
	ID        string          `json:"id"`
	Operation string          `json:"operation"`
	Source    string          `json:"source"`
	Value     json.RawMessage `json:"value"`
	TxHash    string          `json:"tx_hash,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Repository defines the interface for outcome storage operations
type Repository interface {
	// Append stores an entry and puts it at the head of the recent index.
	// A zero CreatedAt is filled from the repository's time provider.
	Append(ctx context.Context, entry *Entry) error
	Get(ctx context.Context, id string) (*Entry, error)
	// ListRecent returns up to limit entries, newest first
	ListRecent(ctx context.Context, limit int) ([]*Entry, error)
}

type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the wall clock in UTC
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
