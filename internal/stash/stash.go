// Package stash passes the selected professional from the search page to the
// booking page without a second backend round trip, keyed by the anonymous
// browser cookie.
package stash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Max-glbt/Medi4ll/internal/models"
)

const selectionTTL = 30 * time.Minute

var ErrNoSelection = errors.New("stash: no professional selected")

type Store struct {
	redis *redis.Client
}

func NewStore(client *redis.Client) *Store {
	if client == nil {
		panic("stash: redis client cannot be nil")
	}
	return &Store{redis: client}
}

// Connect parses a redis URL and verifies the server answers.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (s *Store) SaveSelection(ctx context.Context, browserID string, p models.Professional) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("stash: marshal selection: %w", err)
	}
	if err := s.redis.Set(ctx, selectionKey(browserID), data, selectionTTL).Err(); err != nil {
		return fmt.Errorf("stash: persist selection: %w", err)
	}
	return nil
}

func (s *Store) LoadSelection(ctx context.Context, browserID string) (*models.Professional, error) {
	data, err := s.redis.Get(ctx, selectionKey(browserID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoSelection
		}
		return nil, fmt.Errorf("stash: load selection: %w", err)
	}
	var p models.Professional
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("stash: decode selection: %w", err)
	}
	return &p, nil
}

func (s *Store) ClearSelection(ctx context.Context, browserID string) error {
	if err := s.redis.Del(ctx, selectionKey(browserID)).Err(); err != nil {
		return fmt.Errorf("stash: clear selection: %w", err)
	}
	return nil
}

func selectionKey(browserID string) string {
	return fmt.Sprintf("selection:%s", browserID)
}
