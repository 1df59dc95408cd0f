package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/volley/internal/domain/model"
	"github.com/okian/volley/internal/domain/rating"
	"github.com/okian/volley/pkg/metrics"
)

// MemoryStore implements Store with an in-memory map.
type MemoryStore struct {
	mu       sync.RWMutex
	players  map[string]*model.Player
	baseline float64
}

// NewMemoryStore creates an empty in-memory player registry.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		players:  make(map[string]*model.Player),
		baseline: rating.DefaultBaseline,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a player with the baseline rating.
func (s *MemoryStore) Register(ctx context.Context, name string) (model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := &model.Player{
		ID:        uuid.New().String(),
		Name:      name,
		Rating:    s.baseline,
		CreatedAt: time.Now().UTC(),
	}
	s.players[p.ID] = p
	metrics.UpdatePlayerCount(len(s.players))
	return *p, nil
}

// Get returns the player for id.
func (s *MemoryStore) Get(ctx context.Context, id string) (model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return model.Player{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return *p, nil
}

// Rename updates the display name only.
func (s *MemoryStore) Rename(ctx context.Context, id, name string) (model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return model.Player{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	p.Name = name
	return *p, nil
}

// Remove deletes the player record.
func (s *MemoryStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.players, id)
	metrics.UpdatePlayerCount(len(s.players))
	return nil
}

// List returns all players sorted by name, then id.
func (s *MemoryStore) List(ctx context.Context) []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// SetRating overwrites the player's current rating.
func (s *MemoryStore) SetRating(ctx context.Context, id string, ratingValue float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	p.Rating = ratingValue
	return nil
}

// Count returns the number of registered players.
func (s *MemoryStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}
