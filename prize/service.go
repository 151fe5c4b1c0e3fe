package prize

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Showichiro/gacha-machine-flutter-kaigi-2025/storage"
)

// storageKey is the single logical key the prize collection persists under.
const storageKey = "prizes"

// Service owns the canonical prize collection. Every mutation writes the
// full collection through to the store before returning; the in-memory
// collection stays authoritative for the session even when a write fails.
type Service struct {
	mu     sync.RWMutex
	prizes []Prize
	store  storage.Store
	rng    *rand.Rand
	log    zerolog.Logger
}

func NewService(store storage.Store, logger zerolog.Logger) *Service {
	return &Service{
		store: store,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		log:   logger,
	}
}

// WithRand replaces the draw random source, for deterministic draws in
// tests. Returns the service for chaining.
func (s *Service) WithRand(r *rand.Rand) *Service {
	s.rng = r
	return s
}

// Prizes returns a copy of the current collection in insertion order.
func (s *Service) Prizes() []Prize {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Prize, len(s.prizes))
	copy(out, s.prizes)
	return out
}

// Replace swaps in a new canonical collection without persisting. Used by
// the initializer to seed validated records at boot.
func (s *Service) Replace(prizes []Prize) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prizes = make([]Prize, len(prizes))
	copy(s.prizes, prizes)
}

// Load replaces the collection with whatever the store holds, or an empty
// collection when the key is absent or unreadable.
func (s *Service) Load() {
	var saved []Prize
	found, err := s.store.Get(storageKey, &saved)
	if err != nil || !found {
		saved = nil
	}
	s.Replace(saved)
}

// Add enriches the request with an ID and creation timestamp, appends it
// and persists. The request is taken as given; validation happens in the
// caller layer. Returns the stored record even when persistence fails.
func (s *Service) Add(req AddRequest) (Prize, error) {
	p := Prize{
		ID:          uuid.NewString(),
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		CreatedAt:   time.Now().UnixMilli(),
		Description: req.Description,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prizes = append(s.prizes, p)
	return p, s.persistLocked()
}

// Update applies the non-nil fields of the patch to the matching prize.
// Returns ErrPrizeNotFound when the ID is absent.
func (s *Service) Update(req UpdateRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(req.ID)
	if idx < 0 {
		return ErrPrizeNotFound
	}
	p := &s.prizes[idx]
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	return s.persistLocked()
}

// Delete removes the prize with the given ID.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return ErrPrizeNotFound
	}
	s.prizes = append(s.prizes[:idx], s.prizes[idx+1:]...)
	return s.persistLocked()
}

// Draw picks one prize uniformly at random among those with stock, or nil
// when nothing is in stock. Empty stock is an expected state, not an
// error. Stock only gates eligibility: the pick is NOT weighted by stock,
// even though the displayed percentages are. That mismatch is the intended
// mechanic, not a bug.
func (s *Service) Draw() *Prize {
	s.mu.Lock()
	defer s.mu.Unlock()

	available := make([]int, 0, len(s.prizes))
	for i, p := range s.prizes {
		if p.Stock > 0 {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		return nil
	}
	picked := s.prizes[available[s.rng.Intn(len(available))]]
	return &picked
}

// DecrementStock lowers the prize's stock by one, clamped at zero, and
// persists.
func (s *Service) DecrementStock(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return ErrPrizeNotFound
	}
	if s.prizes[idx].Stock > 0 {
		s.prizes[idx].Stock--
	}
	return s.persistLocked()
}

func (s *Service) indexLocked(id string) int {
	for i, p := range s.prizes {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// persistLocked writes the full collection through the store. Caller must
// hold s.mu. A failed write is surfaced but the in-memory state is kept.
func (s *Service) persistLocked() error {
	if err := s.store.Set(storageKey, s.prizes); err != nil {
		s.log.Error().Err(err).Msg("persisting prizes failed; in-memory state retained")
		return &StorageError{Op: "set", Err: err}
	}
	return nil
}
