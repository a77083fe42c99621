// Package store implements the persisted collection shared by the cart,
// catalog, order and message stores: one durable slot per collection,
// loaded once, written through on every mutation.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	deliverycontext "biaresh/internal/delivery/context"
	"biaresh/internal/domain/repository"
	"biaresh/internal/errors"
)

// Options configures a Store
type Options[T any, K comparable] struct {
	// Key is the durable slot name
	Key string

	// Identity extracts the record key used by Get, Update and Remove
	Identity func(T) K

	// Seed returns the collection used when the slot is absent. Nil seeds an
	// empty collection.
	Seed func() []T

	// Clone deep-copies a record. Records go through it on the way in and on
	// the way out, so callers never share maps or slices with the store. Nil
	// copies by plain assignment.
	Clone func(T) T
}

// Store holds one collection of T in memory and mirrors it to a single slot.
//
// The mutex only serialises callers inside this process. Two processes (or
// two Store values) sharing a slot still overwrite each other: the last
// write wins and nothing is merged.
type Store[T any, K comparable] struct {
	repo     repository.SlotRepository
	logger   *slog.Logger
	key      string
	identity func(T) K
	seed     func() []T
	clone    func(T) T

	mu     sync.Mutex
	loaded bool
	items  []T
}

// New creates a store; nothing is read until the first access or Load.
func New[T any, K comparable](repo repository.SlotRepository, logger *slog.Logger, opts Options[T, K]) *Store[T, K] {
	seed := opts.Seed
	if seed == nil {
		seed = func() []T { return []T{} }
	}
	clone := opts.Clone
	if clone == nil {
		clone = func(item T) T { return item }
	}

	return &Store[T, K]{
		repo:     repo,
		logger:   logger,
		key:      opts.Key,
		identity: opts.Identity,
		seed:     seed,
		clone:    clone,
	}
}

// Key returns the durable slot name
func (s *Store[T, K]) Key() string {
	return s.key
}

// Load (re)reads the slot and replaces the in-memory collection.
//
// An absent slot is seeded and the seed written straight back, so the next
// Load sees the same data. Unreadable or malformed data is logged and the
// seed is used in memory only; the slot is left untouched for inspection.
func (s *Store[T, K]) Load(ctx context.Context) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx)

	return s.copyItems(s.items)
}

// Items returns a copy of the collection, loading it first if needed
func (s *Store[T, K]) Items(ctx context.Context) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	return s.copyItems(s.items)
}

// Len returns the number of records
func (s *Store[T, K]) Len(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	return len(s.items)
}

// Get returns the record whose identity equals id
func (s *Store[T, K]) Get(ctx context.Context, id K) (T, bool) {
	return s.Find(ctx, func(item T) bool { return s.identity(item) == id })
}

// Find returns the first record matching match
func (s *Store[T, K]) Find(ctx context.Context, match func(T) bool) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	for _, item := range s.items {
		if match(item) {
			return s.clone(item), true
		}
	}

	var zero T

	return zero, false
}

// Filter returns every record matching match, in collection order
func (s *Store[T, K]) Filter(ctx context.Context, match func(T) bool) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if match(item) {
			out = append(out, s.clone(item))
		}
	}

	return out
}

// Mutate replaces the collection with transform(current) and writes it
// through before returning. A failed write is logged; the in-memory state
// keeps the new value regardless.
func (s *Store[T, K]) Mutate(ctx context.Context, transform func([]T) []T) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	next := transform(s.copyItems(s.items))
	if next == nil {
		next = []T{}
	}
	s.items = s.copyItems(next)
	s.persistLocked(ctx)

	return s.copyItems(s.items)
}

// Append adds item at the end
func (s *Store[T, K]) Append(ctx context.Context, item T) {
	s.Mutate(ctx, func(items []T) []T {
		return append(items, item)
	})
}

// Prepend adds item at the front
func (s *Store[T, K]) Prepend(ctx context.Context, item T) {
	s.Mutate(ctx, func(items []T) []T {
		return append([]T{item}, items...)
	})
}

// Update applies change to the record with identity id. It reports whether
// such a record existed; when it did not, nothing is written.
func (s *Store[T, K]) Update(ctx context.Context, id K, change func(T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	idx := s.indexLocked(id)
	if idx < 0 {
		var zero T

		return zero, false
	}

	next := slices.Clone(s.items)
	next[idx] = s.clone(change(s.clone(next[idx])))
	s.items = next
	s.persistLocked(ctx)

	return s.clone(next[idx]), true
}

// Remove deletes the record with identity id, reporting whether it existed.
func (s *Store[T, K]) Remove(ctx context.Context, id K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	idx := s.indexLocked(id)
	if idx < 0 {
		return false
	}

	s.items = slices.Delete(slices.Clone(s.items), idx, idx+1)
	s.persistLocked(ctx)

	return true
}

// Clear empties the collection and deletes the slot. The next Load cannot
// tell a cleared slot from one that was never written.
func (s *Store[T, K]) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []T{}
	s.loaded = true

	if err := s.repo.Delete(ctx, s.key); err != nil {
		s.log(ctx).Error("Failed to delete slot", slog.Any("error", err))
	}
}

func (s *Store[T, K]) copyItems(items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = s.clone(item)
	}

	return out
}

func (s *Store[T, K]) indexLocked(id K) int {
	return slices.IndexFunc(s.items, func(item T) bool { return s.identity(item) == id })
}

func (s *Store[T, K]) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loadLocked(ctx)
}

func (s *Store[T, K]) loadLocked(ctx context.Context) {
	s.loaded = true

	raw, err := s.repo.Get(ctx, s.key)
	if errors.Is(err, repository.ErrSlotNotFound) {
		s.items = s.seedItems()
		s.log(ctx).Debug("Slot absent, seeding", slog.Int("count", len(s.items)))
		s.persistLocked(ctx)

		return
	}
	if err != nil {
		s.log(ctx).Warn("Failed to read slot, using default", slog.Any("error", err))
		s.items = s.seedItems()

		return
	}

	items, err := decode[T](raw)
	if err != nil {
		s.log(ctx).Warn("Malformed slot, using default", slog.Any("error", err))
		s.items = s.seedItems()

		return
	}

	s.items = items
}

func (s *Store[T, K]) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.log(ctx).Error("Failed to encode slot", slog.Any("error", err))

		return
	}

	if err := s.repo.Set(ctx, s.key, raw); err != nil {
		s.log(ctx).Error("Failed to write slot", slog.Any("error", err))

		return
	}

	s.log(ctx).Debug("Slot written", slog.Int("count", len(s.items)), slog.Int("bytes", len(raw)))
}

func (s *Store[T, K]) seedItems() []T {
	items := s.seed()
	if items == nil {
		return []T{}
	}

	return s.copyItems(items)
}

func (s *Store[T, K]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("slot", s.key))
}

// decode accepts only a JSON array whose elements decode into T.
func decode[T any](raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.Errorf("expected JSON array, got %q", truncate(trimmed, 32))
	}

	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, errors.Wrap(err, "decode slot")
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}

	return string(b[:n]) + "..."
}
