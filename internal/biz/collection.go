package biz

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-kratos/kratos/v2/log"
)

// CollectionStore persists named, JSON-encoded collections of T on top of a KVStore.
//
// Every mutation is a read-modify-write of the whole collection. Cycles
// against the same key are serialized within the process, so two in-flight
// adds can no longer drop each other's write. Writers in other processes
// sharing the backend are not coordinated.
type CollectionStore[T any] struct {
	kv    KVStore
	locks *keyLocks
	log   *log.Helper
}

// NewCollectionStore creates a collection store over kv.
func NewCollectionStore[T any](kv KVStore, logger log.Logger) *CollectionStore[T] {
	return &CollectionStore[T]{
		kv:    kv,
		locks: newKeyLocks(),
		log:   log.NewHelper(logger),
	}
}

// Get returns the collection stored under key. An absent key is an empty
// collection. On failure the returned slice is empty and the error is set.
func (s *CollectionStore[T]) Get(ctx context.Context, key string) ([]T, error) {
	items, err := s.read(ctx, key)
	if err != nil {
		s.log.Errorf("failed to load collection %q: %v", key, err)
		return []T{}, err
	}
	return items, nil
}

// Replace overwrites the collection under key with items.
func (s *CollectionStore[T]) Replace(ctx context.Context, key string, items []T) error {
	unlock := s.locks.lock(key)
	defer unlock()

	return s.write(ctx, key, items)
}

// Update runs one serialized read-modify-write cycle. When fn returns an
// error nothing is written. A failed read is never turned into a write.
func (s *CollectionStore[T]) Update(ctx context.Context, key string, fn func(items []T) ([]T, error)) error {
	unlock := s.locks.lock(key)
	defer unlock()

	items, err := s.read(ctx, key)
	if err != nil {
		s.log.Errorf("failed to load collection %q for update: %v", key, err)
		return err
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}

	return s.write(ctx, key, updated)
}

// Add appends item to the collection.
func (s *CollectionStore[T]) Add(ctx context.Context, key string, item T) error {
	return s.Update(ctx, key, func(items []T) ([]T, error) {
		return append(items, item), nil
	})
}

// Prepend inserts item at the head of the collection.
func (s *CollectionStore[T]) Prepend(ctx context.Context, key string, item T) error {
	return s.Update(ctx, key, func(items []T) ([]T, error) {
		return append([]T{item}, items...), nil
	})
}

// Remove drops every entry matching pred and reports how many were dropped.
func (s *CollectionStore[T]) Remove(ctx context.Context, key string, pred func(T) bool) (int, error) {
	removed := 0
	err := s.Update(ctx, key, func(items []T) ([]T, error) {
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if pred(item) {
				removed++
				continue
			}
			kept = append(kept, item)
		}
		return kept, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Clear deletes the whole collection.
func (s *CollectionStore[T]) Clear(ctx context.Context, key string) error {
	unlock := s.locks.lock(key)
	defer unlock()

	if err := s.kv.Delete(ctx, key); err != nil {
		s.log.Errorf("failed to clear collection %q: %v", key, err)
		return fmt.Errorf("failed to clear collection %q: %w", key, err)
	}
	return nil
}

func (s *CollectionStore[T]) read(ctx context.Context, key string) ([]T, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %q: %w", key, err)
	}
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: key %q: %v", ErrCorruptCollection, key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *CollectionStore[T]) write(ctx context.Context, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", key, err)
	}

	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		s.log.Errorf("failed to write collection %q: %v", key, err)
		return fmt.Errorf("failed to write collection %q: %w", key, err)
	}
	return nil
}

// keyLocks hands out one mutex per key and forgets it once nobody holds it.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*keyLock)}
}

func (l *keyLocks) lock(key string) func() {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	kl.mu.Lock()

	return func() {
		kl.mu.Unlock()

		l.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}
