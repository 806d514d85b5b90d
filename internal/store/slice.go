package store

import (
	"sync"

	"dario.cat/mergo"
)

// Identifiable is satisfied by every domain entity; the canonical id is the
// only thing a slice needs to know about its element type.
type Identifiable interface {
	GetID() string
}

// Slice is an in-memory mirror of one backend entity collection. It accepts
// only server-confirmed state: ReplaceAll after a refetch, InsertOne after a
// confirmed create, PatchOne/RemoveOne after a confirmed mutation. Slice
// methods never perform I/O.
//
// Mutations are applied in the order their confirming responses arrive. When
// two mutating calls for the same record are in flight at once, the last
// response to arrive wins; the client does not reorder.
type Slice[T Identifiable] struct {
	mu    sync.RWMutex
	items []T
}

// NewSlice returns an empty slice. The backing list starts empty, not nil,
// so "no records" and "not yet loaded" render the same way and consumers
// never need a nil check.
func NewSlice[T Identifiable]() *Slice[T] {
	return &Slice[T]{items: make([]T, 0)}
}

// ReplaceAll overwrites the whole collection with a server-confirmed list.
// A nil argument stores an empty list.
func (s *Slice[T]) ReplaceAll(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]T, len(items))
	copy(s.items, items)
}

// InsertOne prepends a single server-confirmed created record, so the
// newest record shows first in list views.
func (s *Slice[T]) InsertOne(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]T{item}, s.items...)
}

// PatchOne shallow-merges the non-zero fields of patch into the record with
// the given id. Missing id is a silent no-op: out-of-order or duplicate
// dispatches must not crash the view. Reports whether a record was patched.
func (s *Slice[T]) PatchOne(id string, patch T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].GetID() != id {
			continue
		}
		if err := mergo.Merge(&s.items[i], patch, mergo.WithOverride); err != nil {
			return false
		}
		return true
	}

	return false
}

// RemoveOne drops the record with the given id. Missing id is a silent
// no-op. Reports whether a record was removed.
func (s *Slice[T]) RemoveOne(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].GetID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}

	return false
}

// All returns a copy of the collection in display order.
func (s *Slice[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the record with the given id.
func (s *Slice[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].GetID() == id {
			return s.items[i], true
		}
	}

	var zero T
	return zero, false
}

// Len returns the number of records currently held.
func (s *Slice[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
