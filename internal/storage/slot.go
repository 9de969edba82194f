package storage

import (
	"sync"

	"github.com/manav03panchal/studinest/internal/logging"
)

// Slot is sticky state: an in-memory value kept in sync with one store
// slice. The in-memory value is the source of truth between writes.
//
// A write the medium rejects is logged and remembered in LastWriteErr but
// not returned; the value stays updated in memory and is lost on reload.
type Slot[T any] struct {
	mu      sync.RWMutex
	store   *Store
	slice   string
	def     T
	value   T
	lastErr error
}

// NewSlot loads slice from store, falling back to def, and writes the
// loaded value back once.
func NewSlot[T any](store *Store, slice string, def T) *Slot[T] {
	s := &Slot[T]{
		store: store,
		slice: slice,
		def:   def,
	}
	s.value = Load(store, slice, def)
	s.write()
	return s
}

// Key returns the medium key backing the slot.
func (s *Slot[T]) Key() string {
	return s.store.Key(s.slice)
}

// Get returns the current value.
func (s *Slot[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value and writes it through.
func (s *Slot[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	s.write()
}

// Update replaces the value with fn(current) and writes it through.
// fn must not modify its argument in place.
func (s *Slot[T]) Update(fn func(T) T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = fn(s.value)
	s.write()
}

// Reload re-reads the slice from the store without writing. Used when
// another process changed the medium.
func (s *Slot[T]) Reload() {
	v := Load(s.store, s.slice, s.def)
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
}

// LastWriteErr returns the error of the most recent write, if any.
func (s *Slot[T]) LastWriteErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// write must be called with mu held.
func (s *Slot[T]) write() {
	s.lastErr = s.store.Write(s.slice, s.value)
	if s.lastErr != nil {
		logging.Warn("change kept in memory only", logging.KeyStoreKey, s.Key(), logging.KeyError, s.lastErr)
	}
}
