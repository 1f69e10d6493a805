// Package state holds the client-side copies of the remote collections.
package state

import (
	"reflect"
	"slices"
	"sync"

	"invoicedesk/internal/domain/entity"
)

// Op names the mutation a Change reports.
type Op int

const (
	// OpReplace means the whole collection was swapped for a fresh fetch.
	OpReplace Op = iota
	// OpPatch means one element was replaced in place.
	OpPatch
	// OpAppend means a patch found no match and appended the record.
	OpAppend
)

// String returns the string representation of the Op.
func (o Op) String() string {
	switch o {
	case OpReplace:
		return "replace"
	case OpPatch:
		return "patch"
	case OpAppend:
		return "append"
	default:
		return "unknown"
	}
}

// Change describes one applied mutation.
type Change struct {
	Kind  entity.Kind
	Op    Op
	Index int // element touched by a patch or append; -1 for a replace
	Len   int // collection length after the mutation
}

// Listener is called after a mutation has been applied, outside the store lock.
type Listener func(Change)

// Store is the last fetched collection of one kind. It is only mutated
// through Replace and PatchByKey.
type Store[T ~map[string]any] struct {
	kind entity.Kind

	mu        sync.RWMutex
	items     []T
	version   uint64
	listeners map[int]Listener
	nextID    int
}

// NewStore creates an empty store for kind.
func NewStore[T ~map[string]any](kind entity.Kind) *Store[T] {
	return &Store[T]{
		kind:      kind,
		listeners: make(map[int]Listener),
	}
}

// Kind returns the collection the store holds.
func (s *Store[T]) Kind() entity.Kind {
	return s.kind
}

// Replace makes the store hold exactly items, in order. Nothing from the
// previous contents is kept.
func (s *Store[T]) Replace(items []T) Change {
	s.mu.Lock()
	s.items = slices.Clone(items)
	if s.items == nil {
		s.items = []T{}
	}
	s.version++
	change := Change{Kind: s.kind, Op: OpReplace, Index: -1, Len: len(s.items)}
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, change)

	return change
}

// PatchByKey replaces the first element whose identity matches item's, at
// its current position. When nothing matches, the kind's MissingKeyPolicy
// decides between dropping the patch and appending item. The boolean reports
// whether the contents changed.
func (s *Store[T]) PatchByKey(item T) (Change, bool) {
	key := s.kind.IdentityOf(entity.Record(item))

	s.mu.Lock()
	index := -1
	if key != "" {
		index = slices.IndexFunc(s.items, func(existing T) bool {
			return s.kind.IdentityOf(entity.Record(existing)) == key
		})
	}

	var change Change
	switch {
	case index >= 0:
		if reflect.DeepEqual(s.items[index], item) {
			change = Change{Kind: s.kind, Op: OpPatch, Index: index, Len: len(s.items)}
			s.mu.Unlock()

			return change, false
		}
		s.items[index] = item
		change = Change{Kind: s.kind, Op: OpPatch, Index: index, Len: len(s.items)}
	case s.kind.MissingKeyPolicy() == entity.MissingKeyAppend:
		s.items = append(s.items, item)
		change = Change{Kind: s.kind, Op: OpAppend, Index: len(s.items) - 1, Len: len(s.items)}
	default:
		change = Change{Kind: s.kind, Op: OpPatch, Index: -1, Len: len(s.items)}
		s.mu.Unlock()

		return change, false
	}
	s.version++
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, change)

	return change, true
}

// Snapshot returns a copy of the current sequence. Elements are shared and
// must be treated as read-only; edits go through Record.With.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.items)
}

// Find returns the element carrying identity and its position.
func (s *Store[T]) Find(identity string) (T, int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, item := range s.items {
		if identity != "" && s.kind.IdentityOf(entity.Record(item)) == identity {
			return item, i, true
		}
	}

	var zero T

	return zero, -1, false
}

// Len returns the number of elements.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Version increases on every applied mutation.
func (s *Store[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Subscribe registers l for every future mutation and returns a function
// that removes it.
func (s *Store[T]) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store[T]) listenersLocked() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		out = append(out, l)
	}

	return out
}

func notify(listeners []Listener, change Change) {
	for _, l := range listeners {
		l(change)
	}
}
