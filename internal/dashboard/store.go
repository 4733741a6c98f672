package dashboard

import "sync"

// Snapshot is a point-in-time copy of a store's state.
type Snapshot[T any] struct {
	Items   []T
	Err     error
	Loading bool
}

// Store is an in-memory cache of one resource list. Writers replace the whole
// list; readers get copies. When concurrent fetches interleave, whichever
// response lands last is the state the store keeps.
type Store[T any] struct {
	mu      sync.RWMutex
	items   []T
	err     error
	loading bool

	nextSub int
	subs    map[int]chan struct{}
}

// NewStore returns an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{subs: make(map[int]chan struct{})}
}

// Snapshot returns a copy of the current items together with the error and
// loading flags.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	return Snapshot[T]{Items: items, Err: s.err, Loading: s.loading}
}

// SetLoading toggles the loading flag.
func (s *Store[T]) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.notifyLocked()
	s.mu.Unlock()
}

// Replace installs a fresh item list and clears any previous error.
func (s *Store[T]) Replace(items []T) {
	s.mu.Lock()
	s.items = items
	s.err = nil
	s.loading = false
	s.notifyLocked()
	s.mu.Unlock()
}

// Fail records a fetch error. The previously cached items stay visible.
func (s *Store[T]) Fail(err error) {
	s.mu.Lock()
	s.err = err
	s.loading = false
	s.notifyLocked()
	s.mu.Unlock()
}

// Subscribe registers for change notifications. The returned function
// unsubscribes; the channel is signalled, never closed, on each change.
func (s *Store[T]) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store[T]) notifyLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
