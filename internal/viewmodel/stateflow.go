package viewmodel

import (
	"slices"
	"sync"
)

// StateFlow holds the current state of a view-model and fans out every
// transition to subscribers in the order it happened.
//
// Subscribers run synchronously on the goroutine that changed the state and
// must not call Set or Update on the same flow.
type StateFlow[S any] struct {
	mu     sync.RWMutex
	value  S
	subs   map[int]func(S)
	nextID int

	// emitMu serialises delivery so subscribers see transitions in order even
	// when two goroutines change the state at once.
	emitMu sync.Mutex
}

func NewStateFlow[S any](initial S) *StateFlow[S] {
	return &StateFlow[S]{value: initial, subs: make(map[int]func(S))}
}

// Value returns the current state.
func (f *StateFlow[S]) Value() S {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// Subscribe registers fn and immediately delivers the current state to it.
// The returned function removes the subscription.
func (f *StateFlow[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	f.emitMu.Lock()
	defer f.emitMu.Unlock()

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	current := f.value
	f.mu.Unlock()

	fn(current)
	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

// Set replaces the state.
func (f *StateFlow[S]) Set(v S) {
	f.Update(func(S) S { return v })
}

// Update applies fn to the current state atomically and publishes the result.
func (f *StateFlow[S]) Update(fn func(S) S) S {
	f.emitMu.Lock()
	defer f.emitMu.Unlock()

	f.mu.Lock()
	next := fn(f.value)
	f.value = next
	ids := make([]int, 0, len(f.subs))
	for id := range f.subs {
		ids = append(ids, id)
	}
	subs := make([]func(S), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		subs = append(subs, f.subs[id])
	}
	f.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}
