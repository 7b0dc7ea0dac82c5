package listing

import "sync"

// Store owns a State and notifies subscribers after every dispatch.
type Store[T any] struct {
	mu        sync.Mutex
	state     State[T]
	listeners map[int]func(State[T])
	nextID    int
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		state:     InitialState[T](),
		listeners: make(map[int]func(State[T])),
	}
}

// State returns a snapshot. The Items slice is a copy.
func (s *Store[T]) State() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.state)
}

func (s *Store[T]) Dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	state := snapshot(s.state)
	listeners := make([]func(State[T]), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

// Subscribe registers fn for change notifications and returns a function that
// removes it.
func (s *Store[T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func snapshot[T any](st State[T]) State[T] {
	st.Items = append([]T{}, st.Items...)
	return st
}
