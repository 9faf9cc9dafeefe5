package cart

import "sync"

// Store holds one State per session id, in memory only: carts and favorites
// live exactly as long as the process. Update applies a transition as a
// single read-modify-write under the lock, so rapid concurrent mutations on
// the same session never lose an update.
type Store struct {
	mu       sync.Mutex
	sessions map[string]State
}

func NewStore() *Store {
	return &Store{sessions: map[string]State{}}
}

func (st *Store) Get(sid string) State {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[sid]
	if !ok {
		return NewState()
	}
	return s
}

func (st *Store) Update(sid string, fn func(State) State) State {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[sid]
	if !ok {
		s = NewState()
	}
	s = fn(s)
	st.sessions[sid] = s
	return s
}
