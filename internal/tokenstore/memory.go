package tokenstore

import "sync"

// MemoryStore is a Store for the browser/page domain: one instance lives for
// the duration of a loaded page. Also used as the store double in tests.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", false
	}
	return s.token, true
}

func (s *MemoryStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
}
