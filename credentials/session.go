package credentials

import (
	"encoding/json"
	"sync"
)

// SessionStore keeps the record in process memory only, the analog of
// per-tab session storage: everything is gone when the process exits.
type SessionStore struct {
	mu  sync.Mutex
	raw []byte
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Load() (*Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.raw == nil {
		return nil, false
	}
	var rec Record
	if err := json.Unmarshal(s.raw, &rec); err != nil {
		// Self-healing: malformed data is purged, not reported.
		s.raw = nil
		return nil, false
	}
	return &rec, true
}

func (s *SessionStore) Save(rec Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) Clear() {
	s.mu.Lock()
	s.raw = nil
	s.mu.Unlock()
}
