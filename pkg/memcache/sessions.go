package mem

import "sync"

// Session holds the signed-in user's display fields, resolved from the
// account row at sign-in time. The cache is a convenience only and is
// never authoritative: it is rebuilt on every sign-in and torn down in
// full on logout.
type Session struct {
	Email      string
	Name       string
	Role       string
	ProfileURL string
}

type SessionStore interface {
	Put(session Session)
	Get(email string) (Session, bool)
	// Clear removes every cached field for the given principal.
	Clear(email string)
}

type Sessions struct {
	mu   sync.RWMutex
	data map[string]Session
}

func NewSessions() *Sessions {
	return &Sessions{
		data: make(map[string]Session),
	}
}

func (s *Sessions) Put(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.Email] = session
}

func (s *Sessions) Get(email string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.data[email]
	return sess, ok
}

func (s *Sessions) Clear(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, email)
}
