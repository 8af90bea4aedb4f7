package api

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/schardosin/askhook/pkg/chat"
	"github.com/schardosin/askhook/pkg/webhook"
)

const (
	sessionTimeout = 30 * time.Minute
	reapInterval   = time.Minute
)

// Store keeps the chat sessions created for the embedded web page,
// keyed by the token injected into each served page.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*chat.Session
	client   *webhook.Client
	ackText  string
	errText  string
}

var (
	globalStore *Store
	storeOnce   sync.Once
)

// GetStore returns the singleton session store.
func GetStore() *Store {
	storeOnce.Do(func() {
		globalStore = &Store{
			sessions: make(map[string]*chat.Session),
			client:   webhook.NewClient(0),
		}
		go globalStore.reapStaleSessionsLoop()
	})
	return globalStore
}

// Configure sets the webhook client and the system message texts used
// for sessions created from now on.
func (s *Store) Configure(client *webhook.Client, ackText, errText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if client != nil {
		s.client = client
	}
	s.ackText = ackText
	s.errText = errText
}

// CreateSession registers a fresh session and returns its token.
func (s *Store) CreateSession() string {
	id := uuid.NewString()
	sess := chat.NewSession()

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.SetSystemTexts(s.ackText, s.errText)
	s.sessions[id] = sess
	return id
}

// Session returns the session for a token.
func (s *Store) Session(id string) (*chat.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Client returns the webhook client shared by all sessions.
func (s *Store) Client() *webhook.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

func (s *Store) reapStaleSessionsLoop() {
	ticker := time.NewTicker(reapInterval)
	defer ticker.Stop()
	for range ticker.C {
		s.reapStale(time.Now())
	}
}

// reapStale drops sessions idle for longer than sessionTimeout and
// returns how many were removed.
func (s *Store) reapStale(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.LastActive()) > sessionTimeout {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
