package gallery

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alphalions/gallery/cache"
	"github.com/alphalions/gallery/fetcher"
	"github.com/alphalions/gallery/metrics"
)

// Store keeps viewer sessions keyed by session id. Idle sessions expire after the TTL and
// the least recently used ones are evicted once the store is full.
type Store struct {
	mu       sync.Mutex
	sessions *cache.TTLCache[string, *Session]
	fetcher  fetcher.Fetcher
	pageSize int
	logger   *slog.Logger
}

func NewStore(f fetcher.Fetcher, pageSize, maxSessions int, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		sessions: cache.NewTTL[string, *Session](maxSessions, ttl),
		fetcher:  f,
		pageSize: pageSize,
		logger:   logger.With("component", "session-store"),
	}
}

// Get returns the live session with the given id and extends its lifetime.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(id)
	if ok {
		s.sessions.Set(id, session)
	}
	return session, ok
}

// GetOrCreate returns the session with the given id, or a fresh one under a new id when the
// id is unknown, expired or not a valid session id.
func (s *Store) GetOrCreate(id string) (session *Session, created bool) {
	if _, err := uuid.Parse(id); err == nil {
		if session, ok := s.Get(id); ok {
			return session, false
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id = uuid.NewString()
	session = NewSession(id, s.fetcher, s.pageSize, s.logger)
	s.sessions.Set(id, session)
	metrics.SetActiveSessions(s.sessions.Len())
	s.logger.Debug("session created", slog.String("session_id", id))
	return session, true
}

// Remove drops the session with the given id.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions.Remove(id)
	metrics.SetActiveSessions(s.sessions.Len())
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Len()
}
