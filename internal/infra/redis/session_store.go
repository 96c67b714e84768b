package redis

import (
	"context"
	"sync"
	"time"

	"language-sprint-service/internal/app"
	"github.com/redis/go-redis/v9"
)

// SessionStore is a Redis-aware implementation of app.SessionRepository.
// Notes:
//   - Engines are not serializable mid-run, so live sessions stay in a local
//     in-process map; Redis marks session liveness with a TTL key.
//   - For true distribution you'd pair this with sticky routing so a player
//     always reaches the instance holding their engine.
type SessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]*app.Session
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
		sessions: make(map[string]*app.Session),
	}
}

func (s *SessionStore) Put(session *app.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(session.ID), session.Username, s.ttl).Err()
}

func (s *SessionStore) Get(gameID string) (*app.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[gameID]
	return session, ok
}

func (s *SessionStore) Delete(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, gameID)
	_ = s.client.Del(context.Background(), s.key(gameID)).Err()
}

func (s *SessionStore) key(gameID string) string {
	return "game:session:" + gameID
}
