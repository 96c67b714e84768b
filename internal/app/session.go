package app

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"language-sprint-service/internal/domain"
	"language-sprint-service/internal/engine"
	"language-sprint-service/internal/timing"
)

// Session binds one in-progress run to its player and round-time tracker.
// The engine owns all game state; the session is the routing envelope.
type Session struct {
	ID        string
	Username  string
	Config    domain.ModeConfig
	Engine    *engine.Engine
	Tracker   *timing.Tracker
	StartedAt time.Time
}

// CurrentQuestion returns the question awaiting an answer, if any.
func (s *Session) CurrentQuestion() (domain.Question, bool) {
	return s.Engine.CurrentQuestion()
}

// newGameID returns a compact 16-hex-char identifier.
func newGameID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
