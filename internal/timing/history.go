package timing

import (
	"sync"
	"time"
)

// historyCap bounds stored sessions; older sessions are dropped first.
const historyCap = 50

// Session is one finished game's round-time log.
type Session struct {
	Username  string    `json:"username"`
	Mode      string    `json:"mode"`
	Rounds    []Round   `json:"roundTimes"`
	StartedAt time.Time `json:"sessionStarted"`
}

// History retains the most recent sessions across games.
type History struct {
	mu       sync.Mutex
	sessions []Session
}

// NewHistory builds an empty history.
func NewHistory() *History {
	return &History{}
}

// Append stores a session, evicting the oldest past the cap.
func (h *History) Append(session Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions = append(h.sessions, session)
	if len(h.sessions) > historyCap {
		h.sessions = h.sessions[len(h.sessions)-historyCap:]
	}
}

// Sessions returns a copy of the retained sessions, oldest first.
func (h *History) Sessions() []Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	sessions := make([]Session, len(h.sessions))
	copy(sessions, h.sessions)
	return sessions
}
