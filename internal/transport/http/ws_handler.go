package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"language-sprint-service/internal/app"
	"language-sprint-service/internal/domain"
	"github.com/gorilla/websocket"
)

// GameHandler speaks the game protocol over a websocket: one connection, one
// run. The engine is driven entirely by inbound messages; the handler only
// translates between JSON frames and service calls.
type GameHandler struct {
	service  *app.GameService
	upgrader websocket.Upgrader
}

func NewGameHandler(service *app.GameService) *GameHandler {
	return &GameHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Text string `json:"text"`
}

type tickPayload struct {
	ElapsedMs int64 `json:"elapsedMs"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type startedPayload struct {
	GameID         string `json:"gameId"`
	Mode           string `json:"mode"`
	TotalQuestions int    `json:"totalQuestions"`
	Lives          int    `json:"lives"`
}

type questionPayload struct {
	Index  int    `json:"index"`
	Total  int    `json:"total"`
	Prompt string `json:"prompt"`
}

type comparisonPayload struct {
	DifferenceMs int64 `json:"differenceMs"`
	Faster       bool  `json:"isFaster"`
	Show         bool  `json:"showComparison"`
}

type answerResultPayload struct {
	Applied     bool               `json:"applied"`
	Correct     bool               `json:"correct"`
	Finished    bool               `json:"finished"`
	Score       int                `json:"score"`
	ComboStreak int                `json:"comboStreak"`
	Lives       int                `json:"lives"`
	TimeSpentMs int64              `json:"timeSpentMs"`
	Comparison  *comparisonPayload `json:"comparison,omitempty"`
}

type resultPayload struct {
	Stats     domain.GameStats     `json:"stats"`
	Bests     domain.PersonalBests `json:"bests"`
	ShareText string               `json:"shareText"`
}

// ServeWS upgrades the request and runs one game over the connection.
// Query parameters: mode (required), user (required), difficulty (optional).
func (h *GameHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	user := r.URL.Query().Get("user")
	difficulty := r.URL.Query().Get("difficulty")
	if mode == "" || user == "" {
		http.Error(w, "missing mode or user", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session, err := h.service.StartGame(r.Context(), domain.Mode(mode), domain.Difficulty(difficulty), user)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	gameID := session.ID

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	state := session.Engine.Snapshot()
	send <- outboundMessage[any]{Type: "started", Payload: startedPayload{
		GameID:         gameID,
		Mode:           mode,
		TotalQuestions: len(session.Engine.Questions()),
		Lives:          state.LivesRemaining,
	}}
	if question, ok := session.CurrentQuestion(); ok {
		send <- outboundMessage[any]{Type: "question", Payload: questionFor(question, len(session.Engine.Questions()))}
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			// Dropped connection mid-run abandons the game.
			_ = h.service.Quit(gameID)
			break
		}

		done := false
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errorMessage("invalid answer payload")
				continue
			}
			done = h.handleOutcome(send, session)(h.service.Submit(r.Context(), gameID, payload.Text))
		case "skip":
			done = h.handleOutcome(send, session)(h.service.Skip(r.Context(), gameID))
		case "tick":
			var payload tickPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errorMessage("invalid tick payload")
				continue
			}
			done = h.handleOutcome(send, session)(h.service.Tick(r.Context(), gameID, time.Duration(payload.ElapsedMs)*time.Millisecond))
		case "pause":
			if err := h.service.Pause(gameID); err != nil {
				send <- errorMessage(err.Error())
			}
		case "resume":
			if err := h.service.Resume(gameID); err != nil {
				send <- errorMessage(err.Error())
			}
		case "state":
			snapshot, err := h.service.State(gameID)
			if err != nil {
				send <- errorMessage(err.Error())
				continue
			}
			send <- outboundMessage[any]{Type: "state", Payload: snapshot}
		case "quit":
			_ = h.service.Quit(gameID)
			done = true
		default:
			send <- errorMessage("unsupported message type")
		}
		if done {
			break
		}
	}

	close(send)
	<-writerDone
}

// handleOutcome translates a service outcome into protocol frames. Returns a
// closure so each case reads as one line; the closure reports run completion.
func (h *GameHandler) handleOutcome(send chan<- outboundMessage[any], session *app.Session) func(app.SubmitOutcome, error) bool {
	return func(outcome app.SubmitOutcome, err error) bool {
		if err != nil {
			if errors.Is(err, domain.ErrGameNotFound) {
				send <- errorMessage("game already finished")
				return true
			}
			send <- errorMessage(err.Error())
			return false
		}
		if !outcome.Applied && !outcome.Finished {
			return false
		}

		result := answerResultPayload{
			Applied:     outcome.Applied,
			Correct:     outcome.Correct,
			Finished:    outcome.Finished,
			Score:       outcome.Score,
			ComboStreak: outcome.ComboStreak,
			Lives:       outcome.Lives,
			TimeSpentMs: outcome.TimeSpent.Milliseconds(),
		}
		if outcome.Comparison != nil {
			result.Comparison = &comparisonPayload{
				DifferenceMs: outcome.Comparison.Difference.Milliseconds(),
				Faster:       outcome.Comparison.Faster,
				Show:         outcome.Comparison.Show,
			}
		}
		send <- outboundMessage[any]{Type: "answerResult", Payload: result}

		if outcome.Finished {
			if outcome.Result != nil {
				send <- outboundMessage[any]{Type: "result", Payload: resultPayload{
					Stats:     outcome.Result.Stats,
					Bests:     outcome.Result.Bests,
					ShareText: outcome.Result.ShareText,
				}}
			}
			return true
		}
		if outcome.Next != nil {
			send <- outboundMessage[any]{Type: "question", Payload: questionFor(*outcome.Next, len(session.Engine.Questions()))}
		}
		return false
	}
}

func questionFor(q domain.Question, total int) questionPayload {
	return questionPayload{Index: q.ID, Total: total, Prompt: q.Prompt}
}

func errorMessage(message string) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: message}}
}
