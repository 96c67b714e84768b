package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"language-sprint-service/internal/app"
	"language-sprint-service/internal/domain"
)

// LeaderboardHandler serves the aggregate scoreboard.
type LeaderboardHandler struct {
	service *app.GameService
}

func NewLeaderboardHandler(service *app.GameService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

func (h *LeaderboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	leaderboard, err := h.service.Leaderboard(r.Context())
	if err != nil {
		http.Error(w, "leaderboard unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, leaderboard)
}

// GuestbookHandler serves guestbook signing and listing.
type GuestbookHandler struct {
	service *app.GuestbookService
}

func NewGuestbookHandler(service *app.GuestbookService) *GuestbookHandler {
	return &GuestbookHandler{service: service}
}

type signRequest struct {
	Username string `json:"username"`
}

func (h *GuestbookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		entries, err := h.service.Entries(r.Context())
		if err != nil {
			http.Error(w, "guestbook unavailable", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
	case http.MethodPost:
		var req signRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		entry, err := h.service.Sign(r.Context(), req.Username)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidUsername) {
				http.Error(w, "username must be 2-20 characters without markup", http.StatusBadRequest)
				return
			}
			http.Error(w, "guestbook unavailable", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "entry": entry})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
