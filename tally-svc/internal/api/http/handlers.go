package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"group-dining/tally-svc/internal/domain"
	"group-dining/tally-svc/internal/service"

	"github.com/gorilla/mux"
)

const defaultTopLimit = 10

type Handler struct {
	Tally service.TallyReader
	now   func() time.Time
}

func NewHandler(tally service.TallyReader) *Handler {
	return &Handler{Tally: tally, now: time.Now}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "tally-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/tally/sessions/{id}", h.getSessionTally).Methods("GET")
	r.HandleFunc("/api/tally/top", h.getTopSessions).Methods("GET")
}

func (h *Handler) getSessionTally(w http.ResponseWriter, r *http.Request) {
	tally, err := h.Tally.Snapshot(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("ERROR: getSessionTally: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, tally)
}

// getTopSessions ranks a day's closed sessions; ?date=YYYY-MM-DD defaults to
// today (UTC) and ?limit to 10.
func (h *Handler) getTopSessions(w http.ResponseWriter, r *http.Request) {
	day := h.now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}
	limit := int64(defaultTopLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	ranks, err := h.Tally.TopSessions(r.Context(), day, limit)
	if err != nil {
		log.Printf("ERROR: getTopSessions: %v", err)
		writeJSON(w, http.StatusOK, []domain.SessionRank{})
		return
	}
	writeJSON(w, http.StatusOK, ranks)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
