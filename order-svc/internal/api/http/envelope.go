package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"group-dining/order-svc/internal/domain"
)

type payload map[string]interface{}

func writeSuccess(w http.ResponseWriter, status int, body payload) {
	if body == nil {
		body = payload{}
	}
	body["success"] = true
	writeJSON(w, status, body)
}

// writeFailure logs err under op and answers with the failure envelope.
func writeFailure(w http.ResponseWriter, op string, err error) {
	log.Printf("ERROR: %s: %v", op, err)

	kind := domain.KindOf(err)
	status := http.StatusInternalServerError
	switch {
	case kind == domain.KindStoreUnavailable:
		status = http.StatusServiceUnavailable
	case kind == domain.KindNotFound:
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	}

	writeJSON(w, status, payload{
		"success": false,
		"error":   err.Error(),
		"kind":    kind,
	})
}

func writeJSON(w http.ResponseWriter, status int, body payload) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Recover converts a panic in any handler into an Unexpected failure.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				writeFailure(w, r.Method+" "+r.URL.Path, fmt.Errorf("panic: %v: %w", rec, domain.ErrUnexpected))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
