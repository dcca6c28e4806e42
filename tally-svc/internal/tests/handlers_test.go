package tests

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "group-dining/tally-svc/internal/api/http"
	"group-dining/tally-svc/internal/domain"
	"group-dining/tally-svc/internal/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetSessionTallyHandler(t *testing.T) {
	tests := []struct {
		name     string
		tally    *domain.SessionTally
		err      error
		wantCode int
	}{
		{
			name:     "found",
			tally:    &domain.SessionTally{SessionID: "S1", Orders: 3, OrderedAmount: decimal.NewFromInt(30), ByStatus: map[string]int64{"Served": 1}},
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown session",
			err:      fmt.Errorf("tally for S1: %w", domain.ErrNotFound),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "redis down",
			err:      errors.New("connection refused"),
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockTally := mocks.NewTallyReader(t)
			mockTally.On("Snapshot", mock.Anything, "S1").Return(testCase.tally, testCase.err)

			req := httptest.NewRequest(http.MethodGet, "/api/tally/sessions/S1", nil)
			w := httptest.NewRecorder()
			httpapi.NewRouter(httpapi.NewHandler(mockTally)).ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.tally != nil {
				var got domain.SessionTally
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, int64(3), got.Orders)
				assert.True(t, decimal.NewFromInt(30).Equal(got.OrderedAmount))
			}
		})
	}
}

func TestGetTopSessionsHandler(t *testing.T) {
	ranks := []domain.SessionRank{{SessionID: "S2", ServedAmount: decimal.NewFromInt(75)}}

	tests := []struct {
		name      string
		query     string
		wantDay   interface{}
		wantLimit int64
		err       error
		wantCode  int
		wantLen   int
	}{
		{name: "defaults", query: "", wantDay: mock.Anything, wantLimit: 10, wantCode: http.StatusOK, wantLen: 1},
		{name: "explicit date and limit", query: "?date=2026-10-18&limit=3", wantDay: time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), wantLimit: 3, wantCode: http.StatusOK, wantLen: 1},
		{name: "store error yields empty list", query: "", wantDay: mock.Anything, wantLimit: 10, err: errors.New("redis error"), wantCode: http.StatusOK, wantLen: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockTally := mocks.NewTallyReader(t)
			if testCase.err != nil {
				mockTally.On("TopSessions", mock.Anything, testCase.wantDay, testCase.wantLimit).Return(nil, testCase.err)
			} else {
				mockTally.On("TopSessions", mock.Anything, testCase.wantDay, testCase.wantLimit).Return(ranks, nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/tally/top"+testCase.query, nil)
			w := httptest.NewRecorder()
			httpapi.NewRouter(httpapi.NewHandler(mockTally)).ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			var got []domain.SessionRank
			require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
			assert.Len(t, got, testCase.wantLen)
		})
	}
}

func TestGetTopSessionsHandler_BadQuery(t *testing.T) {
	for _, query := range []string{"?date=18-10-2026", "?limit=0", "?limit=abc"} {
		t.Run(query, func(t *testing.T) {
			mockTally := mocks.NewTallyReader(t)

			req := httptest.NewRequest(http.MethodGet, "/api/tally/top"+query, nil)
			w := httptest.NewRecorder()
			httpapi.NewRouter(httpapi.NewHandler(mockTally)).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
