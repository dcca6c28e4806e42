package tests

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"group-dining/order-svc/internal/mocks"
	"group-dining/order-svc/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClockIDs_Unique(t *testing.T) {
	ids := service.NewClockIDs()

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 250; j++ {
				id := ids.SessionID()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 2000)
	for id := range seen {
		assert.Regexp(t, `^SESSION_\d+$`, id)
	}
}

func TestClockIDs_OrderID(t *testing.T) {
	ids := service.NewClockIDs()

	first := ids.OrderID()
	second := ids.OrderID()

	assert.Regexp(t, `^ORD_\d+_\d{1,3}$`, first)
	assert.NotEqual(t, first, second)
}

func TestUUIDIDs(t *testing.T) {
	var ids service.UUIDIDs

	sessionID := ids.SessionID()
	orderID := ids.OrderID()

	require.True(t, strings.HasPrefix(sessionID, "SESSION_"))
	require.True(t, strings.HasPrefix(orderID, "ORD_"))
	parsed, err := uuid.Parse(strings.TrimPrefix(sessionID, "SESSION_"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, sessionID, ids.SessionID())
}

func TestSequenceIDs(t *testing.T) {
	tests := []struct {
		name    string
		call    func(*service.SequenceIDs) string
		seqName string
		value   int64
		err     error
		pattern string
	}{
		{
			name:    "session from sequence",
			call:    (*service.SequenceIDs).SessionID,
			seqName: "sessions",
			value:   4,
			pattern: `^SESSION_\d+_4$`,
		},
		{
			name:    "order from sequence",
			call:    (*service.SequenceIDs).OrderID,
			seqName: "orders",
			value:   42,
			pattern: `^ORD_\d+_42$`,
		},
		{
			name:    "session falls back to clock",
			call:    (*service.SequenceIDs).SessionID,
			seqName: "sessions",
			err:     errors.New("connection refused"),
			pattern: `^SESSION_\d+$`,
		},
		{
			name:    "order falls back to clock",
			call:    (*service.SequenceIDs).OrderID,
			seqName: "orders",
			err:     errors.New("connection refused"),
			pattern: `^ORD_\d+_\d{1,3}$`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			seq := mocks.NewSequence(t)
			seq.On("Next", mock.Anything, testCase.seqName).Return(testCase.value, testCase.err).Once()

			id := testCase.call(service.NewSequenceIDs(seq))

			assert.Regexp(t, testCase.pattern, id)
		})
	}
}
