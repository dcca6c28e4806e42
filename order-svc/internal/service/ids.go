package service

import (
	"context"
	"log"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	sessionPrefix = "SESSION_"
	orderPrefix   = "ORD_"
)

// ClockIDs produces SESSION_<millis> and ORD_<millis>_<n> identifiers. The
// millisecond component never repeats within one process, so two calls in
// the same millisecond still differ.
type ClockIDs struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewClockIDs() *ClockIDs {
	return &ClockIDs{now: time.Now}
}

func (g *ClockIDs) tick() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return ms
}

func (g *ClockIDs) SessionID() string {
	return sessionPrefix + strconv.FormatInt(g.tick(), 10)
}

func (g *ClockIDs) OrderID() string {
	return orderPrefix + strconv.FormatInt(g.tick(), 10) + "_" + strconv.Itoa(rand.Intn(1000))
}

type UUIDIDs struct{}

func (UUIDIDs) SessionID() string { return sessionPrefix + newUUID() }

func (UUIDIDs) OrderID() string { return orderPrefix + newUUID() }

func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Sequence hands out values from a counter shared by every replica.
type Sequence interface {
	Next(ctx context.Context, name string) (int64, error)
}

// SequenceIDs suffixes the creation time with a shared counter value, so
// ids stay unique across processes.
type SequenceIDs struct {
	seq      Sequence
	fallback *ClockIDs
	now      func() time.Time
}

func NewSequenceIDs(seq Sequence) *SequenceIDs {
	return &SequenceIDs{seq: seq, fallback: NewClockIDs(), now: time.Now}
}

func (g *SequenceIDs) SessionID() string {
	return g.next(sessionPrefix, "sessions", g.fallback.SessionID)
}

func (g *SequenceIDs) OrderID() string {
	return g.next(orderPrefix, "orders", g.fallback.OrderID)
}

func (g *SequenceIDs) next(prefix, name string, fallback func() string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n, err := g.seq.Next(ctx, name)
	if err != nil {
		log.Printf("Warning: sequence %s unavailable, falling back to clock ids: %v", name, err)
		return fallback()
	}
	return prefix + strconv.FormatInt(g.now().UnixMilli(), 10) + "_" + strconv.FormatInt(n, 10)
}
