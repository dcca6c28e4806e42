package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderAdded         = "order_added"
	EventOrderStatusChanged = "order_status_changed"
	EventOrderDeleted       = "order_deleted"
	EventSessionClosed      = "session_closed"
)

// OrderEvent is the message order-svc writes to the orders topic.
type OrderEvent struct {
	Type      string          `json:"type"`
	SessionID string          `json:"session_id"`
	OrderID   string          `json:"order_id,omitempty"`
	Status    string          `json:"status,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

var ErrNotFound = errors.New("not found")

// SessionTally is the live view of one session's activity.
type SessionTally struct {
	SessionID     string           `json:"session_id"`
	Orders        int64            `json:"orders"`
	Deleted       int64            `json:"deleted"`
	OrderedAmount decimal.Decimal  `json:"ordered_amount"`
	ServedAmount  decimal.Decimal  `json:"served_amount"`
	ByStatus      map[string]int64 `json:"by_status"`
	ClosedAt      *time.Time       `json:"closed_at,omitempty"`
}

type SessionRank struct {
	SessionID    string          `json:"session_id"`
	ServedAmount decimal.Decimal `json:"served_amount"`
}
