package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderAdded         = "order_added"
	EventOrderStatusChanged = "order_status_changed"
	EventOrderDeleted       = "order_deleted"
	EventSessionClosed      = "session_closed"
)

type OrderEvent struct {
	Type      string          `json:"type"`
	SessionID string          `json:"session_id"`
	OrderID   string          `json:"order_id,omitempty"`
	Status    string          `json:"status,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}
