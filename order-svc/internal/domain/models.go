package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableMenu     = "Menu"
	TableSessions = "Sessions"
	TableOrders   = "Orders"
)

// Row is one table row as stored; every cell is text.
type Row []string

type SessionStatus string

const (
	SessionActive SessionStatus = "Active"
	SessionClosed SessionStatus = "Closed"
)

type OrderStatus string

const (
	StatusOrdered      OrderStatus = "Ordered"
	StatusServed       OrderStatus = "Served"
	StatusNotAvailable OrderStatus = "Not Available"
)

// OrderStatuses lists every status in the order the bill reports them.
var OrderStatuses = []OrderStatus{StatusOrdered, StatusServed, StatusNotAvailable}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, status := range OrderStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

func ParseSessionStatus(s string) (SessionStatus, bool) {
	switch SessionStatus(s) {
	case SessionActive, SessionClosed:
		return SessionStatus(s), true
	}
	return "", false
}

type MenuItem struct {
	ID          int             `json:"id"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Vegetarian  bool            `json:"vegetarian"`
	Available   bool            `json:"available"`
}

type Session struct {
	SessionID   string          `json:"sessionId"`
	SessionName string          `json:"sessionName"`
	StartTime   time.Time       `json:"startTime"`
	Status      SessionStatus   `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	People      string          `json:"people"`
	RowIndex    int             `json:"rowIndex"`
}

// NewOrder is the caller-supplied, fully denormalized order line.
type NewOrder struct {
	SessionID    string          `json:"sessionId"`
	UserName     string          `json:"userName"`
	ItemID       int             `json:"itemId"`
	ItemName     string          `json:"itemName"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	PricePerItem decimal.Decimal `json:"pricePerItem"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}

type Order struct {
	OrderID      string          `json:"orderId"`
	SessionID    string          `json:"sessionId"`
	UserName     string          `json:"userName"`
	ItemID       int             `json:"itemId"`
	ItemName     string          `json:"itemName"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	PricePerItem decimal.Decimal `json:"pricePerItem"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Status       OrderStatus     `json:"status"`
	OrderTime    time.Time       `json:"orderTime"`
	ServedTime   *time.Time      `json:"servedTime,omitempty"`
	Notes        string          `json:"notes"`
	RowIndex     int             `json:"rowIndex"`
}

type BillSummary struct {
	TotalItems      int                             `json:"totalItems"`
	TotalAmount     decimal.Decimal                 `json:"totalAmount"`
	ServedAmount    decimal.Decimal                 `json:"servedAmount"`
	PendingAmount   decimal.Decimal                 `json:"pendingAmount"`
	CancelledAmount decimal.Decimal                 `json:"cancelledAmount"`
	ByPerson        map[string]decimal.Decimal      `json:"byPerson"`
	ByCategory      map[string]decimal.Decimal      `json:"byCategory"`
	ByStatus        map[OrderStatus]decimal.Decimal `json:"byStatus"`
}

type Bill struct {
	Summary BillSummary `json:"summary"`
	Orders  []Order     `json:"orders"`
}
