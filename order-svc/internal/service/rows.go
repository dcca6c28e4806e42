package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"group-dining/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const timeLayout = time.RFC3339Nano

// cell returns the 1-based column of row, or "" for short rows.
func cell(row domain.Row, col int) string {
	if col-1 < len(row) {
		return strings.TrimSpace(row[col-1])
	}
	return ""
}

func truthy(s string) bool {
	return s == "TRUE" || s == "true"
}

func formatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(timeLayout, s)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func malformed(table string, rowIndex int, field string, err error) error {
	return fmt.Errorf("%s row %d: bad %s: %v: %w", table, rowIndex, field, err, domain.ErrUnexpected)
}

func menuItemFromRow(row domain.Row, rowIndex int) (domain.MenuItem, error) {
	id, err := strconv.Atoi(cell(row, domain.MenuColID))
	if err != nil {
		return domain.MenuItem{}, malformed(domain.TableMenu, rowIndex, "id", err)
	}
	price, err := parseDecimal(cell(row, domain.MenuColPrice))
	if err != nil {
		return domain.MenuItem{}, malformed(domain.TableMenu, rowIndex, "price", err)
	}
	available := cell(row, domain.MenuColAvailable)
	return domain.MenuItem{
		ID:          id,
		Category:    cell(row, domain.MenuColCategory),
		Name:        cell(row, domain.MenuColName),
		Price:       price,
		Description: cell(row, domain.MenuColDescription),
		Vegetarian:  truthy(cell(row, domain.MenuColVegetarian)),
		Available:   available == "" || truthy(available),
	}, nil
}

func sessionToRow(s domain.Session) domain.Row {
	return domain.Row{
		s.SessionID,
		s.SessionName,
		formatTime(s.StartTime),
		string(s.Status),
		s.TotalAmount.String(),
		s.People,
	}
}

func sessionFromRow(row domain.Row, rowIndex int) (domain.Session, error) {
	start, err := parseTime(cell(row, domain.SessionColStartTime))
	if err != nil {
		return domain.Session{}, malformed(domain.TableSessions, rowIndex, "startTime", err)
	}
	total, err := parseDecimal(cell(row, domain.SessionColTotalAmount))
	if err != nil {
		return domain.Session{}, malformed(domain.TableSessions, rowIndex, "totalAmount", err)
	}
	status, ok := domain.ParseSessionStatus(cell(row, domain.SessionColStatus))
	if !ok {
		return domain.Session{}, malformed(domain.TableSessions, rowIndex, "status",
			fmt.Errorf("%q", cell(row, domain.SessionColStatus)))
	}
	return domain.Session{
		SessionID:   cell(row, domain.SessionColID),
		SessionName: cell(row, domain.SessionColName),
		StartTime:   start,
		Status:      status,
		TotalAmount: total,
		People:      cell(row, domain.SessionColPeople),
		RowIndex:    rowIndex,
	}, nil
}

func orderToRow(orderID string, in domain.NewOrder, orderTime time.Time) domain.Row {
	return domain.Row{
		orderID,
		in.SessionID,
		in.UserName,
		strconv.Itoa(in.ItemID),
		in.ItemName,
		in.Category,
		strconv.Itoa(in.Quantity),
		in.PricePerItem.String(),
		in.TotalPrice.String(),
		string(domain.StatusOrdered),
		formatTime(orderTime),
		"",
		"",
	}
}

func orderFromRow(row domain.Row, rowIndex int) (domain.Order, error) {
	bad := func(field string, err error) (domain.Order, error) {
		return domain.Order{}, malformed(domain.TableOrders, rowIndex, field, err)
	}

	itemID, err := strconv.Atoi(cell(row, domain.OrderColItemID))
	if err != nil {
		return bad("itemId", err)
	}
	quantity, err := strconv.Atoi(cell(row, domain.OrderColQuantity))
	if err != nil {
		return bad("quantity", err)
	}
	pricePerItem, err := parseDecimal(cell(row, domain.OrderColPricePerItem))
	if err != nil {
		return bad("pricePerItem", err)
	}
	totalPrice, err := parseDecimal(cell(row, domain.OrderColTotalPrice))
	if err != nil {
		return bad("totalPrice", err)
	}
	status, ok := domain.ParseOrderStatus(cell(row, domain.OrderColStatus))
	if !ok {
		return bad("status", fmt.Errorf("%q", cell(row, domain.OrderColStatus)))
	}
	orderTime, err := parseTime(cell(row, domain.OrderColOrderTime))
	if err != nil {
		return bad("orderTime", err)
	}

	order := domain.Order{
		OrderID:      cell(row, domain.OrderColID),
		SessionID:    cell(row, domain.OrderColSessionID),
		UserName:     cell(row, domain.OrderColUserName),
		ItemID:       itemID,
		ItemName:     cell(row, domain.OrderColItemName),
		Category:     cell(row, domain.OrderColCategory),
		Quantity:     quantity,
		PricePerItem: pricePerItem,
		TotalPrice:   totalPrice,
		Status:       status,
		OrderTime:    orderTime,
		Notes:        cell(row, domain.OrderColNotes),
		RowIndex:     rowIndex,
	}
	if raw := cell(row, domain.OrderColServedTime); raw != "" {
		served, err := parseTime(raw)
		if err != nil {
			return bad("servedTime", err)
		}
		order.ServedTime = &served
	}
	return order, nil
}
