package service

import (
	"context"
	"fmt"
	"time"

	"group-dining/order-svc/internal/domain"
)

type LedgerService struct {
	store     TableStore
	ids       IDGenerator
	publisher EventPublisher
	now       func() time.Time
}

func NewLedgerService(store TableStore, ids IDGenerator, publisher EventPublisher) *LedgerService {
	return &LedgerService{
		store:     store,
		ids:       ids,
		publisher: publisher,
		now:       time.Now,
	}
}

// Add appends the order as given; item details are not checked against the
// menu.
func (s *LedgerService) Add(ctx context.Context, order domain.NewOrder) (string, error) {
	if order.SessionID == "" {
		return "", fmt.Errorf("order has no session: %w", domain.ErrInvalidInput)
	}
	if order.Quantity <= 0 {
		return "", fmt.Errorf("quantity must be positive, got %d: %w", order.Quantity, domain.ErrInvalidInput)
	}

	orderID := s.ids.OrderID()
	now := s.now()
	if err := s.store.AppendRow(ctx, domain.TableOrders, orderToRow(orderID, order, now)); err != nil {
		return "", fmt.Errorf("add order: %w", err)
	}

	publish(ctx, s.publisher, domain.OrderEvent{
		Type:      domain.EventOrderAdded,
		SessionID: order.SessionID,
		OrderID:   orderID,
		Status:    string(domain.StatusOrdered),
		Amount:    order.TotalPrice,
		Timestamp: now,
	})
	return orderID, nil
}

func (s *LedgerService) List(ctx context.Context, sessionID string) ([]domain.Order, error) {
	rows, err := s.store.GetAllRows(ctx, domain.TableOrders)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := []domain.Order{}
	for i := 1; i < len(rows); i++ {
		if cell(rows[i], domain.OrderColSessionID) != sessionID {
			continue
		}
		order, err := orderFromRow(rows[i], i+1)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// UpdateStatus sets the order's status. Moving to Served stamps servedTime;
// no transition ever clears it. Notes are only overwritten when non-empty.
func (s *LedgerService) UpdateStatus(ctx context.Context, orderID, status, notes string) error {
	newStatus, ok := domain.ParseOrderStatus(status)
	if !ok {
		return fmt.Errorf("unknown order status %q: %w", status, domain.ErrInvalidInput)
	}

	row, rowIndex, err := s.find(ctx, orderID)
	if err != nil {
		return err
	}

	if err := s.store.SetCell(ctx, domain.TableOrders, rowIndex, domain.OrderColStatus, string(newStatus)); err != nil {
		return fmt.Errorf("update status of %s: %w", orderID, err)
	}
	if newStatus == domain.StatusServed {
		if err := s.store.SetCell(ctx, domain.TableOrders, rowIndex, domain.OrderColServedTime, formatTime(s.now())); err != nil {
			return fmt.Errorf("stamp served time of %s: %w", orderID, err)
		}
	}
	if notes != "" {
		if err := s.store.SetCell(ctx, domain.TableOrders, rowIndex, domain.OrderColNotes, notes); err != nil {
			return fmt.Errorf("update notes of %s: %w", orderID, err)
		}
	}

	amount, _ := parseDecimal(cell(row, domain.OrderColTotalPrice))
	publish(ctx, s.publisher, domain.OrderEvent{
		Type:      domain.EventOrderStatusChanged,
		SessionID: cell(row, domain.OrderColSessionID),
		OrderID:   orderID,
		Status:    string(newStatus),
		Amount:    amount,
	})
	return nil
}

func (s *LedgerService) Delete(ctx context.Context, orderID string) error {
	row, rowIndex, err := s.find(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteRow(ctx, domain.TableOrders, rowIndex); err != nil {
		return fmt.Errorf("delete order %s: %w", orderID, err)
	}

	amount, _ := parseDecimal(cell(row, domain.OrderColTotalPrice))
	publish(ctx, s.publisher, domain.OrderEvent{
		Type:      domain.EventOrderDeleted,
		SessionID: cell(row, domain.OrderColSessionID),
		OrderID:   orderID,
		Amount:    amount,
	})
	return nil
}

func (s *LedgerService) find(ctx context.Context, orderID string) (domain.Row, int, error) {
	if orderID == "" {
		return nil, 0, fmt.Errorf("empty order id: %w", domain.ErrNotFound)
	}
	rows, err := s.store.GetAllRows(ctx, domain.TableOrders)
	if err != nil {
		return nil, 0, fmt.Errorf("find order %s: %w", orderID, err)
	}
	for i := 1; i < len(rows); i++ {
		if cell(rows[i], domain.OrderColID) == orderID {
			return rows[i], i + 1, nil
		}
	}
	return nil, 0, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
}
