package service

import (
	"context"

	"group-dining/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type BillService struct {
	orders OrderLister
}

func NewBillService(orders OrderLister) *BillService {
	return &BillService{orders: orders}
}

// Compute summarizes the session's current orders. Ledger failures are
// returned unchanged.
func (s *BillService) Compute(ctx context.Context, sessionID string) (*domain.Bill, error) {
	orders, err := s.orders.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &domain.Bill{Summary: Summarize(orders), Orders: orders}, nil
}

// Summarize folds orders into a bill summary in a single pass. The result
// does not depend on the order of the input.
func Summarize(orders []domain.Order) domain.BillSummary {
	summary := domain.BillSummary{
		TotalAmount:     decimal.Zero,
		ServedAmount:    decimal.Zero,
		PendingAmount:   decimal.Zero,
		CancelledAmount: decimal.Zero,
		ByPerson:        map[string]decimal.Decimal{},
		ByCategory:      map[string]decimal.Decimal{},
		ByStatus:        make(map[domain.OrderStatus]decimal.Decimal, len(domain.OrderStatuses)),
	}
	for _, status := range domain.OrderStatuses {
		summary.ByStatus[status] = decimal.Zero
	}

	for _, order := range orders {
		summary.TotalItems += order.Quantity
		summary.TotalAmount = summary.TotalAmount.Add(order.TotalPrice)
		summary.ByPerson[order.UserName] = summary.ByPerson[order.UserName].Add(order.TotalPrice)
		summary.ByCategory[order.Category] = summary.ByCategory[order.Category].Add(order.TotalPrice)
		summary.ByStatus[order.Status] = summary.ByStatus[order.Status].Add(order.TotalPrice)

		switch order.Status {
		case domain.StatusServed:
			summary.ServedAmount = summary.ServedAmount.Add(order.TotalPrice)
		case domain.StatusOrdered:
			summary.PendingAmount = summary.PendingAmount.Add(order.TotalPrice)
		case domain.StatusNotAvailable:
			summary.CancelledAmount = summary.CancelledAmount.Add(order.TotalPrice)
		}
	}
	return summary
}
