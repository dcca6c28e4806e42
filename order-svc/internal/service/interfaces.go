package service

import (
	"context"

	"group-dining/order-svc/internal/domain"
	"group-dining/order-svc/internal/storage"
)

// TableStore is row-oriented storage addressed by 1-based row and column
// indices. Row 1 is the header; data starts at row 2.
type TableStore interface {
	GetAllRows(ctx context.Context, table string) ([]domain.Row, error)
	AppendRow(ctx context.Context, table string, row domain.Row) error
	SetCell(ctx context.Context, table string, rowIndex, colIndex int, value string) error
	DeleteRow(ctx context.Context, table string, rowIndex int) error
}

type IDGenerator interface {
	SessionID() string
	OrderID() string
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
}

type OrderLister interface {
	List(ctx context.Context, sessionID string) ([]domain.Order, error)
}

type BillCalculator interface {
	Compute(ctx context.Context, sessionID string) (*domain.Bill, error)
}

type MenuServiceInterface interface {
	Load(ctx context.Context) ([]domain.MenuItem, error)
}

type SessionServiceInterface interface {
	Create(ctx context.Context, name string) (string, error)
	FindActive(ctx context.Context) (*domain.Session, error)
	GetActive(ctx context.Context) (*domain.Session, error)
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Close(ctx context.Context, sessionID string) (*domain.Session, *domain.Bill, error)
	QRCode(ctx context.Context, sessionID string) ([]byte, error)
}

type LedgerServiceInterface interface {
	Add(ctx context.Context, order domain.NewOrder) (string, error)
	List(ctx context.Context, sessionID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status, notes string) error
	Delete(ctx context.Context, orderID string) error
}

type BillServiceInterface interface {
	Compute(ctx context.Context, sessionID string) (*domain.Bill, error)
}

var (
	_ TableStore     = (*storage.SQLTableStore)(nil)
	_ EventPublisher = (*storage.KafkaPublisher)(nil)
	_ Sequence       = (*storage.RedisSequence)(nil)

	_ MenuServiceInterface    = (*MenuService)(nil)
	_ SessionServiceInterface = (*SessionService)(nil)
	_ LedgerServiceInterface  = (*LedgerService)(nil)
	_ BillServiceInterface    = (*BillService)(nil)
	_ OrderLister             = (*LedgerService)(nil)
	_ BillCalculator          = (*BillService)(nil)
)
