package service

import (
	"context"
	"time"

	"group-dining/tally-svc/internal/domain"
	"group-dining/tally-svc/internal/storage"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type TallyStore interface {
	RecordAdded(ctx context.Context, sessionID string, amount decimal.Decimal) error
	RecordStatus(ctx context.Context, sessionID, status string) error
	RecordDeleted(ctx context.Context, sessionID string, amount decimal.Decimal) error
	RecordClosed(ctx context.Context, sessionID string, served decimal.Decimal, at time.Time) error
}

type TallyReader interface {
	Snapshot(ctx context.Context, sessionID string) (*domain.SessionTally, error)
	TopSessions(ctx context.Context, day time.Time, n int64) ([]domain.SessionRank, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ TallyStore        = (*storage.RedisTally)(nil)
	_ TallyReader       = (*storage.RedisTally)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
