package service

import (
	"context"
	"log"
	"time"

	"group-dining/order-svc/internal/domain"
)

func publish(ctx context.Context, publisher EventPublisher, event domain.OrderEvent) {
	if publisher == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Printf("Warning: failed to publish %s event for session %s: %v", event.Type, event.SessionID, err)
	}
}
