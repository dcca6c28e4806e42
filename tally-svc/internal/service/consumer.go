package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"group-dining/tally-svc/internal/domain"
)

const defaultRetryDelay = time.Second

type Consumer struct {
	Reader MessageReader
	Store  TallyStore
	// RetryDelay is the pause after a failed read; zero means one second.
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store TallyStore) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		RetryDelay: defaultRetryDelay,
	}
}

// Start reads until ctx is cancelled. Bad messages and store failures are
// logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Tally Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Tally Service consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			if !c.wait(ctx) {
				log.Println("Tally Service consumer stopped")
				return
			}
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message at offset %d: %v", message.Offset, err)
			continue
		}

		if err := c.Process(ctx, event); err != nil {
			log.Printf("Error processing %s for session %s: %v", event.Type, event.SessionID, err)
		}
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.OrderEvent) error {
	if event.SessionID == "" {
		return fmt.Errorf("%s event without session id", event.Type)
	}

	switch event.Type {
	case domain.EventOrderAdded:
		return c.Store.RecordAdded(ctx, event.SessionID, event.Amount)
	case domain.EventOrderStatusChanged:
		return c.Store.RecordStatus(ctx, event.SessionID, event.Status)
	case domain.EventOrderDeleted:
		return c.Store.RecordDeleted(ctx, event.SessionID, event.Amount)
	case domain.EventSessionClosed:
		return c.Store.RecordClosed(ctx, event.SessionID, event.Amount, event.Timestamp)
	default:
		log.Printf("Warning: ignoring unknown event type %q", event.Type)
		return nil
	}
}

// wait pauses for RetryDelay and reports false if ctx ends first.
func (c *Consumer) wait(ctx context.Context) bool {
	delay := c.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
