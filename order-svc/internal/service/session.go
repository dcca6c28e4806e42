package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"group-dining/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	DefaultSessionName  = "Dinner Session"
	ImplicitSessionName = "New Dinner Session"
)

type SessionService struct {
	store     TableStore
	ids       IDGenerator
	bills     BillCalculator
	publisher EventPublisher
	qrEncoder QRGenerator
	now       func() time.Time
}

func NewSessionService(store TableStore, ids IDGenerator, bills BillCalculator, publisher EventPublisher, qr QRGenerator) *SessionService {
	return &SessionService{
		store:     store,
		ids:       ids,
		bills:     bills,
		publisher: publisher,
		qrEncoder: qr,
		now:       time.Now,
	}
}

func (s *SessionService) Create(ctx context.Context, name string) (string, error) {
	session, err := s.create(ctx, name)
	if err != nil {
		return "", err
	}
	return session.SessionID, nil
}

func (s *SessionService) create(ctx context.Context, name string) (*domain.Session, error) {
	if name == "" {
		name = DefaultSessionName
	}
	session := domain.Session{
		SessionID:   s.ids.SessionID(),
		SessionName: name,
		StartTime:   s.now(),
		Status:      domain.SessionActive,
		TotalAmount: decimal.Zero,
	}
	if err := s.store.AppendRow(ctx, domain.TableSessions, sessionToRow(session)); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	log.Printf("Created session %s (%s)", session.SessionID, session.SessionName)
	return &session, nil
}

// FindActive returns the most recently appended Active session.
func (s *SessionService) FindActive(ctx context.Context) (*domain.Session, error) {
	rows, err := s.store.GetAllRows(ctx, domain.TableSessions)
	if err != nil {
		return nil, fmt.Errorf("find active session: %w", err)
	}
	for i := len(rows) - 1; i > 0; i-- {
		if cell(rows[i], domain.SessionColStatus) != string(domain.SessionActive) {
			continue
		}
		session, err := sessionFromRow(rows[i], i+1)
		if err != nil {
			return nil, err
		}
		return &session, nil
	}
	return nil, fmt.Errorf("active session: %w", domain.ErrNotFound)
}

// GetActive is FindActive followed by Create when no session is active.
func (s *SessionService) GetActive(ctx context.Context) (*domain.Session, error) {
	session, err := s.FindActive(ctx)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return s.create(ctx, ImplicitSessionName)
}

func (s *SessionService) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("empty session id: %w", domain.ErrNotFound)
	}
	rows, err := s.store.GetAllRows(ctx, domain.TableSessions)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", sessionID, err)
	}
	for i := 1; i < len(rows); i++ {
		if cell(rows[i], domain.SessionColID) != sessionID {
			continue
		}
		session, err := sessionFromRow(rows[i], i+1)
		if err != nil {
			return nil, err
		}
		return &session, nil
	}
	return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
}

// Close marks the session Closed and records the served amount, not the
// total across all statuses, as its final total.
func (s *SessionService) Close(ctx context.Context, sessionID string) (*domain.Session, *domain.Bill, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	bill, err := s.bills.Compute(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("close session %s: %w", sessionID, err)
	}

	if err := s.store.SetCell(ctx, domain.TableSessions, session.RowIndex, domain.SessionColStatus, string(domain.SessionClosed)); err != nil {
		return nil, nil, fmt.Errorf("close session %s: %w", sessionID, err)
	}
	served := bill.Summary.ServedAmount
	if err := s.store.SetCell(ctx, domain.TableSessions, session.RowIndex, domain.SessionColTotalAmount, served.String()); err != nil {
		return nil, nil, fmt.Errorf("record total of session %s: %w", sessionID, err)
	}

	session.Status = domain.SessionClosed
	session.TotalAmount = served

	publish(ctx, s.publisher, domain.OrderEvent{
		Type:      domain.EventSessionClosed,
		SessionID: sessionID,
		Status:    string(domain.SessionClosed),
		Amount:    served,
	})
	return session, bill, nil
}

// QRCode renders a join link for the session.
func (s *SessionService) QRCode(ctx context.Context, sessionID string) ([]byte, error) {
	if _, err := s.Get(ctx, sessionID); err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, fmt.Errorf("qr code generator not configured: %w", domain.ErrUnexpected)
	}
	return s.qrEncoder.Generate(sessionID)
}
