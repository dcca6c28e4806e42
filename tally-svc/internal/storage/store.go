package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"group-dining/tally-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	sessionTTL = 24 * time.Hour
	dailyTTL   = 7 * 24 * time.Hour
)

// RedisTally keeps a hash of running counters per session. Amounts are
// stored in cents so increments stay exact.
type RedisTally struct {
	rdb    *redis.Client
	Prefix string
}

func NewRedisTally(rdb *redis.Client) *RedisTally {
	return &RedisTally{rdb: rdb, Prefix: "dining:tally:"}
}

func (s *RedisTally) SessionKey(sessionID string) string {
	return s.Prefix + sessionID
}

func (s *RedisTally) DailyKey(day time.Time) string {
	return s.Prefix + "daily:" + day.UTC().Format("2006-01-02")
}

func cents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func (s *RedisTally) RecordAdded(ctx context.Context, sessionID string, amount decimal.Decimal) error {
	key := s.SessionKey(sessionID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, "orders", 1)
		pipe.HIncrBy(ctx, key, "ordered_cents", cents(amount))
		pipe.Expire(ctx, key, sessionTTL)
		return nil
	})
	return err
}

func (s *RedisTally) RecordStatus(ctx context.Context, sessionID, status string) error {
	key := s.SessionKey(sessionID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, "status:"+status, 1)
		pipe.Expire(ctx, key, sessionTTL)
		return nil
	})
	return err
}

func (s *RedisTally) RecordDeleted(ctx context.Context, sessionID string, amount decimal.Decimal) error {
	key := s.SessionKey(sessionID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, "deleted", 1)
		pipe.HIncrBy(ctx, key, "ordered_cents", -cents(amount))
		pipe.Expire(ctx, key, sessionTTL)
		return nil
	})
	return err
}

// RecordClosed stores the final served amount and ranks the session on the
// day's leaderboard. Replaying the event leaves both unchanged.
func (s *RedisTally) RecordClosed(ctx context.Context, sessionID string, served decimal.Decimal, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	key := s.SessionKey(sessionID)
	dailyKey := s.DailyKey(at)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"served_cents": cents(served),
			"closed_at":    at.Unix(),
		})
		pipe.Expire(ctx, key, sessionTTL)
		pipe.ZAdd(ctx, dailyKey, redis.Z{Score: float64(cents(served)), Member: sessionID})
		pipe.Expire(ctx, dailyKey, dailyTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("record close of %s: %w", sessionID, err)
	}
	return nil
}

func (s *RedisTally) Snapshot(ctx context.Context, sessionID string) (*domain.SessionTally, error) {
	fields, err := s.rdb.HGetAll(ctx, s.SessionKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("tally for %s: %w", sessionID, domain.ErrNotFound)
	}

	tally := &domain.SessionTally{
		SessionID: sessionID,
		ByStatus:  map[string]int64{},
	}
	for field, raw := range fields {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("tally for %s: field %s: %w", sessionID, field, err)
		}
		switch {
		case field == "orders":
			tally.Orders = n
		case field == "deleted":
			tally.Deleted = n
		case field == "ordered_cents":
			tally.OrderedAmount = decimal.New(n, -2)
		case field == "served_cents":
			tally.ServedAmount = decimal.New(n, -2)
		case field == "closed_at":
			closedAt := time.Unix(n, 0).UTC()
			tally.ClosedAt = &closedAt
		case strings.HasPrefix(field, "status:"):
			tally.ByStatus[strings.TrimPrefix(field, "status:")] = n
		}
	}
	return tally, nil
}

// TopSessions returns the day's closed sessions by served amount, highest
// first.
func (s *RedisTally) TopSessions(ctx context.Context, day time.Time, n int64) ([]domain.SessionRank, error) {
	scores, err := s.rdb.ZRevRangeWithScores(ctx, s.DailyKey(day), 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	ranks := make([]domain.SessionRank, 0, len(scores))
	for _, z := range scores {
		member, _ := z.Member.(string)
		ranks = append(ranks, domain.SessionRank{
			SessionID:    member,
			ServedAmount: decimal.New(int64(z.Score), -2),
		})
	}
	return ranks, nil
}
