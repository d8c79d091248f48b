package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/seolargo/skivori-case/internal/slot/repository"
)

// Demo sessions are throwaway; a day is plenty.
const balanceTTL = 24 * time.Hour

func balanceKey(sessionID string) string {
	return fmt.Sprintf("slot_balance:%s", sessionID)
}

func (r *implBalanceRepository) GetBalance(ctx context.Context, sessionID string) (int64, error) {
	data, err := r.redis.GetClient().Get(ctx, balanceKey(sessionID)).Result()
	if err == goredis.Nil {
		return 0, repository.ErrBalanceNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "slot.repository.redis.GetBalance: Failed to read balance: %v", err)
		return 0, err
	}

	balance, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		r.l.Errorf(ctx, "slot.repository.redis.GetBalance: Corrupt balance value %q: %v", data, err)
		return 0, err
	}
	return balance, nil
}

func (r *implBalanceRepository) SetBalance(ctx context.Context, sessionID string, balance int64) error {
	if err := r.redis.GetClient().Set(ctx, balanceKey(sessionID), balance, balanceTTL).Err(); err != nil {
		r.l.Errorf(ctx, "slot.repository.redis.SetBalance: Failed to set balance: %v", err)
		return err
	}
	return nil
}

// IncrBalance atomically adjusts the balance and returns the new value. The
// increment refreshes the TTL so an active session never expires mid-play.
func (r *implBalanceRepository) IncrBalance(ctx context.Context, sessionID string, delta int64) (int64, error) {
	key := balanceKey(sessionID)
	balance, err := r.redis.IncrBy(ctx, key, delta)
	if err != nil {
		r.l.Errorf(ctx, "slot.repository.redis.IncrBalance: Failed to adjust balance: %v", err)
		return 0, err
	}
	if err := r.redis.GetClient().Expire(ctx, key, balanceTTL).Err(); err != nil {
		r.l.Warnf(ctx, "slot.repository.redis.IncrBalance: Failed to refresh TTL: %v", err)
	}
	return balance, nil
}
