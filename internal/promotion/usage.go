package promotion

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/miroldev/vendure/internal/domain"
)

// UsageTracker counts promotion applications in redis so usage limits
// (overall and per customer) survive process restarts and are shared across
// instances. Counters are monotonic; a promotion's counters are removed when
// the promotion is.
type UsageTracker struct {
	rdb    *redis.Client
	prefix string
}

// NewUsageTracker creates a tracker. prefix namespaces the counter keys;
// empty means "promotion:usage".
func NewUsageTracker(rdb *redis.Client, prefix string) *UsageTracker {
	if prefix == "" {
		prefix = "promotion:usage"
	}
	return &UsageTracker{rdb: rdb, prefix: prefix}
}

func (t *UsageTracker) totalKey(promotionID domain.ID) string {
	return fmt.Sprintf("%s:%s", t.prefix, promotionID)
}

func (t *UsageTracker) customerKey(promotionID, customerID domain.ID) string {
	return fmt.Sprintf("%s:%s:customer:%s", t.prefix, promotionID, customerID)
}

// RecordApplication increments both counters for one applied promotion.
func (t *UsageTracker) RecordApplication(ctx context.Context, promotionID, customerID domain.ID) error {
	pipe := t.rdb.TxPipeline()
	pipe.Incr(ctx, t.totalKey(promotionID))
	if !customerID.IsZero() {
		pipe.Incr(ctx, t.customerKey(promotionID, customerID))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record promotion application: %w", err)
	}
	return nil
}

// ApplicationCount returns how many times the promotion was applied overall.
func (t *UsageTracker) ApplicationCount(ctx context.Context, promotionID domain.ID) (int64, error) {
	n, err := t.rdb.Get(ctx, t.totalKey(promotionID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read promotion usage: %w", err)
	}
	return n, nil
}

// CustomerApplicationCount returns how many times one customer used the
// promotion.
func (t *UsageTracker) CustomerApplicationCount(ctx context.Context, promotionID, customerID domain.ID) (int64, error) {
	n, err := t.rdb.Get(ctx, t.customerKey(promotionID, customerID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read per-customer promotion usage: %w", err)
	}
	return n, nil
}

// WithinLimits reports whether applying the promotion once more for this
// customer would stay inside its configured usage limits. A zero limit means
// unlimited.
func (t *UsageTracker) WithinLimits(ctx context.Context, p *Promotion, customerID domain.ID) (bool, error) {
	if p.UsageLimit > 0 {
		total, err := t.ApplicationCount(ctx, p.ID)
		if err != nil {
			return false, err
		}
		if total >= int64(p.UsageLimit) {
			return false, nil
		}
	}
	if p.PerCustomerUsageLimit > 0 && !customerID.IsZero() {
		mine, err := t.CustomerApplicationCount(ctx, p.ID, customerID)
		if err != nil {
			return false, err
		}
		if mine >= int64(p.PerCustomerUsageLimit) {
			return false, nil
		}
	}
	return true, nil
}

// Reset removes the counters for a promotion, including per-customer keys.
func (t *UsageTracker) Reset(ctx context.Context, promotionID domain.ID) error {
	pattern := t.totalKey(promotionID) + "*"
	iter := t.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan promotion usage keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := t.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("reset promotion usage: %w", err)
	}
	return nil
}
