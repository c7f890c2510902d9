package promotion_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miroldev/vendure/internal/promotion"
)

func newTracker(t *testing.T) *promotion.UsageTracker {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return promotion.NewUsageTracker(rdb, "")
}

func TestUsageTrackerCounts(t *testing.T) {
	tr := newTracker(t)
	ctx := context.Background()

	n, err := tr.ApplicationCount(ctx, "promo-1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n, "unseen promotion starts at zero")

	require.NoError(t, tr.RecordApplication(ctx, "promo-1", "cust-1"))
	require.NoError(t, tr.RecordApplication(ctx, "promo-1", "cust-1"))
	require.NoError(t, tr.RecordApplication(ctx, "promo-1", "cust-2"))

	n, err = tr.ApplicationCount(ctx, "promo-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	mine, err := tr.CustomerApplicationCount(ctx, "promo-1", "cust-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, mine)
}

func TestUsageTrackerLimits(t *testing.T) {
	tr := newTracker(t)
	ctx := context.Background()

	p := &promotion.Promotion{ID: "promo-2", UsageLimit: 2, PerCustomerUsageLimit: 1}

	ok, err := tr.WithinLimits(ctx, p, "cust-1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, tr.RecordApplication(ctx, "promo-2", "cust-1"))

	ok, err = tr.WithinLimits(ctx, p, "cust-1")
	require.NoError(t, err)
	assert.False(t, ok, "per-customer limit of 1 reached")

	ok, err = tr.WithinLimits(ctx, p, "cust-2")
	require.NoError(t, err)
	assert.True(t, ok, "other customers still inside limits")

	require.NoError(t, tr.RecordApplication(ctx, "promo-2", "cust-2"))

	ok, err = tr.WithinLimits(ctx, p, "cust-3")
	require.NoError(t, err)
	assert.False(t, ok, "overall limit of 2 reached")
}

func TestUsageTrackerUnlimitedByDefault(t *testing.T) {
	tr := newTracker(t)
	ctx := context.Background()

	p := &promotion.Promotion{ID: "promo-3"}
	for i := 0; i < 10; i++ {
		require.NoError(t, tr.RecordApplication(ctx, p.ID, "cust-1"))
	}
	ok, err := tr.WithinLimits(ctx, p, "cust-1")
	require.NoError(t, err)
	assert.True(t, ok, "zero limits mean unlimited")
}

func TestUsageTrackerReset(t *testing.T) {
	tr := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.RecordApplication(ctx, "promo-4", "cust-1"))
	require.NoError(t, tr.Reset(ctx, "promo-4"))

	n, err := tr.ApplicationCount(ctx, "promo-4")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	mine, err := tr.CustomerApplicationCount(ctx, "promo-4", "cust-1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, mine)
}
