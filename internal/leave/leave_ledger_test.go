package leave_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/shared/counter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLedger_Allocate(t *testing.T) {
	ctx := context.Background()
	ledger := leave.NewLedger(counter.NewRepository())

	first, err := ledger.Allocate(ctx, "E001", date("2026-03-01"), date("2026-03-03"), 3, domain.CategoryAnnual, "Family event")
	require.NoError(t, err)
	second, err := ledger.Allocate(ctx, "E002", date("2026-04-01"), date("2026-04-01"), 1, domain.CategorySick, "Flu")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, leave.StatusPending, first.Status)
	assert.Equal(t, 3, first.TotalDays)
	assert.Equal(t, "E001", first.EmployeeID)
	assert.Nil(t, first.ReviewedAt)
}

func TestLedger_Get(t *testing.T) {
	ctx := context.Background()
	ledger := leave.NewLedger(counter.NewRepository())

	_, err := ledger.Get(ctx, 1)
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)

	created, err := ledger.Allocate(ctx, "E001", date("2026-03-01"), date("2026-03-01"), 1, domain.CategoryAnnual, "Dentist")
	require.NoError(t, err)

	got, err := ledger.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestLedger_SetStatus(t *testing.T) {
	ctx := context.Background()
	ledger := leave.NewLedger(counter.NewRepository())
	created, err := ledger.Allocate(ctx, "E001", date("2026-03-01"), date("2026-03-02"), 2, domain.CategoryAnnual, "Trip")
	require.NoError(t, err)

	updated, err := ledger.SetStatus(ctx, created.ID, leave.StatusApproved, "M001", "approved")

	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, updated.Status)
	assert.Equal(t, "M001", updated.ReviewedBy)
	assert.Equal(t, "approved", updated.ReviewComment)
	assert.NotNil(t, updated.ReviewedAt)

	stored, err := ledger.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, stored.Status)

	_, err = ledger.SetStatus(ctx, 99, leave.StatusRejected, "M001", "nope")
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
}

func TestLedger_AllIsRestartable(t *testing.T) {
	ctx := context.Background()
	ledger := leave.NewLedger(counter.NewRepository())
	_, err := ledger.Allocate(ctx, "E001", date("2026-03-01"), date("2026-03-01"), 1, domain.CategoryAnnual, "A")
	require.NoError(t, err)

	seq := ledger.All(ctx)
	assert.Len(t, slices.Collect(seq), 1)

	_, err = ledger.Allocate(ctx, "E001", date("2026-03-05"), date("2026-03-05"), 1, domain.CategoryAnnual, "B")
	require.NoError(t, err)
	_, err = ledger.SetStatus(ctx, 1, leave.StatusRejected, "M001", "no")
	require.NoError(t, err)

	again := slices.Collect(seq)
	require.Len(t, again, 2)
	assert.Equal(t, leave.StatusRejected, again[0].Status)
	assert.Equal(t, int64(2), again[1].ID)
}

func TestLedger_AllStopsEarly(t *testing.T) {
	ctx := context.Background()
	ledger := leave.NewLedger(counter.NewRepository())
	for i := 0; i < 5; i++ {
		_, err := ledger.Allocate(ctx, "E001", date("2026-03-01"), date("2026-03-01"), 1, domain.CategoryAnnual, "x")
		require.NoError(t, err)
	}

	seen := 0
	for range ledger.All(ctx) {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestLedger_SnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	ledger := leave.NewLedger(counter.NewRepository())
	created, err := ledger.Allocate(ctx, "E001", date("2026-03-01"), date("2026-03-01"), 1, domain.CategoryAnnual, "x")
	require.NoError(t, err)

	created.Status = leave.StatusApproved
	for req := range ledger.All(ctx) {
		req.Status = leave.StatusRejected
	}

	got, err := ledger.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, got.Status)
}

func TestLeaveDays(t *testing.T) {
	assert.Equal(t, 1, leave.LeaveDays(date("2026-03-01"), date("2026-03-01")))
	assert.Equal(t, 3, leave.LeaveDays(date("2026-03-01"), date("2026-03-03")))
	assert.Equal(t, 0, leave.LeaveDays(date("2026-03-02"), date("2026-03-01")))
	assert.Equal(t, 2, leave.LeaveDays(date("2026-02-28"), date("2026-03-01")))
	assert.Equal(t, 366, leave.LeaveDays(date("2028-01-01"), date("2028-12-31")))
	assert.Equal(t, 3652059, leave.LeaveDays(date("0001-01-01"), date("9999-12-31")))
	assert.Equal(t, -3652057, leave.LeaveDays(date("9999-12-31"), date("0001-01-01")))
	// time of day is ignored
	loc := time.FixedZone("UTC+7", 7*3600)
	assert.Equal(t, 1, leave.LeaveDays(
		time.Date(2026, 3, 29, 23, 0, 0, 0, loc),
		time.Date(2026, 3, 29, 1, 0, 0, 0, loc),
	))
}
