package leave_test

import (
	"context"
	"testing"

	"go-leave/internal/domain"
	"go-leave/internal/leave"
	"go-leave/internal/shared/counter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLedger(t *testing.T) leave.Ledger {
	t.Helper()
	ctx := context.Background()
	ledger := leave.NewLedger(counter.NewRepository())

	rows := []struct {
		employee string
		start    string
	}{
		{"E001", "2026-05-10"}, // 1
		{"E002", "2026-03-01"}, // 2
		{"E001", "2026-01-15"}, // 3
		{"E001", "2026-08-01"}, // 4
		{"E002", "2026-01-15"}, // 5
	}
	for _, r := range rows {
		_, err := ledger.Allocate(ctx, r.employee, date(r.start), date(r.start), 1, domain.CategoryAnnual, "x")
		require.NoError(t, err)
	}
	_, err := ledger.SetStatus(ctx, 3, leave.StatusApproved, "M001", "approved")
	require.NoError(t, err)
	return ledger
}

func ids(reqs []leave.LeaveRequest) []int64 {
	out := make([]int64, len(reqs))
	for i, r := range reqs {
		out[i] = r.ID
	}
	return out
}

func TestQuery_RequestsFor(t *testing.T) {
	q := leave.NewQuery(seedLedger(t))

	got := q.RequestsFor(context.Background(), "E001")

	assert.Equal(t, []int64{4, 1, 3}, ids(got))
	assert.Empty(t, q.RequestsFor(context.Background(), "E404"))
}

func TestQuery_Pending(t *testing.T) {
	q := leave.NewQuery(seedLedger(t))

	got := q.Pending(context.Background())

	assert.Equal(t, []int64{5, 2, 1, 4}, ids(got))
	for _, r := range got {
		assert.Equal(t, leave.StatusPending, r.Status)
	}
}

func TestQuery_All(t *testing.T) {
	q := leave.NewQuery(seedLedger(t))

	got := q.All(context.Background())

	assert.Equal(t, []int64{3, 5, 2, 1, 4}, ids(got))
}
