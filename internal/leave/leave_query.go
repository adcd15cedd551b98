package leave

import (
	"cmp"
	"context"
	"slices"
)

// Query is a read-only view over a Ledger. Nothing here changes state.
type Query struct {
	ledger Ledger
}

func NewQuery(ledger Ledger) *Query {
	return &Query{ledger: ledger}
}

// RequestsFor returns the employee's requests, most recent start date first.
func (q *Query) RequestsFor(ctx context.Context, employeeID string) []LeaveRequest {
	var out []LeaveRequest
	for req := range q.ledger.All(ctx) {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	slices.SortStableFunc(out, func(a, b LeaveRequest) int {
		return byStartAsc(b, a)
	})
	return out
}

// Pending returns requests awaiting review, oldest start date first.
func (q *Query) Pending(ctx context.Context) []LeaveRequest {
	var out []LeaveRequest
	for req := range q.ledger.All(ctx) {
		if req.Status == StatusPending {
			out = append(out, req)
		}
	}
	slices.SortStableFunc(out, byStartAsc)
	return out
}

// All returns every request, oldest start date first.
func (q *Query) All(ctx context.Context) []LeaveRequest {
	out := slices.Collect(q.ledger.All(ctx))
	slices.SortStableFunc(out, byStartAsc)
	return out
}

func byStartAsc(a, b LeaveRequest) int {
	if c := a.StartDate.Compare(b.StartDate); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
