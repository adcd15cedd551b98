package leave

import (
	"context"
	"iter"
	"sync"
	"time"

	"go-leave/internal/domain"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/shared/counter"
)

const leaveIDCounter = "leave_request"

// Ledger stores leave requests by id. It does not judge whether a status
// change is legal; that belongs to the Service.
type Ledger interface {
	Allocate(ctx context.Context, employeeID string, start, end time.Time, totalDays int, category domain.Category, reason string) (LeaveRequest, error)
	Get(ctx context.Context, id int64) (LeaveRequest, error)
	All(ctx context.Context) iter.Seq[LeaveRequest]
	SetStatus(ctx context.Context, id int64, status Status, reviewerID, comment string) (LeaveRequest, error)
}

type ledger struct {
	mu       sync.RWMutex
	requests map[int64]*LeaveRequest
	order    []int64
	ids      counter.Repository
	now      func() time.Time
}

func NewLedger(ids counter.Repository) Ledger {
	return &ledger{
		requests: make(map[int64]*LeaveRequest),
		ids:      ids,
		now:      time.Now,
	}
}

func (l *ledger) Allocate(
	ctx context.Context,
	employeeID string,
	start, end time.Time,
	totalDays int,
	category domain.Category,
	reason string,
) (LeaveRequest, error) {
	id, err := l.ids.GetNextValue(ctx, leaveIDCounter)
	if err != nil {
		return LeaveRequest{}, err
	}

	req := &LeaveRequest{
		ID:         id,
		EmployeeID: employeeID,
		StartDate:  CalendarDate(start),
		EndDate:    CalendarDate(end),
		TotalDays:  totalDays,
		Category:   category,
		Reason:     reason,
		Status:     StatusPending,
		CreatedAt:  l.now().UTC(),
	}

	l.mu.Lock()
	l.requests[id] = req
	l.order = append(l.order, id)
	l.mu.Unlock()

	return req.clone(), nil
}

func (l *ledger) Get(ctx context.Context, id int64) (LeaveRequest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	req, ok := l.requests[id]
	if !ok {
		return LeaveRequest{}, leaveerrors.ErrLeaveNotFound
	}
	return req.clone(), nil
}

// All yields every request in insertion order. The snapshot is taken when
// iteration starts, so ranging again reflects later changes.
func (l *ledger) All(ctx context.Context) iter.Seq[LeaveRequest] {
	return func(yield func(LeaveRequest) bool) {
		for _, req := range l.snapshot() {
			if ctx.Err() != nil {
				return
			}
			if !yield(req) {
				return
			}
		}
	}
}

func (l *ledger) snapshot() []LeaveRequest {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]LeaveRequest, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.requests[id].clone())
	}
	return out
}

func (l *ledger) SetStatus(ctx context.Context, id int64, status Status, reviewerID, comment string) (LeaveRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	req, ok := l.requests[id]
	if !ok {
		return LeaveRequest{}, leaveerrors.ErrLeaveNotFound
	}

	now := l.now().UTC()
	req.Status = status
	req.ReviewedBy = reviewerID
	req.ReviewComment = comment
	req.ReviewedAt = &now
	return req.clone(), nil
}
