package leave

import (
	"time"

	"go-leave/internal/domain"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type LeaveRequest struct {
	ID            int64
	EmployeeID    string
	StartDate     time.Time
	EndDate       time.Time
	TotalDays     int
	Category      domain.Category
	Reason        string
	Status        Status
	ReviewedBy    string
	ReviewComment string
	CreatedAt     time.Time
	ReviewedAt    *time.Time
}

func (l LeaveRequest) clone() LeaveRequest {
	if l.ReviewedAt != nil {
		t := *l.ReviewedAt
		l.ReviewedAt = &t
	}
	return l
}

// CalendarDate drops the clock and zone, keeping the calendar day of t.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// LeaveDays counts the calendar days from start to end, both inclusive.
// It is zero or negative when end falls before start.
func LeaveDays(start, end time.Time) int {
	const secondsPerDay = 24 * 60 * 60
	return int((CalendarDate(end).Unix()-CalendarDate(start).Unix())/secondsPerDay) + 1
}
