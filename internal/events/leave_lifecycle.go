package events

import "time"

const LeaveLifecycleTopic = "hr.leave.lifecycle.v1"

const (
	EventTypeLeaveSubmitted = "leave.submitted"
	EventTypeLeaveReviewed  = "leave.reviewed"
)

type LeaveSubmittedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	LeaveID    int64     `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	TotalDays  int       `json:"total_days"`
	OccurredAt time.Time `json:"occurred_at"`
}

type LeaveReviewedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	LeaveID    int64     `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	TotalDays  int       `json:"total_days"`
	Decision   string    `json:"decision"`
	Status     string    `json:"status"`
	ReviewedBy string    `json:"reviewed_by"`
	Comment    string    `json:"comment"`
	OccurredAt time.Time `json:"occurred_at"`
}
