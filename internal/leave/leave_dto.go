package leave

import (
	"strconv"
	"strings"
	"time"

	leaveerrors "go-leave/internal/leave/errors"
)

const dateLayout = "2006-01-02"

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,notblank"`
	LeaveType  string `json:"leave_type" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Reason     string `json:"reason" binding:"required,max=500"`
}

type ReviewLeaveRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required,notblank"`
	Comment    string `json:"comment" binding:"max=500"`
}

type LeaveResponse struct {
	ID            int64   `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalDays     int     `json:"total_days"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	ReviewedBy    *string `json:"reviewed_by,omitempty"`
	ReviewComment *string `json:"review_comment,omitempty"`
	ReviewedAt    *string `json:"reviewed_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type ReviewResponse struct {
	Processed bool          `json:"processed"`
	Leave     LeaveResponse `json:"leave"`
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func parseLeaveID(v string) (int64, error) {
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id < 1 {
		return 0, leaveerrors.ErrInvalidLeaveID
	}
	return id, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		LeaveType:  l.Category.String(),
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		TotalDays:  l.TotalDays,
		Reason:     l.Reason,
		Status:     string(l.Status),
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
	}
	if l.Status.Terminal() {
		reviewedBy := l.ReviewedBy
		comment := l.ReviewComment
		resp.ReviewedBy = &reviewedBy
		resp.ReviewComment = &comment
	}
	if l.ReviewedAt != nil {
		v := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
