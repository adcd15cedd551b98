package leave

import (
	"context"
	"strings"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/employee"
	"go-leave/internal/events"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

const (
	CommentApproved            = "approved"
	CommentRejected            = "rejected by reviewer"
	CommentInsufficientBalance = "insufficient balance at approval"
)

type Service interface {
	Submit(ctx context.Context, employeeID string, start, end time.Time, category domain.Category, reason string) (LeaveRequest, error)
	// Review reports whether the request was processed, i.e. it existed and
	// was pending. An approval that no longer fits the balance is processed
	// as a rejection; read the request back to see the outcome.
	// Unprocessed reviews return false with ErrLeaveNotFound for an unknown
	// id or ErrAlreadyReviewed for a request that is no longer pending.
	Review(ctx context.Context, id int64, decision Decision, reviewerID, comment string) (bool, error)
	Get(ctx context.Context, id int64) (LeaveRequest, error)
	BalancesOf(ctx context.Context, employeeID string) (map[domain.Category]int, error)
	HistoryOf(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	PendingQueue(ctx context.Context) ([]LeaveRequest, error)
	All(ctx context.Context) ([]LeaveRequest, error)
}

type service struct {
	registry  employee.Registry
	ledger    Ledger
	query     *Query
	publisher EventPublisher
	locks     *employeeLock
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(registry employee.Registry, ledger Ledger, logger ...*zap.Logger) Service {
	return NewServiceWithPublisher(registry, ledger, nil, logger...)
}

func NewServiceWithPublisher(
	registry employee.Registry,
	ledger Ledger,
	publisher EventPublisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	return &service{
		registry:  registry,
		ledger:    ledger,
		query:     NewQuery(ledger),
		publisher: publisher,
		locks:     newEmployeeLock(),
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Submit(
	ctx context.Context,
	employeeID string,
	start, end time.Time,
	category domain.Category,
	reason string,
) (LeaveRequest, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("submit leave requested",
		zap.String("employee_id", employeeID),
		zap.String("leave_type", category.String()),
		zap.Time("start_date", start),
		zap.Time("end_date", end),
	)

	totalDays := LeaveDays(start, end)
	if totalDays <= 0 {
		metrics.RecordSubmission(category.String(), "invalid_range")
		return LeaveRequest{}, leaveerrors.ErrInvalidDateRange
	}
	if !category.Valid() {
		return LeaveRequest{}, domain.ErrInvalidCategory
	}

	req, err := s.allocate(ctx, log, employeeID, start, end, totalDays, category, reason)
	if err != nil {
		return LeaveRequest{}, err
	}

	metrics.RecordSubmission(category.String(), "created")
	log.Info("submit leave success",
		zap.Int64("leave_id", req.ID),
		zap.String("employee_id", employeeID),
		zap.Int("total_days", totalDays),
	)

	s.publishSubmitted(ctx, log, req)
	return req, nil
}

// allocate checks the balance and stores the request while holding the
// employee lock. The lock is released before anything is published.
func (s *service) allocate(
	ctx context.Context,
	log *zap.Logger,
	employeeID string,
	start, end time.Time,
	totalDays int,
	category domain.Category,
	reason string,
) (LeaveRequest, error) {
	unlock := s.locks.Lock(employeeID)
	defer unlock()

	balances, err := s.registry.Balances(ctx, employeeID)
	if err != nil {
		log.Warn("submit leave employee lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return LeaveRequest{}, err
	}

	if have := balances[category]; !category.Unlimited() && have < totalDays {
		log.Warn("submit leave insufficient balance",
			zap.String("employee_id", employeeID),
			zap.String("leave_type", category.String()),
			zap.Int("have", have),
			zap.Int("need", totalDays),
		)
		metrics.RecordSubmission(category.String(), "insufficient_balance")
		return LeaveRequest{}, &leaveerrors.InsufficientBalanceError{
			Category: category,
			Have:     have,
			Need:     totalDays,
		}
	}

	req, err := s.ledger.Allocate(ctx, employeeID, start, end, totalDays, category, strings.TrimSpace(reason))
	if err != nil {
		log.Error("submit leave allocate failed", zap.Error(err))
		return LeaveRequest{}, err
	}
	return req, nil
}

func (s *service) Review(ctx context.Context, id int64, decision Decision, reviewerID, comment string) (bool, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("review leave requested",
		zap.Int64("leave_id", id),
		zap.String("decision", string(decision)),
		zap.String("reviewer_id", reviewerID),
	)

	if decision != DecisionApprove && decision != DecisionReject {
		return false, leaveerrors.ErrInvalidDecision
	}
	reviewerID = strings.TrimSpace(reviewerID)
	if reviewerID == "" {
		return false, leaveerrors.ErrInvalidReviewerID
	}

	reviewed, err := s.review(ctx, log, id, decision, reviewerID, comment)
	if err != nil {
		return false, err
	}

	metrics.RecordReview(string(decision), string(reviewed.Status))
	log.Info("review leave success",
		zap.Int64("leave_id", id),
		zap.String("decision", string(decision)),
		zap.String("status", string(reviewed.Status)),
	)

	s.publishReviewed(ctx, log, reviewed, decision)
	return true, nil
}

// review moves a pending request to its final status while holding the
// employee lock, so the balance check and the debit cannot interleave with
// another approval for the same employee.
func (s *service) review(
	ctx context.Context,
	log *zap.Logger,
	id int64,
	decision Decision,
	reviewerID, comment string,
) (LeaveRequest, error) {
	req, err := s.ledger.Get(ctx, id)
	if err != nil {
		return LeaveRequest{}, err
	}

	unlock := s.locks.Lock(req.EmployeeID)
	defer unlock()

	req, err = s.ledger.Get(ctx, id)
	if err != nil {
		return LeaveRequest{}, err
	}
	if req.Status != StatusPending {
		log.Warn("review leave already reviewed",
			zap.Int64("leave_id", id),
			zap.String("status", string(req.Status)),
		)
		return LeaveRequest{}, leaveerrors.ErrAlreadyReviewed
	}

	status, note, err := s.decide(ctx, log, req, decision)
	if err != nil {
		return LeaveRequest{}, err
	}
	if comment = strings.TrimSpace(comment); comment != "" && note != CommentInsufficientBalance {
		note = comment
	}

	reviewed, err := s.ledger.SetStatus(ctx, id, status, reviewerID, note)
	if err != nil {
		log.Error("review leave set status failed", zap.Int64("leave_id", id), zap.Error(err))
		return LeaveRequest{}, err
	}
	return reviewed, nil
}

// decide returns the status a pending request moves to. Approval re-checks
// the balance because other approvals may have consumed it since
// submission; a shortfall turns the approval into a rejection.
func (s *service) decide(ctx context.Context, log *zap.Logger, req LeaveRequest, decision Decision) (Status, string, error) {
	if decision == DecisionReject {
		return StatusRejected, CommentRejected, nil
	}
	if req.Category.Unlimited() {
		return StatusApproved, CommentApproved, nil
	}

	balances, err := s.registry.Balances(ctx, req.EmployeeID)
	if err != nil {
		return "", "", err
	}
	if have := balances[req.Category]; have < req.TotalDays {
		log.Warn("review leave approval downgraded to rejection",
			zap.Int64("leave_id", req.ID),
			zap.String("leave_type", req.Category.String()),
			zap.Int("have", have),
			zap.Int("need", req.TotalDays),
		)
		return StatusRejected, CommentInsufficientBalance, nil
	}

	if _, err := s.registry.Debit(ctx, req.EmployeeID, req.Category, req.TotalDays); err != nil {
		log.Error("review leave debit failed", zap.Int64("leave_id", req.ID), zap.Error(err))
		return "", "", err
	}
	metrics.RecordApprovedDays(req.Category.String(), req.TotalDays)
	return StatusApproved, CommentApproved, nil
}

func (s *service) Get(ctx context.Context, id int64) (LeaveRequest, error) {
	return s.ledger.Get(ctx, id)
}

func (s *service) BalancesOf(ctx context.Context, employeeID string) (map[domain.Category]int, error) {
	return s.registry.Balances(ctx, employeeID)
}

func (s *service) HistoryOf(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	if _, err := s.registry.Lookup(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.query.RequestsFor(ctx, employeeID), nil
}

func (s *service) PendingQueue(ctx context.Context) ([]LeaveRequest, error) {
	return s.query.Pending(ctx), nil
}

func (s *service) All(ctx context.Context) ([]LeaveRequest, error) {
	return s.query.All(ctx), nil
}

// Publishing happens after the state change is final and outside the
// employee lock; a failed publish is logged and never rolls the change back.
func (s *service) publishSubmitted(ctx context.Context, log *zap.Logger, req LeaveRequest) {
	err := s.publisher.PublishLeaveSubmitted(ctx, events.LeaveSubmittedEvent{
		EventID:    uuid.NewString(),
		EventType:  events.EventTypeLeaveSubmitted,
		LeaveID:    req.ID,
		EmployeeID: req.EmployeeID,
		LeaveType:  req.Category.String(),
		StartDate:  req.StartDate.Format(dateLayout),
		EndDate:    req.EndDate.Format(dateLayout),
		TotalDays:  req.TotalDays,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		log.Error("publish leave submitted failed", zap.Int64("leave_id", req.ID), zap.Error(err))
	}
}

func (s *service) publishReviewed(ctx context.Context, log *zap.Logger, req LeaveRequest, decision Decision) {
	err := s.publisher.PublishLeaveReviewed(ctx, events.LeaveReviewedEvent{
		EventID:    uuid.NewString(),
		EventType:  events.EventTypeLeaveReviewed,
		LeaveID:    req.ID,
		EmployeeID: req.EmployeeID,
		LeaveType:  req.Category.String(),
		TotalDays:  req.TotalDays,
		Decision:   string(decision),
		Status:     string(req.Status),
		ReviewedBy: req.ReviewedBy,
		Comment:    req.ReviewComment,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		log.Error("publish leave reviewed failed", zap.Int64("leave_id", req.ID), zap.Error(err))
	}
}
