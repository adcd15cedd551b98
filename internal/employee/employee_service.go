package employee

import (
	"context"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetBalances(ctx context.Context, id string) (BalancesResponse, error)
}

type service struct {
	registry Registry
	logger   *zap.Logger
}

func NewService(registry Registry, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{registry: registry, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested", zap.String("employee_id", req.ID))

	balances := make(map[domain.Category]int, len(req.Balances))
	for name, days := range req.Balances {
		c, err := domain.ParseCategory(name)
		if err != nil {
			return EmployeeResponse{}, err
		}
		balances[c] = days
	}

	e, err := s.registry.Register(ctx, req.ID, req.FullName, balances)
	if err != nil {
		log.Warn("create employee failed", zap.String("employee_id", req.ID), zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("create employee success", zap.String("employee_id", e.ID))
	return mapToResponse(e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.registry.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.registry.Lookup(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(e), nil
}

func (s *service) GetBalances(ctx context.Context, id string) (BalancesResponse, error) {
	balances, err := s.registry.Balances(ctx, id)
	if err != nil {
		return BalancesResponse{}, err
	}
	return BalancesResponse{
		EmployeeID: id,
		Balances:   mapBalances(balances),
	}, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		FullName:  e.FullName,
		Balances:  mapBalances(e.Balances),
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

func mapBalances(balances map[domain.Category]int) []BalanceResponse {
	resp := make([]BalanceResponse, 0, len(balances))
	for _, c := range domain.Categories() {
		days, ok := balances[c]
		if !ok {
			continue
		}
		resp = append(resp, BalanceResponse{
			LeaveType: c.String(),
			Days:      days,
			Unlimited: c.Unlimited(),
		})
	}
	return resp
}
