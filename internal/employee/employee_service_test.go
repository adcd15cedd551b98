package employee_test

import (
	"context"
	"testing"

	"go-leave/internal/domain"
	"go-leave/internal/employee"
	employeeerrors "go-leave/internal/employee/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success parses case-insensitive categories", func(t *testing.T) {
		svc := employee.NewService(employee.NewRegistry())

		resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			ID:       "E001",
			FullName: "Alice Smith",
			Balances: map[string]int{"annual": 20, "Sick": 10},
		})

		require.NoError(t, err)
		assert.Equal(t, "E001", resp.ID)
		require.Len(t, resp.Balances, 4)
		assert.Equal(t, employee.BalanceResponse{LeaveType: "ANNUAL", Days: 20}, resp.Balances[0])
		assert.Equal(t, employee.BalanceResponse{LeaveType: "SICK", Days: 10}, resp.Balances[1])
		assert.Equal(t, employee.BalanceResponse{LeaveType: "UNPAID", Days: domain.UnlimitedDays, Unlimited: true}, resp.Balances[2])
		assert.Equal(t, employee.BalanceResponse{LeaveType: "MATERNITY", Days: 0}, resp.Balances[3])
	})

	t.Run("invalid category", func(t *testing.T) {
		svc := employee.NewService(employee.NewRegistry())

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			ID:       "E001",
			FullName: "Alice Smith",
			Balances: map[string]int{"holiday": 3},
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := employee.NewService(employee.NewRegistry())
		req := employee.CreateEmployeeRequest{ID: "E001", FullName: "Alice Smith"}
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)

		_, err = svc.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrDuplicateEmployee)
	})
}

func TestEmployeeService_GetBalances(t *testing.T) {
	ctx := context.Background()
	reg := employee.NewRegistry()
	_, err := reg.Register(ctx, "E001", "Alice Smith", map[domain.Category]int{domain.CategoryAnnual: 7})
	require.NoError(t, err)
	svc := employee.NewService(reg)

	resp, err := svc.GetBalances(ctx, "E001")
	require.NoError(t, err)
	assert.Equal(t, "E001", resp.EmployeeID)
	assert.Equal(t, 7, resp.Balances[0].Days)

	_, err = svc.GetBalances(ctx, "E404")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}
