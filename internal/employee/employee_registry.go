package employee

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"go-leave/internal/domain"
	employeeerrors "go-leave/internal/employee/errors"
)

// Registry holds employees and their leave balances. Every read returns a
// copy; balances change only through Debit.
type Registry interface {
	Register(ctx context.Context, id, fullName string, balances map[domain.Category]int) (Employee, error)
	Lookup(ctx context.Context, id string) (Employee, error)
	Balances(ctx context.Context, id string) (map[domain.Category]int, error)
	Debit(ctx context.Context, id string, category domain.Category, days int) (int, error)
	List(ctx context.Context) ([]Employee, error)
}

type registry struct {
	mu        sync.RWMutex
	employees map[string]*Employee
	now       func() time.Time
}

func NewRegistry() Registry {
	return &registry{
		employees: make(map[string]*Employee),
		now:       time.Now,
	}
}

func (r *registry) Register(ctx context.Context, id, fullName string, balances map[domain.Category]int) (Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Employee{}, employeeerrors.ErrInvalidEmployeeID
	}

	initial := make(map[domain.Category]int, len(domain.Categories()))
	for _, c := range domain.Categories() {
		initial[c] = 0
	}
	for c, days := range balances {
		if !c.Valid() {
			return Employee{}, domain.ErrInvalidCategory
		}
		if days < 0 {
			return Employee{}, employeeerrors.ErrInvalidBalance
		}
		initial[c] = days
	}
	initial[domain.CategoryUnpaid] = domain.UnlimitedDays

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.employees[id]; exists {
		return Employee{}, employeeerrors.ErrDuplicateEmployee
	}

	e := &Employee{
		ID:        id,
		FullName:  strings.TrimSpace(fullName),
		Balances:  initial,
		CreatedAt: r.now().UTC(),
	}
	r.employees[id] = e
	return e.clone(), nil
}

func (r *registry) Lookup(ctx context.Context, id string) (Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}
	return e.clone(), nil
}

func (r *registry) Balances(ctx context.Context, id string) (map[domain.Category]int, error) {
	e, err := r.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.Balances, nil
}

// Debit subtracts days from the category balance and returns what is left.
// Unlimited categories are left untouched. A debit that would take the
// balance below zero fails without changing anything.
func (r *registry) Debit(ctx context.Context, id string, category domain.Category, days int) (int, error) {
	if !category.Valid() {
		return 0, domain.ErrInvalidCategory
	}
	if days < 0 {
		return 0, employeeerrors.ErrInvalidBalance
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok {
		return 0, employeeerrors.ErrEmployeeNotFound
	}
	if category.Unlimited() {
		return e.Balances[category], nil
	}

	remaining := e.Balances[category] - days
	if remaining < 0 {
		return e.Balances[category], employeeerrors.ErrBalanceExhausted
	}
	e.Balances[category] = remaining
	return remaining, nil
}

func (r *registry) List(ctx context.Context) ([]Employee, error) {
	r.mu.RLock()
	out := make([]Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e.clone())
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Employee) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}
