package employee

import (
	"maps"
	"time"

	"go-leave/internal/domain"
)

type Employee struct {
	ID        string
	FullName  string
	Balances  map[domain.Category]int
	CreatedAt time.Time
}

func (e Employee) clone() Employee {
	e.Balances = maps.Clone(e.Balances)
	return e
}
