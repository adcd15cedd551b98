package domain

import (
	"math"
	"net/http"
	"strings"

	"go-leave/internal/shared/apperror"
)

// Category is a leave type. It decides which balance a request is checked
// against and debited from.
type Category string

const (
	CategoryAnnual    Category = "ANNUAL"
	CategorySick      Category = "SICK"
	CategoryUnpaid    Category = "UNPAID"
	CategoryMaternity Category = "MATERNITY"
)

// UnlimitedDays is the balance held for categories that are never debited.
const UnlimitedDays = math.MaxInt32

var ErrInvalidCategory = apperror.New(
	apperror.CodeInvalidInput,
	"invalid leave type, expected one of ANNUAL, SICK, UNPAID, MATERNITY",
	http.StatusBadRequest,
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryAnnual, CategorySick, CategoryUnpaid, CategoryMaternity}
}

// ParseCategory accepts any letter case and surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryAnnual, CategorySick, CategoryUnpaid, CategoryMaternity:
		return true
	}
	return false
}

// Unlimited reports whether the category bypasses balance accounting.
func (c Category) Unlimited() bool {
	return c == CategoryUnpaid
}

func (c Category) String() string {
	return string(c)
}
