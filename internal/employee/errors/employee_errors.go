package employeeerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrDuplicateEmployee = apperror.New(
		apperror.CodeConflict,
		"Employee with the same id already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidBalance = apperror.New(
		apperror.CodeInvalidInput,
		"Leave balance cannot be negative",
		http.StatusBadRequest,
	)
	ErrBalanceExhausted = apperror.New(
		apperror.CodeInvalidState,
		"Leave balance would become negative",
		http.StatusConflict,
	)
)
