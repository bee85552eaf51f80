package queryerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrQueryNotFound = apperror.New(
		apperror.CodeNotFound,
		"query not found",
		http.StatusNotFound,
	)
	ErrSalaryRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary record not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrNotRecordOwner = apperror.New(
		apperror.CodeForbidden,
		"salary record belongs to another employee",
		http.StatusForbidden,
	)
	ErrQueryResolved = apperror.New(
		apperror.CodeInvalidState,
		"query is already resolved",
		http.StatusBadRequest,
	)
)
