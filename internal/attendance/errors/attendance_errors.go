package attendanceerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrAlreadyMarked = apperror.New(
		apperror.CodeConflict,
		"attendance already marked for this date",
		http.StatusConflict,
	)
	ErrOutOfWindow = apperror.New(
		apperror.CodeInvalidState,
		"attendance can only be marked between 09:00 and 18:00 on working days",
		http.StatusBadRequest,
	)
	ErrRegularizeOutOfWindow = apperror.New(
		apperror.CodeInvalidState,
		"regularization is only allowed between 18:01 and 23:00",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrNotToday = apperror.New(
		apperror.CodeInvalidInput,
		"attendance can only be marked for the current date",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month, expected YYYY-MM",
		http.StatusBadRequest,
	)
)
