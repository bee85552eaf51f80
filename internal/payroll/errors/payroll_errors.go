package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidQuarter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid quarter, expected Q1 to Q4",
		http.StatusBadRequest,
	)
	ErrQuarterNotElapsed = apperror.New(
		apperror.CodeInvalidState,
		"quarter has not fully elapsed yet",
		http.StatusBadRequest,
	)
	ErrCTCNotSet = apperror.New(
		apperror.CodeInvalidState,
		"cost to company has not been set for this employee",
		http.StatusBadRequest,
	)
	ErrAlreadyReleased = apperror.New(
		apperror.CodeConflict,
		"salary already released for this pay period",
		http.StatusConflict,
	)
	ErrSalaryRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrMonthBeforeJoining = apperror.New(
		apperror.CodeInvalidInput,
		"pay period ends before the employee's joining date",
		http.StatusBadRequest,
	)
)
