package leaveerrors

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
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"endDate must be on or after startDate",
		http.StatusBadRequest,
	)
	ErrStartDateInPast = apperror.New(
		apperror.CodeInvalidInput,
		"startDate must not be in the past",
		http.StatusBadRequest,
	)
	ErrInvalidHalf = apperror.New(
		apperror.CodeInvalidInput,
		"half must be Morning or Afternoon",
		http.StatusBadRequest,
	)
	ErrLeavesExhausted = apperror.New(
		apperror.CodeConflict,
		"not enough leave balance for this request",
		http.StatusConflict,
	)
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"no leave balance for this leave type",
		http.StatusNotFound,
	)
	ErrLeaveRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"leave request is not pending",
		http.StatusBadRequest,
	)
	ErrNotRequestOwner = apperror.New(
		apperror.CodeForbidden,
		"leave request belongs to another employee",
		http.StatusForbidden,
	)
	ErrNotDirectReport = apperror.New(
		apperror.CodeForbidden,
		"requester does not report to you",
		http.StatusForbidden,
	)
	ErrCancelWindowClosed = apperror.New(
		apperror.CodeInvalidState,
		"leave can no longer be cancelled once it has started",
		http.StatusBadRequest,
	)
)
