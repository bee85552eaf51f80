package ctcerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrCTCNotFound = apperror.New(
		apperror.CodeNotFound,
		"no compensation record for this employee",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrCTCOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"cost to company must be between 18,000 and 5,000,000",
		http.StatusBadRequest,
	)
)
