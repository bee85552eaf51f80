package designationerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrDesignationNotFound = apperror.New(
		apperror.CodeNotFound,
		"designation not found",
		http.StatusNotFound,
	)
	ErrDesignationAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"designation with this name already exists",
		http.StatusConflict,
	)
	ErrInvalidDesignationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid designation id",
		http.StatusBadRequest,
	)
)
