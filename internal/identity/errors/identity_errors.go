package identityerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"invalid auth token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"auth token expired",
		http.StatusUnauthorized,
	)
	ErrUnknownUser = apperror.New(
		apperror.CodeUnauthorized,
		"no profile for this user",
		http.StatusUnauthorized,
	)
)
