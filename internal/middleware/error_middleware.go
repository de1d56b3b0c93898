package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campusbridge/internal/app/models/dto"
	"github.com/campusbridge/campusbridge/internal/pkg/apperrors"
	"github.com/campusbridge/campusbridge/internal/pkg/auth"
	"github.com/campusbridge/campusbridge/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Every controller
// funnels errors through here so status codes and payload shapes stay uniform.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCursor):
		respondError(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCursor, errMessage(err)).WithField("cursor"))

	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, errMessage(err)))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"))

	case errors.Is(err, apperrors.ErrAccountNotVerified):
		respondError(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeAccountNotVerified, "Account is not verified yet"))

	case errors.Is(err, auth.ErrExpiredToken):
		respondError(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"))

	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidFormat):
		respondError(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden,
			dto.NewErrorDetail(dto.ErrorCodeForbidden, errMessage(err)))

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrPostNotFound),
		errors.Is(err, apperrors.ErrCommentNotFound),
		errors.Is(err, apperrors.ErrCollegeNotFound),
		errors.Is(err, apperrors.ErrAlumniNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound):
		respondError(c, http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, errMessage(err)))

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrPhoneAlreadyExists),
		errors.Is(err, apperrors.ErrAlumniAlreadyExists),
		errors.Is(err, apperrors.ErrStudentAlreadyExists),
		errors.Is(err, apperrors.ErrRollNumberAlreadyUsed):
		respondError(c, http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, errMessage(err)))

	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

// errMessage prefers the human-readable message of a CustomError over the
// wrapped sentinel text.
func errMessage(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return err.Error()
}

func respondError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.NewErrorResponse(detail))
}
