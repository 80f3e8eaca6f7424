package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	appdomain "github.com/spangleswebx/backoffice/internal/application/domain"
	"github.com/spangleswebx/backoffice/internal/authorization"
	blogdomain "github.com/spangleswebx/backoffice/internal/blog/domain"
	docdomain "github.com/spangleswebx/backoffice/internal/document/domain"
	gallerydomain "github.com/spangleswebx/backoffice/internal/gallery/domain"
	jobdomain "github.com/spangleswebx/backoffice/internal/job/domain"
	userdomain "github.com/spangleswebx/backoffice/internal/user/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrUnauthorized = errors.New("unauthorized")

// ErrorHandlingMiddleware translates errors collected by handlers into
// JSON responses after the chain has run.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{{
			Field:   field,
			Code:    code,
			Message: message,
		}},
	}
}

var notFoundErrors = []error{
	docdomain.ErrNotFound,
	jobdomain.ErrNotFound,
	appdomain.ErrNotFound,
	blogdomain.ErrNotFound,
	gallerydomain.ErrNotFound,
	gallerydomain.ErrItemNotFound,
	userdomain.ErrNotFound,
}

var badRequestErrors = []error{
	docdomain.ErrInvalidType,
	docdomain.ErrNoItems,
	docdomain.ErrInvalidItem,
	docdomain.ErrPartyIncomplete,
	docdomain.ErrInvalidEmail,
	docdomain.ErrInvalidPhone,
	docdomain.ErrInvalidDiscount,
	docdomain.ErrInvalidNumber,
	docdomain.ErrInvalidID,
	jobdomain.ErrTitleMissing,
	jobdomain.ErrInvalidID,
	appdomain.ErrNameMissing,
	appdomain.ErrResumeMissing,
	appdomain.ErrStatusMissing,
	appdomain.ErrInvalidID,
	blogdomain.ErrTitleMissing,
	blogdomain.ErrContentMissing,
	blogdomain.ErrInvalidID,
	gallerydomain.ErrTitleMissing,
	gallerydomain.ErrNoFiles,
	gallerydomain.ErrInvalidID,
	userdomain.ErrNameMissing,
	userdomain.ErrUsernameMissing,
	userdomain.ErrPasswordMissing,
	userdomain.ErrInvalidID,
	userdomain.ErrChallengeInvalid,
	userdomain.ErrChallengeNotVerified,
	userdomain.ErrWeakPassword,
	userdomain.ErrSamePassword,
	userdomain.ErrNoRecoveryAccount,
}

func mapError(err error) (int, errorPayload) {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, userdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, authorization.ErrForbidden):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "forbidden",
		}
	case errors.Is(err, userdomain.ErrUsernameTaken):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	}

	for _, known := range notFoundErrors {
		if errors.Is(err, known) {
			return http.StatusNotFound, errorPayload{
				Type:    "not_found",
				Message: err.Error(),
			}
		}
	}
	for _, known := range badRequestErrors {
		if errors.Is(err, known) {
			return http.StatusBadRequest, errorPayload{
				Type:    "validation_error",
				Message: err.Error(),
			}
		}
	}

	// Store and pipeline failures stay generic so internals never leak.
	return http.StatusInternalServerError, errorPayload{
		Type:    "internal_error",
		Message: "internal server error",
	}
}
