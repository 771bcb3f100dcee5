package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"venue-content-backend/internal/shared/apperror"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type Meta struct {
	Total     int    `json:"total"`
	DataError bool   `json:"dataError,omitempty"`
	Warning   string `json:"warning,omitempty"`
	Cached    string `json:"cached,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMeta(c *gin.Context, statusCode int, data interface{}, meta *Meta) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// DegradedList answers a public read whose store query failed: an empty list plus a
// dataError flag, so pages render a notice instead of breaking.
func DegradedList(c *gin.Context, err error) {
	log.Warn().Err(err).Str("path", c.FullPath()).Msg("read degraded to empty result")
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    []interface{}{},
		Meta:    &Meta{Total: 0, DataError: true, Warning: "content is temporarily unavailable"},
	})
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// FromError renders any service error with the status its kind maps to.
func FromError(c *gin.Context, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		InternalServerError(c, "internal server error")
		return
	}

	status := StatusFor(appErr)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("code", appErr.Code).Str("path", c.FullPath()).Msg("request failed")
	}

	if appErr.Field != "" {
		ErrorWithDetails(c, status, appErr.Code, appErr.Message, gin.H{"field": appErr.Field})
		return
	}
	ErrorResponse(c, status, appErr.Code, appErr.Message)
}

func StatusFor(appErr *apperror.Error) int {
	switch appErr.Kind {
	case apperror.KindValidation, apperror.KindInvalidAttachment:
		return http.StatusBadRequest
	case apperror.KindDomainRule:
		return http.StatusUnprocessableEntity
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindSyncInProgress:
		return http.StatusConflict
	case apperror.KindEmptyFeed:
		return http.StatusBadGateway
	case apperror.KindMissingConfiguration:
		return http.StatusServiceUnavailable
	case apperror.KindPersistence:
		var pgErr *pgconn.PgError
		if errors.As(appErr, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
			return http.StatusConflict
		}
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}
