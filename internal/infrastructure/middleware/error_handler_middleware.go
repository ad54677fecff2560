package middleware

import (
	"errors"
	"net/http"

	"skateplan/internal/core/domain"
	"skateplan/internal/infrastructure/gateway"
	apperrors "skateplan/pkg/errors"
	"skateplan/pkg/logger"
	"skateplan/pkg/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandlerMiddleware turns the last error attached to the context into
// a JSON error response. Backend failures keep their status code.
func ErrorHandlerMiddleware(log *logger.ContextLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := ToAppError(c.Errors.Last().Err)
		log.LogWarn(c.Request.Context(), "request failed",
			zap.String("code", string(appErr.Code)),
			zap.String("message", appErr.Message),
			zap.Int("status", appErr.HTTPStatus),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)

		if c.Writer.Written() {
			return
		}
		body := gin.H{
			"error":   string(appErr.Code),
			"message": appErr.Message,
		}
		if len(appErr.Context) > 0 {
			body["details"] = appErr.Context
		}
		c.JSON(appErr.HTTPStatus, body)
	}
}

// ToAppError maps any error raised while serving a request to an AppError.
func ToAppError(err error) *apperrors.AppError {
	var fe validation.FieldErrors
	switch {
	case errors.As(err, &fe):
		appErr := apperrors.WrapError(err, apperrors.ErrCodeInvalidInput, "validation failed", http.StatusBadRequest)
		for field, msg := range fe {
			appErr.WithContext(field, msg)
		}
		return appErr
	case errors.Is(err, domain.ErrInvalidEntity), errors.Is(err, domain.ErrInvalidDay),
		errors.Is(err, domain.ErrInvalidDayField), errors.Is(err, domain.ErrInvalidDayStatus),
		errors.Is(err, domain.ErrInvalidDates):
		return apperrors.WrapError(err, apperrors.ErrCodeInvalidInput, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotAuthenticated), errors.Is(err, domain.ErrNoToken):
		return apperrors.WrapError(err, apperrors.ErrCodeUnauthorized, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, domain.ErrReadOnly):
		return apperrors.NewForbiddenError(err.Error()).WithCause(err)
	case errors.Is(err, domain.ErrPlanNotFound):
		return apperrors.NewNotFoundError("weekly plan").WithCause(err)
	}
	return gateway.ToAppError(err)
}

// RecoveryMiddleware recovers from panics and returns proper error responses
func RecoveryMiddleware(log *logger.ContextLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithContext(c.Request.Context()).Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)

				appErr := apperrors.NewInternalError("Internal server error")
				c.AbortWithStatusJSON(appErr.HTTPStatus, gin.H{
					"error":   string(appErr.Code),
					"message": appErr.Message,
				})
			}
		}()

		c.Next()
	}
}
