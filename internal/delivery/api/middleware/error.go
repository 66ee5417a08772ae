package middleware

import (
	"log/slog"
	"net/http"

	"alzassist/internal/delivery/api/response"
	deliverycontext "alzassist/internal/delivery/context"
	domainerrors "alzassist/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is the echo HTTPErrorHandler. It writes every error in the response envelope.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.LoggerFromContext(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("details", appErr.Details()),
				slog.Any("error", err),
			)
		}
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = m.handleEchoError(c, httpErr)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.AppError(c, domainerrors.ErrInternalError)
}

func (m *ErrorMiddleware) handleEchoError(c echo.Context, httpErr *echo.HTTPError) error {
	switch httpErr.Code {
	case http.StatusNotFound:
		return response.AppError(c, domainerrors.ErrNotFound)
	case http.StatusMethodNotAllowed:
		return response.Error(c, httpErr.Code, "METHOD_NOT_ALLOWED", "Method not allowed", "")
	case http.StatusRequestEntityTooLarge:
		return response.Error(c, httpErr.Code, "PAYLOAD_TOO_LARGE", "Request body too large", "")
	}

	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	}

	return response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")
}
