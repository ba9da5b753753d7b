package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/avamus/visionboard/errors"
)

// errs is the error body served to clients. Details carries extra
// context on 4xx responses only; 5xx causes stay in the server log.
type errs struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// handleError centralizes error translation and logging. AppErrors map
// to their HTTP code and public message; anything else is a 500 with a
// generic body and the cause logged server-side.
func handleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}

		body := errs{Error: appErr.Message}
		if appErr.HTTPCode < http.StatusInternalServerError {
			body.Details = appErr.Details
		}
		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.JSON(http.StatusInternalServerError, errs{Error: "Internal server error"})
}
