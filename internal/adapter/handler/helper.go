package handler

import (
	"context"
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/errors"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/adapter/dto/common"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/ai"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/retry"
)

// getRequestID reads the id set by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data as the JSON body using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, data)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			log := logger.Error
			if appErr.HTTPCode < http.StatusInternalServerError {
				log = logger.Warn
			}
			log("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := common.ErrorResponse{
			Error:   appErr.Code.String(),
			Message: appErr.Message,
			Info:    info,
			Details: appErr.Details,
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

	body := common.ErrorResponse{
		Error:   errors.ErrorCode_INTERNAL.String(),
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// transcriptError translates transcript and model failures into AppErrors
func transcriptError(err error) error {
	var appErr errors.AppError
	switch {
	case stdErrors.As(err, &appErr):
		return appErr
	case stdErrors.Is(err, entities.ErrInvalidTranscript):
		return errors.ErrInvalidTranscript()
	case stdErrors.Is(err, entities.ErrUnknownSpeaker):
		return errors.ErrUnknownSpeaker(err)
	case stdErrors.Is(err, entities.ErrInsufficientData):
		return errors.ErrInsufficientData()
	case stdErrors.Is(err, entities.ErrUnparsableAIResponse),
		stdErrors.Is(err, entities.ErrEmptyAIResponse),
		stdErrors.Is(err, ai.ErrEmptyCompletion):
		return errors.ErrAIResponseUnparsable(err)
	}
	return upstreamError(err, errors.ErrAIAnalysisFailed)
}

// upstreamError maps failures of a hosted API call. fallback wraps anything
// that is neither a quota error nor a timeout.
func upstreamError(err error, fallback func(error) errors.AppError) error {
	var se *retry.StatusError
	if stdErrors.As(err, &se) && se.StatusCode == http.StatusTooManyRequests {
		return errors.ErrAIQuotaExceeded()
	}
	if stdErrors.Is(err, context.DeadlineExceeded) {
		return errors.ErrAIServiceUnavailable("openai")
	}
	return fallback(err)
}

// ErrorHandler renders echo's own errors (unknown routes, bad methods,
// recovered panics) with the same body as HandleError
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !stdErrors.As(err, &he) {
			HandleError(logger, c, err)
			return
		}

		var appErr errors.AppError
		switch he.Code {
		case http.StatusNotFound:
			appErr = errors.ErrNotFound("route")
		case http.StatusInternalServerError:
			appErr = errors.ErrInternal(err)
		default:
			appErr = errors.AppError{
				HTTPCode: he.Code,
				Code:     errors.ErrorCode_INVALID_ARGUMENT,
				Message:  http.StatusText(he.Code),
			}
		}
		HandleError(logger, c, appErr)
	}
}
