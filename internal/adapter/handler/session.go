package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/errors"
	sessiondto "github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/adapter/dto/session"
	sessionUsecase "github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/usecase/session"
)

// Session handles realtime session requests
type Session struct {
	svc    sessionUsecase.Service
	logger *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(svc sessionUsecase.Service, logger *zap.Logger) *Session {
	return &Session{svc: svc, logger: logger}
}

// CreateEphemeralKey handles POST /api/session/ephemeral-key
// The upstream session object is relayed untouched; the browser reads
// client_secret.value from it.
// @Summary      Create realtime ephemeral key
// @Description  Mints a short-lived realtime voice session and relays the upstream session object
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        request  body      sessiondto.EphemeralKeyRequest  false  "Optional interview context"
// @Success      200      {object}  map[string]interface{}       "Realtime session with client_secret"
// @Failure      400      {object}  common.ErrorResponse         "Invalid payload"
// @Failure      429      {object}  common.ErrorResponse         "AI quota exceeded"
// @Failure      500      {object}  common.ErrorResponse         "Failed to create realtime session"
// @Router       /api/session/ephemeral-key [post]
func (h *Session) CreateEphemeralKey(c echo.Context) error {
	var req sessiondto.EphemeralKeyRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidPayload())
		}
		if err := c.Validate(&req); err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
		}
	}

	raw, err := h.svc.CreateEphemeralKey(c.Request().Context(), sessionUsecase.Input{
		Role:            req.Role,
		ExperienceLevel: req.ExperienceLevel,
		JobDescription:  req.JobDescription,
	})
	if err != nil {
		return HandleError(h.logger, c, upstreamError(err, errors.ErrAISessionFailed))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, raw)
}
