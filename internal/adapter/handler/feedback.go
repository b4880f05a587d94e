package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/errors"
	feedbackdto "github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/adapter/dto/feedback"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/adapter/presenter"
	feedbackUsecase "github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/usecase/feedback"
)

// Feedback handles coaching report requests
type Feedback struct {
	svc    feedbackUsecase.Service
	logger *zap.Logger
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(svc feedbackUsecase.Service, logger *zap.Logger) *Feedback {
	return &Feedback{svc: svc, logger: logger}
}

// Analyze handles POST /api/feedback/analyze
// ?format=markdown returns the report as text/markdown instead of JSON.
// @Summary      Analyze interview transcript
// @Description  Groups the transcript, asks the model for a coaching report and returns it with the rendered conversation
// @Tags         Feedback
// @Accept       json
// @Produce      json,text/markdown
// @Param        format   query     string                   false  "Response format (json or markdown)"
// @Param        request  body      feedbackdto.AnalyzeRequest  true   "Transcript and interview context"
// @Success      200      {object}  feedbackdto.ReportResponse  "Coaching report"
// @Failure      400      {object}  common.ErrorResponse     "Invalid transcript or no candidate speech"
// @Failure      429      {object}  common.ErrorResponse     "AI quota exceeded"
// @Failure      500      {object}  common.ErrorResponse     "Analysis failed"
// @Failure      503      {object}  common.ErrorResponse     "AI service unavailable"
// @Router       /api/feedback/analyze [post]
func (h *Feedback) Analyze(c echo.Context) error {
	format := c.QueryParam("format")
	if format != "" && format != "json" && format != "markdown" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("format must be json or markdown"))
	}

	var req feedbackdto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidTranscript())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	report, err := h.svc.Analyze(c.Request().Context(), feedbackUsecase.AnalyzeInput{
		Transcript: req.Transcript,
		PromptContext: feedbackUsecase.PromptContext{
			Role:            req.Role,
			ExperienceLevel: req.ExperienceLevel,
			JobDescription:  req.JobDescription,
			Resume:          req.Resume,
		},
	})
	if err != nil {
		return HandleError(h.logger, c, transcriptError(err))
	}

	if format == "markdown" {
		md := presenter.RenderReportMarkdown(presenter.MarkdownMeta{
			Role:      req.Role,
			Level:     req.ExperienceLevel,
			Generated: time.Now().UTC().Format(time.RFC3339),
		}, report)
		return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToReportResponse(report))
}
