package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/errors"
	transcriptdto "github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/adapter/dto/transcript"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/adapter/presenter"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/usecase/transcript"
)

// Transcript exposes grouping and annotation rendering directly
type Transcript struct {
	logger *zap.Logger
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(logger *zap.Logger) *Transcript {
	return &Transcript{logger: logger}
}

// Group handles POST /api/transcript/group
// @Summary      Group transcript
// @Description  Coalesces consecutive same-speaker records into blocks
// @Tags         Transcript
// @Accept       json
// @Produce      json
// @Param        request  body      transcriptdto.GroupRequest   true  "Transcript records"
// @Success      200      {object}  transcriptdto.GroupResponse  "Grouped blocks"
// @Failure      400      {object}  common.ErrorResponse      "Invalid transcript or unknown speaker"
// @Router       /api/transcript/group [post]
func (h *Transcript) Group(c echo.Context) error {
	var req transcriptdto.GroupRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidTranscript())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidTranscript())
	}

	blocks, err := transcript.GroupRecords(req.Transcript)
	if err != nil {
		return HandleError(h.logger, c, transcriptError(err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, transcriptdto.GroupResponse{
		Blocks:             blocks,
		HasCandidateSpeech: transcript.HasCandidateSpeech(blocks),
		Conversation:       transcript.FormatConversation(blocks),
	})
}

// Render handles POST /api/transcript/render
// @Summary      Render annotated messages
// @Description  Splits candidate messages into plain and annotated segments
// @Tags         Transcript
// @Accept       json
// @Produce      json
// @Param        request  body      transcriptdto.RenderRequest   true  "Annotated messages"
// @Success      200      {object}  transcriptdto.RenderResponse  "Rendered messages"
// @Failure      400      {object}  common.ErrorResponse       "Invalid payload"
// @Router       /api/transcript/render [post]
func (h *Transcript) Render(c echo.Context) error {
	var req transcriptdto.RenderRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	blocks := make([]entities.Block, 0, len(req.Messages))
	for _, m := range req.Messages {
		speaker, err := entities.ParseSpeaker(m.Role)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrUnknownSpeaker(err))
		}
		blocks = append(blocks, entities.Block{Speaker: speaker, Text: m.Content})
	}

	return HandleSuccess(h.logger, c, http.StatusOK, transcriptdto.RenderResponse{
		Messages: presenter.ToMessageResponses(transcript.RenderConversation(blocks)),
	})
}
