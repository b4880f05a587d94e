package transcript

import "github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"

// GroupRequest is the body of POST /api/transcript/group
type GroupRequest struct {
	Transcript []entities.TranscriptRecord `json:"transcript" validate:"required"`
}

// RenderRequest is the body of POST /api/transcript/render
type RenderRequest struct {
	Messages []RenderMessage `json:"messages" validate:"required,dive"`
}

// RenderMessage is one message whose markup should be parsed
type RenderMessage struct {
	Role    string `json:"role" validate:"required,speaker"`
	Content string `json:"content"`
}
