package transcript

import (
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/adapter/dto/feedback"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
)

// GroupResponse carries the grouped blocks of a transcript
type GroupResponse struct {
	Blocks             []entities.Block `json:"blocks"`
	HasCandidateSpeech bool             `json:"hasCandidateSpeech"`
	Conversation       string           `json:"conversation"`
}

// RenderResponse carries the parsed messages
type RenderResponse struct {
	Messages []feedback.MessageResponse `json:"messages"`
}
