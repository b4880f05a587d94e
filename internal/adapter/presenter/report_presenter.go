package presenter

import (
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/adapter/dto/feedback"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
)

// ToReportResponse converts a CoachingReport entity to ReportResponse DTO
func ToReportResponse(r *entities.CoachingReport) *feedback.ReportResponse {
	if r == nil {
		return nil
	}

	return &feedback.ReportResponse{
		ConfidenceScore:       r.ConfidenceScore,
		CompetencyBand:        r.CompetencyBand,
		StarMethod:            r.StarMethod,
		Clarity:               r.Clarity,
		KnowledgeDepth:        r.KnowledgeDepth,
		FeedbackPoints:        r.FeedbackPoints,
		CoachNote:             r.CoachNote,
		AnnotatedConversation: r.AnnotatedConversation,
		RenderedConversation:  ToMessageResponses(r.RenderedConversation),
	}
}

// ToMessageResponses converts rendered messages to DTOs
func ToMessageResponses(messages []entities.RenderedMessage) []feedback.MessageResponse {
	out := make([]feedback.MessageResponse, len(messages))
	for i, m := range messages {
		out[i] = feedback.MessageResponse{
			Role:     m.Speaker.String(),
			Segments: ToSegmentResponses(m.Segments),
		}
	}
	return out
}

// ToSegmentResponses converts segments to DTOs with their display hints
func ToSegmentResponses(segments []entities.Segment) []feedback.SegmentResponse {
	out := make([]feedback.SegmentResponse, len(segments))
	for i, s := range segments {
		out[i] = feedback.SegmentResponse{
			Kind:       string(s.Kind),
			Text:       s.Text,
			Category:   string(s.Category),
			Type:       s.Type,
			Suggestion: s.Suggestion,
			Hint:       s.Hint(),
		}
	}
	return out
}
