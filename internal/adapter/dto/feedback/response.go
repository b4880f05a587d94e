package feedback

import "github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"

// ReportResponse is the coaching report as returned to the browser
type ReportResponse struct {
	ConfidenceScore       float64                     `json:"confidenceScore"`
	CompetencyBand        entities.CompetencyBand     `json:"competencyBand"`
	StarMethod            bool                        `json:"starMethod"`
	Clarity               float64                     `json:"clarity"`
	KnowledgeDepth        float64                     `json:"knowledgeDepth"`
	FeedbackPoints        []entities.FeedbackPoint    `json:"feedbackPoints"`
	CoachNote             string                      `json:"coachNote"`
	AnnotatedConversation []entities.AnnotatedMessage `json:"annotatedConversation"`
	RenderedConversation  []MessageResponse           `json:"renderedConversation"`
}

// MessageResponse is one rendered conversation message
type MessageResponse struct {
	Role     string            `json:"role"`
	Segments []SegmentResponse `json:"segments"`
}

// SegmentResponse is one plain or annotated span with its display hint
type SegmentResponse struct {
	Kind       string  `json:"kind"`
	Text       string  `json:"text"`
	Category   string  `json:"category,omitempty"`
	Type       string  `json:"type,omitempty"`
	Suggestion *string `json:"suggestion"`
	Hint       string  `json:"hint,omitempty"`
}
