package entities

// CompetencyBand is the overall level assigned by the coach
type CompetencyBand string

const (
	CompetencyBeginner     CompetencyBand = "Beginner"
	CompetencyIntermediate CompetencyBand = "Intermediate"
	CompetencyAdvanced     CompetencyBand = "Advanced"
)

// FeedbackType is the traffic-light level of a feedback point
type FeedbackType string

const (
	FeedbackSuccess  FeedbackType = "success"
	FeedbackWarning  FeedbackType = "warning"
	FeedbackCritical FeedbackType = "critical"
)

// FeedbackPoint is one observation about the candidate's answers
type FeedbackPoint struct {
	Type        FeedbackType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
}

// AnnotatedMessage is one message of the conversation as returned by the
// scoring model. Content of candidate messages may contain <mark> markup.
type AnnotatedMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CoachingReport is the structured output of the scoring model
type CoachingReport struct {
	Error                 string             `json:"error,omitempty"`
	ConfidenceScore       float64            `json:"confidenceScore"`
	CompetencyBand        CompetencyBand     `json:"competencyBand"`
	StarMethod            bool               `json:"starMethod"`
	Clarity               float64            `json:"clarity"`
	KnowledgeDepth        float64            `json:"knowledgeDepth"`
	FeedbackPoints        []FeedbackPoint    `json:"feedbackPoints"`
	CoachNote             string             `json:"coachNote"`
	AnnotatedConversation []AnnotatedMessage `json:"annotatedConversation"`
	RenderedConversation  []RenderedMessage  `json:"renderedConversation,omitempty"`
}

// PointsOfType returns the feedback points of the given type in report order
func (r *CoachingReport) PointsOfType(t FeedbackType) []FeedbackPoint {
	out := make([]FeedbackPoint, 0)
	for _, p := range r.FeedbackPoints {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}
