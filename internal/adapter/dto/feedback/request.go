package feedback

import "github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"

// AnalyzeRequest is the body of POST /api/feedback/analyze
type AnalyzeRequest struct {
	Transcript      []entities.TranscriptRecord `json:"transcript"`
	Role            string                      `json:"role,omitempty" validate:"max=200"`
	ExperienceLevel string                      `json:"experienceLevel,omitempty" validate:"max=100"`
	JobDescription  string                      `json:"jobDescription,omitempty" validate:"max=20000"`
	Resume          string                      `json:"resume,omitempty" validate:"max=20000"`
}
