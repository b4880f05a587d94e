package session

// EphemeralKeyRequest optionally tailors the interviewer persona
type EphemeralKeyRequest struct {
	Role            string `json:"role,omitempty" validate:"max=200"`
	ExperienceLevel string `json:"experienceLevel,omitempty" validate:"max=100"`
	JobDescription  string `json:"jobDescription,omitempty" validate:"max=20000"`
}
