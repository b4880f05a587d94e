package entities

import (
	"encoding/json"
	"fmt"
)

// Speaker identifies who produced a turn. The values are the role tags used
// on the wire by the realtime transport and the scoring service.
type Speaker string

const (
	SpeakerCandidate Speaker = "user"
	SpeakerAgent     Speaker = "assistant"
)

// ParseSpeaker maps a role tag to a Speaker. Tags are matched exactly;
// anything else, including case or whitespace variants, is rejected.
func ParseSpeaker(role string) (Speaker, error) {
	switch role {
	case "user", "candidate":
		return SpeakerCandidate, nil
	case "assistant", "agent":
		return SpeakerAgent, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSpeaker, role)
	}
}

// IsCandidate reports whether the speaker is the interviewee
func (s Speaker) IsCandidate() bool {
	return s == SpeakerCandidate
}

// Valid reports whether s is one of the two known speakers
func (s Speaker) Valid() bool {
	return s == SpeakerCandidate || s == SpeakerAgent
}

// String returns the wire tag
func (s Speaker) String() string {
	return string(s)
}

// UnmarshalJSON rejects unknown role tags instead of coercing them
func (s *Speaker) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseSpeaker(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
