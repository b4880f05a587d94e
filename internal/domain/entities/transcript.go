package entities

import "time"

// Turn is one transcribed utterance. Turns are immutable once created.
type Turn struct {
	Speaker   Speaker   `json:"role"`
	Text      string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// NewTurn creates a turn stamped with the current time
func NewTurn(speaker Speaker, text string) Turn {
	return Turn{
		Speaker:   speaker,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// Block is one or more consecutive same-speaker turns coalesced for display
type Block struct {
	Speaker Speaker `json:"role"`
	Text    string  `json:"content"`
}

// TranscriptRecord is the loose record shape sent by the browser client.
// Content is preferred; Text is a legacy alias.
type TranscriptRecord struct {
	Role      string  `json:"role"`
	Content   *string `json:"content,omitempty"`
	Text      *string `json:"text,omitempty"`
	Timestamp float64 `json:"timestamp,omitempty"` // milliseconds since epoch
}

// Body returns the record text, preferring Content over Text
func (r TranscriptRecord) Body() string {
	if r.Content != nil && *r.Content != "" {
		return *r.Content
	}
	if r.Text != nil {
		return *r.Text
	}
	return ""
}
