package transcript

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
)

// Realtime API events that carry a finished transcription
const (
	EventInputTranscriptionCompleted = "conversation.item.input_audio_transcription.completed"
	EventAudioTranscriptDone         = "response.audio_transcript.done"
	EventOutputAudioTranscriptDone   = "response.output_audio_transcript.done"
)

type eventEnvelope struct {
	Type string `json:"type"`
}

type transcriptEvent struct {
	Transcript string `json:"transcript"`
}

type plainRecord struct {
	Role      string  `json:"role"`
	Content   *string `json:"content"`
	Text      *string `json:"text"`
	Timestamp float64 `json:"timestamp"`
}

// DecodeEvent turns one message from the client into a turn. It accepts a
// plain transcript record or a realtime API event; events that carry no
// finished transcription are ignored (ok is false) without looking at their
// other fields.
func DecodeEvent(raw []byte) (turn entities.Turn, ok bool, err error) {
	var env eventEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return entities.Turn{}, false, fmt.Errorf("decode event: %w", err)
	}

	switch env.Type {
	case "":
		return decodeRecord(raw)
	case EventInputTranscriptionCompleted:
		return decodeTranscript(raw, entities.SpeakerCandidate)
	case EventAudioTranscriptDone, EventOutputAudioTranscriptDone:
		return decodeTranscript(raw, entities.SpeakerAgent)
	default:
		return entities.Turn{}, false, nil
	}
}

func decodeRecord(raw []byte) (entities.Turn, bool, error) {
	var rec plainRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return entities.Turn{}, false, fmt.Errorf("decode record: %w", err)
	}
	if rec.Role == "" {
		return entities.Turn{}, false, fmt.Errorf("decode event: missing type or role")
	}
	turn, err := recordToTurn(entities.TranscriptRecord{
		Role:      rec.Role,
		Content:   rec.Content,
		Text:      rec.Text,
		Timestamp: rec.Timestamp,
	})
	if err != nil {
		return entities.Turn{}, false, err
	}
	if turn.Timestamp.IsZero() {
		turn.Timestamp = time.Now()
	}
	return turn, true, nil
}

func decodeTranscript(raw []byte, speaker entities.Speaker) (entities.Turn, bool, error) {
	var ev transcriptEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return entities.Turn{}, false, fmt.Errorf("decode transcript event: %w", err)
	}
	return entities.NewTurn(speaker, ev.Transcript), true, nil
}
