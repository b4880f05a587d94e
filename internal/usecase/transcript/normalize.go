package transcript

import (
	"fmt"
	"strings"
	"time"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
)

// NormalizeRecords converts client records into turns, failing on the first
// record whose role is not a known speaker
func NormalizeRecords(records []entities.TranscriptRecord) ([]entities.Turn, error) {
	turns := make([]entities.Turn, 0, len(records))
	for i, r := range records {
		turn, err := recordToTurn(r)
		if err != nil {
			return nil, fmt.Errorf("transcript[%d]: %w", i, err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func recordToTurn(r entities.TranscriptRecord) (entities.Turn, error) {
	speaker, err := entities.ParseSpeaker(r.Role)
	if err != nil {
		return entities.Turn{}, err
	}
	turn := entities.Turn{Speaker: speaker, Text: r.Body()}
	if r.Timestamp > 0 {
		turn.Timestamp = time.UnixMilli(int64(r.Timestamp))
	}
	return turn, nil
}

// GroupRecords normalises and groups in one step
func GroupRecords(records []entities.TranscriptRecord) ([]entities.Block, error) {
	turns, err := NormalizeRecords(records)
	if err != nil {
		return nil, err
	}
	return Group(turns)
}

// FormatConversation renders blocks as "role: content" lines
func FormatConversation(blocks []entities.Block) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		lines = append(lines, b.Speaker.String()+": "+b.Text)
	}
	return strings.Join(lines, "\n")
}
