package feedback

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
)

const insufficientDataMarker = "insufficient_data"

var fencedJSON = regexp.MustCompile("```json\\s*\\n([\\s\\S]*?)\\n\\s*```")

// ParseReport recovers a coaching report from the model's reply. The reply is
// tried as strict JSON, then as a ```json fenced block, then as the widest
// {...} span.
func ParseReport(content string) (*entities.CoachingReport, error) {
	if strings.TrimSpace(content) == "" {
		return nil, entities.ErrEmptyAIResponse
	}

	var lastErr error
	for _, candidate := range jsonCandidates(content) {
		var report entities.CoachingReport
		if err := json.Unmarshal([]byte(candidate), &report); err != nil {
			lastErr = err
			continue
		}
		if report.Error == insufficientDataMarker {
			return nil, entities.ErrInsufficientData
		}
		normalizeReport(&report)
		return &report, nil
	}
	return nil, fmt.Errorf("%w: %v", entities.ErrUnparsableAIResponse, lastErr)
}

// jsonCandidates lists the substrings worth decoding, most specific first
func jsonCandidates(content string) []string {
	candidates := []string{strings.TrimSpace(content)}

	if m := fencedJSON.FindStringSubmatch(content); m != nil {
		candidates = append(candidates, m[1])
	} else if stripped := extractJSON(content); stripped != candidates[0] {
		candidates = append(candidates, stripped)
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		candidates = append(candidates, content[start:end+1])
	}
	return candidates
}

// extractJSON strips a markdown code fence around the reply
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}

// normalizeReport fills missing slices and keeps scores in range
func normalizeReport(r *entities.CoachingReport) {
	if r.FeedbackPoints == nil {
		r.FeedbackPoints = []entities.FeedbackPoint{}
	}
	if r.AnnotatedConversation == nil {
		r.AnnotatedConversation = []entities.AnnotatedMessage{}
	}
	r.ConfidenceScore = clampScore(r.ConfidenceScore)
	r.Clarity = clampScore(r.Clarity)
	r.KnowledgeDepth = clampScore(r.KnowledgeDepth)
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
