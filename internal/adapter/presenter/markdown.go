package presenter

import (
	"fmt"
	"strings"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
)

// MarkdownMeta is printed above the rendered body
type MarkdownMeta struct {
	Title     string
	Role      string
	Level     string
	Source    string
	Generated string
}

// RenderReportMarkdown renders a coaching report for offline review
func RenderReportMarkdown(meta MarkdownMeta, r *entities.CoachingReport) string {
	var b strings.Builder
	writeHeader(&b, meta, "Interview Feedback")

	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Confidence | %.0f |\n", r.ConfidenceScore)
	fmt.Fprintf(&b, "| Clarity | %.0f |\n", r.Clarity)
	fmt.Fprintf(&b, "| Knowledge depth | %.0f |\n", r.KnowledgeDepth)
	if r.CompetencyBand != "" {
		fmt.Fprintf(&b, "| Competency | %s |\n", r.CompetencyBand)
	}
	fmt.Fprintf(&b, "| STAR method | %s |\n\n", yesNo(r.StarMethod))

	if len(r.FeedbackPoints) > 0 {
		b.WriteString("## Feedback\n\n")
		for _, p := range r.FeedbackPoints {
			fmt.Fprintf(&b, "- %s **%s**: %s\n", feedbackIcon(p.Type), p.Title, strings.TrimSpace(p.Description))
		}
		b.WriteString("\n")
	}

	if r.CoachNote != "" {
		fmt.Fprintf(&b, "## Coach note\n\n> %s\n\n", strings.TrimSpace(r.CoachNote))
	}

	if len(r.RenderedConversation) > 0 {
		b.WriteString("## Conversation\n\n")
		writeMessages(&b, r.RenderedConversation)
	}
	return b.String()
}

// RenderTranscriptMarkdown renders grouped blocks, parsing candidate markup
func RenderTranscriptMarkdown(meta MarkdownMeta, messages []entities.RenderedMessage) string {
	var b strings.Builder
	writeHeader(&b, meta, "Interview Transcript")
	writeMessages(&b, messages)
	return b.String()
}

func writeHeader(b *strings.Builder, meta MarkdownMeta, fallback string) {
	if meta.Title != "" {
		fmt.Fprintf(b, "# %s\n\n", meta.Title)
	} else {
		fmt.Fprintf(b, "# %s\n\n", fallback)
	}
	if meta.Role != "" {
		fmt.Fprintf(b, "- Role: %s\n", meta.Role)
	}
	if meta.Level != "" {
		fmt.Fprintf(b, "- Experience: %s\n", meta.Level)
	}
	if meta.Source != "" {
		fmt.Fprintf(b, "- Source: `%s`\n", meta.Source)
	}
	if meta.Generated != "" {
		fmt.Fprintf(b, "- Generated: %s\n", meta.Generated)
	}
	b.WriteString("\n---\n\n")
}

func writeMessages(b *strings.Builder, messages []entities.RenderedMessage) {
	for _, m := range messages {
		fmt.Fprintf(b, "**%s:** %s\n\n", speakerLabel(m.Speaker), segmentsMarkdown(m.Segments))
	}
}

func segmentsMarkdown(segments []entities.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if !s.IsAnnotated() {
			b.WriteString(s.Text)
			continue
		}
		fmt.Fprintf(&b, "**%s**", s.Text)
		if hint := s.Hint(); hint != "" {
			fmt.Fprintf(&b, " [%s]", hint)
		}
	}
	return strings.TrimSpace(b.String())
}

func speakerLabel(s entities.Speaker) string {
	if s.IsCandidate() {
		return "Candidate"
	}
	return "Interviewer"
}

func feedbackIcon(t entities.FeedbackType) string {
	switch t {
	case entities.FeedbackSuccess:
		return "✅"
	case entities.FeedbackWarning:
		return "⚠️"
	case entities.FeedbackCritical:
		return "❌"
	default:
		return "•"
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
