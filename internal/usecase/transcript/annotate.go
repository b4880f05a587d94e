package transcript

import (
	"regexp"
	"strings"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
)

// markPattern matches one well-formed annotation tag. The suggestion
// attribute is optional and content is matched lazily, so a nested tag ends
// at the first closing tag.
var markPattern = regexp.MustCompile(`<mark\s+type="([^"]+)"(?:\s+suggestion="([^"]*)")?>([\s\S]*?)</mark>`)

// Render decomposes a block's text into segments. Only candidate text is
// parsed; agent text is always a single plain segment.
func Render(speaker entities.Speaker, text string) []entities.Segment {
	if !speaker.IsCandidate() {
		return []entities.Segment{entities.PlainSegment(text)}
	}
	return ParseAnnotations(text)
}

// ParseAnnotations splits text into plain and annotated segments. It never
// fails: anything that is not a well-formed tag is kept verbatim as plain text.
func ParseAnnotations(text string) []entities.Segment {
	matches := markPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []entities.Segment{entities.PlainSegment(text)}
	}

	segments := make([]entities.Segment, 0, 2*len(matches)+1)
	cursor := 0
	for _, m := range matches {
		if m[0] > cursor {
			segments = append(segments, entities.PlainSegment(text[cursor:m[0]]))
		}

		var suggestion *string
		if m[4] >= 0 {
			s := text[m[4]:m[5]]
			suggestion = &s
		}
		segments = append(segments, entities.AnnotatedSegment(text[m[6]:m[7]], text[m[2]:m[3]], suggestion))
		cursor = m[1]
	}
	if cursor < len(text) {
		segments = append(segments, entities.PlainSegment(text[cursor:]))
	}
	return segments
}

// StripMarkup returns text with every well-formed tag replaced by its content
func StripMarkup(text string) string {
	return markPattern.ReplaceAllString(text, "$3")
}

// RenderConversation renders every block of an annotated conversation
func RenderConversation(blocks []entities.Block) []entities.RenderedMessage {
	out := make([]entities.RenderedMessage, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, entities.RenderedMessage{
			Speaker:  b.Speaker,
			Segments: Render(b.Speaker, b.Text),
		})
	}
	return out
}

// Join concatenates segment texts
func Join(segments []entities.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}
