package entities

// SegmentKind discriminates plain text from annotated spans
type SegmentKind string

const (
	SegmentKindText SegmentKind = "text"
	SegmentKindMark SegmentKind = "mark"
)

// Category is the annotation category assigned by the scoring service
type Category string

const (
	CategoryFillerWord    Category = "filler"
	CategoryWeakLanguage  Category = "weak"
	CategoryCriticalError Category = "critical"
	// CategoryOther is used for annotation types we do not style
	CategoryOther Category = "other"
)

// CategoryFromType maps a raw mark type attribute to a Category
func CategoryFromType(markType string) Category {
	switch Category(markType) {
	case CategoryFillerWord, CategoryWeakLanguage, CategoryCriticalError:
		return Category(markType)
	default:
		return CategoryOther
	}
}

// Segment is a contiguous run of plain or annotated text within a block.
// Category, Type and Suggestion are only set for SegmentKindMark.
type Segment struct {
	Kind       SegmentKind `json:"kind"`
	Text       string      `json:"text"`
	Category   Category    `json:"category,omitempty"`
	Type       string      `json:"type,omitempty"`
	Suggestion *string     `json:"suggestion"`
}

// PlainSegment builds a text segment
func PlainSegment(text string) Segment {
	return Segment{Kind: SegmentKindText, Text: text}
}

// AnnotatedSegment builds a mark segment from the raw type attribute
func AnnotatedSegment(text, markType string, suggestion *string) Segment {
	return Segment{
		Kind:       SegmentKindMark,
		Text:       text,
		Category:   CategoryFromType(markType),
		Type:       markType,
		Suggestion: suggestion,
	}
}

// IsAnnotated reports whether the segment carries an annotation
func (s Segment) IsAnnotated() bool {
	return s.Kind == SegmentKindMark
}

// Hint returns the short tooltip shown next to an annotated span
func (s Segment) Hint() string {
	if !s.IsAnnotated() {
		return ""
	}
	switch s.Category {
	case CategoryFillerWord:
		return "Filler word"
	case CategoryWeakLanguage:
		if s.Suggestion != nil && *s.Suggestion != "" {
			return "Try: " + *s.Suggestion
		}
		return "Weak language"
	case CategoryCriticalError:
		if s.Suggestion != nil && *s.Suggestion != "" {
			return *s.Suggestion
		}
		return "Correction needed"
	default:
		return ""
	}
}

// RenderedMessage is one block of an annotated conversation after parsing
type RenderedMessage struct {
	Speaker  Speaker   `json:"role"`
	Segments []Segment `json:"segments"`
}
