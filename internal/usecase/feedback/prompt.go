package feedback

import (
	"fmt"
	"strings"
)

const (
	defaultRole            = "General"
	defaultExperienceLevel = "Not specified"
)

// PromptContext carries the optional interview context used to tailor the prompt
type PromptContext struct {
	Role            string
	ExperienceLevel string
	JobDescription  string
	Resume          string
}

const reportInstructions = `IMPORTANT: If the transcript provided contains NO meaningful answers from the candidate (or only very short/empty greetings), return the following JSON exactly:
{
  "error": "insufficient_data"
}

Otherwise, for a valid interview, you must return a strictly valid JSON object (no markdown formatting) with the following schema:
{
  "confidenceScore": number (0-100), // Deduct for hesitation words ("um", "uh") and weak language ("maybe", "I think").
  "competencyBand": "Beginner" | "Intermediate" | "Advanced", // Evaluate technical depth.
  "starMethod": boolean, // true if the candidate generally followed Situation-Task-Action-Result format for behavioral questions.
  "clarity": number (0-100), // How clear and concise were the answers?
  "knowledgeDepth": number (0-100), // Depth of technical understanding shown.
  "feedbackPoints": [
    {
      "type": "success" | "warning" | "critical",
      "title": string,
      "description": string
    }
  ],
  "coachNote": string, // A distinct, actionable tip for the next interview.
  "annotatedConversation": [ // ARRAY of chat messages
    { "role": "user" | "assistant", "content": "string with <mark> tags" }
  ]
}

Annotated Conversation Rules:
- Return the FULL conversation history as an array of objects.
- Each object must have a 'role' and 'content'.
- Inside the 'content' string, YOU MUST wrap specific candidate words/phrases in <mark> tags if they meet criteria.
- <mark type="filler">um</mark> -> For hesitation words (um, uh, like, so...).
- <mark type="weak" suggestion="better_word">weak_word</mark> -> For weak or passive vocabulary. Example: <mark type="weak" suggestion="spearheaded">led</mark>.
- <mark type="critical" suggestion="correction">error_phrase</mark> -> For serious factual or technical errors.
- DO NOT mark the interviewer's (assistant) text, only the candidate's (user).
- BE AGGRESSIVE with filler/weak word detection to ensure the user sees valid feedback. If they say "like" or "um", mark it.

Example of expected JSON output for 'annotatedConversation':
"annotatedConversation": [
  { "role": "assistant", "content": "Tell me about yourself." },
  { "role": "user", "content": "Well, <mark type=\"filler\">um</mark>, I <mark type=\"weak\" suggestion=\"believe\">think</mark> I am a developer." }
]

Grading Criteria:
- Confidence: High penalty for uncertainty markers. High reward for assertive, clear statements.
- Competency: "Intermediate" or "Advanced" requires mentioning trade-offs, edge cases, or system design implications.
- Feedback Points:
  - "success": Specific good practices (e.g. "Great use of STAR").
  - "warning": Minor issues (e.g. "Missed a specific edge case").
  - "critical": Major red flags (e.g. "Complete misunderstanding of concept").
- Coach Note: One specific, high-impact piece of advice.`

// BuildSystemPrompt returns the coach instructions for one interview
func BuildSystemPrompt(pc PromptContext) string {
	role := strings.TrimSpace(pc.Role)
	if role == "" {
		role = defaultRole
	}
	level := strings.TrimSpace(pc.ExperienceLevel)
	if level == "" {
		level = defaultExperienceLevel
	}

	var b strings.Builder
	b.WriteString("You are a Precision Interview Coach. Your task is to analyze the following interview transcript and provide a rigorous, structured assessment of the candidate's performance.\n\n")
	fmt.Fprintf(&b, "role: %s\n", role)
	fmt.Fprintf(&b, "experienceLevel: %s\n", level)

	if jd := strings.TrimSpace(pc.JobDescription); jd != "" {
		fmt.Fprintf(&b, "\nThe candidate interviewed for this job description. Judge relevance of the answers against it:\n%s\n", jd)
	}
	if cv := strings.TrimSpace(pc.Resume); cv != "" {
		fmt.Fprintf(&b, "\nThe candidate's resume. Flag claims in the answers that contradict it:\n%s\n", cv)
	}

	b.WriteString("\n")
	b.WriteString(reportInstructions)
	b.WriteString("\n")
	return b.String()
}
