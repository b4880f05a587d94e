package errors

// ErrorCode is the machine-readable code sent to clients in the "error" field
type ErrorCode string

const (
	ErrorCode_INTERNAL         ErrorCode = "internal"
	ErrorCode_INVALID_ARGUMENT ErrorCode = "invalid_argument"
	ErrorCode_INVALID_PAYLOAD  ErrorCode = "invalid_payload"
	ErrorCode_NOT_FOUND        ErrorCode = "not_found"

	// Transcript
	ErrorCode_INVALID_TRANSCRIPT ErrorCode = "invalid_transcript"
	ErrorCode_UNKNOWN_SPEAKER    ErrorCode = "unknown_speaker"
	ErrorCode_INSUFFICIENT_DATA  ErrorCode = "insufficient_data"

	// AI
	ErrorCode_AI_ANALYSIS_FAILED     ErrorCode = "ai_analysis_failed"
	ErrorCode_AI_RESPONSE_UNPARSABLE ErrorCode = "ai_response_unparsable"
	ErrorCode_AI_SERVICE_UNAVAILABLE ErrorCode = "ai_service_unavailable"
	ErrorCode_AI_QUOTA_EXCEEDED      ErrorCode = "ai_quota_exceeded"
	ErrorCode_AI_SESSION_FAILED      ErrorCode = "ai_session_failed"

	// Live
	ErrorCode_LIVE_SESSION_NOT_FOUND ErrorCode = "live_session_not_found"
)

// String returns the code as sent on the wire
func (c ErrorCode) String() string {
	return string(c)
}
