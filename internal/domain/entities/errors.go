package entities

import "errors"

// Domain errors
var (
	// Transcript errors
	ErrUnknownSpeaker    = errors.New("unknown speaker")
	ErrInvalidTranscript = errors.New("invalid transcript")
	ErrInsufficientData  = errors.New("insufficient candidate speech")

	// AI errors
	ErrEmptyAIResponse      = errors.New("empty response from model")
	ErrUnparsableAIResponse = errors.New("unparsable model response")

	// Live session errors
	ErrLiveSessionNotFound = errors.New("live session not found")
	ErrLiveSessionClosed   = errors.New("live session closed")
)
