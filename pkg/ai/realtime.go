package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/config"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/retry"
)

// maxErrorBody bounds how much of an upstream error body is kept
const maxErrorBody = 4096

// RealtimeClient mints ephemeral client secrets for the realtime voice API
type RealtimeClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewRealtimeClient creates a realtime client using values from the provided config
func NewRealtimeClient(cfg *config.OpenAIConfig) *RealtimeClient {
	return &RealtimeClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// TranscriptionOptions selects the model that transcribes the caller's audio
type TranscriptionOptions struct {
	Model string `json:"model"`
}

// TurnDetection configures server side voice activity detection
type TurnDetection struct {
	Type              string  `json:"type"`
	Threshold         float64 `json:"threshold"`
	PrefixPaddingMS   int     `json:"prefix_padding_ms"`
	SilenceDurationMS int     `json:"silence_duration_ms"`
}

// SessionRequest is the body sent to the realtime sessions endpoint
type SessionRequest struct {
	Model                   string               `json:"model"`
	Voice                   string               `json:"voice"`
	Instructions            string               `json:"instructions"`
	InputAudioTranscription TranscriptionOptions `json:"input_audio_transcription"`
	TurnDetection           TurnDetection        `json:"turn_detection"`
}

// CreateSession posts the session request and returns the upstream JSON untouched
func (r *RealtimeClient) CreateSession(ctx context.Context, body SessionRequest) (json.RawMessage, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	endpoint := r.baseURL + "/realtime/sessions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("realtime session request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &retry.StatusError{
			Service:    "openai realtime",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(errBody)),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read realtime session response: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("realtime session response is not valid JSON")
	}
	return json.RawMessage(raw), nil
}
