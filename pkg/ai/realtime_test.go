package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/retry"
)

func sampleSessionRequest() SessionRequest {
	return SessionRequest{
		Model:                   "gpt-4o-realtime-preview-2024-10-01",
		Voice:                   "verse",
		Instructions:            "You are a professional interviewer.",
		InputAudioTranscription: TranscriptionOptions{Model: "whisper-1"},
		TurnDetection: TurnDetection{
			Type:              "server_vad",
			Threshold:         0.5,
			PrefixPaddingMS:   300,
			SilenceDurationMS: 500,
		},
	}
}

func TestCreateSession_RelaysUpstreamJSON(t *testing.T) {
	upstream := `{"id":"sess_1","client_secret":{"value":"ek_abc","expires_at":1700000000}}`
	var got map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/realtime/sessions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("missing bearer token")
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstream))
	}))
	defer ts.Close()

	client := NewRealtimeClient(testOpenAIConfig(ts.URL + "/"))
	raw, err := client.CreateSession(context.Background(), sampleSessionRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != upstream {
		t.Fatalf("response not relayed verbatim: %s", raw)
	}

	td, _ := got["turn_detection"].(map[string]interface{})
	if td["type"] != "server_vad" || td["threshold"] != 0.5 || td["silence_duration_ms"] != float64(500) {
		t.Fatalf("unexpected turn detection %v", td)
	}
	iat, _ := got["input_audio_transcription"].(map[string]interface{})
	if iat["model"] != "whisper-1" || got["voice"] != "verse" {
		t.Fatalf("unexpected session body %v", got)
	}
}

func TestCreateSession_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid model"}}`, http.StatusBadRequest)
	}))
	defer ts.Close()

	client := NewRealtimeClient(testOpenAIConfig(ts.URL))
	_, err := client.CreateSession(context.Background(), sampleSessionRequest())
	var se *retry.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.StatusCode != http.StatusBadRequest || se.Body == "" {
		t.Fatalf("unexpected status error %+v", se)
	}
}

func TestCreateSession_InvalidJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	client := NewRealtimeClient(testOpenAIConfig(ts.URL))
	if _, err := client.CreateSession(context.Background(), sampleSessionRequest()); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}
