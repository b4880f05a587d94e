package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/ai"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/config"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/retry"
)

type fakeCreator struct {
	calls int
	got   ai.SessionRequest
	errs  []error
	resp  json.RawMessage
}

func (f *fakeCreator) CreateSession(ctx context.Context, body ai.SessionRequest) (json.RawMessage, error) {
	f.calls++
	f.got = body
	if f.calls <= len(f.errs) && f.errs[f.calls-1] != nil {
		return nil, f.errs[f.calls-1]
	}
	return f.resp, nil
}

var realtimeDefaults = config.RealtimeConfig{
	Model:                "gpt-4o-realtime-preview-2024-10-01",
	Voice:                "verse",
	TranscriptionModel:   "whisper-1",
	VADThreshold:         0.5,
	VADPrefixPaddingMS:   300,
	VADSilenceDurationMS: 500,
}

var fastPolicy = retry.Policy{
	InitialInterval: time.Millisecond,
	MaxInterval:     2 * time.Millisecond,
	MaxElapsedTime:  time.Second,
}

func TestCreateEphemeralKey_RelaysResponse(t *testing.T) {
	upstream := json.RawMessage(`{"client_secret":{"value":"ek_123"}}`)
	fc := &fakeCreator{resp: upstream}
	svc := NewService(fc, realtimeDefaults, fastPolicy, nil)

	raw, err := svc.CreateEphemeralKey(context.Background(), Input{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != string(upstream) {
		t.Fatalf("response not relayed: %s", raw)
	}
	if fc.got.Model != realtimeDefaults.Model || fc.got.Voice != "verse" {
		t.Fatalf("unexpected request %+v", fc.got)
	}
	if fc.got.TurnDetection.Type != "server_vad" || fc.got.TurnDetection.SilenceDurationMS != 500 {
		t.Fatalf("unexpected turn detection %+v", fc.got.TurnDetection)
	}
	if fc.got.Instructions != baseInstructions {
		t.Fatalf("untailored request should use base instructions")
	}
}

func TestCreateEphemeralKey_RetriesServerErrors(t *testing.T) {
	fc := &fakeCreator{
		resp: json.RawMessage(`{}`),
		errs: []error{&retry.StatusError{StatusCode: 502}},
	}
	svc := NewService(fc, realtimeDefaults, fastPolicy, nil)
	if _, err := svc.CreateEphemeralKey(context.Background(), Input{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fc.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", fc.calls)
	}
}

func TestCreateEphemeralKey_PermanentError(t *testing.T) {
	fc := &fakeCreator{errs: []error{&retry.StatusError{StatusCode: 401, Body: "bad key"}}}
	svc := NewService(fc, realtimeDefaults, fastPolicy, nil)
	_, err := svc.CreateEphemeralKey(context.Background(), Input{})
	var se *retry.StatusError
	if !errors.As(err, &se) || se.StatusCode != 401 {
		t.Fatalf("expected StatusError 401, got %v", err)
	}
	if fc.calls != 1 {
		t.Fatalf("permanent error should not be retried")
	}
}

func TestBuildInstructions(t *testing.T) {
	got := BuildInstructions(Input{Role: "Data Engineer", ExperienceLevel: "Junior", JobDescription: "Build pipelines."})
	for _, want := range []string{baseInstructions, "Junior candidate for a Data Engineer position", "Build pipelines."} {
		if !strings.Contains(got, want) {
			t.Fatalf("instructions missing %q", want)
		}
	}
	if got := BuildInstructions(Input{ExperienceLevel: "Senior"}); !strings.Contains(got, "experience level is Senior") {
		t.Fatalf("unexpected instructions %q", got)
	}
}
