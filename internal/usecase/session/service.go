package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/ai"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/config"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/retry"
)

const baseInstructions = `You are a professional interviewer.
Your goal is to conduct a realistic interview.
Ask one question at a time.
Wait for the candidate to respond.
Provide brief, constructive feedback if necessary, but focus on moving the interview forward.
Do not be overly verbose. Keep it conversational.`

// SessionCreator mints realtime voice sessions
type SessionCreator interface {
	CreateSession(ctx context.Context, body ai.SessionRequest) (json.RawMessage, error)
}

// Input tailors the interviewer persona. All fields are optional.
type Input struct {
	Role            string
	ExperienceLevel string
	JobDescription  string
}

// Service defines ephemeral key methods
type Service interface {
	CreateEphemeralKey(ctx context.Context, in Input) (json.RawMessage, error)
}

type sessionService struct {
	client SessionCreator
	cfg    config.RealtimeConfig
	policy retry.Policy
	logger *zap.Logger
}

// NewService constructs the session service
func NewService(client SessionCreator, cfg config.RealtimeConfig, policy retry.Policy, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &sessionService{client: client, cfg: cfg, policy: policy, logger: logger}
}

func (s *sessionService) CreateEphemeralKey(ctx context.Context, in Input) (json.RawMessage, error) {
	body := s.buildRequest(in)

	var raw json.RawMessage
	call := func(ctx context.Context) error {
		var err error
		raw, err = s.client.CreateSession(ctx, body)
		return err
	}
	onRetry := func(err error, wait time.Duration) {
		s.logger.Warn("realtime session request failed, retrying",
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}

	if err := retry.Do(ctx, s.policy, call, onRetry); err != nil {
		s.logger.Error("failed to generate ephemeral key", zap.Error(err))
		return nil, fmt.Errorf("failed to create realtime session: %w", err)
	}

	s.logger.Info("ephemeral key issued",
		zap.String("model", body.Model),
		zap.String("voice", body.Voice),
	)
	return raw, nil
}

func (s *sessionService) buildRequest(in Input) ai.SessionRequest {
	return ai.SessionRequest{
		Model:        s.cfg.Model,
		Voice:        s.cfg.Voice,
		Instructions: BuildInstructions(in),
		InputAudioTranscription: ai.TranscriptionOptions{
			Model: s.cfg.TranscriptionModel,
		},
		TurnDetection: ai.TurnDetection{
			Type:              "server_vad",
			Threshold:         s.cfg.VADThreshold,
			PrefixPaddingMS:   s.cfg.VADPrefixPaddingMS,
			SilenceDurationMS: s.cfg.VADSilenceDurationMS,
		},
	}
}

// BuildInstructions returns the interviewer persona, tailored when context is given
func BuildInstructions(in Input) string {
	var b strings.Builder
	b.WriteString(baseInstructions)

	role := strings.TrimSpace(in.Role)
	level := strings.TrimSpace(in.ExperienceLevel)
	switch {
	case role != "" && level != "":
		fmt.Fprintf(&b, "\nYou are interviewing a %s candidate for a %s position.", level, role)
	case role != "":
		fmt.Fprintf(&b, "\nYou are interviewing a candidate for a %s position.", role)
	case level != "":
		fmt.Fprintf(&b, "\nThe candidate's experience level is %s.", level)
	}

	if jd := strings.TrimSpace(in.JobDescription); jd != "" {
		fmt.Fprintf(&b, "\nBase your questions on this job description:\n%s", jd)
	}
	return b.String()
}
