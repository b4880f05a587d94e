package feedback

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/infrastructure/cache"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/usecase/transcript"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/retry"
)

// Completer produces a JSON reply for a system and user prompt
type Completer interface {
	CompleteJSON(ctx context.Context, model, system, user string) (string, error)
}

// AnalyzeInput is one request for a coaching report. A nil Transcript means
// the caller sent none.
type AnalyzeInput struct {
	Transcript []entities.TranscriptRecord
	PromptContext
}

// Service defines coaching report methods
type Service interface {
	Analyze(ctx context.Context, in AnalyzeInput) (*entities.CoachingReport, error)
}

// Options tunes the feedback service
type Options struct {
	Model    string
	CacheTTL time.Duration
	Retry    retry.Policy
}

type feedbackService struct {
	llm    Completer
	store  cache.Store
	opts   Options
	logger *zap.Logger
}

// NewService constructs the feedback service. store may be nil to disable caching.
func NewService(llm Completer, store cache.Store, opts Options, logger *zap.Logger) Service {
	if store == nil {
		store = cache.NopStore{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &feedbackService{llm: llm, store: store, opts: opts, logger: logger}
}

func (s *feedbackService) Analyze(ctx context.Context, in AnalyzeInput) (*entities.CoachingReport, error) {
	if in.Transcript == nil {
		return nil, entities.ErrInvalidTranscript
	}

	blocks, err := transcript.GroupRecords(in.Transcript)
	if err != nil {
		return nil, err
	}
	if !transcript.HasCandidateSpeech(blocks) {
		s.logger.Info("rejecting transcript without candidate speech",
			zap.Int("records", len(in.Transcript)),
			zap.Int("blocks", len(blocks)),
		)
		return nil, entities.ErrInsufficientData
	}

	conversation := transcript.FormatConversation(blocks)
	system := BuildSystemPrompt(in.PromptContext)
	key := cacheKey(s.opts.Model, system, conversation)

	if report, ok := s.lookup(ctx, key); ok {
		s.logger.Debug("coaching report served from cache", zap.String("cache_key", key))
		return report, nil
	}

	var content string
	call := func(ctx context.Context) error {
		var err error
		content, err = s.llm.CompleteJSON(ctx, s.opts.Model, system, conversation)
		return err
	}
	onRetry := func(err error, wait time.Duration) {
		s.logger.Warn("feedback model call failed, retrying",
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}

	started := time.Now()
	if err := retry.Do(ctx, s.opts.Retry, call, onRetry); err != nil {
		s.logger.Error("feedback model call failed", zap.Error(err))
		return nil, fmt.Errorf("failed to analyze transcript: %w", err)
	}

	report, err := ParseReport(content)
	if err != nil {
		s.logger.Error("failed to parse feedback reply",
			zap.Int("reply_length", len(content)),
			zap.Error(err),
		)
		return nil, err
	}
	report.RenderedConversation = RenderAnnotated(report.AnnotatedConversation, s.logger)

	s.logger.Info("coaching report generated",
		zap.Int("blocks", len(blocks)),
		zap.Float64("confidence", report.ConfidenceScore),
		zap.String("competency", string(report.CompetencyBand)),
		zap.Duration("elapsed", time.Since(started)),
	)

	s.remember(ctx, key, report)
	return report, nil
}

// RenderAnnotated parses the markup of an annotated conversation. Messages
// with a role outside the two speakers are skipped.
func RenderAnnotated(messages []entities.AnnotatedMessage, logger *zap.Logger) []entities.RenderedMessage {
	out := make([]entities.RenderedMessage, 0, len(messages))
	for i, m := range messages {
		speaker, err := entities.ParseSpeaker(m.Role)
		if err != nil {
			logger.Warn("skipping annotated message", zap.Int("index", i), zap.Error(err))
			continue
		}
		out = append(out, entities.RenderedMessage{
			Speaker:  speaker,
			Segments: transcript.Render(speaker, m.Content),
		})
	}
	return out
}

func (s *feedbackService) lookup(ctx context.Context, key string) (*entities.CoachingReport, bool) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("report cache read failed", zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var report entities.CoachingReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		s.logger.Warn("discarding corrupt cached report", zap.Error(err))
		_ = s.store.Delete(ctx, key)
		return nil, false
	}
	return &report, true
}

func (s *feedbackService) remember(ctx context.Context, key string, report *entities.CoachingReport) {
	if s.opts.CacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		s.logger.Warn("failed to encode report for cache", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, key, string(raw), s.opts.CacheTTL); err != nil {
		s.logger.Warn("report cache write failed", zap.Error(err))
	}
}

func cacheKey(model, system, conversation string) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(system))
	h.Write([]byte{0})
	h.Write([]byte(conversation))
	return "report:" + hex.EncodeToString(h.Sum(nil))
}
