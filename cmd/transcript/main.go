// Command transcript renders a saved interview transcript or coaching report
// as markdown.
//
//	transcript [-report] [-o out.md] [-role "Backend Engineer"] input.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/adapter/presenter"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/usecase/feedback"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/usecase/transcript"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/logger"
)

func main() {
	var (
		outPath  string
		isReport bool
		role     string
		level    string
		logLevel string
	)
	flag.StringVar(&outPath, "o", "", "output markdown path (default stdout)")
	flag.BoolVar(&isReport, "report", false, "input is a coaching report instead of a transcript")
	flag.StringVar(&role, "role", "", "target role printed in the header")
	flag.StringVar(&level, "level", "", "experience level printed in the header")
	flag.StringVar(&logLevel, "log-level", "warn", "log level")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: transcript [-report] [-o out.md] input.json")
		os.Exit(2)
	}
	inPath := flag.Arg(0)

	log, err := logger.New(logLevel, "development")
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		os.Exit(2)
	}
	defer log.Sync()

	raw, err := os.ReadFile(inPath)
	if err != nil {
		log.Fatal("read input", zap.String("path", inPath), zap.Error(err))
	}

	meta := presenter.MarkdownMeta{
		Role:      role,
		Level:     level,
		Source:    filepath.Base(inPath),
		Generated: time.Now().Format(time.RFC3339),
	}

	var out string
	if isReport {
		out, err = renderReport(raw, meta, log)
	} else {
		out, err = renderTranscript(raw, meta)
	}
	if err != nil {
		log.Fatal("render failed", zap.String("path", inPath), zap.Error(err))
	}

	if outPath == "" {
		fmt.Print(out)
		return
	}
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		log.Fatal("write output", zap.String("path", outPath), zap.Error(err))
	}
	log.Info("markdown written", zap.String("path", outPath), zap.Int("bytes", len(out)))
}

func renderTranscript(raw []byte, meta presenter.MarkdownMeta) (string, error) {
	var records []entities.TranscriptRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrInvalidTranscript, err)
	}
	blocks, err := transcript.GroupRecords(records)
	if err != nil {
		return "", err
	}
	return presenter.RenderTranscriptMarkdown(meta, transcript.RenderConversation(blocks)), nil
}

func renderReport(raw []byte, meta presenter.MarkdownMeta, log *zap.Logger) (string, error) {
	report, err := feedback.ParseReport(string(raw))
	if err != nil {
		return "", err
	}
	report.RenderedConversation = feedback.RenderAnnotated(report.AnnotatedConversation, log)
	return presenter.RenderReportMarkdown(meta, report), nil
}
