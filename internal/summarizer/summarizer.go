package summarizer

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/PrajwalKusha/LinkSenseAI-App/internal/apperrs"
)

const (
	summaryMaxTokens  = 400
	condenseMaxTokens = 200
	temperature       = 0.3

	// fallbackPoints is how many bullet segments the local condense fallback keeps.
	fallbackPoints = 3
)

// Summarizer turns article text into a bullet-point summary and rewrites
// existing summaries into condensed form.
type Summarizer interface {
	Summarize(ctx context.Context, title, articleText string) (string, error)
	Condense(ctx context.Context, summary, title string) (string, error)
}

// Completer is the remote chat-completion call the summarizer builds on.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

type aiSummarizer struct {
	completer Completer
	log       *logrus.Logger
}

// New creates a Summarizer backed by a remote chat-completion endpoint.
func New(completer Completer, log *logrus.Logger) Summarizer {
	return &aiSummarizer{completer: completer, log: log}
}

// Summarize asks the model for a bullet-point summary of the article. A failed
// or unusable response surfaces as a summarization error; nothing is retried.
func (s *aiSummarizer) Summarize(ctx context.Context, title, articleText string) (string, error) {
	text, err := s.completer.Complete(ctx, buildSummaryPrompt(title, articleText), summaryMaxTokens, temperature)
	if err != nil {
		return "", apperrs.Wrap(apperrs.KindSummarization, "failed to generate summary", err)
	}
	return text, nil
}

// Condense asks the model to rewrite an existing summary into at most 3-4
// short bullets. When the remote call fails it falls back to the local
// deterministic condensation, so Condense itself never fails for well-formed
// input.
func (s *aiSummarizer) Condense(ctx context.Context, summary, title string) (string, error) {
	_ = title // kept in the signature for parity with Summarize; the prompt works from the summary alone

	text, err := s.completer.Complete(ctx, buildCondensePrompt(summary), condenseMaxTokens, temperature)
	if err != nil {
		s.log.WithError(err).Warn("condensed summary model call failed, using local fallback")
		return FallbackCondense(summary), nil
	}
	return text, nil
}

// FallbackCondense derives a condensed summary locally: the first three bullet
// segments, title portion only (text before the first colon), bold markers
// stripped. Pure and deterministic.
func FallbackCondense(summary string) string {
	var lines []string
	for _, segment := range strings.Split(summary, "• ") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		title := segment
		if idx := strings.Index(segment, ":"); idx >= 0 {
			title = segment[:idx]
		}
		title = strings.TrimSpace(strings.ReplaceAll(title, "**", ""))
		lines = append(lines, "• "+title)
		if len(lines) == fallbackPoints {
			break
		}
	}
	return strings.Join(lines, "\n")
}
