package extractor

import (
	"context"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"

	"github.com/PrajwalKusha/LinkSenseAI-App/internal/apperrs"
)

const extractorTimeout = 30 * time.Second

// Article is the extracted content of a web page.
type Article struct {
	Title       string
	Content     string // plain text of the article body
	Description string
}

// Extractor retrieves the readable content of an article URL.
type Extractor interface {
	Extract(ctx context.Context, url string) (*Article, error)
}

type readabilityExtractor struct {
	timeout time.Duration
}

// NewReadabilityExtractor returns an Extractor backed by go-readability.
func NewReadabilityExtractor() Extractor {
	return &readabilityExtractor{timeout: extractorTimeout}
}

func (e *readabilityExtractor) Extract(ctx context.Context, url string) (*Article, error) {
	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	parsed, err := readability.FromURL(url, timeout)
	if err != nil {
		return nil, apperrs.Wrap(apperrs.KindExtraction, "failed to extract content", err)
	}

	content := strings.TrimSpace(parsed.TextContent)
	if content == "" {
		return nil, apperrs.New(apperrs.KindExtraction, "could not extract article content")
	}

	title := strings.TrimSpace(parsed.Title)
	if title == "" {
		title = "Untitled"
	}

	return &Article{
		Title:       title,
		Content:     content,
		Description: strings.TrimSpace(parsed.Excerpt),
	}, nil
}
