package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"

	"github.com/PrajwalKusha/LinkSenseAI-App/internal/apperrs"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/cache"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/entities"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/extractor"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/models"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/repository"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/shortcode"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/summarizer"
)

const (
	// maxCodeAttempts bounds short code regeneration on primary key collisions.
	maxCodeAttempts = 5

	linkCacheTTL = 1 * time.Hour
)

// LinkService orchestrates the shorten-and-summarize write path and the
// lookup read path.
type LinkService interface {
	// Shorten validates the URL, deduplicates by exact URL match, and on a
	// miss extracts, summarizes and stores a new record. The returned bool is
	// true when a new record was created.
	Shorten(ctx context.Context, rawURL, baseURL string) (*models.ShortenResponse, bool, error)
	GetSummary(ctx context.Context, code string) (*models.SummaryResponse, error)
	GetOriginalURL(ctx context.Context, code string) (string, error)
	Condense(ctx context.Context, summary, title string) (string, error)
}

type linkService struct {
	repo       repository.LinkRepository
	extractor  extractor.Extractor
	summarizer summarizer.Summarizer
	cache      cache.Cache
	log        *logrus.Logger
}

// NewLinkService creates a new link service. cacheClient may be nil, in which
// case lookups always hit the database.
func NewLinkService(
	repo repository.LinkRepository,
	ext extractor.Extractor,
	sum summarizer.Summarizer,
	cacheClient cache.Cache,
	log *logrus.Logger,
) LinkService {
	return &linkService{
		repo:       repo,
		extractor:  ext,
		summarizer: sum,
		cache:      cacheClient,
		log:        log,
	}
}

// validateURL checks that rawURL parses as an absolute http or https URL.
func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return apperrs.Wrap(apperrs.KindValidation, "invalid URL format", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return apperrs.New(apperrs.KindValidation, "invalid URL format")
	}
	return nil
}

func (s *linkService) Shorten(ctx context.Context, rawURL, baseURL string) (*models.ShortenResponse, bool, error) {
	if rawURL == "" {
		return nil, false, apperrs.New(apperrs.KindValidation, "URL is required")
	}
	if err := validateURL(rawURL); err != nil {
		return nil, false, err
	}

	// Dedup by exact original URL string. The check and the insert below are
	// not atomic; concurrent first writers for the same URL may both miss and
	// create two records. Accepted, the read path picks the oldest.
	existing, err := s.repo.FindByURL(ctx, rawURL)
	if err == nil {
		s.log.WithField("short_code", existing.ShortCode).Info("URL already shortened, returning existing record")
		return toShortenResponse(existing, baseURL), false, nil
	}
	if !errors.Is(err, apperrs.ErrRecordNotFound) {
		return nil, false, apperrs.Wrap(apperrs.KindPersistence, "database error", err)
	}

	article, err := s.extractor.Extract(ctx, rawURL)
	if err != nil {
		return nil, false, err
	}

	summary, err := s.summarizer.Summarize(ctx, article.Title, article.Content)
	if err != nil {
		return nil, false, err
	}

	link, err := s.insertWithFreshCode(ctx, rawURL, article.Title, summary)
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, linkCacheKey(link.ShortCode), link, linkCacheTTL); err != nil {
			s.log.WithError(err).Warn("failed to cache new short link")
		}
	}

	s.log.WithFields(logrus.Fields{
		"short_code": link.ShortCode,
		"url":        rawURL,
	}).Info("created short link")

	return toShortenResponse(link, baseURL), true, nil
}

// insertWithFreshCode inserts the record, regenerating the short code on a
// primary key collision up to maxCodeAttempts times.
func (s *linkService) insertWithFreshCode(ctx context.Context, rawURL, title, summary string) (*entities.ShortLink, error) {
	var stored *entities.ShortLink

	backoff := retry.WithMaxRetries(maxCodeAttempts-1, retry.NewConstant(time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		link := &entities.ShortLink{
			ShortCode:   shortcode.Generate(),
			OriginalURL: rawURL,
			Title:       title,
			Summary:     summary,
			CreatedAt:   time.Now().UTC(),
		}

		created, err := s.repo.Create(ctx, link)
		if errors.Is(err, apperrs.ErrDuplicateKey) {
			s.log.WithField("short_code", link.ShortCode).Warn("short code collision, regenerating")
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}

		stored = created
		return nil
	})
	if err != nil {
		return nil, apperrs.Wrap(apperrs.KindPersistence, "failed to save URL", err)
	}

	return stored, nil
}

func (s *linkService) GetSummary(ctx context.Context, code string) (*models.SummaryResponse, error) {
	link, err := s.lookup(ctx, code)
	if err != nil {
		return nil, err
	}

	return &models.SummaryResponse{
		ShortCode:   link.ShortCode,
		OriginalURL: link.OriginalURL,
		Summary:     link.Summary,
		Title:       link.Title,
		CreatedAt:   link.CreatedAt,
	}, nil
}

func (s *linkService) GetOriginalURL(ctx context.Context, code string) (string, error) {
	link, err := s.lookup(ctx, code)
	if err != nil {
		return "", err
	}
	return link.OriginalURL, nil
}

func (s *linkService) Condense(ctx context.Context, summary, title string) (string, error) {
	if summary == "" {
		return "", apperrs.New(apperrs.KindValidation, "Summary is required")
	}
	return s.summarizer.Condense(ctx, summary, title)
}

// lookup resolves a short code to its record. Malformed codes are reported as
// not found so callers cannot probe which shapes are assigned.
func (s *linkService) lookup(ctx context.Context, code string) (*entities.ShortLink, error) {
	if !shortcode.Valid(code) {
		return nil, apperrs.New(apperrs.KindNotFound, "Short URL not found")
	}

	if s.cache != nil {
		var cached entities.ShortLink
		err := s.cache.GetJSON(ctx, linkCacheKey(code), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.WithError(err).Warn("cache lookup failed")
		}
	}

	link, err := s.repo.FindByShortCode(ctx, code)
	if errors.Is(err, apperrs.ErrRecordNotFound) {
		return nil, apperrs.New(apperrs.KindNotFound, "Short URL not found")
	}
	if err != nil {
		return nil, apperrs.Wrap(apperrs.KindPersistence, "database error", err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, linkCacheKey(code), link, linkCacheTTL); err != nil {
			s.log.WithError(err).Warn("failed to cache short link")
		}
	}

	return link, nil
}

func linkCacheKey(code string) string {
	return fmt.Sprintf("link:%s", code)
}

func toShortenResponse(link *entities.ShortLink, baseURL string) *models.ShortenResponse {
	return &models.ShortenResponse{
		ShortCode:   link.ShortCode,
		ShortURL:    fmt.Sprintf("%s/%s", baseURL, link.ShortCode),
		OriginalURL: link.OriginalURL,
		Summary:     link.Summary,
		Title:       link.Title,
	}
}
