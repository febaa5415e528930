package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrajwalKusha/LinkSenseAI-App/internal/apperrs"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/entities"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/extractor"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/shortcode"
)

type fakeRepo struct {
	byCode map[string]*entities.ShortLink
	byURL  map[string]*entities.ShortLink

	createErr      error
	failCreates    int // fail this many Creates with ErrDuplicateKey before succeeding
	createAttempts int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byCode: make(map[string]*entities.ShortLink),
		byURL:  make(map[string]*entities.ShortLink),
	}
}

func (r *fakeRepo) Create(_ context.Context, link *entities.ShortLink) (*entities.ShortLink, error) {
	r.createAttempts++
	if r.createErr != nil {
		return nil, r.createErr
	}
	if r.failCreates > 0 {
		r.failCreates--
		return nil, apperrs.ErrDuplicateKey
	}
	if _, taken := r.byCode[link.ShortCode]; taken {
		return nil, apperrs.ErrDuplicateKey
	}
	stored := *link
	r.byCode[link.ShortCode] = &stored
	r.byURL[link.OriginalURL] = &stored
	return &stored, nil
}

func (r *fakeRepo) FindByShortCode(_ context.Context, code string) (*entities.ShortLink, error) {
	if link, ok := r.byCode[code]; ok {
		return link, nil
	}
	return nil, apperrs.ErrRecordNotFound
}

func (r *fakeRepo) FindByURL(_ context.Context, url string) (*entities.ShortLink, error) {
	if link, ok := r.byURL[url]; ok {
		return link, nil
	}
	return nil, apperrs.ErrRecordNotFound
}

type fakeExtractor struct {
	article *extractor.Article
	err     error
	calls   int
}

func (e *fakeExtractor) Extract(_ context.Context, _ string) (*extractor.Article, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return e.article, nil
}

type fakeSummarizer struct {
	summary      string
	summarizeErr error
	condensed    string
}

func (s *fakeSummarizer) Summarize(_ context.Context, _, _ string) (string, error) {
	if s.summarizeErr != nil {
		return "", s.summarizeErr
	}
	return s.summary, nil
}

func (s *fakeSummarizer) Condense(_ context.Context, _, _ string) (string, error) {
	return s.condensed, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&strings.Builder{})
	return logger
}

func newTestService(repo *fakeRepo, ext *fakeExtractor, sum *fakeSummarizer) LinkService {
	return NewLinkService(repo, ext, sum, nil, testLogger())
}

func defaultFakes() (*fakeRepo, *fakeExtractor, *fakeSummarizer) {
	return newFakeRepo(),
		&fakeExtractor{article: &extractor.Article{Title: "Example", Content: "article body text"}},
		&fakeSummarizer{summary: "• **Point One**: explanation"}
}

const testBaseURL = "https://sho.rt"

func TestShortenCreatesRecord(t *testing.T) {
	repo, ext, sum := defaultFakes()
	svc := newTestService(repo, ext, sum)

	resp, created, err := svc.Shorten(context.Background(), "https://example.com/article", testBaseURL)
	require.NoError(t, err)
	assert.True(t, created)

	assert.True(t, shortcode.Valid(resp.ShortCode))
	assert.Equal(t, testBaseURL+"/"+resp.ShortCode, resp.ShortURL)
	assert.Equal(t, "https://example.com/article", resp.OriginalURL)
	assert.Equal(t, "Example", resp.Title)
	assert.Equal(t, "• **Point One**: explanation", resp.Summary)

	stored, err := repo.FindByShortCode(context.Background(), resp.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/article", stored.OriginalURL)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestShortenValidation(t *testing.T) {
	repo, ext, sum := defaultFakes()
	svc := newTestService(repo, ext, sum)

	for _, raw := range []string{"", "not a url", "ftp://example.com/file", "example.com/no-scheme", "https://"} {
		_, _, err := svc.Shorten(context.Background(), raw, testBaseURL)
		require.Error(t, err, raw)
		assert.Equal(t, apperrs.KindValidation, apperrs.KindOf(err), raw)
	}

	assert.Zero(t, ext.calls, "invalid URLs must not reach the extractor")
	assert.Zero(t, repo.createAttempts)
}

func TestShortenDedupReturnsExistingRecord(t *testing.T) {
	repo, ext, sum := defaultFakes()
	svc := newTestService(repo, ext, sum)

	first, created, err := svc.Shorten(context.Background(), "https://example.com/article", testBaseURL)
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.Shorten(context.Background(), "https://example.com/article", testBaseURL)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ShortCode, second.ShortCode)
	assert.Equal(t, first.Summary, second.Summary)

	assert.Equal(t, 1, ext.calls, "dedup hits must not re-extract")
	assert.Equal(t, 1, repo.createAttempts)
}

func TestShortenDedupIsExactMatchOnly(t *testing.T) {
	repo, ext, sum := defaultFakes()
	svc := newTestService(repo, ext, sum)

	first, _, err := svc.Shorten(context.Background(), "https://example.com/article", testBaseURL)
	require.NoError(t, err)

	// A trailing slash is a different string, so a new record is created
	second, created, err := svc.Shorten(context.Background(), "https://example.com/article/", testBaseURL)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.ShortCode, second.ShortCode)
}

func TestShortenExtractionFailureIsSideEffectFree(t *testing.T) {
	repo, ext, sum := defaultFakes()
	ext.err = apperrs.New(apperrs.KindExtraction, "could not extract article content")
	svc := newTestService(repo, ext, sum)

	_, _, err := svc.Shorten(context.Background(), "https://example.com/article", testBaseURL)
	require.Error(t, err)
	assert.Equal(t, apperrs.KindExtraction, apperrs.KindOf(err))
	assert.Zero(t, repo.createAttempts, "no record may be created on extraction failure")
}

func TestShortenSummarizationFailureIsSideEffectFree(t *testing.T) {
	repo, ext, sum := defaultFakes()
	sum.summarizeErr = apperrs.New(apperrs.KindSummarization, "failed to generate summary")
	svc := newTestService(repo, ext, sum)

	_, _, err := svc.Shorten(context.Background(), "https://example.com/article", testBaseURL)
	require.Error(t, err)
	assert.Equal(t, apperrs.KindSummarization, apperrs.KindOf(err))
	assert.Zero(t, repo.createAttempts)
}

func TestShortenRetriesOnShortCodeCollision(t *testing.T) {
	repo, ext, sum := defaultFakes()
	repo.failCreates = 2
	svc := newTestService(repo, ext, sum)

	resp, created, err := svc.Shorten(context.Background(), "https://example.com/article", testBaseURL)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, shortcode.Valid(resp.ShortCode))
	assert.Equal(t, 3, repo.createAttempts)
}

func TestShortenGivesUpAfterBoundedCollisionRetries(t *testing.T) {
	repo, ext, sum := defaultFakes()
	repo.failCreates = 1000
	svc := newTestService(repo, ext, sum)

	_, _, err := svc.Shorten(context.Background(), "https://example.com/article", testBaseURL)
	require.Error(t, err)
	assert.Equal(t, apperrs.KindPersistence, apperrs.KindOf(err))
	assert.Equal(t, maxCodeAttempts, repo.createAttempts)
}

func TestShortenPersistenceError(t *testing.T) {
	repo, ext, sum := defaultFakes()
	repo.createErr = errors.New("connection refused")
	svc := newTestService(repo, ext, sum)

	_, _, err := svc.Shorten(context.Background(), "https://example.com/article", testBaseURL)
	require.Error(t, err)
	assert.Equal(t, apperrs.KindPersistence, apperrs.KindOf(err))
	assert.Equal(t, 1, repo.createAttempts, "store-level failures are not retried")
}

func TestGetSummaryRoundTrip(t *testing.T) {
	repo, ext, sum := defaultFakes()
	svc := newTestService(repo, ext, sum)

	resp, _, err := svc.Shorten(context.Background(), "https://example.com/article", testBaseURL)
	require.NoError(t, err)

	summary, err := svc.GetSummary(context.Background(), resp.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, resp.ShortCode, summary.ShortCode)
	assert.Equal(t, "https://example.com/article", summary.OriginalURL)
	assert.Equal(t, "Example", summary.Title)
	assert.False(t, summary.CreatedAt.IsZero())
}

func TestGetSummaryMalformedCode(t *testing.T) {
	repo, ext, sum := defaultFakes()
	svc := newTestService(repo, ext, sum)

	for _, code := range []string{"ab", "!!!!!!", "", "toolong1"} {
		_, err := svc.GetSummary(context.Background(), code)
		require.Error(t, err, code)
		// Malformed codes present as not found, never as a server fault
		assert.Equal(t, apperrs.KindNotFound, apperrs.KindOf(err), code)
	}
}

func TestGetSummaryUnknownCode(t *testing.T) {
	repo, ext, sum := defaultFakes()
	svc := newTestService(repo, ext, sum)

	_, err := svc.GetSummary(context.Background(), "abc123")
	require.Error(t, err)
	assert.Equal(t, apperrs.KindNotFound, apperrs.KindOf(err))
}

func TestGetOriginalURL(t *testing.T) {
	repo, ext, sum := defaultFakes()
	svc := newTestService(repo, ext, sum)

	resp, _, err := svc.Shorten(context.Background(), "https://example.com/article", testBaseURL)
	require.NoError(t, err)

	target, err := svc.GetOriginalURL(context.Background(), resp.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/article", target)
}

func TestCondenseRequiresSummary(t *testing.T) {
	repo, ext, sum := defaultFakes()
	sum.condensed = "• A\n• B"
	svc := newTestService(repo, ext, sum)

	_, err := svc.Condense(context.Background(), "", "T")
	require.Error(t, err)
	assert.Equal(t, apperrs.KindValidation, apperrs.KindOf(err))

	out, err := svc.Condense(context.Background(), "• **A**: one", "T")
	require.NoError(t, err)
	assert.Equal(t, "• A\n• B", out)
}
