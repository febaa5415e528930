package models

import "time"

// ShortenRequest is the body of POST /api/shorten.
type ShortenRequest struct {
	URL string `json:"url" binding:"required"`
}

// ShortenResponse is returned for both freshly created links and dedup hits.
type ShortenResponse struct {
	ShortCode   string `json:"shortCode"`
	ShortURL    string `json:"shortUrl"`
	OriginalURL string `json:"originalUrl"`
	Summary     string `json:"summary"`
	Title       string `json:"title"`
}

// SummaryResponse is the body of GET /api/summary/:shortCode.
type SummaryResponse struct {
	ShortCode   string    `json:"shortCode"`
	OriginalURL string    `json:"originalUrl"`
	Summary     string    `json:"summary"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CondenseRequest is the body of POST /api/condensed-summary.
type CondenseRequest struct {
	Summary string `json:"summary"`
	Title   string `json:"title"`
}

// CondenseResponse carries the condensed rewrite of an existing summary.
type CondenseResponse struct {
	CondensedSummary string `json:"condensedSummary"`
}
