package entities

import "time"

// ShortLink represents a shortened article entry in the database.
// Records are insert-only: nothing updates or deletes them once stored.
type ShortLink struct {
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	CreatedAt   time.Time `json:"created_at"`
}
