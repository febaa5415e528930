package shortcode

import (
	"crypto/rand"
	"regexp"
)

// Length is the fixed length of every short code.
const Length = 6

// alphabet is URL-safe so codes can live in a path segment without escaping.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{6}$`)

// Generate returns a random 6-character short code drawn uniformly from the
// URL-safe alphabet. The alphabet has 64 characters, so each random byte maps
// onto it without modulo bias.
func Generate() string {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range buf {
		buf[i] = alphabet[b&63]
	}
	return string(buf)
}

// Valid reports whether code has the exact shape of a generated short code.
func Valid(code string) bool {
	return codePattern.MatchString(code)
}
