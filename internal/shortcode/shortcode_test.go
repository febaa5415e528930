package shortcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := Generate()
		require.Len(t, code, Length)
		require.True(t, Valid(code), "generated code %q must be valid", code)
		seen[code] = true
	}
	// 1000 draws from 64^6 possibilities should not all collide
	assert.Greater(t, len(seen), 990)
}

func TestValid(t *testing.T) {
	valid := []string{"abc123", "ABCDEF", "a_b-c1", "______", "------"}
	for _, code := range valid {
		assert.True(t, Valid(code), code)
	}

	invalid := []string{"", "ab", "abcde", "abcdefg", "!!!!!!", "abc 12", "abc.12", "абвгде"}
	for _, code := range invalid {
		assert.False(t, Valid(code), code)
	}
}
