package sanitizer_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/starterkit/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trims whitespace and converts to lowercase",
			input:    "  USER@EXAMPLE.COM  ",
			expected: "user@example.com",
		},
		{
			name:     "keeps dots in local part",
			input:    "first..last@example.com",
			expected: "first..last@example.com",
		},
		{
			name:     "handles invalid email format",
			input:    " Invalid-Email ",
			expected: "invalid-email",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "masks normal email",
			input:    "user@example.com",
			expected: "u***@example.com",
		},
		{
			name:     "masks single character local part",
			input:    "a@example.com",
			expected: "*@example.com",
		},
		{
			name:     "handles email with spaces",
			input:    "  testuser@domain.org  ",
			expected: "t*******@domain.org",
		},
		{
			name:     "handles invalid email format",
			input:    "invalid-email",
			expected: "invalid-email",
		},
		{
			name:     "handles empty local part",
			input:    "@example.com",
			expected: "@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.MaskEmail(tt.input))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	t.Run("collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "Jane Doe", sanitizer.NormalizeName("  Jane \t\n Doe  "))
	})

	t.Run("drops control characters", func(t *testing.T) {
		assert.Equal(t, "JaneDoe", sanitizer.NormalizeName("Jane\x00Doe\x7f"))
	})

	t.Run("composes combining sequences", func(t *testing.T) {
		decomposed := "José"
		got := sanitizer.NormalizeName(decomposed)

		assert.Equal(t, "José", got)
		assert.Equal(t, 4, utf8.RuneCountInString(got))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, sanitizer.NormalizeName(strings.Repeat(" ", 5)))
	})
}

func TestApplyAndCompose(t *testing.T) {
	upper := func(s string) string { return strings.ToUpper(s) }
	exclaim := func(s string) string { return s + "!" }

	assert.Equal(t, "HI!", sanitizer.Apply("hi", upper, exclaim))
	assert.Equal(t, "hi", sanitizer.Apply("hi"))

	shout := sanitizer.Compose(upper, exclaim)
	assert.Equal(t, "HEY!", shout("hey"))
	assert.Equal(t, "YOU!", shout("you"))
}
