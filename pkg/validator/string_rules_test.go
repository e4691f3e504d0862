package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/starterkit/pkg/validator"
)

func TestRequired(t *testing.T) {
	assert.True(t, validator.Required("name", "John").Check())
	assert.False(t, validator.Required("name", "").Check())
	assert.False(t, validator.Required("name", "   \t").Check())
	assert.Equal(t, "required", validator.Required("name", "").Error.Code)
}

func TestMinLen(t *testing.T) {
	tests := []struct {
		name  string
		value string
		min   int
		want  bool
	}{
		{"exact length", "abc", 3, true},
		{"longer", "abcd", 3, true},
		{"shorter", "ab", 3, false},
		{"counts runes not bytes", "äöü", 3, true},
		{"multibyte too short", "äö", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.MinLen("name", tt.value, tt.min)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, "must be at least 3 characters long", rule.Error.Message)
		})
	}
}

func TestMaxLen(t *testing.T) {
	assert.True(t, validator.MaxLen("name", "abc", 3).Check())
	assert.False(t, validator.MaxLen("name", "abcd", 3).Check())
	assert.True(t, validator.MaxLen("name", "ääää", 4).Check())
	assert.Equal(t, "must be at most 3 characters long", validator.MaxLen("name", "", 3).Error.Message)
}
