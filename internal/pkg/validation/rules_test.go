package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"student@example.com", true},
		{"first.last+tag@sub.domain.org", true},
		{"", false},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"User@Example.com", false}, // pattern expects lowercased input
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("12345678"))
	assert.True(t, ValidPassword("a-much-longer-password"))
	assert.False(t, ValidPassword("1234567"))
	assert.False(t, ValidPassword(""))
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Al"))
	assert.True(t, ValidName("Osman"))
	assert.True(t, ValidName(strings.Repeat("a", 100)))
	assert.False(t, ValidName("A"))
	assert.False(t, ValidName(""))
	assert.False(t, ValidName(strings.Repeat("a", 101)))
}
