package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		token    string
		expected Mode
	}{
		{"where", ModeWhere},
		{"WHERE", ModeWhere},
		{" where ", ModeWhere},
		{"howto", ModeHowTo},
		{"how-to", ModeHowTo},
		{"", ModeHowTo},
		{"garbage", ModeHowTo},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMode(tt.token))
		})
	}
}

func TestModeLabel(t *testing.T) {
	assert.Equal(t, "where-to-find", ModeWhere.Label())
	assert.Equal(t, "how-to", ModeHowTo.Label())
	assert.Equal(t, "how-to", Mode("junk").Label())
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		token    string
		expected Source
	}{
		{"reddit", SourceReddit},
		{"Reddit", SourceReddit},
		{"guide", SourceGuide},
		{"", SourceGuide},
		{"forum", SourceGuide},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSource(tt.token))
		})
	}
}
