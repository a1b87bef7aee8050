package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLinkRecord_IsExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		expected  bool
	}{
		{"future expiry", now.Add(time.Hour), false},
		{"exact expiry instant", now, true},
		{"past expiry", now.Add(-time.Second), true},
		{"no expiry", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := LinkRecord{Code: "abc123", URL: "https://example.com", ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.expected, record.IsExpired(now))
		})
	}
}
