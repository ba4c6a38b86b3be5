package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		expected  string
	}{
		{"zero", 0, "00:00"},
		{"minutes and seconds", 125 * time.Second, "02:05"},
		{"floors fractional seconds", 59900 * time.Millisecond, "00:59"},
		{"sub second", 400 * time.Millisecond, "00:00"},
		{"full work interval", 25 * time.Minute, "25:00"},
		{"just under a minute boundary", 5*time.Minute - time.Nanosecond, "04:59"},
		{"two digit minutes", 99*time.Minute + 59*time.Second, "99:59"},
		{"negative", -3 * time.Second, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRemaining(tt.remaining))
		})
	}
}
