package services

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatePrefix(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{
			name: "single digit day and month are zero padded",
			time: time.Date(2026, time.March, 7, 12, 0, 0, 0, time.Local),
			want: "ORD-2026-07-03",
		},
		{
			name: "double digit day and month",
			time: time.Date(2026, time.December, 31, 23, 59, 0, 0, time.Local),
			want: "ORD-2026-31-12",
		},
		{
			name: "day comes before month",
			time: time.Date(2025, time.January, 25, 0, 0, 0, 0, time.Local),
			want: "ORD-2025-25-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DatePrefix(tt.time))
		})
	}
}

func TestDatePrefix_MatchesOrderCodeFormat(t *testing.T) {
	format := regexp.MustCompile(`^ORD-\d{4}-\d{2}-\d{2}-\d+$`)

	now := time.Date(2026, time.August, 31, 10, 30, 0, 0, time.Local)
	code := fmt.Sprintf("%s-%d", DatePrefix(now), 1)
	assert.Regexp(t, format, code)

	code = fmt.Sprintf("%s-%d", DatePrefix(now), 142)
	assert.Regexp(t, format, code)
}

func TestNextSequence(t *testing.T) {
	n, err := NextSequence("ORD-2026-31-08-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = NextSequence("ORD-2026-31-08-99")
	require.NoError(t, err)
	assert.Equal(t, 100, n)
}

func TestNextSequence_Malformed(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"non numeric suffix", "ORD-2026-31-08-abc"},
		{"missing suffix", "ORD-2026-31-08"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NextSequence(tt.code)
			assert.Error(t, err)
		})
	}
}

func TestNextSequence_SequentialCodesIncrease(t *testing.T) {
	prefix := DatePrefix(time.Now())
	last := 1
	code := fmt.Sprintf("%s-%d", prefix, last)

	for i := 0; i < 5; i++ {
		n, err := NextSequence(code)
		require.NoError(t, err)
		assert.Equal(t, last+1, n)
		last = n
		code = fmt.Sprintf("%s-%d", prefix, n)
	}
}
