package routines_test

import (
	"testing"
	"time"

	"github.com/xqfit/routines/internal/routines"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWeekStart(t *testing.T) {
	testCases := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "monday stays",
			input:    time.Date(2025, 3, 3, 15, 4, 5, 0, time.UTC),
			expected: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "wednesday rolls back to monday",
			input:    time.Date(2025, 3, 5, 0, 30, 0, 0, time.UTC),
			expected: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "saturday rolls back to monday",
			input:    time.Date(2025, 3, 8, 23, 59, 59, 0, time.UTC),
			expected: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "sunday rolls back to the previous monday",
			input:    time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "monday midnight exactly",
			input:    time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "rollback across a month boundary",
			input:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), // sunday
			expected: time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "rollback across a year boundary",
			input:    time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC), // thursday
			expected: time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := routines.WeekStart(tc.input)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestWeekStart_NonUTCInput(t *testing.T) {
	belgrade, err := time.LoadLocation("Europe/Belgrade")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// monday 00:30 in belgrade is still sunday in UTC
	input := time.Date(2025, 3, 3, 0, 30, 0, 0, belgrade)
	got := routines.WeekStart(input)
	assert.Equal(t, time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC), got)
}

func TestWeekStartDate(t *testing.T) {
	assert.Equal(t, "2025-03-03", routines.WeekStartDate(time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-03-03", routines.WeekStartDate(time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)))
}
