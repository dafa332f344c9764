package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportWindowPeriods(t *testing.T) {
	cases := []struct {
		query  string
		period string
		days   int
	}{
		{"", "30days", 30},
		{"period=7days", "7days", 7},
		{"period=30days", "30days", 30},
		{"period=90days", "90days", 90},
	}
	for _, tc := range cases {
		r := httptest.NewRequest("GET", "/api/admin/analytics?"+tc.query, nil)
		start, end, period := reportWindow(r)

		assert.Equal(t, tc.period, period, "query %q", tc.query)
		assert.WithinDuration(t, time.Now(), end, time.Minute)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, -tc.days), start, time.Minute)
	}
}

func TestReportWindowAll(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/admin/analytics?period=all", nil)
	start, _, period := reportWindow(r)

	assert.Equal(t, "all", period)
	assert.True(t, start.IsZero())
}

func TestReportWindowCustomDates(t *testing.T) {
	r := httptest.NewRequest(
		"GET",
		"/api/admin/analytics?startDate=2026-01-01&endDate=2026-01-31",
		nil,
	)
	start, end, period := reportWindow(r)

	assert.Equal(t, "custom", period)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), start)
	// the window includes the whole end day
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestReportWindowIgnoresBadDates(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/admin/analytics?period=7days&startDate=nonsense", nil)
	_, _, period := reportWindow(r)

	assert.Equal(t, "7days", period)
}
