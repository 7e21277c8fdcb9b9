package services

import (
	"encoding/json"
	"testing"
	"time"

	"cafesync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindow(t *testing.T) {
	now := time.Date(2026, time.August, 31, 14, 23, 5, 0, time.Local)
	start, end := DayWindow(now)

	assert.Equal(t, time.Date(2026, time.August, 31, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.True(t, end.After(now))
	assert.Equal(t, start.Day(), end.Day())
}

func TestBuildSummary_AllKeysPresentWhenEmpty(t *testing.T) {
	summary := buildSummary(nil)

	assert.Equal(t, 0, summary.TotalOrders)
	assert.Equal(t, 0, summary.Pending)
	assert.Equal(t, 0, summary.Preparing)
	assert.Equal(t, 0, summary.Served)
	assert.Equal(t, 0, summary.Cancelled)

	// Every status key must appear in the JSON payload even at zero, so
	// dashboard clients never have to handle missing fields.
	raw, err := json.Marshal(summary)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"totalOrders", "pending", "preparing", "served", "cancelled"} {
		assert.Contains(t, fields, key)
	}
}

func TestBuildSummary_TotalIsSumOfCounts(t *testing.T) {
	summary := buildSummary([]statusCount{
		{Status: models.StatusPending, Count: 3},
		{Status: models.StatusPreparing, Count: 1},
		{Status: models.StatusServed, Count: 7},
		{Status: models.StatusCancelled, Count: 2},
	})

	assert.Equal(t, 3, summary.Pending)
	assert.Equal(t, 1, summary.Preparing)
	assert.Equal(t, 7, summary.Served)
	assert.Equal(t, 2, summary.Cancelled)
	assert.Equal(t, 13, summary.TotalOrders)
	assert.Equal(t, summary.Pending+summary.Preparing+summary.Served+summary.Cancelled, summary.TotalOrders)
}

func TestBuildSummary_PartialStatuses(t *testing.T) {
	summary := buildSummary([]statusCount{
		{Status: models.StatusServed, Count: 4},
	})

	assert.Equal(t, 4, summary.Served)
	assert.Equal(t, 0, summary.Pending)
	assert.Equal(t, 4, summary.TotalOrders)
}
