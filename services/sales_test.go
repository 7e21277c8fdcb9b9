package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillMissingDays(t *testing.T) {
	start := time.Date(2026, time.August, 25, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, time.August, 31, 23, 59, 59, 0, time.Local)

	rows := []DailySales{
		{Date: "2026-08-26", TotalSales: 540, TotalOrders: 4},
		{Date: "2026-08-30", TotalSales: 120.50, TotalOrders: 1},
	}

	result := FillMissingDays(start, end, rows)
	require.Len(t, result, 7)

	assert.Equal(t, "2026-08-25", result[0].Date)
	assert.Equal(t, "2026-08-31", result[6].Date)

	assert.Equal(t, 540.0, result[1].TotalSales)
	assert.Equal(t, 4, result[1].TotalOrders)
	assert.Equal(t, 120.50, result[5].TotalSales)

	for _, i := range []int{0, 2, 3, 4, 6} {
		assert.Zero(t, result[i].TotalSales, "day %s should be zero filled", result[i].Date)
		assert.Zero(t, result[i].TotalOrders)
	}
}

// A range whose start carries a later time of day than its end must still
// cover the final calendar day; sales on that day must not vanish.
func TestFillMissingDays_StartTimeLaterThanEndTime(t *testing.T) {
	start := time.Date(2026, time.August, 25, 12, 0, 0, 0, time.Local)
	end := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.Local)

	rows := []DailySales{
		{Date: "2026-08-31", TotalSales: 500, TotalOrders: 2},
	}

	result := FillMissingDays(start, end, rows)
	require.Len(t, result, 7)
	assert.Equal(t, "2026-08-31", result[6].Date)
	assert.Equal(t, 500.0, result[6].TotalSales)
	assert.Equal(t, 2, result[6].TotalOrders)
}

func TestFillMissingDays_SingleDay(t *testing.T) {
	day := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.Local)

	result := FillMissingDays(day, day.Add(23*time.Hour), nil)
	require.Len(t, result, 1)
	assert.Equal(t, "2026-08-31", result[0].Date)
	assert.Zero(t, result[0].TotalSales)
}
