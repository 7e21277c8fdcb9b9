package controllers

import (
	"context"
	"net/http"
	"time"

	"cafesync/services"

	"github.com/gin-gonic/gin"
)

// GetOrderReport serves the date-ranged report consumed by the reporting
// dashboard and the PDF export; both must show the same totals.
func (oc *OrderController) GetOrderReport(c *gin.Context) {
	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		fail(c, http.StatusBadRequest, "Start and End date required")
		return
	}

	start, err := parseDate(startStr)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid startDate")
		return
	}
	end, err := parseDate(endStr)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid endDate")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	report, err := services.GetOrderReport(ctx, services.ReportParams{
		Start:  start,
		End:    end,
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"range":           report.Range,
		"summary":         report.Summary,
		"statusBreakdown": report.StatusBreakdown,
		"orders":          report.Orders,
		"allData":         report.AllData,
		"message":         report.Message,
	})
}

// GetDailySales serves the per-day sales series for the dashboard chart.
func (oc *OrderController) GetDailySales(c *gin.Context) {
	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		fail(c, http.StatusBadRequest, "startDate and endDate are required")
		return
	}

	start, err := parseDate(startStr)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid startDate")
		return
	}
	end, err := parseDate(endStr)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid endDate")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	sales, err := services.GetDailySales(ctx, start, end)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": sales})
}
