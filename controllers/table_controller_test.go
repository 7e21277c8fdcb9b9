package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func tableTestRouter() (*gin.Engine, *recordingPublisher) {
	gin.SetMode(gin.TestMode)
	pub := &recordingPublisher{}
	tc := NewTableController(pub, zap.NewNop())

	r := gin.New()
	r.POST("/api/tables", tc.CreateTable)
	r.POST("/api/tables/:id/status", tc.UpdateTableStatus)
	r.PUT("/api/tables/:id", tc.UpdateTable)
	r.DELETE("/api/tables/:id", tc.DeleteTable)
	return r, pub
}

func TestCreateTable_MissingFields(t *testing.T) {
	r, pub := tableTestRouter()

	for _, body := range []string{`{}`, `{"name":"T1"}`, `{"seats":4}`} {
		w := postJSON(r, "/api/tables", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "Name and seats are required")
	}
	assert.Empty(t, pub.events)
}

func TestUpdateTableStatus_InvalidID(t *testing.T) {
	r, _ := tableTestRouter()

	w := postJSON(r, "/api/tables/nope/status", `{"status":"occupied"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid table ID")
}

func TestUpdateTable_NoFields(t *testing.T) {
	r, _ := tableTestRouter()

	req := httptest.NewRequest(http.MethodPut, "/api/tables/64f000000000000000000001", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "At least one field")
}

func TestDeleteTable_InvalidID(t *testing.T) {
	r, _ := tableTestRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/tables/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
