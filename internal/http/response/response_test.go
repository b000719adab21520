package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorBodyIncludesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-resp-001")

	Error(c, http.StatusNotFound, "Parcel not found")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status want 404 got %d", w.Code)
	}
	var body ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body failed: %v", err)
	}
	if body.Detail != "Parcel not found" || body.RequestID != "req-resp-001" {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestInternalStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Internal(c, "Rate limiter unavailable")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status want 500 got %d", w.Code)
	}
	var body ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body failed: %v", err)
	}
	if body.Detail != "Rate limiter unavailable" {
		t.Fatalf("detail want Rate limiter unavailable got %s", body.Detail)
	}
	if body.RequestID != "" {
		t.Fatalf("request id should be omitted when unset, got %s", body.RequestID)
	}
}
