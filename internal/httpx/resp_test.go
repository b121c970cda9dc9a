package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, gin.H{"success": true})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if body["success"] != true {
		t.Errorf("Expected success true, got %v", body["success"])
	}
}

func TestFail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Fail(c, http.StatusBadRequest, "invalid availability filter")

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	var body ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if body.Error != "invalid availability filter" {
		t.Errorf("Expected error message, got %q", body.Error)
	}
}

func TestFailErr(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FailErr(c, ErrDatabase("failed to list components", errors.New("connection refused")))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	var body ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if body.Error != "failed to list components" {
		t.Errorf("Expected client message, got %q", body.Error)
	}
	// the internal cause must never leak to the client
	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(raw) != 1 {
		t.Errorf("Expected only the error field in the body, got %v", raw)
	}
}

func TestOKList(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OKList(c, []string{"a", "b"}, ListMeta{Total: 7, Page: 2, Limit: 2, TotalPages: 4})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	var body struct {
		Data []string `json:"data"`
		Meta ListMeta `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(body.Data) != 2 {
		t.Errorf("Expected 2 data items, got %d", len(body.Data))
	}
	if body.Meta.Total != 7 || body.Meta.Page != 2 || body.Meta.Limit != 2 || body.Meta.TotalPages != 4 {
		t.Errorf("Unexpected meta: %+v", body.Meta)
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{ErrValidation("bad"), http.StatusBadRequest},
		{ErrUnauthorized(""), http.StatusUnauthorized},
		{ErrForbidden(""), http.StatusForbidden},
		{ErrNotFound(""), http.StatusNotFound},
		{ErrConflict(""), http.StatusConflict},
		{ErrDatabase("", nil), http.StatusInternalServerError},
		{ErrInternal("", nil), http.StatusInternalServerError},
		{ErrProvider("", nil), http.StatusBadGateway},
	}
	for _, tt := range tests {
		if tt.err.HTTPStatus != tt.status {
			t.Errorf("Expected status %d, got %d", tt.status, tt.err.HTTPStatus)
		}
		if tt.err.Message == "" {
			t.Error("Expected a default message")
		}
	}
}
