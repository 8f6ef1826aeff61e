package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	Respond(c, err)
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return w, body
}

func TestValidationListsEveryField(t *testing.T) {
	w, body := respond(t, Validation("Status is required", "Skills is required"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	list, ok := body["errors"].([]interface{})
	if !ok || len(list) != 2 {
		t.Fatalf("expected two field errors, got %v", body)
	}
	first := list[0].(map[string]interface{})
	if first["msg"] != "Status is required" {
		t.Fatalf("unexpected first message: %v", first)
	}
}

func TestBadRequestUsesSingleMessageShape(t *testing.T) {
	w, body := respond(t, BadRequest("Post already liked"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if body["msg"] != "Post already liked" {
		t.Fatalf("expected msg body, got %v", body)
	}
	if _, has := body["errors"]; has {
		t.Fatal("single-message errors must not use the errors array")
	}
}

func TestNotFoundStatusOverride(t *testing.T) {
	w, _ := respond(t, NotFound("Post not found"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	w, body := respond(t, NotFound("Profile not found", http.StatusBadRequest))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected overridden 400, got %d", w.Code)
	}
	if body["msg"] != "Profile not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

// Ownership failures keep the platform's historical 401 mapping.
func TestForbiddenMapsTo401(t *testing.T) {
	w, body := respond(t, Forbidden("User not authorized"))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body["msg"] != "User not authorized" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestInternalMasksDetail(t *testing.T) {
	w, body := respond(t, Internal(errors.New("dsn: connection refused")))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if body["msg"] != "Server Error" {
		t.Fatalf("internal detail leaked: %v", body)
	}
}

func TestUnclassifiedErrorsAreMasked(t *testing.T) {
	w, body := respond(t, errors.New("plain failure"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if body["msg"] != "Server Error" {
		t.Fatalf("plain error leaked: %v", body)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	if !errors.Is(Internal(cause), cause) {
		t.Fatal("expected Internal to wrap its cause")
	}
}
