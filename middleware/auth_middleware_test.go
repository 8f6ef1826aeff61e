package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/config"
	"devconnect/internal/auth"

	"github.com/gin-gonic/gin"
)

func protectedRouter() (*gin.Engine, *uint64) {
	gin.SetMode(gin.TestMode)
	var seen uint64
	r := gin.New()
	r.GET("/private", AuthRequired(), func(c *gin.Context) {
		seen = UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": seen})
	})
	return r, &seen
}

func TestAuthRequiredMissingToken(t *testing.T) {
	config.GlobalConfig = &config.Config{JWT: config.JWTConfig{Secret: "s", Expire: 3600}}
	r, _ := protectedRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["msg"] != "No token, authorization denied" {
		t.Fatalf("unexpected message: %q", body["msg"])
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	config.GlobalConfig = &config.Config{JWT: config.JWTConfig{Secret: "s", Expire: 3600}}
	r, _ := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(TokenHeader, "not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["msg"] != "Token is not valid" {
		t.Fatalf("unexpected message: %q", body["msg"])
	}
}

func TestAuthRequiredAttachesUserID(t *testing.T) {
	config.GlobalConfig = &config.Config{JWT: config.JWTConfig{Secret: "s", Expire: 3600}}
	r, seen := protectedRouter()

	token, err := auth.GenerateToken(99)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(TokenHeader, token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if *seen != 99 {
		t.Fatalf("expected resolved user id 99, got %d", *seen)
	}
}
