package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dialogue-personas/internal/service"
)

func setupAdminRouter(auth *service.AdminAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminHandler(zap.NewNop(), auth)
	r := gin.New()
	r.POST("/auth/login", h.Login)
	return r
}

func TestAdminHandlerLogin_Success(t *testing.T) {
	auth := adminAuthForTest(t, "hunter2")
	r := setupAdminRouter(auth)

	rec := performRequest(r, http.MethodPost, "/auth/login", map[string]string{
		"password": "hunter2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.AccessToken == "" {
		t.Fatalf("expected access token")
	}
	if body.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Fatalf("unexpected expires_in: %d", body.ExpiresIn)
	}

	if _, err := auth.ParseAccessToken(body.AccessToken); err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
}

func TestAdminHandlerLogin_WrongPassword(t *testing.T) {
	r := setupAdminRouter(adminAuthForTest(t, "hunter2"))

	rec := performRequest(r, http.MethodPost, "/auth/login", map[string]string{
		"password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestAdminHandlerLogin_MissingPassword(t *testing.T) {
	r := setupAdminRouter(adminAuthForTest(t, "hunter2"))

	rec := performRequest(r, http.MethodPost, "/auth/login", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAdminHandlerLogin_AuthDisabled(t *testing.T) {
	r := setupAdminRouter(service.NewAdminAuthService("", "", time.Hour))

	rec := performRequest(r, http.MethodPost, "/auth/login", map[string]string{
		"password": "anything",
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}
