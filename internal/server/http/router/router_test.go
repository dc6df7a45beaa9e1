package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/marketingapi/internal/server/http/handlers"
	"github.com/polkiloo/marketingapi/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/marketingapi/internal/test"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(testhelpers.MarketingFacadeStub{ValidToken: "good"}, logger)
}

func serve(engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := newTestEngine(t)

	resp := serve(engine, http.MethodPost, "/api/auth/register", "", map[string]string{"username": "user", "password": "pass", "email": "user@example.com"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "user", "password": "pass"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for login, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodPost, "/api/customers", "", map[string]any{"name": "Jane", "email": "jane@example.com", "phoneNumber": "5551234567"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for customer sign-up, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodGet, "/api/health", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for health, got %d", resp.Code)
	}
	if resp.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatalf("expected request id header on every response")
	}
}

func TestSetupProtectedRoutes(t *testing.T) {
	engine := newTestEngine(t)

	protected := []struct {
		method string
		path   string
		body   any
		status int
	}{
		{http.MethodGet, "/api/users/me", nil, http.StatusOK},
		{http.MethodGet, "/api/users", nil, http.StatusOK},
		{http.MethodGet, "/api/users/1", nil, http.StatusOK},
		{http.MethodDelete, "/api/users/1", nil, http.StatusNoContent},
		{http.MethodGet, "/api/customers", nil, http.StatusOK},
		{http.MethodGet, "/api/customers/1", nil, http.StatusOK},
		{http.MethodGet, "/api/customers/by_email/jane@example.com", nil, http.StatusOK},
		{http.MethodDelete, "/api/customers/1", nil, http.StatusNoContent},
		{http.MethodDelete, "/api/customers/by_email/jane@example.com", nil, http.StatusNoContent},
		{http.MethodPost, "/api/sms/send", map[string]string{"recipient": "+15551234567", "message": "hi"}, http.StatusOK},
		{http.MethodPost, "/api/sms/bulk", map[string]string{"messageTemplate": "hi {name}", "recipientTag": "all"}, http.StatusOK},
	}

	for _, tt := range protected {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			if resp := serve(engine, tt.method, tt.path, "", tt.body); resp.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 without token, got %d", resp.Code)
			}
			if resp := serve(engine, tt.method, tt.path, "forged", tt.body); resp.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 for unknown token, got %d", resp.Code)
			}
			if resp := serve(engine, tt.method, tt.path, "good", tt.body); resp.Code != tt.status {
				t.Fatalf("expected %d with valid token, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestSetupExposesMetrics(t *testing.T) {
	engine := newTestEngine(t)
	serve(engine, http.MethodGet, "/api/health", "", nil)

	resp := serve(engine, http.MethodGet, "/metrics", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for metrics, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "http_requests_total") {
		t.Fatalf("expected request counter in exposition")
	}
}

var _ handlers.MarketingFacade = testhelpers.MarketingFacadeStub{}
