package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, req *http.Request) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestExtractTokenPrefersBearerHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})

	if token := ExtractToken(testContext(t, req)); token != "header-token" {
		t.Fatalf("expected header token, got %q", token)
	}
}

func TestExtractTokenFallsBackToCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})

	if token := ExtractToken(testContext(t, req)); token != "cookie-token" {
		t.Fatalf("expected cookie token, got %q", token)
	}
}

func TestExtractTokenEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token := ExtractToken(testContext(t, req)); token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}

	// 非 Bearer 的 Authorization 头不算令牌
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	if token := ExtractToken(testContext(t, req)); token != "" {
		t.Fatalf("expected empty token for basic auth, got %q", token)
	}
}
