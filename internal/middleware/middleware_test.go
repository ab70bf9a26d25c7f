package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/logger"
	"estatedesk/internal/models"
	"estatedesk/internal/tokenstore"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func newTestAuthenticator() *Authenticator {
	return NewAuthenticator(testSecret, tokenstore.New(tokenstore.NewMemoryKV(), time.Hour), false)
}

func setupAuthRouter(auth *Authenticator) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/protected", auth.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(UserIDKey)})
	})
	return r
}

func requestWithCookie(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", http.NoBody)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	user := &models.User{Base: models.Base{ID: "0191e1a2-0000-7000-8000-00000000abcd"}, Email: "a@b.com", Name: "A"}

	t.Run("valid_token", func(t *testing.T) {
		auth := newTestAuthenticator()
		token, err := auth.Issue(context.Background(), user)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}

		rec := requestWithCookie(setupAuthRouter(auth), token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got := parseBody(t, rec)["userId"]; got != user.ID {
			t.Errorf("expected userId %s, got %v", user.ID, got)
		}
	})

	t.Run("missing_cookie", func(t *testing.T) {
		rec := requestWithCookie(setupAuthRouter(newTestAuthenticator()), "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		body := parseBody(t, rec)
		if body["message"] != "No token provided" || body["title"] != "Unauthorized" {
			t.Errorf("unexpected body %v", body)
		}
	})

	t.Run("bad_signature_clears_cookie", func(t *testing.T) {
		other := NewAuthenticator("other-secret", tokenstore.New(tokenstore.NewMemoryKV(), time.Hour), false)
		token, err := other.Issue(context.Background(), user)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}

		rec := requestWithCookie(setupAuthRouter(newTestAuthenticator()), token)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		if msg, _ := parseBody(t, rec)["message"].(string); !strings.HasPrefix(msg, "Invalid token: ") {
			t.Errorf("unexpected message %q", msg)
		}
		if !strings.Contains(rec.Header().Get("Set-Cookie"), CookieName+"=;") {
			t.Errorf("expected cookie to be cleared, got %q", rec.Header().Get("Set-Cookie"))
		}
	})

	t.Run("expired_token", func(t *testing.T) {
		claims := &JWTClaims{
			UserID: user.ID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))

		rec := requestWithCookie(setupAuthRouter(newTestAuthenticator()), token)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("revoked_token", func(t *testing.T) {
		auth := newTestAuthenticator()
		token, err := auth.Issue(context.Background(), user)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if err := auth.Revoke(context.Background(), token); err != nil {
			t.Fatalf("revoke: %v", err)
		}

		rec := requestWithCookie(setupAuthRouter(auth), token)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		if msg := parseBody(t, rec)["message"]; msg != "Invalid token: Token doesn't exist" {
			t.Errorf("unexpected message %v", msg)
		}
	})
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app_error", apperrors.ErrInvestmentNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped_internal", apperrors.Wrap(apperrors.ErrInternalServer, errors.New("boom")), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"plain_error", errors.New("unexpected"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/fail", func(c *gin.Context) { _ = c.Error(tt.err) })

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			body := parseBody(t, rec)
			if body["code"] != tt.wantCode {
				t.Errorf("expected code %s, got %v", tt.wantCode, body["code"])
			}
			if body["message"] == "boom" || body["message"] == "unexpected" {
				t.Error("internal error leaked to client")
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	r := gin.New()
	r.Use(ErrorHandler(), rl.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusNoContent || codes[1] != http.StatusNoContent {
		t.Errorf("expected burst of 2 to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected third request to be limited, got %d", codes[2])
	}

	rl.Cleanup()
	if len(rl.limiters) != 1 {
		t.Errorf("expected recently used limiter to survive cleanup, got %d", len(rl.limiters))
	}
}

func TestRateLimiter_IgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		t.Fatalf("set trusted proxies: %v", err)
	}
	r.Use(ErrorHandler(), rl.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	var ok, limited int
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
		req.RemoteAddr = "203.0.113.7:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		switch rec.Code {
		case http.StatusNoContent:
			ok++
		case http.StatusTooManyRequests:
			limited++
		}
	}

	if ok != 2 || limited != 48 {
		t.Errorf("expected 2 allowed and 48 limited, got ok=%d limited=%d", ok, limited)
	}
	if len(rl.limiters) != 1 {
		t.Errorf("expected a single limiter for the peer address, got %d", len(rl.limiters))
	}
	if _, found := rl.limiters["203.0.113.7"]; !found {
		t.Error("expected limiter keyed on the remote address")
	}
}

func multipartRequest(t *testing.T, name string, size int) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(UploadField, name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(bytes.Repeat([]byte("x"), size)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadLimits(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		size       int
		wantStatus int
	}{
		{"accepted", "deed.pdf", 10, http.StatusOK},
		{"too_large", "deed.pdf", 101, http.StatusRequestEntityTooLarge},
		{"bad_extension", "deed.exe", 10, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.POST("/upload", UploadLimits(100), func(c *gin.Context) { c.Status(http.StatusOK) })

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, multipartRequest(t, tt.file, tt.size))

			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS("http://app.local"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", http.NoBody)
	req.Header.Set("Origin", "http://app.local")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "http://app.local" {
		t.Error("expected frontend origin to be allowed")
	}
	if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("expected credentials to be allowed")
	}
}
