package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"teamboard/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockJWTManager struct {
	verifyFunc func(token string) (scope.Scope, error)
}

func (m *mockJWTManager) Verify(token string) (scope.Scope, error) {
	return m.verifyFunc(token)
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(mw Middleware) (*gin.Engine, *scope.Scope) {
		var got scope.Scope
		r := gin.New()
		r.GET("/protected", mw.Auth(), func(c *gin.Context) {
			if sc, ok := scope.FromContext(c.Request.Context()); ok {
				got = sc
			}
			c.Status(http.StatusOK)
		})
		return r, &got
	}

	t.Run("Missing Header Rejected", func(t *testing.T) {
		mw := New(&mockLogger{}, &mockJWTManager{
			verifyFunc: func(token string) (scope.Scope, error) {
				t.Errorf("verify must not run without a header")
				return scope.Scope{}, nil
			},
		})
		r, _ := newRouter(mw)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Non Bearer Header Rejected", func(t *testing.T) {
		mw := New(&mockLogger{}, &mockJWTManager{
			verifyFunc: func(token string) (scope.Scope, error) {
				t.Errorf("verify must not run for a non-bearer header")
				return scope.Scope{}, nil
			},
		})
		r, _ := newRouter(mw)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Invalid Token Rejected", func(t *testing.T) {
		mw := New(&mockLogger{}, &mockJWTManager{
			verifyFunc: func(token string) (scope.Scope, error) {
				return scope.Scope{}, scope.ErrInvalidToken
			},
		})
		r, _ := newRouter(mw)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Scope Attached To Context", func(t *testing.T) {
		mw := New(&mockLogger{}, &mockJWTManager{
			verifyFunc: func(token string) (scope.Scope, error) {
				if token != "good-token" {
					t.Errorf("expected bearer prefix stripped, got %q", token)
				}
				return scope.Scope{UserID: "u1", Email: "u1@example.com"}, nil
			},
		})
		r, got := newRouter(mw)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if got.UserID != "u1" || got.Email != "u1@example.com" {
			t.Errorf("scope not propagated, got %+v", got)
		}
	})
}
