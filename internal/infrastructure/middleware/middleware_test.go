package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skateplan/internal/core/domain"
	"skateplan/internal/infrastructure/gateway"
	"skateplan/pkg/cache"
	"skateplan/pkg/logger"
	"skateplan/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// profileAuth implements ports.AuthService; only Profile is used here.
type profileAuth struct {
	users map[string]*domain.User
	calls int
}

func (a *profileAuth) Profile(ctx context.Context, token string) (*domain.User, error) {
	a.calls++
	if u, ok := a.users[token]; ok {
		return u, nil
	}
	return nil, &gateway.RequestError{Kind: gateway.KindStatus, StatusCode: http.StatusUnauthorized, Message: "Invalid token."}
}

func (a *profileAuth) Login(context.Context, string, string) (*domain.Session, error) {
	return nil, errors.New("not used")
}
func (a *profileAuth) Register(context.Context, domain.RegisterRequest) (*domain.Session, error) {
	return nil, errors.New("not used")
}
func (a *profileAuth) Restore(context.Context) (*domain.Session, error) {
	return nil, errors.New("not used")
}
func (a *profileAuth) UpdateProfile(context.Context, string, domain.ProfileUpdate) (*domain.User, error) {
	return nil, errors.New("not used")
}
func (a *profileAuth) DeleteAccount(context.Context, string) error { return errors.New("not used") }
func (a *profileAuth) AcceptInvite(context.Context, string, domain.AcceptInviteRequest) (*domain.Session, error) {
	return nil, errors.New("not used")
}
func (a *profileAuth) Logout(context.Context) error { return nil }

type cacheCounter struct{ hits, misses int }

func (c *cacheCounter) RecordProfileCache(hit bool) {
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}

func authRouter(auth *profileAuth, profiles *cache.Cache[*domain.User], counter *cacheCounter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandlerMiddleware(logger.NewContextLogger(nil)))
	router.Use(AuthMiddleware(auth, profiles, counter))
	router.GET("/me", func(c *gin.Context) {
		user, ok := UserFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email, "token": TokenFrom(c)})
	})
	return router
}

func withToken(header string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return req
}

func TestAuthMiddleware(t *testing.T) {
	auth := &profileAuth{users: map[string]*domain.User{"abc123": {Email: "coach@example.com", Role: domain.RoleCoach}}}
	profiles := cache.New[*domain.User](time.Minute)
	defer profiles.Stop()
	counter := &cacheCounter{}
	router := authRouter(auth, profiles, counter)

	w := serve(router, withToken("Token abc123"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"coach@example.com","token":"abc123"}`, w.Body.String())

	w = serve(router, withToken("Token abc123"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, auth.calls, "second request is served from the profile cache")
	assert.Equal(t, 1, counter.hits)
	assert.Equal(t, 1, counter.misses)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	auth := &profileAuth{users: map[string]*domain.User{}}
	router := authRouter(auth, nil, nil)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"bearer scheme", "Bearer abc123", http.StatusUnauthorized},
		{"malformed token", "Token a/b", http.StatusUnauthorized},
		{"backend rejects", "Token unknown", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, withToken(tt.header))
			assert.Equal(t, tt.status, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "UNAUTHORIZED", body["error"])
		})
	}
	assert.Equal(t, 1, auth.calls, "only the well-formed token reaches the backend")
}

func errorRouter(err error) (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.WarnLevel)
	router := gin.New()
	router.Use(ErrorHandlerMiddleware(logger.NewContextLogger(zap.New(core))))
	router.GET("/fail", func(c *gin.Context) {
		c.Error(err)
	})
	return router, logs
}

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"backend 404", &gateway.RequestError{Kind: gateway.KindStatus, StatusCode: 404, Message: "Not found"}, 404, "NOT_FOUND", "Not found"},
		{"backend 409", &gateway.RequestError{Kind: gateway.KindStatus, StatusCode: 409, Message: "exists"}, 409, "CONFLICT", "exists"},
		{"transport", &gateway.RequestError{Kind: gateway.KindTransport, Message: "connection refused"}, 502, "BAD_GATEWAY", "connection refused"},
		{"decode", &gateway.RequestError{Kind: gateway.KindDecode, Message: "invalid JSON"}, 502, "BAD_GATEWAY", "invalid JSON"},
		{"bad kind", fmt.Errorf("parse: %w", domain.ErrInvalidEntity), 400, "INVALID_INPUT", ""},
		{"bad phase", fmt.Errorf("%w: phase ends early", domain.ErrInvalidDates), 400, "INVALID_INPUT", ""},
		{"read only", domain.ErrReadOnly, 403, "FORBIDDEN", domain.ErrReadOnly.Error()},
		{"plan missing", fmt.Errorf("%w: 99", domain.ErrPlanNotFound), 404, "NOT_FOUND", "weekly plan not found"},
		{"plain", errors.New("boom"), 500, "INTERNAL_ERROR", "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, logs := errorRouter(tt.err)
			w := serve(router, httptest.NewRequest(http.MethodGet, "/fail", nil))
			assert.Equal(t, tt.status, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body["error"])
			if tt.message != "" {
				assert.Equal(t, tt.message, body["message"])
			}
			assert.Equal(t, 1, logs.FilterMessage("request failed").Len())
		})
	}
}

func TestErrorHandlerMiddleware_ValidationDetails(t *testing.T) {
	router, _ := errorRouter(validation.FieldErrors{"Email": "must be a valid email"})
	w := serve(router, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"INVALID_INPUT","message":"validation failed","details":{"Email":"must be a valid email"}}`, w.Body.String())
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.ErrorLevel)
	router := gin.New()
	router.Use(RecoveryMiddleware(logger.NewContextLogger(zap.New(core))))
	router.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"INTERNAL_ERROR","message":"Internal server error"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var seen string
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) {
		seen = logger.RequestIDFrom(c.Request.Context())
	})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	incoming := "0b0e3c52-8f0f-4a53-9f55-6d3c0c1d2f10"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	serve(router, req)
	assert.Equal(t, incoming, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	serve(router, req)
	assert.NotEqual(t, "<script>", seen)
}

type routeRecorder struct {
	routes []string
	status []int
}

func (r *routeRecorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	r.routes = append(r.routes, route)
	r.status = append(r.status, status)
}

func TestTracingMiddleware_RecordsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := &routeRecorder{}
	router := gin.New()
	router.Use(TracingMiddleware(rec))
	router.GET("/api/v1/skaters/:id/access", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/skaters/7/access", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, []string{"/api/v1/skaters/:id/access", "unmatched"}, rec.routes)
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNotFound}, rec.status)
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	router := gin.New()
	router.Use(RequestIDMiddleware(), LoggingMiddleware(logger.NewContextLogger(zap.New(core))))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/health", fields["path"])
	assert.NotEmpty(t, fields["request_id"])
}
