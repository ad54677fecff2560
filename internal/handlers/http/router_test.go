package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/services"
	"skateplan/internal/infrastructure/gateway"
	"skateplan/internal/infrastructure/monitoring"
	"skateplan/internal/infrastructure/repositories/memory"
	"skateplan/pkg/cache"
	"skateplan/pkg/config"
	"skateplan/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coachToken = "coachtoken123"

// fakeBackend answers the handful of backend endpoints the capability API
// calls.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Token "+coachToken {
				w.WriteHeader(http.StatusUnauthorized)
				io.WriteString(w, `{"detail":"Invalid token."}`)
				return
			}
			next(w, r)
		}
	}
	mux.HandleFunc("/api/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret" {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"error":"Invalid credentials"}`)
			return
		}
		io.WriteString(w, `{"token":"`+coachToken+`","user":{"id":1,"email":"coach@example.com","role":"COACH","skater_id":null}}`)
	})
	mux.HandleFunc("/api/auth/profile/", authed(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":1,"email":"coach@example.com","full_name":"Ann Coach","role":"COACH","skater_id":null,"is_superuser":false}`)
	}))
	mux.HandleFunc("/api/teams/21/", authed(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":21,"team_name":"Kim / Park","discipline":"PAIRS","access_level":"COLLABORATOR"}`)
	}))
	mux.HandleFunc("/api/skaters/5/", authed(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":5,"full_name":"Mia Chen","access_level":null}`)
	}))
	mux.HandleFunc("/api/skaters/404/", authed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"detail":"Not found."}`)
	}))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type testAPI struct {
	router  *gin.Engine
	health  *monitoring.HealthChecker
	backend *httptest.Server
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := fakeBackend(t)
	reg := prometheus.NewRegistry()
	metrics := monitoring.NewPrometheusCollector(reg)
	gw := gateway.NewClient(backend.URL+"/api", gateway.WithMetrics(metrics))

	store := memory.NewDiscardTokenStore()
	auth := services.NewAuthService(gw, store, nil)
	access := services.NewAccessService(services.NewRosterService(gw), metrics)

	health := monitoring.NewHealthChecker()
	health.AddTokenStoreCheck(store, time.Second)

	profiles := cache.New[*domain.User](time.Minute)
	t.Cleanup(profiles.Stop)

	router := NewRouter(config.DefaultConfig(), RouterDeps{
		Auth:     auth,
		Access:   access,
		Health:   health,
		Profiles: profiles,
		Metrics:  metrics,
		Gatherer: reg,
		Logger:   logger.NewContextLogger(nil),
	})
	return &testAPI{router: router, health: health, backend: backend}
}

func (a *testAPI) do(method, path, body, token string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealthAndReady(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])

	w = api.do(http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	api.health.AddCheck("always_down", func(context.Context) (bool, error) {
		return false, errors.New("down")
	}, time.Second)
	w = api.do(http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	checks := decode(t, w)["checks"].(map[string]interface{})
	assert.Equal(t, "down", checks["always_down"])
	assert.Equal(t, "healthy", checks["token_store"])
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/v1/auth/login", `{"email":"coach@example.com","password":"secret"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, coachToken, decode(t, w)["token"])

	w = api.do(http.MethodPost, "/api/v1/auth/login", `{"email":"coach@example.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["message"])

	w = api.do(http.MethodPost, "/api/v1/auth/login", `{"email":"coach@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, w)["error"])
}

func TestMe(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/me", "", coachToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "coach@example.com", decode(t, w)["email"])

	w = api.do(http.MethodGet, "/api/v1/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodGet, "/api/v1/me", "", "expired")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token.", decode(t, w)["message"])
}

func TestEntityAccess(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/teams/21/access", "", coachToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, float64(21), body["entity_id"])
	assert.Equal(t, "teams", body["kind"])
	perms := body["permissions"].(map[string]interface{})
	assert.Equal(t, "COLLABORATOR", perms["role"])
	assert.Equal(t, true, perms["canEditStructure"])
	assert.Equal(t, false, perms["canDelete"])

	// No explicit level: the global coach role applies.
	w = api.do(http.MethodGet, "/api/v1/skaters/5/access", "", coachToken)
	require.Equal(t, http.StatusOK, w.Code)
	perms = decode(t, w)["permissions"].(map[string]interface{})
	assert.Equal(t, "COACH", perms["role"])
	assert.Equal(t, true, perms["canManageStaff"])
}

func TestEntityAccess_Errors(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/skaters/404/access", "", coachToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, "NOT_FOUND", body["error"])
	assert.Equal(t, "Not found.", body["message"])

	w = api.do(http.MethodGet, "/api/v1/skaters/abc/access", "", coachToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/api/v1/skaters/0/access", "", coachToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	api.backend.Close()
	w = api.do(http.MethodGet, "/api/v1/teams/21/access", "", coachToken)
	assert.Equal(t, http.StatusBadGateway, w.Code, "profile is cached, the entity fetch fails")
}

func TestDerive(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/v1/access/derive", `{}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "NONE", body["role"])
	assert.Equal(t, true, body["readOnlyStructure"])
	assert.Equal(t, false, body["canViewLogistics"])

	w = api.do(http.MethodPost, "/api/v1/access/derive",
		`{"user":{"role":"SKATER","skater_id":9},"entity":{"id":9,"access_level":null}}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "SKATER_OWNER", body["role"])
	assert.Equal(t, true, body["isSelf"])

	w = api.do(http.MethodPost, "/api/v1/access/derive",
		`{"user":{"role":"GUARDIAN"},"entity":{"id":9}}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode(t, w)["role"])

	w = api.do(http.MethodPost, "/api/v1/access/derive", `not json`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.do(http.MethodGet, "/api/v1/teams/21/access", "", coachToken)

	w := api.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	text := w.Body.String()
	assert.Contains(t, text, `skateplan_access_lookups_total{kind="teams",role="COLLABORATOR"} 1`)
	assert.Contains(t, text, `skateplan_api_requests_total{method="GET",status="200"} 2`)
	assert.Contains(t, text, `skateplan_http_requests_total{method="GET",route="/api/v1/teams/:id/access",status="200"} 1`)
	assert.Contains(t, text, `skateplan_profile_cache_total{result="miss"} 1`)
}
