package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-agent-system/internal/model"
	"hr-agent-system/pkg/log"
	"hr-agent-system/pkg/scope"
)

type stubSessions struct{ live map[string]bool }

func (s stubSessions) Touch(ctx context.Context, id string) bool { return s.live[id] }

type recordedHTTP struct {
	method, route string
	status        int
}

type stubRecorder struct{ calls []recordedHTTP }

func (r *stubRecorder) RecordHTTP(method, route string, status int, latency time.Duration) {
	r.calls = append(r.calls, recordedHTTP{method, route, status})
}

func newTestEngine(t *testing.T, mw Middleware) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.Metrics())
	api := r.Group("/api", mw.RateLimit())
	api.GET("/me", mw.Auth(), func(c *gin.Context) {
		sc, _ := scope.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.UserID)
	})
	api.GET("/hr", mw.Auth(), mw.HROnly(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func issue(t *testing.T, m scope.Manager, sc model.Scope) string {
	t.Helper()
	token, _, err := m.Issue(sc)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(r *gin.Engine, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuth(t *testing.T) {
	jwtManager, err := scope.New("secret", time.Hour)
	require.NoError(t, err)
	sessions := stubSessions{live: map[string]bool{"live": true}}
	r := newTestEngine(t, New(log.NewNop(), jwtManager, sessions, nil, Config{}))

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(r, "/api/me", "").Code)
	})

	t.Run("bad token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(r, "/api/me", "Bearer nope").Code)
	})

	t.Run("valid token", func(t *testing.T) {
		rec := do(r, "/api/me", issue(t, jwtManager, model.Scope{UserID: "E003", Role: model.RoleEmployee, SessionID: "live"}))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "E003", rec.Body.String())
	})

	t.Run("revoked session", func(t *testing.T) {
		rec := do(r, "/api/me", issue(t, jwtManager, model.Scope{UserID: "E003", Role: model.RoleEmployee, SessionID: "gone"}))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHROnly(t *testing.T) {
	jwtManager, err := scope.New("secret", time.Hour)
	require.NoError(t, err)
	r := newTestEngine(t, New(log.NewNop(), jwtManager, nil, nil, Config{}))

	tests := []struct {
		role model.Role
		want int
	}{
		{model.RoleHR, http.StatusOK},
		{model.RoleEmployee, http.StatusForbidden},
		{model.RoleUnknown, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			rec := do(r, "/api/hr", issue(t, jwtManager, model.Scope{UserID: "E001", Role: tt.role}))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRateLimit(t *testing.T) {
	jwtManager, err := scope.New("secret", time.Hour)
	require.NoError(t, err)
	// 10/min gives a burst of one request.
	r := newTestEngine(t, New(log.NewNop(), jwtManager, nil, nil, Config{RequestsPerMin: 10}))

	assert.Equal(t, http.StatusUnauthorized, do(r, "/api/me", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, "/api/me", "").Code)
}

func TestMetrics(t *testing.T) {
	jwtManager, err := scope.New("secret", time.Hour)
	require.NoError(t, err)
	rec := &stubRecorder{}
	r := newTestEngine(t, New(log.NewNop(), jwtManager, nil, rec, Config{}))

	do(r, "/api/me", "")
	do(r, "/nowhere", "")

	require.Len(t, rec.calls, 2)
	assert.Equal(t, recordedHTTP{http.MethodGet, "/api/me", http.StatusUnauthorized}, rec.calls[0])
	assert.Equal(t, "unmatched", rec.calls[1].route)
	assert.Equal(t, http.StatusNotFound, rec.calls[1].status)
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1", extractIP(req))

	req.Header.Set("X-Real-IP", "10.0.0.2")
	assert.Equal(t, "10.0.0.2", extractIP(req))

	req.Header.Set("X-Forwarded-For", "10.0.0.3, 10.0.0.4")
	assert.Equal(t, "10.0.0.3", extractIP(req))
}
