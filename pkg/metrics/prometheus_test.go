package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExporter() *Exporter {
	cfg := DefaultConfig()
	cfg.WithRuntime = false
	return New(cfg)
}

func TestExporter_RecordDecision(t *testing.T) {
	e := newTestExporter()

	e.RecordDecision("leave_balance", "leave_agent", true)
	e.RecordDecision("leave_balance", "leave_agent", true)
	e.RecordDecision("analytics", "analysis_agent", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(e.routingDecisions.WithLabelValues("leave_balance", "leave_agent", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.routingDecisions.WithLabelValues("analytics", "analysis_agent", "false")))
}

func TestExporter_RecordHandler(t *testing.T) {
	e := newTestExporter()

	e.RecordHandler("leave_agent", 10*time.Millisecond, "")
	e.RecordHandler("leave_agent", 10*time.Millisecond, "access_denied")

	assert.Equal(t, 1.0, testutil.ToFloat64(e.handlerErrors.WithLabelValues("leave_agent", "access_denied")))
	assert.Equal(t, 1, testutil.CollectAndCount(e.handlerLatency))
}

func TestExporter_Handler(t *testing.T) {
	e := newTestExporter()
	e.RecordHTTP(http.MethodGet, "/health", http.StatusOK, time.Millisecond)
	e.SetActiveSessions(3)

	rec := httptest.NewRecorder()
	e.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `hr_agent_http_requests_total{method="GET",route="/health",status="200"} 1`))
	assert.True(t, strings.Contains(body, "hr_agent_auth_active_sessions 3"))
}
