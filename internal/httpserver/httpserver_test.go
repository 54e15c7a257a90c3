package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-agent-system/internal/agent"
	"hr-agent-system/internal/agent/handlers"
	"hr-agent-system/internal/agent/orchestrator"
	authUC "hr-agent-system/internal/auth/usecase"
	chatRepo "hr-agent-system/internal/chat/repository"
	chatMemory "hr-agent-system/internal/chat/repository/memory"
	chatUC "hr-agent-system/internal/chat/usecase"
	"hr-agent-system/internal/employee"
	employeeRepo "hr-agent-system/internal/employee/repository/postgre"
	employeeUC "hr-agent-system/internal/employee/usecase"
	"hr-agent-system/internal/httpserver"
	"hr-agent-system/internal/model"
	"hr-agent-system/internal/router"
	"hr-agent-system/pkg/database"
	"hr-agent-system/pkg/log"
	"hr-agent-system/pkg/metrics"
	"hr-agent-system/pkg/response"
	"hr-agent-system/pkg/scope"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()
	l := log.NewNop()

	db, err := database.Connect(ctx, database.Config{Driver: database.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(ctx, db))

	employees := employeeUC.New(employeeRepo.New(db, l), l)
	for _, in := range []employee.CreateInput{
		{ID: "E001", Name: "Kalhar", Department: "HR", Role: model.RoleHR, Balance: 18, Password: "pw123"},
		{ID: "E003", Name: "Nimal Silva", Department: "IT", Role: model.RoleEmployee, Balance: 12, Password: "pw123",
			LeaveHistory: []string{"2025-01-10", "2025-03-14"}},
	} {
		_, err := employees.Create(ctx, in)
		require.NoError(t, err)
	}

	jwtManager, err := scope.New("test-secret", time.Hour)
	require.NoError(t, err)
	exporter := metrics.New(metrics.Config{})
	auth := authUC.New(employees, jwtManager, exporter, l, authUC.Config{})

	registry := agent.NewRegistry()
	require.NoError(t, handlers.RegisterAll(registry, l, handlers.Options{Directory: employees}))
	history := chatMemory.New(chatRepo.Options{}, 0)
	supervisor := orchestrator.New(l, router.New(), registry, orchestrator.Config{Timezone: "UTC"},
		orchestrator.WithHistory(history), orchestrator.WithRecorder(exporter))
	chat := chatUC.New(supervisor, history, auth, l)

	srv, err := httpserver.New(l, httpserver.Config{
		Logger:      l,
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		DB:          db,
		JWTManager:  jwtManager,
		Metrics:     exporter,
		EmployeeUC:  employees,
		AuthUC:      auth,
		ChatUC:      chat,
		Supervisor:  supervisor,
	})
	require.NoError(t, err)
	return srv.Handler()
}

func call(t *testing.T, h http.Handler, method, path, token string, body any) (int, response.Resp) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp response.Resp
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func login(t *testing.T, h http.Handler, id string) string {
	t.Helper()
	code, resp := call(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"employee_id": id, "password": "pw123",
	})
	require.Equal(t, http.StatusOK, code, resp.Message)
	data := resp.Data.(map[string]any)
	return data["token"].(string)
}

func dataOf(t *testing.T, resp response.Resp) map[string]any {
	t.Helper()
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "unexpected data %v", resp.Data)
	return data
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t)

	code, _ := call(t, h, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)

	code, resp := call(t, h, http.MethodGet, "/ready", "", nil)
	require.Equal(t, http.StatusOK, code)
	components := dataOf(t, resp)["components"].(map[string]any)
	assert.Equal(t, "up", components["database"])
	assert.Equal(t, "disabled", components["redis"])

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hr_agent_")
}

func TestLogin(t *testing.T) {
	h := newTestServer(t)

	code, resp := call(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"employee_id": "E003", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", resp.Message)

	assert.NotEmpty(t, login(t, h, "e003"))
}

func TestChatFlow_Employee(t *testing.T) {
	h := newTestServer(t)
	token := login(t, h, "E003")

	code, resp := call(t, h, http.MethodPost, "/api/chat", token, map[string]string{"message": "what is my balance"})
	require.Equal(t, http.StatusOK, code)
	data := dataOf(t, resp)
	assert.Equal(t, "leave_balance", data["category"])
	assert.Equal(t, "leave_agent", data["handler"])
	assert.Equal(t, true, data["authorized"])
	assert.Equal(t, float64(1), data["conversation_count"])
	assert.Contains(t, data["response"], "12 days")

	code, resp = call(t, h, http.MethodPost, "/api/chat", token, map[string]string{"message": "show department stats"})
	require.Equal(t, http.StatusOK, code)
	data = dataOf(t, resp)
	assert.Equal(t, false, data["authorized"])
	assert.Equal(t, router.DenialReasonHROnly, data["response"])

	code, resp = call(t, h, http.MethodPost, "/api/chat", token, map[string]string{"message": "balance for E001"})
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, dataOf(t, resp)["response"], agent.AccessDeniedMessage)

	code, resp = call(t, h, http.MethodPost, "/api/chat", token, map[string]string{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Message cannot be empty", resp.Message)

	code, resp = call(t, h, http.MethodGet, "/api/chat/history", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(3), dataOf(t, resp)["count"])

	code, resp = call(t, h, http.MethodGet, "/api/system/status", token, nil)
	require.Equal(t, http.StatusOK, code)
	data = dataOf(t, resp)
	assert.Len(t, data["handlers"], 4)
	session := data["session"].(map[string]any)
	assert.Equal(t, float64(3), session["conversation_count"])

	code, _ = call(t, h, http.MethodPost, "/api/user/session/reset", token, nil)
	require.Equal(t, http.StatusOK, code)
	code, resp = call(t, h, http.MethodGet, "/api/chat/history", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), dataOf(t, resp)["count"])

	code, _ = call(t, h, http.MethodGet, "/api/employees", token, nil)
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = call(t, h, http.MethodGet, "/api/employees/E003", token, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = call(t, h, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, h, http.MethodPost, "/api/chat", token, map[string]string{"message": "hi"})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestChatFlow_HR(t *testing.T) {
	h := newTestServer(t)
	token := login(t, h, "E001")

	code, resp := call(t, h, http.MethodPost, "/api/chat", token, map[string]string{"message": "show department stats"})
	require.Equal(t, http.StatusOK, code)
	data := dataOf(t, resp)
	assert.Equal(t, true, data["authorized"])
	assert.Equal(t, "reporting_agent", data["handler"])
	assert.True(t, strings.HasPrefix(data["response"].(string), router.Explanation(router.HandlerReporting)))

	code, resp = call(t, h, http.MethodGet, "/api/employees", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), dataOf(t, resp)["total"])
}

func TestNew_Validation(t *testing.T) {
	_, err := httpserver.New(log.NewNop(), httpserver.Config{Port: 8080, Mode: "test"})
	assert.Error(t, err)
}
