package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-agent-system/internal/auth"
	"hr-agent-system/internal/model"
	"hr-agent-system/pkg/log"
	"hr-agent-system/pkg/response"
	"hr-agent-system/pkg/scope"
)

type mockUseCase struct {
	loginOut auth.LoginOutput
	loginErr error
	session  auth.Session
	err      error
	loggedIn auth.LoginInput
}

func (m *mockUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	m.loggedIn = input
	return m.loginOut, m.loginErr
}
func (m *mockUseCase) Logout(ctx context.Context, sc model.Scope) error { return m.err }
func (m *mockUseCase) Session(ctx context.Context, sessionID string) (auth.Session, error) {
	return m.session, m.err
}
func (m *mockUseCase) ActiveSessions() int                                  { return 1 }
func (m *mockUseCase) Touch(ctx context.Context, sessionID string) bool      { return true }
func (m *mockUseCase) RecordTurn(ctx context.Context, sessionID string) int  { return 1 }
func (m *mockUseCase) ResetTurns(ctx context.Context, sessionID string)      {}

func newTestContext(method, body string, sc *model.Scope) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sc != nil {
		req = req.WithContext(scope.SetScopeToContext(req.Context(), *sc))
	}
	c.Request = req
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestLogin(t *testing.T) {
	uc := &mockUseCase{loginOut: auth.LoginOutput{
		Token:     "tok",
		ExpiresAt: time.Date(2025, 7, 16, 9, 0, 0, 0, time.UTC),
		Session:   auth.Session{ID: "sess-1", UserID: "E001", Name: "Kalhar", Role: model.RoleHR},
	}}
	h := New(log.NewNop(), uc)

	c, w := newTestContext(http.MethodPost, `{"employee_id":"E001","password":"pw123"}`, nil)
	h.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "E001", uc.loggedIn.EmployeeID)

	data, ok := decode(t, w).Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tok", data["token"])
	assert.Equal(t, "sess-1", data["session_id"])
	user, ok := data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "HR", user["role"])
}

func TestLogin_Failures(t *testing.T) {
	for _, body := range []string{`{"employee_id":"E001","password":"nope"}`, `not json`} {
		h := New(log.NewNop(), &mockUseCase{loginErr: auth.ErrInvalidCredentials})
		c, w := newTestContext(http.MethodPost, body, nil)
		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decode(t, w).Message)
	}
}

func TestMeAndLogout(t *testing.T) {
	sc := &model.Scope{UserID: "E003", Role: model.RoleEmployee, SessionID: "sess-2"}
	uc := &mockUseCase{session: auth.Session{ID: "sess-2", UserID: "E003", Role: model.RoleEmployee, ConversationCount: 3}}
	h := New(log.NewNop(), uc)

	c, w := newTestContext(http.MethodGet, "", sc)
	h.Me(c)
	require.Equal(t, http.StatusOK, w.Code)
	data, ok := decode(t, w).Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), data["conversation_count"])

	c, w = newTestContext(http.MethodPost, "", sc)
	h.Logout(c)
	assert.Equal(t, http.StatusOK, w.Code)

	uc.err = auth.ErrSessionNotFound
	c, w = newTestContext(http.MethodPost, "", sc)
	h.Logout(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	c, w = newTestContext(http.MethodGet, "", nil)
	h.Me(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
