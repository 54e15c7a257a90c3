package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-agent-system/internal/chat"
	"hr-agent-system/internal/model"
	"hr-agent-system/pkg/log"
	"hr-agent-system/pkg/response"
	"hr-agent-system/pkg/scope"
)

type mockUseCase struct {
	sendOut   chat.SendOutput
	sendErr   error
	lastInput chat.SendInput
	limit     int
	turns     []model.Turn
	cleared   bool
	reset     bool
	err       error
}

func (m *mockUseCase) Send(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.SendOutput, error) {
	m.lastInput = input
	return m.sendOut, m.sendErr
}
func (m *mockUseCase) History(ctx context.Context, sc model.Scope, limit int) ([]model.Turn, error) {
	m.limit = limit
	return m.turns, m.err
}
func (m *mockUseCase) ClearHistory(ctx context.Context, sc model.Scope) error {
	m.cleared = true
	return m.err
}
func (m *mockUseCase) ResetSession(ctx context.Context, sc model.Scope) error {
	m.reset = true
	return m.err
}

var testScope = model.Scope{UserID: "E003", Username: "Nimal", Role: model.RoleEmployee, SessionID: "sess-1"}

func newTestContext(method, target, body string, withScope bool) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if withScope {
		req = req.WithContext(scope.SetScopeToContext(req.Context(), testScope))
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

func TestSend(t *testing.T) {
	uc := &mockUseCase{sendOut: chat.SendOutput{
		Response:          "Current Balance: **12 days**",
		Category:          model.CategoryLeaveBalance,
		Handler:           "leave_agent",
		Authorized:        true,
		SessionID:         "sess-1",
		ConversationCount: 4,
		Timestamp:         time.Date(2025, 7, 15, 9, 30, 0, 0, time.UTC),
	}}
	h := New(log.NewNop(), uc)

	c, w := newTestContext(http.MethodPost, "/api/chat", `{"message":"my balance"}`, true)
	h.Send(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "my balance", uc.lastInput.Message)

	data, ok := decode(t, w).Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "leave_balance", data["category"])
	assert.Equal(t, "leave_agent", data["handler"])
	assert.Equal(t, true, data["authorized"])
	assert.Equal(t, float64(4), data["conversation_count"])
	assert.Equal(t, "sess-1", data["session_id"])
}

func TestSend_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		withScope bool
		ucErr     error
		wantCode  int
		wantMsg   string
	}{
		{
			name:      "empty message",
			body:      `{"message":""}`,
			withScope: true,
			ucErr:     chat.ErrEmptyMessage,
			wantCode:  http.StatusBadRequest,
			wantMsg:   "Message cannot be empty",
		},
		{
			name:      "malformed body",
			body:      `{"message":`,
			withScope: true,
			wantCode:  http.StatusBadRequest,
			wantMsg:   "Invalid request body",
		},
		{
			name:     "no scope",
			body:     `{"message":"hi"}`,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Unauthorized",
		},
		{
			name:      "unexpected failure",
			body:      `{"message":"hi"}`,
			withScope: true,
			ucErr:     errors.New("redis down"),
			wantCode:  http.StatusInternalServerError,
			wantMsg:   response.DefaultErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(log.NewNop(), &mockUseCase{sendErr: tt.ucErr})
			c, w := newTestContext(http.MethodPost, "/api/chat", tt.body, tt.withScope)
			h.Send(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantMsg, decode(t, w).Message)
		})
	}
}

func TestHistory(t *testing.T) {
	uc := &mockUseCase{turns: []model.Turn{
		{Query: "hi", Response: "Hello", Category: model.CategoryGeneralQuery, Handler: "employee_agent", Authorized: true},
	}}
	h := New(log.NewNop(), uc)

	c, w := newTestContext(http.MethodGet, "/api/chat/history?limit=5", "", true)
	h.History(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, uc.limit)
	data, ok := decode(t, w).Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["count"])
}

func TestClearAndReset(t *testing.T) {
	uc := &mockUseCase{}
	h := New(log.NewNop(), uc)

	c, w := newTestContext(http.MethodDelete, "/api/chat/history", "", true)
	h.ClearHistory(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, uc.cleared)

	c, w = newTestContext(http.MethodPost, "/api/user/session/reset", "", true)
	h.ResetSession(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, uc.reset)
	data, ok := decode(t, w).Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sess-1", data["session_id"])
}
