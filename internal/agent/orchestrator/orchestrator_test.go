package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"hr-agent-system/internal/agent"
	"hr-agent-system/internal/model"
	"hr-agent-system/internal/router"
	"hr-agent-system/pkg/llmprovider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLogger struct {
	mu     sync.Mutex
	warns  int
	errors int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	m.warns++
	m.mu.Unlock()
}
func (m *mockLogger) Error(ctx context.Context, arg ...any) {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	m.errors++
	m.mu.Unlock()
}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockHandler struct {
	name  string
	text  string
	err   error
	calls []agent.Request
}

func (m *mockHandler) Name() string { return m.name }
func (m *mockHandler) Handle(ctx context.Context, req agent.Request) (string, error) {
	m.calls = append(m.calls, req)
	return m.text, m.err
}

type mockLLM struct {
	text string
	err  error
	reqs []*llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.reqs = append(m.reqs, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, ProviderName: "mock"}, nil
}
func (m *mockLLM) Name() string  { return "mock" }
func (m *mockLLM) Model() string { return "mock-model" }

type memHistory struct {
	turns map[string][]model.Turn
}

func newMemHistory() *memHistory {
	return &memHistory{turns: make(map[string][]model.Turn)}
}

func (h *memHistory) Append(ctx context.Context, userID string, turn model.Turn) error {
	h.turns[userID] = append(h.turns[userID], turn)
	return nil
}

func (h *memHistory) Recent(ctx context.Context, userID string, limit int) ([]model.Turn, error) {
	t := h.turns[userID]
	if len(t) > limit {
		t = t[len(t)-limit:]
	}
	return t, nil
}

type decisionRecord struct {
	category   string
	handler    string
	authorized bool
}

type mockRecorder struct {
	decisions []decisionRecord
	errTypes  []string
}

func (r *mockRecorder) RecordDecision(category, handler string, authorized bool) {
	r.decisions = append(r.decisions, decisionRecord{category, handler, authorized})
}

func (r *mockRecorder) RecordHandler(handler string, latency time.Duration, errorType string) {
	r.errTypes = append(r.errTypes, errorType)
}

var (
	hrScope       = model.Scope{UserID: "E001", Username: "Kalhar", Role: model.RoleHR, SessionID: "s-1"}
	employeeScope = model.Scope{UserID: "E003", Username: "Nimal", Role: model.RoleEmployee, SessionID: "s-2"}
	fixedNow      = time.Date(2025, 7, 15, 9, 30, 0, 0, time.UTC)
)

func newTestRegistry(t *testing.T, handlers ...agent.Handler) *agent.Registry {
	t.Helper()
	reg := agent.NewRegistry()
	for _, h := range handlers {
		require.NoError(t, reg.Register(h))
	}
	return reg
}

func TestProcess_AllowedInvokesHandler(t *testing.T) {
	reporting := &mockHandler{name: "reporting_agent", text: "Department report"}
	rec := &mockRecorder{}
	hist := newMemHistory()
	o := New(&mockLogger{}, router.New(), newTestRegistry(t, reporting), Config{},
		WithRecorder(rec), WithHistory(hist), WithClock(func() time.Time { return fixedNow }))

	reply, err := o.Process(context.Background(), hrScope, "  show department stats ")
	require.NoError(t, err)

	assert.Equal(t, "reporting_agent", reply.Handler)
	assert.True(t, reply.Decision.Authorized)
	assert.Equal(t, model.CategoryDepartmentStats, reply.Decision.Category)
	assert.Equal(t, router.Explanation(router.HandlerReporting)+"\n\nDepartment report", reply.Text)
	assert.False(t, reply.Phrased)

	require.Len(t, reporting.calls, 1)
	got := reporting.calls[0]
	assert.Equal(t, "show department stats", got.Query)
	assert.Equal(t, "E001", got.CallerID)
	assert.Equal(t, "Kalhar", got.Caller)
	assert.Equal(t, model.RoleHR, got.Role)

	require.Len(t, rec.decisions, 1)
	assert.Equal(t, decisionRecord{"department_stats", "reporting_agent", true}, rec.decisions[0])
	assert.Equal(t, []string{""}, rec.errTypes)

	turns := hist.turns["E001"]
	require.Len(t, turns, 1)
	assert.Equal(t, reply.Text, turns[0].Response)
	assert.Equal(t, fixedNow, turns[0].Timestamp)
}

func TestProcess_DeniedNeverInvokesHandler(t *testing.T) {
	reporting := &mockHandler{name: "reporting_agent", text: "secret"}
	rec := &mockRecorder{}
	hist := newMemHistory()
	o := New(&mockLogger{}, router.New(), newTestRegistry(t, reporting), Config{},
		WithRecorder(rec), WithHistory(hist))

	reply, err := o.Process(context.Background(), employeeScope, "show department stats")
	require.NoError(t, err)

	assert.False(t, reply.Decision.Authorized)
	assert.Equal(t, router.DenialReasonHROnly, reply.Text)
	assert.Empty(t, reporting.calls)
	assert.Empty(t, rec.errTypes)
	require.Len(t, rec.decisions, 1)
	assert.False(t, rec.decisions[0].authorized)

	turns := hist.turns["E003"]
	require.Len(t, turns, 1)
	assert.False(t, turns[0].Authorized)
}

func TestProcess_HandlerErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    string
		errType string
	}{
		{
			name:    "ownership violation",
			err:     agent.ErrAccessDenied,
			want:    agent.AccessDeniedMessage,
			errType: "access_denied",
		},
		{
			name:    "wrapped ownership violation",
			err:     errors.Join(errors.New("leave"), agent.ErrAccessDenied),
			want:    agent.AccessDeniedMessage,
			errType: "access_denied",
		},
		{
			name:    "store failure",
			err:     errors.New("connection refused"),
			want:    GenericApology,
			errType: "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leave := &mockHandler{name: "leave_agent", err: tt.err}
			rec := &mockRecorder{}
			l := &mockLogger{}
			o := New(l, router.New(), newTestRegistry(t, leave), Config{}, WithRecorder(rec))

			reply, err := o.Process(context.Background(), employeeScope, "what is my balance for E004")
			require.NoError(t, err)

			assert.True(t, strings.HasSuffix(reply.Text, tt.want), reply.Text)
			assert.NotContains(t, reply.Text, "connection refused")
			assert.Equal(t, []string{tt.errType}, rec.errTypes)
		})
	}
}

func TestProcess_MissingHandler(t *testing.T) {
	l := &mockLogger{}
	o := New(l, router.New(), agent.NewRegistry(), Config{})

	reply, err := o.Process(context.Background(), hrScope, "hello there")
	require.NoError(t, err)

	assert.Equal(t, "employee_agent", reply.Handler)
	assert.True(t, strings.HasSuffix(reply.Text, GenericApology))
	assert.Equal(t, 1, l.errors)
}

func TestProcess_EmptyQuery(t *testing.T) {
	o := New(&mockLogger{}, router.New(), agent.NewRegistry(), Config{})

	_, err := o.Process(context.Background(), hrScope, "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestProcess_Phrasing(t *testing.T) {
	t.Run("rephrased with history context", func(t *testing.T) {
		leave := &mockHandler{name: "leave_agent", text: "Current Balance: **12 days**"}
		llm := &mockLLM{text: "  You have 12 days left.  "}
		hist := newMemHistory()
		hist.turns["E003"] = []model.Turn{{Query: "hi", Response: "Hello Nimal"}}
		o := New(&mockLogger{}, router.New(), newTestRegistry(t, leave),
			Config{LLMPhrasing: true, Timezone: "UTC"},
			WithLLM(llm), WithHistory(hist), WithClock(func() time.Time { return fixedNow }))

		reply, err := o.Process(context.Background(), employeeScope, "what is my balance")
		require.NoError(t, err)

		assert.True(t, reply.Phrased)
		assert.True(t, strings.HasSuffix(reply.Text, "\n\nYou have 12 days left."), reply.Text)

		require.Len(t, llm.reqs, 1)
		req := llm.reqs[0]
		assert.Contains(t, req.SystemInstruction, "Today: 2025-07-15 (Tuesday)")
		require.Len(t, req.Messages, 3)
		assert.Equal(t, llmprovider.RoleUser, req.Messages[0].Role)
		assert.Equal(t, "Hello Nimal", req.Messages[1].Content)
		assert.Contains(t, req.Messages[2].Content, "Current Balance: **12 days**")
	})

	t.Run("LLM failure keeps draft", func(t *testing.T) {
		leave := &mockHandler{name: "leave_agent", text: "Current Balance: **12 days**"}
		l := &mockLogger{}
		o := New(l, router.New(), newTestRegistry(t, leave),
			Config{LLMPhrasing: true}, WithLLM(&mockLLM{err: errors.New("timeout")}))

		reply, err := o.Process(context.Background(), employeeScope, "what is my balance")
		require.NoError(t, err)

		assert.False(t, reply.Phrased)
		assert.True(t, strings.HasSuffix(reply.Text, "Current Balance: **12 days**"))
		assert.Equal(t, 1, l.warns)
	})

	t.Run("empty LLM text keeps draft", func(t *testing.T) {
		leave := &mockHandler{name: "leave_agent", text: "draft"}
		o := New(&mockLogger{}, router.New(), newTestRegistry(t, leave),
			Config{LLMPhrasing: true}, WithLLM(&mockLLM{text: " "}))

		reply, err := o.Process(context.Background(), employeeScope, "what is my balance")
		require.NoError(t, err)
		assert.False(t, reply.Phrased)
		assert.True(t, strings.HasSuffix(reply.Text, "draft"))
	})

	t.Run("denials are never phrased", func(t *testing.T) {
		llm := &mockLLM{text: "rewritten"}
		o := New(&mockLogger{}, router.New(), agent.NewRegistry(),
			Config{LLMPhrasing: true}, WithLLM(llm))

		reply, err := o.Process(context.Background(), employeeScope, "analytics trend")
		require.NoError(t, err)
		assert.Equal(t, router.DenialReasonHROnly, reply.Text)
		assert.Empty(t, llm.reqs)
	})

	t.Run("ownership denial is never phrased", func(t *testing.T) {
		leave := &mockHandler{name: "leave_agent", err: agent.ErrAccessDenied}
		llm := &mockLLM{text: "rewritten"}
		o := New(&mockLogger{}, router.New(), newTestRegistry(t, leave),
			Config{LLMPhrasing: true}, WithLLM(llm))

		reply, err := o.Process(context.Background(), employeeScope, "what is my balance")
		require.NoError(t, err)
		assert.False(t, reply.Phrased)
		assert.Equal(t, router.Explanation(router.HandlerLeave)+"\n\n"+agent.AccessDeniedMessage, reply.Text)
		assert.Empty(t, llm.reqs)
	})

	t.Run("disabled without provider", func(t *testing.T) {
		o := New(&mockLogger{}, router.New(), agent.NewRegistry(), Config{LLMPhrasing: true})
		assert.False(t, o.Phrasing())
	})
}

func TestHandlers(t *testing.T) {
	o := New(&mockLogger{}, router.New(),
		newTestRegistry(t, &mockHandler{name: "leave_agent"}, &mockHandler{name: "analysis_agent"}), Config{})
	assert.Equal(t, []string{"analysis_agent", "leave_agent"}, o.Handlers())
}
