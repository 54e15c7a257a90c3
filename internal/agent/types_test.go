package agent_test

import (
	"context"
	"errors"
	"testing"

	"hr-agent-system/internal/agent"
)

type mockHandler struct {
	name string
}

func (m *mockHandler) Name() string { return m.name }
func (m *mockHandler) Handle(ctx context.Context, req agent.Request) (string, error) {
	return m.name + ": " + req.Query, nil
}

func TestRegistry(t *testing.T) {
	registry := agent.NewRegistry()

	if err := registry.Register(&mockHandler{name: "reporting_agent"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := registry.Register(&mockHandler{name: "leave_agent"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Get existing handler", func(t *testing.T) {
		got, ok := registry.Get("leave_agent")
		if !ok || got.Name() != "leave_agent" {
			t.Errorf("expected leave_agent to be found")
		}
	})

	t.Run("Get non-existing handler", func(t *testing.T) {
		if _, ok := registry.Get("missing"); ok {
			t.Errorf("expected 'missing' handler to not be found")
		}
	})

	t.Run("Names sorted", func(t *testing.T) {
		names := registry.Names()
		if len(names) != 2 || names[0] != "leave_agent" || names[1] != "reporting_agent" {
			t.Errorf("unexpected names: %v", names)
		}
	})

	t.Run("List follows Names", func(t *testing.T) {
		list := registry.List()
		if len(list) != 2 || list[0].Name() != "leave_agent" {
			t.Errorf("unexpected list order")
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		err := registry.Register(&mockHandler{name: "leave_agent"})
		if !errors.Is(err, agent.ErrDuplicateHandler) {
			t.Errorf("expected ErrDuplicateHandler, got %v", err)
		}
	})

	t.Run("unnamed", func(t *testing.T) {
		if err := registry.Register(&mockHandler{}); !errors.Is(err, agent.ErrInvalidHandler) {
			t.Errorf("expected ErrInvalidHandler, got %v", err)
		}
		if err := registry.Register(nil); !errors.Is(err, agent.ErrInvalidHandler) {
			t.Errorf("expected ErrInvalidHandler, got %v", err)
		}
	})
}

func TestRegistries_AreIndependent(t *testing.T) {
	a, b := agent.NewRegistry(), agent.NewRegistry()
	if err := a.Register(&mockHandler{name: "employee_agent"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Get("employee_agent"); ok {
		t.Error("registries must not share state")
	}
}
