package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoute(t *testing.T) {
	tcs := map[string]struct {
		args       []string
		handler    string
		authorized bool
	}{
		"employee balance": {
			args:       []string{"route", "--role", "employee", "what", "is", "my", "balance"},
			handler:    "leave_agent",
			authorized: true,
		},
		"employee denied reporting": {
			args:       []string{"route", "--role", "employee", "show department stats"},
			handler:    "reporting_agent",
			authorized: false,
		},
		"hr reporting": {
			args:       []string{"route", "--role", "HR", "show department stats"},
			handler:    "reporting_agent",
			authorized: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			require.NoError(t, err)

			var got struct {
				Decision struct {
					TargetHandler string `json:"target_handler"`
					Authorized    bool   `json:"authorized"`
					DenialReason  string `json:"denial_reason"`
				} `json:"decision"`
				Explanation string `json:"explanation"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tc.handler, got.Decision.TargetHandler)
			assert.Equal(t, tc.authorized, got.Decision.Authorized)
			assert.Equal(t, !tc.authorized, got.Decision.DenialReason != "")
			assert.NotEmpty(t, got.Explanation)
		})
	}
}

func TestRoute_UnknownRole(t *testing.T) {
	_, err := execute(t, "route", "--role", "manager", "hello")
	assert.Error(t, err)
}

func TestSeedRoster(t *testing.T) {
	require.Len(t, seedEmployees, 25)

	hr := 0
	seen := map[string]bool{}
	for _, e := range seedEmployees {
		assert.False(t, seen[e.ID], "duplicate %s", e.ID)
		seen[e.ID] = true
		if e.Role.IsHR() {
			hr++
		}
		assert.GreaterOrEqual(t, e.Balance, 0)
	}
	assert.Equal(t, 2, hr)
}
