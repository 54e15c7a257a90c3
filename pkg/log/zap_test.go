package log

import (
	"context"
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  ZapConfig
	}{
		{"development console", ZapConfig{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true}},
		{"production json", ZapConfig{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON}},
		{"invalid level falls back", ZapConfig{Level: "loud", Mode: ModeProduction, Encoding: EncodingJSON}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Init(tt.cfg)
			if l == nil {
				t.Fatal("expected logger, got nil")
			}
			ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
			l.Debugf(ctx, "debug %d", 1)
			l.Info(ctx, "info")
			l.Warnf(context.Background(), "warn %s", "x")
		})
	}
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Error(context.Background(), "ignored")
	l.Panicf(context.Background(), "ignored %d", 1)
}
