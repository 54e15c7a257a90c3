package orchestrator

import (
	"time"

	"hr-agent-system/internal/agent"
	"hr-agent-system/internal/router"
	"hr-agent-system/pkg/llmprovider"
	pkgLog "hr-agent-system/pkg/log"
)

type Orchestrator struct {
	router   router.Router
	registry *agent.Registry
	l        pkgLog.Logger
	cfg      Config
	loc      *time.Location

	llm      llmprovider.Provider
	history  HistoryStore
	recorder Recorder
	now      func() time.Time
}

// Option customises an Orchestrator.
type Option func(*Orchestrator)

// WithLLM enables rephrasing through p when Config.LLMPhrasing is set.
func WithLLM(p llmprovider.Provider) Option {
	return func(o *Orchestrator) { o.llm = p }
}

func WithHistory(h HistoryStore) Option {
	return func(o *Orchestrator) { o.history = h }
}

func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) { o.recorder = r }
}

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

func New(l pkgLog.Logger, r router.Router, registry *agent.Registry, cfg Config, opts ...Option) *Orchestrator {
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.MaxHistoryTurns <= 0 {
		cfg.MaxHistoryTurns = DefaultMaxHistoryTurns
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	o := &Orchestrator{
		router:   r,
		registry: registry,
		l:        l,
		cfg:      cfg,
		loc:      loc,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Handlers lists the registered specialist names.
func (o *Orchestrator) Handlers() []string {
	return o.registry.Names()
}

// Phrasing reports whether replies are passed through the LLM.
func (o *Orchestrator) Phrasing() bool {
	return o.cfg.LLMPhrasing && o.llm != nil
}
