package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"hr-agent-system/internal/auth"
	"hr-agent-system/internal/chat"
	"hr-agent-system/internal/employee"
	"hr-agent-system/internal/middleware"
	"hr-agent-system/pkg/log"
	"hr-agent-system/pkg/metrics"
	"hr-agent-system/pkg/scope"
)

// Supervisor is what the status endpoint needs from the agent layer.
type Supervisor interface {
	Handlers() []string
	Phrasing() bool
}

// Pinger is satisfied by *database.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	startedAt   time.Time

	// Infrastructure
	db          Pinger
	redis       goredis.UniversalClient
	jwtManager  scope.Manager
	metrics     *metrics.Exporter
	metricsPath string
	rateLimit   middleware.Config

	// Domains
	employeeUC employee.UseCase
	authUC     auth.UseCase
	chatUC     chat.UseCase
	supervisor Supervisor
	llmName    string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Infrastructure. Redis and Metrics are optional.
	DB          Pinger
	Redis       goredis.UniversalClient
	JWTManager  scope.Manager
	Metrics     *metrics.Exporter
	MetricsPath string
	RateLimit   middleware.Config

	// Domains
	EmployeeUC employee.UseCase
	AuthUC     auth.UseCase
	ChatUC     chat.UseCase
	Supervisor Supervisor
	LLMName    string
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		startedAt:   time.Now(),
		db:          cfg.DB,
		redis:       cfg.Redis,
		jwtManager:  cfg.JWTManager,
		metrics:     cfg.Metrics,
		metricsPath: cfg.MetricsPath,
		rateLimit:   cfg.RateLimit,
		employeeUC:  cfg.EmployeeUC,
		authUC:      cfg.AuthUC,
		chatUC:      cfg.ChatUC,
		supervisor:  cfg.Supervisor,
		llmName:     cfg.LLMName,
	}
	if srv.metricsPath == "" {
		srv.metricsPath = "/metrics"
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.employeeUC == nil || srv.authUC == nil || srv.chatUC == nil {
		return errors.New("employee, auth and chat use cases are required")
	}
	if srv.supervisor == nil {
		return errors.New("supervisor is required")
	}
	return nil
}
