package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	goredis "github.com/redis/go-redis/v9"

	"hr-agent-system/config"
	_ "hr-agent-system/docs" // Swagger docs
	"hr-agent-system/internal/agent"
	"hr-agent-system/internal/agent/handlers"
	"hr-agent-system/internal/agent/orchestrator"
	"hr-agent-system/internal/auth"
	authUC "hr-agent-system/internal/auth/usecase"
	chatRepo "hr-agent-system/internal/chat/repository"
	chatMemory "hr-agent-system/internal/chat/repository/memory"
	chatRedis "hr-agent-system/internal/chat/repository/redis"
	chatUC "hr-agent-system/internal/chat/usecase"
	employeeRepo "hr-agent-system/internal/employee/repository/postgre"
	employeeUC "hr-agent-system/internal/employee/usecase"
	"hr-agent-system/internal/httpserver"
	"hr-agent-system/internal/middleware"
	"hr-agent-system/internal/router"
	"hr-agent-system/pkg/database"
	"hr-agent-system/pkg/gcalendar"
	"hr-agent-system/pkg/llmprovider"
	"hr-agent-system/pkg/log"
	"hr-agent-system/pkg/metrics"
	"hr-agent-system/pkg/redis"
	"hr-agent-system/pkg/scope"
)

// @title       HR Assistant API
// @description Multi-agent HR assistant: routed chat, leave management, employee directory and reporting.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server exited with error: ", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting HR Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := database.Connect(ctx, database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()
	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	logger.Infof(ctx, "Database ready (%s)", cfg.Database.Driver)

	// 4. Conversation history: Redis when configured, in-process otherwise
	historyOpt := chatRepo.Options{MaxTurns: cfg.Redis.MaxHistory, TTL: cfg.Redis.HistoryTTL}
	history := chatMemory.New(historyOpt, cfg.Session.MaxSessions)
	var redisClient goredis.UniversalClient
	redisCfg := redis.Config{
		URL:      cfg.Redis.URL,
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			logger.Warnf(ctx, "Redis not available, keeping history in memory: %v", err)
		} else {
			defer client.Close()
			redisClient = client
			history = chatRedis.New(client, historyOpt, logger)
			logger.Info(ctx, "Conversation history stored in Redis")
		}
	}

	// 5. Metrics
	var exporter *metrics.Exporter
	if cfg.Metrics.Enabled {
		exporter = metrics.New(metrics.DefaultConfig())
	}

	// 6. Tokens
	jwtManager, err := scope.New(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		return fmt.Errorf("jwt manager: %w", err)
	}

	// 7. Employee records
	employees := employeeUC.New(employeeRepo.New(db, logger), logger)

	// 8. Sessions
	var sessionRecorder auth.SessionRecorder
	if exporter != nil {
		sessionRecorder = exporter
	}
	authUseCase := authUC.New(employees, jwtManager, sessionRecorder, logger, authUC.Config{
		SessionTTL:  cfg.Session.TTL,
		MaxSessions: cfg.Session.MaxSessions,
	})

	// 9. Google Calendar (optional)
	var calendar handlers.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 10. Specialist agents
	loc := loadLocation(ctx, logger, cfg.Agent.Timezone)
	registry := agent.NewRegistry()
	if err := handlers.RegisterAll(registry, logger, handlers.Options{
		Directory:  employees,
		Calendar:   calendar,
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Location:   loc,
	}); err != nil {
		return fmt.Errorf("register handlers: %w", err)
	}

	// 11. Supervisor
	opts := []orchestrator.Option{orchestrator.WithHistory(history)}
	if exporter != nil {
		opts = append(opts, orchestrator.WithRecorder(exporter))
	}
	llmName := "disabled"
	if cfg.Agent.LLMPhrasing {
		providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
		if err != nil {
			logger.Warnf(ctx, "LLM phrasing disabled: %v", err)
		} else {
			manager := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(&cfg.LLM), logger)
			if exporter != nil {
				manager.WithRecorder(exporter)
			}
			opts = append(opts, orchestrator.WithLLM(manager))
			llmName = manager.Name()
			logger.Infof(ctx, "LLM phrasing enabled via %v", manager.Providers())
		}
	}
	supervisor := orchestrator.New(logger, router.New(), registry, orchestrator.Config{
		LLMPhrasing:     cfg.Agent.LLMPhrasing,
		MaxHistoryTurns: cfg.Agent.MaxHistoryTurns,
		Timezone:        cfg.Agent.Timezone,
	}, opts...)

	// 12. Chat
	chatUseCase := chatUC.New(supervisor, history, authUseCase, logger)

	// 13. HTTP Server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Redis:       redisClient,
		JWTManager:  jwtManager,
		Metrics:     exporter,
		MetricsPath: cfg.Metrics.Path,
		RateLimit: middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			MaxClients:     cfg.Session.MaxSessions,
			ClientTTL:      time.Hour,
		},
		EmployeeUC: employees,
		AuthUC:     authUseCase,
		ChatUC:     chatUseCase,
		Supervisor: supervisor,
		LLMName:    llmName,
	})
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	// 14. Run
	return srv.Run(ctx)
}

func loadLocation(ctx context.Context, logger log.Logger, name string) *time.Location {
	if name == "" {
		name = orchestrator.DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", name, err)
		return time.UTC
	}
	return loc
}
