package main

import (
	"context"
	"log"
	"time"

	"github.com/tpeo/attendbot/config"
	"github.com/tpeo/attendbot/controllers"
	"github.com/tpeo/attendbot/jobs"
	"github.com/tpeo/attendbot/routes"
	"github.com/tpeo/attendbot/services"
	"github.com/tpeo/attendbot/services/logger"
	"github.com/tpeo/attendbot/sheetstore"
	"github.com/tpeo/attendbot/slack"
)

// schemaChecker adapts the store and expected schemas to the cron job.
type schemaChecker struct {
	store   sheetstore.Store
	schemas []sheetstore.Schema
}

func (s *schemaChecker) CheckSchemas(ctx context.Context) error {
	return sheetstore.ValidateAll(ctx, s.store, s.schemas)
}

func main() {
	config.LoadEnv()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	lg := logger.NewDefaultLogger(logger.InfoLevel)

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	ctx := context.Background()
	store, err := config.ConnectSheets(ctx, cfg, lg)
	if err != nil {
		log.Fatalf("Failed to connect to sheets: %v", err)
	}

	rdb, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		// claims are a best-effort mitigation; run without them
		lg.Error("redis unavailable, check-in claims disabled: %v", err)
		rdb = nil
	}

	clock, err := services.NewClock(cfg.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	checker := &schemaChecker{store: store, schemas: config.Schemas(cfg)}
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if err := checker.CheckSchemas(startupCtx); err != nil {
		cancel()
		log.Fatalf("Sheet schema validation failed: %v", err)
	}
	cancel()

	resolver := services.NewResolver(services.ResolverOptions{
		Store:       store,
		UsersTable:  cfg.UsersSheet,
		EventsTable: cfg.EventsSheet,
		Logger:      lg,
	})
	recorder := services.NewRecorder(services.RecorderOptions{
		Store:    store,
		Redis:    rdb,
		Semester: cfg.SemesterSheet,
		Logger:   lg,
	})
	attendanceService := services.NewAttendanceService(services.AttendanceServiceOptions{
		Resolver: resolver,
		Recorder: recorder,
		Clock:    clock,
		Logger:   lg,
		Budget:   cfg.RequestBudget,
	})

	slackRouter := slack.NewRouter(slack.RouterOptions{
		Service: attendanceService,
		Logger:  lg,
	})
	slackController := controllers.NewSlackController(slackRouter)

	if err := jobs.InitCronJobs(c, checker, lg); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, slackController, cfg.SigningSecret)

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
