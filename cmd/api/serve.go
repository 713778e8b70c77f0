package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gestorpro/internal/adapter/http/handlers"
	"gestorpro/internal/adapter/http/routes"
	"gestorpro/internal/infrastructure/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server and the scheduled jobs",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}
	defer a.Close()

	jobs, err := a.scheduleJobs()
	if err != nil {
		return err
	}
	jobs.Start()
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		jobs.Stop(stopCtx)
	}()

	router := routes.New(routes.Dependencies{
		Handlers: a.handlers(),
		Tokens:   a.tokens,
		Sessions: a.sessions,
		Metrics:  a.metrics,
		Gatherer: a.registry,
		Logger:   logger,
	})
	// Open event streams only end when their session closes.
	if err := routes.Run(ctx, router, cfg.Server.Port, cfg.Server.ShutdownTimeout, logger, a.sessions.CloseAll); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func (a *app) handlers() routes.Handlers {
	return routes.Handlers{
		Auth:         handlers.NewAuthHandler(a.auth, a.logger),
		Session:      handlers.NewSessionHandler(a.sessions, a.logger),
		Records:      handlers.NewRecordHandler(a.records, a.sessions, a.logger),
		Documents:    handlers.NewDocumentHandler(a.documents, a.contracts, a.sessions, a.logger),
		Status:       handlers.NewStatusHandler(a.transitions),
		AI:           handlers.NewAIHandler(a.assistant),
		Reports:      handlers.NewReportHandler(a.dashboard, a.reports, a.activity),
		Team:         handlers.NewTeamHandler(a.team, a.sessions, a.logger),
		Settings:     handlers.NewSettingsHandler(a.settings),
		Integrations: handlers.NewIntegrationHandler(a.integrations),
		Portal:       handlers.NewPortalHandler(a.portal, a.checkout, a.cfg.GatewayMockEnabled(), a.logger),
	}
}

// scheduleJobs registers the audit replay and, when enabled, the daily reminders.
func (a *app) scheduleJobs() (*scheduler.Scheduler, error) {
	jobs := scheduler.New(a.loc, a.logger)
	if err := jobs.Add(scheduler.Every(a.cfg.Audit.RetryInterval), "audit-replay", func(ctx context.Context) error {
		_, err := a.audit.Replay(ctx)
		return err
	}); err != nil {
		return nil, err
	}
	if !a.cfg.Reminders.Enabled {
		a.logger.Info("payment reminders disabled")
		return jobs, nil
	}
	if err := jobs.Add(a.cfg.Reminders.Schedule, "payment-reminders", a.runReminders); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (a *app) runReminders(ctx context.Context) error {
	report, err := a.reminders.Run(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("payment reminders done",
		zap.String("today", report.Today),
		zap.Int("planned", report.Planned),
		zap.Int("sent", report.Sent),
		zap.Int("failed", report.Failed),
		zap.Int("skipped", report.Skipped),
		zap.Int("duplicates", report.Duplicates),
	)
	return nil
}
