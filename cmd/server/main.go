package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"prism/internal/adapters/aiservice"
	httpadapter "prism/internal/adapters/http"
	pg "prism/internal/adapters/postgres"
	"prism/internal/config"
	"prism/internal/ports"
	"prism/internal/report"
	productsvc "prism/internal/services/products"
	questionsvc "prism/internal/services/questions"
	reportsvc "prism/internal/services/reports"
)

func main() {
	cfg, cfgErr := config.Load()

	logger := newLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()
	if cfgErr != nil {
		logger.Warn("config incomplete", zap.Error(cfgErr))
	}
	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required for Postgres adapters")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := pg.Connect(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("db connect error", zap.Error(err))
	}
	defer db.Close()

	ai := aiservice.New(cfg.AIServiceURL, cfg.ScorerTimeout, logger)

	// Wire repositories and clients to services (ports)
	var _ ports.ProductRepository = db
	var _ ports.ReportRepository = db
	var _ ports.ScorerClient = ai
	var _ ports.QuestionClient = ai

	products := productsvc.New(db)
	reports := reportsvc.New(db, db, ai, logger)
	questions := questionsvc.New(ai, logger)

	srv := httpadapter.New(products, reports, questions, report.NewRenderer(), logger)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	httpSrv := &http.Server{Addr: cfg.ListenAddr, Handler: r}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	logger.Info("listening", zap.String("addr", cfg.ListenAddr), zap.String("env", cfg.Env))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}
}

func newLogger(env string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger.Named("prism")
}
