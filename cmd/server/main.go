package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Arthur-Marques-IA/moneytora/internal/application/advisor"
	ledgerapp "github.com/Arthur-Marques-IA/moneytora/internal/application/ledger"
	"github.com/Arthur-Marques-IA/moneytora/internal/application/pipeline"
	"github.com/Arthur-Marques-IA/moneytora/internal/application/report"
	"github.com/Arthur-Marques-IA/moneytora/internal/domain/ledger"
	"github.com/Arthur-Marques-IA/moneytora/internal/infrastructure/config"
	"github.com/Arthur-Marques-IA/moneytora/internal/infrastructure/llm"
	"github.com/Arthur-Marques-IA/moneytora/internal/infrastructure/logger"
	"github.com/Arthur-Marques-IA/moneytora/internal/infrastructure/persistence"
	"github.com/Arthur-Marques-IA/moneytora/internal/infrastructure/printing"
	"github.com/Arthur-Marques-IA/moneytora/internal/interfaces/http/handler"
	"github.com/Arthur-Marques-IA/moneytora/internal/interfaces/http/middleware"
	"github.com/Arthur-Marques-IA/moneytora/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Moneytora",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log, cfg.Log.Level)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	classificationRepo := persistence.NewGormClassificationRepository(db.DB)

	// Warm the classification cache with the built-in keyword table so
	// common merchants resolve without a model call.
	seedClassifications(classificationRepo, log)

	// Initialize the language model client
	ctx := context.Background()
	oracle, err := llm.NewClient(ctx, cfg.LLM, log)
	if err != nil {
		log.Fatal("Failed to initialize language model client", zap.Error(err))
	}

	// Processing pipeline: extract, classify, persist
	extractor := pipeline.NewExtractor(oracle, log)
	classifier := pipeline.NewClassifier(classificationRepo, log)
	processor := pipeline.NewProcessor(extractor, classifier, transactionRepo, log)

	// Application services
	transactionService := ledgerapp.NewTransactionService(transactionRepo, log)

	// PDF rendering via headless Chrome
	templateEngine, err := printing.NewTemplateEngine()
	if err != nil {
		log.Fatal("Failed to initialize report templates", zap.Error(err))
	}
	pdfRenderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Report.PageTimeout,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer func() {
		if err := pdfRenderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()
	reportRenderer := printing.NewReportRenderer(templateEngine, pdfRenderer)
	reportService := report.NewService(transactionRepo, reportRenderer, cfg.Report.OutputDir, cfg.Report.TopN, log)

	// Conversational layer: security gate in front of the coach
	gate := advisor.NewSecurityGate(oracle, log)
	coach := advisor.NewCoach(oracle, transactionRepo, reportService, log)

	// Initialize handlers
	transactionHandler := handler.NewTransactionHandler(processor, transactionService)
	dashboardHandler := handler.NewDashboardHandler(transactionService)
	chatHandler := handler.NewChatHandler(gate, coach)
	reportHandler := handler.NewReportHandler(reportService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS())
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	systemHandler.RegisterHealthRoute(engine)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(transactionHandler).
		Register(dashboardHandler).
		Register(chatHandler).
		Register(reportHandler).
		Register(systemHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func seedClassifications(repo ledger.ClassificationRepository, log *zap.Logger) {
	entries := make([]ledger.MerchantClassification, 0, len(ledger.FallbackCategories))
	for _, fc := range ledger.FallbackCategories {
		mc, err := ledger.NewMerchantClassification(fc.Keyword, fc.Category)
		if err != nil {
			log.Warn("Skipping invalid seed classification",
				zap.String("keyword", fc.Keyword), zap.Error(err))
			continue
		}
		entries = append(entries, *mc)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.Seed(ctx, entries); err != nil {
		log.Warn("Failed to seed merchant classifications", zap.Error(err))
	}
}
