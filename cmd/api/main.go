package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/zakatech/zakat-service/internal/config"
	"github.com/zakatech/zakat-service/internal/handler"
	"github.com/zakatech/zakat-service/internal/integrations/goldprice"
	"github.com/zakatech/zakat-service/internal/integrations/mlserve"
	"github.com/zakatech/zakat-service/internal/middleware"
	"github.com/zakatech/zakat-service/internal/repository"
	"github.com/zakatech/zakat-service/internal/service"
	"github.com/zakatech/zakat-service/internal/utils/email"
	"github.com/zakatech/zakat-service/internal/zakat"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	nisab := zakat.NewNisabSource(cfg.NisabThreshold)
	predictor := mlserve.NewPredictionClient(cfg.PredictURL, logger)
	forecaster := mlserve.NewForecastClient(cfg.ForecastURL, logger)
	mailer := email.NewSender(cfg, logger)
	svc := service.NewService(repo, logger, cfg, nisab, predictor, forecaster, mailer)
	h := handler.NewHandler(svc, logger)
	goldClient := goldprice.NewClient(cfg, logger)

	if err := svc.SeedDemoUsers(); err != nil {
		logger.Fatalf("Failed to seed demo users: %v", err)
	}

	// Scheduled jobs: Nisab refresh from the gold price feed, segmentation
	// refresh, and the Haul reminder sweep.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.NisabRefreshSpec, func() {
		threshold, err := goldClient.GetNisabThreshold()
		if err != nil {
			logger.Errorf("Nisab refresh failed, keeping previous threshold: %v", err)
			return
		}
		nisab.Set(threshold)
	}); err != nil {
		logger.Fatalf("Failed to schedule Nisab refresh: %v", err)
	}
	if _, err := scheduler.AddFunc(cfg.SegmentRefreshSpec, func() {
		if _, err := svc.RefreshSegmentation(); err != nil {
			logger.Errorf("Scheduled segmentation refresh failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule segmentation refresh: %v", err)
	}
	if _, err := scheduler.AddFunc(cfg.ReminderSweepSpec, func() {
		if err := svc.SendHaulReminders(); err != nil {
			logger.Errorf("Haul reminder sweep failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule reminder sweep: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/api/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.Login).Methods("POST")
	r.Handle("/api/auth/me", middleware.AuthMiddleware(cfg)(http.HandlerFunc(h.Me))).Methods("GET")
	r.HandleFunc("/api/nisab", h.GetNisab).Methods("GET")
	r.HandleFunc("/api/user/nisab-check", h.CheckNisab).Methods("POST")
	r.HandleFunc("/api/user/haul-status", h.HaulStatus).Methods("POST")
	r.HandleFunc("/api/user/predict", h.PredictZakat).Methods("POST")

	// Protected routes
	authRouter := r.PathPrefix("/api/user").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/profile", h.GetProfile).Methods("GET")
	authRouter.HandleFunc("/profile", h.UpdateProfile).Methods("PUT")
	authRouter.HandleFunc("/contributions", h.GetContributions).Methods("GET")
	authRouter.HandleFunc("/contributions", h.AddContribution).Methods("POST")

	// Admin routes
	adminRouter := r.PathPrefix("/api/admin").Subrouter()
	adminRouter.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly)
	adminRouter.HandleFunc("/forecast", h.GetForecast).Methods("GET")
	adminRouter.HandleFunc("/projection", h.GetProjection).Methods("GET")
	adminRouter.HandleFunc("/segments", h.GetSegments).Methods("GET")
	adminRouter.HandleFunc("/trends", h.GetTrends).Methods("GET")
	adminRouter.HandleFunc("/export", h.ExportData).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
