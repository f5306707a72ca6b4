package main

//go:generate swag init

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/fiscaldesk/portal/cache"
	"github.com/fiscaldesk/portal/db"
	_ "github.com/fiscaldesk/portal/docs"
	"github.com/fiscaldesk/portal/handlers"
	"github.com/fiscaldesk/portal/recurrence"
	"github.com/fiscaldesk/portal/scheduler"
	"github.com/fiscaldesk/portal/store"
)

// @title           Fiscal Obligation Portal API
// @version         1.0.0
// @description     API for managing clients, taxes, obligations, and installment plans, with automatic next-period generation.
// @host            localhost:8080
// @BasePath        /api/v1

func main() {
	// Local development convenience; in production env vars come from the host
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	// Configure structured logging
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Open database
	database, err := db.Open()
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	st := store.New(database)
	handlers.Store = st

	// Day-guard marker cache: shared via Redis when configured, in-process
	// otherwise
	var dayGuard cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		dayGuard = cache.NewRedis(addr)
		slog.Info("day-guard cache backed by redis", "addr", addr)
	} else {
		dayGuard = cache.NewMemory()
	}

	engine := recurrence.NewEngine(st)

	// In-process daily recurrence check
	sched := scheduler.New(engine, dayGuard)
	if err := sched.Start(context.Background()); err != nil {
		slog.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	cronSecret := os.Getenv("CRON_SECRET")
	if cronSecret == "" {
		slog.Warn("CRON_SECRET not set, recurrence trigger endpoint is disabled")
	}
	recurrenceHandler := handlers.NewRecurrenceHandler(engine, cronSecret)

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// Clients
		r.Get("/clients", handlers.ListClients)
		r.Post("/clients", handlers.CreateClient)
		r.Get("/clients/{id}", handlers.GetClient)
		r.Put("/clients/{id}", handlers.UpdateClient)
		r.Delete("/clients/{id}", handlers.DeleteClient)

		// Taxes
		r.Get("/taxes", handlers.ListTaxes)
		r.Post("/taxes", handlers.CreateTax)
		r.Get("/taxes/{id}", handlers.GetTax)
		r.Put("/taxes/{id}", handlers.UpdateTax)
		r.Delete("/taxes/{id}", handlers.DeleteTax)

		// Obligations
		r.Get("/obligations", handlers.ListObligations)
		r.Post("/obligations", handlers.CreateObligation)
		r.Get("/obligations/{id}", handlers.GetObligation)
		r.Put("/obligations/{id}", handlers.UpdateObligation)
		r.Delete("/obligations/{id}", handlers.DeleteObligation)
		r.Get("/obligations/{id}/due-date", handlers.GetObligationDueDate)

		// Installments
		r.Get("/installments", handlers.ListInstallments)
		r.Post("/installments", handlers.CreateInstallment)
		r.Get("/installments/{id}", handlers.GetInstallment)
		r.Put("/installments/{id}", handlers.UpdateInstallment)
		r.Delete("/installments/{id}", handlers.DeleteInstallment)

		// Recurrence trigger (scheduled endpoint)
		r.Post("/recurrence/{secret}", recurrenceHandler.Trigger)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	slog.Info("server starting", "address", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
