package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/dailydiet/dailydiet-go/internal/config"
	"github.com/dailydiet/dailydiet-go/internal/handler"
	"github.com/dailydiet/dailydiet-go/internal/middleware"
	"github.com/dailydiet/dailydiet-go/internal/repository"
	"github.com/dailydiet/dailydiet-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.Apply(context.Background(), db); err != nil {
		slog.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	mealRepo := repository.NewMealRepository(db)

	sessionService := service.NewSessionService(userRepo)
	mealService := service.NewMealService(mealRepo)
	metricsService := service.NewMetricsService(mealRepo)

	userHandler := handler.NewUserHandler(sessionService, cfg.SessionTTL)
	mealHandler := handler.NewMealHandler(mealService, metricsService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/users", userHandler.HandleRegister)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(sessionService))

		r.Get("/api/v1/meals", mealHandler.HandleListMeals)
		r.Post("/api/v1/meals", mealHandler.HandleCreateMeal)
		r.Get("/api/v1/meals/metrics", mealHandler.HandleMetrics)
		r.Get("/api/v1/meals/{meal_id}", mealHandler.HandleGetMeal)
		r.Put("/api/v1/meals/{meal_id}", mealHandler.HandleUpdateMeal)
		r.Delete("/api/v1/meals/{meal_id}", mealHandler.HandleDeleteMeal)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
