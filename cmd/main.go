package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"docsense/internal/cache"
	"docsense/internal/config"
	"docsense/internal/handler"
	"docsense/internal/metrics"
	"docsense/internal/prompt"
	"docsense/internal/service"
	"docsense/internal/storage"

	_ "docsense/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title docsense API
// @version 1.0
// @description Document analysis assistant: upload a PDF/DOCX, get an LLM answer for your prompt.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config error")
	}

	defaultPrompt, err := prompt.LoadDefault(cfg.Prompt.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Prompt.Path).Msg("default prompt error")
	}

	store := storage.New(cfg.Storage.Dir)
	analyzeService := service.NewAnalyzeService(logger, cfg.GigaChat, store)

	if cfg.CacheEnable {
		analyzeService.SetCacheClient(cache.NewRedisCache(cfg.RedisConfig))
		logger.Info().Msg("set redis as cache")
	}

	a := handler.NewAnalyzeHandler(analyzeService, cfg.Server.MaxUploadBytes)
	p := handler.NewPageHandler(defaultPrompt)

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Throttle(cfg.Server.ThrottleLimit),
		middleware.Timeout(cfg.Server.Timeout),
		metrics.Middleware,
	}...)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", p.Index)
	r.Get("/api/prompt/default", p.DefaultPrompt)
	r.Post("/api/analyze", a.Analyze)
	r.Post("/api/analyze/stream", a.AnalyzeStream)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}
	logger.Info().Msg("server stopped")
}
