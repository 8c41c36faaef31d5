package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"esaj-lookup/internal/classify"
	"esaj-lookup/internal/env"
	"esaj-lookup/internal/esaj"
	"esaj-lookup/internal/logger"
	"esaj-lookup/internal/server"
	"esaj-lookup/internal/task"
)

func main() {
	envService := env.New()

	zlog, err := logger.New(
		envService.Get("LOG_LEVEL", "info"),
		envService.Get("LOG_FORMAT", "json"),
	)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	tz, err := time.LoadLocation(envService.Get("REPORT_TIMEZONE", "America/Sao_Paulo"))
	if err != nil {
		zlog.Fatal("load timezone", zap.Error(err))
	}

	baseURL := envService.Get("ESAJ_BASE_URL", esaj.DefaultBaseURL)
	trial := esaj.NewTrialClient(
		&http.Client{Timeout: envService.GetDuration("HTTP_TIMEOUT", 30*time.Second)},
		baseURL,
		zlog,
	)

	sessionCfg := esaj.DefaultSessionConfig()
	sessionCfg.BaseURL = baseURL
	sessionCfg.Headless = envService.GetBool("BROWSER_HEADLESS", true)
	newSession := func() (classify.AppellateSession, error) {
		return esaj.NewSession(sessionCfg, zlog)
	}

	runner := classify.NewRunner(
		newSession,
		trial,
		envService.GetDuration("CASE_PAUSE", 800*time.Millisecond),
		envService.Get("SNAPSHOT_DIR", ""),
		zlog,
	)

	store := task.NewStore()
	manager := task.NewManager(store, runner, tz, zlog)

	srv := server.New(server.Config{
		JWTSecret: envService.MustGet("JWT_SECRET"),
		Timezone:  tz,
	}, manager, zlog)

	addr := envService.Get("LISTEN_ADDR", ":8080")
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		zlog.Error("shutdown", zap.Error(err))
	}
}
