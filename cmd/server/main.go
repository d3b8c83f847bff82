package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/iho/bytegate/internal/adapter/byteclient"
	httpAdapter "github.com/iho/bytegate/internal/adapter/http"
	"github.com/iho/bytegate/internal/adapter/http/handler"
	"github.com/iho/bytegate/internal/adapter/repository/memory"
	redisRepo "github.com/iho/bytegate/internal/adapter/repository/redis"
	"github.com/iho/bytegate/internal/infrastructure/config"
	"github.com/iho/bytegate/internal/infrastructure/logger"
	"github.com/iho/bytegate/internal/infrastructure/metrics"
	"github.com/iho/bytegate/internal/infrastructure/redis"
	"github.com/iho/bytegate/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "bytegate",
	})

	ctx := context.Background()

	// Select the gateway implementation once at startup.
	var gateway usecase.Gateway
	var corePinger handler.CorePinger

	if cfg.UseSimulator() {
		latency := usecase.NoLatency()
		if cfg.SimulateLatency {
			latency = usecase.DefaultLatency()
		}

		ledger := memory.NewLedgerStore(memory.DefaultSeed())
		registry := memory.NewTransactionRegistry()
		gateway = usecase.NewEngine(ledger, registry, usecase.NewAuthCodeGenerator(), latency, log)

		log.Info().Bool("latency", cfg.SimulateLatency).Msg("running with the built-in core simulator")
	} else {
		client := byteclient.New(cfg.ByteURL, cfg.ByteTimeout, log)
		gateway = client
		corePinger = client

		log.Info().Str("url", cfg.ByteURL).Dur("timeout", cfg.ByteTimeout).Msg("running against remote core")
	}

	gateway = metrics.NewInstrumentedGateway(gateway, metrics.New())

	// Optional Redis-backed idempotency at the boundary.
	var idempotencyStore usecase.IdempotencyStore
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()

		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		log.Info().Msg("boundary idempotency enabled")
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ByteHandler:      handler.NewByteHandler(gateway),
		HealthHandler:    handler.NewHealthHandler(corePinger),
		Logger:           log,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimitRPS:     cfg.RateLimitRPS,
		RateLimitBurst:   cfg.RateLimitBurst,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
