package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/app"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/session"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

var config struct {
	app.Config `group:"Engine Options"`

	RestAddr     string        `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"rest addr" default:":8001"`
	WriteTimeout time.Duration `long:"write-timeout" env:"API_GATEWAY_WRITE_TIMEOUT" description:"upper bound of a response, raised to fit the longest broadcast"`

	SessionIdleTTL time.Duration `long:"session-idle-ttl" env:"API_GATEWAY_SESSION_IDLE_TTL" description:"evict sessions idle for this long" default:"30m"`
	SessionMax     int           `long:"session-max" env:"API_GATEWAY_SESSION_MAX" description:"maximum live sessions" default:"10000"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		panic("failed to parse arguments: " + err.Error())
	}
	logger, err := app.NewLogger(config.LogLevel)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	engine, err := app.NewEngine(config.Config, logger)
	if err != nil {
		logger.Fatal("Failed to build engine", zap.Error(err))
	}
	engine.Start(ctx)
	defer func() {
		if err := engine.Close(); err != nil {
			logger.Error("Failed to close engine", zap.Error(err))
		}
	}()

	sessions, err := session.NewManager(engine.Network(), session.Config{
		IdleTTL:     config.SessionIdleTTL,
		MaxSessions: config.SessionMax,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to build session manager", zap.Error(err))
	}

	budget := engine.BroadcastBudget()
	writeTimeout := app.ResponseTimeout(config.WriteTimeout, budget)
	if config.WriteTimeout > 0 && writeTimeout != config.WriteTimeout {
		logger.Warn("Write timeout raised to fit the broadcast budget",
			zap.Duration("configured", config.WriteTimeout),
			zap.Duration("budget", budget),
			zap.Duration("write_timeout", writeTimeout),
		)
	}

	mux := http.NewServeMux()
	transport.NewHandler(engine, sessions, engine.Network(), logger).RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
		sessions.Shutdown()
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr), zap.String("network", string(engine.Network())))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
		return
	}
	<-stopped
}
