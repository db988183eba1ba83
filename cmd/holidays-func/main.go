// Command holidays-func is the custom handler of the public holidays function app.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"mcp-funcs/internal/config"
	"mcp-funcs/internal/logging"
	"mcp-funcs/internal/nager"
	"mcp-funcs/internal/server"
	"mcp-funcs/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, "info", "text").Error("load config", "err", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err := run(cfg, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, "holidays-func", cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown", "err", err)
		}
	}()

	client := nager.New(cfg.NagerBaseURL, &http.Client{Timeout: cfg.NagerTimeout})
	return server.NewHolidays(cfg, client, logger).ListenAndServe(ctx, ":"+cfg.Port)
}
