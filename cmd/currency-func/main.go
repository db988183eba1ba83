// Command currency-func is the custom handler of the currency converter function app.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"mcp-funcs/internal/config"
	"mcp-funcs/internal/currency"
	"mcp-funcs/internal/logging"
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
	if cfg.FunctionKey == "" {
		logger.Warn("FUNCTION_KEY not set; /api/mcp is open")
	}
	if err := run(cfg, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, "currency-func", cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown", "err", err)
		}
	}()

	rates := currency.Rates{PLNToEUR: cfg.RatePLNToEUR, EURToPLN: cfg.RateEURToPLN}
	return server.NewCurrency(cfg, rates, logger).ListenAndServe(ctx, ":"+cfg.Port)
}
