package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "https://date.nager.at/api/v3", cfg.NagerBaseURL)
	require.Equal(t, 5*time.Second, cfg.NagerTimeout)
	require.Equal(t, 0.23, cfg.RatePLNToEUR)
	require.Equal(t, 4.35, cfg.RateEURToPLN)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Empty(t, cfg.FunctionKey)
	require.Empty(t, cfg.OTLPEndpoint)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FUNCTIONS_CUSTOMHANDLER_PORT", "7071")
	t.Setenv("NAGER_TIMEOUT", "2s")
	t.Setenv("RATE_PLN_TO_EUR", "0.5")
	t.Setenv("FUNCTION_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "7071", cfg.Port)
	require.Equal(t, 2*time.Second, cfg.NagerTimeout)
	require.Equal(t, 0.5, cfg.RatePLNToEUR)
	require.Equal(t, "secret", cfg.FunctionKey)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("NAGER_TIMEOUT", "soon")

	_, err := Load()
	require.ErrorContains(t, err, "parse env:")
}

func TestValidate(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	bad := cfg
	bad.RateEURToPLN = 0
	require.ErrorContains(t, bad.Validate(), "exchange rates must be positive")

	bad = cfg
	bad.LogFormat = "xml"
	require.ErrorContains(t, bad.Validate(), `unknown log format "xml"`)

	bad = cfg
	bad.NagerTimeout = 0
	require.ErrorContains(t, bad.Validate(), "nager timeout must be positive")
}
