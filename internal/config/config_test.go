package config

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"BOT_TOKEN", "CHANNEL_ID", "MIN_HF", "MAX_HF", "MIN_TOTAL_DEBT", "METRICS_TEXTFILE"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("0.2").Equal(cfg.Thresholds.MinHealthFactor))
	assert.True(t, decimal.RequireFromString("1").Equal(cfg.Thresholds.MaxHealthFactor))
	assert.True(t, decimal.NewFromInt(1000000).Equal(cfg.Thresholds.MinTotalDebt))
	assert.NoError(t, cfg.Validate())
	assert.Error(t, cfg.ValidateTelegram())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("CHANNEL_ID", "-100200")
	t.Setenv("MIN_HF", "0.5")
	t.Setenv("MAX_HF", "1.05")
	t.Setenv("MIN_TOTAL_DEBT", "2500000")
	t.Setenv("METRICS_TEXTFILE", "/tmp/liq.prom")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, "-100200", cfg.ChannelID)
	assert.Equal(t, "/tmp/liq.prom", cfg.MetricsTextfile)
	assert.Equal(t, "0.5", cfg.Thresholds.MinHealthFactor.String())
	assert.Equal(t, "1.05", cfg.Thresholds.MaxHealthFactor.String())
	assert.Equal(t, "2500000", cfg.Thresholds.MinTotalDebt.String())
	assert.NoError(t, cfg.ValidateTelegram())
}

func TestLoadInvalidNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_HF", "one")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "MAX_HF")
}

func TestLoadRejectsHugeExponent(t *testing.T) {
	clearEnv(t)
	t.Setenv("MIN_TOTAL_DEBT", "1e999999999")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "MIN_TOTAL_DEBT")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		min, max    string
		shouldError bool
	}{
		{name: "Valid band", min: "0.2", max: "1.0", shouldError: false},
		{name: "Equal bounds", min: "1.0", max: "1", shouldError: true},
		{name: "Inverted bounds", min: "1.2", max: "1.0", shouldError: true},
		{name: "Negative minimum", min: "-1", max: "1.0", shouldError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Thresholds: Thresholds{
				MinHealthFactor: decimal.RequireFromString(tt.min),
				MaxHealthFactor: decimal.RequireFromString(tt.max),
				MinTotalDebt:    decimal.NewFromInt(1000000),
			}}
			if tt.shouldError {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestLogDir(t *testing.T) {
	t.Setenv("LOG_DIR", "restored-after-test")
	require.NoError(t, os.Unsetenv("LOG_DIR"))
	assert.Equal(t, defaultLogDir, LogDir())

	t.Setenv("LOG_DIR", "/var/log/liq")
	assert.Equal(t, "/var/log/liq", LogDir())

	t.Setenv("LOG_DIR", "")
	assert.Equal(t, "", LogDir())
}

func TestSourcesOrder(t *testing.T) {
	labels := make([]string, 0, len(Sources))
	for _, s := range Sources {
		labels = append(labels, s.Label)
		assert.Contains(t, s.URL, "https://api.marsprotocol.io/v1/unhealthy_positions/")
	}
	assert.Equal(t, []string{"OSMO CM", "OSMO RB", "NTRN CM", "NTRN RB"}, labels)
}
