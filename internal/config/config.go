package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/accursedgalaxy/liquidation-monitor/internal/utils"
)

const (
	defaultMinHealthFactor = "0.2"
	defaultMaxHealthFactor = "1.0"
	defaultMinTotalDebt    = "1000000"
	defaultLogDir          = "./data"
)

// Thresholds bound the health-factor band and the minimum debt worth alerting on.
type Thresholds struct {
	MinHealthFactor decimal.Decimal
	MaxHealthFactor decimal.Decimal
	MinTotalDebt    decimal.Decimal
}

// Config for a single monitoring run.
type Config struct {
	// BotToken is the Telegram bot credential.
	BotToken string
	// ChannelID is the Telegram chat the report is posted to.
	ChannelID string
	// Thresholds used by the position filter.
	Thresholds Thresholds
	// MetricsTextfile, when set, receives the run metrics in Prometheus text format.
	MetricsTextfile string
}

// Load reads the configuration from the process environment, applying
// defaults for unset thresholds.
func Load() (*Config, error) {
	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		ChannelID:       os.Getenv("CHANNEL_ID"),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
	}

	var err error
	if cfg.Thresholds.MinHealthFactor, err = decimalEnv("MIN_HF", defaultMinHealthFactor); err != nil {
		return nil, err
	}
	if cfg.Thresholds.MaxHealthFactor, err = decimalEnv("MAX_HF", defaultMaxHealthFactor); err != nil {
		return nil, err
	}
	if cfg.Thresholds.MinTotalDebt, err = decimalEnv("MIN_TOTAL_DEBT", defaultMinTotalDebt); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate the Config.
func (c *Config) Validate() error {
	if !c.Thresholds.MinHealthFactor.LessThan(c.Thresholds.MaxHealthFactor) {
		return fmt.Errorf("MIN_HF (%s) must be lower than MAX_HF (%s)",
			c.Thresholds.MinHealthFactor, c.Thresholds.MaxHealthFactor)
	}
	return nil
}

// ValidateTelegram checks the credentials needed to post the report.
func (c *Config) ValidateTelegram() error {
	if c.BotToken == "" {
		return errors.New("BOT_TOKEN is required")
	}
	if c.ChannelID == "" {
		return errors.New("CHANNEL_ID is required")
	}
	return nil
}

// LogDir returns the directory for the daily log file. An explicitly empty
// LOG_DIR disables file logging.
func LogDir() string {
	dir, ok := os.LookupEnv("LOG_DIR")
	if !ok {
		return defaultLogDir
	}
	return dir
}

func decimalEnv(key, fallback string) (decimal.Decimal, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		raw = fallback
	}
	value, err := utils.ParseDecimal(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}

// Source is one monitored protocol/market endpoint.
type Source struct {
	Label string
	URL   string
}

// Sources are queried in this order on every run.
var Sources = []Source{
	{Label: "OSMO CM", URL: "https://api.marsprotocol.io/v1/unhealthy_positions/osmosis/creditmanager"},
	{Label: "OSMO RB", URL: "https://api.marsprotocol.io/v1/unhealthy_positions/osmosis/redbank"},
	{Label: "NTRN CM", URL: "https://api.marsprotocol.io/v1/unhealthy_positions/neutron/creditmanager"},
	{Label: "NTRN RB", URL: "https://api.marsprotocol.io/v1/unhealthy_positions/neutron/redbank"},
}
