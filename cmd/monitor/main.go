package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/accursedgalaxy/liquidation-monitor/internal/alerts"
	"github.com/accursedgalaxy/liquidation-monitor/internal/config"
	"github.com/accursedgalaxy/liquidation-monitor/internal/metrics"
	"github.com/accursedgalaxy/liquidation-monitor/internal/monitor"
	"github.com/accursedgalaxy/liquidation-monitor/internal/source"
	"github.com/accursedgalaxy/liquidation-monitor/internal/utils"
)

func main() {
	// 创建自定义日志记录器
	logger := utils.NewLogger(config.LogDir())

	dryRun := flag.Bool("dry-run", false, "Print the report instead of sending it to Telegram")
	format := flag.String("format", "list", "Report layout: list or table")
	flag.Parse()

	// 打印欢迎信息
	fmt.Printf("\n%s%s MARS LIQUIDATION MONITOR %s\n", utils.ColorBold, utils.ColorPurple, utils.ColorReset)
	fmt.Printf("%s━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━%s\n\n", utils.ColorPurple, utils.ColorReset)

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config: %v\n\n"+
			"💡 MIN_HF, MAX_HF and MIN_TOTAL_DEBT must be plain numbers, e.g. MIN_HF=0.2", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Configuration validation failed:\n%v", err)
	}

	// 初始化告警器
	var alerter alerts.Alerter
	if *dryRun {
		alerter = &alerts.ConsoleAlerter{}
		logger.Config("Dry run: report will be printed to the console")
	} else {
		if err := cfg.ValidateTelegram(); err != nil {
			logger.Fatal("Configuration validation failed:\n%v\n\n"+
				"💡 Quick fix:\n"+
				"   1. Create a bot with @BotFather and export BOT_TOKEN\n"+
				"   2. Add the bot to your channel and export CHANNEL_ID\n"+
				"   3. Or run with -dry-run to print the report instead", err)
		}
		alerter = alerts.NewTelegramAlerter(cfg.BotToken, cfg.ChannelID)
		logger.Config("Telegram alerts enabled for chat %s", cfg.ChannelID)
	}

	formatter, err := monitor.NewFormatter(*format)
	if err != nil {
		logger.Fatal("%v", err)
	}

	logger.Config("Thresholds: %s < hf <= %s, debt > %s",
		cfg.Thresholds.MinHealthFactor, cfg.Thresholds.MaxHealthFactor, cfg.Thresholds.MinTotalDebt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder := metrics.New()
	client := source.NewClient(rate.Every(time.Second / 4))
	m := monitor.New(client, formatter, cfg.Thresholds, recorder, logger)

	if err := run(ctx, m, alerter, recorder, logger); err != nil {
		writeMetrics(cfg, recorder, logger)
		logger.Fatal("Failed to send alert: %v", err)
	}
	writeMetrics(cfg, recorder, logger)
}

func run(ctx context.Context, m *monitor.Monitor, alerter alerts.Alerter, recorder *metrics.Recorder, logger *utils.Logger) error {
	defer func() { recorder.RunCompleted(time.Now()) }()

	logger.Scan("Checking %d sources...", len(config.Sources))
	result := m.Run(ctx, config.Sources)

	message := result.Message()
	if message == "" {
		// 没有任何需要报告的内容时不发送
		logger.Success("No unhealthy positions inside the alert band, nothing to send")
		return nil
	}

	alert := alerts.Alert{
		Timestamp: time.Now(),
		Title:     "Unhealthy positions",
		Message:   message,
		Level:     alerts.LevelFor(result.Flagged(), result.Failed()),
	}
	if err := alerter.SendAlert(ctx, alert); err != nil {
		return err
	}

	recorder.AlertSent()
	logger.Alert("Report sent: %d flagged positions, %d failed sources", result.Flagged(), result.Failed())
	return nil
}

func writeMetrics(cfg *config.Config, recorder *metrics.Recorder, logger *utils.Logger) {
	if cfg.MetricsTextfile == "" {
		return
	}
	if err := recorder.WriteTextfile(cfg.MetricsTextfile); err != nil {
		logger.Error("Failed to write metrics to %s: %v", cfg.MetricsTextfile, err)
	}
}
