package alerts

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/accursedgalaxy/liquidation-monitor/internal/utils"
)

// ConsoleAlerter 把报告打印到终端，用于 -dry-run
type ConsoleAlerter struct {
	Out io.Writer
}

func (a *ConsoleAlerter) SendAlert(_ context.Context, alert Alert) error {
	out := a.Out
	if out == nil {
		out = os.Stdout
	}

	// 根据告警级别使用不同颜色
	var color, symbol string
	switch alert.Level {
	case Critical:
		color = utils.ColorRed
		symbol = "🔴"
	case Warning:
		color = utils.ColorYellow
		symbol = "🟡"
	default:
		color = utils.ColorGreen
		symbol = "🟢"
	}

	timestamp := alert.Timestamp.Format("15:04:05")

	// 为告警绘制框线
	width := 80
	border := fmt.Sprintf("%s%s%s", color, strings.Repeat("━", width), utils.ColorReset)

	fmt.Fprintln(out, border)
	fmt.Fprintf(out, "%s%s [%s] %s%s%s\n",
		color,
		symbol,
		timestamp,
		utils.ColorBold,
		strings.ToUpper(alert.Title),
		utils.ColorReset)
	fmt.Fprintln(out, CodeBlock(alert.Message))
	fmt.Fprintln(out, border)

	return nil
}
