package monitor

import (
	"fmt"
	"strings"

	"github.com/accursedgalaxy/liquidation-monitor/internal/utils"
)

// Formatter renders one source's flagged positions. An empty result means
// the source is left out of the message.
type Formatter interface {
	Format(label string, positions []Flagged) string
}

// NewFormatter returns the formatter registered under name ("list" or "table").
func NewFormatter(name string) (Formatter, error) {
	switch name {
	case "", "list":
		return ListFormatter{}, nil
	case "table":
		return TableFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown report format %q", name)
}

func heading(label string) string {
	return fmt.Sprintf("\n### %s ###\n", label)
}

// ListFormatter writes one bullet line per position.
type ListFormatter struct{}

func (ListFormatter) Format(label string, positions []Flagged) string {
	if len(positions) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(heading(label))
	for _, p := range positions {
		fmt.Fprintf(&b, "- acc_id: %s, hf: %s, debt: %s\n",
			p.AccountID, utils.FormatRatio(p.HealthFactor), utils.FormatDebt(p.TotalDebt))
	}
	return b.String()
}

// TableFormatter writes a pipe-delimited table with acc_id, acc_kind, hf and debt columns.
type TableFormatter struct{}

func (TableFormatter) Format(label string, positions []Flagged) string {
	if len(positions) == 0 {
		return ""
	}

	header := []string{"acc_id", "acc_kind", "hf", "debt"}
	rows := make([][]string, 0, len(positions))
	for _, p := range positions {
		rows = append(rows, []string{
			p.AccountID,
			p.AccountKind,
			utils.FormatRatio(p.HealthFactor),
			utils.FormatDebt(p.TotalDebt),
		})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(heading(label))
	writeRow(&b, header, widths)
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(sep, "-+-") + "\n")
	for _, row := range rows {
		writeRow(&b, row, widths)
	}
	return b.String()
}

// 文本列左对齐，数值列右对齐
func writeRow(b *strings.Builder, cells []string, widths []int) {
	fmt.Fprintf(b, "%-*s | %-*s | %*s | %*s\n",
		widths[0], cells[0],
		widths[1], cells[1],
		widths[2], cells[2],
		widths[3], cells[3])
}
