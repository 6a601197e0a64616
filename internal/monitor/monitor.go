package monitor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/accursedgalaxy/liquidation-monitor/internal/config"
	"github.com/accursedgalaxy/liquidation-monitor/internal/metrics"
	"github.com/accursedgalaxy/liquidation-monitor/internal/source"
	"github.com/accursedgalaxy/liquidation-monitor/internal/utils"
)

// Fetcher returns the raw positions published at url.
type Fetcher interface {
	FetchPositions(ctx context.Context, url string) ([]source.Position, error)
}

// Monitor runs fetch, filter and format for each source in turn.
type Monitor struct {
	fetcher    Fetcher
	formatter  Formatter
	thresholds config.Thresholds
	metrics    *metrics.Recorder
	logger     *utils.Logger
}

func New(fetcher Fetcher, formatter Formatter, thresholds config.Thresholds, recorder *metrics.Recorder, logger *utils.Logger) *Monitor {
	return &Monitor{
		fetcher:    fetcher,
		formatter:  formatter,
		thresholds: thresholds,
		metrics:    recorder,
		logger:     logger,
	}
}

// Report is the outcome for one source. Text is either the formatted block
// or an inline error line.
type Report struct {
	Label   string
	Fetched int
	Flagged []Flagged
	Err     error
	Text    string
}

// Result collects the reports of one run in source order.
type Result struct {
	Reports []Report
}

// Message concatenates every non-empty report, each followed by a newline.
// It is empty when no source produced anything to report.
func (r Result) Message() string {
	var b strings.Builder
	for _, rep := range r.Reports {
		if rep.Text == "" {
			continue
		}
		b.WriteString(rep.Text)
		b.WriteString("\n")
	}
	return b.String()
}

// Flagged returns the number of flagged positions across all sources.
func (r Result) Flagged() int {
	n := 0
	for _, rep := range r.Reports {
		n += len(rep.Flagged)
	}
	return n
}

// Failed returns the number of sources that ended in an error.
func (r Result) Failed() int {
	n := 0
	for _, rep := range r.Reports {
		if rep.Err != nil {
			n++
		}
	}
	return n
}

// Run checks sources sequentially. A failing source is reported inline and
// never stops the others.
func (m *Monitor) Run(ctx context.Context, sources []config.Source) Result {
	result := Result{Reports: make([]Report, 0, len(sources))}
	for _, src := range sources {
		result.Reports = append(result.Reports, m.check(ctx, src))
	}
	return result
}

func (m *Monitor) check(ctx context.Context, src config.Source) Report {
	rep := Report{Label: src.Label}

	m.logger.Scan("Fetching %s (%s)", src.Label, src.URL)
	positions, err := m.fetcher.FetchPositions(ctx, src.URL)
	if err != nil {
		return m.failed(rep, err)
	}
	rep.Fetched = len(positions)

	flagged, err := FilterPositions(positions, m.thresholds)
	if err != nil {
		return m.failed(rep, err)
	}
	rep.Flagged = flagged
	rep.Text = m.formatter.Format(src.Label, flagged)

	m.metrics.ObserveSource(src.Label, rep.Fetched, len(flagged))
	if len(flagged) > 0 {
		m.logger.Warning("%s: %d of %d positions inside the alert band", src.Label, len(flagged), rep.Fetched)
	} else {
		m.logger.Info("%s: %d positions, none inside the alert band", src.Label, rep.Fetched)
	}
	return rep
}

func (m *Monitor) failed(rep Report, err error) Report {
	rep.Err = err
	if errors.Is(err, ErrInvalidValue) {
		rep.Text = fmt.Sprintf("Error processing data from %s: %v", rep.Label, err)
		m.metrics.SourceFailed(rep.Label, "process")
		m.logger.Error("Error processing data from %s: %v", rep.Label, err)
		return rep
	}

	rep.Text = fmt.Sprintf("Failed to retrieve data from %s: %v", rep.Label, err)
	m.metrics.SourceFailed(rep.Label, "fetch")
	m.logger.Network("Failed to retrieve data from %s: %v", rep.Label, err)
	return rep
}
