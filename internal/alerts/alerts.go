package alerts

import (
	"context"
	"errors"
	"time"
)

// ErrDispatch is returned when a report could not be delivered.
var ErrDispatch = errors.New("dispatch error")

type AlertLevel string

const (
	Info     AlertLevel = "INFO"
	Warning  AlertLevel = "WARNING"
	Critical AlertLevel = "CRITICAL"
)

// Alert is the aggregated report of one run.
type Alert struct {
	Timestamp time.Time
	Title     string
	Message   string
	Level     AlertLevel
}

type Alerter interface {
	SendAlert(ctx context.Context, alert Alert) error
}

// LevelFor picks the alert level from the run outcome: any flagged position
// is critical, source failures alone are a warning.
func LevelFor(flagged, failed int) AlertLevel {
	switch {
	case flagged > 0:
		return Critical
	case failed > 0:
		return Warning
	default:
		return Info
	}
}
