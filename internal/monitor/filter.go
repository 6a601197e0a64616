package monitor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/accursedgalaxy/liquidation-monitor/internal/config"
	"github.com/accursedgalaxy/liquidation-monitor/internal/source"
	"github.com/accursedgalaxy/liquidation-monitor/internal/utils"
)

// ErrInvalidValue is returned when a record carries a non-numeric health factor or debt.
var ErrInvalidValue = errors.New("invalid value")

// Flagged is a position inside the alert band.
type Flagged struct {
	AccountID    string
	AccountKind  string
	HealthFactor decimal.Decimal
	TotalDebt    decimal.Decimal
}

// FilterPositions keeps the positions with
// MinHealthFactor < hf <= MaxHealthFactor and debt > MinTotalDebt, in input
// order. A single unparsable record fails the whole call.
func FilterPositions(positions []source.Position, th config.Thresholds) ([]Flagged, error) {
	flagged := make([]Flagged, 0)
	for i, p := range positions {
		hf, err := parseNumber(p.HealthFactor)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d (%s) health_factor: %v", ErrInvalidValue, i, p.AccountID, err)
		}
		debt, err := parseNumber(p.TotalDebt)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d (%s) total_debt: %v", ErrInvalidValue, i, p.AccountID, err)
		}

		if hf.GreaterThan(th.MinHealthFactor) &&
			hf.LessThanOrEqual(th.MaxHealthFactor) &&
			debt.GreaterThan(th.MinTotalDebt) {
			flagged = append(flagged, Flagged{
				AccountID:    string(p.AccountID),
				AccountKind:  p.AccountKind,
				HealthFactor: hf,
				TotalDebt:    debt,
			})
		}
	}
	return flagged, nil
}

// parseNumber accepts a JSON number or a JSON string holding a number.
func parseNumber(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Zero, errors.New("missing")
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return decimal.Zero, err
		}
	}
	return utils.ParseDecimal(strings.TrimSpace(text))
}
