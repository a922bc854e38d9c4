// Package allocation implements the proportional split of a monetary
// amount across teams.
//
// The package is pure: it does not know about the database or HTTP
// layers. Callers load the configured splits, compute a result set and
// validate it before anything is persisted.
package allocation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrencyPrecision is the number of decimal places for allocated
// amounts, matching the minor unit of the currency in use.
const CurrencyPrecision = 2

// DefaultTolerance is the allowed deviation of a ratio sum from 100,
// in percentage points. It accommodates floating point accumulation
// from repeated division in clients.
var DefaultTolerance = decimal.NewFromFloat(0.01)

var (
	ErrAmountNegative  = errors.New("the amount to allocate must not be negative")
	ErrRatioOutOfRange = errors.New("allocation ratios must be between 0 and 100")
	ErrRatioSumInvalid = errors.New("the allocation ratios must sum to 100%")
)

var oneHundred = decimal.NewFromInt(100)

// Config is one team's configured share of a split.
type Config struct {
	ID       uuid.UUID       // ID of the allocation config resource
	TeamID   uuid.UUID       // Team receiving this share
	TeamName string          // Display name, not used in calculations
	Ratio    decimal.Decimal // Percentage share, 0 to 100
	Enabled  bool
}

// Result is one team's row of a computed split.
type Result struct {
	ConfigID uuid.UUID       `json:"configId" example:"a3b76b17-1097-4de9-a6c7-b0d007e10e22"` // The config this row was seeded from
	TeamID   uuid.UUID       `json:"teamId" example:"d23bba52-7859-49ba-b66d-0bcea422ed3f"`   // Team receiving this share
	TeamName string          `json:"teamName" example:"Operations"`                           // Display name of the team
	Ratio    decimal.Decimal `json:"ratio" example:"33.33"`                                   // Percentage share that was applied
	Amount   decimal.Decimal `json:"amount" example:"3333"`                                   // Amount allocated to the team
}

// Resolve returns the enabled subset of configs, in input order.
//
// An empty result is not an error here. Callers must block
// allocation-enabled submissions when no config is enabled, since an
// empty split can never validate.
func Resolve(configs []Config) []Config {
	enabled := make([]Config, 0, len(configs))
	for _, config := range configs {
		if config.Enabled {
			enabled = append(enabled, config)
		}
	}

	return enabled
}

// Compute calculates the allocated amount for every config.
//
// Each row's amount is amount × ratio / 100, rounded half up to
// CurrencyPrecision decimal places. Overrides replace the stored ratio
// for the team they are keyed by and are intentionally not normalized,
// an overridden set can fail validation and must be checked with
// ValidateRatios before it is persisted.
//
// Compute always recalculates the full result set. Callers must not
// patch single rows since validation depends on the full-set sum.
func Compute(amount decimal.Decimal, configs []Config, overrides map[uuid.UUID]decimal.Decimal) ([]Result, error) {
	if amount.IsNegative() {
		return nil, ErrAmountNegative
	}

	results := make([]Result, 0, len(configs))
	for _, config := range configs {
		ratio := config.Ratio
		if override, ok := overrides[config.TeamID]; ok {
			ratio = override
		}

		if ratio.IsNegative() || ratio.GreaterThan(oneHundred) {
			return nil, fmt.Errorf("%w: %s for team %s", ErrRatioOutOfRange, ratio, config.TeamID)
		}

		results = append(results, Result{
			ConfigID: config.ID,
			TeamID:   config.TeamID,
			TeamName: config.TeamName,
			Ratio:    ratio,
			Amount:   amount.Mul(ratio).Div(oneHundred).Round(CurrencyPrecision),
		})
	}

	return results, nil
}

// SumRatios returns the sum of the ratios of all results.
func SumRatios(results []Result) decimal.Decimal {
	sum := decimal.Zero
	for _, result := range results {
		sum = sum.Add(result.Ratio)
	}

	return sum
}

// ValidateRatios checks that the ratios of the result set sum to 100%
// within the given tolerance.
//
// The returned error wraps ErrRatioSumInvalid and reports the computed
// sum so that users know how far off they are. An empty result set
// sums to 0 and is therefore always invalid, which blocks submissions
// when no allocation config is enabled.
func ValidateRatios(results []Result, tolerance decimal.Decimal) error {
	sum := SumRatios(results)
	if sum.Sub(oneHundred).Abs().GreaterThan(tolerance) {
		return fmt.Errorf("%w, but they sum to %s%%", ErrRatioSumInvalid, sum)
	}

	return nil
}
