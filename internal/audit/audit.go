// Package audit periodically verifies the allocation configuration.
//
// Enabled configs are allowed to drift away from a 100% sum while
// operators stage changes, allocation commits fail while they do. The
// audit job makes that state visible in the logs so that a
// misconfigured split does not go unnoticed until the next commit.
package audit

import (
	"os"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/allocation"
	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultSchedule is used when AUDIT_SCHEDULE is not set.
const DefaultSchedule = "@hourly"

// Drift describes an enabled config set whose ratios do not sum to
// 100 percent.
type Drift struct {
	Sum     decimal.Decimal // What the enabled ratios sum to
	Configs int             // How many configs are enabled
}

// CheckConfigs inspects the enabled allocation configs. It returns a
// Drift when their ratios do not sum to 100 percent within the
// allocation tolerance and nil when the configuration is consistent.
//
// An empty enabled set is not a drift, allocation is simply not
// configured yet.
func CheckConfigs(db *gorm.DB) (*Drift, error) {
	splits, err := models.EnabledSplits(db)
	if err != nil {
		return nil, err
	}

	if len(splits) == 0 {
		return nil, nil
	}

	sum := decimal.Zero
	for _, split := range splits {
		sum = sum.Add(split.Ratio)
	}

	if sum.Sub(decimal.NewFromInt(100)).Abs().GreaterThan(allocation.DefaultTolerance) {
		return &Drift{Sum: sum, Configs: len(splits)}, nil
	}

	return nil, nil
}

// Schedule starts the periodic config check in the background. The
// schedule is read from AUDIT_SCHEDULE and defaults to hourly. The
// returned cron needs to be stopped before the process exits.
func Schedule(db *gorm.DB) (*cron.Cron, error) {
	schedule, ok := os.LookupEnv("AUDIT_SCHEDULE")
	if !ok {
		schedule = DefaultSchedule
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		drift, err := CheckConfigs(db)
		if err != nil {
			log.Error().Err(err).Msg("Audit")
			return
		}

		if drift != nil {
			log.Warn().
				Str("sum", drift.Sum.String()).
				Int("configs", drift.Configs).
				Msg("enabled allocation configs do not sum to 100%, allocation commits will fail")
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Debug().Str("schedule", schedule).Msg("Audit")

	return c, nil
}
