package models

import (
	"strings"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/allocation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AllocationConfig is an admin managed default split policy for one
// team.
//
// The set of enabled configs at any given time is the default split
// for new allocations. Ratios among enabled configs are not required
// to sum to 100 at rest, validation happens at allocation time. This
// gives operators freedom to stage configs before activating them all.
type AllocationConfig struct {
	DefaultModel
	Team    Team            `json:"-"`
	TeamID  uuid.UUID       `gorm:"uniqueIndex:allocation_config_team"`
	Ratio   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Percentage share, 0 to 100, fractions allowed
	Enabled bool
	Note    string
}

// BeforeSave trims whitespace and verifies the ratio range.
func (a *AllocationConfig) BeforeSave(_ *gorm.DB) error {
	a.Note = strings.TrimSpace(a.Note)

	if a.Ratio.IsNegative() || a.Ratio.GreaterThan(decimal.NewFromInt(100)) {
		return ErrConfigRatioOutOfRange
	}

	return nil
}

func (a *AllocationConfig) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	if toSave, ok := tx.Statement.Dest.(*AllocationConfig); ok {
		return a.checkIntegrity(tx, *toSave)
	}

	return a.checkIntegrity(tx, *a)
}

// BeforeUpdate verifies the state of the config before committing an
// update to the database. Gorm hooks run on the stored record, the
// new values only appear in the statement destination.
func (a *AllocationConfig) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(AllocationConfig)
	if !ok {
		return a.checkIntegrity(tx, *a)
	}

	if tx.Statement.Changed("Ratio") && (toSave.Ratio.IsNegative() || toSave.Ratio.GreaterThan(decimal.NewFromInt(100))) {
		return ErrConfigRatioOutOfRange
	}

	if tx.Statement.Changed("TeamID") {
		return a.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (a *AllocationConfig) checkIntegrity(tx *gorm.DB, toSave AllocationConfig) error {
	return tx.First(&Team{}, toSave.TeamID).Error
}

// Split returns the engine representation of the config.
func (a AllocationConfig) Split(db *gorm.DB) (allocation.Config, error) {
	var team Team
	err := db.First(&team, a.TeamID).Error
	if err != nil {
		return allocation.Config{}, err
	}

	return allocation.Config{
		ID:       a.ID,
		TeamID:   a.TeamID,
		TeamName: team.Name,
		Ratio:    a.Ratio,
		Enabled:  a.Enabled,
	}, nil
}

// EnabledSplits returns the default split for new allocations: the
// engine representation of the enabled allocation configs, in their
// stored order.
func EnabledSplits(db *gorm.DB) ([]allocation.Config, error) {
	var configs []AllocationConfig
	err := db.Order("created_at ASC").Find(&configs).Error
	if err != nil {
		return nil, err
	}

	splits := make([]allocation.Config, 0, len(configs))
	for _, config := range configs {
		split, err := config.Split(db)
		if err != nil {
			return nil, err
		}

		splits = append(splits, split)
	}

	return allocation.Resolve(splits), nil
}
