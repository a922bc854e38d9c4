package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// CostRecord represents a single cost entry.
type CostRecord struct {
	DefaultModel
	SourceFields
	Category string
}

// BeforeSave normalizes the record and verifies its fields.
func (c *CostRecord) BeforeSave(_ *gorm.DB) error {
	c.Category = strings.TrimSpace(c.Category)
	if c.Category == "" {
		return ErrSourceCategoryRequired
	}

	return c.normalize()
}

func (c *CostRecord) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	if toSave, ok := tx.Statement.Dest.(*CostRecord); ok {
		return toSave.checkTeam(tx)
	}

	return c.checkTeam(tx)
}

// BeforeUpdate verifies the state the update produces, including
// the exclusivity of split and single team attribution.
func (c *CostRecord) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(CostRecord)
	if !ok {
		return c.checkTeam(tx)
	}

	if tx.Statement.Changed("Category") {
		category := strings.TrimSpace(toSave.Category)
		if category == "" {
			return ErrSourceCategoryRequired
		}

		tx.Statement.SetColumn("Category", category)
	}

	return c.SourceFields.checkUpdate(tx, toSave.SourceFields)
}

// AfterFind updates the timestamps to use UTC as timezone.
func (c *CostRecord) AfterFind(tx *gorm.DB) error {
	_ = c.DefaultModel.AfterFind(tx)

	c.Date = c.Date.In(time.UTC)
	return nil
}

// AfterDelete removes the allocation records owned by the cost, a
// deleted source record must not leave orphaned allocation rows.
func (c *CostRecord) AfterDelete(tx *gorm.DB) error {
	return DeleteAllocationRecords(tx, SourceTypeCost, c.ID)
}

// AllocationRecords returns the committed allocation rows of the cost.
func (c CostRecord) AllocationRecords(db *gorm.DB) ([]AllocationRecord, error) {
	return AllocationRecordsForSource(db, SourceTypeCost, c.ID)
}
