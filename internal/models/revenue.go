package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// RevenueRecord represents a single revenue entry.
type RevenueRecord struct {
	DefaultModel
	SourceFields
	Category string
}

// BeforeSave normalizes the record and verifies its fields.
func (r *RevenueRecord) BeforeSave(_ *gorm.DB) error {
	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		return ErrSourceCategoryRequired
	}

	return r.normalize()
}

func (r *RevenueRecord) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	if toSave, ok := tx.Statement.Dest.(*RevenueRecord); ok {
		return toSave.checkTeam(tx)
	}

	return r.checkTeam(tx)
}

// BeforeUpdate verifies the state the update produces, including
// the exclusivity of split and single team attribution.
func (r *RevenueRecord) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(RevenueRecord)
	if !ok {
		return r.checkTeam(tx)
	}

	if tx.Statement.Changed("Category") {
		category := strings.TrimSpace(toSave.Category)
		if category == "" {
			return ErrSourceCategoryRequired
		}

		tx.Statement.SetColumn("Category", category)
	}

	return r.SourceFields.checkUpdate(tx, toSave.SourceFields)
}

// AfterFind updates the timestamps to use UTC as timezone.
func (r *RevenueRecord) AfterFind(tx *gorm.DB) error {
	_ = r.DefaultModel.AfterFind(tx)

	r.Date = r.Date.In(time.UTC)
	return nil
}

// AfterDelete removes the allocation records owned by the revenue, a
// deleted source record must not leave orphaned allocation rows.
func (r *RevenueRecord) AfterDelete(tx *gorm.DB) error {
	return DeleteAllocationRecords(tx, SourceTypeRevenue, r.ID)
}

// AllocationRecords returns the committed allocation rows of the
// revenue.
func (r RevenueRecord) AllocationRecords(db *gorm.DB) ([]AllocationRecord, error) {
	return AllocationRecordsForSource(db, SourceTypeRevenue, r.ID)
}
