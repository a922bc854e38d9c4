package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// FinancialMatter represents a financial matter, a catch-all business
// record for amounts that are neither cost, expense nor revenue but
// still need team attribution, e.g. inter-departmental settlements.
type FinancialMatter struct {
	DefaultModel
	SourceFields
	Title string
}

// BeforeSave normalizes the record and verifies its fields.
func (f *FinancialMatter) BeforeSave(_ *gorm.DB) error {
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return ErrSourceTitleRequired
	}

	return f.normalize()
}

func (f *FinancialMatter) BeforeCreate(tx *gorm.DB) error {
	_ = f.DefaultModel.BeforeCreate(tx)

	if toSave, ok := tx.Statement.Dest.(*FinancialMatter); ok {
		return toSave.checkTeam(tx)
	}

	return f.checkTeam(tx)
}

// BeforeUpdate verifies the state the update produces, including
// the exclusivity of split and single team attribution.
func (f *FinancialMatter) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(FinancialMatter)
	if !ok {
		return f.checkTeam(tx)
	}

	if tx.Statement.Changed("Title") {
		title := strings.TrimSpace(toSave.Title)
		if title == "" {
			return ErrSourceTitleRequired
		}

		tx.Statement.SetColumn("Title", title)
	}

	return f.SourceFields.checkUpdate(tx, toSave.SourceFields)
}

// AfterFind updates the timestamps to use UTC as timezone.
func (f *FinancialMatter) AfterFind(tx *gorm.DB) error {
	_ = f.DefaultModel.AfterFind(tx)

	f.Date = f.Date.In(time.UTC)
	return nil
}

// AfterDelete removes the allocation records owned by the matter, a
// deleted source record must not leave orphaned allocation rows.
func (f *FinancialMatter) AfterDelete(tx *gorm.DB) error {
	return DeleteAllocationRecords(tx, SourceTypeFinancialMatter, f.ID)
}

// AllocationRecords returns the committed allocation rows of the
// matter.
func (f FinancialMatter) AllocationRecords(db *gorm.DB) ([]AllocationRecord, error) {
	return AllocationRecordsForSource(db, SourceTypeFinancialMatter, f.ID)
}
