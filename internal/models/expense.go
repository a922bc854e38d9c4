package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ExpenseRecord represents a single reimbursable expense entry.
type ExpenseRecord struct {
	DefaultModel
	SourceFields
	Category string
}

// BeforeSave normalizes the record and verifies its fields.
func (e *ExpenseRecord) BeforeSave(_ *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	if e.Category == "" {
		return ErrSourceCategoryRequired
	}

	return e.normalize()
}

func (e *ExpenseRecord) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	if toSave, ok := tx.Statement.Dest.(*ExpenseRecord); ok {
		return toSave.checkTeam(tx)
	}

	return e.checkTeam(tx)
}

// BeforeUpdate verifies the state the update produces, including
// the exclusivity of split and single team attribution.
func (e *ExpenseRecord) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(ExpenseRecord)
	if !ok {
		return e.checkTeam(tx)
	}

	if tx.Statement.Changed("Category") {
		category := strings.TrimSpace(toSave.Category)
		if category == "" {
			return ErrSourceCategoryRequired
		}

		tx.Statement.SetColumn("Category", category)
	}

	return e.SourceFields.checkUpdate(tx, toSave.SourceFields)
}

// AfterFind updates the timestamps to use UTC as timezone.
func (e *ExpenseRecord) AfterFind(tx *gorm.DB) error {
	_ = e.DefaultModel.AfterFind(tx)

	e.Date = e.Date.In(time.UTC)
	return nil
}

// AfterDelete removes the allocation records owned by the expense, a
// deleted source record must not leave orphaned allocation rows.
func (e *ExpenseRecord) AfterDelete(tx *gorm.DB) error {
	return DeleteAllocationRecords(tx, SourceTypeExpense, e.ID)
}

// AllocationRecords returns the committed allocation rows of the
// expense.
func (e ExpenseRecord) AllocationRecords(db *gorm.DB) ([]AllocationRecord, error) {
	return AllocationRecordsForSource(db, SourceTypeExpense, e.ID)
}
