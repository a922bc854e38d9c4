package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/allocation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SourceType is the kind of business record an allocation belongs to.
type SourceType string

const (
	SourceTypeCost            SourceType = "cost"
	SourceTypeExpense         SourceType = "expense"
	SourceTypeRevenue         SourceType = "revenue"
	SourceTypeFinancialMatter SourceType = "financial_matter"
)

// Valid reports whether the source type is part of the closed set.
func (s SourceType) Valid() bool {
	switch s {
	case SourceTypeCost, SourceTypeExpense, SourceTypeRevenue, SourceTypeFinancialMatter:
		return true
	}

	return false
}

// AllocationRecord is the durable, per team outcome of a committed
// allocation. One source record owns one record per team of its split.
//
// Records are only ever written as a full batch and replaced as a full
// batch. Individual rows are never patched in place.
type AllocationRecord struct {
	DefaultModel
	SourceType SourceType       `gorm:"index:allocation_record_source;check:source_type_valid,source_type IN ('cost', 'expense', 'revenue', 'financial_matter')"`
	SourceID   uuid.UUID        `gorm:"index:allocation_record_source"`
	Config     AllocationConfig `json:"-"`
	ConfigID   uuid.UUID
	Team       Team            `json:"-"`
	TeamID     uuid.UUID       // Denormalized from the config for reads
	Ratio      decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The share that was applied, captured at commit time
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date       time.Time
	Note       string
}

// BeforeSave normalizes the record and verifies its fields.
func (a *AllocationRecord) BeforeSave(_ *gorm.DB) error {
	a.Note = strings.TrimSpace(a.Note)

	if !a.SourceType.Valid() {
		return ErrSourceTypeInvalid
	}

	if a.Amount.IsNegative() {
		return ErrAllocationNegative
	}

	if a.Date.IsZero() {
		a.Date = time.Now().In(time.UTC)
	} else {
		a.Date = a.Date.In(time.UTC)
	}

	return nil
}

// AllocationRecordsForSource returns the committed allocation rows of
// one source record, used to rehydrate edit forms.
func AllocationRecordsForSource(db *gorm.DB, sourceType SourceType, sourceID uuid.UUID) ([]AllocationRecord, error) {
	var records []AllocationRecord
	err := db.
		Where(&AllocationRecord{SourceType: sourceType, SourceID: sourceID}).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// ReplaceAllocationRecords deletes all allocation records of the
// source record and writes one fresh record per result row.
//
// Delete and create run in a single transaction: a failed replace
// rolls back fully, so a source record never ends up with a partial
// or duplicated batch. The result set must validate before anything
// is written.
func ReplaceAllocationRecords(db *gorm.DB, sourceType SourceType, sourceID uuid.UUID, results []allocation.Result, date time.Time, note string) ([]AllocationRecord, error) {
	if !sourceType.Valid() {
		return nil, ErrSourceTypeInvalid
	}

	err := allocation.ValidateRatios(results, allocation.DefaultTolerance)
	if err != nil {
		return nil, err
	}

	records := make([]AllocationRecord, 0, len(results))
	for _, result := range results {
		records = append(records, AllocationRecord{
			SourceType: sourceType,
			SourceID:   sourceID,
			ConfigID:   result.ConfigID,
			TeamID:     result.TeamID,
			Ratio:      result.Ratio,
			Amount:     result.Amount,
			Date:       date,
			Note:       note,
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where(&AllocationRecord{SourceType: sourceType, SourceID: sourceID}).
			Delete(&AllocationRecord{}).Error
		if err != nil {
			return err
		}

		return tx.Create(&records).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAllocationReplace, err)
	}

	return records, nil
}

// DeleteAllocationRecords removes all allocation records of the source
// record, used when a record transitions back to single team mode and
// when it is deleted.
func DeleteAllocationRecords(db *gorm.DB, sourceType SourceType, sourceID uuid.UUID) error {
	return db.
		Where(&AllocationRecord{SourceType: sourceType, SourceID: sourceID}).
		Delete(&AllocationRecord{}).Error
}
