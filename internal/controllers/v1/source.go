package v1

import (
	"time"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/allocation"
	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AllocationRow is one user supplied override for a commit. A row
// replaces the configured ratio of the referenced team for this
// source record only, the config itself is not touched.
type AllocationRow struct {
	TeamID uuid.UUID       `json:"teamId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the team the override applies to
	Ratio  decimal.Decimal `json:"ratio" example:"40" minimum:"0" maximum:"100"`          // The ratio to apply instead of the configured one
}

func overrides(rows []AllocationRow) map[uuid.UUID]decimal.Decimal {
	if len(rows) == 0 {
		return nil
	}

	o := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		o[row.TeamID] = row.Ratio
	}

	return o
}

// commitAllocation brings the allocation records of one source record
// in line with its current state.
//
// A record with allocation enabled gets a fresh batch computed from
// the enabled configs and the override rows, atomically replacing the
// previous batch. A record attributed to a single team gets its
// records removed.
func commitAllocation(db *gorm.DB, sourceType models.SourceType, sourceID uuid.UUID, fields models.SourceFields, rows []AllocationRow) ([]models.AllocationRecord, error) {
	if !fields.AllocationEnabled {
		err := models.DeleteAllocationRecords(db, sourceType, sourceID)
		if err != nil {
			return nil, err
		}

		return []models.AllocationRecord{}, nil
	}

	splits, err := models.EnabledSplits(db)
	if err != nil {
		return nil, err
	}

	if len(splits) == 0 {
		return nil, models.ErrNoEnabledAllocationConfig
	}

	results, err := allocation.Compute(fields.Amount, splits, overrides(rows))
	if err != nil {
		return nil, err
	}

	return models.ReplaceAllocationRecords(db, sourceType, sourceID, results, fields.Date, fields.Note)
}

// dateFilters applies day based date filters on the table passed.
// The time of the parameters is ignored, matching happens on whole
// days.
func dateFilters(q *gorm.DB, table string, date, from, until time.Time) *gorm.DB {
	if !date.IsZero() {
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		q = q.Where(table+".date >= date(?)", day).Where(table+".date < date(?)", day.AddDate(0, 0, 1))
	}

	if !from.IsZero() {
		q = q.Where(table+".date >= date(?)", time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !until.IsZero() {
		q = q.Where(table+".date < date(?)", time.Date(until.Year(), until.Month(), until.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	return q
}

// amountFilters applies the amount range filters on the table passed.
func amountFilters(q *gorm.DB, table string, lessOrEqual, moreOrEqual decimal.Decimal) *gorm.DB {
	if !lessOrEqual.IsZero() {
		q = q.Where(table+".amount <= ?", lessOrEqual)
	}

	if !moreOrEqual.IsZero() {
		q = q.Where(table+".amount >= ?", moreOrEqual)
	}

	return q
}

// newAllocationRecords converts committed records into their API
// representation for embedding into a source record response.
func newAllocationRecords(c *gin.Context, records []models.AllocationRecord) []AllocationRecord {
	data := make([]AllocationRecord, 0, len(records))
	for _, record := range records {
		data = append(data, newAllocationRecord(c, record))
	}

	return data
}
