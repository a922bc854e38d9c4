package models_test

import (
	"time"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/allocation"
	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// splitResults computes a valid result set over freshly created
// configs, one per ratio.
func (suite *TestSuiteStandard) splitResults(amount string, ratios ...string) []allocation.Result {
	configs := make([]allocation.Config, 0, len(ratios))
	for _, ratio := range ratios {
		config := suite.createTestAllocationConfig(models.AllocationConfig{
			Ratio:   decimal.RequireFromString(ratio),
			Enabled: true,
		})

		split, err := config.Split(models.DB)
		require.NoError(suite.T(), err)
		configs = append(configs, split)
	}

	results, err := allocation.Compute(decimal.RequireFromString(amount), configs, nil)
	require.NoError(suite.T(), err)
	return results
}

func (suite *TestSuiteStandard) TestSourceTypeValid() {
	tests := []struct {
		sourceType models.SourceType
		valid      bool
	}{
		{models.SourceTypeCost, true},
		{models.SourceTypeExpense, true},
		{models.SourceTypeRevenue, true},
		{models.SourceTypeFinancialMatter, true},
		{models.SourceType("transaction"), false},
		{models.SourceType(""), false},
	}

	for _, tt := range tests {
		assert.Equal(suite.T(), tt.valid, tt.sourceType.Valid(), "source type %q", tt.sourceType)
	}
}

func (suite *TestSuiteStandard) TestReplaceAllocationRecordsCreate() {
	cost := suite.createTestCost(models.CostRecord{
		SourceFields: models.SourceFields{
			Amount:            decimal.NewFromInt(1000),
			AllocationEnabled: true,
		},
	})

	results := suite.splitResults("1000", "60", "40")

	records, err := models.ReplaceAllocationRecords(models.DB, models.SourceTypeCost, cost.ID, results, time.Now(), "split for Q3")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), records, 2)

	assert.True(suite.T(), records[0].Amount.Equal(decimal.NewFromInt(600)))
	assert.True(suite.T(), records[1].Amount.Equal(decimal.NewFromInt(400)))
	assert.Equal(suite.T(), "split for Q3", records[0].Note)
	assert.Equal(suite.T(), models.SourceTypeCost, records[0].SourceType)

	stored, err := cost.AllocationRecords(models.DB)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), stored, 2)
}

// TestReplaceAllocationRecordsUpdate verifies the replace-all update
// path: committing a new three row split over an existing two row one
// leaves exactly the three new records.
func (suite *TestSuiteStandard) TestReplaceAllocationRecordsUpdate() {
	cost := suite.createTestCost(models.CostRecord{
		SourceFields: models.SourceFields{
			Amount:            decimal.NewFromInt(500),
			AllocationEnabled: true,
		},
	})

	previous, err := models.ReplaceAllocationRecords(models.DB, models.SourceTypeCost, cost.ID, suite.splitResults("500", "50", "50"), time.Now(), "")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), previous, 2)

	current, err := models.ReplaceAllocationRecords(models.DB, models.SourceTypeCost, cost.ID, suite.splitResults("500", "20", "30", "50"), time.Now(), "")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), current, 3)

	stored, err := cost.AllocationRecords(models.DB)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), stored, 3)

	previousIDs := []uuid.UUID{previous[0].ID, previous[1].ID}
	for _, record := range stored {
		assert.NotContains(suite.T(), previousIDs, record.ID)
	}
}

// TestReplaceAllocationRecordsInvalidSum verifies that the commit path
// is gated on ratio validation and writes nothing for an invalid set.
func (suite *TestSuiteStandard) TestReplaceAllocationRecordsInvalidSum() {
	cost := suite.createTestCost(models.CostRecord{
		SourceFields: models.SourceFields{
			Amount:            decimal.NewFromInt(500),
			AllocationEnabled: true,
		},
	})

	_, err := models.ReplaceAllocationRecords(models.DB, models.SourceTypeCost, cost.ID, suite.splitResults("500", "60", "50"), time.Now(), "")
	require.ErrorIs(suite.T(), err, allocation.ErrRatioSumInvalid)
	assert.Contains(suite.T(), err.Error(), "110")

	stored, err := cost.AllocationRecords(models.DB)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), stored)
}

// TestReplaceAllocationRecordsRollback verifies that a failing write
// inside the replace keeps the previous batch intact.
func (suite *TestSuiteStandard) TestReplaceAllocationRecordsRollback() {
	cost := suite.createTestCost(models.CostRecord{
		SourceFields: models.SourceFields{
			Amount:            decimal.NewFromInt(500),
			AllocationEnabled: true,
		},
	})

	previous, err := models.ReplaceAllocationRecords(models.DB, models.SourceTypeCost, cost.ID, suite.splitResults("500", "100"), time.Now(), "")
	require.NoError(suite.T(), err)

	// A negative amount passes ratio validation but is rejected by the
	// record hook, so the create fails after the delete
	invalid := []allocation.Result{{
		ConfigID: previous[0].ConfigID,
		TeamID:   previous[0].TeamID,
		Ratio:    decimal.NewFromInt(100),
		Amount:   decimal.NewFromInt(-1),
	}}

	_, err = models.ReplaceAllocationRecords(models.DB, models.SourceTypeCost, cost.ID, invalid, time.Now(), "")
	require.ErrorIs(suite.T(), err, models.ErrAllocationReplace)

	stored, err := cost.AllocationRecords(models.DB)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), stored, 1)
	assert.Equal(suite.T(), previous[0].ID, stored[0].ID)
}

func (suite *TestSuiteStandard) TestReplaceAllocationRecordsSourceType() {
	_, err := models.ReplaceAllocationRecords(models.DB, models.SourceType("budget"), uuid.New(), nil, time.Now(), "")
	assert.ErrorIs(suite.T(), err, models.ErrSourceTypeInvalid)
}

func (suite *TestSuiteStandard) TestDeleteAllocationRecords() {
	cost := suite.createTestCost(models.CostRecord{
		SourceFields: models.SourceFields{
			Amount:            decimal.NewFromInt(500),
			AllocationEnabled: true,
		},
	})

	_, err := models.ReplaceAllocationRecords(models.DB, models.SourceTypeCost, cost.ID, suite.splitResults("500", "100"), time.Now(), "")
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), models.DeleteAllocationRecords(models.DB, models.SourceTypeCost, cost.ID))

	stored, err := cost.AllocationRecords(models.DB)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), stored)
}
