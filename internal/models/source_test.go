package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSourceFieldValidation() {
	team := suite.createTestTeam(models.Team{})

	tests := []struct {
		name string
		cost models.CostRecord
		err  error
	}{
		{
			"Valid single team record",
			models.CostRecord{
				Category:     "Hosting",
				SourceFields: models.SourceFields{Amount: decimal.NewFromInt(10), Note: "Server rent", TeamID: &team.ID},
			},
			nil,
		},
		{
			"Negative amount",
			models.CostRecord{
				Category:     "Hosting",
				SourceFields: models.SourceFields{Amount: decimal.NewFromInt(-1), Note: "Server rent", TeamID: &team.ID},
			},
			models.ErrSourceAmountNegative,
		},
		{
			"Missing description",
			models.CostRecord{
				Category:     "Hosting",
				SourceFields: models.SourceFields{Amount: decimal.NewFromInt(10), Note: "  ", TeamID: &team.ID},
			},
			models.ErrSourceNoteRequired,
		},
		{
			"Missing category",
			models.CostRecord{
				SourceFields: models.SourceFields{Amount: decimal.NewFromInt(10), Note: "Server rent", TeamID: &team.ID},
			},
			models.ErrSourceCategoryRequired,
		},
		{
			"Team set on split record",
			models.CostRecord{
				Category:     "Hosting",
				SourceFields: models.SourceFields{Amount: decimal.NewFromInt(10), Note: "Server rent", AllocationEnabled: true, TeamID: &team.ID},
			},
			models.ErrSourceTeamWithAllocation,
		},
		{
			"Neither team nor split",
			models.CostRecord{
				Category:     "Hosting",
				SourceFields: models.SourceFields{Amount: decimal.NewFromInt(10), Note: "Server rent"},
			},
			models.ErrSourceTeamRequired,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.cost).Error
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestFinancialMatterTitleRequired() {
	team := suite.createTestTeam(models.Team{})

	err := models.DB.Create(&models.FinancialMatter{
		SourceFields: models.SourceFields{Amount: decimal.NewFromInt(10), Note: "Settlement", TeamID: &team.ID},
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrSourceTitleRequired)
}

func (suite *TestSuiteStandard) TestSourceTeamMissing() {
	missing := uuid.New()

	err := models.DB.Create(&models.ExpenseRecord{
		Category:     "Travel",
		SourceFields: models.SourceFields{Amount: decimal.NewFromInt(10), Note: "Taxi", TeamID: &missing},
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSourceTrimWhitespace() {
	team := suite.createTestTeam(models.Team{})

	note := " Whitespace    "
	category := "  There is whitespace here  \t"

	cost := suite.createTestCost(models.CostRecord{
		Category:     category,
		SourceFields: models.SourceFields{Amount: decimal.NewFromInt(10), Note: note, TeamID: &team.ID},
	})

	assert.Equal(suite.T(), strings.TrimSpace(category), cost.Category)
	assert.Equal(suite.T(), strings.TrimSpace(note), cost.Note)
}

// TestSourceDisableAllocation verifies the transition from a split
// record to single team attribution: the allocation records are
// removed and the team reference is set.
func (suite *TestSuiteStandard) TestSourceDisableAllocation() {
	team := suite.createTestTeam(models.Team{Name: "T9"})

	matter := suite.createTestFinancialMatter(models.FinancialMatter{
		SourceFields: models.SourceFields{
			Amount:            decimal.NewFromInt(300),
			AllocationEnabled: true,
		},
	})

	_, err := models.ReplaceAllocationRecords(models.DB, models.SourceTypeFinancialMatter, matter.ID, suite.splitResults("300", "33.33", "33.33", "33.34"), time.Now(), "")
	require.NoError(suite.T(), err)

	// Switch to single team mode
	require.NoError(suite.T(), models.DeleteAllocationRecords(models.DB, models.SourceTypeFinancialMatter, matter.ID))
	matter.AllocationEnabled = false
	matter.TeamID = &team.ID
	require.NoError(suite.T(), models.DB.Save(&matter).Error)

	var reloaded models.FinancialMatter
	require.NoError(suite.T(), models.DB.First(&reloaded, matter.ID).Error)

	require.NotNil(suite.T(), reloaded.TeamID)
	assert.Equal(suite.T(), team.ID, *reloaded.TeamID)
	assert.False(suite.T(), reloaded.AllocationEnabled)

	records, err := reloaded.AllocationRecords(models.DB)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), records)
}

// TestSourceDeleteCascades verifies that deleting a source record
// removes its allocation records.
func (suite *TestSuiteStandard) TestSourceDeleteCascades() {
	cost := suite.createTestCost(models.CostRecord{
		SourceFields: models.SourceFields{
			Amount:            decimal.NewFromInt(100),
			AllocationEnabled: true,
		},
	})

	_, err := models.ReplaceAllocationRecords(models.DB, models.SourceTypeCost, cost.ID, suite.splitResults("100", "100"), time.Now(), "")
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), models.DB.Delete(&cost).Error)

	records, err := models.AllocationRecordsForSource(models.DB, models.SourceTypeCost, cost.ID)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), records)
}
