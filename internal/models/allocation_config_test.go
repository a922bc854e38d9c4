package models_test

import (
	"testing"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAllocationConfigRatioRange() {
	team := suite.createTestTeam(models.Team{})

	tests := []struct {
		name  string
		ratio decimal.Decimal
		err   error
	}{
		{"Zero is allowed", decimal.Zero, nil},
		{"Fractional ratio", decimal.RequireFromString("33.33"), nil},
		{"Full ratio", decimal.NewFromInt(100), nil},
		{"Negative", decimal.NewFromInt(-1), models.ErrConfigRatioOutOfRange},
		{"Above 100", decimal.RequireFromString("100.01"), models.ErrConfigRatioOutOfRange},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&models.AllocationConfig{
				TeamID: team.ID,
				Ratio:  tt.ratio,
			}).Error

			if tt.err == nil {
				assert.NoError(t, err)
				// Clean up so that the unique index on the team does
				// not interfere with the next case
				models.DB.Unscoped().Where("team_id = ?", team.ID).Delete(&models.AllocationConfig{})
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationConfigTeamMissing() {
	err := models.DB.Create(&models.AllocationConfig{
		TeamID: uuid.New(),
		Ratio:  decimal.NewFromInt(50),
	}).Error

	require.NotNil(suite.T(), err)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAllocationConfigTeamUnique() {
	config := suite.createTestAllocationConfig(models.AllocationConfig{Ratio: decimal.NewFromInt(50)})

	err := models.DB.Create(&models.AllocationConfig{
		TeamID: config.TeamID,
		Ratio:  decimal.NewFromInt(30),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrAllocationConfigTeamNotUnique)
}

// TestEnabledSplits verifies that only enabled configs are part of the
// default split and that their order is stable.
func (suite *TestSuiteStandard) TestEnabledSplits() {
	ops := suite.createTestTeam(models.Team{Name: "Operations"})
	sales := suite.createTestTeam(models.Team{Name: "Sales"})
	staging := suite.createTestTeam(models.Team{Name: "Staging"})

	first := suite.createTestAllocationConfig(models.AllocationConfig{
		TeamID:  ops.ID,
		Ratio:   decimal.RequireFromString("33.33"),
		Enabled: true,
	})
	suite.createTestAllocationConfig(models.AllocationConfig{
		TeamID:  staging.ID,
		Ratio:   decimal.NewFromInt(10),
		Enabled: false,
	})
	second := suite.createTestAllocationConfig(models.AllocationConfig{
		TeamID:  sales.ID,
		Ratio:   decimal.RequireFromString("66.67"),
		Enabled: true,
	})

	splits, err := models.EnabledSplits(models.DB)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), splits, 2)

	assert.Equal(suite.T(), first.ID, splits[0].ID)
	assert.Equal(suite.T(), "Operations", splits[0].TeamName)
	assert.Equal(suite.T(), second.ID, splits[1].ID)
	assert.Equal(suite.T(), "Sales", splits[1].TeamName)
}

func (suite *TestSuiteStandard) TestEnabledSplitsEmpty() {
	splits, err := models.EnabledSplits(models.DB)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), splits)
}
