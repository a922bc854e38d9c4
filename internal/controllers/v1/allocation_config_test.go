package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/CatchMeX/mubiaoguanli-backend/internal/controllers/v1"
	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/CatchMeX/mubiaoguanli-backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAllocationConfigsCreate() {
	team := createTestTeam(suite.T(), v1.TeamEditable{Name: "Operations"})

	config := createTestAllocationConfig(suite.T(), v1.AllocationConfigEditable{
		TeamID:  team.Data.ID,
		Ratio:   decimal.NewFromFloat(33.33),
		Enabled: true,
	})

	assert.Equal(suite.T(), team.Data.ID, config.Data.TeamID)
	assert.True(suite.T(), config.Data.Ratio.Equal(decimal.NewFromFloat(33.33)), "ratio is %s", config.Data.Ratio)
	assert.True(suite.T(), config.Data.Enabled)
}

func (suite *TestSuiteStandard) TestAllocationConfigsCreateInvalid() {
	team := createTestTeam(suite.T(), v1.TeamEditable{})

	tests := []struct {
		name   string
		config v1.AllocationConfigEditable
		status int
	}{
		{"Missing team", v1.AllocationConfigEditable{TeamID: uuid.New(), Ratio: decimal.NewFromInt(50)}, http.StatusNotFound},
		{"Ratio above 100", v1.AllocationConfigEditable{TeamID: team.Data.ID, Ratio: decimal.NewFromInt(101)}, http.StatusBadRequest},
		{"Negative ratio", v1.AllocationConfigEditable{TeamID: team.Data.ID, Ratio: decimal.NewFromInt(-1)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestAllocationConfig(t, tt.config, tt.status)
		})
	}
}

// One config per team. The database enforces this so that the default
// split can never contain a team twice.
func (suite *TestSuiteStandard) TestAllocationConfigsCreateDuplicateTeam() {
	config := createTestAllocationConfig(suite.T(), v1.AllocationConfigEditable{Ratio: decimal.NewFromInt(50)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocation-configs", []v1.AllocationConfigEditable{
		{TeamID: config.Data.TeamID, Ratio: decimal.NewFromInt(10)},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.AllocationConfigCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), *response.Data[0].Error, models.ErrAllocationConfigTeamNotUnique.Error())
}

func (suite *TestSuiteStandard) TestAllocationConfigsGetFilter() {
	first, _ := createTestSplit(suite.T())
	createTestAllocationConfig(suite.T(), v1.AllocationConfigEditable{Ratio: decimal.NewFromInt(10), Note: "staged"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 3},
		{"Enabled", "enabled=true", 2},
		{"Disabled", "enabled=false", 1},
		{"Team", fmt.Sprintf("team=%s", first.Data.TeamID), 1},
		{"Note", "note=staged", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocation-configs?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.AllocationConfigListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationConfigsUpdate() {
	config := createTestAllocationConfig(suite.T(), v1.AllocationConfigEditable{Ratio: decimal.NewFromInt(50)})

	recorder := test.Request(suite.T(), http.MethodPatch, config.Data.Links.Self, map[string]any{
		"ratio":   "75",
		"enabled": true,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.AllocationConfigResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	assert.True(suite.T(), updated.Data.Ratio.Equal(decimal.NewFromInt(75)), "ratio is %s", updated.Data.Ratio)
	assert.True(suite.T(), updated.Data.Enabled)
}

func (suite *TestSuiteStandard) TestAllocationConfigsUpdateInvalidRatio() {
	config := createTestAllocationConfig(suite.T(), v1.AllocationConfigEditable{Ratio: decimal.NewFromInt(50)})

	recorder := test.Request(suite.T(), http.MethodPatch, config.Data.Links.Self, map[string]any{
		"ratio": "100.5",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAllocationConfigsDelete() {
	config := createTestAllocationConfig(suite.T(), v1.AllocationConfigEditable{Ratio: decimal.NewFromInt(50)})

	recorder := test.Request(suite.T(), http.MethodDelete, config.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, config.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
