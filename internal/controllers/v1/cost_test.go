package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/allocation"
	v1 "github.com/CatchMeX/mubiaoguanli-backend/internal/controllers/v1"
	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/CatchMeX/mubiaoguanli-backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCostsCreateSingleTeam() {
	team := createTestTeam(suite.T(), v1.TeamEditable{Name: "Infrastructure"})
	cost := createTestCost(suite.T(), v1.CostEditable{
		Category: "Hosting",
		Amount:   decimal.NewFromFloat(129.99),
		TeamID:   &team.Data.ID,
	})

	assert.Equal(suite.T(), "Hosting", cost.Data.Category)
	assert.False(suite.T(), cost.Data.AllocationEnabled)
	assert.Equal(suite.T(), team.Data.ID, *cost.Data.TeamID)
	assert.Empty(suite.T(), cost.Data.Allocations)
	assert.Contains(suite.T(), cost.Data.Links.Team, team.Data.ID.String())
}

// A split cost is allocated proportionally across the enabled configs
// when it is created.
func (suite *TestSuiteStandard) TestCostsCreateSplit() {
	first, second := createTestSplit(suite.T())

	cost := createTestCost(suite.T(), v1.CostEditable{
		Amount:            decimal.NewFromInt(1000),
		AllocationEnabled: true,
	})

	require.Len(suite.T(), cost.Data.Allocations, 2)
	assert.Nil(suite.T(), cost.Data.TeamID)
	assert.Empty(suite.T(), cost.Data.Links.Team)

	byTeam := make(map[uuid.UUID]v1.AllocationRecord)
	for _, record := range cost.Data.Allocations {
		byTeam[record.TeamID] = record
	}

	assert.True(suite.T(), byTeam[first.Data.TeamID].Amount.Equal(decimal.NewFromInt(600)), "amount is %s", byTeam[first.Data.TeamID].Amount)
	assert.True(suite.T(), byTeam[second.Data.TeamID].Amount.Equal(decimal.NewFromInt(400)), "amount is %s", byTeam[second.Data.TeamID].Amount)
	assert.True(suite.T(), byTeam[first.Data.TeamID].Ratio.Equal(decimal.NewFromInt(60)))
	assert.Equal(suite.T(), first.Data.ID, byTeam[first.Data.TeamID].ConfigID)
}

// Allocated amounts are rounded to two decimal places, half up.
func (suite *TestSuiteStandard) TestCostsCreateSplitRounding() {
	first, _ := createTestSplit(suite.T())

	cost := createTestCost(suite.T(), v1.CostEditable{
		Amount:            decimal.NewFromFloat(0.01),
		AllocationEnabled: true,
	})

	require.Len(suite.T(), cost.Data.Allocations, 2)
	byTeam := make(map[uuid.UUID]v1.AllocationRecord)
	for _, record := range cost.Data.Allocations {
		byTeam[record.TeamID] = record
	}

	// 0.01 * 60% = 0.006, rounds up to 0.01
	assert.True(suite.T(), byTeam[first.Data.TeamID].Amount.Equal(decimal.NewFromFloat(0.01)), "amount is %s", byTeam[first.Data.TeamID].Amount)
}

// Override rows replace the configured ratios for this cost only.
func (suite *TestSuiteStandard) TestCostsCreateSplitOverrides() {
	first, second := createTestSplit(suite.T())

	cost := createTestCost(suite.T(), v1.CostEditable{
		Amount:            decimal.NewFromInt(1000),
		AllocationEnabled: true,
		Allocations: []v1.AllocationRow{
			{TeamID: first.Data.TeamID, Ratio: decimal.NewFromInt(50)},
			{TeamID: second.Data.TeamID, Ratio: decimal.NewFromInt(50)},
		},
	})

	require.Len(suite.T(), cost.Data.Allocations, 2)
	for _, record := range cost.Data.Allocations {
		assert.True(suite.T(), record.Amount.Equal(decimal.NewFromInt(500)), "amount is %s", record.Amount)
	}

	// The configs keep their stored ratios
	recorder := test.Request(suite.T(), http.MethodGet, first.Data.Links.Self, "")
	var config v1.AllocationConfigResponse
	test.DecodeResponse(suite.T(), &recorder, &config)
	assert.True(suite.T(), config.Data.Ratio.Equal(decimal.NewFromInt(60)))
}

// When the override ratios do not sum to 100%, the cost is persisted
// but no allocation records are written. The response carries both the
// created cost and the error so that the caller can fix the split.
func (suite *TestSuiteStandard) TestCostsCreateSplitInvalidSum() {
	first, _ := createTestSplit(suite.T())

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/costs", []v1.CostEditable{
		{
			Category:          "Testing",
			Note:              "bad override",
			Amount:            decimal.NewFromInt(1000),
			AllocationEnabled: true,
			Allocations: []v1.AllocationRow{
				{TeamID: first.Data.TeamID, Ratio: decimal.NewFromInt(50)},
			},
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.CostCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)
	require.NotNil(suite.T(), response.Data[0].Error)
	assert.Contains(suite.T(), *response.Data[0].Error, allocation.ErrRatioSumInvalid.Error())
	assert.Contains(suite.T(), *response.Data[0].Error, "90")

	// The cost exists, its batch does not
	recorder = test.Request(suite.T(), http.MethodGet, response.Data[0].Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, response.Data[0].Data.Links.AllocationRecords, "")
	var records v1.AllocationRecordListResponse
	test.DecodeResponse(suite.T(), &recorder, &records)
	assert.Empty(suite.T(), records.Data)
}

// A split cost cannot be committed before any allocation config is
// enabled.
func (suite *TestSuiteStandard) TestCostsCreateSplitNoConfigs() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/costs", []v1.CostEditable{
		{
			Category:          "Testing",
			Note:              "no configs yet",
			Amount:            decimal.NewFromInt(100),
			AllocationEnabled: true,
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.CostCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Error)
	assert.Contains(suite.T(), *response.Data[0].Error, models.ErrNoEnabledAllocationConfig.Error())
}

func (suite *TestSuiteStandard) TestCostsCreateInvalid() {
	team := createTestTeam(suite.T(), v1.TeamEditable{})

	tests := []struct {
		name string
		cost v1.CostEditable
	}{
		{"Team and split", v1.CostEditable{Category: "Testing", Note: "both", Amount: decimal.NewFromInt(1), TeamID: &team.Data.ID, AllocationEnabled: true}},
		{"Neither team nor split", v1.CostEditable{Category: "Testing", Note: "neither", Amount: decimal.NewFromInt(1)}},
		{"Negative amount", v1.CostEditable{Category: "Testing", Note: "negative", Amount: decimal.NewFromInt(-1), TeamID: &team.Data.ID}},
		{"Missing category", v1.CostEditable{Note: "no category", Amount: decimal.NewFromInt(1), TeamID: &team.Data.ID}},
		{"Missing note", v1.CostEditable{Category: "Testing", Amount: decimal.NewFromInt(1), TeamID: &team.Data.ID}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/costs", []v1.CostEditable{tt.cost})
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCostsGetSingle() {
	createTestSplit(suite.T())
	cost := createTestCost(suite.T(), v1.CostEditable{
		Amount:            decimal.NewFromInt(100),
		AllocationEnabled: true,
	})

	recorder := test.Request(suite.T(), http.MethodGet, cost.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CostResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), cost.Data.ID, response.Data.ID)
	assert.Len(suite.T(), response.Data.Allocations, 2)
}

func (suite *TestSuiteStandard) TestCostsGetFilter() {
	team := createTestTeam(suite.T(), v1.TeamEditable{})
	date := time.Date(2024, 2, 17, 12, 0, 0, 0, time.UTC)

	createTestCost(suite.T(), v1.CostEditable{Category: "Hosting", Note: "primary region", Amount: decimal.NewFromInt(100), Date: date, TeamID: &team.Data.ID})
	createTestCost(suite.T(), v1.CostEditable{Category: "Hosting", Note: "secondary region", Amount: decimal.NewFromInt(250), Date: date.AddDate(0, 1, 0)})
	createTestCost(suite.T(), v1.CostEditable{Category: "Tooling", Note: "code search", Amount: decimal.NewFromInt(500), Date: date.AddDate(0, 2, 0)})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Category", "category=Hosting", 2},
		{"Note", "note=code search", 1},
		{"Search", "search=region", 2},
		{"Team", fmt.Sprintf("team=%s", team.Data.ID), 1},
		{"Amount", "amount=250", 1},
		{"Amount less or equal", "amountLessOrEqual=250", 2},
		{"Amount more or equal", "amountMoreOrEqual=250", 2},
		{"Date", "date=2024-02-17T00:00:00Z", 1},
		{"From date", "fromDate=2024-03-01T00:00:00Z", 2},
		{"Until date", "untilDate=2024-03-31T00:00:00Z", 2},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=1", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/costs?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.CostListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

// Updating a split cost recomputes its batch. The previous records are
// replaced, never patched.
func (suite *TestSuiteStandard) TestCostsUpdateRecompute() {
	createTestSplit(suite.T())
	cost := createTestCost(suite.T(), v1.CostEditable{
		Amount:            decimal.NewFromInt(1000),
		AllocationEnabled: true,
	})

	previous := make(map[uuid.UUID]bool)
	for _, record := range cost.Data.Allocations {
		previous[record.ID] = true
	}

	recorder := test.Request(suite.T(), http.MethodPatch, cost.Data.Links.Self, map[string]any{
		"amount": "2000",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.CostResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)

	require.Len(suite.T(), updated.Data.Allocations, 2)
	amounts := make(map[string]bool)
	for _, record := range updated.Data.Allocations {
		assert.False(suite.T(), previous[record.ID], "record %s survived the replace", record.ID)
		amounts[record.Amount.String()] = true
	}

	assert.True(suite.T(), amounts["1200"], "amounts are %v", amounts)
	assert.True(suite.T(), amounts["800"], "amounts are %v", amounts)
}

// Disabling allocation on a cost removes its batch.
func (suite *TestSuiteStandard) TestCostsUpdateDisableAllocation() {
	createTestSplit(suite.T())
	team := createTestTeam(suite.T(), v1.TeamEditable{})

	cost := createTestCost(suite.T(), v1.CostEditable{
		Amount:            decimal.NewFromInt(1000),
		AllocationEnabled: true,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, cost.Data.Links.Self, map[string]any{
		"allocationEnabled": false,
		"teamId":            team.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.CostResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	assert.Empty(suite.T(), updated.Data.Allocations)

	recorder = test.Request(suite.T(), http.MethodGet, cost.Data.Links.AllocationRecords, "")
	var records v1.AllocationRecordListResponse
	test.DecodeResponse(suite.T(), &recorder, &records)
	assert.Empty(suite.T(), records.Data)
}

// Attributing a split cost to a single team requires disabling the
// split in the same update.
func (suite *TestSuiteStandard) TestCostsUpdateTeamOnSplit() {
	createTestSplit(suite.T())
	team := createTestTeam(suite.T(), v1.TeamEditable{})

	cost := createTestCost(suite.T(), v1.CostEditable{
		Amount:            decimal.NewFromInt(100),
		AllocationEnabled: true,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, cost.Data.Links.Self, map[string]any{
		"teamId": team.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.CostResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, models.ErrSourceTeamWithAllocation.Error())
}

// Update values are validated before they are written, the checks on
// the stored record alone do not catch them.
func (suite *TestSuiteStandard) TestCostsUpdateNegativeAmount() {
	cost := createTestCost(suite.T(), v1.CostEditable{Amount: decimal.NewFromInt(100)})

	recorder := test.Request(suite.T(), http.MethodPatch, cost.Data.Links.Self, map[string]any{
		"amount": "-5",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.CostResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, models.ErrSourceAmountNegative.Error())

	recorder = test.Request(suite.T(), http.MethodGet, cost.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(100)), "amount is %s", response.Data.Amount)
}

func (suite *TestSuiteStandard) TestCostsUpdateBlankNote() {
	cost := createTestCost(suite.T(), v1.CostEditable{Amount: decimal.NewFromInt(100)})

	recorder := test.Request(suite.T(), http.MethodPatch, cost.Data.Links.Self, map[string]any{
		"note": "   ",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.CostResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, models.ErrSourceNoteRequired.Error())
}

func (suite *TestSuiteStandard) TestCostsUpdateTrimsNote() {
	cost := createTestCost(suite.T(), v1.CostEditable{Amount: decimal.NewFromInt(100)})

	recorder := test.Request(suite.T(), http.MethodPatch, cost.Data.Links.Self, map[string]any{
		"note": "  reviewed by finance  ",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CostResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "reviewed by finance", response.Data.Note)
}

func (suite *TestSuiteStandard) TestCostsUpdateBlankCategory() {
	cost := createTestCost(suite.T(), v1.CostEditable{Amount: decimal.NewFromInt(100)})

	recorder := test.Request(suite.T(), http.MethodPatch, cost.Data.Links.Self, map[string]any{
		"category": " ",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.CostResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, models.ErrSourceCategoryRequired.Error())
}

// A failed recompute on update keeps the previous batch in place.
func (suite *TestSuiteStandard) TestCostsUpdateInvalidSumKeepsBatch() {
	first, _ := createTestSplit(suite.T())
	cost := createTestCost(suite.T(), v1.CostEditable{
		Amount:            decimal.NewFromInt(1000),
		AllocationEnabled: true,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, cost.Data.Links.Self, map[string]any{
		"allocations": []v1.AllocationRow{
			{TeamID: first.Data.TeamID, Ratio: decimal.NewFromInt(10)},
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.CostResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, allocation.ErrRatioSumInvalid.Error())

	recorder = test.Request(suite.T(), http.MethodGet, cost.Data.Links.AllocationRecords, "")
	var records v1.AllocationRecordListResponse
	test.DecodeResponse(suite.T(), &recorder, &records)
	assert.Len(suite.T(), records.Data, 2)
}

// Deleting a cost removes its allocation records with it.
func (suite *TestSuiteStandard) TestCostsDelete() {
	createTestSplit(suite.T())
	cost := createTestCost(suite.T(), v1.CostEditable{
		Amount:            decimal.NewFromInt(1000),
		AllocationEnabled: true,
	})

	recorder := test.Request(suite.T(), http.MethodDelete, cost.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, cost.Data.Links.AllocationRecords, "")
	var records v1.AllocationRecordListResponse
	test.DecodeResponse(suite.T(), &recorder, &records)
	assert.Empty(suite.T(), records.Data)
}

func (suite *TestSuiteStandard) TestCostsDBClosed() {
	team := createTestTeam(suite.T(), v1.TeamEditable{})

	suite.CloseDB()

	createTestCost(suite.T(), v1.CostEditable{TeamID: &team.Data.ID, Amount: decimal.NewFromInt(17)}, http.StatusInternalServerError)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/costs", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
