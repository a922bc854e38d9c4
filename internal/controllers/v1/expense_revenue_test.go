package v1_test

import (
	"net/http"

	v1 "github.com/CatchMeX/mubiaoguanli-backend/internal/controllers/v1"
	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/CatchMeX/mubiaoguanli-backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Expenses and revenues share the commit semantics of costs, these
// tests only verify that both resources are wired up to the engine.

func (suite *TestSuiteStandard) TestExpensesCreateSplit() {
	createTestSplit(suite.T())

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{
		{
			Category:          "Travel",
			Note:              "Team offsite flights",
			Amount:            decimal.NewFromInt(2500),
			AllocationEnabled: true,
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)
	require.Len(suite.T(), response.Data[0].Data.Allocations, 2)
	for _, record := range response.Data[0].Data.Allocations {
		assert.Equal(suite.T(), models.SourceTypeExpense, record.SourceType)
	}
}

func (suite *TestSuiteStandard) TestRevenuesCreateSplit() {
	createTestSplit(suite.T())

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/revenues", []v1.RevenueEditable{
		{
			Category:          "Licensing",
			Note:              "Annual license renewal",
			Amount:            decimal.NewFromInt(12000),
			AllocationEnabled: true,
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.RevenueCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)
	require.Len(suite.T(), response.Data[0].Data.Allocations, 2)

	sum := decimal.Zero
	for _, record := range response.Data[0].Data.Allocations {
		assert.Equal(suite.T(), models.SourceTypeRevenue, record.SourceType)
		sum = sum.Add(record.Amount)
	}
	assert.True(suite.T(), sum.Equal(decimal.NewFromInt(12000)), "sum is %s", sum)
}

func (suite *TestSuiteStandard) TestRevenuesUpdateDisableAllocation() {
	createTestSplit(suite.T())
	team := createTestTeam(suite.T(), v1.TeamEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/revenues", []v1.RevenueEditable{
		{
			Category:          "Licensing",
			Note:              "Annual license renewal",
			Amount:            decimal.NewFromInt(500),
			AllocationEnabled: true,
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.RevenueCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	revenue := response.Data[0]

	recorder = test.Request(suite.T(), http.MethodPatch, revenue.Data.Links.Self, map[string]any{
		"allocationEnabled": false,
		"teamId":            team.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, revenue.Data.Links.AllocationRecords, "")
	var records v1.AllocationRecordListResponse
	test.DecodeResponse(suite.T(), &recorder, &records)
	assert.Empty(suite.T(), records.Data)
}

func (suite *TestSuiteStandard) TestExpensesUpdateBlankCategory() {
	team := createTestTeam(suite.T(), v1.TeamEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{
		{
			Category: "Travel",
			Note:     "Taxi to the airport",
			Amount:   decimal.NewFromInt(30),
			TeamID:   &team.Data.ID,
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var created v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &created)
	require.Len(suite.T(), created.Data, 1)
	expense := created.Data[0]

	recorder = test.Request(suite.T(), http.MethodPatch, expense.Data.Links.Self, map[string]any{
		"category": "  ",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, models.ErrSourceCategoryRequired.Error())
}

func (suite *TestSuiteStandard) TestRevenuesUpdateNegativeAmount() {
	team := createTestTeam(suite.T(), v1.TeamEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/revenues", []v1.RevenueEditable{
		{
			Category: "Consulting",
			Note:     "Workshop fee",
			Amount:   decimal.NewFromInt(800),
			TeamID:   &team.Data.ID,
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var created v1.RevenueCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &created)
	require.Len(suite.T(), created.Data, 1)
	revenue := created.Data[0]

	recorder = test.Request(suite.T(), http.MethodPatch, revenue.Data.Links.Self, map[string]any{
		"amount": "-1",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.RevenueResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, models.ErrSourceAmountNegative.Error())
}
