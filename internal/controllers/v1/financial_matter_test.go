package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/CatchMeX/mubiaoguanli-backend/internal/controllers/v1"
	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/CatchMeX/mubiaoguanli-backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestFinancialMattersCreate() {
	createTestSplit(suite.T())

	matter := createTestFinancialMatter(suite.T(), v1.FinancialMatterEditable{
		Title:             "Cross charge for shared tooling",
		Amount:            decimal.NewFromInt(300),
		AllocationEnabled: true,
	})

	assert.Equal(suite.T(), "Cross charge for shared tooling", matter.Data.Title)
	require.Len(suite.T(), matter.Data.Allocations, 2)
	for _, record := range matter.Data.Allocations {
		assert.Equal(suite.T(), "financial_matter", string(record.SourceType))
	}
}

func (suite *TestSuiteStandard) TestFinancialMattersCreateInvalid() {
	team := createTestTeam(suite.T(), v1.TeamEditable{})

	tests := []struct {
		name   string
		matter v1.FinancialMatterEditable
	}{
		{"Missing title", v1.FinancialMatterEditable{Note: "no title", Amount: decimal.NewFromInt(1), TeamID: &team.Data.ID}},
		{"Negative amount", v1.FinancialMatterEditable{Title: "Settlement", Note: "negative", Amount: decimal.NewFromInt(-1), TeamID: &team.Data.ID}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/financial-matters", []v1.FinancialMatterEditable{tt.matter})
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestFinancialMattersGetFilter() {
	team := createTestTeam(suite.T(), v1.TeamEditable{})

	createTestFinancialMatter(suite.T(), v1.FinancialMatterEditable{Title: "Settlement", Note: "supplier credit", Amount: decimal.NewFromInt(40), TeamID: &team.Data.ID})
	createTestFinancialMatter(suite.T(), v1.FinancialMatterEditable{Title: "Write-off", Note: "unrecoverable invoice", Amount: decimal.NewFromInt(80)})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Title", "title=Settlement", 1},
		{"Search", "search=invoice", 1},
		{"Team", fmt.Sprintf("team=%s", team.Data.ID), 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/financial-matters?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.FinancialMatterListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestFinancialMattersUpdate() {
	matter := createTestFinancialMatter(suite.T(), v1.FinancialMatterEditable{Amount: decimal.NewFromInt(40)})

	recorder := test.Request(suite.T(), http.MethodPatch, matter.Data.Links.Self, map[string]any{
		"title": "Corrected settlement",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.FinancialMatterResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	assert.Equal(suite.T(), "Corrected settlement", updated.Data.Title)
}

func (suite *TestSuiteStandard) TestFinancialMattersUpdateBlankTitle() {
	matter := createTestFinancialMatter(suite.T(), v1.FinancialMatterEditable{Amount: decimal.NewFromInt(40)})

	recorder := test.Request(suite.T(), http.MethodPatch, matter.Data.Links.Self, map[string]any{
		"title": "   ",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.FinancialMatterResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, models.ErrSourceTitleRequired.Error())
}

func (suite *TestSuiteStandard) TestFinancialMattersDelete() {
	matter := createTestFinancialMatter(suite.T(), v1.FinancialMatterEditable{Amount: decimal.NewFromInt(40)})

	recorder := test.Request(suite.T(), http.MethodDelete, matter.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, matter.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
