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

func (suite *TestSuiteStandard) TestAllocationRecordsGet() {
	createTestSplit(suite.T())
	cost := createTestCost(suite.T(), v1.CostEditable{
		Amount:            decimal.NewFromInt(500),
		AllocationEnabled: true,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/allocation-records", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AllocationRecordListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 2)
	for _, record := range response.Data {
		assert.Equal(suite.T(), models.SourceTypeCost, record.SourceType)
		assert.Equal(suite.T(), cost.Data.ID, record.SourceID)
	}
}

func (suite *TestSuiteStandard) TestAllocationRecordsGetSingle() {
	createTestSplit(suite.T())
	cost := createTestCost(suite.T(), v1.CostEditable{
		Amount:            decimal.NewFromInt(100),
		AllocationEnabled: true,
	})

	record := cost.Data.Allocations[0]

	recorder := test.Request(suite.T(), http.MethodGet, record.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AllocationRecordResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), record.ID, response.Data.ID)
	assert.True(suite.T(), response.Data.Amount.Equal(record.Amount))
}

func (suite *TestSuiteStandard) TestAllocationRecordsGetSingleInvalid() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Nonexistent", uuid.NewString(), http.StatusNotFound},
		{"Not a UUID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocation-records/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationRecordsGetFilter() {
	first, _ := createTestSplit(suite.T())

	cost := createTestCost(suite.T(), v1.CostEditable{
		Amount:            decimal.NewFromInt(1000),
		AllocationEnabled: true,
	})
	createTestFinancialMatter(suite.T(), v1.FinancialMatterEditable{
		Amount:            decimal.NewFromInt(200),
		AllocationEnabled: true,
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 4},
		{"Costs", "sourceType=cost", 2},
		{"Financial matters", "sourceType=financial_matter", 2},
		{"Source", fmt.Sprintf("sourceType=cost&source=%s", cost.Data.ID), 2},
		{"Team", fmt.Sprintf("team=%s", first.Data.TeamID), 2},
		{"Config", fmt.Sprintf("config=%s", first.Data.ID), 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocation-records?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.AllocationRecordListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationRecordsInvalidSourceType() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/allocation-records?sourceType=ledger", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
