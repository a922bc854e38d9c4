package v1

import (
	"fmt"
	"time"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	mbgl_uuid "github.com/CatchMeX/mubiaoguanli-backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialMatterEditable represents all user configurable parameters
type FinancialMatterEditable struct {
	Title             string          `json:"title" example:"Settlement"`                                       // Title of the matter
	Amount            decimal.Decimal `json:"amount" example:"1000.00" minimum:"0.00000001" multipleOf:"0.001"` // The amount of the matter
	Date              time.Time       `json:"date" example:"2024-02-17T00:00:00Z"`                              // Date of the matter. Defaults to the current time.
	Note              string          `json:"note" example:"Cross charge for shared tooling" default:""`        // A description of the matter
	AllocationEnabled bool            `json:"allocationEnabled" example:"true" default:"false"`                 // Is the matter split across the teams?
	TeamID            *uuid.UUID      `json:"teamId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`            // ID of the team the matter belongs to. Must be empty when the matter is split.
	Allocations       []AllocationRow `json:"allocations"`                                                      // Ratio overrides for the split, by team. Only used when the matter is split.
}

func (editable FinancialMatterEditable) model() models.FinancialMatter {
	return models.FinancialMatter{
		SourceFields: models.SourceFields{
			Amount:            editable.Amount,
			Date:              editable.Date,
			Note:              editable.Note,
			AllocationEnabled: editable.AllocationEnabled,
			TeamID:            editable.TeamID,
		},
		Title: editable.Title,
	}
}

type FinancialMatterLinks struct {
	Self              string `json:"self" example:"https://example.com/api/v1/financial-matters/d1b8b8b2-4432-4ad7-bc1d-29d3b944f61b"`                                                  // The matter itself
	AllocationRecords string `json:"allocationRecords" example:"https://example.com/api/v1/allocation-records?sourceType=financial_matter&source=d1b8b8b2-4432-4ad7-bc1d-29d3b944f61b"` // The allocation records of this matter
	Team              string `json:"team" example:"https://example.com/api/v1/teams/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`                                                              // The team of this matter. Empty when the matter is split across teams.
}

type FinancialMatter struct {
	models.DefaultModel
	Title             string               `json:"title" example:"Settlement"`                                // Title of the matter
	Amount            decimal.Decimal      `json:"amount" example:"1000.00"`                                  // The amount of the matter
	Date              time.Time            `json:"date" example:"2024-02-17T00:00:00Z"`                       // Date of the matter
	Note              string               `json:"note" example:"Cross charge for shared tooling" default:""` // A description of the matter
	AllocationEnabled bool                 `json:"allocationEnabled" example:"true" default:"false"`          // Is the matter split across the teams?
	TeamID            *uuid.UUID           `json:"teamId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`     // ID of the team the matter belongs to. Empty when the matter is split.
	Allocations       []AllocationRecord   `json:"allocations"`                                               // The committed allocation records of this matter
	Links             FinancialMatterLinks `json:"links"`
}

func newFinancialMatter(c *gin.Context, model models.FinancialMatter, records []models.AllocationRecord) FinancialMatter {
	url := c.GetString(string(models.DBContextURL))

	team := ""
	if model.TeamID != nil {
		team = fmt.Sprintf("%s/v1/teams/%s", url, *model.TeamID)
	}

	return FinancialMatter{
		DefaultModel:      model.DefaultModel,
		Title:             model.Title,
		Amount:            model.Amount,
		Date:              model.Date,
		Note:              model.Note,
		AllocationEnabled: model.AllocationEnabled,
		TeamID:            model.TeamID,
		Allocations:       newAllocationRecords(c, records),
		Links: FinancialMatterLinks{
			Self:              fmt.Sprintf("%s/v1/financial-matters/%s", url, model.ID),
			AllocationRecords: fmt.Sprintf("%s/v1/allocation-records?sourceType=financial_matter&source=%s", url, model.ID),
			Team:              team,
		},
	}
}

type FinancialMatterListResponse struct {
	Data       []FinancialMatter `json:"data"`                                                          // List of financial matters
	Error      *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination       `json:"pagination"`                                                    // Pagination information
}

type FinancialMatterCreateResponse struct {
	Data  []FinancialMatterResponse `json:"data"`                                                          // List of the created matters or their respective error
	Error *string                   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *FinancialMatterCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, FinancialMatterResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

// appendWarning adds a response that carries both the created matter and
// the error of its failed allocation, escalating the status. The matter
// itself is persisted, callers can fix the split and commit again.
func (t *FinancialMatterCreateResponse) appendWarning(data FinancialMatter, err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, FinancialMatterResponse{Data: &data, Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type FinancialMatterResponse struct {
	Data  *FinancialMatter `json:"data"`                                                          // Data for the matter
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FinancialMatterQueryFilter struct {
	Title             string          `form:"title" filterField:"false"`             // By title
	Note              string          `form:"note" filterField:"false"`              // By note
	Search            string          `form:"search" filterField:"false"`            // By string in title or note
	TeamID            mbgl_uuid.UUID  `form:"team"`                                  // By ID of the team
	AllocationEnabled bool            `form:"allocationEnabled"`                     // Is the matter split across the teams?
	Amount            decimal.Decimal `form:"amount"`                                // By amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Date              time.Time       `form:"date" filterField:"false"`              // Exact date. Time is ignored.
	FromDate          time.Time       `form:"fromDate" filterField:"false"`          // From this date. Time is ignored.
	UntilDate         time.Time       `form:"untilDate" filterField:"false"`         // Until this date. Time is ignored.
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first matter returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of financial matters to return. Defaults to 50.
}

func (f FinancialMatterQueryFilter) model() (models.FinancialMatter, error) {
	var teamID *uuid.UUID
	if f.TeamID != mbgl_uuid.Nil {
		teamID = &f.TeamID.UUID
	}

	return models.FinancialMatter{
		SourceFields: models.SourceFields{
			TeamID:            teamID,
			AllocationEnabled: f.AllocationEnabled,
			Amount:            f.Amount,
		},
	}, nil
}
