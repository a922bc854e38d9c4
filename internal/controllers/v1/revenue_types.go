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

// RevenueEditable represents all user configurable parameters
type RevenueEditable struct {
	Category          string          `json:"category" example:"Licensing"`                                     // Category of the revenue
	Amount            decimal.Decimal `json:"amount" example:"1000.00" minimum:"0.00000001" multipleOf:"0.001"` // The amount of the revenue
	Date              time.Time       `json:"date" example:"2024-02-17T00:00:00Z"`                              // Date of the revenue. Defaults to the current time.
	Note              string          `json:"note" example:"Annual license renewal" default:""`                 // A description of the revenue
	AllocationEnabled bool            `json:"allocationEnabled" example:"true" default:"false"`                 // Is the revenue split across the teams?
	TeamID            *uuid.UUID      `json:"teamId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`            // ID of the team the revenue belongs to. Must be empty when the revenue is split.
	Allocations       []AllocationRow `json:"allocations"`                                                      // Ratio overrides for the split, by team. Only used when the revenue is split.
}

func (editable RevenueEditable) model() models.RevenueRecord {
	return models.RevenueRecord{
		SourceFields: models.SourceFields{
			Amount:            editable.Amount,
			Date:              editable.Date,
			Note:              editable.Note,
			AllocationEnabled: editable.AllocationEnabled,
			TeamID:            editable.TeamID,
		},
		Category: editable.Category,
	}
}

type RevenueLinks struct {
	Self              string `json:"self" example:"https://example.com/api/v1/revenues/d1b8b8b2-4432-4ad7-bc1d-29d3b944f61b"`                                                  // The revenue itself
	AllocationRecords string `json:"allocationRecords" example:"https://example.com/api/v1/allocation-records?sourceType=revenue&source=d1b8b8b2-4432-4ad7-bc1d-29d3b944f61b"` // The allocation records of this revenue
	Team              string `json:"team" example:"https://example.com/api/v1/teams/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`                                                     // The team of this revenue. Empty when the revenue is split across teams.
}

type Revenue struct {
	models.DefaultModel
	Category          string             `json:"category" example:"Licensing"`                          // Category of the revenue
	Amount            decimal.Decimal    `json:"amount" example:"1000.00"`                              // The amount of the revenue
	Date              time.Time          `json:"date" example:"2024-02-17T00:00:00Z"`                   // Date of the revenue
	Note              string             `json:"note" example:"Annual license renewal" default:""`      // A description of the revenue
	AllocationEnabled bool               `json:"allocationEnabled" example:"true" default:"false"`      // Is the revenue split across the teams?
	TeamID            *uuid.UUID         `json:"teamId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the team the revenue belongs to. Empty when the revenue is split.
	Allocations       []AllocationRecord `json:"allocations"`                                           // The committed allocation records of this revenue
	Links             RevenueLinks       `json:"links"`
}

func newRevenue(c *gin.Context, model models.RevenueRecord, records []models.AllocationRecord) Revenue {
	url := c.GetString(string(models.DBContextURL))

	team := ""
	if model.TeamID != nil {
		team = fmt.Sprintf("%s/v1/teams/%s", url, *model.TeamID)
	}

	return Revenue{
		DefaultModel:      model.DefaultModel,
		Category:          model.Category,
		Amount:            model.Amount,
		Date:              model.Date,
		Note:              model.Note,
		AllocationEnabled: model.AllocationEnabled,
		TeamID:            model.TeamID,
		Allocations:       newAllocationRecords(c, records),
		Links: RevenueLinks{
			Self:              fmt.Sprintf("%s/v1/revenues/%s", url, model.ID),
			AllocationRecords: fmt.Sprintf("%s/v1/allocation-records?sourceType=revenue&source=%s", url, model.ID),
			Team:              team,
		},
	}
}

type RevenueListResponse struct {
	Data       []Revenue   `json:"data"`                                                          // List of revenues
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type RevenueCreateResponse struct {
	Data  []RevenueResponse `json:"data"`                                                          // List of the created revenues or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *RevenueCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, RevenueResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

// appendWarning adds a response that carries both the created revenue and
// the error of its failed allocation, escalating the status. The revenue
// itself is persisted, callers can fix the split and commit again.
func (t *RevenueCreateResponse) appendWarning(data Revenue, err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, RevenueResponse{Data: &data, Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type RevenueResponse struct {
	Data  *Revenue `json:"data"`                                                          // Data for the revenue
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RevenueQueryFilter struct {
	Category          string          `form:"category" filterField:"false"`          // By category
	Note              string          `form:"note" filterField:"false"`              // By note
	Search            string          `form:"search" filterField:"false"`            // By string in category or note
	TeamID            mbgl_uuid.UUID  `form:"team"`                                  // By ID of the team
	AllocationEnabled bool            `form:"allocationEnabled"`                     // Is the revenue split across the teams?
	Amount            decimal.Decimal `form:"amount"`                                // By amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Date              time.Time       `form:"date" filterField:"false"`              // Exact date. Time is ignored.
	FromDate          time.Time       `form:"fromDate" filterField:"false"`          // From this date. Time is ignored.
	UntilDate         time.Time       `form:"untilDate" filterField:"false"`         // Until this date. Time is ignored.
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first revenue returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of revenues to return. Defaults to 50.
}

func (f RevenueQueryFilter) model() (models.RevenueRecord, error) {
	var teamID *uuid.UUID
	if f.TeamID != mbgl_uuid.Nil {
		teamID = &f.TeamID.UUID
	}

	return models.RevenueRecord{
		SourceFields: models.SourceFields{
			TeamID:            teamID,
			AllocationEnabled: f.AllocationEnabled,
			Amount:            f.Amount,
		},
	}, nil
}
