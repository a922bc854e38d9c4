package v1

import (
	"fmt"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	mbgl_uuid "github.com/CatchMeX/mubiaoguanli-backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationConfigEditable represents all user configurable parameters
type AllocationConfigEditable struct {
	TeamID  uuid.UUID       `json:"teamId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`               // ID of the team this config allocates to
	Ratio   decimal.Decimal `json:"ratio" example:"33.33" minimum:"0" maximum:"100" multipleOf:"0.0001"` // Percentage share of the team, 0 to 100
	Enabled bool            `json:"enabled" example:"true" default:"false"`                              // Is the config part of the default split?
	Note    string          `json:"note" example:"Allocation for the ops department" default:""`         // Notes about the config
}

func (editable AllocationConfigEditable) model() models.AllocationConfig {
	return models.AllocationConfig{
		TeamID:  editable.TeamID,
		Ratio:   editable.Ratio,
		Enabled: editable.Enabled,
		Note:    editable.Note,
	}
}

type AllocationConfigLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/allocation-configs/3b1ea324-d438-4419-882a-2fc91d71772f"` // The config itself
	Team string `json:"team" example:"https://example.com/api/v1/teams/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`              // The team the config allocates to
}

type AllocationConfig struct {
	models.DefaultModel
	AllocationConfigEditable
	Links AllocationConfigLinks `json:"links"`
}

func newAllocationConfig(c *gin.Context, model models.AllocationConfig) AllocationConfig {
	url := c.GetString(string(models.DBContextURL))

	return AllocationConfig{
		DefaultModel: model.DefaultModel,
		AllocationConfigEditable: AllocationConfigEditable{
			TeamID:  model.TeamID,
			Ratio:   model.Ratio,
			Enabled: model.Enabled,
			Note:    model.Note,
		},
		Links: AllocationConfigLinks{
			Self: fmt.Sprintf("%s/v1/allocation-configs/%s", url, model.ID),
			Team: fmt.Sprintf("%s/v1/teams/%s", url, model.TeamID),
		},
	}
}

type AllocationConfigListResponse struct {
	Data       []AllocationConfig `json:"data"`                                                          // List of allocation configs
	Error      *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination        `json:"pagination"`                                                    // Pagination information
}

type AllocationConfigCreateResponse struct {
	Data  []AllocationConfigResponse `json:"data"`                                                          // List of the created configs or their respective error
	Error *string                    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (a *AllocationConfigCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AllocationConfigResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationConfigResponse struct {
	Data  *AllocationConfig `json:"data"`                                                          // Data for the config
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationConfigQueryFilter struct {
	TeamID  mbgl_uuid.UUID `form:"team"`                       // By ID of the team
	Enabled bool           `form:"enabled"`                    // Is the config part of the default split?
	Note    string         `form:"note" filterField:"false"`   // By note
	Search  string         `form:"search" filterField:"false"` // By string in note
	Offset  uint           `form:"offset" filterField:"false"` // The offset of the first config returned. Defaults to 0.
	Limit   int            `form:"limit" filterField:"false"`  // Maximum number of configs to return. Defaults to 50.
}

func (f AllocationConfigQueryFilter) model() (models.AllocationConfig, error) {
	return models.AllocationConfig{
		TeamID:  f.TeamID.UUID,
		Enabled: f.Enabled,
	}, nil
}
