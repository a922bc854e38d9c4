package v1

import (
	"fmt"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// TeamEditable represents all user configurable parameters
type TeamEditable struct {
	Name     string `json:"name" example:"Operations" default:""`         // Name of the team
	Note     string `json:"note" example:"Data center and IT" default:""` // Notes about the team
	Archived bool   `json:"archived" example:"true" default:"false"`      // Is the team archived?
}

func (editable TeamEditable) model() models.Team {
	return models.Team{
		Name:     editable.Name,
		Note:     editable.Note,
		Archived: editable.Archived,
	}
}

type TeamLinks struct {
	Self              string `json:"self" example:"https://example.com/api/v1/teams/3b1ea324-d438-4419-882a-2fc91d71772f"`                                // The team itself
	AllocationConfigs string `json:"allocationConfigs" example:"https://example.com/api/v1/allocation-configs?team=3b1ea324-d438-4419-882a-2fc91d71772f"` // Allocation configs for this team
}

type Team struct {
	models.DefaultModel
	TeamEditable
	Links TeamLinks `json:"links"`
}

func newTeam(c *gin.Context, model models.Team) Team {
	url := c.GetString(string(models.DBContextURL))

	return Team{
		DefaultModel: model.DefaultModel,
		TeamEditable: TeamEditable{
			Name:     model.Name,
			Note:     model.Note,
			Archived: model.Archived,
		},
		Links: TeamLinks{
			Self:              fmt.Sprintf("%s/v1/teams/%s", url, model.ID),
			AllocationConfigs: fmt.Sprintf("%s/v1/allocation-configs?team=%s", url, model.ID),
		},
	}
}

type TeamListResponse struct {
	Data       []Team      `json:"data"`                                                          // List of teams
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type TeamCreateResponse struct {
	Data  []TeamResponse `json:"data"`                                                          // List of the created teams or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TeamCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TeamResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TeamResponse struct {
	Data  *Team   `json:"data"`                                                          // Data for the team
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TeamQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Archived bool   `form:"archived"`                   // Is the team archived?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first team returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of teams to return. Defaults to 50.
}

func (f TeamQueryFilter) model() (models.Team, error) {
	return models.Team{
		Archived: f.Archived,
	}, nil
}
