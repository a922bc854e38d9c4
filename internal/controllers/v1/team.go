package v1

import (
	"net/http"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/httputil"
	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterTeamRoutes registers the routes for teams with
// the RouterGroup that is passed.
func RegisterTeamRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTeamList)
		r.GET("", GetTeams)
		r.POST("", CreateTeams)
	}

	// Team with ID
	{
		r.OPTIONS("/:id", OptionsTeamDetail)
		r.GET("/:id", GetTeam)
		r.PATCH("/:id", UpdateTeam)
		r.DELETE("/:id", DeleteTeam)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Teams
// @Success		204
// @Router			/v1/teams [options]
func OptionsTeamList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Teams
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/teams/{id} [options]
func OptionsTeamDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Team{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create teams
// @Description	Creates new teams
// @Tags			Teams
// @Produce		json
// @Success		201		{object}	TeamCreateResponse
// @Failure		400		{object}	TeamCreateResponse
// @Failure		500		{object}	TeamCreateResponse
// @Param			teams	body		[]TeamEditable	true	"Teams"
// @Router			/v1/teams [post]
func CreateTeams(c *gin.Context) {
	var editables []TeamEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeamCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TeamCreateResponse{}

	for _, editable := range editables {
		team := editable.model()

		err = models.DB.Create(&team).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTeam(c, team)
		r.Data = append(r.Data, TeamResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get teams
// @Description	Returns a list of teams
// @Tags			Teams
// @Produce		json
// @Success		200	{object}	TeamListResponse
// @Failure		400	{object}	TeamListResponse
// @Failure		500	{object}	TeamListResponse
// @Router			/v1/teams [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			archived	query	bool	false	"Is the team archived?"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first Team returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Teams to return. Defaults to 50."
func GetTeams(c *gin.Context) {
	var filter TeamQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 teams and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var teams []models.Team
	err = q.Find(&teams).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeamListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Team, 0)
	for _, team := range teams {
		data = append(data, newTeam(c, team))
	}

	c.JSON(http.StatusOK, TeamListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get team
// @Description	Returns a specific team
// @Tags			Teams
// @Produce		json
// @Success		200	{object}	TeamResponse
// @Failure		400	{object}	TeamResponse
// @Failure		404	{object}	TeamResponse
// @Failure		500	{object}	TeamResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/teams/{id} [get]
func GetTeam(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &s,
		})
		return
	}

	var team models.Team
	err = models.DB.First(&team, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &s,
		})
		return
	}

	data := newTeam(c, team)
	c.JSON(http.StatusOK, TeamResponse{Data: &data})
}

// @Summary		Update team
// @Description	Update an existing team. Only values to be updated need to be specified.
// @Tags			Teams
// @Accept			json
// @Produce		json
// @Success		200		{object}	TeamResponse
// @Failure		400		{object}	TeamResponse
// @Failure		404		{object}	TeamResponse
// @Failure		500		{object}	TeamResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			team	body		TeamEditable	true	"Team"
// @Router			/v1/teams/{id} [patch]
func UpdateTeam(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &s,
		})
		return
	}

	var team models.Team
	err = models.DB.First(&team, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TeamEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &s,
		})
		return
	}

	var data TeamEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&team).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &s,
		})
		return
	}

	r := newTeam(c, team)
	c.JSON(http.StatusOK, TeamResponse{Data: &r})
}

// @Summary		Delete team
// @Description	Deletes a team
// @Tags			Teams
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/teams/{id} [delete]
func DeleteTeam(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var team models.Team
	err = models.DB.First(&team, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&team).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
