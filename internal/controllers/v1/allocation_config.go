package v1

import (
	"net/http"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/httputil"
	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterAllocationConfigRoutes registers the routes for allocation configs with
// the RouterGroup that is passed.
func RegisterAllocationConfigRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAllocationConfigList)
		r.GET("", GetAllocationConfigs)
		r.POST("", CreateAllocationConfigs)
	}

	// AllocationConfig with ID
	{
		r.OPTIONS("/:id", OptionsAllocationConfigDetail)
		r.GET("/:id", GetAllocationConfig)
		r.PATCH("/:id", UpdateAllocationConfig)
		r.DELETE("/:id", DeleteAllocationConfig)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AllocationConfigs
// @Success		204
// @Router			/v1/allocation-configs [options]
func OptionsAllocationConfigList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AllocationConfigs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-configs/{id} [options]
func OptionsAllocationConfigDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.AllocationConfig{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create allocation configs
// @Description	Creates new allocation configs
// @Tags			AllocationConfigs
// @Produce		json
// @Success		201		{object}	AllocationConfigCreateResponse
// @Failure		400		{object}	AllocationConfigCreateResponse
// @Failure		404		{object}	AllocationConfigCreateResponse
// @Failure		500		{object}	AllocationConfigCreateResponse
// @Param			configs	body		[]AllocationConfigEditable	true	"AllocationConfigs"
// @Router			/v1/allocation-configs [post]
func CreateAllocationConfigs(c *gin.Context) {
	var editables []AllocationConfigEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationConfigCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AllocationConfigCreateResponse{}

	for _, editable := range editables {
		config := editable.model()

		err = models.DB.Create(&config).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newAllocationConfig(c, config)
		r.Data = append(r.Data, AllocationConfigResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get allocation configs
// @Description	Returns a list of allocation configs
// @Tags			AllocationConfigs
// @Produce		json
// @Success		200	{object}	AllocationConfigListResponse
// @Failure		400	{object}	AllocationConfigListResponse
// @Failure		500	{object}	AllocationConfigListResponse
// @Router			/v1/allocation-configs [get]
// @Param			team	query	string	false	"Filter by team ID"
// @Param			enabled	query	bool	false	"Is the config part of the default split?"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in the note"
// @Param			offset	query	uint	false	"The offset of the first config returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of configs to return. Defaults to 50."
func GetAllocationConfigs(c *gin.Context) {
	var filter AllocationConfigQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationConfigListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("created_at ASC").
		Where(&filterModel, queryFields...)

	q = noteFilters(q, setFields, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 configs and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var configs []models.AllocationConfig
	err = q.Find(&configs).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationConfigListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationConfigListResponse{
			Error: &e,
		})
		return
	}

	data := make([]AllocationConfig, 0)
	for _, config := range configs {
		data = append(data, newAllocationConfig(c, config))
	}

	c.JSON(http.StatusOK, AllocationConfigListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get allocation config
// @Description	Returns a specific allocation config
// @Tags			AllocationConfigs
// @Produce		json
// @Success		200	{object}	AllocationConfigResponse
// @Failure		400	{object}	AllocationConfigResponse
// @Failure		404	{object}	AllocationConfigResponse
// @Failure		500	{object}	AllocationConfigResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-configs/{id} [get]
func GetAllocationConfig(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationConfigResponse{
			Error: &s,
		})
		return
	}

	var config models.AllocationConfig
	err = models.DB.First(&config, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationConfigResponse{
			Error: &s,
		})
		return
	}

	data := newAllocationConfig(c, config)
	c.JSON(http.StatusOK, AllocationConfigResponse{Data: &data})
}

// @Summary		Update allocation config
// @Description	Update an existing allocation config. Only values to be updated need to be specified.
// @Tags			AllocationConfigs
// @Accept			json
// @Produce		json
// @Success		200		{object}	AllocationConfigResponse
// @Failure		400		{object}	AllocationConfigResponse
// @Failure		404		{object}	AllocationConfigResponse
// @Failure		500		{object}	AllocationConfigResponse
// @Param			id		path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			config	body		AllocationConfigEditable	true	"AllocationConfig"
// @Router			/v1/allocation-configs/{id} [patch]
func UpdateAllocationConfig(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationConfigResponse{
			Error: &s,
		})
		return
	}

	var config models.AllocationConfig
	err = models.DB.First(&config, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationConfigResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AllocationConfigEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationConfigResponse{
			Error: &s,
		})
		return
	}

	var data AllocationConfigEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationConfigResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&config).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationConfigResponse{
			Error: &s,
		})
		return
	}

	r := newAllocationConfig(c, config)
	c.JSON(http.StatusOK, AllocationConfigResponse{Data: &r})
}

// @Summary		Delete allocation config
// @Description	Deletes an allocation config
// @Tags			AllocationConfigs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-configs/{id} [delete]
func DeleteAllocationConfig(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var config models.AllocationConfig
	err = models.DB.First(&config, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&config).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
