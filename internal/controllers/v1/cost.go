package v1

import (
	"fmt"
	"net/http"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/httputil"
	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterCostRoutes registers the routes for costs with
// the RouterGroup that is passed.
func RegisterCostRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCostList)
		r.GET("", GetCosts)
		r.POST("", CreateCosts)
	}

	// Cost with ID
	{
		r.OPTIONS("/:id", OptionsCostDetail)
		r.GET("/:id", GetCost)
		r.PATCH("/:id", UpdateCost)
		r.DELETE("/:id", DeleteCost)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Costs
// @Success		204
// @Router			/v1/costs [options]
func OptionsCostList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Costs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/costs/{id} [options]
func OptionsCostDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.CostRecord{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create costs
// @Description	Creates costs from the list of submitted cost data. For each cost with allocation enabled, the split is computed from the enabled allocation configs and committed together with the cost. If the split fails, the cost itself is still created and its response carries the error.
// @Tags			Costs
// @Produce		json
// @Success		201		{object}	CostCreateResponse
// @Failure		400		{object}	CostCreateResponse
// @Failure		404		{object}	CostCreateResponse
// @Failure		500		{object}	CostCreateResponse
// @Param			costs	body		[]CostEditable	true	"Costs"
// @Router			/v1/costs [post]
func CreateCosts(c *gin.Context) {
	var editables []CostEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CostCreateResponse{}

	for _, editable := range editables {
		cost := editable.model()

		err := models.DB.Create(&cost).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		records, err := commitAllocation(models.DB, models.SourceTypeCost, cost.ID, cost.SourceFields, editable.Allocations)
		if err != nil {
			status = r.appendWarning(newCost(c, cost, nil), err, status)
			continue
		}

		data := newCost(c, cost, records)
		r.Data = append(r.Data, CostResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get costs
// @Description	Returns a list of costs
// @Tags			Costs
// @Produce		json
// @Success		200	{object}	CostListResponse
// @Failure		400	{object}	CostListResponse
// @Failure		500	{object}	CostListResponse
// @Router			/v1/costs [get]
// @Param			category			query	string	false	"Filter by category"
// @Param			note				query	string	false	"Filter by note"
// @Param			search				query	string	false	"Search for this text in category and note"
// @Param			team				query	string	false	"Filter by team ID"
// @Param			allocationEnabled	query	bool	false	"Is the cost split across the teams?"
// @Param			amount				query	string	false	"Filter by amount"
// @Param			amountLessOrEqual	query	string	false	"Amount less than or equal to this"
// @Param			amountMoreOrEqual	query	string	false	"Amount more than or equal to this"
// @Param			date				query	string	false	"Date of the cost. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			fromDate			query	string	false	"Costs at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate			query	string	false	"Costs before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			offset				query	uint	false	"The offset of the first cost returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of costs to return. Defaults to 50."
func GetCosts(c *gin.Context) {
	var filter CostQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CostListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("datetime(cost_records.date) DESC, datetime(cost_records.created_at) DESC").
		Where(&filterModel, queryFields...)

	q = dateFilters(q, "cost_records", filter.Date, filter.FromDate, filter.UntilDate)
	q = amountFilters(q, "cost_records", filter.AmountLessOrEqual, filter.AmountMoreOrEqual)

	if filter.Category != "" {
		q = q.Where("category LIKE ?", fmt.Sprintf("%%%s%%", filter.Category))
	} else if slices.Contains(setFields, "Category") {
		q = q.Where("category = ''")
	}

	if filter.Note != "" {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)).Or(
				models.DB.Where("category LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			),
		)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 costs and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var costs []models.CostRecord
	err = q.Find(&costs).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Cost, 0)
	for _, cost := range costs {
		records, err := cost.AllocationRecords(models.DB)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CostListResponse{
				Error: &s,
			})
			return
		}

		data = append(data, newCost(c, cost, records))
	}

	c.JSON(http.StatusOK, CostListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get cost
// @Description	Returns a specific cost with its committed allocation records
// @Tags			Costs
// @Produce		json
// @Success		200	{object}	CostResponse
// @Failure		400	{object}	CostResponse
// @Failure		404	{object}	CostResponse
// @Failure		500	{object}	CostResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/costs/{id} [get]
func GetCost(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &s,
		})
		return
	}

	var cost models.CostRecord
	err = models.DB.First(&cost, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &s,
		})
		return
	}

	records, err := cost.AllocationRecords(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &s,
		})
		return
	}

	data := newCost(c, cost, records)
	c.JSON(http.StatusOK, CostResponse{Data: &data})
}

// @Summary		Update cost
// @Description	Updates an existing cost. Only values to be updated need to be specified. The allocation records are recomputed from the updated cost and replace the previous batch atomically.
// @Tags			Costs
// @Accept			json
// @Produce		json
// @Success		200		{object}	CostResponse
// @Failure		400		{object}	CostResponse
// @Failure		404		{object}	CostResponse
// @Failure		500		{object}	CostResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			cost	body		CostEditable	true	"Cost"
// @Router			/v1/costs/{id} [patch]
func UpdateCost(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &s,
		})
		return
	}

	var cost models.CostRecord
	err = models.DB.First(&cost, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CostEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &s,
		})
		return
	}

	// The override rows are no database column, they only feed the
	// allocation commit below
	updateFields = slices.DeleteFunc(updateFields, func(s any) bool { return s == "Allocations" })

	var data CostEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &s,
		})
		return
	}

	// A body that only carries override rows leaves nothing to
	// update on the record itself
	if len(updateFields) > 0 {
		err = models.DB.Model(&cost).Select("", updateFields...).Updates(data.model()).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CostResponse{
				Error: &s,
			})
			return
		}
	}

	records, err := commitAllocation(models.DB, models.SourceTypeCost, cost.ID, cost.SourceFields, data.Allocations)
	if err != nil {
		// The cost itself is updated, the previous allocation batch
		// stays in place
		s := err.Error()
		r := newCost(c, cost, nil)
		c.JSON(status(err), CostResponse{Data: &r, Error: &s})
		return
	}

	r := newCost(c, cost, records)
	c.JSON(http.StatusOK, CostResponse{Data: &r})
}

// @Summary		Delete cost
// @Description	Deletes a cost and its allocation records
// @Tags			Costs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/costs/{id} [delete]
func DeleteCost(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var cost models.CostRecord
	err = models.DB.First(&cost, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&cost).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
