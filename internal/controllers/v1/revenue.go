package v1

import (
	"fmt"
	"net/http"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/httputil"
	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterRevenueRoutes registers the routes for revenues with
// the RouterGroup that is passed.
func RegisterRevenueRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRevenueList)
		r.GET("", GetRevenues)
		r.POST("", CreateRevenues)
	}

	// Revenue with ID
	{
		r.OPTIONS("/:id", OptionsRevenueDetail)
		r.GET("/:id", GetRevenue)
		r.PATCH("/:id", UpdateRevenue)
		r.DELETE("/:id", DeleteRevenue)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Revenues
// @Success		204
// @Router			/v1/revenues [options]
func OptionsRevenueList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Revenues
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/revenues/{id} [options]
func OptionsRevenueDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.RevenueRecord{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create revenues
// @Description	Creates revenues from the list of submitted revenue data. For each revenue with allocation enabled, the split is computed from the enabled allocation configs and committed together with the revenue. If the split fails, the revenue itself is still created and its response carries the error.
// @Tags			Revenues
// @Produce		json
// @Success		201		{object}	RevenueCreateResponse
// @Failure		400		{object}	RevenueCreateResponse
// @Failure		404		{object}	RevenueCreateResponse
// @Failure		500		{object}	RevenueCreateResponse
// @Param			revenues	body		[]RevenueEditable	true	"Revenues"
// @Router			/v1/revenues [post]
func CreateRevenues(c *gin.Context) {
	var editables []RevenueEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RevenueCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := RevenueCreateResponse{}

	for _, editable := range editables {
		revenue := editable.model()

		err := models.DB.Create(&revenue).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		records, err := commitAllocation(models.DB, models.SourceTypeRevenue, revenue.ID, revenue.SourceFields, editable.Allocations)
		if err != nil {
			status = r.appendWarning(newRevenue(c, revenue, nil), err, status)
			continue
		}

		data := newRevenue(c, revenue, records)
		r.Data = append(r.Data, RevenueResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get revenues
// @Description	Returns a list of revenues
// @Tags			Revenues
// @Produce		json
// @Success		200	{object}	RevenueListResponse
// @Failure		400	{object}	RevenueListResponse
// @Failure		500	{object}	RevenueListResponse
// @Router			/v1/revenues [get]
// @Param			category			query	string	false	"Filter by category"
// @Param			note				query	string	false	"Filter by note"
// @Param			search				query	string	false	"Search for this text in category and note"
// @Param			team				query	string	false	"Filter by team ID"
// @Param			allocationEnabled	query	bool	false	"Is the revenue split across the teams?"
// @Param			amount				query	string	false	"Filter by amount"
// @Param			amountLessOrEqual	query	string	false	"Amount less than or equal to this"
// @Param			amountMoreOrEqual	query	string	false	"Amount more than or equal to this"
// @Param			date				query	string	false	"Date of the revenue. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			fromDate			query	string	false	"Revenues at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate			query	string	false	"Revenues before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			offset				query	uint	false	"The offset of the first revenue returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of revenues to return. Defaults to 50."
func GetRevenues(c *gin.Context) {
	var filter RevenueQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, RevenueListResponse{
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
		c.JSON(status(err), RevenueListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("datetime(revenue_records.date) DESC, datetime(revenue_records.created_at) DESC").
		Where(&filterModel, queryFields...)

	q = dateFilters(q, "revenue_records", filter.Date, filter.FromDate, filter.UntilDate)
	q = amountFilters(q, "revenue_records", filter.AmountLessOrEqual, filter.AmountMoreOrEqual)

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

	// Default to 50 revenues and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var revenues []models.RevenueRecord
	err = q.Find(&revenues).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RevenueListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RevenueListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Revenue, 0)
	for _, revenue := range revenues {
		records, err := revenue.AllocationRecords(models.DB)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), RevenueListResponse{
				Error: &s,
			})
			return
		}

		data = append(data, newRevenue(c, revenue, records))
	}

	c.JSON(http.StatusOK, RevenueListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get revenue
// @Description	Returns a specific revenue with its committed allocation records
// @Tags			Revenues
// @Produce		json
// @Success		200	{object}	RevenueResponse
// @Failure		400	{object}	RevenueResponse
// @Failure		404	{object}	RevenueResponse
// @Failure		500	{object}	RevenueResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/revenues/{id} [get]
func GetRevenue(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RevenueResponse{
			Error: &s,
		})
		return
	}

	var revenue models.RevenueRecord
	err = models.DB.First(&revenue, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RevenueResponse{
			Error: &s,
		})
		return
	}

	records, err := revenue.AllocationRecords(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RevenueResponse{
			Error: &s,
		})
		return
	}

	data := newRevenue(c, revenue, records)
	c.JSON(http.StatusOK, RevenueResponse{Data: &data})
}

// @Summary		Update revenue
// @Description	Updates an existing revenue. Only values to be updated need to be specified. The allocation records are recomputed from the updated revenue and replace the previous batch atomically.
// @Tags			Revenues
// @Accept			json
// @Produce		json
// @Success		200		{object}	RevenueResponse
// @Failure		400		{object}	RevenueResponse
// @Failure		404		{object}	RevenueResponse
// @Failure		500		{object}	RevenueResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			revenue	body		RevenueEditable	true	"Revenue"
// @Router			/v1/revenues/{id} [patch]
func UpdateRevenue(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RevenueResponse{
			Error: &s,
		})
		return
	}

	var revenue models.RevenueRecord
	err = models.DB.First(&revenue, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RevenueResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RevenueEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RevenueResponse{
			Error: &s,
		})
		return
	}

	// The override rows are no database column, they only feed the
	// allocation commit below
	updateFields = slices.DeleteFunc(updateFields, func(s any) bool { return s == "Allocations" })

	var data RevenueEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RevenueResponse{
			Error: &s,
		})
		return
	}

	// A body that only carries override rows leaves nothing to
	// update on the record itself
	if len(updateFields) > 0 {
		err = models.DB.Model(&revenue).Select("", updateFields...).Updates(data.model()).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), RevenueResponse{
				Error: &s,
			})
			return
		}
	}

	records, err := commitAllocation(models.DB, models.SourceTypeRevenue, revenue.ID, revenue.SourceFields, data.Allocations)
	if err != nil {
		// The revenue itself is updated, the previous allocation batch
		// stays in place
		s := err.Error()
		r := newRevenue(c, revenue, nil)
		c.JSON(status(err), RevenueResponse{Data: &r, Error: &s})
		return
	}

	r := newRevenue(c, revenue, records)
	c.JSON(http.StatusOK, RevenueResponse{Data: &r})
}

// @Summary		Delete revenue
// @Description	Deletes a revenue and its allocation records
// @Tags			Revenues
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/revenues/{id} [delete]
func DeleteRevenue(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var revenue models.RevenueRecord
	err = models.DB.First(&revenue, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&revenue).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
