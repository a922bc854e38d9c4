package v1

import (
	"fmt"
	"net/http"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/httputil"
	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterFinancialMatterRoutes registers the routes for financial matters with
// the RouterGroup that is passed.
func RegisterFinancialMatterRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsFinancialMatterList)
		r.GET("", GetFinancialMatters)
		r.POST("", CreateFinancialMatters)
	}

	// FinancialMatter with ID
	{
		r.OPTIONS("/:id", OptionsFinancialMatterDetail)
		r.GET("/:id", GetFinancialMatter)
		r.PATCH("/:id", UpdateFinancialMatter)
		r.DELETE("/:id", DeleteFinancialMatter)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			FinancialMatters
// @Success		204
// @Router			/v1/financial-matters [options]
func OptionsFinancialMatterList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			FinancialMatters
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/financial-matters/{id} [options]
func OptionsFinancialMatterDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.FinancialMatter{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create financial matters
// @Description	Creates financial matters from the list of submitted matter data. For each matter with allocation enabled, the split is computed from the enabled allocation configs and committed together with the matter. If the split fails, the matter itself is still created and its response carries the error.
// @Tags			FinancialMatters
// @Produce		json
// @Success		201		{object}	FinancialMatterCreateResponse
// @Failure		400		{object}	FinancialMatterCreateResponse
// @Failure		404		{object}	FinancialMatterCreateResponse
// @Failure		500		{object}	FinancialMatterCreateResponse
// @Param			matters	body		[]FinancialMatterEditable	true	"FinancialMatters"
// @Router			/v1/financial-matters [post]
func CreateFinancialMatters(c *gin.Context) {
	var editables []FinancialMatterEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinancialMatterCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := FinancialMatterCreateResponse{}

	for _, editable := range editables {
		matter := editable.model()

		err := models.DB.Create(&matter).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		records, err := commitAllocation(models.DB, models.SourceTypeFinancialMatter, matter.ID, matter.SourceFields, editable.Allocations)
		if err != nil {
			status = r.appendWarning(newFinancialMatter(c, matter, nil), err, status)
			continue
		}

		data := newFinancialMatter(c, matter, records)
		r.Data = append(r.Data, FinancialMatterResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get financial matters
// @Description	Returns a list of financial matters
// @Tags			FinancialMatters
// @Produce		json
// @Success		200	{object}	FinancialMatterListResponse
// @Failure		400	{object}	FinancialMatterListResponse
// @Failure		500	{object}	FinancialMatterListResponse
// @Router			/v1/financial-matters [get]
// @Param			title			query	string	false	"Filter by title"
// @Param			note				query	string	false	"Filter by note"
// @Param			search				query	string	false	"Search for this text in title and note"
// @Param			team				query	string	false	"Filter by team ID"
// @Param			allocationEnabled	query	bool	false	"Is the matter split across the teams?"
// @Param			amount				query	string	false	"Filter by amount"
// @Param			amountLessOrEqual	query	string	false	"Amount less than or equal to this"
// @Param			amountMoreOrEqual	query	string	false	"Amount more than or equal to this"
// @Param			date				query	string	false	"Date of the matter. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			fromDate			query	string	false	"Matters at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate			query	string	false	"Matters before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			offset				query	uint	false	"The offset of the first matter returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of financial matters to return. Defaults to 50."
func GetFinancialMatters(c *gin.Context) {
	var filter FinancialMatterQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, FinancialMatterListResponse{
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
		c.JSON(status(err), FinancialMatterListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("datetime(financial_matters.date) DESC, datetime(financial_matters.created_at) DESC").
		Where(&filterModel, queryFields...)

	q = dateFilters(q, "financial_matters", filter.Date, filter.FromDate, filter.UntilDate)
	q = amountFilters(q, "financial_matters", filter.AmountLessOrEqual, filter.AmountMoreOrEqual)

	if filter.Title != "" {
		q = q.Where("title LIKE ?", fmt.Sprintf("%%%s%%", filter.Title))
	} else if slices.Contains(setFields, "Title") {
		q = q.Where("title = ''")
	}

	if filter.Note != "" {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)).Or(
				models.DB.Where("title LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			),
		)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 matters and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var matters []models.FinancialMatter
	err = q.Find(&matters).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialMatterListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinancialMatterListResponse{
			Error: &e,
		})
		return
	}

	data := make([]FinancialMatter, 0)
	for _, matter := range matters {
		records, err := matter.AllocationRecords(models.DB)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), FinancialMatterListResponse{
				Error: &s,
			})
			return
		}

		data = append(data, newFinancialMatter(c, matter, records))
	}

	c.JSON(http.StatusOK, FinancialMatterListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get financial matter
// @Description	Returns a specific financial matter with its committed allocation records
// @Tags			FinancialMatters
// @Produce		json
// @Success		200	{object}	FinancialMatterResponse
// @Failure		400	{object}	FinancialMatterResponse
// @Failure		404	{object}	FinancialMatterResponse
// @Failure		500	{object}	FinancialMatterResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/financial-matters/{id} [get]
func GetFinancialMatter(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialMatterResponse{
			Error: &s,
		})
		return
	}

	var matter models.FinancialMatter
	err = models.DB.First(&matter, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialMatterResponse{
			Error: &s,
		})
		return
	}

	records, err := matter.AllocationRecords(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialMatterResponse{
			Error: &s,
		})
		return
	}

	data := newFinancialMatter(c, matter, records)
	c.JSON(http.StatusOK, FinancialMatterResponse{Data: &data})
}

// @Summary		Update financial matter
// @Description	Updates an existing financial matter. Only values to be updated need to be specified. The allocation records are recomputed from the updated matter and replace the previous batch atomically.
// @Tags			FinancialMatters
// @Accept			json
// @Produce		json
// @Success		200		{object}	FinancialMatterResponse
// @Failure		400		{object}	FinancialMatterResponse
// @Failure		404		{object}	FinancialMatterResponse
// @Failure		500		{object}	FinancialMatterResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			matter	body		FinancialMatterEditable	true	"FinancialMatter"
// @Router			/v1/financial-matters/{id} [patch]
func UpdateFinancialMatter(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialMatterResponse{
			Error: &s,
		})
		return
	}

	var matter models.FinancialMatter
	err = models.DB.First(&matter, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialMatterResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, FinancialMatterEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialMatterResponse{
			Error: &s,
		})
		return
	}

	// The override rows are no database column, they only feed the
	// allocation commit below
	updateFields = slices.DeleteFunc(updateFields, func(s any) bool { return s == "Allocations" })

	var data FinancialMatterEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialMatterResponse{
			Error: &s,
		})
		return
	}

	// A body that only carries override rows leaves nothing to
	// update on the record itself
	if len(updateFields) > 0 {
		err = models.DB.Model(&matter).Select("", updateFields...).Updates(data.model()).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), FinancialMatterResponse{
				Error: &s,
			})
			return
		}
	}

	records, err := commitAllocation(models.DB, models.SourceTypeFinancialMatter, matter.ID, matter.SourceFields, data.Allocations)
	if err != nil {
		// The matter itself is updated, the previous allocation batch
		// stays in place
		s := err.Error()
		r := newFinancialMatter(c, matter, nil)
		c.JSON(status(err), FinancialMatterResponse{Data: &r, Error: &s})
		return
	}

	r := newFinancialMatter(c, matter, records)
	c.JSON(http.StatusOK, FinancialMatterResponse{Data: &r})
}

// @Summary		Delete financial matter
// @Description	Deletes a financial matter and its allocation records
// @Tags			FinancialMatters
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/financial-matters/{id} [delete]
func DeleteFinancialMatter(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var matter models.FinancialMatter
	err = models.DB.First(&matter, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&matter).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
