package v1

import (
	"net/http"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/httputil"
	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterAllocationRecordRoutes registers the routes for allocation
// records with the RouterGroup that is passed.
//
// Records are read only over HTTP. They are written exclusively by
// committing a source record.
func RegisterAllocationRecordRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAllocationRecordList)
		r.GET("", GetAllocationRecords)
	}

	// AllocationRecord with ID
	{
		r.OPTIONS("/:id", OptionsAllocationRecordDetail)
		r.GET("/:id", GetAllocationRecord)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AllocationRecords
// @Success		204
// @Router			/v1/allocation-records [options]
func OptionsAllocationRecordList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AllocationRecords
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-records/{id} [options]
func OptionsAllocationRecordDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.AllocationRecord{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get allocation records
// @Description	Returns a list of allocation records
// @Tags			AllocationRecords
// @Produce		json
// @Success		200	{object}	AllocationRecordListResponse
// @Failure		400	{object}	AllocationRecordListResponse
// @Failure		500	{object}	AllocationRecordListResponse
// @Router			/v1/allocation-records [get]
// @Param			sourceType	query	string	false	"Filter by kind of the source record"	Enums(cost, expense, revenue, financial_matter)
// @Param			source		query	string	false	"Filter by ID of the source record"
// @Param			config		query	string	false	"Filter by ID of the allocation config"
// @Param			team		query	string	false	"Filter by ID of the team"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in the note"
// @Param			offset		query	uint	false	"The offset of the first record returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of records to return. Defaults to 50."
func GetAllocationRecords(c *gin.Context) {
	var filter AllocationRecordQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRecordListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("date(date) DESC, created_at ASC").
		Where(&filterModel, queryFields...)

	q = noteFilters(q, setFields, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 records and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var records []models.AllocationRecord
	err = q.Find(&records).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRecordListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRecordListResponse{
			Error: &e,
		})
		return
	}

	data := make([]AllocationRecord, 0)
	for _, record := range records {
		data = append(data, newAllocationRecord(c, record))
	}

	c.JSON(http.StatusOK, AllocationRecordListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get allocation record
// @Description	Returns a specific allocation record
// @Tags			AllocationRecords
// @Produce		json
// @Success		200	{object}	AllocationRecordResponse
// @Failure		400	{object}	AllocationRecordResponse
// @Failure		404	{object}	AllocationRecordResponse
// @Failure		500	{object}	AllocationRecordResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-records/{id} [get]
func GetAllocationRecord(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRecordResponse{
			Error: &s,
		})
		return
	}

	var record models.AllocationRecord
	err = models.DB.First(&record, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRecordResponse{
			Error: &s,
		})
		return
	}

	data := newAllocationRecord(c, record)
	c.JSON(http.StatusOK, AllocationRecordResponse{Data: &data})
}
