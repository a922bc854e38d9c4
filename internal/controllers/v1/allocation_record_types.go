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

type AllocationRecordLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/allocation-records/a0cd2fc9-9a87-4071-bbb9-dc8b76efc5f2"`   // The record itself
	Config string `json:"config" example:"https://example.com/api/v1/allocation-configs/3b1ea324-d438-4419-882a-2fc91d71772f"` // The config the split was computed from
	Team   string `json:"team" example:"https://example.com/api/v1/teams/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`                // The team the amount was allocated to
}

// AllocationRecord is the API representation of a committed allocation
// row. Records are written by committing a source record, never
// directly, so there is no Editable type.
type AllocationRecord struct {
	models.DefaultModel
	SourceType models.SourceType     `json:"sourceType" example:"cost"`                               // Kind of the source record
	SourceID   uuid.UUID             `json:"sourceId" example:"d1b8b8b2-4432-4ad7-bc1d-29d3b944f61b"` // ID of the source record
	ConfigID   uuid.UUID             `json:"configId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the config the split was computed from
	TeamID     uuid.UUID             `json:"teamId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`   // ID of the team the amount was allocated to
	Ratio      decimal.Decimal       `json:"ratio" example:"33.33"`                                   // The share that was applied, captured at commit time
	Amount     decimal.Decimal       `json:"amount" example:"333.30"`                                 // The allocated amount
	Date       time.Time             `json:"date" example:"2024-02-17T00:00:00Z"`                     // Date of the source record
	Note       string                `json:"note" example:"Q1 data center invoice" default:""`        // Note of the source record
	Links      AllocationRecordLinks `json:"links"`
}

func newAllocationRecord(c *gin.Context, model models.AllocationRecord) AllocationRecord {
	url := c.GetString(string(models.DBContextURL))

	return AllocationRecord{
		DefaultModel: model.DefaultModel,
		SourceType:   model.SourceType,
		SourceID:     model.SourceID,
		ConfigID:     model.ConfigID,
		TeamID:       model.TeamID,
		Ratio:        model.Ratio,
		Amount:       model.Amount,
		Date:         model.Date,
		Note:         model.Note,
		Links: AllocationRecordLinks{
			Self:   fmt.Sprintf("%s/v1/allocation-records/%s", url, model.ID),
			Config: fmt.Sprintf("%s/v1/allocation-configs/%s", url, model.ConfigID),
			Team:   fmt.Sprintf("%s/v1/teams/%s", url, model.TeamID),
		},
	}
}

type AllocationRecordListResponse struct {
	Data       []AllocationRecord `json:"data"`                                                          // List of allocation records
	Error      *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination        `json:"pagination"`                                                    // Pagination information
}

type AllocationRecordResponse struct {
	Data  *AllocationRecord `json:"data"`                                                          // Data for the record
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationRecordQueryFilter struct {
	SourceType string         `form:"sourceType"`                 // By kind of the source record
	SourceID   mbgl_uuid.UUID `form:"source"`                     // By ID of the source record
	ConfigID   mbgl_uuid.UUID `form:"config"`                     // By ID of the allocation config
	TeamID     mbgl_uuid.UUID `form:"team"`                       // By ID of the team
	Note       string         `form:"note" filterField:"false"`   // By note
	Search     string         `form:"search" filterField:"false"` // By string in note
	Offset     uint           `form:"offset" filterField:"false"` // The offset of the first record returned. Defaults to 0.
	Limit      int            `form:"limit" filterField:"false"`  // Maximum number of records to return. Defaults to 50.
}

func (f AllocationRecordQueryFilter) model() (models.AllocationRecord, error) {
	if f.SourceType != "" && !models.SourceType(f.SourceType).Valid() {
		return models.AllocationRecord{}, models.ErrSourceTypeInvalid
	}

	return models.AllocationRecord{
		SourceType: models.SourceType(f.SourceType),
		SourceID:   f.SourceID.UUID,
		ConfigID:   f.ConfigID.UUID,
		TeamID:     f.TeamID.UUID,
	}, nil
}
