package request

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/reqtrack/reqtrack/internal/application/request/usecases"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/common"
	"github.com/reqtrack/reqtrack/internal/shared/utils"
)

// Optional records whether a JSON key was present at all. An explicit null
// sets Set and leaves Value at its zero value.
type Optional[T any] struct {
	Set   bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

// optionalIDs maps a present null to an empty list so it clears the field.
func optionalIDs(o Optional[[]uint]) *[]uint {
	if !o.Set {
		return nil
	}
	v := o.Value
	if v == nil {
		v = []uint{}
	}
	return &v
}

func optionalFields(o Optional[map[string]any]) *map[string]any {
	if !o.Set {
		return nil
	}
	v := o.Value
	if v == nil {
		v = map[string]any{}
	}
	return &v
}

type CreateRequestRequest struct {
	Title           string         `json:"title" binding:"required,max=200"`
	Content         string         `json:"content" binding:"required"`
	Reporter        string         `json:"reporter" binding:"max=100"`
	Status          string         `json:"status"`
	Priority        string         `json:"priority"`
	Customers       []uint         `json:"customers"`
	Tags            []uint         `json:"tags"`
	ParentRequest   *uint          `json:"parent_request"`
	RelatedRequests []uint         `json:"related_requests"`
	CustomFields    map[string]any `json:"custom_fields"`
}

func (r *CreateRequestRequest) ToCommand(creatorID uint, c *gin.Context) usecases.CreateRequestCommand {
	return usecases.CreateRequestCommand{
		Title:        r.Title,
		Content:      r.Content,
		Reporter:     r.Reporter,
		Status:       r.Status,
		Priority:     r.Priority,
		CustomerIDs:  r.Customers,
		TagIDs:       r.Tags,
		ParentID:     r.ParentRequest,
		RelatedIDs:   r.RelatedRequests,
		CustomFields: r.CustomFields,
		CreatorID:    creatorID,
		Lang:         common.Lang(c),
	}
}

// UpdateRequestRequest: a missing key leaves the field alone. For the
// Optional fields an explicit null counts as present and clears the value.
type UpdateRequestRequest struct {
	Title           *string                  `json:"title" binding:"omitempty,max=200"`
	Content         *string                  `json:"content"`
	Reporter        *string                  `json:"reporter" binding:"omitempty,max=100"`
	Status          *string                  `json:"status"`
	Priority        *string                  `json:"priority"`
	Customers       Optional[[]uint]         `json:"customers" swaggertype:"array,integer"`
	Tags            Optional[[]uint]         `json:"tags" swaggertype:"array,integer"`
	ParentRequest   Optional[*uint]          `json:"parent_request" swaggertype:"integer"`
	RelatedRequests Optional[[]uint]         `json:"related_requests" swaggertype:"array,integer"`
	CustomFields    Optional[map[string]any] `json:"custom_fields" swaggertype:"object"`
}

func (r *UpdateRequestRequest) ToCommand(id, actorID uint, c *gin.Context) usecases.UpdateRequestCommand {
	return usecases.UpdateRequestCommand{
		ID:           id,
		ActorID:      actorID,
		Title:        r.Title,
		Content:      r.Content,
		Reporter:     r.Reporter,
		Status:       r.Status,
		Priority:     r.Priority,
		CustomerIDs:  optionalIDs(r.Customers),
		TagIDs:       optionalIDs(r.Tags),
		ParentSet:    r.ParentRequest.Set,
		ParentID:     r.ParentRequest.Value,
		RelatedIDs:   optionalIDs(r.RelatedRequests),
		CustomFields: optionalFields(r.CustomFields),
		Lang:         common.Lang(c),
	}
}

type AddCommentRequest struct {
	Content     string   `json:"content" binding:"required"`
	Attachments []string `json:"attachments"`
}

type FindSimilarRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func parseListRequestsQuery(c *gin.Context) (usecases.ListRequestsQuery, error) {
	customerID, err := common.ParseOptionalUintQuery(c, "customer")
	if err != nil {
		return usecases.ListRequestsQuery{}, err
	}
	tagID, err := common.ParseOptionalUintQuery(c, "tag")
	if err != nil {
		return usecases.ListRequestsQuery{}, err
	}
	p := utils.ParsePagination(c)
	return usecases.ListRequestsQuery{
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		CustomerID: customerID,
		TagID:      tagID,
		Search:     c.Query("search"),
		SortBy:     c.Query("sort"),
		SortOrder:  c.Query("order"),
		Page:       p.Page,
		PageSize:   p.PageSize,
		Lang:       common.Lang(c),
	}, nil
}
