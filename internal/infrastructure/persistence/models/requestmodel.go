package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// RequestModel keeps comments and history embedded as JSON columns; they are
// always loaded and saved with the request. Customer and tag links live in
// join tables so list filters and stats can use SQL.
type RequestModel struct {
	ID                uint                             `gorm:"primaryKey"`
	RequestNumber     string                           `gorm:"uniqueIndex;size:20;not null"`
	Sequence          int64                            `gorm:"uniqueIndex;not null"`
	Title             string                           `gorm:"size:255;not null"`
	Content           string                           `gorm:"type:text;not null"`
	Reporter          string                           `gorm:"size:100"`
	Status            string                           `gorm:"size:20;not null;index"`
	Priority          string                           `gorm:"size:20;not null;index"`
	ParentRequestID   *uint                            `gorm:"index"`
	RelatedRequestIDs datatypes.JSONSlice[uint]        `gorm:"not null"`
	CustomFields      datatypes.JSONMap                `gorm:"not null"`
	Comments          datatypes.JSONSlice[CommentJSON] `gorm:"not null"`
	History           datatypes.JSONSlice[HistoryJSON] `gorm:"not null"`
	CreatedBy         uint                             `gorm:"not null;index"`
	UpdatedBy         uint                             `gorm:"not null"`
	CreatedAt         int64                            `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt         int64                            `gorm:"autoUpdateTime:milli;not null"`

	// No foreign keys: references to customers, tags and other requests are
	// allowed to dangle after deletes.
}

func (RequestModel) TableName() string {
	return "requests"
}

type CommentJSON struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	AuthorID    uint     `json:"author_id"`
	Attachments []string `json:"attachments"`
	CreatedAt   int64    `json:"created_at"`
}

type HistoryJSON struct {
	Field     string          `json:"field"`
	OldValue  json.RawMessage `json:"old_value"`
	NewValue  json.RawMessage `json:"new_value"`
	ChangedBy uint            `json:"changed_by"`
	ChangedAt int64           `json:"changed_at"`
}

// RequestCustomerModel links a request to a customer. Position preserves the
// submitted order.
type RequestCustomerModel struct {
	RequestID  uint `gorm:"primaryKey;autoIncrement:false"`
	CustomerID uint `gorm:"primaryKey;autoIncrement:false;index"`
	Position   int  `gorm:"not null"`
}

func (RequestCustomerModel) TableName() string {
	return "request_customers"
}

type RequestTagModel struct {
	RequestID uint `gorm:"primaryKey;autoIncrement:false"`
	TagID     uint `gorm:"primaryKey;autoIncrement:false;index"`
	Position  int  `gorm:"not null"`
}

func (RequestTagModel) TableName() string {
	return "request_tags"
}

// SequenceModel is a named counter incremented inside the creating
// transaction.
type SequenceModel struct {
	Name  string `gorm:"primaryKey;size:50"`
	Value int64  `gorm:"not null;default:0"`
}

func (SequenceModel) TableName() string {
	return "sequences"
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&CustomerModel{},
		&TagModel{},
		&RequestModel{},
		&RequestCustomerModel{},
		&RequestTagModel{},
		&SequenceModel{},
	}
}
