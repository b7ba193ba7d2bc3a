package dto

import (
	"time"
)

type UserRefDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CustomerRefDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
}

type TagRefDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Category string `json:"category"`
}

type RequestRefDTO struct {
	ID            uint   `json:"id"`
	RequestNumber string `json:"request_number"`
	Title         string `json:"title"`
}

type CommentDTO struct {
	ID          string      `json:"id"`
	Content     string      `json:"content"`
	Author      *UserRefDTO `json:"author"`
	Attachments []string    `json:"attachments"`
	CreatedAt   time.Time   `json:"created_at"`
}

type HistoryDTO struct {
	Field     string      `json:"field"`
	OldValue  any         `json:"old_value"`
	NewValue  any         `json:"new_value"`
	ChangedBy *UserRefDTO `json:"changed_by"`
	ChangedAt time.Time   `json:"changed_at"`
}

// RequestDTO is a request with every reference resolved. References that no
// longer resolve are left out.
type RequestDTO struct {
	ID              uint             `json:"id"`
	RequestNumber   string           `json:"request_number"`
	Sequence        int64            `json:"sequence"`
	Title           string           `json:"title"`
	Content         string           `json:"content"`
	Reporter        string           `json:"reporter"`
	Status          string           `json:"status"`
	StatusLabel     string           `json:"status_label"`
	Priority        string           `json:"priority"`
	PriorityLabel   string           `json:"priority_label"`
	Customers       []CustomerRefDTO `json:"customers"`
	Tags            []TagRefDTO      `json:"tags"`
	ParentRequest   *RequestRefDTO   `json:"parent_request"`
	RelatedRequests []RequestRefDTO  `json:"related_requests"`
	CustomFields    map[string]any   `json:"custom_fields"`
	Comments        []CommentDTO     `json:"comments"`
	History         []HistoryDTO     `json:"history"`
	CreatedBy       *UserRefDTO      `json:"created_by"`
	UpdatedBy       *UserRefDTO      `json:"updated_by"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type SimilarRequestDTO struct {
	ID            uint   `json:"id"`
	RequestNumber string `json:"request_number"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Status        string `json:"status"`
}

type StatusStatDTO struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int64  `json:"count"`
}

type PriorityStatDTO struct {
	Priority string `json:"priority"`
	Label    string `json:"label"`
	Count    int64  `json:"count"`
}

type TagStatDTO struct {
	TagID    uint   `json:"tag_id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type CustomerStatDTO struct {
	CustomerID uint   `json:"customer_id"`
	Name       string `json:"name"`
	Company    string `json:"company"`
	Count      int64  `json:"count"`
}

type MonthlyStatDTO struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

type StatsDTO struct {
	ByStatus     []StatusStatDTO   `json:"by_status"`
	ByPriority   []PriorityStatDTO `json:"by_priority"`
	TopTags      []TagStatDTO      `json:"top_tags"`
	Monthly      []MonthlyStatDTO  `json:"monthly"`
	TopCustomers []CustomerStatDTO `json:"top_customers"`
	Total        int64             `json:"total"`
	ThisMonth    int64             `json:"this_month"`
}

type RenderedCommentDTO struct {
	ID          string      `json:"id"`
	Author      *UserRefDTO `json:"author"`
	HTML        string      `json:"html"`
	Attachments []string    `json:"attachments"`
	CreatedAt   time.Time   `json:"created_at"`
}

type RenderedRequestDTO struct {
	ID            uint                 `json:"id"`
	RequestNumber string               `json:"request_number"`
	Title         string               `json:"title"`
	ContentHTML   string               `json:"content_html"`
	Comments      []RenderedCommentDTO `json:"comments"`
}
