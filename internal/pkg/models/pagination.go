package models

// Pagination defaults and limits.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// PaginationQuery holds the requested page window.
type PaginationQuery struct {
	Page  int
	Limit int
}

// Offset returns the storage offset for the window.
func (p PaginationQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PaginationMeta describes a paginated result set.
type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPaginationMeta computes the meta block for a result set.
func NewPaginationMeta(q PaginationQuery, total int) PaginationMeta {
	totalPages := total / q.Limit
	if total%q.Limit != 0 {
		totalPages++
	}
	return PaginationMeta{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Paginated wraps a page of results with its meta block.
type Paginated struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}
