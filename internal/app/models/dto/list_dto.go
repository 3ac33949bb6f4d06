package dto

import (
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/helpers"
)

// ListQuery carries the optional query parameters every list endpoint
// accepts. Page/Size enable the paginated envelope; with both unset the
// endpoint returns the full array, matching the original contract.
type ListQuery struct {
	IsActive  *bool  `form:"isActive"`
	OrderBy   string `form:"orderBy"`
	Order     string `form:"order"`
	ExcludeID int64  `form:"excludeId"`
	Query     string `form:"q"`
	Page      int    `form:"page"`
	Size      int    `form:"size"`
}

// Paginated reports whether the caller asked for the paged envelope.
func (q *ListQuery) Paginated() bool {
	return q.Page > 0 || q.Size > 0
}

// PagedResponse wraps one page of a listing.
type PagedResponse struct {
	Items      interface{}            `json:"items"`
	Pagination helpers.PaginationInfo `json:"pagination"`
}
