package helpers

import (
	"net/http"
	"strconv"

	"github.com/samber/lo"

	"campusevents/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the query string.
// Invalid or missing values fall back to defaults; page_size is capped at MaxPageSize.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     positiveInt(q.Get("page"), DefaultPage),
		PageSize: min(positiveInt(q.Get("page_size"), DefaultPageSize), MaxPageSize),
	}
}

func positiveInt(s string, fallback int) int {
	if v, err := strconv.Atoi(s); err == nil && v >= 1 {
		return v
	}
	return fallback
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginate returns the requested page of items and its metadata.
// A page past the end yields an empty, non-nil slice.
func Paginate[T any](items []T, p domain.PaginationParams) ([]T, PaginationMeta) {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (len(items) + p.PageSize - 1) / p.PageSize
	}
	meta := PaginationMeta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      len(items),
		TotalPages: totalPages,
	}
	return lo.Subset(items, p.Offset(), uint(p.PageSize)), meta
}
