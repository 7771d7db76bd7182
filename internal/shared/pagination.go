package shared

import "math"

// Pagination contains metadata for paginated listings.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes pagination metadata.
func NewPagination(page, perPage, total int) Pagination {
	if perPage <= 0 {
		perPage = 20
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	return Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// Paginate slices rows for the requested page. A non-positive perPage returns
// every row on a single page.
func Paginate[T any](rows []T, page, perPage int) ([]T, Pagination) {
	total := len(rows)
	if perPage <= 0 {
		p := Pagination{Page: 1, PerPage: total, Total: total, TotalPages: 1}
		if total == 0 {
			p.TotalPages = 0
		}
		return rows, p
	}
	p := NewPagination(page, perPage, total)
	if p.Page > p.TotalPages {
		return []T{}, p
	}
	start := (p.Page - 1) * p.PerPage
	end := start + p.PerPage
	if end > total {
		end = total
	}
	return rows[start:end], p
}
