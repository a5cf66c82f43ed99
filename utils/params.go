package utils

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"quickcart/models"
)

// ParseID reads a positive numeric path parameter. ok is false for anything
// that is not a positive integer.
func ParseID(ps httprouter.Params, name string) (int, bool) {
	id, err := strconv.Atoi(ps.ByName(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParsePagination reads page/limit with the given default limit. The limit is
// capped at 100. A non-empty errMsg means the request must be rejected with
// 400.
func ParsePagination(r *http.Request, defaultLimit int) (page, limit int, errMsg string) {
	q := r.URL.Query()
	page, limit = 1, defaultLimit

	if raw := q.Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return 0, 0, "Page must be a positive number"
		}
		page = v
	}
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 || v > 100 {
			return 0, 0, "Limit must be a positive number between 1 and 100"
		}
		limit = v
	}
	return page, limit, ""
}

// Paginate computes the slice window for a page over total items together
// with the pagination metadata.
func Paginate(total, page, limit int) (start, end int, meta models.Pagination) {
	totalPages := (total + limit - 1) / limit
	start = (page - 1) * limit
	if start > total {
		start = total
	}
	end = start + limit
	if end > total {
		end = total
	}
	meta = models.Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
	return start, end, meta
}

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}
