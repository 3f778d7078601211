package shared

import (
	"net/http"
	"strconv"
)

type PageParams struct {
	Page     int
	PageSize int
}

// ParsePageParams reads 1-based page/pageSize query parameters, falling back
// to page 1 and defaultSize. pageSize is capped at maxSize when positive.
func ParsePageParams(r *http.Request, defaultSize, maxSize int) PageParams {
	page := 1
	size := defaultSize
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			size = v
		}
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return PageParams{Page: page, PageSize: size}
}
