package dto

import (
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"conectapro/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"      validate:"omitempty"`
	Limit   int    `json:"page_size" validate:"omitempty"`
	SortBy  string `json:"sort_by"   validate:"omitempty"`
	SortDir string `json:"sort_dir"  validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// page_size is the page length; limit is accepted as an alias.
// With defaultRequest set, missing values fall back to page 1, ten items, newest first.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	size := queryParams.Get(constant.RequestParamPageSize)
	if size == "" {
		size = queryParams.Get(constant.RequestParamLimit)
	}

	if size != "" {
		if sizeInt, err := strconv.Atoi(size); err == nil && sizeInt > 0 {
			q.Limit = min(sizeInt, constant.MaxValueLimit)
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}

		if q.SortDir == "" {
			q.SortDir = constant.DefaultValueSortDir
		}
	}
}

// RestrictSort keeps SortBy only when it names one of the allowed columns, else uses fallback.
// The ordering clause is interpolated into SQL, so request values never reach it unchecked.
func (q *QueryParams) RestrictSort(fallback string, allowed ...string) {
	if !slices.Contains(allowed, q.SortBy) {
		q.SortBy = fallback
	}

	if q.SortDir == "" {
		q.SortDir = constant.DefaultValueSortDir
	}
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

func NewPagination(params QueryParams, total int) Pagination {
	return Pagination{
		Page:       params.Page,
		PageSize:   params.Limit,
		TotalItems: total,
		TotalPages: CalculateTotalPage(total, params.Limit),
	}
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}
