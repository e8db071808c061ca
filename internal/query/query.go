// Package query turns raw list-request parameters into clamped, whitelisted
// values shared by every collection listing.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// sortColumns whitelists the sortable fields. String columns sort
// case-insensitively; price treats missing values as 0.
var sortColumns = map[string]string{
	"name":      "LOWER(name)",
	"quantity":  "quantity",
	"status":    "LOWER(status)",
	"price":     "COALESCE(price, 0)",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type ListParams struct {
	Search string
	Sort   string
	Order  string
	Page   int
	Limit  int
}

// ParseListParams reads search/sort/order/page/limit from a query string.
// Page floors to 1, limit clamps to [1,100] with a default of 10, an
// unrecognized sort field falls back to name, order defaults to asc.
func ParseListParams(q url.Values) ListParams {
	p := ListParams{
		Search: strings.TrimSpace(q.Get("search")),
		Sort:   q.Get("sort"),
		Order:  strings.ToLower(q.Get("order")),
		Page:   1,
		Limit:  DefaultLimit,
	}
	if _, ok := sortColumns[p.Sort]; !ok {
		p.Sort = "name"
	}
	if p.Order != "desc" {
		p.Order = "asc"
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 1 {
		p.Page = n
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		switch {
		case n < 1:
			p.Limit = 1
		case n > MaxLimit:
			p.Limit = MaxLimit
		default:
			p.Limit = n
		}
	}
	return p
}

// OrderClause returns the SQL ordering for the whitelisted sort field.
func (p ListParams) OrderClause() string {
	col, ok := sortColumns[p.Sort]
	if !ok {
		col = sortColumns["name"]
	}
	return col + " " + p.Order
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Paginate computes page metadata for a total row count.
func Paginate(total int64, page, limit int) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasNext:    int64(page*limit) < total,
		HasPrev:    page > 1,
	}
}
