package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListParamsDefaults(t *testing.T) {
	p := ParseListParams(url.Values{})
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, "name", p.Sort)
	assert.Equal(t, "asc", p.Order)
	assert.Empty(t, p.Search)
}

func TestParseListParamsClamps(t *testing.T) {
	p := ParseListParams(url.Values{
		"page":  {"-3"},
		"limit": {"9999"},
		"sort":  {"'; DROP TABLE inventory_items; --"},
		"order": {"sideways"},
	})
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, "name", p.Sort)
	assert.Equal(t, "asc", p.Order)

	p = ParseListParams(url.Values{"page": {"abc"}, "limit": {"0"}})
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.Limit)

	p = ParseListParams(url.Values{
		"page":   {"4"},
		"limit":  {"25"},
		"sort":   {"quantity"},
		"order":  {"DESC"},
		"search": {"  cable "},
	})
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, "quantity", p.Sort)
	assert.Equal(t, "desc", p.Order)
	assert.Equal(t, "cable", p.Search)
}

func TestOrderClauseWhitelist(t *testing.T) {
	p := ListParams{Sort: "price", Order: "desc"}
	assert.Equal(t, "COALESCE(price, 0) desc", p.OrderClause())

	p = ListParams{Sort: "createdAt", Order: "asc"}
	assert.Equal(t, "created_at asc", p.OrderClause())

	p = ListParams{Sort: "evil", Order: "asc"}
	assert.Equal(t, "LOWER(name) asc", p.OrderClause())
}

func TestOffset(t *testing.T) {
	p := ListParams{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())
}

func TestPaginate(t *testing.T) {
	pg := Paginate(25, 2, 10)
	assert.EqualValues(t, 25, pg.Total)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	pg = Paginate(25, 3, 10)
	assert.False(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	pg = Paginate(25, 1, 10)
	assert.True(t, pg.HasNext)
	assert.False(t, pg.HasPrev)

	pg = Paginate(0, 1, 10)
	assert.Equal(t, 0, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)

	pg = Paginate(30, 3, 10)
	assert.Equal(t, 3, pg.TotalPages)
	assert.False(t, pg.HasNext)
}
