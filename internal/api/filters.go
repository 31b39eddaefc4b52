package api

import (
	"net/url"
	"strconv"
)

// Filter field serialization: absent (zero) fields are omitted from the
// query string, never sent as empty values.

func setStr(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func setInt64(q url.Values, key string, v int64) {
	if v > 0 {
		q.Set(key, strconv.FormatInt(v, 10))
	}
}

func setFloat(q url.Values, key string, v float64) {
	if v > 0 {
		q.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
	}
}

// ListFilter is the common filter shape of the simple list endpoints
// (cities, districts, features, pages, banners, tariffs).
type ListFilter struct {
	Search   string
	Ordering string
	Page     int
	PageSize int
}

func (f ListFilter) values() url.Values {
	q := url.Values{}
	setStr(q, "search", f.Search)
	setStr(q, "ordering", f.Ordering)
	setInt(q, "page", f.Page)
	setInt(q, "page_size", f.PageSize)
	return q
}
