package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/uyhome/adminctl/internal/models"
)

// PaymentFilter narrows the payment list. Dates are "YYYY-MM-DD" strings
// as the API expects them.
type PaymentFilter struct {
	Search    string
	Status    models.PaymentStatus
	DateFrom  string
	DateTo    string
	AmountMin float64
	AmountMax float64
	Ordering  string
	Page      int
	PageSize  int
}

func (f PaymentFilter) values() url.Values {
	q := url.Values{}
	setStr(q, "search", f.Search)
	setStr(q, "status", string(f.Status))
	setStr(q, "date_from", f.DateFrom)
	setStr(q, "date_to", f.DateTo)
	setFloat(q, "amount_min", f.AmountMin)
	setFloat(q, "amount_max", f.AmountMax)
	setStr(q, "ordering", f.Ordering)
	setInt(q, "page", f.Page)
	setInt(q, "page_size", f.PageSize)
	return q
}

// StatsFilter bounds the aggregation window of the payments dashboard.
type StatsFilter struct {
	DateFrom string
	DateTo   string
}

func (f StatsFilter) values() url.Values {
	q := url.Values{}
	setStr(q, "date_from", f.DateFrom)
	setStr(q, "date_to", f.DateTo)
	return q
}

func (c *Client) ListPayments(ctx context.Context, f PaymentFilter) (*Page[models.Payment], error) {
	return list[models.Payment](ctx, c, "/payments", f.values(), "fetch payments")
}

// PaymentStats fetches the server-side payments aggregation. Read-only.
func (c *Client) PaymentStats(ctx context.Context, f StatsFilter) (models.PaymentStats, error) {
	var s models.PaymentStats
	err := c.do(ctx, "fetch payment stats", http.MethodGet, "/payments/stats/", f.values(), "", nil, &s)
	return s, err
}
