package api

import (
	"context"
	"net/http"

	"github.com/uyhome/adminctl/internal/models"
)

// Dashboard fetches the aggregated landing dashboard. Read-only.
func (c *Client) Dashboard(ctx context.Context) (models.DashboardData, error) {
	var d models.DashboardData
	err := c.do(ctx, "fetch dashboard", http.MethodGet, "/dashboard/", nil, "", nil, &d)
	return d, err
}

// EskizBalance fetches the remaining SMS balance of the platform's Eskiz
// account.
func (c *Client) EskizBalance(ctx context.Context) (models.EskizBalance, error) {
	var b models.EskizBalance
	err := c.do(ctx, "fetch eskiz balance", http.MethodGet, "/eskiz/balance/", nil, "", nil, &b)
	return b, err
}
