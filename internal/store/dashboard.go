package store

import (
	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/models"
)

// NewDashboard caches the read-only landing dashboard.
func NewDashboard(c *api.Client) *Loader[models.DashboardData] {
	return NewLoader(c.Dashboard)
}

// NewEskizBalance caches the platform's remaining SMS balance.
func NewEskizBalance(c *api.Client) *Loader[models.EskizBalance] {
	return NewLoader(c.EskizBalance)
}
