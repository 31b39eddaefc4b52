package store

import (
	"context"
	"sync"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/logging"
	"github.com/uyhome/adminctl/internal/models"
)

// PaymentFilters is the filter state of the payments screen: status plus
// date and amount ranges.
type PaymentFilters struct {
	Search    string
	Status    models.PaymentStatus
	DateFrom  string
	DateTo    string
	AmountMin float64
	AmountMax float64
	Ordering  string
}

// Payments is the read-only view-model for the payments list.
type Payments struct {
	*Resource[models.Payment, PaymentFilters]
}

func NewPayments(c *api.Client, log logging.Logger) *Payments {
	s := &Payments{}
	s.Resource = NewResource(Config[models.Payment, PaymentFilters]{
		List: func(ctx context.Context, f PaymentFilters, page, size int) (*api.Page[models.Payment], error) {
			return c.ListPayments(ctx, api.PaymentFilter{
				Search:    f.Search,
				Status:    f.Status,
				DateFrom:  f.DateFrom,
				DateTo:    f.DateTo,
				AmountMin: f.AmountMin,
				AmountMax: f.AmountMax,
				Ordering:  f.Ordering,
				Page:      page,
				PageSize:  size,
			})
		},
		ID:     func(v models.Payment) int64 { return v.ID },
		Logger: log,
	})
	return s
}

// PaymentStatsStore caches the payments aggregation for one date window.
type PaymentStatsStore struct {
	mu      sync.Mutex
	api     *api.Client
	filter  api.StatsFilter
	stats   models.PaymentStats
	loaded  bool
	loading bool
	err     string
}

func NewPaymentStats(c *api.Client) *PaymentStatsStore {
	return &PaymentStatsStore{api: c}
}

// SetWindow bounds the aggregation; the change takes effect on next Load.
func (s *PaymentStatsStore) SetWindow(dateFrom, dateTo string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = api.StatsFilter{DateFrom: dateFrom, DateTo: dateTo}
}

func (s *PaymentStatsStore) Load(ctx context.Context) (models.PaymentStats, error) {
	s.mu.Lock()
	f := s.filter
	s.loading = true
	s.mu.Unlock()

	stats, err := s.api.PaymentStats(ctx, f)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		return s.stats, err
	}
	s.err = ""
	s.stats = stats
	s.loaded = true
	return stats, nil
}

// Stats returns the cached aggregation and whether a load has succeeded.
func (s *PaymentStatsStore) Stats() (models.PaymentStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats, s.loaded
}

func (s *PaymentStatsStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
