package store

import (
	"context"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/logging"
	"github.com/uyhome/adminctl/internal/models"
)

type TariffFilters struct {
	Search   string
	Ordering string
}

// Tariffs is the view-model for the placement plans screen.
type Tariffs struct {
	*Resource[models.Tariff, TariffFilters]
	api *api.Client
}

func NewTariffs(c *api.Client, log logging.Logger) *Tariffs {
	s := &Tariffs{api: c}
	s.Resource = NewResource(Config[models.Tariff, TariffFilters]{
		List: func(ctx context.Context, f TariffFilters, page, size int) (*api.Page[models.Tariff], error) {
			return c.ListTariffs(ctx, api.ListFilter{Search: f.Search, Ordering: f.Ordering, Page: page, PageSize: size})
		},
		ID:           func(v models.Tariff) int64 { return v.ID },
		CreatePolicy: CreatePrepend,
		Logger:       log,
	})
	return s
}

func (s *Tariffs) Create(ctx context.Context, p api.TariffPayload) (models.Tariff, error) {
	return s.createItem(ctx, func(ctx context.Context) (models.Tariff, error) {
		return s.api.CreateTariff(ctx, p)
	})
}

func (s *Tariffs) Update(ctx context.Context, id int64, p api.TariffPayload) (models.Tariff, error) {
	return s.replaceItem(ctx, func(ctx context.Context) (models.Tariff, error) {
		return s.api.UpdateTariff(ctx, id, p)
	})
}

func (s *Tariffs) Delete(ctx context.Context, id int64) error {
	return s.removeItem(ctx, id, func(ctx context.Context) error {
		return s.api.DeleteTariff(ctx, id)
	})
}
