package store

import (
	"context"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/logging"
	"github.com/uyhome/adminctl/internal/models"
)

// CityFilters is the filter state the cities screen owns. Clearing Search
// restores the unfiltered list.
type CityFilters struct {
	Search   string
	Ordering string
}

// Cities is the view-model for the cities screen. Creates prepend locally:
// the list is alphabetically small and a stale position until the next fetch
// is acceptable.
type Cities struct {
	*Resource[models.City, CityFilters]
	api *api.Client
}

func NewCities(c *api.Client, log logging.Logger) *Cities {
	s := &Cities{api: c}
	s.Resource = NewResource(Config[models.City, CityFilters]{
		List: func(ctx context.Context, f CityFilters, page, size int) (*api.Page[models.City], error) {
			return c.ListCities(ctx, api.ListFilter{Search: f.Search, Ordering: f.Ordering, Page: page, PageSize: size})
		},
		ID:           func(v models.City) int64 { return v.ID },
		CreatePolicy: CreatePrepend,
		Logger:       log,
	})
	return s
}

func (s *Cities) Create(ctx context.Context, name string) (models.City, error) {
	return s.createItem(ctx, func(ctx context.Context) (models.City, error) {
		return s.api.CreateCity(ctx, api.CityPayload{Name: name})
	})
}

func (s *Cities) Update(ctx context.Context, id int64, name string) (models.City, error) {
	return s.replaceItem(ctx, func(ctx context.Context) (models.City, error) {
		return s.api.UpdateCity(ctx, id, api.CityPayload{Name: name})
	})
}

func (s *Cities) Delete(ctx context.Context, id int64) error {
	return s.removeItem(ctx, id, func(ctx context.Context) error {
		return s.api.DeleteCity(ctx, id)
	})
}
