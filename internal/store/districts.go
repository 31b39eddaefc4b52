package store

import (
	"context"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/logging"
	"github.com/uyhome/adminctl/internal/models"
)

type DistrictFilters struct {
	Search   string
	Ordering string
}

// Districts is the view-model for the districts screen.
type Districts struct {
	*Resource[models.District, DistrictFilters]
	api *api.Client
}

func NewDistricts(c *api.Client, log logging.Logger) *Districts {
	s := &Districts{api: c}
	s.Resource = NewResource(Config[models.District, DistrictFilters]{
		List: func(ctx context.Context, f DistrictFilters, page, size int) (*api.Page[models.District], error) {
			return c.ListDistricts(ctx, api.ListFilter{Search: f.Search, Ordering: f.Ordering, Page: page, PageSize: size})
		},
		ID:           func(v models.District) int64 { return v.ID },
		CreatePolicy: CreatePrepend,
		Logger:       log,
	})
	return s
}

func (s *Districts) Create(ctx context.Context, name string) (models.District, error) {
	return s.createItem(ctx, func(ctx context.Context) (models.District, error) {
		return s.api.CreateDistrict(ctx, api.DistrictPayload{Name: name})
	})
}

func (s *Districts) Update(ctx context.Context, id int64, name string) (models.District, error) {
	return s.replaceItem(ctx, func(ctx context.Context) (models.District, error) {
		return s.api.UpdateDistrict(ctx, id, api.DistrictPayload{Name: name})
	})
}

func (s *Districts) Delete(ctx context.Context, id int64) error {
	return s.removeItem(ctx, id, func(ctx context.Context) error {
		return s.api.DeleteDistrict(ctx, id)
	})
}
