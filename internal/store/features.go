package store

import (
	"context"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/logging"
	"github.com/uyhome/adminctl/internal/models"
)

type FeatureFilters struct {
	Search   string
	Ordering string
}

// Features is the view-model for the features screen. Duplicate names are
// reported by the server as 409; callers distinguish the case with
// errors.Is(err, api.ErrConflict) rather than inspecting message text.
type Features struct {
	*Resource[models.Feature, FeatureFilters]
	api *api.Client
}

func NewFeatures(c *api.Client, log logging.Logger) *Features {
	s := &Features{api: c}
	s.Resource = NewResource(Config[models.Feature, FeatureFilters]{
		List: func(ctx context.Context, f FeatureFilters, page, size int) (*api.Page[models.Feature], error) {
			return c.ListFeatures(ctx, api.ListFilter{Search: f.Search, Ordering: f.Ordering, Page: page, PageSize: size})
		},
		ID:           func(v models.Feature) int64 { return v.ID },
		CreatePolicy: CreatePrepend,
		Logger:       log,
	})
	return s
}

func (s *Features) Create(ctx context.Context, name string) (models.Feature, error) {
	return s.createItem(ctx, func(ctx context.Context) (models.Feature, error) {
		return s.api.CreateFeature(ctx, api.FeaturePayload{Name: name})
	})
}

func (s *Features) Update(ctx context.Context, id int64, name string) (models.Feature, error) {
	return s.replaceItem(ctx, func(ctx context.Context) (models.Feature, error) {
		return s.api.UpdateFeature(ctx, id, api.FeaturePayload{Name: name})
	})
}

func (s *Features) Delete(ctx context.Context, id int64) error {
	return s.removeItem(ctx, id, func(ctx context.Context) error {
		return s.api.DeleteFeature(ctx, id)
	})
}
