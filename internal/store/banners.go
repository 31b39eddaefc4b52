package store

import (
	"context"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/logging"
	"github.com/uyhome/adminctl/internal/models"
)

type BannerFilters struct {
	Search   string
	Ordering string
}

// Banners is the view-model for the banners screen. Creates refetch: the
// server assigns the stored image URL and display order, neither of which
// the client can synthesize from the upload.
type Banners struct {
	*Resource[models.Banner, BannerFilters]
	api *api.Client
}

func NewBanners(c *api.Client, log logging.Logger) *Banners {
	s := &Banners{api: c}
	s.Resource = NewResource(Config[models.Banner, BannerFilters]{
		List: func(ctx context.Context, f BannerFilters, page, size int) (*api.Page[models.Banner], error) {
			return c.ListBanners(ctx, api.ListFilter{Search: f.Search, Ordering: f.Ordering, Page: page, PageSize: size})
		},
		ID:           func(v models.Banner) int64 { return v.ID },
		CreatePolicy: CreateRefetch,
		Logger:       log,
	})
	return s
}

func (s *Banners) Create(ctx context.Context, p api.BannerPayload) (models.Banner, error) {
	return s.createItem(ctx, func(ctx context.Context) (models.Banner, error) {
		return s.api.CreateBanner(ctx, p)
	})
}

func (s *Banners) Update(ctx context.Context, id int64, p api.BannerPayload) (models.Banner, error) {
	return s.replaceItem(ctx, func(ctx context.Context) (models.Banner, error) {
		return s.api.UpdateBanner(ctx, id, p)
	})
}

func (s *Banners) Delete(ctx context.Context, id int64) error {
	return s.removeItem(ctx, id, func(ctx context.Context) error {
		return s.api.DeleteBanner(ctx, id)
	})
}
