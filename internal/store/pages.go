package store

import (
	"context"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/logging"
	"github.com/uyhome/adminctl/internal/models"
)

type PageFilters struct {
	Search   string
	Ordering string
}

// Pages is the view-model for the CMS pages screen. Creates refetch: the
// server orders pages by its own menu position rules, so local placement
// would lie.
type Pages struct {
	*Resource[models.Page, PageFilters]
	api *api.Client
}

func NewPages(c *api.Client, log logging.Logger) *Pages {
	s := &Pages{api: c}
	s.Resource = NewResource(Config[models.Page, PageFilters]{
		List: func(ctx context.Context, f PageFilters, page, size int) (*api.Page[models.Page], error) {
			return c.ListPages(ctx, api.ListFilter{Search: f.Search, Ordering: f.Ordering, Page: page, PageSize: size})
		},
		ID:           func(v models.Page) int64 { return v.ID },
		CreatePolicy: CreateRefetch,
		Logger:       log,
	})
	return s
}

func (s *Pages) Create(ctx context.Context, p api.PagePayload) (models.Page, error) {
	return s.createItem(ctx, func(ctx context.Context) (models.Page, error) {
		return s.api.CreatePage(ctx, p)
	})
}

func (s *Pages) Update(ctx context.Context, id int64, p api.PagePayload) (models.Page, error) {
	return s.replaceItem(ctx, func(ctx context.Context) (models.Page, error) {
		return s.api.UpdatePage(ctx, id, p)
	})
}

// SetActive toggles page visibility without resending content.
func (s *Pages) SetActive(ctx context.Context, id int64, active bool) (models.Page, error) {
	return s.replaceItem(ctx, func(ctx context.Context) (models.Page, error) {
		return s.api.PatchPage(ctx, id, api.PagePatch{IsActive: &active})
	})
}

func (s *Pages) Delete(ctx context.Context, id int64) error {
	return s.removeItem(ctx, id, func(ctx context.Context) error {
		return s.api.DeletePage(ctx, id)
	})
}
