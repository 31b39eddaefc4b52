package store

import (
	"context"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/logging"
	"github.com/uyhome/adminctl/internal/models"
)

// PropertyFilters is the filter state of the properties screen, the richest
// of the list views.
type PropertyFilters struct {
	Search          string
	Category        int64
	City            int64
	TransactionType models.TransactionType
	Status          models.PropertyStatus
	Ordering        string
}

// Properties is the view-model for the listings screen.
type Properties struct {
	*Resource[models.Property, PropertyFilters]
	api *api.Client
}

func NewProperties(c *api.Client, log logging.Logger) *Properties {
	s := &Properties{api: c}
	s.Resource = NewResource(Config[models.Property, PropertyFilters]{
		List: func(ctx context.Context, f PropertyFilters, page, size int) (*api.Page[models.Property], error) {
			return c.ListProperties(ctx, api.PropertyFilter{
				Search:          f.Search,
				Category:        f.Category,
				City:            f.City,
				TransactionType: f.TransactionType,
				Status:          f.Status,
				Ordering:        f.Ordering,
				Page:            page,
				PageSize:        size,
			})
		},
		ID:           func(v models.Property) int64 { return v.ID },
		CreatePolicy: CreatePrepend,
		Logger:       log,
	})
	return s
}

func (s *Properties) Create(ctx context.Context, p api.PropertyPayload) (models.Property, error) {
	return s.createItem(ctx, func(ctx context.Context) (models.Property, error) {
		return s.api.CreateProperty(ctx, p)
	})
}

func (s *Properties) Update(ctx context.Context, id int64, p api.PropertyPayload) (models.Property, error) {
	return s.replaceItem(ctx, func(ctx context.Context) (models.Property, error) {
		return s.api.UpdateProperty(ctx, id, p)
	})
}

func (s *Properties) Patch(ctx context.Context, id int64, p api.PropertyPatch) (models.Property, error) {
	return s.replaceItem(ctx, func(ctx context.Context) (models.Property, error) {
		return s.api.PatchProperty(ctx, id, p)
	})
}

// SetStatus is the moderation operation: approve, reject or archive a
// listing in place.
func (s *Properties) SetStatus(ctx context.Context, id int64, status models.PropertyStatus) (models.Property, error) {
	return s.Patch(ctx, id, api.PropertyPatch{Status: &status})
}

func (s *Properties) Delete(ctx context.Context, id int64) error {
	return s.removeItem(ctx, id, func(ctx context.Context) error {
		return s.api.DeleteProperty(ctx, id)
	})
}
