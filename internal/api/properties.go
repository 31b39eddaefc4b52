package api

import (
	"context"
	"net/url"

	"github.com/uyhome/adminctl/internal/models"
)

// PropertyFilter narrows the property list. Zero fields are omitted from
// the query string.
type PropertyFilter struct {
	Search          string
	Category        int64
	City            int64
	TransactionType models.TransactionType
	Status          models.PropertyStatus
	Ordering        string
	Page            int
	PageSize        int
}

func (f PropertyFilter) values() url.Values {
	q := url.Values{}
	setStr(q, "search", f.Search)
	setInt64(q, "category", f.Category)
	setInt64(q, "city", f.City)
	setStr(q, "transaction_type", string(f.TransactionType))
	setStr(q, "status", string(f.Status))
	setStr(q, "ordering", f.Ordering)
	setInt(q, "page", f.Page)
	setInt(q, "page_size", f.PageSize)
	return q
}

// PropertyPayload is the mutable part of a Property. Category and Features
// are sent as IDs; the server returns them denormalized.
type PropertyPayload struct {
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Category        int64                  `json:"category"`
	Price           float64                `json:"price"`
	TransactionType models.TransactionType `json:"transaction_type"`
	Specs           models.Specs           `json:"specs"`
	Features        []int64                `json:"features"`
	Location        models.Location        `json:"location"`
}

// PropertyPatch updates only the fields that are set; moderation uses the
// Status field alone.
type PropertyPatch struct {
	Title       *string                `json:"title,omitempty"`
	Description *string                `json:"description,omitempty"`
	Price       *float64               `json:"price,omitempty"`
	Status      *models.PropertyStatus `json:"status,omitempty"`
}

func (c *Client) ListProperties(ctx context.Context, f PropertyFilter) (*Page[models.Property], error) {
	return list[models.Property](ctx, c, "/properties", f.values(), "fetch properties")
}

func (c *Client) GetProperty(ctx context.Context, id int64) (models.Property, error) {
	return get[models.Property](ctx, c, "/properties", id, "fetch property")
}

func (c *Client) CreateProperty(ctx context.Context, p PropertyPayload) (models.Property, error) {
	return create[models.Property](ctx, c, "/properties", p, "create property")
}

func (c *Client) UpdateProperty(ctx context.Context, id int64, p PropertyPayload) (models.Property, error) {
	return update[models.Property](ctx, c, "/properties", id, p, "update property")
}

func (c *Client) PatchProperty(ctx context.Context, id int64, p PropertyPatch) (models.Property, error) {
	return patch[models.Property](ctx, c, "/properties", id, p, "update property")
}

func (c *Client) DeleteProperty(ctx context.Context, id int64) error {
	return del(ctx, c, "/properties", id, "delete property")
}
