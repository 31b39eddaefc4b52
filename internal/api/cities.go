package api

import (
	"context"

	"github.com/uyhome/adminctl/internal/models"
)

// CityPayload is the mutable part of a City.
type CityPayload struct {
	Name string `json:"name"`
}

// CityPatch updates only the fields that are set.
type CityPatch struct {
	Name *string `json:"name,omitempty"`
}

func (c *Client) ListCities(ctx context.Context, f ListFilter) (*Page[models.City], error) {
	return list[models.City](ctx, c, "/cities", f.values(), "fetch cities")
}

func (c *Client) GetCity(ctx context.Context, id int64) (models.City, error) {
	return get[models.City](ctx, c, "/cities", id, "fetch city")
}

func (c *Client) CreateCity(ctx context.Context, p CityPayload) (models.City, error) {
	return create[models.City](ctx, c, "/cities", p, "create city")
}

func (c *Client) UpdateCity(ctx context.Context, id int64, p CityPayload) (models.City, error) {
	return update[models.City](ctx, c, "/cities", id, p, "update city")
}

func (c *Client) PatchCity(ctx context.Context, id int64, p CityPatch) (models.City, error) {
	return patch[models.City](ctx, c, "/cities", id, p, "update city")
}

func (c *Client) DeleteCity(ctx context.Context, id int64) error {
	return del(ctx, c, "/cities", id, "delete city")
}
