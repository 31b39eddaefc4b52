package api

import (
	"context"

	"github.com/uyhome/adminctl/internal/models"
)

type DistrictPayload struct {
	Name string `json:"name"`
}

type DistrictPatch struct {
	Name *string `json:"name,omitempty"`
}

func (c *Client) ListDistricts(ctx context.Context, f ListFilter) (*Page[models.District], error) {
	return list[models.District](ctx, c, "/districts", f.values(), "fetch districts")
}

func (c *Client) GetDistrict(ctx context.Context, id int64) (models.District, error) {
	return get[models.District](ctx, c, "/districts", id, "fetch district")
}

func (c *Client) CreateDistrict(ctx context.Context, p DistrictPayload) (models.District, error) {
	return create[models.District](ctx, c, "/districts", p, "create district")
}

func (c *Client) UpdateDistrict(ctx context.Context, id int64, p DistrictPayload) (models.District, error) {
	return update[models.District](ctx, c, "/districts", id, p, "update district")
}

func (c *Client) PatchDistrict(ctx context.Context, id int64, p DistrictPatch) (models.District, error) {
	return patch[models.District](ctx, c, "/districts", id, p, "update district")
}

func (c *Client) DeleteDistrict(ctx context.Context, id int64) error {
	return del(ctx, c, "/districts", id, "delete district")
}
