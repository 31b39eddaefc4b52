package api

import (
	"context"

	"github.com/uyhome/adminctl/internal/models"
)

type FeaturePayload struct {
	Name string `json:"name"`
}

type FeaturePatch struct {
	Name *string `json:"name,omitempty"`
}

func (c *Client) ListFeatures(ctx context.Context, f ListFilter) (*Page[models.Feature], error) {
	return list[models.Feature](ctx, c, "/features", f.values(), "fetch features")
}

func (c *Client) GetFeature(ctx context.Context, id int64) (models.Feature, error) {
	return get[models.Feature](ctx, c, "/features", id, "fetch feature")
}

// CreateFeature creates a feature. The server enforces name uniqueness and
// answers 409 on duplicates, so callers can test errors.Is(err, ErrConflict)
// instead of matching message text.
func (c *Client) CreateFeature(ctx context.Context, p FeaturePayload) (models.Feature, error) {
	return create[models.Feature](ctx, c, "/features", p, "create feature")
}

func (c *Client) UpdateFeature(ctx context.Context, id int64, p FeaturePayload) (models.Feature, error) {
	return update[models.Feature](ctx, c, "/features", id, p, "update feature")
}

func (c *Client) PatchFeature(ctx context.Context, id int64, p FeaturePatch) (models.Feature, error) {
	return patch[models.Feature](ctx, c, "/features", id, p, "update feature")
}

func (c *Client) DeleteFeature(ctx context.Context, id int64) error {
	return del(ctx, c, "/features", id, "delete feature")
}
