package api

import (
	"context"

	"github.com/uyhome/adminctl/internal/models"
)

type TariffPayload struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days"`
	Categories   []int64 `json:"categories"`
}

type TariffPatch struct {
	Name         *string  `json:"name,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	DurationDays *int     `json:"duration_days,omitempty"`
	Categories   []int64  `json:"categories,omitempty"`
}

func (c *Client) ListTariffs(ctx context.Context, f ListFilter) (*Page[models.Tariff], error) {
	return list[models.Tariff](ctx, c, "/tariffs", f.values(), "fetch tariffs")
}

func (c *Client) GetTariff(ctx context.Context, id int64) (models.Tariff, error) {
	return get[models.Tariff](ctx, c, "/tariffs", id, "fetch tariff")
}

func (c *Client) CreateTariff(ctx context.Context, p TariffPayload) (models.Tariff, error) {
	return create[models.Tariff](ctx, c, "/tariffs", p, "create tariff")
}

func (c *Client) UpdateTariff(ctx context.Context, id int64, p TariffPayload) (models.Tariff, error) {
	return update[models.Tariff](ctx, c, "/tariffs", id, p, "update tariff")
}

func (c *Client) PatchTariff(ctx context.Context, id int64, p TariffPatch) (models.Tariff, error) {
	return patch[models.Tariff](ctx, c, "/tariffs", id, p, "update tariff")
}

func (c *Client) DeleteTariff(ctx context.Context, id int64) error {
	return del(ctx, c, "/tariffs", id, "delete tariff")
}
