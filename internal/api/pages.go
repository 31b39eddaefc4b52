package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/uyhome/adminctl/internal/models"
)

// PagePayload is the mutable part of a CMS page. All three language
// variants travel together; the server stores them as one record.
type PagePayload struct {
	Slug      string `json:"slug"`
	TitleRu   string `json:"title_ru"`
	TitleUz   string `json:"title_uz"`
	TitleEn   string `json:"title_en"`
	ContentRu string `json:"content_ru"`
	ContentUz string `json:"content_uz"`
	ContentEn string `json:"content_en"`
	IsActive  bool   `json:"is_active"`
}

type PagePatch struct {
	Slug      *string `json:"slug,omitempty"`
	TitleRu   *string `json:"title_ru,omitempty"`
	TitleUz   *string `json:"title_uz,omitempty"`
	TitleEn   *string `json:"title_en,omitempty"`
	ContentRu *string `json:"content_ru,omitempty"`
	ContentUz *string `json:"content_uz,omitempty"`
	ContentEn *string `json:"content_en,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (c *Client) ListPages(ctx context.Context, f ListFilter) (*Page[models.Page], error) {
	return list[models.Page](ctx, c, "/pages", f.values(), "fetch pages")
}

func (c *Client) GetPage(ctx context.Context, id int64) (models.Page, error) {
	return get[models.Page](ctx, c, "/pages", id, "fetch page")
}

// GetPageBySlug resolves a page by its external identity.
func (c *Client) GetPageBySlug(ctx context.Context, slug string) (models.Page, error) {
	var p models.Page
	err := c.do(ctx, "fetch page", http.MethodGet, "/pages/slug/"+url.PathEscape(slug)+"/", nil, "", nil, &p)
	return p, err
}

func (c *Client) CreatePage(ctx context.Context, p PagePayload) (models.Page, error) {
	return create[models.Page](ctx, c, "/pages", p, "create page")
}

func (c *Client) UpdatePage(ctx context.Context, id int64, p PagePayload) (models.Page, error) {
	return update[models.Page](ctx, c, "/pages", id, p, "update page")
}

func (c *Client) PatchPage(ctx context.Context, id int64, p PagePatch) (models.Page, error) {
	return patch[models.Page](ctx, c, "/pages", id, p, "update page")
}

func (c *Client) DeletePage(ctx context.Context, id int64) error {
	return del(ctx, c, "/pages", id, "delete page")
}
