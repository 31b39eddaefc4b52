package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/uyhome/adminctl/internal/models"
)

// Upload is a binary file attached to a mutating request.
type Upload struct {
	Name   string
	Reader io.Reader
}

// BannerPayload is the mutable part of a Banner. When ImageFile is set the
// request is sent as multipart/form-data with the binary attached;
// otherwise a JSON body referencing ImageURL is used.
type BannerPayload struct {
	Title     string
	Link      *string
	EndDate   *string
	ImageURL  string
	ImageFile *Upload
}

// bannerBody is the JSON form of BannerPayload.
type bannerBody struct {
	Title   string  `json:"title"`
	Image   string  `json:"image,omitempty"`
	Link    *string `json:"link,omitempty"`
	EndDate *string `json:"end_date,omitempty"`
}

func (p BannerPayload) body() bannerBody {
	return bannerBody{Title: p.Title, Image: p.ImageURL, Link: p.Link, EndDate: p.EndDate}
}

func (c *Client) ListBanners(ctx context.Context, f ListFilter) (*Page[models.Banner], error) {
	return list[models.Banner](ctx, c, "/banners", f.values(), "fetch banners")
}

func (c *Client) GetBanner(ctx context.Context, id int64) (models.Banner, error) {
	return get[models.Banner](ctx, c, "/banners", id, "fetch banner")
}

func (c *Client) CreateBanner(ctx context.Context, p BannerPayload) (models.Banner, error) {
	if p.ImageFile == nil {
		return create[models.Banner](ctx, c, "/banners", p.body(), "create banner")
	}
	return c.sendBannerForm(ctx, http.MethodPost, "/banners/", p, "create banner")
}

func (c *Client) UpdateBanner(ctx context.Context, id int64, p BannerPayload) (models.Banner, error) {
	if p.ImageFile == nil {
		return update[models.Banner](ctx, c, "/banners", id, p.body(), "update banner")
	}
	return c.sendBannerForm(ctx, http.MethodPut, fmt.Sprintf("/banners/%d/", id), p, "update banner")
}

func (c *Client) DeleteBanner(ctx context.Context, id int64) error {
	return del(ctx, c, "/banners", id, "delete banner")
}

// sendBannerForm writes the banner fields and the image binary as a
// multipart form and executes the request.
func (c *Client) sendBannerForm(ctx context.Context, method, path string, p BannerPayload, op string) (models.Banner, error) {
	var banner models.Banner

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("title", p.Title); err != nil {
		return banner, &RequestError{Op: op, Err: err}
	}
	if p.Link != nil {
		if err := w.WriteField("link", *p.Link); err != nil {
			return banner, &RequestError{Op: op, Err: err}
		}
	}
	if p.EndDate != nil {
		if err := w.WriteField("end_date", *p.EndDate); err != nil {
			return banner, &RequestError{Op: op, Err: err}
		}
	}

	part, err := w.CreateFormFile("image", p.ImageFile.Name)
	if err != nil {
		return banner, &RequestError{Op: op, Err: err}
	}
	if _, err := io.Copy(part, p.ImageFile.Reader); err != nil {
		return banner, &RequestError{Op: op, Err: err}
	}
	if err := w.Close(); err != nil {
		return banner, &RequestError{Op: op, Err: err}
	}

	err = c.do(ctx, op, method, path, nil, w.FormDataContentType(), &buf, &banner)
	return banner, err
}
