package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/models"
	"github.com/uyhome/adminctl/internal/store"
)

func (a *App) Banners(ctx context.Context) error {
	if !a.ensureAuthenticated(ctx) {
		return nil
	}

	res := store.NewBanners(a.api, a.log)
	s := listScreen(a, "banners.title", res.Resource,
		[]string{"ID", a.i18n.T("prompt.title"), "Image", "Link", "End"},
		func(b models.Banner) []string {
			return []string{formatID(b.ID), b.Title, b.Image, formatOpt(b.Link), formatOpt(b.EndDate)}
		},
		func(f *store.BannerFilters, q string) { f.Search = q },
	)
	s.help = "Commands: list, search <text>, page <n>, size <n>, add, edit <id>, del <id>, back"

	saveBanner := func(ctx context.Context, save func(p api.BannerPayload) error) {
		p, file, err := a.promptBanner()
		if err != nil {
			return
		}
		if file != nil {
			defer file.Close()
		}
		if err := save(p); err != nil {
			a.sayErr(err)
			return
		}
		a.say("common.saved")
		s.render(ctx)
	}

	s.extra["add"] = func(ctx context.Context, _ []string) {
		saveBanner(ctx, func(p api.BannerPayload) error {
			_, err := res.Create(ctx, p)
			return err
		})
	}

	s.extra["edit"] = func(ctx context.Context, args []string) {
		id, ok := parseID(args)
		if !ok {
			fmt.Fprintln(a.out, "Usage: edit <id>")
			return
		}
		saveBanner(ctx, func(p api.BannerPayload) error {
			_, err := res.Update(ctx, id, p)
			return err
		})
	}

	s.extra["del"] = func(ctx context.Context, args []string) {
		id, ok := parseID(args)
		if !ok {
			fmt.Fprintln(a.out, "Usage: del <id>")
			return
		}
		if err := res.Delete(ctx, id); err != nil {
			a.sayErr(err)
			return
		}
		a.say("common.deleted")
	}

	return a.runScreen(ctx, s)
}

// promptBanner collects a banner payload. The image prompt accepts either a
// local file path, which becomes a multipart upload, or a URL. The returned
// file, when non-nil, must be closed by the caller after the API call.
func (a *App) promptBanner() (api.BannerPayload, *os.File, error) {
	var p api.BannerPayload
	var err error

	if p.Title, err = GetSimpleText(a.reader, a.i18n.T("prompt.title"), a.out); err != nil {
		return p, nil, err
	}

	link, err := GetSimpleText(a.reader, a.i18n.T("prompt.link"), a.out)
	if err != nil {
		return p, nil, err
	}
	if link != "" {
		p.Link = &link
	}

	endDate, err := GetSimpleText(a.reader, a.i18n.T("prompt.end_date"), a.out)
	if err != nil {
		return p, nil, err
	}
	if endDate != "" {
		p.EndDate = &endDate
	}

	image, err := GetSimpleText(a.reader, a.i18n.T("prompt.image"), a.out)
	if err != nil {
		return p, nil, err
	}
	if image == "" {
		return p, nil, nil
	}

	if f, openErr := os.Open(image); openErr == nil {
		p.ImageFile = &api.Upload{Name: filepath.Base(image), Reader: f}
		return p, f, nil
	}
	p.ImageURL = image
	return p, nil, nil
}
