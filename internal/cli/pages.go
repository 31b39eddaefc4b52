package cli

import (
	"context"
	"fmt"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/models"
	"github.com/uyhome/adminctl/internal/store"
)

func (a *App) Pages(ctx context.Context) error {
	if !a.ensureAuthenticated(ctx) {
		return nil
	}

	res := store.NewPages(a.api, a.log)
	s := listScreen(a, "pages.title", res.Resource,
		[]string{"ID", "Slug", a.i18n.T("prompt.title"), "Active"},
		func(p models.Page) []string {
			active := "-"
			if p.IsActive {
				active = "+"
			}
			return []string{formatID(p.ID), p.Slug, a.pageTitle(p), active}
		},
		func(f *store.PageFilters, q string) { f.Search = q },
	)
	s.help = "Commands: list, search <text>, page <n>, size <n>, add, edit <id>, on <id>, off <id>, show <slug>, del <id>, back"

	s.extra["add"] = func(ctx context.Context, _ []string) {
		p, err := a.promptPage(api.PagePayload{IsActive: true})
		if err != nil {
			return
		}
		if _, err := res.Create(ctx, p); err != nil {
			a.sayErr(err)
			return
		}
		a.say("common.saved")
		s.render(ctx)
	}

	s.extra["edit"] = func(ctx context.Context, args []string) {
		id, ok := parseID(args)
		if !ok {
			fmt.Fprintln(a.out, "Usage: edit <id>")
			return
		}
		p, err := a.promptPage(api.PagePayload{IsActive: true})
		if err != nil {
			return
		}
		if _, err := res.Update(ctx, id, p); err != nil {
			a.sayErr(err)
			return
		}
		a.say("common.saved")
		s.render(ctx)
	}

	setActive := func(ctx context.Context, args []string, active bool) {
		id, ok := parseID(args)
		if !ok {
			fmt.Fprintln(a.out, "Usage: on|off <id>")
			return
		}
		if _, err := res.SetActive(ctx, id, active); err != nil {
			a.sayErr(err)
			return
		}
		a.say("common.saved")
		s.render(ctx)
	}
	s.extra["on"] = func(ctx context.Context, args []string) { setActive(ctx, args, true) }
	s.extra["off"] = func(ctx context.Context, args []string) { setActive(ctx, args, false) }

	s.extra["show"] = func(ctx context.Context, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: show <slug>")
			return
		}
		p, err := a.api.GetPageBySlug(ctx, args[0])
		if err != nil {
			a.sayErr(err)
			return
		}
		printTable(a.out, []string{"Field", "ru", "uz", "en"}, [][]string{
			{a.i18n.T("prompt.title"), p.TitleRu, p.TitleUz, p.TitleEn},
			{a.i18n.T("prompt.content"), p.ContentRu, p.ContentUz, p.ContentEn},
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

// pageTitle picks the title matching the active interface language.
func (a *App) pageTitle(p models.Page) string {
	switch a.i18n.Locale() {
	case "uz":
		return p.TitleUz
	case "en":
		return p.TitleEn
	default:
		return p.TitleRu
	}
}

func (a *App) promptPage(p api.PagePayload) (api.PagePayload, error) {
	var err error
	if p.Slug, err = GetSimpleText(a.reader, a.i18n.T("prompt.slug"), a.out); err != nil {
		return p, err
	}
	if p.TitleRu, err = GetSimpleText(a.reader, a.i18n.T("prompt.title")+" (ru)", a.out); err != nil {
		return p, err
	}
	if p.TitleUz, err = GetSimpleText(a.reader, a.i18n.T("prompt.title")+" (uz)", a.out); err != nil {
		return p, err
	}
	if p.TitleEn, err = GetSimpleText(a.reader, a.i18n.T("prompt.title")+" (en)", a.out); err != nil {
		return p, err
	}
	if p.ContentRu, err = GetSimpleText(a.reader, a.i18n.T("prompt.content")+" (ru)", a.out); err != nil {
		return p, err
	}
	if p.ContentUz, err = GetSimpleText(a.reader, a.i18n.T("prompt.content")+" (uz)", a.out); err != nil {
		return p, err
	}
	if p.ContentEn, err = GetSimpleText(a.reader, a.i18n.T("prompt.content")+" (en)", a.out); err != nil {
		return p, err
	}
	if p.IsActive, err = GetBool(a.reader, a.i18n.T("prompt.active"), a.out); err != nil {
		return p, err
	}
	return p, nil
}
