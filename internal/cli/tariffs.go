package cli

import (
	"context"
	"fmt"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/models"
	"github.com/uyhome/adminctl/internal/store"
)

func (a *App) Tariffs(ctx context.Context) error {
	if !a.ensureAuthenticated(ctx) {
		return nil
	}

	res := store.NewTariffs(a.api, a.log)
	s := listScreen(a, "tariffs.title", res.Resource,
		[]string{"ID", a.i18n.T("prompt.name"), a.i18n.T("prompt.price"), a.i18n.T("prompt.duration"), a.i18n.T("prompt.categories")},
		func(t models.Tariff) []string {
			return []string{
				formatID(t.ID), t.Name, formatFloat(t.Price),
				fmt.Sprintf("%d", t.DurationDays), formatIDs(t.Categories),
			}
		},
		func(f *store.TariffFilters, q string) { f.Search = q },
	)
	s.help = "Commands: list, search <text>, page <n>, size <n>, add, edit <id>, del <id>, back"

	s.extra["add"] = func(ctx context.Context, _ []string) {
		p, err := a.promptTariff()
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
		p, err := a.promptTariff()
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

func (a *App) promptTariff() (api.TariffPayload, error) {
	var p api.TariffPayload
	var err error

	if p.Name, err = GetSimpleText(a.reader, a.i18n.T("prompt.name"), a.out); err != nil {
		return p, err
	}
	if p.Price, err = GetFloat(a.reader, a.i18n.T("prompt.price"), a.out); err != nil {
		return p, err
	}
	if p.DurationDays, err = GetInt(a.reader, a.i18n.T("prompt.duration"), a.out); err != nil {
		return p, err
	}
	if p.Categories, err = GetIDList(a.reader, a.i18n.T("prompt.categories"), a.out); err != nil {
		return p, err
	}
	return p, nil
}
