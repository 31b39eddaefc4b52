package cli

import (
	"context"
	"fmt"

	"github.com/uyhome/adminctl/internal/models"
	"github.com/uyhome/adminctl/internal/store"
)

func (a *App) Cities(ctx context.Context) error {
	if !a.ensureAuthenticated(ctx) {
		return nil
	}

	res := store.NewCities(a.api, a.log)
	s := listScreen(a, "cities.title", res.Resource,
		[]string{"ID", a.i18n.T("prompt.name")},
		func(c models.City) []string { return []string{formatID(c.ID), c.Name} },
		func(f *store.CityFilters, q string) { f.Search = q },
	)
	s.help = "Commands: list, search <text>, page <n>, size <n>, add, edit <id>, del <id>, back"

	s.extra["add"] = func(ctx context.Context, _ []string) {
		name, err := GetSimpleText(a.reader, a.i18n.T("prompt.name"), a.out)
		if err != nil || name == "" {
			return
		}
		if _, err := res.Create(ctx, name); err != nil {
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
		name, err := GetSimpleText(a.reader, a.i18n.T("prompt.name"), a.out)
		if err != nil || name == "" {
			return
		}
		if _, err := res.Update(ctx, id, name); err != nil {
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
