package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/models"
	"github.com/uyhome/adminctl/internal/store"
)

func (a *App) Features(ctx context.Context) error {
	if !a.ensureAuthenticated(ctx) {
		return nil
	}

	res := store.NewFeatures(a.api, a.log)
	s := listScreen(a, "features.title", res.Resource,
		[]string{"ID", a.i18n.T("prompt.name")},
		func(f models.Feature) []string { return []string{formatID(f.ID), f.Name} },
		func(f *store.FeatureFilters, q string) { f.Search = q },
	)
	s.help = "Commands: list, search <text>, page <n>, size <n>, add, edit <id>, del <id>, back"

	// names are unique server-side, so a create can come back as a conflict
	saveFeature := func(ctx context.Context, save func(name string) error) {
		name, err := GetSimpleText(a.reader, a.i18n.T("prompt.name"), a.out)
		if err != nil || name == "" {
			return
		}
		if err := save(name); err != nil {
			if errors.Is(err, api.ErrConflict) {
				a.say("features.duplicate")
			} else {
				a.sayErr(err)
			}
			return
		}
		a.say("common.saved")
		s.render(ctx)
	}

	s.extra["add"] = func(ctx context.Context, _ []string) {
		saveFeature(ctx, func(name string) error {
			_, err := res.Create(ctx, name)
			return err
		})
	}

	s.extra["edit"] = func(ctx context.Context, args []string) {
		id, ok := parseID(args)
		if !ok {
			fmt.Fprintln(a.out, "Usage: edit <id>")
			return
		}
		saveFeature(ctx, func(name string) error {
			_, err := res.Update(ctx, id, name)
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
