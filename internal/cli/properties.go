package cli

import (
	"context"
	"fmt"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/models"
	"github.com/uyhome/adminctl/internal/store"
)

func (a *App) Properties(ctx context.Context) error {
	if !a.ensureAuthenticated(ctx) {
		return nil
	}

	res := store.NewProperties(a.api, a.log)
	s := listScreen(a, "properties.title", res.Resource,
		[]string{"ID", a.i18n.T("prompt.title"), a.i18n.T("prompt.category"), a.i18n.T("prompt.price"), "Type", a.i18n.T("prompt.status")},
		func(p models.Property) []string {
			return []string{
				formatID(p.ID), p.Title, p.Category.Name,
				formatFloat(p.Price), string(p.TransactionType), string(p.Status),
			}
		},
		func(f *store.PropertyFilters, q string) { f.Search = q },
	)
	s.help = "Commands: list, search <text>, page <n>, size <n>, add, edit <id>, status <id> <pending|active|rejected|archived>, show <id>, del <id>, filter <status|type|city|category> <v>, filter clear, back"

	s.extra["add"] = func(ctx context.Context, _ []string) {
		p, err := a.promptProperty()
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
		p, err := a.promptProperty()
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

	s.extra["status"] = func(ctx context.Context, args []string) {
		id, ok := parseID(args)
		if !ok || len(args) < 2 || !models.PropertyStatus(args[1]).Valid() {
			fmt.Fprintln(a.out, "Usage: status <id> <pending|active|rejected|archived>")
			return
		}
		if _, err := res.SetStatus(ctx, id, models.PropertyStatus(args[1])); err != nil {
			a.sayErr(err)
			return
		}
		a.say("common.saved")
		s.render(ctx)
	}

	s.extra["show"] = func(ctx context.Context, args []string) {
		id, ok := parseID(args)
		if !ok {
			fmt.Fprintln(a.out, "Usage: show <id>")
			return
		}
		p, err := a.api.GetProperty(ctx, id)
		if err != nil {
			a.sayErr(err)
			return
		}
		a.printProperty(p)
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

	s.extra["filter"] = func(ctx context.Context, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: filter <status|type|city|category> <v> | filter clear")
			return
		}
		switch args[0] {
		case "clear":
			res.UpdateFilters(func(f *store.PropertyFilters) { *f = store.PropertyFilters{} })
		case "status":
			if len(args) < 2 || !models.PropertyStatus(args[1]).Valid() {
				fmt.Fprintln(a.out, "Usage: filter status <pending|active|rejected|archived>")
				return
			}
			res.UpdateFilters(func(f *store.PropertyFilters) { f.Status = models.PropertyStatus(args[1]) })
		case "type":
			if len(args) < 2 || !models.TransactionType(args[1]).Valid() {
				fmt.Fprintln(a.out, "Usage: filter type <sale|rent>")
				return
			}
			res.UpdateFilters(func(f *store.PropertyFilters) { f.TransactionType = models.TransactionType(args[1]) })
		case "city":
			id, ok := parseID(args[1:])
			if !ok {
				fmt.Fprintln(a.out, "Usage: filter city <id>")
				return
			}
			res.UpdateFilters(func(f *store.PropertyFilters) { f.City = id })
		case "category":
			id, ok := parseID(args[1:])
			if !ok {
				fmt.Fprintln(a.out, "Usage: filter category <id>")
				return
			}
			res.UpdateFilters(func(f *store.PropertyFilters) { f.Category = id })
		default:
			fmt.Fprintln(a.out, "Usage: filter <status|type|city|category> <v> | filter clear")
			return
		}
		s.render(ctx)
	}

	return a.runScreen(ctx, s)
}

func (a *App) printProperty(p models.Property) {
	features := make([]int64, len(p.Features))
	for i, f := range p.Features {
		features[i] = f.ID
	}
	printTable(a.out, []string{"Field", "Value"}, [][]string{
		{"ID", formatID(p.ID)},
		{a.i18n.T("prompt.title"), p.Title},
		{a.i18n.T("prompt.description"), p.Description},
		{a.i18n.T("prompt.category"), p.Category.Name},
		{a.i18n.T("prompt.price"), formatFloat(p.Price)},
		{a.i18n.T("prompt.transaction_type"), string(p.TransactionType)},
		{a.i18n.T("prompt.rooms"), fmt.Sprintf("%d", p.Specs.Rooms)},
		{a.i18n.T("prompt.area"), formatFloat(p.Specs.Area)},
		{a.i18n.T("prompt.floor"), fmt.Sprintf("%d/%d", p.Specs.Floor, p.Specs.TotalFloors)},
		{a.i18n.T("prompt.address"), p.Location.Address},
		{a.i18n.T("prompt.features"), formatIDs(features)},
		{a.i18n.T("prompt.status"), string(p.Status)},
	})
}

func (a *App) promptProperty() (api.PropertyPayload, error) {
	var p api.PropertyPayload
	var err error

	if p.Title, err = GetSimpleText(a.reader, a.i18n.T("prompt.title"), a.out); err != nil {
		return p, err
	}
	if p.Description, err = GetSimpleText(a.reader, a.i18n.T("prompt.description"), a.out); err != nil {
		return p, err
	}
	if p.Category, err = GetInt64(a.reader, a.i18n.T("prompt.category"), a.out); err != nil {
		return p, err
	}
	if p.Price, err = GetFloat(a.reader, a.i18n.T("prompt.price"), a.out); err != nil {
		return p, err
	}
	tt, err := GetSimpleText(a.reader, a.i18n.T("prompt.transaction_type"), a.out)
	if err != nil {
		return p, err
	}
	p.TransactionType = models.TransactionType(tt)
	if p.Specs.Rooms, err = GetInt(a.reader, a.i18n.T("prompt.rooms"), a.out); err != nil {
		return p, err
	}
	if p.Specs.Area, err = GetFloat(a.reader, a.i18n.T("prompt.area"), a.out); err != nil {
		return p, err
	}
	if p.Specs.Floor, err = GetInt(a.reader, a.i18n.T("prompt.floor"), a.out); err != nil {
		return p, err
	}
	if p.Specs.TotalFloors, err = GetInt(a.reader, a.i18n.T("prompt.total_floors"), a.out); err != nil {
		return p, err
	}
	if p.Location.CityID, err = GetInt64(a.reader, a.i18n.T("prompt.city"), a.out); err != nil {
		return p, err
	}
	if p.Location.DistrictID, err = GetInt64(a.reader, a.i18n.T("prompt.district"), a.out); err != nil {
		return p, err
	}
	if p.Location.Address, err = GetSimpleText(a.reader, a.i18n.T("prompt.address"), a.out); err != nil {
		return p, err
	}
	if p.Features, err = GetIDList(a.reader, a.i18n.T("prompt.features"), a.out); err != nil {
		return p, err
	}
	return p, nil
}
