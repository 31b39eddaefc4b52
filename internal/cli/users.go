package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/models"
	"github.com/uyhome/adminctl/internal/store"
)

func (a *App) Users(ctx context.Context) error {
	if !a.ensureAuthenticated(ctx) {
		return nil
	}

	res := store.NewUsers(a.api, a.log)
	s := listScreen(a, "users.title", res.Resource,
		[]string{"ID", a.i18n.T("prompt.name"), a.i18n.T("prompt.phone"), a.i18n.T("prompt.role"), a.i18n.T("prompt.status"), "Balance"},
		func(u models.User) []string {
			return []string{
				formatID(u.ID), u.Name, u.Phone,
				string(u.Role), string(u.Status), formatFloat(u.Balance),
			}
		},
		func(f *store.UserFilters, q string) { f.Search = q },
	)
	s.help = "Commands: list, search <text>, page <n>, size <n>, add, edit <id>, block <id>, activate <id>, balance <id> <amount>, del <id>, filter <role|status|lang> <v>, filter clear, back"

	s.extra["add"] = func(ctx context.Context, _ []string) {
		p, err := a.promptUser(true)
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
		p, err := a.promptUser(false)
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

	setStatus := func(ctx context.Context, args []string, status models.UserStatus) {
		id, ok := parseID(args)
		if !ok {
			fmt.Fprintln(a.out, "Usage: block|activate <id>")
			return
		}
		if _, err := res.SetStatus(ctx, id, status); err != nil {
			a.sayErr(err)
			return
		}
		a.say("common.saved")
		s.render(ctx)
	}
	s.extra["block"] = func(ctx context.Context, args []string) { setStatus(ctx, args, models.UserBlocked) }
	s.extra["activate"] = func(ctx context.Context, args []string) { setStatus(ctx, args, models.UserActive) }

	s.extra["balance"] = func(ctx context.Context, args []string) {
		id, ok := parseID(args)
		if !ok || len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: balance <id> <amount>")
			return
		}
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Fprintln(a.out, "Usage: balance <id> <amount>")
			return
		}
		if _, err := res.Patch(ctx, id, api.UserPatch{Balance: &amount}); err != nil {
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

	s.extra["filter"] = func(ctx context.Context, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: filter <role|status|lang> <v> | filter clear")
			return
		}
		switch args[0] {
		case "clear":
			res.UpdateFilters(func(f *store.UserFilters) { *f = store.UserFilters{} })
		case "role":
			if len(args) < 2 || !models.Role(args[1]).Valid() {
				fmt.Fprintln(a.out, "Usage: filter role <admin|manager|seller|user>")
				return
			}
			res.UpdateFilters(func(f *store.UserFilters) { f.Role = models.Role(args[1]) })
		case "status":
			if len(args) < 2 || !models.UserStatus(args[1]).Valid() {
				fmt.Fprintln(a.out, "Usage: filter status <active|blocked>")
				return
			}
			res.UpdateFilters(func(f *store.UserFilters) { f.Status = models.UserStatus(args[1]) })
		case "lang":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: filter lang <ru|uz|en>")
				return
			}
			res.UpdateFilters(func(f *store.UserFilters) { f.Language = args[1] })
		default:
			fmt.Fprintln(a.out, "Usage: filter <role|status|lang> <v> | filter clear")
			return
		}
		s.render(ctx)
	}

	return a.runScreen(ctx, s)
}

// promptUser collects a user payload. A password is only asked for on
// create; updates keep the stored one.
func (a *App) promptUser(withPassword bool) (api.UserPayload, error) {
	var p api.UserPayload
	var err error

	if p.Name, err = GetSimpleText(a.reader, a.i18n.T("prompt.name"), a.out); err != nil {
		return p, err
	}
	if p.Phone, err = GetSimpleText(a.reader, a.i18n.T("prompt.phone"), a.out); err != nil {
		return p, err
	}
	if withPassword {
		pw, err := GetPassword(a.i18n.T("login.password"), a.out)
		if err != nil {
			return p, err
		}
		p.Password = string(pw)
	}
	role, err := GetSimpleText(a.reader, a.i18n.T("prompt.role"), a.out)
	if err != nil {
		return p, err
	}
	p.Role = models.Role(role)
	p.Status = models.UserActive
	if p.Language, err = GetSimpleText(a.reader, a.i18n.T("prompt.language"), a.out); err != nil {
		return p, err
	}
	return p, nil
}
