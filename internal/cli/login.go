package cli

import (
	"context"
)

func (a *App) Login(ctx context.Context) error {
	phone, err := GetSimpleText(a.reader, a.i18n.T("login.phone"), a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.i18n.T("login.password"), a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, phone, string(password)); err != nil {
		a.sayf("login.failed", err)
		return err
	}

	a.say("login.success")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	// the session store clears local state even when the server call fails
	if err := a.session.Logout(ctx); err != nil {
		a.log.Debug(ctx, "logout request failed", "error", err)
	}
	a.say("logout.success")
	return nil
}

// Me prints the record of the currently authenticated user.
func (a *App) Me(ctx context.Context) error {
	if !a.ensureAuthenticated(ctx) {
		return nil
	}

	u := a.session.User()
	if u == nil {
		a.say("me.none")
		return nil
	}

	printTable(a.out, []string{"ID", "Name", "Phone", "Role", "Status", "Lang"}, [][]string{{
		formatID(u.ID), u.Name, u.Phone, string(u.Role), string(u.Status), u.Language,
	}})
	return nil
}

// Lang switches the interface language. The API client reads the locale on
// every request, so server responses follow immediately.
func (a *App) Lang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.sayf("lang.changed", a.i18n.Locale())
		return nil
	}
	if err := a.i18n.SetLocale(args[0]); err != nil {
		a.sayf("lang.unsupported", args[0])
		return err
	}
	a.sayf("lang.changed", a.i18n.Locale())
	return nil
}
