package cli

import (
	"context"
	"fmt"

	"github.com/uyhome/adminctl/internal/store"
)

// Dashboard prints the landing metrics and the remaining SMS balance.
// Loaders are created fresh per visit, matching how the screens own their
// stores.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.ensureAuthenticated(ctx) {
		return nil
	}

	dashboard := store.NewDashboard(a.api)
	data, err := dashboard.Load(ctx)
	if err != nil {
		a.sayErr(err)
		return err
	}

	fmt.Fprintln(a.out, a.i18n.T("dashboard.title"))
	printTable(a.out, nil, [][]string{
		{a.i18n.T("dashboard.total"), formatID(data.TotalProperties)},
		{a.i18n.T("dashboard.active"), formatID(data.ActiveProperties)},
		{a.i18n.T("dashboard.pending"), formatID(data.PendingProperties)},
		{a.i18n.T("dashboard.users"), formatID(data.TotalUsers)},
	})

	return a.Balance(ctx)
}

// Balance prints the remaining SMS balance of the platform's Eskiz account.
func (a *App) Balance(ctx context.Context) error {
	if !a.ensureAuthenticated(ctx) {
		return nil
	}

	balance := store.NewEskizBalance(a.api)
	b, err := balance.Load(ctx)
	if err != nil {
		a.sayErr(err)
		return err
	}
	a.sayf("balance.title", b.Balance)
	return nil
}
