package cli

import (
	"context"
	"fmt"

	"github.com/uyhome/adminctl/internal/store"
)

// Stats prints the server-side payments aggregation for an optional date
// window.
func (a *App) Stats(ctx context.Context) error {
	if !a.ensureAuthenticated(ctx) {
		return nil
	}

	from, err := GetSimpleText(a.reader, a.i18n.T("prompt.date_from"), a.out)
	if err != nil {
		return err
	}
	to, err := GetSimpleText(a.reader, a.i18n.T("prompt.date_to"), a.out)
	if err != nil {
		return err
	}

	stats := store.NewPaymentStats(a.api)
	stats.SetWindow(from, to)

	data, err := stats.Load(ctx)
	if err != nil {
		a.sayErr(err)
		return err
	}

	fmt.Fprintln(a.out, a.i18n.T("stats.title"))
	if data.Empty() {
		a.say("stats.empty")
		return nil
	}

	printTable(a.out, []string{"Total", "Count"}, [][]string{
		{formatFloat(data.TotalAmount), fmt.Sprintf("%d", data.TotalCount)},
	})

	rows := make([][]string, len(data.TopCategories))
	for i, c := range data.TopCategories {
		rows[i] = []string{c.Category, formatFloat(c.Amount), fmt.Sprintf("%.0f%%", c.Percent)}
	}
	printTable(a.out, []string{a.i18n.T("prompt.category"), "Amount", "%"}, rows)

	if len(data.Daily) > 0 {
		rows = make([][]string, len(data.Daily))
		for i, p := range data.Daily {
			rows[i] = []string{p.Date, formatFloat(p.Value)}
		}
		printTable(a.out, []string{"Date", "Amount"}, rows)
	}
	return nil
}
