package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/uyhome/adminctl/internal/models"
	"github.com/uyhome/adminctl/internal/store"
)

// Payments opens the read-only payments screen. There are no mutations
// here; the commands narrow the list by status, date window and amount
// range.
func (a *App) Payments(ctx context.Context) error {
	if !a.ensureAuthenticated(ctx) {
		return nil
	}

	res := store.NewPayments(a.api, a.log)
	s := listScreen(a, "payments.title", res.Resource,
		[]string{"ID", "User", "Amount", a.i18n.T("prompt.status"), "Date"},
		func(p models.Payment) []string {
			return []string{
				formatID(p.ID), formatID(p.UserID), formatFloat(p.Amount),
				string(p.Status), p.CreatedAt,
			}
		},
		func(f *store.PaymentFilters, q string) { f.Search = q },
	)
	s.help = "Commands: list, search <text>, page <n>, size <n>, status <pending|paid|canceled>, from <date>, to <date>, min <amount>, max <amount>, clear, back"

	s.extra["status"] = func(ctx context.Context, args []string) {
		if len(args) == 0 || !models.PaymentStatus(args[0]).Valid() {
			fmt.Fprintln(a.out, "Usage: status <pending|paid|canceled>")
			return
		}
		res.UpdateFilters(func(f *store.PaymentFilters) { f.Status = models.PaymentStatus(args[0]) })
		s.render(ctx)
	}

	s.extra["from"] = func(ctx context.Context, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: from <YYYY-MM-DD>")
			return
		}
		res.UpdateFilters(func(f *store.PaymentFilters) { f.DateFrom = args[0] })
		s.render(ctx)
	}

	s.extra["to"] = func(ctx context.Context, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: to <YYYY-MM-DD>")
			return
		}
		res.UpdateFilters(func(f *store.PaymentFilters) { f.DateTo = args[0] })
		s.render(ctx)
	}

	setAmount := func(ctx context.Context, args []string, usage string, set func(*store.PaymentFilters, float64)) {
		if len(args) == 0 {
			fmt.Fprintln(a.out, usage)
			return
		}
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			fmt.Fprintln(a.out, usage)
			return
		}
		res.UpdateFilters(func(f *store.PaymentFilters) { set(f, v) })
		s.render(ctx)
	}
	s.extra["min"] = func(ctx context.Context, args []string) {
		setAmount(ctx, args, "Usage: min <amount>", func(f *store.PaymentFilters, v float64) { f.AmountMin = v })
	}
	s.extra["max"] = func(ctx context.Context, args []string) {
		setAmount(ctx, args, "Usage: max <amount>", func(f *store.PaymentFilters, v float64) { f.AmountMax = v })
	}

	s.extra["clear"] = func(ctx context.Context, _ []string) {
		res.UpdateFilters(func(f *store.PaymentFilters) { *f = store.PaymentFilters{} })
		s.render(ctx)
	}

	return a.runScreen(ctx, s)
}
