package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate. The
// real App type satisfies this interface; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	Lang(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
	Stats(ctx context.Context) error
	Balance(ctx context.Context) error
	Cities(ctx context.Context) error
	Districts(ctx context.Context) error
	Features(ctx context.Context) error
	Pages(ctx context.Context) error
	Banners(ctx context.Context) error
	Properties(ctx context.Context) error
	Users(ctx context.Context) error
	Tariffs(ctx context.Context) error
	Payments(ctx context.Context) error
	translate(key string, args ...any) string
}

// runREPL starts the top-level read-eval-print loop of the console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Screen commands open their own sub-loops
// and return here when the user types "back". The loop exits on EOF or
// when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the loop resilient and focused on
// line I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "adminctl %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, stats, balance, cities, districts, features, pages, banners, properties, users, tariffs, payments, me, lang <ru|uz|en>, logout, exit")
			} else {
				printlnFn("Available commands: login, lang <ru|uz|en>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "me":
			_ = a.Me(ctx)

		case "lang":
			_ = a.Lang(ctx, args)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "balance":
			_ = a.Balance(ctx)

		case "cities":
			_ = a.Cities(ctx)

		case "districts":
			_ = a.Districts(ctx)

		case "features":
			_ = a.Features(ctx)

		case "pages":
			_ = a.Pages(ctx)

		case "banners":
			_ = a.Banners(ctx)

		case "properties":
			_ = a.Properties(ctx)

		case "users":
			_ = a.Users(ctx)

		case "tariffs":
			_ = a.Tariffs(ctx)

		case "payments":
			_ = a.Payments(ctx)

		case "exit", "quit":
			printlnFn(a.translate("common.bye"))
			return

		default:
			printlnFn(a.translate("common.unknown_command", cmd))
		}

		if err != nil {
			return
		}
	}
}
