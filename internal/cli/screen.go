package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/uyhome/adminctl/internal/store"
)

// searchDebounce is how long the search command waits for a quieter
// moment before hitting the API.
const searchDebounce = 300 * time.Millisecond

// screen is one entity sub-loop. Entity files build it around freshly
// created stores, add their commands to extra and set the help line.
type screen struct {
	title   string
	help    string
	render  func(ctx context.Context)
	search  func(q string)
	setPage func(ctx context.Context, n int)
	setSize func(ctx context.Context, n int)
	extra   map[string]func(ctx context.Context, args []string)
	close   func()
}

// listScreen binds the shared screen loop to one resource store: fetch and
// render the current page, debounced search, pagination commands.
func listScreen[T any, F any](a *App, titleKey string, r *store.Resource[T, F], header []string, row func(T) []string, setSearch func(*F, string)) *screen {
	s := &screen{
		title: a.i18n.T(titleKey),
		extra: map[string]func(ctx context.Context, args []string){},
	}

	s.render = func(ctx context.Context) {
		if err := r.Fetch(ctx); err != nil {
			a.sayErr(err)
			return
		}
		items := r.Items()
		if len(items) == 0 {
			a.say("common.no_data")
			return
		}
		rows := make([][]string, len(items))
		for i, it := range items {
			rows[i] = row(it)
		}
		printTable(a.out, header, rows)
		p := r.Page()
		a.sayf("common.results", len(items), p.Count)
		a.sayf("common.page", p.CurrentPage, p.TotalPages)
	}

	if setSearch != nil {
		deb := store.NewDebouncer[string](searchDebounce, func(q string) {
			r.UpdateFilters(func(f *F) { setSearch(f, q) })
			s.render(context.Background())
		})
		s.search = deb.Push
		s.close = deb.Stop
	}

	s.setPage = func(ctx context.Context, n int) {
		r.SetPage(n)
		s.render(ctx)
	}
	s.setSize = func(ctx context.Context, n int) {
		r.SetPageSize(n)
		s.render(ctx)
	}

	return s
}

// runScreen drives one screen until the user types "back". The shared
// commands live here; everything entity-specific is dispatched via extra.
func (a *App) runScreen(ctx context.Context, s *screen) error {
	if s.close != nil {
		defer s.close()
	}

	fmt.Fprintln(a.out, s.title)
	s.render(ctx)

	for {
		fmt.Fprintf(a.out, "%s> ", s.title)
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return nil
			}
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, s.help)

		case "l", "list":
			s.render(ctx)

		case "search":
			if s.search != nil {
				s.search(strings.Join(args, " "))
			}

		case "page":
			if n, ok := parseInt(args); ok {
				s.setPage(ctx, n)
			} else {
				fmt.Fprintln(a.out, "Usage: page <n>")
			}

		case "size":
			if n, ok := parseInt(args); ok {
				s.setSize(ctx, n)
			} else {
				fmt.Fprintln(a.out, "Usage: size <n>")
			}

		case "b", "back":
			return nil

		default:
			if h, ok := s.extra[cmd]; ok {
				h(ctx, args)
			} else {
				a.sayf("common.unknown_command", cmd)
			}
		}

		if err != nil {
			return nil
		}
	}
}

func parseInt(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
