package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/config"
	"github.com/uyhome/adminctl/internal/i18n"
	"github.com/uyhome/adminctl/internal/logging"
	"github.com/uyhome/adminctl/internal/store"
)

// App wires the console together: one API client with a shared session
// cookie jar, one session store guarding the screens, and the i18n store
// whose active locale also drives the API's lang header.
type App struct {
	config  *config.Config
	log     logging.Logger
	api     *api.Client
	session *store.Session
	guard   *store.Guard
	i18n    *i18n.Store
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	translations, err := i18n.NewStore(cfg.Locale)
	if err != nil {
		return nil, err
	}

	client, err := api.New(api.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
		Locale:  translations.Locale,
		Logger:  log,
	})
	if err != nil {
		return nil, err
	}

	session := store.NewSession(client)

	return &App{
		config:  cfg,
		log:     log,
		api:     client,
		session: session,
		guard:   store.NewGuard(session),
		i18n:    translations,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "adminctl (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	u := a.session.User()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Phone, a.i18n.Locale())
}

func (a *App) translate(key string, args ...any) string {
	if len(args) == 0 {
		return a.i18n.T(key)
	}
	return a.i18n.Tf(key, args...)
}

// say and sayf print translated messages to the console.
func (a *App) say(key string) {
	fmt.Fprintln(a.out, a.i18n.T(key))
}

func (a *App) sayf(key string, args ...any) {
	fmt.Fprintln(a.out, a.i18n.Tf(key, args...))
}

func (a *App) sayErr(err error) {
	a.sayf("common.error", err)
}

// ensureAuthenticated re-validates the session before a protected screen
// opens. On rejection it tells the user to log in and the screen does not
// render.
func (a *App) ensureAuthenticated(ctx context.Context) bool {
	state, err := a.guard.Ensure(ctx)
	if err != nil {
		a.log.Debug(ctx, "session check failed", "error", err)
	}
	if state != store.StateAuthenticated {
		a.say("common.not_logged_in")
		return false
	}
	return true
}
