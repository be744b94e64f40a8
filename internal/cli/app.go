package cli

import (
	"bufio"
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/mxradar/mxradar/internal/api"
	"github.com/mxradar/mxradar/internal/config"
	"github.com/mxradar/mxradar/internal/filex"
	"github.com/mxradar/mxradar/internal/logging"
	"github.com/mxradar/mxradar/internal/services"
	"github.com/mxradar/mxradar/internal/session"

	_ "modernc.org/sqlite"
)

// App wires the API client and the domain services behind the REPL.
type App struct {
	config *config.Config
	log    logging.Logger

	auth      *services.AuthService
	dns       *services.DnsService
	smtp      *services.SmtpService
	ssl       *services.SslService
	blacklist *services.BlacklistService
	keys      *services.ApiKeyService

	store  *session.SQLiteStore
	reader *bufio.Reader
}

// NewApp builds the application: local session store, API client, services.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	stateDir, err := filex.EnsureStateDir(cfg.StateDir)
	if err != nil {
		return nil, err
	}

	store, err := session.Open(ctx, filepath.Join(stateDir, "session.db"))
	if err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		log:    log,
		store:  store,
		reader: bufio.NewReader(os.Stdin),
	}

	client, err := api.New(ctx, cfg.APIOrigin, store, log,
		api.WithNotifier(app),
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	app.auth = services.NewAuthService(client)
	app.dns = services.NewDnsService(client)
	app.smtp = services.NewSmtpService(client)
	app.ssl = services.NewSslService(client)
	app.blacklist = services.NewBlacklistService(client)
	app.keys = services.NewApiKeyService(client)

	return app, nil
}

// SessionExpired implements api.SessionExpiredNotifier. The API client has
// already cleared the session; the REPL prompt reverts to the anonymous set
// on its next iteration, this just tells the user why.
func (a *App) SessionExpired() {
	printlnFn("Your session has expired. Please sign in again.")
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	printlnFn("mxradar CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

// status renders the prompt fragment: the signed-in e-mail, or "anonymous".
func (a *App) status() string {
	if p := a.auth.Profile(); p != nil {
		return p.Email
	}
	return "anonymous"
}
