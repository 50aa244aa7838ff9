package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/misterclayt0n/keima/internal/api"
	"github.com/misterclayt0n/keima/internal/config"
	"github.com/misterclayt0n/keima/internal/router"
	"github.com/misterclayt0n/keima/internal/session"
	"github.com/misterclayt0n/keima/internal/storage"
	"github.com/misterclayt0n/keima/internal/tokenstore"
	"github.com/misterclayt0n/keima/internal/utils"
	"github.com/misterclayt0n/keima/internal/workout"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errNotLoggedIn = errors.New("Not logged in. Run `keima login` first")

// app holds the dependencies every screen is built from. The session
// manager is created here once and handed to each screen explicitly.
type app struct {
	cfg     *config.Config
	client  *api.Client
	session *session.Manager
	router  *router.Router
}

func loadApp() (*app, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadConfigFrom(configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	utils.SetupLogger(level)

	client := api.New(cfg.API.BaseURL, cfg.API.CatalogURL, api.WithTimeout(cfg.API.Timeout.Duration))
	var store tokenstore.Store = tokenstore.NewFileStore(cfg.StateDir)
	if ephemeral {
		store = tokenstore.NewMemoryStore(os.Getenv("KEIMA_SESSION_TOKEN"))
	}

	return &app{
		cfg:     cfg,
		client:  client,
		session: session.New(client, store),
		router:  router.New(),
	}, nil
}

// openScreen restores the session and runs the router gate for page.
// Unauthenticated users only get errNotLoggedIn.
func openScreen(cmd *cobra.Command, page router.Page) (*app, error) {
	a, err := loadApp()
	if err != nil {
		return nil, err
	}

	a.router.Navigate(page)
	a.session.Restore(cmd.Context())

	screen := a.router.Screen(a.session.State())
	log.Debug().Str("selected", string(page)).Str("screen", string(screen)).Msg("Routing")
	if screen == router.PageAuth {
		return nil, errNotLoggedIn
	}
	return a, nil
}

// apiError turns a request failure into the message shown to the user.
func apiError(err error, fallback string) error {
	log.Debug().Err(err).Msg("Request failed")
	switch {
	case errors.Is(err, api.ErrConnection):
		return errors.New(session.ConnectionErrorMessage)
	case errors.Is(err, api.ErrUnauthorized):
		return fmt.Errorf("%s: sessão expirada, faça login novamente (keima login)", api.ErrorMessage(err, fallback))
	}
	return errors.New(api.ErrorMessage(err, fallback))
}

func (a *app) configFile() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// openJournal returns nil without error when no database is configured.
func (a *app) openJournal(ctx context.Context) (*storage.Storage, error) {
	st, err := storage.Open(ctx, a.cfg.DB.ConnectionString)
	if errors.Is(err, storage.ErrNotConfigured) {
		return nil, nil
	}
	return st, err
}

func (a *app) workouts(journal *storage.Storage) (*workout.Tracker, error) {
	templates, err := workout.LoadTemplates(filepath.Join(a.cfg.StateDir, workout.TemplatesFileName))
	if err != nil {
		return nil, err
	}
	if journal == nil {
		return workout.NewTracker(a.cfg.StateDir, templates, nil), nil
	}
	return workout.NewTracker(a.cfg.StateDir, templates, journal), nil
}
