// Package cli implements the interactive terminal application for the
// B.R.A.M. disaster-reporting client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/bramapp/bram/internal/api"
	"github.com/bramapp/bram/internal/config"
	"github.com/bramapp/bram/internal/feed"
	"github.com/bramapp/bram/internal/logging"
	"github.com/bramapp/bram/internal/models"
	"github.com/bramapp/bram/internal/services"
	"github.com/bramapp/bram/internal/session"
)

type App struct {
	config     *config.Config
	auth       services.AuthService
	controller *feed.Controller
	poller     *feed.PollingScheduler
	log        logging.Logger

	profile *models.Profile
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the local database, the API client, and the feed core
// into a runnable application.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL)
	sessions := session.NewStore(db)

	store := feed.NewReportStore(apiClient)
	controller := feed.NewController(
		store,
		feed.NewSeenTracker(),
		feed.NewNotificationFlag(),
		apiClient,
		sessions,
		NewTerminalNotifier(os.Stdout),
		log,
	)

	return &App{
		config:     c,
		auth:       services.NewAuthService(apiClient, sessions),
		controller: controller,
		poller:     feed.NewPollingScheduler(log),
		log:        log,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

// Run restores the persisted session, primes the feed, starts the
// background poller, and enters the REPL. The poller is stopped when the
// REPL exits so no timer or network calls outlive the surface.
func (a *App) Run(ctx context.Context) {
	if p, err := a.auth.Current(ctx); err == nil && p != nil {
		a.profile = p
		fmt.Fprintf(a.out, "Welcome back, %s!\n", p.Username)
	}

	if err := a.controller.OnRefreshTick(ctx); err != nil {
		a.log.Warn(ctx, "initial feed refresh failed", "error", err)
	}

	a.poller.Start(ctx, a.config.PollInterval, a.controller.OnRefreshTick)
	defer a.poller.Stop()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.profile != nil
}

func (a *App) username() string {
	if a.profile == nil {
		return ""
	}
	return a.profile.Username
}

func (a *App) getStatus() string {
	s := ""
	if a.profile != nil {
		s = a.profile.Username
	}
	if a.controller.Flag().Get() {
		s += " *"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
