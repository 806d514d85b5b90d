// Package client implements the interactive application runtime. It wires
// the HTTP gateway, the credential keystore, the session store, the domain
// services and the terminal UI into a single process lifecycle.
package client

import (
	"context"
	"fmt"

	"github.com/societyhub/societyhub/internal/adapter"
	"github.com/societyhub/societyhub/internal/config"
	"github.com/societyhub/societyhub/internal/crypto"
	"github.com/societyhub/societyhub/internal/logger"
	"github.com/societyhub/societyhub/internal/service"
	"github.com/societyhub/societyhub/internal/session"
	"github.com/societyhub/societyhub/internal/store"
	"github.com/societyhub/societyhub/internal/tui"
)

type App struct {
	cfg      *config.StructuredConfig
	logger   *logger.Logger
	session  *session.Store
	services *service.ClientServices
	tui      *tui.TUI
	closeDB  func() error
}

func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	db, err := store.OpenKeystoreDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open keystore db: %w", err)
	}

	sealer := crypto.NewSealer(cfg.App.SealSecret)
	keystore := store.NewKeystore(db, sealer, log)

	gw := adapter.NewRESTGateway(cfg.Adapter, log)
	sess := session.NewStore(gw, keystore, log)
	services := service.NewClientServices(gw, log)
	ui := tui.New(services, sess, log)

	// A 401 on any call tears the session down and sends the UI back to
	// the login screen, wherever the user happened to be.
	gw.OnUnauthorized(func() {
		sess.Invalidate()
		ui.NotifySessionExpired()
	})

	return &App{
		cfg:      cfg,
		logger:   log,
		session:  sess,
		services: services,
		tui:      ui,
		closeDB:  db.Close,
	}, nil
}

// Run starts the background refresh job and blocks in the terminal UI until
// the user quits. Session restore happens inside the UI so the first screen
// can show a loading state instead of a blank terminal.
func (a *App) Run(ctx context.Context) error {
	a.services.RefreshJob.Start(ctx, a.cfg.Workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()
	defer func() {
		if err := a.closeDB(); err != nil {
			a.logger.Warn().Err(err).Msg("close keystore db")
		}
	}()

	if err := a.tui.Run(ctx); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}
