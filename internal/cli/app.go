// Package cli wires the mailstore engine into a cobra command tree. The
// root command opens the full-screen UI; register, send, and inbox are the
// scriptable equivalents.
package cli

import (
	"os"

	"github.com/vpetrenko/mailstore/internal/accounts"
	"github.com/vpetrenko/mailstore/internal/config"
	"github.com/vpetrenko/mailstore/internal/logging"
	"github.com/vpetrenko/mailstore/internal/mailbox"
	"github.com/vpetrenko/mailstore/internal/messages"
	"github.com/vpetrenko/mailstore/internal/store"
)

// App bundles the configured engine for the commands to share.
type App struct {
	cfg     *config.Config
	log     logging.Logger
	service *mailbox.Service
}

// NewApp builds the engine from cfg: logger, file store, directory, ledger,
// and the session service on top.
func NewApp(cfg *config.Config) *App {
	log := logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	st := store.NewFileStore(cfg.StorePath, log)
	dir := accounts.NewDirectory(st, log)
	led := messages.NewLedger(st, log)

	return &App{
		cfg:     cfg,
		log:     log,
		service: mailbox.NewService(dir, led, log),
	}
}

// Service exposes the session service to the presentation layers.
func (a *App) Service() *mailbox.Service {
	return a.service
}
