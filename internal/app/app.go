// Package app wires the talentbase data layer together: it opens the local
// database, constructs the entity store, the template service and the sync
// coordinator, and runs the background reachability watcher.
package app

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"talentbase/internal/config"
	"talentbase/internal/idgen"
	"talentbase/internal/kvstore"
	"talentbase/internal/logging"
	"talentbase/internal/store"
	"talentbase/internal/syncer"
	"talentbase/internal/templates"
	"talentbase/internal/timex"
)

// App owns the wired data layer. Embedders (a UI shell, an RPC surface, a
// test harness) talk to the exported services.
type App struct {
	Config    *config.Config
	Store     *store.Store
	Templates *templates.Service
	Syncer    *syncer.Coordinator

	db  *sql.DB
	log logging.Logger
}

// New opens the database, runs migrations and constructs every service.
// The returned App must be closed when the process shuts down.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	kv, db, err := kvstore.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to open database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	clock := timex.RealClock{}
	ids := idgen.UUID{}

	st := store.New(kv, ids, clock, log)
	tpl := templates.NewService(kv, cfg.BackupDir, clock, log)

	remote := syncer.NewHTTPClient(cfg.RemoteEndpoint, cfg.AccessToken, cfg.RequestTimeout)
	sc := syncer.New(st, remote, kv, clock, log)

	return &App{
		Config:    cfg,
		Store:     st,
		Templates: tpl,
		Syncer:    sc,
		db:        db,
		log:       log,
	}, nil
}

// Close releases the underlying database handle.
func (a *App) Close() error {
	return a.db.Close()
}

// StartOnlineStatusWatcher probes the remote on the configured interval
// until ctx is cancelled. A remote endpoint left empty disables probing.
func (a *App) StartOnlineStatusWatcher(ctx context.Context) {
	if a.Config.RemoteEndpoint == "" {
		return
	}

	ticker := time.NewTicker(a.Config.OnlineCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, a.Config.RequestTimeout)
			a.Syncer.Probe(probeCtx)
			cancel()
		case <-ctx.Done():
			return
		}
	}
}
