package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"talentbase/internal/common"
	"talentbase/internal/kvstore"
	"talentbase/internal/logging"
	"talentbase/internal/models"
	"talentbase/internal/store"
	"talentbase/internal/timex"
)

// Durable sync metadata keys.
const (
	keyLastSyncAt = "sync:last_sync_at"
	keyPending    = "sync:pending"
)

// SyncStatus merges the durable sync markers with the process-lifetime flags.
type SyncStatus struct {
	LastSyncAt     *time.Time `json:"lastSyncAt,omitempty"`
	PendingChanges bool       `json:"pendingChanges"`
	IsOnline       bool       `json:"isOnline"`
	IsSyncing      bool       `json:"isSyncing"`
}

// Coordinator orchestrates push and pull between the entity store and the
// remote authority. It is constructed once per process; the in-flight and
// online flags live here, never as package globals.
type Coordinator struct {
	store  *store.Store
	remote Remote
	kv     kvstore.Store
	clock  timex.Clock
	log    logging.Logger

	mu      sync.Mutex
	syncing bool
	online  bool
}

// New constructs a Coordinator. Passing nil for clock or log selects the
// real clock and a no-op logger.
func New(st *store.Store, remote Remote, kv kvstore.Store, clock timex.Clock, log logging.Logger) *Coordinator {
	if clock == nil {
		clock = timex.RealClock{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Coordinator{
		store:  st,
		remote: remote,
		kv:     kv,
		clock:  clock,
		log:    log.With("component", "syncer"),
	}
}

// begin acquires the single-flight guard. Only one sync operation (push or
// pull) may be in flight at a time; a second attempt fails immediately
// without touching persisted state.
func (c *Coordinator) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.syncing {
		return common.ErrSyncInProgress
	}
	c.syncing = true
	return nil
}

// end releases the guard. It runs on every exit path, success or failure.
func (c *Coordinator) end() {
	c.mu.Lock()
	c.syncing = false
	c.mu.Unlock()
}

// PushToCloud snapshots the store, translates it to the wire representation
// and transmits it. On success, lastSyncAt advances and the pending flag
// clears; on any failure lastSyncAt is left at its last known-good value so
// the push is safely retryable.
func (c *Coordinator) PushToCloud(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	data, err := c.store.ExportAll(ctx)
	if err != nil {
		return err
	}

	if err := c.remote.Push(ctx, toWire(data)); err != nil {
		c.log.Error(ctx, "push failed", "error", err)
		return err
	}

	if err := c.recordSynced(ctx); err != nil {
		return err
	}
	c.log.Info(ctx, "push finished", "talents", len(data.Talents), "projects", len(data.Projects))
	return nil
}

// PullFromCloud fetches the remote snapshot, translates it back to local
// form and replaces the store wholesale. Guarded by the same single-flight
// rule as push.
func (c *Coordinator) PullFromCloud(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	ds, err := c.remote.Pull(ctx)
	if err != nil {
		c.log.Error(ctx, "pull failed", "error", err)
		return err
	}

	data, err := fromWire(ds)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidBackupFormat, err)
	}

	if err := c.store.ImportAll(ctx, data); err != nil {
		return err
	}

	if err := c.recordSynced(ctx); err != nil {
		return err
	}
	c.log.Info(ctx, "pull finished", "talents", len(data.Talents), "projects", len(data.Projects))
	return nil
}

// FullSync pushes then pulls. Pull is skipped and the push error returned
// when push fails.
func (c *Coordinator) FullSync(ctx context.Context) error {
	if err := c.PushToCloud(ctx); err != nil {
		return err
	}
	return c.PullFromCloud(ctx)
}

// MarkPendingSync durably flags that local state has diverged from the last
// successful sync. Every offline mutation should call this.
func (c *Coordinator) MarkPendingSync(ctx context.Context) error {
	return c.kv.Set(ctx, keyPending, []byte("1"))
}

// Probe pings the remote and records reachability in the online flag.
func (c *Coordinator) Probe(ctx context.Context) bool {
	err := c.remote.Ping(ctx)

	c.mu.Lock()
	c.online = err == nil
	online := c.online
	c.mu.Unlock()

	if err != nil {
		c.log.Debug(ctx, "probe failed", "error", err)
	}
	return online
}

// Status merges the durable markers with the process flags.
func (c *Coordinator) Status(ctx context.Context) (SyncStatus, error) {
	var status SyncStatus

	raw, err := c.kv.Get(ctx, keyLastSyncAt)
	if err != nil {
		return SyncStatus{}, err
	}
	if raw != nil {
		at, err := time.Parse(time.RFC3339Nano, string(raw))
		if err != nil {
			return SyncStatus{}, fmt.Errorf("%w: %s: %v", common.ErrCorruptState, keyLastSyncAt, err)
		}
		status.LastSyncAt = &at
	}

	pending, err := c.kv.Get(ctx, keyPending)
	if err != nil {
		return SyncStatus{}, err
	}
	status.PendingChanges = pending != nil

	c.mu.Lock()
	status.IsOnline = c.online
	status.IsSyncing = c.syncing
	c.mu.Unlock()

	return status, nil
}

// CreateBackup serializes the full local snapshot for manual (non-cloud)
// backup.
func (c *Coordinator) CreateBackup(ctx context.Context) (string, error) {
	data, err := c.store.ExportAll(ctx)
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode backup: %w", err)
	}
	return string(raw), nil
}

// RestoreBackup replaces the store with a previously created manual backup.
// A payload that does not parse into the expected shape fails with
// ErrInvalidBackupFormat and leaves the store untouched.
func (c *Coordinator) RestoreBackup(ctx context.Context, serialized string) error {
	data, err := models.ParseBackup([]byte(serialized))
	if err != nil {
		return err
	}
	return c.store.ImportAll(ctx, data)
}

// recordSynced stamps lastSyncAt with the current time and clears the
// pending flag. Local state now matches the remote on both directions.
func (c *Coordinator) recordSynced(ctx context.Context) error {
	now := c.clock.Now()
	if err := c.kv.Set(ctx, keyLastSyncAt, []byte(now.Format(time.RFC3339Nano))); err != nil {
		return err
	}
	return c.kv.Delete(ctx, keyPending)
}
