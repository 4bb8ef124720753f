package syncer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentbase/internal/common"
	"talentbase/internal/idgen"
	"talentbase/internal/kvstore"
	"talentbase/internal/models"
	"talentbase/internal/store"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

// fakeRemote records calls and can be told to fail or block.
type fakeRemote struct {
	mu        sync.Mutex
	pushed    []*Dataset
	pullData  *Dataset
	pingErr   error
	pushErr   error
	pullErr   error
	pushCalls int
	pullCalls int

	// When non-nil, Push blocks until the channel is closed.
	pushGate chan struct{}
}

func (r *fakeRemote) Ping(ctx context.Context) error { return r.pingErr }

func (r *fakeRemote) Push(ctx context.Context, ds *Dataset) error {
	r.mu.Lock()
	r.pushCalls++
	gate := r.pushGate
	r.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if r.pushErr != nil {
		return r.pushErr
	}
	r.mu.Lock()
	r.pushed = append(r.pushed, ds)
	r.mu.Unlock()
	return nil
}

func (r *fakeRemote) Pull(ctx context.Context) (*Dataset, error) {
	r.mu.Lock()
	r.pullCalls++
	r.mu.Unlock()
	if r.pullErr != nil {
		return nil, r.pullErr
	}
	return r.pullData, nil
}

func newTestCoordinator(t *testing.T) (*Coordinator, *store.Store, *fakeRemote, *fixedClock, *kvstore.MemoryStore) {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	clock := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	st := store.New(kv, &idgen.Sequential{Prefix: "id"}, clock, nil)
	remote := &fakeRemote{}
	c := New(st, remote, kv, clock, nil)
	return c, st, remote, clock, kv
}

func TestPushToCloud_TransmitsSnapshotAndRecordsSync(t *testing.T) {
	c, st, remote, clock, _ := newTestCoordinator(t)
	ctx := context.Background()

	_, err := st.CreateTalent(ctx, models.Talent{Name: "Ayu", PricePerProject: 1500})
	require.NoError(t, err)
	require.NoError(t, c.MarkPendingSync(ctx))

	require.NoError(t, c.PushToCloud(ctx))

	require.Len(t, remote.pushed, 1)
	require.Len(t, remote.pushed[0].Talents, 1)
	assert.Equal(t, "Ayu", remote.pushed[0].Talents[0].Name)
	assert.Equal(t, "1500", remote.pushed[0].Talents[0].PricePerProject)

	status, err := c.Status(ctx)
	require.NoError(t, err)
	require.NotNil(t, status.LastSyncAt)
	assert.True(t, status.LastSyncAt.Equal(clock.now))
	assert.False(t, status.PendingChanges)
	assert.False(t, status.IsSyncing)
}

func TestPushToCloud_FailureLeavesMarkersUntouched(t *testing.T) {
	c, _, remote, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	require.NoError(t, c.MarkPendingSync(ctx))
	remote.pushErr = errors.New("boom")

	err := c.PushToCloud(ctx)
	require.Error(t, err)

	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Nil(t, status.LastSyncAt)
	assert.True(t, status.PendingChanges)
	assert.False(t, status.IsSyncing)
}

func TestPushToCloud_SecondCallerRejectedWhileInFlight(t *testing.T) {
	c, _, remote, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	remote.pushGate = make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- c.PushToCloud(ctx) }()

	// Wait until the first push is inside the remote call.
	require.Eventually(t, func() bool {
		remote.mu.Lock()
		defer remote.mu.Unlock()
		return remote.pushCalls == 1
	}, time.Second, time.Millisecond)

	err := c.PushToCloud(ctx)
	require.ErrorIs(t, err, common.ErrSyncInProgress)

	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Nil(t, status.LastSyncAt)
	assert.True(t, status.IsSyncing)

	close(remote.pushGate)
	require.NoError(t, <-done)

	status, err = c.Status(ctx)
	require.NoError(t, err)
	require.NotNil(t, status.LastSyncAt)
	assert.False(t, status.IsSyncing)
}

func TestPullFromCloud_ReplacesLocalState(t *testing.T) {
	c, st, remote, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	stale, err := st.CreateTalent(ctx, models.Talent{Name: "Old"})
	require.NoError(t, err)

	remote.pullData = &Dataset{
		Talents: []RemoteTalent{{
			OdID:            "t-remote-1",
			Name:            "Sari",
			PricePerProject: "2500",
			Photos:          []string{},
			PhoneNumbers:    []string{},
		}},
		Settings: settingsToWire(models.DefaultSettings()),
	}

	require.NoError(t, c.PullFromCloud(ctx))

	gone, err := st.GetTalent(ctx, stale.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	got, err := st.GetTalent(ctx, "t-remote-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Sari", got.Name)
	assert.Equal(t, 2500.0, got.PricePerProject)
}

func TestPullFromCloud_BadNumericFailsWithoutTouchingStore(t *testing.T) {
	c, st, remote, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	keep, err := st.CreateTalent(ctx, models.Talent{Name: "Keep"})
	require.NoError(t, err)

	remote.pullData = &Dataset{
		Talents:  []RemoteTalent{{OdID: "x", Name: "Bad", PricePerProject: "not-a-number"}},
		Settings: settingsToWire(models.DefaultSettings()),
	}

	err = c.PullFromCloud(ctx)
	require.ErrorIs(t, err, common.ErrInvalidBackupFormat)

	got, err := st.GetTalent(ctx, keep.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestFullSync_SkipsPullWhenPushFails(t *testing.T) {
	c, _, remote, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	remote.pushErr = errors.New("down")

	err := c.FullSync(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, remote.pushCalls)
	assert.Equal(t, 0, remote.pullCalls)
}

func TestFullSync_PushThenPull(t *testing.T) {
	c, _, remote, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	remote.pullData = &Dataset{Settings: settingsToWire(models.DefaultSettings())}

	require.NoError(t, c.FullSync(ctx))
	assert.Equal(t, 1, remote.pushCalls)
	assert.Equal(t, 1, remote.pullCalls)
}

func TestProbe_TracksReachability(t *testing.T) {
	c, _, remote, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	assert.True(t, c.Probe(ctx))

	remote.pingErr = errors.New("unreachable")
	assert.False(t, c.Probe(ctx))

	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.IsOnline)
}

func TestStatus_CorruptLastSyncMarker(t *testing.T) {
	c, _, _, _, kv := newTestCoordinator(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "sync:last_sync_at", []byte("garbage")))

	_, err := c.Status(ctx)
	require.ErrorIs(t, err, common.ErrCorruptState)
}

func TestBackup_RoundTrip(t *testing.T) {
	c, st, _, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	created, err := st.CreateTalent(ctx, models.Talent{Name: "Ayu", PricePerProject: 1500})
	require.NoError(t, err)

	serialized, err := c.CreateBackup(ctx)
	require.NoError(t, err)

	ok, err := st.DeleteTalent(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, c.RestoreBackup(ctx, serialized))

	got, err := st.GetTalent(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ayu", got.Name)
}

func TestRestoreBackup_InvalidPayload(t *testing.T) {
	c, st, _, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	keep, err := st.CreateTalent(ctx, models.Talent{Name: "Keep"})
	require.NoError(t, err)

	err = c.RestoreBackup(ctx, "not json at all")
	require.ErrorIs(t, err, common.ErrInvalidBackupFormat)

	got, err := st.GetTalent(ctx, keep.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
}
