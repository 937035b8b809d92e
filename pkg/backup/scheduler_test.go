package backup_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"droscher.com/WhiskyShelf/pkg/backup"
	"droscher.com/WhiskyShelf/pkg/formats"
	"droscher.com/WhiskyShelf/pkg/model"
)

type steppingClock struct {
	current time.Time
}

func (c *steppingClock) now() time.Time {
	now := c.current
	c.current = c.current.Add(time.Hour)

	return now
}

func newBackupStore() *memoryStore {
	store := newMemoryStore()
	store.users = []uint{1, 2}
	store.bottles = []model.Bottle{
		{Model: gorm.Model{ID: 1}, UserID: 1, Name: "Oban 14"},
		{Model: gorm.Model{ID: 2}, UserID: 2, Name: "Dalmore 12"},
	}

	return store
}

func TestScheduler_RunOnceWritesAndPrunesBackups(t *testing.T) {
	logger := zaptest.NewLogger(t)
	store := newBackupStore()
	clock := &steppingClock{current: time.Date(2024, time.May, 1, 3, 0, 0, 0, time.UTC)}
	sink := backup.DirSink{Dir: filepath.Join(t.TempDir(), "backups")}

	exporter := backup.NewExporter(store, logger, clock.now, time.Second)
	scheduler := backup.NewScheduler(exporter, store, sink, logger, backup.SchedulerOptions{
		Spec:   "@daily",
		Format: formats.CSV,
		Retain: 2,
		Now:    clock.now,
	})

	for range 3 {
		require.NoError(t, scheduler.RunOnce(context.Background()))
	}

	first, err := sink.List(context.Background(), "whisky-backup-1-")
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.NotContains(t, first, "whisky-backup-1-20240501T030000Z.csv")

	second, err := sink.List(context.Background(), "whisky-backup-2-")
	require.NoError(t, err)
	assert.Len(t, second, 2)

	content, err := os.ReadFile(filepath.Join(sink.Dir, first[len(first)-1]))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Oban 14")
	assert.NotContains(t, string(content), "Dalmore 12")
}

func TestScheduler_FailingAccountDoesNotStopOthers(t *testing.T) {
	logger := zaptest.NewLogger(t)
	store := newBackupStore()
	store.users = []uint{1, 2}
	sink := &recordingSink{failOn: "whisky-backup-1-20240501T030000Z.json"}

	exporter := backup.NewExporter(store, logger, nil, time.Second)
	scheduler := backup.NewScheduler(exporter, store, sink, logger, backup.SchedulerOptions{
		Spec: "@daily",
		Now:  func() time.Time { return time.Date(2024, time.May, 1, 3, 0, 0, 0, time.UTC) },
	})

	err := scheduler.RunOnce(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "account 1")
	assert.Equal(t, []string{"whisky-backup-2-20240501T030000Z.json"}, sink.saved)
}

func TestScheduler_AccountListingFails(t *testing.T) {
	store := newBackupStore()
	store.failures["ListUserIDs"] = errors.New("database is down")

	scheduler := backup.NewScheduler(backup.NewExporter(store, zaptest.NewLogger(t), nil, 0), store, &recordingSink{}, nil,
		backup.SchedulerOptions{Spec: "@daily"})

	assert.ErrorIs(t, scheduler.RunOnce(context.Background()), backup.ErrExternalService)
}

func TestScheduler_StartRejectsInvalidSchedule(t *testing.T) {
	store := newBackupStore()
	scheduler := backup.NewScheduler(backup.NewExporter(store, zaptest.NewLogger(t), nil, 0), store, &recordingSink{},
		zaptest.NewLogger(t), backup.SchedulerOptions{Spec: "every tuesday"})

	assert.ErrorIs(t, scheduler.Start(), backup.ErrInvalidSchedule)
}

func TestScheduler_StartAndStop(t *testing.T) {
	store := newBackupStore()
	scheduler := backup.NewScheduler(backup.NewExporter(store, zaptest.NewLogger(t), nil, 0), store, &recordingSink{},
		zaptest.NewLogger(t), backup.SchedulerOptions{Spec: "0 3 * * *"})

	require.NoError(t, scheduler.Start())
	scheduler.Stop()
}

func TestDirSink_RemoveStaysInsideDirectory(t *testing.T) {
	sink := backup.DirSink{Dir: t.TempDir()}

	require.NoError(t, sink.Save(context.Background(), "whisky-backup-1-a.json", []byte("{}")))
	require.Error(t, sink.Remove(context.Background(), "../whisky-backup-1-a.json"))
	require.NoError(t, sink.Remove(context.Background(), "whisky-backup-1-a.json"))

	names, err := sink.List(context.Background(), "whisky-backup-")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDirSink_ListMissingDirectory(t *testing.T) {
	sink := backup.DirSink{Dir: filepath.Join(t.TempDir(), "missing")}

	names, err := sink.List(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, names)
}

type recordingSink struct {
	failOn string
	saved  []string
}

func (r *recordingSink) Save(_ context.Context, name string, _ []byte) error {
	if name == r.failOn {
		return errors.New("disk full")
	}

	r.saved = append(r.saved, name)

	return nil
}

func (r *recordingSink) List(context.Context, string) ([]string, error) {
	return r.saved, nil
}

func (r *recordingSink) Remove(context.Context, string) error {
	return nil
}
