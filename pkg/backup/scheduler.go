package backup

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/WhiskyShelf/pkg/formats"
)

const backupTimestamp = "20060102T150405Z"

var ErrInvalidSchedule = errors.New("invalid backup schedule")

// Sink keeps backup files somewhere outside the database.
type Sink interface {
	Save(ctx context.Context, name string, data []byte) error
	List(ctx context.Context, prefix string) ([]string, error)
	Remove(ctx context.Context, name string) error
}

// Accounts lists the accounts that get a backup on every run.
type Accounts interface {
	ListUserIDs(ctx context.Context) ([]uint, error)
}

type exporter interface {
	Export(ctx context.Context, account uint, format formats.Format) ([]byte, error)
}

type SchedulerOptions struct {
	Spec    string
	Format  formats.Format
	Retain  int
	Timeout time.Duration
	Now     func() time.Time
}

// Scheduler writes a backup of every account to a sink on a cron schedule. It is owned
// by the caller, who decides when to start and stop it.
type Scheduler struct {
	cron     *cron.Cron
	exporter exporter
	accounts Accounts
	sink     Sink
	logger   *zap.Logger
	options  SchedulerOptions
}

func NewScheduler(exporter exporter, accounts Accounts, sink Sink, logger *zap.Logger, options SchedulerOptions) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if options.Now == nil {
		options.Now = time.Now
	}

	if options.Format == "" {
		options.Format = formats.JSON
	}

	if options.Timeout <= 0 {
		options.Timeout = 5 * time.Minute
	}

	cronLogger := cronLogger{logger.Sugar()}

	return &Scheduler{
		cron:     cron.New(cron.WithLogger(cronLogger), cron.WithChain(cron.SkipIfStillRunning(cronLogger))),
		exporter: exporter,
		accounts: accounts,
		sink:     sink,
		logger:   logger,
		options:  options,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.options.Spec, s.scheduledRun); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidSchedule, s.options.Spec, err)
	}

	s.logger.Info("starting backup scheduler", zap.String("schedule", s.options.Spec), zap.String("format", string(s.options.Format)))
	s.cron.Start()

	return nil
}

// Stop stops the schedule and waits for a running backup to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping backup scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) scheduledRun() {
	ctx, cancel := context.WithTimeout(context.Background(), s.options.Timeout)
	defer cancel()

	if err := s.RunOnce(ctx); err != nil {
		s.logger.Error("scheduled backup failed", zap.Error(err))
	}
}

// RunOnce backs up every account and prunes old backups. A failing account does not
// stop the others.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	codec, err := formats.For(s.options.Format)
	if err != nil {
		return err
	}

	accounts, err := s.accounts.ListUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExternalService, err)
	}

	stamp := s.options.Now().UTC().Format(backupTimestamp)

	var errs error

	for _, account := range accounts {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}

		name := fmt.Sprintf("%s%s.%s", backupPrefix(account), stamp, codec.Extension())

		data, err := s.exporter.Export(ctx, account, s.options.Format)
		if err != nil {
			multierr.AppendInto(&errs, fmt.Errorf("account %d: %w", account, err))

			continue
		}

		if err := s.sink.Save(ctx, name, data); err != nil {
			multierr.AppendInto(&errs, fmt.Errorf("account %d: saving %s: %w", account, name, err))

			continue
		}

		s.logger.Info("saved backup", zap.Uint("user_id", account), zap.String("name", name), zap.Int("bytes", len(data)))

		multierr.AppendInto(&errs, s.prune(ctx, account))
	}

	return errs
}

// prune keeps the newest Retain backups of an account. Zero keeps everything.
func (s *Scheduler) prune(ctx context.Context, account uint) error {
	if s.options.Retain <= 0 {
		return nil
	}

	names, err := s.sink.List(ctx, backupPrefix(account))
	if err != nil {
		return fmt.Errorf("account %d: listing backups: %w", account, err)
	}

	if len(names) <= s.options.Retain {
		return nil
	}

	slices.Sort(names)

	var errs error

	for _, name := range names[:len(names)-s.options.Retain] {
		if err := s.sink.Remove(ctx, name); err != nil {
			multierr.AppendInto(&errs, fmt.Errorf("account %d: removing %s: %w", account, name, err))

			continue
		}

		s.logger.Info("removed old backup", zap.Uint("user_id", account), zap.String("name", name))
	}

	return errs
}

func backupPrefix(account uint) string {
	return fmt.Sprintf("whisky-backup-%d-", account)
}

type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
