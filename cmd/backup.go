package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"droscher.com/WhiskyShelf/configs"
	"droscher.com/WhiskyShelf/pkg/backup"
	"droscher.com/WhiskyShelf/pkg/formats"
	"droscher.com/WhiskyShelf/pkg/storage"
)

type BackupCmd struct {
	ConfigFile string `default:".WhiskyShelf.toml" help:"Path to config file" short:"c"`
	Once       bool   `help:"Back every collection up once and exit"`
}

func (b *BackupCmd) Run(cliContext *Context) error {
	env, err := newEnvironment(b.ConfigFile, cliContext.Debug)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink, err := b.sink(ctx, env)
	if err != nil {
		env.logger.Error("error preparing backup sink", zap.String("sink", env.conf.Backup.Sink), zap.Error(err))

		return err
	}

	format, err := formats.ParseFormat(env.conf.Backup.Format)
	if err != nil {
		return err
	}

	exporter := backup.NewExporter(env.repo, env.logger, nil, env.conf.Import.CallTimeout)
	scheduler := backup.NewScheduler(exporter, env.repo, sink, env.logger, backup.SchedulerOptions{
		Spec:    env.conf.Backup.Schedule,
		Format:  format,
		Retain:  env.conf.Backup.Retain,
		Timeout: env.conf.Backup.Timeout,
	})

	if b.Once {
		return scheduler.RunOnce(ctx)
	}

	if err := scheduler.Start(); err != nil {
		env.logger.Error("error starting backup scheduler", zap.Error(err))

		return err
	}

	<-ctx.Done()
	scheduler.Stop()

	return nil
}

func (b *BackupCmd) sink(ctx context.Context, env *environment) (backup.Sink, error) {
	if env.conf.Backup.Sink != configs.SinkStorage {
		return backup.DirSink{Dir: env.conf.Backup.Dir}, nil
	}

	client, err := storage.NewClient(env.conf.Storage)
	if err != nil {
		return nil, err
	}

	bucket := storage.NewBucketSink(client, env.conf.Storage, env.logger)
	if err := bucket.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	return bucket, nil
}
