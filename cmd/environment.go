package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/WhiskyShelf/configs"
	"droscher.com/WhiskyShelf/pkg/repository"
)

// environment is what every one-shot command needs: a development logger, the config and
// an open repository.
type environment struct {
	logger *zap.Logger
	conf   *configs.Config
	repo   *repository.Repository
}

func newEnvironment(configFile string, debug bool) (*environment, error) {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if !debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, _ := logConfig.Build()

	conf, err := configs.GetConfig(configFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))
		_ = logger.Sync()

		return nil, err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))
		_ = logger.Sync()

		return nil, err
	}

	return &environment{logger: logger, conf: conf, repo: repo}, nil
}

func (e *environment) Close() {
	e.repo.Close()
	_ = e.logger.Sync()
}

func (e *environment) account(ctx context.Context, email string) (uint, error) {
	user, err := e.repo.GetUserFromEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("looking up user %s: %w", email, err)
	}

	return user.ID, nil
}
