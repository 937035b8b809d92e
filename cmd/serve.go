package cmd

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"droscher.com/WhiskyShelf/configs"
	"droscher.com/WhiskyShelf/pkg/auth"
	"droscher.com/WhiskyShelf/pkg/backup"
	"droscher.com/WhiskyShelf/pkg/repository"
	"droscher.com/WhiskyShelf/pkg/server"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".WhiskyShelf.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(_ *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	authManager := auth.NewAuthManager(conf, repo, logger)
	exporter := backup.NewExporter(repo, logger, time.Now, conf.Import.CallTimeout)
	importer := backup.NewImporter(repo, logger)
	collection := server.NewCollectionServer(exporter, importer, repo, logger, conf)

	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		ReadHeaderTimeout: timeout,
		Handler:           server.NewHandler(collection, authManager.Middleware),
	}

	logger.Info("starting server", zap.String("address", svr.Addr))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}
