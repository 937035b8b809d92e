package cmd

import (
	"context"
	"errors"
	"os"

	"go.uber.org/zap"

	"droscher.com/WhiskyShelf/pkg/backup"
	"droscher.com/WhiskyShelf/pkg/formats"
)

type ImportCmd struct {
	ConfigFile string `default:".WhiskyShelf.toml" help:"Path to config file"                  short:"c"`
	User       string `help:"Email of the account to import into"          required:""`
	File       string `help:"File to import"                               required:""             short:"f" type:"existingfile"`
	Format     string `help:"File format (json, csv or xlsx), detected from the extension when empty"`
	Brands     string `default:"add"               enum:"add,replace,merge" help:"Strategy for brands"`
	Bottles    string `default:"add"               enum:"add,replace,merge" help:"Strategy for bottles"`
	Tastings   string `default:"add"               enum:"add,replace,merge" help:"Strategy for tastings"`
	Wishlist   string `default:"add"               enum:"add,replace,merge" help:"Strategy for the wishlist"`
}

func (i *ImportCmd) Run(cliContext *Context) error {
	env, err := newEnvironment(i.ConfigFile, cliContext.Debug)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := context.Background()

	account, err := env.account(ctx, i.User)
	if err != nil {
		return err
	}

	format, err := i.format()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(i.File)
	if err != nil {
		return err
	}

	options := backup.Options{
		Brands:      backup.Strategy(i.Brands),
		Bottles:     backup.Strategy(i.Bottles),
		Tastings:    backup.Strategy(i.Tastings),
		Wishlist:    backup.Strategy(i.Wishlist),
		CallTimeout: env.conf.Import.CallTimeout,
	}

	summary, err := backup.NewImporter(env.repo, env.logger).Import(ctx, data, format, account, options)
	if err != nil {
		var phaseErr *backup.PhaseError
		if errors.As(err, &phaseErr) {
			summary = phaseErr.Summary
		}

		env.logger.Error("import failed", zap.String("file", i.File), zap.Any("summary", summary), zap.Error(err))

		return err
	}

	if summary.Partial() {
		env.logger.Warn("import finished with issues", zap.String("file", i.File), zap.Any("summary", summary))

		return nil
	}

	env.logger.Info("import finished", zap.String("file", i.File), zap.Any("summary", summary))

	return nil
}

func (i *ImportCmd) format() (formats.Format, error) {
	if i.Format != "" {
		return formats.ParseFormat(i.Format)
	}

	return formats.Detect(i.File)
}
