package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"droscher.com/WhiskyShelf/pkg/backup"
	"droscher.com/WhiskyShelf/pkg/formats"
)

type ExportCmd struct {
	ConfigFile string `default:".WhiskyShelf.toml"  help:"Path to config file"                       short:"c"`
	User       string `help:"Email of the account to export"                    required:""`
	Format     string `default:"json"               enum:"json,csv,xlsx"                            help:"File format"`
	Out        string `help:"Output file, defaults to whisky-collection-<date>.<ext>" short:"o"`
}

func (e *ExportCmd) Run(cliContext *Context) error {
	env, err := newEnvironment(e.ConfigFile, cliContext.Debug)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := context.Background()

	account, err := env.account(ctx, e.User)
	if err != nil {
		return err
	}

	format, err := formats.ParseFormat(e.Format)
	if err != nil {
		return err
	}

	exporter := backup.NewExporter(env.repo, env.logger, time.Now, env.conf.Import.CallTimeout)

	data, err := exporter.Export(ctx, account, format)
	if err != nil {
		env.logger.Error("export failed", zap.Error(err))

		return err
	}

	out := e.Out
	if out == "" {
		out = fmt.Sprintf("whisky-collection-%s.%s", time.Now().UTC().Format(time.DateOnly), format)
	}

	if err := os.WriteFile(out, data, 0o600); err != nil {
		return err
	}

	env.logger.Info("exported collection", zap.String("file", out), zap.Int("bytes", len(data)))

	return nil
}
