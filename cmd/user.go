package cmd

import (
	"context"

	"go.uber.org/zap"
)

type AddUserCmd struct {
	ConfigFile string `default:".WhiskyShelf.toml" help:"Path to config file" short:"c"`
	Name       string `help:"Display name"        required:""`
	Email      string `help:"Login email"         required:""`
}

func (a *AddUserCmd) Run(cliContext *Context) error {
	env, err := newEnvironment(a.ConfigFile, cliContext.Debug)
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := env.repo.AddUser(context.Background(), a.Name, a.Email)
	if err != nil {
		env.logger.Error("failed to add user", zap.String("email", a.Email), zap.Error(err))

		return err
	}

	env.logger.Info("added user", zap.Uint("id", user.ID), zap.String("email", user.Email))

	return nil
}
