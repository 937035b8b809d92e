package cmd

import (
	"context"
	"errors"

	"go.openly.dev/pointy"
	"go.uber.org/zap"

	"droscher.com/WhiskyShelf/pkg/integrations"
)

var ErrNoIntegration = errors.New("no brand integration configured")

type LookupCmd struct {
	ConfigFile  string `default:".WhiskyShelf.toml" help:"Path to config file" short:"c"`
	Integration string `help:"Catalogue to search, defaults to the first configured one"`
	User        string `help:"Email of the account that receives added brands"`
	Add         bool   `help:"Add every brand found to the account"`
	Name        string `arg:""                     help:"Brand name to search for"`
}

func (l *LookupCmd) Run(cliContext *Context) error {
	env, err := newEnvironment(l.ConfigFile, cliContext.Debug)
	if err != nil {
		return err
	}
	defer env.Close()

	name := l.Integration
	if name == "" {
		if len(env.conf.Integrations.Brands) == 0 {
			return ErrNoIntegration
		}

		name = env.conf.Integrations.Brands[0]
	}

	integration, err := integrations.GetIntegration(name, env.conf.Integrations, env.logger)
	if err != nil {
		return err
	}

	brands, err := integration.FindBrand(l.Name)
	if err != nil {
		env.logger.Warn("brand lookup finished with errors", zap.String("integration", name), zap.Error(err))
	}

	for _, brand := range brands {
		env.logger.Info("found brand",
			zap.String("name", brand.Name),
			zap.String("country", brand.Country),
			zap.String("region", brand.Region),
			zap.String("description", brand.Description),
		)
	}

	if !l.Add || len(brands) == 0 {
		return err
	}

	ctx := context.Background()

	account, accountErr := env.account(ctx, l.User)
	if accountErr != nil {
		return accountErr
	}

	for _, brand := range brands {
		brand.OwnerID = pointy.Uint(account)

		added, addErr := env.repo.AddBrand(ctx, brand)
		if addErr != nil {
			env.logger.Warn("brand not added", zap.String("name", brand.Name), zap.Error(addErr))

			continue
		}

		env.logger.Info("added brand", zap.String("name", added.Name), zap.Uint("id", added.ID))
	}

	return err
}
