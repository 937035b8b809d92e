package cmd

import (
	"context"

	"go.uber.org/zap"
)

type StatsCmd struct {
	ConfigFile string `default:".WhiskyShelf.toml" help:"Path to config file" short:"c"`
	User       string `help:"Email of the account"  required:""`
}

func (s *StatsCmd) Run(cliContext *Context) error {
	env, err := newEnvironment(s.ConfigFile, cliContext.Debug)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := context.Background()

	account, err := env.account(ctx, s.User)
	if err != nil {
		return err
	}

	stats, err := env.repo.GetCollectionStats(ctx, account)
	if err != nil {
		env.logger.Error("failed to compute collection stats", zap.Error(err))

		return err
	}

	env.logger.Info("collection stats",
		zap.String("user", s.User),
		zap.Uint64("bottles", stats.BottleCount),
		zap.Uint64("brands", stats.BrandCount),
		zap.Uint64("opened", stats.OpenedCount),
		zap.Uint64("empty", stats.EmptyCount),
		zap.Float64("total_volume", stats.TotalVolume),
		zap.Float64("remaining_volume", stats.RemainingVolume),
		zap.Float64("average_abv", stats.AverageABV),
		zap.Float64("total_spent", stats.TotalSpent),
		zap.Float64("average_discount", stats.AverageDiscount),
		zap.Uint64("tastings", stats.TastingCount),
		zap.Float64("average_overall_rating", stats.AverageOverallRating),
		zap.Uint64("wishlist", stats.WishlistCount),
	)

	return nil
}
