package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-scorer/internal/logger"
	"github.com/spigell/career-scorer/internal/profiles"
	"github.com/spigell/career-scorer/internal/recommend"
	"github.com/spigell/career-scorer/internal/secrets"
)

const storeDSNEnv = envPrefix + "_STORE_DSN"

// setup builds the logger and reads the config shared by all commands.
func setup() (*zap.Logger, *Config) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("config loaded",
		zap.String("config_file", viper.ConfigFileUsed()),
		zap.Int("categories", len(config.Categories)),
	)

	return logger, config
}

func buildRanker(config *Config, logger *zap.Logger) (*recommend.Ranker, error) {
	categories := config.Categories
	source := "config"
	if len(categories) == 0 {
		categories = recommend.DefaultCategories()
		source = "builtin"
	}

	ranker, err := recommend.NewRanker(categories)
	if err != nil {
		return nil, fmt.Errorf("building ranker from %s categories: %w", source, err)
	}

	logger.Debug("ranker ready",
		zap.String("categories_source", source),
		zap.Int("categories", len(categories)),
		zap.Int("vocabulary", len(ranker.Vectorizer().Terms())),
	)

	return ranker, nil
}

// openStore returns nil without an error when no DSN is configured.
func openStore(ctx context.Context, config *Config, logger *zap.Logger) (*profiles.SQLiteStore, error) {
	dsn, err := secrets.Load(secrets.Source{
		Name:     "store dsn",
		File:     config.Store.DSNFile,
		Env:      storeDSNEnv,
		Value:    config.Store.DSN,
		Optional: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set store.dsn-file or %s)", err, storeDSNEnv)
	}

	if dsn == "" {
		return nil, nil
	}

	return profiles.OpenSQLite(ctx, dsn, logger)
}
