package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-scorer/internal/keywords"
	"github.com/spigell/career-scorer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scoring HTTP API",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "listen address (default :8080)")
	viper.BindPFlag("server.address", serveCmd.Flags().Lookup("address"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, config := setup()
	logger.Info("starting the career-scorer", zap.String("version", version))

	scorer, err := keywords.NewDefaultScorer(logger, config.TextPreviewLength)
	if err != nil {
		logger.Fatal("building keyword scorer", zap.Error(err))
	}

	ranker, err := buildRanker(config, logger)
	if err != nil {
		logger.Fatal("building ranker", zap.Error(err))
	}

	deps := server.Deps{
		Scorer:        scorer,
		Recommender:   ranker,
		Logger:        logger,
		PreviewLength: config.TextPreviewLength,
	}

	store, err := openStore(ctx, config, logger)
	if err != nil {
		logger.Fatal("opening profile store", zap.Error(err))
	}
	if store != nil {
		defer store.Close()
		deps.Store = store
	} else {
		logger.Warn("profile store is not configured, user endpoints are disabled",
			zap.String("hint", "set store.dsn in the config file or "+storeDSNEnv),
		)
	}

	srv := server.New(deps)
	if err := srv.Run(ctx, config.Server.Address, config.Server.ReadTimeout, config.Server.WriteTimeout); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return
	}

	logger.Info("server stopped")
}
