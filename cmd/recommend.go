package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-scorer/internal/profiles"
	"github.com/spigell/career-scorer/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank career domains for a profile",
	Long: `Rank career domains for a profile given by flags, or for a stored
user profile with --user. Rankings of stored users are written back to the store.`,
	Run: func(cmd *cobra.Command, _ []string) {
		runRecommend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("user", "u", "", "stored user id to rank")
	recommendCmd.Flags().StringP("interests", "i", "", "free-text interests")
	recommendCmd.Flags().StringSliceP("skill", "s", nil, "a skill (repeatable)")
	recommendCmd.Flags().StringSliceP("project", "p", nil, "a project (repeatable)")
	recommendCmd.Flags().Bool("stored", false, "print the last stored ranking of --user instead of ranking again")
	recommendCmd.MarkFlagsMutuallyExclusive("user", "interests")
	recommendCmd.MarkFlagsMutuallyExclusive("user", "skill")
	recommendCmd.MarkFlagsMutuallyExclusive("user", "project")
}

func runRecommend(cmd *cobra.Command) {
	ctx := context.Background()
	logger, config := setup()

	ranker, err := buildRanker(config, logger)
	if err != nil {
		logger.Fatal("building ranker", zap.Error(err))
	}

	userID, _ := cmd.Flags().GetString("user")
	if userID == "" {
		interests, _ := cmd.Flags().GetString("interests")
		skills, _ := cmd.Flags().GetStringSlice("skill")
		projects, _ := cmd.Flags().GetStringSlice("project")

		profile := recommend.Profile{Interests: interests, Skills: skills, Projects: projects}
		if profile.IsEmpty() {
			logger.Fatal("profile is empty", zap.String("hint", "pass --interests, --skill or --project, or --user"))
		}

		if err := printJSON(cmd.OutOrStdout(), ranker.Recommend(profile)); err != nil {
			logger.Fatal("writing result", zap.Error(err))
		}
		return
	}

	store, err := openStore(ctx, config, logger)
	if err != nil {
		logger.Fatal("opening profile store", zap.Error(err))
	}
	if store == nil {
		logger.Fatal("profile store is not configured",
			zap.String("hint", "set store.dsn in the config file or "+storeDSNEnv),
		)
	}
	defer store.Close()

	if stored, _ := cmd.Flags().GetBool("stored"); stored {
		last, err := store.Recommendations(ctx, userID)
		if errors.Is(err, profiles.ErrNotFound) {
			logger.Fatal("no stored recommendations", zap.String("user_id", userID))
		}
		if err != nil {
			logger.Fatal("loading stored recommendations", zap.String("user_id", userID), zap.Error(err))
		}

		if err := printJSON(cmd.OutOrStdout(), last); err != nil {
			logger.Fatal("writing result", zap.Error(err))
		}
		return
	}

	profile, err := store.Get(ctx, userID)
	if errors.Is(err, profiles.ErrNotFound) {
		logger.Fatal("user profile not found", zap.String("user_id", userID))
	}
	if err != nil {
		logger.Fatal("loading user profile", zap.String("user_id", userID), zap.Error(err))
	}

	recs := ranker.Recommend(profile.Ranking())
	if err := store.SaveRecommendations(ctx, userID, recs); err != nil {
		logger.Warn("storing recommendations failed", zap.String("user_id", userID), zap.Error(err))
	}

	if len(recs) > 0 {
		logger.Info("domains ranked",
			zap.String("user_id", userID),
			zap.String("top_domain", recs[0].DomainID),
		)
	}

	if err := printJSON(cmd.OutOrStdout(), recs); err != nil {
		logger.Fatal("writing result", zap.Error(err))
	}
}
