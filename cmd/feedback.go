package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-scorer/internal/sentiment"
)

var errExit = errors.New("exit requested")

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Analyze the sentiment of a piece of feedback",
	Run: func(cmd *cobra.Command, _ []string) {
		runFeedback(cmd)
	},
}

func init() {
	rootCmd.AddCommand(feedbackCmd)

	feedbackCmd.Flags().IntP("rating", "r", 0, fmt.Sprintf("rating from %d to %d", sentiment.MinRating, sentiment.MaxRating))
	feedbackCmd.Flags().StringP("quality", "q", "", "quality label, empty for neutral (asked on a terminal when unset)")
	feedbackCmd.Flags().StringP("comments", "c", "", "free-text comments")
	feedbackCmd.Flags().BoolP("no-prompt", "y", false, "do not ask for missing values")
	feedbackCmd.MarkFlagRequired("rating")
}

func runFeedback(cmd *cobra.Command) {
	logger, _ := setup()

	rating, _ := cmd.Flags().GetInt("rating")
	if rating < sentiment.MinRating || rating > sentiment.MaxRating {
		logger.Fatal("rating is out of range",
			zap.Int("rating", rating),
			zap.Int("min", sentiment.MinRating),
			zap.Int("max", sentiment.MaxRating),
		)
	}

	quality, _ := cmd.Flags().GetString("quality")
	noPrompt, _ := cmd.Flags().GetBool("no-prompt")
	interactive := !noPrompt && isTerminal(os.Stdin)

	quality, err := resolveQuality(cmd.Flags().Changed("quality"), quality, interactive, askQuality)
	if errors.Is(err, errExit) {
		logger.Info("exiting", zap.String("reason", "prompt cancelled"))
		return
	}
	if err != nil {
		logger.Fatal("asking for quality", zap.Error(err))
	}
	logger.Debug("quality resolved",
		zap.String("quality", quality),
		zap.Bool("interactive", interactive),
	)

	if _, err := sentiment.ParseQuality(quality); err != nil {
		logger.Fatal("invalid quality", zap.Error(err), zap.Strings("allowed", sentiment.Qualities()))
	}

	comments, _ := cmd.Flags().GetString("comments")
	result := sentiment.Analyze(sentiment.Feedback{
		Rating:   rating,
		Quality:  quality,
		Comments: comments,
	})

	logger.Info("feedback analyzed",
		zap.Float64("overall_sentiment", result.OverallSentiment),
		zap.String("summary", result.Summary),
	)

	if err := printJSON(cmd.OutOrStdout(), result); err != nil {
		logger.Fatal("writing result", zap.Error(err))
	}
}

// resolveQuality returns the --quality value when the flag was set, even to
// an empty label. Otherwise it asks only when interactive and falls back to
// the empty, neutral label.
func resolveQuality(set bool, value string, interactive bool, ask func() (string, error)) (string, error) {
	if set {
		return value, nil
	}
	if !interactive {
		return "", nil
	}
	return ask()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func askQuality() (string, error) {
	prompt := promptui.Select{
		Label: "Quality of the session",
		Items: sentiment.Qualities(),
	}

	_, quality, err := prompt.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "", errExit
	}
	return quality, err
}
