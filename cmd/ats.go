package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-scorer/internal/keywords"
)

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Score how well a resume covers the keywords of a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		runATS(cmd)
	},
}

func init() {
	rootCmd.AddCommand(atsCmd)

	atsCmd.Flags().StringP("resume", "r", "", "file with the resume text ('-' for stdin)")
	atsCmd.Flags().StringP("job", "J", "", "file with the job description text")
	atsCmd.MarkFlagRequired("resume")
	atsCmd.MarkFlagRequired("job")
}

func runATS(cmd *cobra.Command) {
	logger, config := setup()

	resume, err := readInput(cmd.InOrStdin(), cmd.Flag("resume").Value.String())
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err))
	}

	job, err := readInput(cmd.InOrStdin(), cmd.Flag("job").Value.String())
	if err != nil {
		logger.Fatal("reading job description", zap.Error(err))
	}

	if strings.TrimSpace(resume) == "" || strings.TrimSpace(job) == "" {
		logger.Fatal("both resume and job description must be non-empty")
	}

	scorer, err := keywords.NewDefaultScorer(logger, config.TextPreviewLength)
	if err != nil {
		logger.Fatal("building keyword scorer", zap.Error(err))
	}

	result := scorer.Score(resume, job)

	logger.Info("resume scored",
		zap.Float64("score", result.Score),
		zap.Int("matched", len(result.Matched)),
	)

	if err := printJSON(cmd.OutOrStdout(), map[string]any{
		"ATS Score":        result.Score,
		"Matched Keywords": result.Matched,
	}); err != nil {
		logger.Fatal("writing result", zap.Error(err))
	}
}

// readInput reads a whole file, or stdin when path is "-".
func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
