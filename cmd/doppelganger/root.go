package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kapu/journal-insight-go/internal/app"
	"github.com/kapu/journal-insight-go/internal/config"
	"github.com/kapu/journal-insight-go/internal/domain"
	"github.com/kapu/journal-insight-go/internal/render"
	"github.com/kapu/journal-insight-go/internal/service/style"
	"github.com/kapu/journal-insight-go/internal/util"
)

type analyzeFlags struct {
	text   string
	file   string
	userID string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "doppelganger",
		Short: "Find the famous author whose style matches your writing",
		Long: `doppelganger fingerprints a body of text (sentence length, vocabulary
richness, punctuation density and word length) and ranks it against a
catalog of reference authors. Indonesian and English text are supported.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAnalyzeCmd(), newAuthorsCmd())
	return root
}

func newAnalyzeCmd() *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze text from a flag, a file, stdin or a user's journal",
		Example: `  doppelganger analyze --text "Hujan turun pelan sore ini..."
  doppelganger analyze --file essay.txt
  doppelganger analyze --user 42
  cat essay.txt | doppelganger analyze`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runAnalyze(cmd.Context(), flags, cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			render.Fingerprint(out, result.Fingerprint)
			render.Result(out, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.text, "text", "", "text to analyze")
	cmd.Flags().StringVar(&flags.file, "file", "", "path of a text file to analyze")
	cmd.Flags().StringVar(&flags.userID, "user", "", "analyze the recent journal notes of this user id")
	cmd.MarkFlagsMutuallyExclusive("text", "file", "user")
	return cmd
}

func newAuthorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "authors",
		Short: "List the reference author catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := style.DefaultCatalog()
			if err != nil {
				return err
			}
			render.Authors(cmd.OutOrStdout(), catalog.Authors())
			return nil
		},
	}
}

func runAnalyze(ctx context.Context, flags analyzeFlags, stdin io.Reader) (domain.WritingStyleResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if flags.userID != "" {
		return analyzeUser(ctx, flags.userID)
	}

	text, err := readInput(flags, stdin)
	if err != nil {
		return domain.WritingStyleResult{}, err
	}

	analyzer, err := style.NewDefaultAnalyzer()
	if err != nil {
		return domain.WritingStyleResult{}, err
	}
	return analyzer.Analyze([]string{text})
}

func readInput(flags analyzeFlags, stdin io.Reader) (string, error) {
	switch {
	case flags.text != "":
		return flags.text, nil
	case flags.file != "":
		data, err := os.ReadFile(flags.file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", flags.file, err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", fmt.Errorf("no input: pass --text, --file, --user or pipe text on stdin")
		}
		return string(data), nil
	}
}

// analyzeUser loads the environment config and runs the journal-backed analysis.
func analyzeUser(ctx context.Context, userID string) (domain.WritingStyleResult, error) {
	cfg, err := config.Load()
	if err != nil {
		return domain.WritingStyleResult{}, err
	}
	if !cfg.Postgres.Enabled() {
		return domain.WritingStyleResult{}, fmt.Errorf("--user requires POSTGRES_HOST to be set")
	}

	logger, err := util.NewLogger("warn", cfg.Logging.File)
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	buildCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	container, err := app.Build(buildCtx, cfg, logger)
	if err != nil {
		return domain.WritingStyleResult{}, err
	}
	defer container.Close()

	return container.Engine.AnalyzeWritingStyleForUser(ctx, userID)
}
