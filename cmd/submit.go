package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmoj-submit/dmoj-submit/client"
	"github.com/dmoj-submit/dmoj-submit/internal/logger"
	"github.com/dmoj-submit/dmoj-submit/internal/poller"
	"github.com/dmoj-submit/dmoj-submit/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	problemFlag  string
	tokenFlag    string
	languageFlag string
)

var submitCmd = &cobra.Command{
	Use:   "submit <file>",
	Short: "Submit a solution and follow its grading",
	Long: `Submit a source file to a DMOJ problem and print every test case as it is graded.

The problem code defaults to the file name without its extension, and the
language to the key configured for the file extension.

Examples:
  dmoj-submit submit aplusb.cpp
  dmoj-submit submit solution.py -p ccc22j1 -l pypy3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]

		source, err := readSource(file)
		if err != nil {
			return err
		}

		cfg, err := store.Load()
		if err != nil {
			return err
		}

		problem, err := resolveProblem(problemFlag, file)
		if err != nil {
			return err
		}
		token, err := resolveToken(tokenFlag, cfg)
		if err != nil {
			return err
		}
		language, err := resolveLanguage(languageFlag, file, cfg)
		if err != nil {
			return err
		}

		c := client.New(cfg.BaseURL, token)
		return submit(cmd.Context(), c, cmd.OutOrStdout(), problem, source, language, poller.Options{})
	},
}

func submit(ctx context.Context, c *client.Client, out io.Writer, problem, source, language string, opts poller.Options) error {
	langs, err := c.Languages(ctx)
	if err != nil {
		return fmt.Errorf("could not fetch languages: %w", err)
	}
	languageID, err := client.LanguageID(langs, language)
	if err != nil {
		return err
	}

	logger.Info("resolved language",
		zap.String("problem", problem),
		zap.String("language", language),
		zap.Int("language_id", languageID))

	id, err := c.Submit(ctx, problem, source, languageID)
	if err != nil {
		return fmt.Errorf("could not submit: %w", err)
	}

	link := lipgloss.NewStyle().Underline(true)
	fmt.Fprintf(out, "Submitted! %s\n\n", link.Render(c.BaseURL()+"/submission/"+id))

	progress := ui.NewProgress(out, ui.WithMessage("Queued..."))
	outcome, err := poller.Poll(ctx, c, id, progress, opts)
	if err != nil {
		return err
	}

	ui.PrintOutcome(out, outcome)
	return nil
}

func init() {
	submitCmd.Flags().StringVarP(&problemFlag, "problem", "p", "", "Problem code (defaults to the file name)")
	submitCmd.Flags().StringVarP(&tokenFlag, "token", "t", "", "API token (defaults to the stored token)")
	submitCmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Language key (defaults to the key mapped to the file extension)")
	rootCmd.AddCommand(submitCmd)
}
