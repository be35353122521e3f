package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmoj-submit/dmoj-submit/internal/config"
	"github.com/dmoj-submit/dmoj-submit/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	verbosity int
	quiet     bool

	// store is set up before any subcommand runs
	store *config.Store
)

var rootCmd = &cobra.Command{
	Use:   "dmoj-submit",
	Short: "Submit solutions to DMOJ and watch them get graded",
	Long: `dmoj-submit - submit to DMOJ from your terminal

Your source is submitted with your API token, then test case results are
printed as the judge reports them.

Quick Start:
  1. Save your API token:   dmoj-submit login
  2. Submit a solution:     dmoj-submit submit aplusb.cpp

The problem code defaults to the file name and the language to the file
extension. See 'dmoj-submit set-config --help' to change the defaults.`,
	Version:      buildVersion(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// a .env in the working directory may carry DMOJ_TOKEN / DMOJ_BASE_URL
		_ = godotenv.Load()

		if err := logger.Init(logger.Config{Level: logger.LevelFromVerbosity(verbosity, quiet)}); err != nil {
			return err
		}

		s, err := config.DefaultStore()
		if err != nil {
			return err
		}
		store = s
		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase logging verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
}
