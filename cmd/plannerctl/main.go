package main

import (
	"fmt"
	"os"

	"resource-planner-backend/internal/app"
	"resource-planner-backend/internal/config"
	"resource-planner-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "plannerctl",
		Short:         "Resource planner administration",
		Long:          "Seed planning data, import timelines and print capacity reports against the planner database.",
		SilenceUsage:  true,
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSeedCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newTimelineCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "plannerctl %s (commit: %s)\n", Version, Commit)
		},
	}
}

// openApp loads configuration from the environment and connects to the
// database and lock backend the server uses.
func openApp() (*app.App, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	planner, err := app.New(cfg, nil)
	if err != nil {
		return nil, err
	}
	return planner, nil
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
