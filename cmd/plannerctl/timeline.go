package main

import (
	"fmt"
	"os"

	"resource-planner-backend/internal/seed"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newTimelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Project timeline commands",
	}

	cmd.AddCommand(newTimelineImportCmd())
	return cmd
}

func newTimelineImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Store a project timeline from a YAML file",
		Long:  "Reads a timeline (project or project_id, phases, milestones, dependencies) and replaces the project's stored timeline.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimelineImport(cmd, args[0])
		},
	}
}

func runTimelineImport(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var timeline seed.TimelineData
	if err := yaml.Unmarshal(data, &timeline); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	planner, err := openApp()
	if err != nil {
		return err
	}
	defer planner.Close()

	req, err := seed.NewLoader(planner.Services).TimelineRequest(&timeline, nil)
	if err != nil {
		return err
	}
	stored, err := planner.Services.Timelines.CreateTimeline(req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stored timeline for project %s: %s..%s, %d phase(s), %d milestone(s), %d dependencies\n",
		stored.ProjectID, stored.StartDate, stored.EndDate, len(stored.Phases), len(stored.Milestones), len(stored.Dependencies))
	return nil
}
