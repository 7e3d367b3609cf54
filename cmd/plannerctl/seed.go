package main

import (
	"fmt"

	"resource-planner-backend/internal/seed"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "seed <dir>",
		Short: "Load projects, members and allocations from YAML files",
		Long: "Reads every .yaml/.yml file below dir and stores its projects, members, availability, " +
			"allocations and timelines. Allocations pass through conflict detection; rejected ones are listed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any allocation is rejected")
	return cmd
}

func runSeed(cmd *cobra.Command, dir string, strict bool) error {
	out := cmd.OutOrStdout()

	file, err := seed.LoadDir(dir)
	if err != nil {
		return fmt.Errorf("load seed files: %w", err)
	}

	planner, err := openApp()
	if err != nil {
		return err
	}
	defer planner.Close()

	result, err := seed.NewLoader(planner.Services).Apply(cmd.Context(), file)
	if err != nil {
		return fmt.Errorf("apply seed: %w", err)
	}

	fmt.Fprintf(out, "Projects created:    %d\n", result.ProjectsCreated)
	fmt.Fprintf(out, "Members created:     %d\n", result.MembersCreated)
	fmt.Fprintf(out, "Availability set:    %d\n", result.AvailabilitySet)
	fmt.Fprintf(out, "Allocations created: %d\n", result.AllocationsCreated)
	fmt.Fprintf(out, "Timelines stored:    %d\n", result.TimelinesStored)

	if len(result.Rejected) == 0 {
		return nil
	}
	fmt.Fprintf(out, "Allocations rejected: %d\n", len(result.Rejected))
	for _, r := range result.Rejected {
		a := r.Allocation
		fmt.Fprintf(out, "  %s -> %s %s..%s %.2fh: %s\n", a.MemberEmail, a.Project, a.StartDate, a.EndDate, a.Hours, r.Reason)
	}
	if strict {
		return fmt.Errorf("%d allocation(s) rejected", len(result.Rejected))
	}
	return nil
}
