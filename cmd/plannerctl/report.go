package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"resource-planner-backend/internal/scheduling"

	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Capacity and workload reports",
	}

	cmd.AddCommand(newReportCapacityCmd())
	cmd.AddCommand(newReportWorkloadCmd())
	return cmd
}

func newReportCapacityCmd() *cobra.Command {
	var from, to string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Per-member capacity and utilization over a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := openApp()
			if err != nil {
				return err
			}
			defer planner.Close()

			reports, err := planner.Services.Reports.GetCapacityReport(from, to)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), reports)
			}
			formatCapacity(cmd.OutOrStdout(), reports)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "window end (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newReportWorkloadCmd() *cobra.Command {
	var from, to, bucket string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "workload",
		Short: "Team workload per week or month",
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := openApp()
			if err != nil {
				return err
			}
			defer planner.Close()

			dist, err := planner.Services.Reports.GetWorkloadDistribution(from, to, bucket)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), dist)
			}
			formatWorkload(cmd.OutOrStdout(), dist)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "window end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&bucket, "bucket", "week", "bucket size: week or month")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func formatCapacity(out io.Writer, reports []scheduling.CapacityReport) {
	if len(reports) == 0 {
		fmt.Fprintln(out, "No active team members.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tROLE\tCAPACITY\tALLOCATED\tAVAILABLE\tUTILIZATION")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.1f\t%.1f%%\n", r.Name, dash(r.Role), r.CapacityHours, r.AllocatedHours, r.AvailableHours, r.Utilization)
	}
	w.Flush()
}

func formatWorkload(out io.Writer, dist []scheduling.WorkloadDistribution) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PERIOD\tCAPACITY\tALLOCATED\tUTILIZATION\tBUSIEST")
	for _, d := range dist {
		busiest := "-"
		if len(d.Members) > 0 {
			busiest = fmt.Sprintf("%s (%.1f%%)", d.Members[0].Name, d.Members[0].Utilization)
		}
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f%%\t%s\n", d.Period, d.CapacityHours, d.AllocatedHours, d.Utilization, busiest)
	}
	w.Flush()
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
