package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the trailing-week report",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, json")
}

func runReport(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer app.Close()
	ctx := context.Background()

	acts, err := app.tracker.Catalog(ctx)
	if err != nil {
		return err
	}
	weekly, err := app.reports.Build(ctx, acts)
	if err != nil {
		return err
	}

	if reportFormat == "json" {
		out, err := json.MarshalIndent(weekly, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Week ending %s\n", weekly.WeekEnding)
	fmt.Println("--------------------------------")
	for _, day := range weekly.DailyLogs {
		total := 0
		for _, act := range day.Activities {
			total += act.Actual
		}
		fmt.Printf("%-12s %s  %4d min\n", day.Day, day.Date, total)
	}
	fmt.Println("--------------------------------")
	fmt.Printf("Completion %d%%  Variance %+d min  Calories %d\n",
		weekly.Summary.CompletionRate, weekly.Summary.TotalVariance, weekly.Summary.TotalCalories)

	for _, in := range weekly.Summary.Insights {
		fmt.Printf("%s %s\n", severityMark(in.Severity), in.Message)
	}
	return nil
}
