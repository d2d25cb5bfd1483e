package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daybudget/daybudget/internal/domain/insight"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Analyze the trailing week for patterns and new achievements",
	Args:  cobra.NoArgs,
	RunE:  runInsights,
}

func runInsights(cmd *cobra.Command, args []string) error {
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
	window, err := app.insights.TrailingWindow(ctx, acts)
	if err != nil {
		return err
	}
	streaks, err := app.streaks.ComputeAll(ctx, acts)
	if err != nil {
		return err
	}
	insights, deviations := app.insights.Analyze(window, acts, streaks)

	for _, in := range insights {
		fmt.Printf("%s %s\n", severityMark(in.Severity), in.Message)
	}
	if len(deviations) > 0 {
		fmt.Println()
		for _, dev := range deviations {
			fmt.Printf("⚠️  %s\n", dev.Message)
		}
	}

	minutes, err := app.tracker.MinutesToday(ctx)
	if err != nil {
		return err
	}
	earned, err := app.awarder.Check(ctx, acts, streaks, minutes)
	if err != nil {
		return err
	}
	if len(earned) > 0 {
		fmt.Println()
		for _, a := range earned {
			fmt.Printf("New achievement: %s\n", a.Message)
		}
	}
	return nil
}

func severityMark(s insight.Severity) string {
	switch s {
	case insight.SeveritySuccess:
		return "✅"
	case insight.SeverityWarning:
		return "⚠️ "
	default:
		return "ℹ️ "
	}
}
