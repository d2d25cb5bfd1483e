package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daybudget/daybudget/internal/domain/report"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's schedule and progress",
	Args:  cobra.NoArgs,
	RunE:  runToday,
}

func runToday(cmd *cobra.Command, args []string) error {
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
	minutes, err := app.tracker.MinutesToday(ctx)
	if err != nil {
		return err
	}
	streaks, err := app.streaks.ComputeAll(ctx, acts)
	if err != nil {
		return err
	}

	dayType := app.tracker.DayType()
	fmt.Printf("%s  %s\n", app.clock.Today(), dayType.Label())
	fmt.Println("--------------------------------------------------------------")

	for _, act := range acts {
		actual := minutes[act.ID]
		status := app.tracker.Status(act, actual)
		streakMark := ""
		if streaks[act.ID] > 0 {
			streakMark = fmt.Sprintf("🔥%d", streaks[act.ID])
		}
		fmt.Printf("%s %-18s %-15s %4d/%-4d min  %-9s %s\n",
			act.Icon, act.Name, act.Window.String(),
			actual, act.PlannedMinutes, status, streakMark)
	}

	stats := report.ComputeStats(acts, minutes, streaks)
	fmt.Println("--------------------------------------------------------------")
	fmt.Printf("Completion %d%%  Variance %+d min  Calories %d  Best streak %d\n",
		stats.CompletionRate, stats.TotalVariance, stats.TotalCalories, stats.MaxStreak)
	return nil
}
