package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybudget/daybudget/internal/domain/schedule"
)

var startAt string

var startCmd = &cobra.Command{
	Use:   "start <activity>",
	Short: "Start a timer for an activity",
	Args:  cobra.ExactArgs(1),
	RunE:  runStart,
}

func init() {
	startCmd.Flags().StringVar(&startAt, "at", "", "Backdate the start to HH:MM earlier today")
}

func runStart(cmd *cobra.Command, args []string) error {
	activityID := args[0]

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
	act, ok := schedule.Find(acts, activityID)
	if !ok {
		return fmt.Errorf("unknown activity %q", activityID)
	}

	now := app.clock.Now()
	at := now
	if startAt != "" {
		minute, err := schedule.ParseClock(startAt)
		if err != nil {
			return fmt.Errorf("invalid --at value %q: expected HH:MM", startAt)
		}
		at = time.Date(now.Year(), now.Month(), now.Day(), minute/60, minute%60, 0, 0, now.Location())
		if at.After(now) {
			return fmt.Errorf("start time %s is in the future", startAt)
		}
	}

	if existing, running, err := app.timerStart(ctx, activityID); err != nil {
		return err
	} else if running {
		return fmt.Errorf("timer for %q already running since %s", activityID, existing.Format("15:04"))
	}

	if err := app.setTimerStart(ctx, activityID, at); err != nil {
		return err
	}

	fmt.Printf("Started %s %s at %s\n", act.Icon, act.Name, at.Format("15:04"))
	return nil
}
