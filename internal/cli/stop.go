package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybudget/daybudget/internal/clock"
	"github.com/daybudget/daybudget/internal/domain/schedule"
)

var stopCmd = &cobra.Command{
	Use:   "stop <activity>",
	Short: "Stop an activity's timer and log the elapsed minutes",
	Args:  cobra.ExactArgs(1),
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer app.Close()

	ok, err := app.stop(context.Background(), args[0], os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	if !ok {
		os.Exit(1)
	}
	return nil
}

// stop replays the persisted start instant through the tracking service
// and logs the elapsed minutes. Returns false when no timer was running.
func (a *app) stop(ctx context.Context, activityID string, out, errOut io.Writer) (bool, error) {
	at, running, err := a.timerStart(ctx, activityID)
	if err != nil {
		return false, err
	}
	if !running {
		fmt.Fprintf(errOut, "No timer running for %q.\n", activityID)
		return false, nil
	}

	// A timer abandoned for a full day or more can't become a meaningful
	// record. Anything younger is replayed as started, so overnight
	// windows like sleep stay stoppable the next morning.
	if a.clock.Now().Sub(at) >= 24*time.Hour {
		if err := a.clearTimerStart(ctx, activityID); err != nil {
			return true, err
		}
		fmt.Fprintf(errOut, "Discarded abandoned timer for %q started %s.\n",
			activityID, at.Format(clock.DateFormat))
		return true, nil
	}

	if err := a.tracker.StartTimerAt(ctx, activityID, at); err != nil {
		return true, err
	}
	rec, err := a.tracker.StopTimer(ctx, activityID)
	if err != nil {
		return true, err
	}
	if err := a.clearTimerStart(ctx, activityID); err != nil {
		return true, err
	}

	if rec == nil {
		fmt.Fprintln(out, "Elapsed time under a minute; nothing logged.")
		return true, nil
	}

	acts, err := a.tracker.Catalog(ctx)
	if err != nil {
		return true, err
	}
	act, _ := schedule.Find(acts, activityID)
	count, err := a.streaks.Compute(ctx, act)
	if err != nil {
		return true, err
	}

	fmt.Fprintf(out, "Logged %d min for %s %s", rec.Minutes, act.Icon, act.Name)
	if count > 0 {
		fmt.Fprintf(out, "  🔥%d", count)
	}
	fmt.Fprintln(out)
	return true, nil
}
