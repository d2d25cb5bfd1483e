package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Show consecutive-completion streaks per activity",
	Args:  cobra.NoArgs,
	RunE:  runStreaks,
}

func runStreaks(cmd *cobra.Command, args []string) error {
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
	streaks, err := app.streaks.ComputeAll(ctx, acts)
	if err != nil {
		return err
	}

	best := 0
	for _, act := range acts {
		count := streaks[act.ID]
		if count > best {
			best = count
		}
		fmt.Printf("%s %-18s %d days\n", act.Icon, act.Name, count)
	}
	fmt.Printf("%-21s%d days\n", "Best", best)
	return nil
}
