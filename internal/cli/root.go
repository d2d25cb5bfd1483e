// Package cli implements the daybudget command line interface. It talks
// to the same SQLite database as the MCP server, so both surfaces see
// one log.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/daybudget/daybudget/internal/clock"
	"github.com/daybudget/daybudget/internal/config"
	"github.com/daybudget/daybudget/internal/domain/insight"
	"github.com/daybudget/daybudget/internal/domain/report"
	"github.com/daybudget/daybudget/internal/domain/streak"
	"github.com/daybudget/daybudget/internal/domain/tracking"
	"github.com/daybudget/daybudget/internal/notify"
	"github.com/daybudget/daybudget/internal/sqlite"
)

var rootCmd = &cobra.Command{
	Use:   "daybudget",
	Short: "daybudget – track your day against a planned time budget",
	Long: `daybudget tracks activities against a day-type-aware schedule:
planned minutes per activity, streaks for consecutive completed days,
and weekly insight reports. Data lives in a local SQLite database.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(streaksCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(reportCmd)
}

// app bundles the wired services for one command invocation.
type app struct {
	db       *sqlite.DB
	settings *sqlite.SettingsRepository
	tracker  *tracking.Service
	streaks  *streak.Calculator
	insights *insight.Engine
	awarder  *insight.Awarder
	reports  *report.Builder
	clock    clock.Clock
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// CLI output belongs to the commands; keep the log quiet.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	logRepo := sqlite.NewLogRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)
	achievementRepo := sqlite.NewAchievementRepository(db)

	clk := clock.System{}
	trackerSvc := tracking.NewService(logRepo, settingsRepo, notify.Noop{}, clk, logger)
	streakCalc := streak.NewCalculator(logRepo, clk, cfg.Tracker.StreakBound, logger)
	engine := insight.NewEngine(logRepo, clk, cfg.Tracker.InsightWindowDays, logger)

	return &app{
		db:       db,
		settings: settingsRepo,
		tracker:  trackerSvc,
		streaks:  streakCalc,
		insights: engine,
		awarder:  insight.NewAwarder(achievementRepo, clk),
		reports:  report.NewBuilder(engine, streakCalc, clk, logger),
		clock:    clk,
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
