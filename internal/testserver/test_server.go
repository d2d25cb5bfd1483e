// Package testserver wires a full daybudget MCP server against an
// in-memory database and hands back a connected SDK client session.
package testserver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/daybudget/daybudget/internal/clock"
	"github.com/daybudget/daybudget/internal/domain/insight"
	"github.com/daybudget/daybudget/internal/domain/report"
	"github.com/daybudget/daybudget/internal/domain/streak"
	"github.com/daybudget/daybudget/internal/domain/tracking"
	"github.com/daybudget/daybudget/internal/mcp"
	"github.com/daybudget/daybudget/internal/notify"
	"github.com/daybudget/daybudget/internal/sqlite"
)

type TestServer struct {
	DB      *sqlite.DB
	Session *sdkmcp.ClientSession
	// Clock starts on Monday 2026-08-24 at 09:30 and can be moved to
	// drive windows, sweeps, and streak walks.
	Clock   *clock.Fake
	Tracker *tracking.Service
	Logs    *sqlite.LogRepository
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	logRepo := sqlite.NewLogRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)
	achievementRepo := sqlite.NewAchievementRepository(db)

	clk := clock.NewFake(time.Date(2026, time.August, 24, 9, 30, 0, 0, time.Local))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tracker := tracking.NewService(logRepo, settingsRepo, notify.Noop{}, clk, logger)
	streaks := streak.NewCalculator(logRepo, clk, streak.DefaultScanBound, logger)
	engine := insight.NewEngine(logRepo, clk, insight.DefaultWindowDays, logger)

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Tracker:  tracker,
			Streaks:  streaks,
			Insights: engine,
			Awarder:  insight.NewAwarder(achievementRepo, clk),
			Reports:  report.NewBuilder(engine, streaks, clk, logger),
			Clock:    clk,
		},
		Logger: logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		clientSession.Close()
		serverSession.Close()
		cancel()
		db.Close()
	})

	return &TestServer{
		DB:      db,
		Session: clientSession,
		Clock:   clk,
		Tracker: tracker,
		Logs:    logRepo,
	}
}
