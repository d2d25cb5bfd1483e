package mcp

import (
	"log/slog"

	"github.com/daybudget/daybudget/internal/clock"
	"github.com/daybudget/daybudget/internal/domain/insight"
	"github.com/daybudget/daybudget/internal/domain/report"
	"github.com/daybudget/daybudget/internal/domain/streak"
	"github.com/daybudget/daybudget/internal/domain/tracking"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `daybudget tracks a day-type-aware schedule of activities against planned
durations. Use get_today for the current catalog and per-activity state,
start_timer/stop_timer to track time, log_history to back-fill minutes
(back-filled entries never count toward streaks), get_streaks and
get_insights for derived consistency data, and get_weekly_report for the
exportable trailing-week summary.`

// Services contains all domain services needed by the MCP surface.
type Services struct {
	Tracker  *tracking.Service
	Streaks  *streak.Calculator
	Insights *insight.Engine
	Awarder  *insight.Awarder
	Reports  *report.Builder
	Clock    clock.Clock
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "daybudget",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
