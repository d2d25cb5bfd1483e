package mcp

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/daybudget/daybudget/internal/domain/report"
	"github.com/daybudget/daybudget/internal/domain/schedule"
	"github.com/daybudget/daybudget/internal/domain/tracking"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type handlers struct {
	services Services
}

func registerTools(server *sdkmcp.Server, services Services) {
	h := &handlers{services: services}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_today",
		Description: "Get today's day type, activity catalog with per-activity state, and rolled-up stats",
	}, h.getToday)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "start_timer",
		Description: "Start a timer for an activity, optionally backdated to an HH:MM start earlier today",
	}, h.startTimer)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "stop_timer",
		Description: "Stop an activity's timer and persist the elapsed minutes; idempotent when no timer runs",
	}, h.stopTimer)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "log_history",
		Description: "Manually back-fill minutes for an activity today; history entries never extend streaks",
	}, h.logHistory)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_streaks",
		Description: "Get consecutive-completion streaks per activity",
	}, h.getStreaks)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_insights",
		Description: "Analyze the trailing week for consistency insights, deviations, and newly earned achievements",
	}, h.getInsights)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_weekly_report",
		Description: "Build the exportable trailing-week report with per-day activity roll-ups and a summary block",
	}, h.getWeeklyReport)
}

func (h *handlers) getToday(ctx context.Context, req *sdkmcp.CallToolRequest, params GetTodayParams) (*sdkmcp.CallToolResult, TodayResult, error) {
	tracker := h.services.Tracker

	acts, err := tracker.Catalog(ctx)
	if err != nil {
		return nil, TodayResult{}, mapError(err)
	}
	minutes, err := tracker.MinutesToday(ctx)
	if err != nil {
		return nil, TodayResult{}, mapError(err)
	}
	streaks, err := h.services.Streaks.ComputeAll(ctx, acts)
	if err != nil {
		return nil, TodayResult{}, mapError(err)
	}

	dayType := tracker.DayType()
	result := TodayResult{
		Date:       h.services.Clock.Today(),
		DayType:    string(dayType),
		DayLabel:   dayType.Label(),
		Activities: make([]ActivityView, 0, len(acts)),
		Stats:      report.ComputeStats(acts, minutes, streaks),
	}

	for _, act := range acts {
		actual := minutes[act.ID]
		status := tracker.Status(act, actual)
		view := ActivityView{
			ID:             act.ID,
			Name:           act.Name,
			Icon:           act.Icon,
			Window:         act.Window.String(),
			Status:         string(status),
			PlannedMinutes: act.PlannedMinutes,
			ActualMinutes:  actual,
			Variance:       act.Variance(actual),
			Calories:       int(math.Round(float64(actual) * act.CalPerMinute)),
			Streak:         streaks[act.ID],
		}
		if elapsed, running := tracker.Running(act.ID); running {
			view.TimerSeconds = int(elapsed.Seconds())
		}
		result.Activities = append(result.Activities, view)

		if streaks[act.ID] >= 10 && status == tracking.StatusMissed {
			result.BrokenStreaks = append(result.BrokenStreaks, BrokenStreak{
				ActivityID: act.ID,
				Name:       act.Name,
				Streak:     streaks[act.ID],
			})
		}
	}

	return nil, result, nil
}

func (h *handlers) startTimer(ctx context.Context, req *sdkmcp.CallToolRequest, params StartTimerParams) (*sdkmcp.CallToolResult, StartTimerResult, error) {
	tracker := h.services.Tracker
	now := h.services.Clock.Now()

	at := now
	if params.StartTime != "" {
		minute, err := schedule.ParseClock(params.StartTime)
		if err != nil {
			return nil, StartTimerResult{}, &APIError{Code: "INVALID_START", Message: fmt.Sprintf("invalid start_time %q", params.StartTime)}
		}
		at = time.Date(now.Year(), now.Month(), now.Day(), minute/60, minute%60, 0, 0, now.Location())
	}

	if err := tracker.StartTimerAt(ctx, params.ActivityID, at); err != nil {
		return nil, StartTimerResult{}, mapError(err)
	}
	return nil, StartTimerResult{ActivityID: params.ActivityID, StartedAt: at.Format(time.RFC3339)}, nil
}

// stopTimer persists the elapsed minutes, then recomputes the streak and
// achievement state. Persistence always completes before the derived
// recomputation starts.
func (h *handlers) stopTimer(ctx context.Context, req *sdkmcp.CallToolRequest, params StopTimerParams) (*sdkmcp.CallToolResult, StopTimerResult, error) {
	tracker := h.services.Tracker

	rec, err := tracker.StopTimer(ctx, params.ActivityID)
	if err != nil {
		return nil, StopTimerResult{}, mapError(err)
	}

	acts, err := tracker.Catalog(ctx)
	if err != nil {
		return nil, StopTimerResult{}, mapError(err)
	}
	result := StopTimerResult{Stopped: rec != nil, Record: rec}
	if act, ok := schedule.Find(acts, params.ActivityID); ok {
		count, err := h.services.Streaks.Compute(ctx, act)
		if err != nil {
			return nil, StopTimerResult{}, mapError(err)
		}
		result.Streak = count
	}

	if rec != nil {
		if err := h.checkAchievements(ctx, acts); err != nil {
			return nil, StopTimerResult{}, mapError(err)
		}
	}
	return nil, result, nil
}

func (h *handlers) logHistory(ctx context.Context, req *sdkmcp.CallToolRequest, params LogHistoryParams) (*sdkmcp.CallToolResult, LogHistoryResult, error) {
	rec, err := h.services.Tracker.LogHistory(ctx, params.ActivityID, params.Minutes)
	if err != nil {
		return nil, LogHistoryResult{}, mapError(err)
	}
	return nil, LogHistoryResult{Record: rec}, nil
}

func (h *handlers) getStreaks(ctx context.Context, req *sdkmcp.CallToolRequest, params GetStreaksParams) (*sdkmcp.CallToolResult, GetStreaksResult, error) {
	acts, err := h.services.Tracker.Catalog(ctx)
	if err != nil {
		return nil, GetStreaksResult{}, mapError(err)
	}
	streaks, err := h.services.Streaks.ComputeAll(ctx, acts)
	if err != nil {
		return nil, GetStreaksResult{}, mapError(err)
	}

	result := GetStreaksResult{Streaks: streaks}
	for _, count := range streaks {
		if count > result.MaxStreak {
			result.MaxStreak = count
		}
	}
	return nil, result, nil
}

func (h *handlers) getInsights(ctx context.Context, req *sdkmcp.CallToolRequest, params GetInsightsParams) (*sdkmcp.CallToolResult, GetInsightsResult, error) {
	tracker := h.services.Tracker

	acts, err := tracker.Catalog(ctx)
	if err != nil {
		return nil, GetInsightsResult{}, mapError(err)
	}
	window, err := h.services.Insights.TrailingWindow(ctx, acts)
	if err != nil {
		return nil, GetInsightsResult{}, mapError(err)
	}
	streaks, err := h.services.Streaks.ComputeAll(ctx, acts)
	if err != nil {
		return nil, GetInsightsResult{}, mapError(err)
	}

	insights, deviations := h.services.Insights.Analyze(window, acts, streaks)
	result := GetInsightsResult{Insights: insights, Deviations: deviations}

	minutes, err := tracker.MinutesToday(ctx)
	if err != nil {
		return nil, GetInsightsResult{}, mapError(err)
	}
	earned, err := h.services.Awarder.Check(ctx, acts, streaks, minutes)
	if err != nil {
		return nil, GetInsightsResult{}, mapError(err)
	}
	result.NewAchievements = earned

	return nil, result, nil
}

func (h *handlers) getWeeklyReport(ctx context.Context, req *sdkmcp.CallToolRequest, params GetWeeklyReportParams) (*sdkmcp.CallToolResult, report.Weekly, error) {
	acts, err := h.services.Tracker.Catalog(ctx)
	if err != nil {
		return nil, report.Weekly{}, mapError(err)
	}
	weekly, err := h.services.Reports.Build(ctx, acts)
	if err != nil {
		return nil, report.Weekly{}, mapError(err)
	}
	return nil, *weekly, nil
}

func (h *handlers) checkAchievements(ctx context.Context, acts []schedule.Activity) error {
	streaks, err := h.services.Streaks.ComputeAll(ctx, acts)
	if err != nil {
		return err
	}
	minutes, err := h.services.Tracker.MinutesToday(ctx)
	if err != nil {
		return err
	}
	_, err = h.services.Awarder.Check(ctx, acts, streaks, minutes)
	return err
}
