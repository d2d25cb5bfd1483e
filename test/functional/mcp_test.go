package functional_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/daybudget/daybudget/internal/testserver"
)

// callTool makes a tools/call over the in-memory transport and unwraps
// the text content as JSON.
func callTool(t *testing.T, ts *testserver.TestServer, name string, args map[string]any) json.RawMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ts.Session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "CallTool %s failed", name)
	require.False(t, result.IsError, "Tool %s returned error", name)
	require.NotEmpty(t, result.Content, "Tool %s returned no content", name)

	for _, content := range result.Content {
		if textContent, ok := content.(*sdkmcp.TextContent); ok {
			return json.RawMessage(textContent.Text)
		}
	}
	t.Fatalf("Tool %s returned no text content", name)
	return nil
}

func TestFunctional_TodayOverview(t *testing.T) {
	ts := testserver.New(t)

	resp := callTool(t, ts, "get_today", nil)

	var today struct {
		Date       string `json:"date"`
		DayType    string `json:"day_type"`
		Activities []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"activities"`
	}
	require.NoError(t, json.Unmarshal(resp, &today))
	require.Equal(t, "2026-08-24", today.Date)
	require.Equal(t, "soldier", today.DayType)
	require.Len(t, today.Activities, 11)
}

func TestFunctional_TimerWorkflow(t *testing.T) {
	ts := testserver.New(t)

	started := callTool(t, ts, "start_timer", map[string]any{"activity_id": "work"})
	require.NotEmpty(t, started)

	ts.Clock.Advance(45 * time.Minute)

	stoppedResp := callTool(t, ts, "stop_timer", map[string]any{"activity_id": "work"})
	var stopped struct {
		Stopped bool `json:"stopped"`
		Record  struct {
			Minutes int `json:"minutes"`
		} `json:"record"`
	}
	require.NoError(t, json.Unmarshal(stoppedResp, &stopped))
	require.True(t, stopped.Stopped)
	require.Equal(t, 45, stopped.Record.Minutes)

	// The write must be visible to the next call.
	todayResp := callTool(t, ts, "get_today", nil)
	var today struct {
		Activities []struct {
			ID            string `json:"id"`
			ActualMinutes int    `json:"actual_minutes"`
		} `json:"activities"`
	}
	require.NoError(t, json.Unmarshal(todayResp, &today))
	for _, act := range today.Activities {
		if act.ID == "work" {
			require.Equal(t, 45, act.ActualMinutes)
		}
	}
}

func TestFunctional_HistoryAndStreaks(t *testing.T) {
	ts := testserver.New(t)

	logResp := callTool(t, ts, "log_history", map[string]any{
		"activity_id": "gym",
		"minutes":     60,
	})
	var logged struct {
		Record struct {
			IsHistory bool `json:"is_history"`
		} `json:"record"`
	}
	require.NoError(t, json.Unmarshal(logResp, &logged))
	require.True(t, logged.Record.IsHistory)

	// History never counts as streak evidence.
	streaksResp := callTool(t, ts, "get_streaks", nil)
	var streaks struct {
		Streaks   map[string]int `json:"streaks"`
		MaxStreak int            `json:"max_streak"`
	}
	require.NoError(t, json.Unmarshal(streaksResp, &streaks))
	require.Equal(t, 0, streaks.Streaks["gym"])
	require.Equal(t, 0, streaks.MaxStreak)
}

func TestFunctional_InsightsAndWeeklyReport(t *testing.T) {
	ts := testserver.New(t)

	insightsResp := callTool(t, ts, "get_insights", nil)
	var insights struct {
		Insights []struct {
			Code string `json:"code"`
		} `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(insightsResp, &insights))
	require.NotEmpty(t, insights.Insights)

	weeklyResp := callTool(t, ts, "get_weekly_report", nil)
	var weekly struct {
		WeekEnding string `json:"week_ending"`
		DailyLogs  []any  `json:"daily_logs"`
	}
	require.NoError(t, json.Unmarshal(weeklyResp, &weekly))
	require.Equal(t, "2026-08-24", weekly.WeekEnding)
	require.Len(t, weekly.DailyLogs, 7)
}

func TestFunctional_UnknownActivityError(t *testing.T) {
	ts := testserver.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ts.Session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "start_timer",
		Arguments: map[string]any{"activity_id": "yoga"},
	})
	require.NoError(t, err)
	require.True(t, result.IsError)
}
