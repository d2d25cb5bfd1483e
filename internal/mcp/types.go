package mcp

import (
	"github.com/daybudget/daybudget/internal/domain/insight"
	"github.com/daybudget/daybudget/internal/domain/report"
	"github.com/daybudget/daybudget/internal/domain/tracking"
)

type GetTodayParams struct{}

type StartTimerParams struct {
	ActivityID string `json:"activity_id"`
	// StartTime optionally backdates the timer to an "HH:MM" instant
	// earlier today.
	StartTime string `json:"start_time,omitempty"`
}

type StartTimerResult struct {
	ActivityID string `json:"activity_id"`
	StartedAt  string `json:"started_at"`
}

type StopTimerParams struct {
	ActivityID string `json:"activity_id"`
}

type StopTimerResult struct {
	Stopped bool `json:"stopped"`
	// Record is present when elapsed time rounded to at least one minute.
	Record *tracking.LogRecord `json:"record,omitempty"`
	Streak int                 `json:"streak"`
}

type LogHistoryParams struct {
	ActivityID string `json:"activity_id"`
	Minutes    int    `json:"minutes"`
}

type LogHistoryResult struct {
	Record *tracking.LogRecord `json:"record"`
}

type GetStreaksParams struct{}

type GetStreaksResult struct {
	Streaks   map[string]int `json:"streaks"`
	MaxStreak int            `json:"max_streak"`
}

type GetInsightsParams struct{}

type GetInsightsResult struct {
	Insights   []insight.Insight   `json:"insights"`
	Deviations []insight.Deviation `json:"deviations"`
	// NewAchievements lists badges earned by this evaluation; previously
	// awarded keys are never re-emitted.
	NewAchievements []insight.Achievement `json:"new_achievements,omitempty"`
}

type GetWeeklyReportParams struct{}

// ActivityView is one activity's row in the today view.
type ActivityView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Icon           string `json:"icon"`
	Window         string `json:"window"`
	Status         string `json:"status"`
	PlannedMinutes int    `json:"planned_minutes"`
	ActualMinutes  int    `json:"actual_minutes"`
	Variance       int    `json:"variance"`
	Calories       int    `json:"calories"`
	Streak         int    `json:"streak"`
	// TimerSeconds is the running timer's elapsed seconds, when active.
	TimerSeconds int `json:"timer_seconds,omitempty"`
}

// BrokenStreak flags a 10+ day streak whose activity is missed today.
type BrokenStreak struct {
	ActivityID string `json:"activity_id"`
	Name       string `json:"name"`
	Streak     int    `json:"streak"`
}

type TodayResult struct {
	Date          string         `json:"date"`
	DayType       string         `json:"day_type"`
	DayLabel      string         `json:"day_label"`
	Activities    []ActivityView `json:"activities"`
	Stats         report.Stats   `json:"stats"`
	BrokenStreaks []BrokenStreak `json:"broken_streaks,omitempty"`
}
