package tracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/daybudget/daybudget/internal/clock"
	"github.com/daybudget/daybudget/internal/domain/schedule"
	"github.com/daybudget/daybudget/internal/repository"
	"github.com/google/uuid"
)

// Service owns the in-memory timers and all log writes. User actions and
// the periodic sweep share one mutex, so a sweep that stops a timer
// completes its log write and state update before the next tick observes
// anything.
type Service struct {
	logs     LogRepository
	settings SettingsRepository
	notifier Notifier
	clock    clock.Clock
	logger   *slog.Logger

	mu       sync.Mutex
	timers   map[string]Timer
	reminded map[string]string // activity id -> date last reminded
}

// NewService creates a new tracking service.
func NewService(
	logs LogRepository,
	settings SettingsRepository,
	notifier Notifier,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logs:     logs,
		settings: settings,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
		timers:   make(map[string]Timer),
		reminded: make(map[string]string),
	}
}

// DayType returns today's day type.
func (s *Service) DayType() schedule.DayType {
	return schedule.DayTypeFor(s.clock.Now())
}

// Catalog returns today's activity list: the customized catalog from
// settings when one exists, otherwise the built-in catalog for today's
// day type. Catalog construction itself never touches storage.
func (s *Service) Catalog(ctx context.Context) ([]schedule.Activity, error) {
	custom, err := s.settings.LoadCatalog(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return schedule.Catalog(s.DayType()), nil
		}
		return nil, fmt.Errorf("loading custom catalog: %w", err)
	}
	return custom, nil
}

// StartTimer begins tracking an activity as of now.
func (s *Service) StartTimer(ctx context.Context, activityID string) error {
	return s.StartTimerAt(ctx, activityID, s.clock.Now())
}

// StartTimerAt begins tracking an activity backdated to a start instant
// earlier today. At most one timer runs per activity; independent
// activities may run concurrently.
func (s *Service) StartTimerAt(ctx context.Context, activityID string, at time.Time) error {
	act, err := s.findActivity(ctx, activityID)
	if err != nil {
		return err
	}
	if at.After(s.clock.Now()) {
		return ErrInvalidStart
	}

	s.mu.Lock()
	if _, running := s.timers[activityID]; running {
		s.mu.Unlock()
		return ErrTimerRunning
	}
	s.timers[activityID] = Timer{ActivityID: activityID, StartedAt: at}
	s.mu.Unlock()

	s.logger.Info("timer started", "activity", activityID, "at", at)
	s.notifier.Notify(ctx, "Started: "+act.Name, "Stay on track with your time budget!", act.Icon)
	return nil
}

// StopTimer stops the activity's timer and persists the elapsed minutes as
// a log record. Stopping is idempotent: with no active timer for the id it
// is a no-op and returns (nil, nil). Elapsed durations that round to zero
// minutes discard the timer without writing a record. If the write fails
// the timer is kept so the user can retry the stop.
func (s *Service) StopTimer(ctx context.Context, activityID string) (*LogRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopLocked(ctx, activityID)
}

func (s *Service) stopLocked(ctx context.Context, activityID string) (*LogRecord, error) {
	timer, ok := s.timers[activityID]
	if !ok {
		return nil, nil
	}

	now := s.clock.Now()
	minutes := int(math.Round(timer.Elapsed(now).Minutes()))
	if minutes <= 0 {
		delete(s.timers, activityID)
		s.logger.Debug("timer discarded", "activity", activityID)
		return nil, nil
	}

	rec := &LogRecord{
		ID:         uuid.NewString(),
		Date:       s.clock.Today(),
		ActivityID: activityID,
		Minutes:    minutes,
		Timestamp:  now,
	}
	if err := s.logs.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("appending log: %w", err)
	}

	delete(s.timers, activityID)
	s.logger.Info("timer stopped", "activity", activityID, "minutes", minutes)
	return rec, nil
}

// LogHistory records a manually back-filled entry for today. Input is
// validated before anything reaches the store.
func (s *Service) LogHistory(ctx context.Context, activityID string, minutes int) (*LogRecord, error) {
	if minutes <= 0 {
		return nil, ErrInvalidMinutes
	}
	if _, err := s.findActivity(ctx, activityID); err != nil {
		return nil, err
	}

	rec := &LogRecord{
		ID:         uuid.NewString(),
		Date:       s.clock.Today(),
		ActivityID: activityID,
		Minutes:    minutes,
		Timestamp:  s.clock.Now(),
		IsHistory:  true,
	}
	if err := s.logs.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("appending history log: %w", err)
	}

	s.logger.Info("history logged", "activity", activityID, "minutes", minutes)
	return rec, nil
}

// MinutesForDate sums logged minutes per activity for one calendar day.
func (s *Service) MinutesForDate(ctx context.Context, date string) (map[string]int, error) {
	records, err := s.logs.GetForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("loading logs for %s: %w", date, err)
	}
	totals := make(map[string]int)
	for _, rec := range records {
		totals[rec.ActivityID] += rec.Minutes
	}
	return totals, nil
}

// MinutesToday sums today's logged minutes per activity.
func (s *Service) MinutesToday(ctx context.Context) (map[string]int, error) {
	return s.MinutesForDate(ctx, s.clock.Today())
}

// Running reports the elapsed duration of an activity's timer, if any.
func (s *Service) Running(activityID string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer, ok := s.timers[activityID]
	if !ok {
		return 0, false
	}
	return timer.Elapsed(s.clock.Now()), true
}

// Status computes the display state of an activity right now.
func (s *Service) Status(act schedule.Activity, loggedMinutes int) Status {
	_, running := s.Running(act.ID)
	return StatusOf(act, loggedMinutes, running, schedule.MinuteOfDay(s.clock.Now()))
}

// SweepExpired force-stops every timer whose activity window end has been
// reached, exactly as if the user had confirmed the stop. Safe to call on
// a fixed cadence; already-stopped timers are no-ops.
func (s *Service) SweepExpired(ctx context.Context) ([]*LogRecord, error) {
	acts, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nowMin := schedule.MinuteOfDay(s.clock.Now())
	var stopped []*LogRecord
	for id := range s.timers {
		act, ok := schedule.Find(acts, id)
		if !ok {
			// Timer started under a previous day's catalog; leave it to a
			// manual stop.
			continue
		}
		if !windowEnded(act.Window, nowMin) {
			continue
		}
		rec, err := s.stopLocked(ctx, id)
		if err != nil {
			return stopped, err
		}
		if rec != nil {
			s.logger.Info("timer auto-ended", "activity", id, "minutes", rec.Minutes)
			stopped = append(stopped, rec)
		}
	}
	return stopped, nil
}

// windowEnded reports whether now is at or past the window end, respecting
// overnight wrap. Unlike TimeWindow.Past this includes the end minute.
func windowEnded(w schedule.TimeWindow, nowMin int) bool {
	if w.Wraps() {
		return nowMin >= w.End && nowMin < w.Start
	}
	return nowMin >= w.End
}

// SendReminders notifies activities whose window opens this minute, once
// per activity per day.
func (s *Service) SendReminders(ctx context.Context) error {
	acts, err := s.Catalog(ctx)
	if err != nil {
		return err
	}

	nowMin := schedule.MinuteOfDay(s.clock.Now())
	today := s.clock.Today()
	for _, act := range acts {
		if act.Window.Start != nowMin {
			continue
		}
		s.mu.Lock()
		already := s.reminded[act.ID] == today
		if !already {
			s.reminded[act.ID] = today
		}
		s.mu.Unlock()
		if already {
			continue
		}
		s.notifier.Notify(ctx, "Time to start: "+act.Name, "Stay on track with your time budget!", act.Icon)
	}
	return nil
}

// Run drives the periodic sweep and reminder checks until ctx is done.
// Interval is once per minute in production.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepExpired(ctx); err != nil {
				s.logger.Error("auto-end sweep failed", "error", err)
			}
			if err := s.SendReminders(ctx); err != nil {
				s.logger.Error("reminder check failed", "error", err)
			}
		}
	}
}

func (s *Service) findActivity(ctx context.Context, activityID string) (schedule.Activity, error) {
	acts, err := s.Catalog(ctx)
	if err != nil {
		return schedule.Activity{}, err
	}
	act, ok := schedule.Find(acts, activityID)
	if !ok {
		return schedule.Activity{}, ErrUnknownActivity
	}
	return act, nil
}
