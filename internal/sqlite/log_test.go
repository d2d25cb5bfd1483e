package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/daybudget/daybudget/internal/domain/tracking"
	"github.com/stretchr/testify/require"
)

func TestLogRepository_AppendGetRoundTrip(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewLogRepository(db)

	stamp := time.Date(2026, 8, 28, 6, 45, 0, 0, time.Local)
	appends := []tracking.LogRecord{
		{ID: "l1", Date: "2026-08-28", ActivityID: "run", Minutes: 20, Timestamp: stamp},
		{ID: "l2", Date: "2026-08-28", ActivityID: "run", Minutes: 15, Timestamp: stamp.Add(10 * time.Minute)},
		{ID: "l3", Date: "2026-08-28", ActivityID: "gym", Minutes: 45, Timestamp: stamp.Add(12 * time.Hour), IsHistory: true},
	}
	for i := range appends {
		require.NoError(t, repo.Append(ctx, &appends[i]))
	}

	records, err := repo.GetForDate(ctx, "2026-08-28")
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Minute sums per activity match what was appended.
	totals := map[string]int{}
	for _, rec := range records {
		totals[rec.ActivityID] += rec.Minutes
	}
	require.Equal(t, 35, totals["run"])
	require.Equal(t, 45, totals["gym"])
}

func TestLogRepository_TimestampAndHistorySurvive(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewLogRepository(db)

	stamp := time.Date(2026, 8, 28, 23, 30, 0, 0, time.Local)
	rec := tracking.LogRecord{ID: "l1", Date: "2026-08-28", ActivityID: "sleep", Minutes: 90, Timestamp: stamp, IsHistory: true}
	require.NoError(t, repo.Append(ctx, &rec))

	records, err := repo.GetForDate(ctx, "2026-08-28")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.True(t, records[0].IsHistory)
	require.True(t, stamp.Equal(records[0].Timestamp), "timestamp should round-trip exactly")
}

func TestLogRepository_GetForDate_EmptyDay(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLogRepository(db)

	records, err := repo.GetForDate(context.Background(), "2026-01-01")
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestLogRepository_OrderedByTimestamp(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewLogRepository(db)

	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	require.NoError(t, repo.Append(ctx, &tracking.LogRecord{ID: "l2", Date: "2026-08-28", ActivityID: "work", Minutes: 30, Timestamp: base.Add(time.Hour)}))
	require.NoError(t, repo.Append(ctx, &tracking.LogRecord{ID: "l1", Date: "2026-08-28", ActivityID: "work", Minutes: 60, Timestamp: base}))

	records, err := repo.GetForDate(ctx, "2026-08-28")
	require.NoError(t, err)
	require.Equal(t, []string{"l1", "l2"}, []string{records[0].ID, records[1].ID})
}
