package attendance

import (
	"context"
	"testing"
	"time"

	"Backend-TripleA/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPresenceIncrementsAndFloors(t *testing.T) {
	now := day("2024-01-03").Add(8 * time.Hour)
	stats := &models.AttendanceStats{
		ID: "u1", UserID: "u1",
		TotalPresent: 4, CurrentStreak: 2, LongestStreak: 5,
	}

	applyPresence(stats, 3, now)

	assert.Equal(t, 5, stats.TotalPresent)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 5, stats.LongestStreak) // unchanged, 3 < 5
	require.NotNil(t, stats.LastAttendance)
	assert.True(t, now.Equal(*stats.LastAttendance))
	assert.True(t, now.Equal(stats.LastUpdated))
}

func TestApplyPresenceRaisesLongest(t *testing.T) {
	now := day("2024-01-10").Add(8 * time.Hour)
	stats := &models.AttendanceStats{ID: "u1", UserID: "u1", LongestStreak: 5}

	applyPresence(stats, 6, now)

	assert.Equal(t, 6, stats.CurrentStreak)
	assert.Equal(t, 6, stats.LongestStreak)
}

func TestApplyPresenceKeepsLongestAboveCurrent(t *testing.T) {
	// Marking day after day: longest tracks current, never falls below it.
	now := day("2024-01-01")
	stats := &models.AttendanceStats{ID: "u1", UserID: "u1"}

	for streak := 1; streak <= 8; streak++ {
		applyPresence(stats, streak, now.AddDate(0, 0, streak-1).Add(7*time.Hour))
		assert.GreaterOrEqual(t, stats.LongestStreak, stats.CurrentStreak)
		assert.Equal(t, streak, stats.TotalPresent)
	}
	assert.Equal(t, 8, stats.LongestStreak)
}

func presentOn(userID string, days ...string) []models.AttendanceRecord {
	records := make([]models.AttendanceRecord, 0, len(days))
	for _, d := range days {
		records = append(records, record(userID, day(d).Add(7*time.Hour)))
	}
	return records
}

func TestRebuildStatsThreeConsecutiveDays(t *testing.T) {
	records := presentOn("u1", "2024-01-01", "2024-01-02", "2024-01-03")
	now := day("2024-01-03").Add(9 * time.Hour)

	stats, err := rebuildStats(context.Background(), "u1", records, now, noHolidays())
	require.NoError(t, err)

	assert.Equal(t, "u1", stats.ID)
	assert.Equal(t, 3, stats.TotalPresent)
	assert.Equal(t, 0, stats.TotalAbsent)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
	assert.Equal(t, 3, stats.MonthPresent)
	assert.Equal(t, 28, stats.MonthDaysLeft) // Jan 4 through Jan 31

	require.NotNil(t, stats.FirstVisit)
	assert.True(t, day("2024-01-01").Add(7*time.Hour).Equal(*stats.FirstVisit))
	require.NotNil(t, stats.LastAttendance)
	assert.True(t, day("2024-01-03").Add(7*time.Hour).Equal(*stats.LastAttendance))
}

func TestRebuildStatsHolidayBridge(t *testing.T) {
	records := presentOn("u1", "2024-01-01", "2024-01-03")
	now := day("2024-01-03").Add(9 * time.Hour)

	stats, err := rebuildStats(context.Background(), "u1", records, now, holidaysOn("2024-01-02"))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalPresent)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
}

func TestRebuildStatsCountsAbsents(t *testing.T) {
	records := presentOn("u1", "2024-01-02", "2024-01-03")
	absent := record("u1", day("2024-01-01").Add(7*time.Hour))
	absent.Status = models.AttendanceAbsent
	records = append(records, absent)

	stats, err := rebuildStats(context.Background(), "u1", records, day("2024-01-03").Add(9*time.Hour), noHolidays())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalPresent)
	assert.Equal(t, 1, stats.TotalAbsent)
	assert.Equal(t, 2, stats.CurrentStreak)
}

func TestRebuildStatsSkipsUnknownStatus(t *testing.T) {
	records := presentOn("u1", "2024-01-03")
	bogus := record("u1", day("2024-01-02").Add(7*time.Hour))
	bogus.Status = "late"
	records = append(records, bogus)

	stats, err := rebuildStats(context.Background(), "u1", records, day("2024-01-03").Add(9*time.Hour), noHolidays())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalPresent)
	assert.Equal(t, 0, stats.TotalAbsent)
}

func TestRebuildStatsEmptyLedger(t *testing.T) {
	stats, err := rebuildStats(context.Background(), "u1", nil, day("2024-01-15").Add(9*time.Hour), noHolidays())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalPresent)
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 0, stats.LongestStreak)
	assert.Nil(t, stats.FirstVisit)
	assert.Nil(t, stats.LastAttendance)
}

func TestRebuildStatsMonthWindow(t *testing.T) {
	// Visits in January must not count toward February's month counter.
	records := presentOn("u1", "2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02")
	now := day("2024-02-02").Add(9 * time.Hour)

	stats, err := rebuildStats(context.Background(), "u1", records, now, noHolidays())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalPresent)
	assert.Equal(t, 2, stats.MonthPresent)
	assert.Equal(t, 4, stats.CurrentStreak)
	assert.Equal(t, 27, stats.MonthDaysLeft) // Feb 3 through Feb 29, leap year
}

func TestRebuildStatsDeterministic(t *testing.T) {
	// Same ledger, same clock: identical output, so re-running the repair
	// path (or re-running a migration) changes nothing.
	records := presentOn("u1", "2024-01-01", "2024-01-03", "2024-01-04")
	now := day("2024-01-04").Add(9 * time.Hour)
	lookup := holidaysOn("2024-01-02")

	first, err := rebuildStats(context.Background(), "u1", records, now, lookup)
	require.NoError(t, err)
	second, err := rebuildStats(context.Background(), "u1", records, now, lookup)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
