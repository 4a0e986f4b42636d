package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"Backend-TripleA/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecordStore is an in-memory ledger.
type fakeRecordStore struct {
	rows      []models.AttendanceRecord
	insertErr error
}

func (f *fakeRecordStore) HasPresentOn(_ context.Context, userID string, dayStart time.Time) (bool, error) {
	for _, r := range f.rows {
		if r.UserID == userID && r.Status == models.AttendancePresent && !r.Date.Before(dayStart) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRecordStore) Insert(_ context.Context, rec models.AttendanceRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.rows = append(f.rows, rec)
	return nil
}

func (f *fakeRecordStore) Records(_ context.Context, userID string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].UserID == userID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeRecordStore) PresentDatesSince(_ context.Context, userID string, since time.Time) ([]time.Time, error) {
	var dates []time.Time
	for _, r := range f.rows {
		if r.UserID == userID && r.Status == models.AttendancePresent && !r.Date.Before(since) {
			dates = append(dates, r.Date)
		}
	}
	return dates, nil
}

// fakeStatsStore keeps aggregate rows in maps; legacy rows are keyed by
// their old generated key with the userId in the row itself.
type fakeStatsStore struct {
	rows    map[string]*models.AttendanceStats
	legacy  map[string]*models.AttendanceStats
	saveErr error
	creates int
}

func newFakeStatsStore() *fakeStatsStore {
	return &fakeStatsStore{
		rows:   map[string]*models.AttendanceStats{},
		legacy: map[string]*models.AttendanceStats{},
	}
}

func cloneStats(s *models.AttendanceStats) *models.AttendanceStats {
	c := *s
	return &c
}

func (f *fakeStatsStore) Load(_ context.Context, userID string) (*models.AttendanceStats, error) {
	if s, ok := f.rows[userID]; ok {
		return cloneStats(s), nil
	}
	return nil, nil
}

func (f *fakeStatsStore) LoadLegacy(_ context.Context, userID string) (*models.AttendanceStats, string, error) {
	for key, s := range f.legacy {
		if s.UserID == userID {
			return cloneStats(s), key, nil
		}
	}
	return nil, "", nil
}

func (f *fakeStatsStore) Create(_ context.Context, stats *models.AttendanceStats) error {
	if _, ok := f.rows[stats.UserID]; ok {
		return ErrStatsExists
	}
	f.creates++
	f.rows[stats.UserID] = cloneStats(stats)
	return nil
}

func (f *fakeStatsStore) DeleteLegacy(_ context.Context, key string) error {
	delete(f.legacy, key)
	return nil
}

func (f *fakeStatsStore) Save(_ context.Context, stats *models.AttendanceStats) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.rows[stats.UserID] = cloneStats(stats)
	return nil
}

func newTestService(records RecordStore, stats StatsStore) *Service {
	s := NewService(noHolidays(), newMemStore())
	s.records = records
	s.stats = stats
	return s
}

func TestMarkAttendanceSecondCallSameDayRejected(t *testing.T) {
	records := &fakeRecordStore{}
	stats := newFakeStatsStore()
	svc := newTestService(records, stats)
	ctx := context.Background()

	first := svc.MarkAttendance(ctx, "u1")
	require.True(t, first.Success)
	require.Len(t, records.rows, 1)

	row := stats.rows["u1"]
	require.NotNil(t, row)
	assert.Equal(t, 1, row.TotalPresent)
	assert.Equal(t, 1, row.CurrentStreak)

	second := svc.MarkAttendance(ctx, "u1")
	assert.False(t, second.Success)
	assert.Equal(t, "Attendance already marked for today", second.Message)

	// Still one ledger row, one cached visit and a single increment.
	assert.Len(t, records.rows, 1)
	assert.Equal(t, 1, stats.rows["u1"].TotalPresent)
	assert.Len(t, svc.GetRecentAttendance(ctx, "u1"), 1)
}

func TestMarkAttendanceSucceedsWhenStatsWriteFails(t *testing.T) {
	records := &fakeRecordStore{}
	stats := newFakeStatsStore()
	stats.saveErr = errors.New("stats store down")
	svc := newTestService(records, stats)
	ctx := context.Background()

	result := svc.MarkAttendance(ctx, "u1")

	// The ledger row is the act of record; the aggregate heals later.
	assert.True(t, result.Success)
	assert.Len(t, records.rows, 1)
	assert.Len(t, svc.GetRecentAttendance(ctx, "u1"), 1)
}

func TestMarkAttendanceInsertFailure(t *testing.T) {
	records := &fakeRecordStore{insertErr: errors.New("ledger down")}
	stats := newFakeStatsStore()
	svc := newTestService(records, stats)
	ctx := context.Background()

	result := svc.MarkAttendance(ctx, "u1")

	assert.False(t, result.Success)
	assert.Empty(t, svc.GetRecentAttendance(ctx, "u1"))
	assert.Empty(t, stats.rows)
}

func TestMarkAbsentResetsStreak(t *testing.T) {
	records := &fakeRecordStore{}
	stats := newFakeStatsStore()
	stats.rows["u1"] = &models.AttendanceStats{
		ID: "u1", UserID: "u1",
		TotalPresent: 6, CurrentStreak: 4, LongestStreak: 5,
	}
	svc := newTestService(records, stats)

	result := svc.MarkAbsent(context.Background(), "u1")

	require.True(t, result.Success)
	require.Len(t, records.rows, 1)
	assert.Equal(t, models.AttendanceAbsent, records.rows[0].Status)

	row := stats.rows["u1"]
	assert.Equal(t, 0, row.CurrentStreak)
	assert.Equal(t, 1, row.TotalAbsent)
	assert.Equal(t, 6, row.TotalPresent)
	assert.Equal(t, 5, row.LongestStreak)
}

func TestGetStatsMigratesLegacyRow(t *testing.T) {
	stats := newFakeStatsStore()
	last := day("2024-01-03").Add(8 * time.Hour)
	stats.legacy["65a000000000000000000001"] = &models.AttendanceStats{
		UserID:       "u1",
		TotalPresent: 12, TotalAbsent: 2,
		CurrentStreak: 3, LongestStreak: 7,
		LastAttendance: &last,
	}
	svc := newTestService(&fakeRecordStore{}, stats)
	ctx := context.Background()

	got, err := svc.GetStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, 12, got.TotalPresent)
	assert.Equal(t, 7, got.LongestStreak)

	// Old row is gone; the counters live under the canonical key.
	assert.Empty(t, stats.legacy)
	require.NotNil(t, stats.rows["u1"])
	assert.Equal(t, 12, stats.rows["u1"].TotalPresent)

	// Reading again changes nothing.
	again, err := svc.GetStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, got, again)
	assert.Equal(t, 1, stats.creates)
}

func TestGetStatsLazyCreate(t *testing.T) {
	stats := newFakeStatsStore()
	svc := newTestService(&fakeRecordStore{}, stats)

	got, err := svc.GetStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Zero(t, got.TotalPresent)
	assert.Zero(t, got.CurrentStreak)
	require.NotNil(t, stats.rows["u1"])
}

func TestForceRecalculatePersistsRebuild(t *testing.T) {
	records := &fakeRecordStore{}
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		records.rows = append(records.rows, record("u1", day(d).Add(7*time.Hour)))
	}
	stats := newFakeStatsStore()
	stats.rows["u1"] = &models.AttendanceStats{ID: "u1", UserID: "u1", TotalPresent: 99}
	svc := newTestService(records, stats)

	got, err := svc.ForceRecalculate(context.Background(), "u1", day("2024-01-03").Add(9*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalPresent)
	assert.Equal(t, 3, got.CurrentStreak)
	assert.Equal(t, 3, stats.rows["u1"].TotalPresent)
}
