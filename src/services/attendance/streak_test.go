package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"Backend-TripleA/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// holidayStub answers holiday lookups from a fixed set of YYYY-MM-DD days.
type holidayStub struct {
	days map[string]bool
}

func (h holidayStub) IsHoliday(_ context.Context, day time.Time) (bool, *models.Holiday, error) {
	key := day.Format("2006-01-02")
	if h.days[key] {
		return true, &models.Holiday{Title: "Holiday " + key, Date: day}, nil
	}
	return false, nil, nil
}

func noHolidays() holidayStub {
	return holidayStub{days: map[string]bool{}}
}

func holidaysOn(days ...string) holidayStub {
	m := make(map[string]bool, len(days))
	for _, d := range days {
		m[d] = true
	}
	return holidayStub{days: m}
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCurrentStreakEmpty(t *testing.T) {
	streak, err := CurrentStreak(context.Background(), nil, day("2024-01-05"), noHolidays())
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestCurrentStreakConsecutiveDays(t *testing.T) {
	dates := []time.Time{day("2024-01-01"), day("2024-01-02"), day("2024-01-03")}

	streak, err := CurrentStreak(context.Background(), dates, day("2024-01-03"), noHolidays())
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestCurrentStreakGrowsByOneEachDay(t *testing.T) {
	// Marking every day with no gaps: the streak must increase by exactly 1.
	var dates []time.Time
	for i := 1; i <= 7; i++ {
		today := day(fmt.Sprintf("2024-01-%02d", i))
		dates = append(dates, today)

		streak, err := CurrentStreak(context.Background(), dates, today, noHolidays())
		require.NoError(t, err)
		assert.Equal(t, i, streak)
	}
}

func TestCurrentStreakHolidayPassThrough(t *testing.T) {
	// Present on Jan 1, holiday Jan 2, present Jan 3: the holiday sits
	// between two visits, so it counts and nothing breaks.
	dates := []time.Time{day("2024-01-01"), day("2024-01-03")}
	lookup := holidaysOn("2024-01-02")

	streak, err := CurrentStreak(context.Background(), dates, day("2024-01-03"), lookup)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestCurrentStreakBrokenByGap(t *testing.T) {
	// Present Jan 1, nothing on Jan 2, present Jan 3: streak restarts at 1.
	dates := []time.Time{day("2024-01-01"), day("2024-01-03")}

	streak, err := CurrentStreak(context.Background(), dates, day("2024-01-03"), noHolidays())
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestCurrentStreakZeroAfterStaleLastVisit(t *testing.T) {
	// Last visit Jan 1, today Jan 5, no holidays in between: broken.
	dates := []time.Time{day("2024-01-01")}

	streak, err := CurrentStreak(context.Background(), dates, day("2024-01-05"), noHolidays())
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestCurrentStreakSurvivesAllHolidayGapToToday(t *testing.T) {
	// Last visit Jan 1, today Jan 5, Jan 2-4 all holidays: not broken.
	// Leading holidays are not between two visits, so they don't count.
	dates := []time.Time{day("2024-01-01")}
	lookup := holidaysOn("2024-01-02", "2024-01-03", "2024-01-04")

	streak, err := CurrentStreak(context.Background(), dates, day("2024-01-05"), lookup)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestCurrentStreakYesterdayStillCounts(t *testing.T) {
	dates := []time.Time{day("2024-01-02")}

	streak, err := CurrentStreak(context.Background(), dates, day("2024-01-03"), noHolidays())
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestCurrentStreakTrailingHolidayNotCounted(t *testing.T) {
	// Holiday immediately before the earliest visit, no visit below it:
	// the holiday alone must not extend the streak.
	dates := []time.Time{day("2024-01-03")}
	lookup := holidaysOn("2024-01-02")

	streak, err := CurrentStreak(context.Background(), dates, day("2024-01-03"), lookup)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestCurrentStreakHolidayRunBetweenVisits(t *testing.T) {
	// Jan 1 present, Jan 2+3 holidays, Jan 4 present: one unbroken streak
	// of 4 counting both holidays.
	dates := []time.Time{day("2024-01-01"), day("2024-01-04")}
	lookup := holidaysOn("2024-01-02", "2024-01-03")

	streak, err := CurrentStreak(context.Background(), dates, day("2024-01-04"), lookup)
	require.NoError(t, err)
	assert.Equal(t, 4, streak)
}

func TestCurrentStreakIgnoresTimeOfDay(t *testing.T) {
	// Instants on the same calendar day collapse to one visit.
	dates := []time.Time{
		day("2024-01-02").Add(6 * time.Hour),
		day("2024-01-02").Add(20 * time.Hour),
		day("2024-01-03").Add(9 * time.Hour),
	}

	streak, err := CurrentStreak(context.Background(), dates, day("2024-01-03"), noHolidays())
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}

func TestLongestStreakSegments(t *testing.T) {
	// Two segments: Jan 1-3 (len 3), then a break, then Jan 5-6 (len 2).
	dates := []time.Time{
		day("2024-01-01"), day("2024-01-02"), day("2024-01-03"),
		day("2024-01-05"), day("2024-01-06"),
	}

	longest, err := LongestStreak(context.Background(), dates, noHolidays(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, longest)
}

func TestLongestStreakHolidayBridge(t *testing.T) {
	// Jan 1, holiday Jan 2, Jan 3: a single segment of 3.
	dates := []time.Time{day("2024-01-01"), day("2024-01-03")}
	lookup := holidaysOn("2024-01-02")

	longest, err := LongestStreak(context.Background(), dates, lookup, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, longest)
}

func TestLongestStreakFlooredByCurrent(t *testing.T) {
	// The supplied window can be narrower than the true current streak;
	// the current streak always wins then.
	dates := []time.Time{day("2024-01-05"), day("2024-01-06")}

	longest, err := LongestStreak(context.Background(), dates, noHolidays(), 9)
	require.NoError(t, err)
	assert.Equal(t, 9, longest)
}

func TestLongestStreakEmptyHistory(t *testing.T) {
	longest, err := LongestStreak(context.Background(), nil, noHolidays(), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, longest)
}

func TestDayTruncation(t *testing.T) {
	instant := time.Date(2024, 3, 15, 22, 45, 9, 120, time.Local)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), Day(instant))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, daysBetween(day("2024-01-01"), day("2024-01-02")))
	assert.Equal(t, 31, daysBetween(day("2024-01-01"), day("2024-02-01")))
	assert.Equal(t, 0, daysBetween(day("2024-01-01"), day("2024-01-01")))
}
