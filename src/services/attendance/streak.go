package attendance

import (
	"context"
	"log"
	"os"
	"time"

	"Backend-TripleA/src/models"
)

// Set process default location once on package init. All streak math runs on
// calendar-day boundaries, so the whole deployment must agree on one zone.
// Override with ATTENDANCE_TZ; the gym operates in India.
func init() {
	tz := os.Getenv("ATTENDANCE_TZ")
	if tz == "" {
		tz = "Asia/Kolkata"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Println("⚠️ Failed to load timezone "+tz+", leaving time.Local as-is:", err)
		return
	}
	time.Local = loc
	log.Println("✅ Set process timezone to " + tz + " (time.Local)")
}

// HolidayLookup answers whether a calendar day is a configured holiday.
// Implemented by the holidays service; tests use a map-backed stub.
type HolidayLookup interface {
	IsHoliday(ctx context.Context, day time.Time) (bool, *models.Holiday, error)
}

// Day truncates t to its calendar day in the deployment zone.
func Day(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// allHolidaysBetween reports whether every calendar day strictly between
// from and to is a holiday. Adjacent or equal days have nothing in between.
func allHolidaysBetween(ctx context.Context, lookup HolidayLookup, from, to time.Time) (bool, error) {
	for d := Day(from).AddDate(0, 0, 1); d.Before(Day(to)); d = d.AddDate(0, 0, 1) {
		ok, _, err := lookup.IsHoliday(ctx, d)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// CurrentStreak computes the consecutive-attendance streak ending at today.
//
// Holidays count toward the streak without a matching visit, but only when
// they sit between two present days: holiday increments are held pending and
// committed once the backward walk reaches another present day, so a run of
// holidays below the earliest visit never inflates the result.
//
// The walk is bounded by the supplied dates — callers must pass a lookback
// wide enough for the streaks they care about (35 days on the hot path).
func CurrentStreak(ctx context.Context, dates []time.Time, today time.Time, lookup HolidayLookup) (int, error) {
	if len(dates) == 0 {
		return 0, nil
	}

	present := make(map[time.Time]bool, len(dates))
	var last time.Time
	for _, d := range dates {
		day := Day(d)
		present[day] = true
		if day.After(last) {
			last = day
		}
	}

	today = Day(today)
	yesterday := today.AddDate(0, 0, -1)

	// Most recent visit older than yesterday: the streak survives only if
	// every day since then was a holiday.
	if !last.Equal(today) && !last.Equal(yesterday) {
		ok, err := allHolidaysBetween(ctx, lookup, last, today)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, nil
		}
	}

	streak := 1 // the most recent visit
	pending := 0
	for d := last.AddDate(0, 0, -1); ; d = d.AddDate(0, 0, -1) {
		if present[d] {
			streak += pending + 1
			pending = 0
			continue
		}
		hol, _, err := lookup.IsHoliday(ctx, d)
		if err != nil {
			return 0, err
		}
		if hol {
			pending++
			continue
		}
		break
	}
	return streak, nil
}

// LongestStreak scans the full supplied history for the longest streak
// segment. Two visits extend the same segment when they are exactly one day
// apart, or when every day strictly between them is a holiday (bridged days
// count, same as in CurrentStreak). The result is floored by current: the
// supplied window may be narrower than the true current streak.
func LongestStreak(ctx context.Context, dates []time.Time, lookup HolidayLookup, current int) (int, error) {
	days := uniqueDaysAscending(dates)
	if len(days) == 0 {
		return current, nil
	}

	longest := 1
	segment := 1
	for i := 1; i < len(days); i++ {
		gap := daysBetween(days[i-1], days[i])
		switch {
		case gap == 1:
			segment++
		default:
			bridged, err := allHolidaysBetween(ctx, lookup, days[i-1], days[i])
			if err != nil {
				return 0, err
			}
			if bridged {
				segment += gap // holidays in between count too
			} else {
				segment = 1
			}
		}
		if segment > longest {
			longest = segment
		}
	}

	if current > longest {
		longest = current
	}
	return longest, nil
}

// daysBetween counts calendar days from a to b. Rounds so that DST-shifted
// 23h/25h days still count as one.
func daysBetween(a, b time.Time) int {
	return int((b.Sub(a) + 12*time.Hour) / (24 * time.Hour))
}

func uniqueDaysAscending(dates []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := Day(d)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	// Insertion sort: histories are near-sorted already.
	for i := 1; i < len(days); i++ {
		for j := i; j > 0 && days[j].Before(days[j-1]); j-- {
			days[j], days[j-1] = days[j-1], days[j]
		}
	}
	return days
}
