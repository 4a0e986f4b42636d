package attendance

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Backend-TripleA/src/models"
)

// Lookback window of ledger rows fed to the streak walk on the hot path.
// Anything from 30 days up satisfies the accuracy the UI needs.
const statsLookbackDays = 35

// GetStats returns the per-user aggregate, repairing or creating it if needed:
// canonical key lookup, then legacy-key fallback with a copy-then-delete
// migration, then lazy creation of a zeroed aggregate.
func (s *Service) GetStats(ctx context.Context, userID string) (*models.AttendanceStats, error) {
	stats, err := s.stats.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats != nil {
		return stats, nil
	}

	migrated, err := s.migrateLegacyStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	if migrated != nil {
		return migrated, nil
	}

	stats = &models.AttendanceStats{
		ID:          userID,
		UserID:      userID,
		LastUpdated: time.Now(),
	}
	if err := s.stats.Create(ctx, stats); err != nil {
		if errors.Is(err, ErrStatsExists) {
			// Lost the creation race; the winner's row is authoritative.
			existing, err := s.stats.Load(ctx, userID)
			if err != nil {
				return nil, err
			}
			if existing == nil {
				return nil, fmt.Errorf("attendance stats for user %s vanished mid-create", userID)
			}
			return existing, nil
		}
		return nil, err
	}
	return stats, nil
}

// migrateLegacyStats moves a legacy-keyed aggregate row onto the canonical
// userId key, preserving all counters. Returns nil, nil when no legacy row
// exists. The migration is logged as an explicit repair event.
func (s *Service) migrateLegacyStats(ctx context.Context, userID string) (*models.AttendanceStats, error) {
	legacy, legacyKey, err := s.stats.LoadLegacy(ctx, userID)
	if err != nil {
		return nil, err
	}
	if legacy == nil {
		return nil, nil
	}

	legacy.ID = userID
	legacy.UserID = userID
	if err := s.stats.Create(ctx, legacy); err != nil && !errors.Is(err, ErrStatsExists) {
		return nil, fmt.Errorf("failed to migrate attendance stats: %w", err)
	}
	if err := s.stats.DeleteLegacy(ctx, legacyKey); err != nil {
		// Canonical row is in place; a leftover legacy row is retried next read.
		log.Println("⚠️ Failed to delete legacy attendance stats row:", err)
	}
	log.Printf("✅ Migrated attendance stats for user %s from legacy key %s", userID, legacyKey)
	return legacy, nil
}

// RecordPresence folds one freshly inserted present row into the aggregate.
// Read-modify-write, last writer wins; concurrent callers cannot make the row
// worse than either one's intended update.
func (s *Service) RecordPresence(ctx context.Context, userID string, now time.Time) (*models.AttendanceStats, error) {
	stats, err := s.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	since := Day(now).AddDate(0, 0, -statsLookbackDays)
	dates, err := s.records.PresentDatesSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	streak, err := CurrentStreak(ctx, dates, now, s.holidays)
	if err != nil {
		return nil, fmt.Errorf("failed to compute streak: %w", err)
	}

	applyPresence(stats, streak, now)
	if err := s.stats.Save(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// applyPresence mutates the aggregate for one marked visit. Split out so the
// invariants (longest floor, counter increment) are testable without a store.
func applyPresence(stats *models.AttendanceStats, streak int, now time.Time) {
	stats.TotalPresent++
	stats.CurrentStreak = streak
	if streak > stats.LongestStreak {
		stats.LongestStreak = streak
	}
	t := now
	stats.LastAttendance = &t
	stats.LastUpdated = now
}

// RecordAbsenceReset zeroes the running streak on an explicit absence. No
// recomputation: an explicit absence always breaks the streak.
func (s *Service) RecordAbsenceReset(ctx context.Context, userID string, now time.Time) (*models.AttendanceStats, error) {
	stats, err := s.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.TotalAbsent++
	stats.CurrentStreak = 0
	stats.LastUpdated = now
	if err := s.stats.Save(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// ForceRecalculate rebuilds the whole aggregate from the surviving ledger.
// Repair/debug path: deterministic for a fixed ledger and now, one write.
func (s *Service) ForceRecalculate(ctx context.Context, userID string, now time.Time) (*models.AttendanceStats, error) {
	records, err := s.records.Records(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := rebuildStats(ctx, userID, records, now, s.holidays)
	if err != nil {
		return nil, err
	}
	if err := s.stats.Save(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// rebuildStats computes every counter from scratch. Retention may already
// have deleted old rows, so totals converge to the surviving ledger here —
// the incremental path never decrements them.
func rebuildStats(ctx context.Context, userID string, records []models.AttendanceRecord, now time.Time, lookup HolidayLookup) (*models.AttendanceStats, error) {
	stats := &models.AttendanceStats{
		ID:          userID,
		UserID:      userID,
		LastUpdated: now,
	}

	var presentDates []time.Time
	var firstVisit, lastVisit time.Time
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)

	for _, rec := range records {
		switch rec.Status {
		case models.AttendanceAbsent:
			stats.TotalAbsent++
			continue
		case models.AttendancePresent:
		default:
			log.Printf("⚠️ Skipping attendance row %s with unknown status %q", rec.ID.Hex(), rec.Status)
			continue
		}

		stats.TotalPresent++
		presentDates = append(presentDates, rec.Date)
		if firstVisit.IsZero() || rec.Date.Before(firstVisit) {
			firstVisit = rec.Date
		}
		if rec.Date.After(lastVisit) {
			lastVisit = rec.Date
		}
		if !rec.Date.Before(monthStart) {
			stats.MonthPresent++
		}
	}

	current, err := CurrentStreak(ctx, presentDates, now, lookup)
	if err != nil {
		return nil, err
	}
	longest, err := LongestStreak(ctx, presentDates, lookup, current)
	if err != nil {
		return nil, err
	}
	stats.CurrentStreak = current
	stats.LongestStreak = longest

	if !firstVisit.IsZero() {
		fv := firstVisit
		stats.FirstVisit = &fv
		lv := lastVisit
		stats.LastAttendance = &lv
	}

	monthEnd := monthStart.AddDate(0, 1, 0)
	stats.MonthDaysLeft = daysBetween(Day(now), monthEnd) - 1

	return stats, nil
}
