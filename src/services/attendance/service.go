package attendance

import (
	"context"
	"log"
	"sync"
	"time"

	"Backend-TripleA/src/database"
	"Backend-TripleA/src/jobs"
	"Backend-TripleA/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Service orchestrates the attendance core: the ledger, the per-user
// aggregate, the recent cache and the live subscriptions.
type Service struct {
	holidays HolidayLookup
	cache    *RecentCache
	records  RecordStore
	stats    StatsStore

	mu        sync.Mutex
	listeners map[string]*Listener
}

func NewService(holidays HolidayLookup, store CacheStore) *Service {
	return &Service{
		holidays:  holidays,
		cache:     NewRecentCache(store),
		records:   MongoRecordStore{},
		stats:     MongoStatsStore{},
		listeners: make(map[string]*Listener),
	}
}

// MarkAttendance records today's gym visit for the member. Idempotent per
// calendar day: a second call the same day is rejected, not overwritten.
//
// The duplicate check and the insert are not atomic — two near-simultaneous
// calls can both pass the check and produce two rows for the day. Accepted
// limitation; ForceRecalculate heals the aggregate afterwards.
func (s *Service) MarkAttendance(ctx context.Context, userID string) models.MarkResult {
	now := time.Now()
	dayStart := Day(now)

	already, err := s.records.HasPresentOn(ctx, userID, dayStart)
	if err != nil {
		log.Println("❌ Failed to check today's attendance:", err)
		return models.MarkResult{Success: false, Message: "Failed to mark attendance"}
	}
	if already {
		return models.MarkResult{Success: false, Message: "Attendance already marked for today"}
	}

	rec := models.AttendanceRecord{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Date:      now,
		Time:      now.Format("15:04:05"),
		Status:    models.AttendancePresent,
		CreatedAt: now,
	}
	if err := s.records.Insert(ctx, rec); err != nil {
		log.Println("❌ Failed to insert attendance record:", err)
		return models.MarkResult{Success: false, Message: "Failed to mark attendance"}
	}

	s.cache.Push(ctx, rec)

	// A ledger row without an updated aggregate is acceptable and self-heals
	// on the next ForceRecalculate, so no rollback of the insert here.
	if _, err := s.RecordPresence(ctx, userID, now); err != nil {
		log.Println("❌ Failed to update attendance stats:", err)
	}

	s.enqueueCleanup(userID)

	return models.MarkResult{Success: true, Message: "Attendance marked successfully"}
}

// MarkAbsent records an explicit absence and immediately resets the running
// streak. Absences are never system-generated; this is a deliberate action.
func (s *Service) MarkAbsent(ctx context.Context, userID string) models.MarkResult {
	now := time.Now()

	rec := models.AttendanceRecord{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Date:      now,
		Time:      now.Format("15:04:05"),
		Status:    models.AttendanceAbsent,
		CreatedAt: now,
	}
	if err := s.records.Insert(ctx, rec); err != nil {
		log.Println("❌ Failed to insert absence record:", err)
		return models.MarkResult{Success: false, Message: "Failed to mark absence"}
	}

	if _, err := s.RecordAbsenceReset(ctx, userID, now); err != nil {
		log.Println("❌ Failed to reset attendance streak:", err)
	}

	return models.MarkResult{Success: true, Message: "Absence recorded"}
}

// GetAttendanceRecords returns the member's full surviving history,
// newest first.
func (s *Service) GetAttendanceRecords(ctx context.Context, userID string) ([]models.AttendanceRecord, error) {
	return s.records.Records(ctx, userID)
}

// GetAttendanceStats returns the member's aggregate, creating or migrating
// it if needed.
func (s *Service) GetAttendanceStats(ctx context.Context, userID string) (*models.AttendanceStats, error) {
	return s.GetStats(ctx, userID)
}

// GetRecentAttendance returns the cached recent visits only — no round-trip.
func (s *Service) GetRecentAttendance(ctx context.Context, userID string) []models.AttendanceRecord {
	return s.cache.Recent(ctx, userID)
}

// ForceRecalculateStats rebuilds the member's aggregate from the full ledger.
func (s *Service) ForceRecalculateStats(ctx context.Context, userID string) (*models.AttendanceStats, error) {
	return s.ForceRecalculate(ctx, userID, time.Now())
}

// enqueueCleanup schedules retention cleanup for the member. Best-effort:
// failures are logged and never block or fail the mark result.
func (s *Service) enqueueCleanup(userID string) {
	if database.AsynqClient == nil {
		return
	}
	task, err := jobs.NewCleanupAttendanceTask(userID)
	if err != nil {
		log.Println("⚠️ Failed to build cleanup task:", err)
		return
	}
	if _, err := database.AsynqClient.Enqueue(task); err != nil {
		log.Println("⚠️ Failed to enqueue cleanup task:", err)
	}
}

// EnsureIndexes creates the ledger and aggregate indexes the hot paths rely
// on. Safe to call on every startup.
func EnsureIndexes(ctx context.Context) error {
	_, err := database.AttendanceCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	})
	if err != nil {
		return err
	}
	_, err = database.AttendanceStatsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(false),
	})
	return err
}
