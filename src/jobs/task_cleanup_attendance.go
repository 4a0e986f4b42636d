package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"Backend-TripleA/src/database"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
)

// Ledger rows older than this are deleted. Aggregate counters are NOT
// decremented when rows age out; a force-recalculate converges them.
const RetentionDays = 100

// HandleCleanupAttendanceTask deletes one member's ledger rows older than the
// retention window. Enqueued best-effort after each successful mark.
func HandleCleanupAttendanceTask(ctx context.Context, t *asynq.Task) error {
	var payload CleanupAttendancePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Cleanup payload decode error:", err)
		return err
	}

	cutoff := time.Now().AddDate(0, 0, -RetentionDays)
	res, err := database.AttendanceCollection.DeleteMany(ctx, bson.M{
		"userId": payload.UserID,
		"date":   bson.M{"$lte": cutoff},
	})
	if err != nil {
		log.Println("❌ Failed to clean up old attendance records:", err)
		return err
	}
	if res.DeletedCount > 0 {
		log.Printf("✅ Deleted %d old attendance records for user %s", res.DeletedCount, payload.UserID)
	}
	return nil
}

// HandleCleanupAttendanceAllTask is the nightly sweep across every member.
func HandleCleanupAttendanceAllTask(ctx context.Context, _ *asynq.Task) error {
	cutoff := time.Now().AddDate(0, 0, -RetentionDays)
	res, err := database.AttendanceCollection.DeleteMany(ctx, bson.M{
		"date": bson.M{"$lte": cutoff},
	})
	if err != nil {
		log.Println("❌ Attendance retention sweep failed:", err)
		return err
	}
	log.Printf("✅ Attendance retention sweep deleted %d records", res.DeletedCount)
	return nil
}
