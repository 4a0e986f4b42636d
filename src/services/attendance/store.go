package attendance

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Backend-TripleA/src/database"
	"Backend-TripleA/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecordStore abstracts the ledger the orchestration reads and appends to,
// the same split as CacheStore: Mongo in production, in-memory in tests.
type RecordStore interface {
	// HasPresentOn reports whether a present row exists on or after dayStart.
	HasPresentOn(ctx context.Context, userID string, dayStart time.Time) (bool, error)
	Insert(ctx context.Context, rec models.AttendanceRecord) error
	// Records returns the user's full surviving ledger, newest first.
	Records(ctx context.Context, userID string) ([]models.AttendanceRecord, error)
	// PresentDatesSince returns the dates of present rows on or after since.
	PresentDatesSince(ctx context.Context, userID string, since time.Time) ([]time.Time, error)
}

// StatsStore persists the per-user aggregate.
type StatsStore interface {
	// Load returns the canonical row, or nil when none exists.
	Load(ctx context.Context, userID string) (*models.AttendanceStats, error)
	// LoadLegacy returns a row stored under the old generated key together
	// with that key, or nil when none exists.
	LoadLegacy(ctx context.Context, userID string) (*models.AttendanceStats, string, error)
	// Create inserts a new canonical row; ErrStatsExists when the key is taken.
	Create(ctx context.Context, stats *models.AttendanceStats) error
	DeleteLegacy(ctx context.Context, legacyKey string) error
	// Save upserts the canonical row, last writer wins.
	Save(ctx context.Context, stats *models.AttendanceStats) error
}

// ErrStatsExists reports a lost creation race on the aggregate row.
var ErrStatsExists = errors.New("attendance stats already exist")

// MongoRecordStore is the production ledger over the attendance collection.
type MongoRecordStore struct{}

func (MongoRecordStore) HasPresentOn(ctx context.Context, userID string, dayStart time.Time) (bool, error) {
	err := database.AttendanceCollection.FindOne(ctx, bson.M{
		"userId": userID,
		"status": models.AttendancePresent,
		"date":   bson.M{"$gte": dayStart},
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check attendance: %w", err)
	}
	return true, nil
}

func (MongoRecordStore) Insert(ctx context.Context, rec models.AttendanceRecord) error {
	_, err := database.AttendanceCollection.InsertOne(ctx, rec)
	return err
}

func (MongoRecordStore) Records(ctx context.Context, userID string) ([]models.AttendanceRecord, error) {
	cursor, err := database.AttendanceCollection.Find(ctx, bson.M{
		"userId": userID,
	}, options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.AttendanceRecord
	for cursor.Next(ctx) {
		var rec models.AttendanceRecord
		if err := cursor.Decode(&rec); err != nil {
			log.Println("⚠️ Skipping undecodable attendance row:", err)
			continue
		}
		records = append(records, rec)
	}
	return records, cursor.Err()
}

func (MongoRecordStore) PresentDatesSince(ctx context.Context, userID string, since time.Time) ([]time.Time, error) {
	cursor, err := database.AttendanceCollection.Find(ctx, bson.M{
		"userId": userID,
		"status": models.AttendancePresent,
		"date":   bson.M{"$gte": since},
	}, options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance window: %w", err)
	}
	defer cursor.Close(ctx)

	var dates []time.Time
	for cursor.Next(ctx) {
		var rec models.AttendanceRecord
		if err := cursor.Decode(&rec); err != nil {
			log.Println("⚠️ Skipping undecodable attendance row:", err)
			continue
		}
		dates = append(dates, rec.Date)
	}
	return dates, cursor.Err()
}

// Historical aggregate rows were keyed by a generated ObjectID with userId as
// a plain field. Canonical rows use userId itself as _id.
type legacyStatsDoc struct {
	ID             primitive.ObjectID `bson:"_id"`
	UserID         string             `bson:"userId"`
	TotalPresent   int                `bson:"totalPresent"`
	TotalAbsent    int                `bson:"totalAbsent"`
	CurrentStreak  int                `bson:"currentStreak"`
	LongestStreak  int                `bson:"longestStreak"`
	LastAttendance *time.Time         `bson:"lastAttendance"`
	LastUpdated    time.Time          `bson:"lastUpdated"`
}

// MongoStatsStore is the production aggregate store.
type MongoStatsStore struct{}

func (MongoStatsStore) Load(ctx context.Context, userID string) (*models.AttendanceStats, error) {
	var stats models.AttendanceStats
	err := database.AttendanceStatsCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&stats)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance stats: %w", err)
	}
	return &stats, nil
}

func (MongoStatsStore) LoadLegacy(ctx context.Context, userID string) (*models.AttendanceStats, string, error) {
	var legacy legacyStatsDoc
	err := database.AttendanceStatsCollection.FindOne(ctx, bson.M{
		"userId": userID,
		"_id":    bson.M{"$type": "objectId"},
	}).Decode(&legacy)
	if err == mongo.ErrNoDocuments {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch legacy attendance stats: %w", err)
	}

	return &models.AttendanceStats{
		UserID:         legacy.UserID,
		TotalPresent:   legacy.TotalPresent,
		TotalAbsent:    legacy.TotalAbsent,
		CurrentStreak:  legacy.CurrentStreak,
		LongestStreak:  legacy.LongestStreak,
		LastAttendance: legacy.LastAttendance,
		LastUpdated:    legacy.LastUpdated,
	}, legacy.ID.Hex(), nil
}

func (MongoStatsStore) Create(ctx context.Context, stats *models.AttendanceStats) error {
	if _, err := database.AttendanceStatsCollection.InsertOne(ctx, stats); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrStatsExists
		}
		return fmt.Errorf("failed to create attendance stats: %w", err)
	}
	return nil
}

func (MongoStatsStore) DeleteLegacy(ctx context.Context, legacyKey string) error {
	objID, err := primitive.ObjectIDFromHex(legacyKey)
	if err != nil {
		return fmt.Errorf("invalid legacy stats key: %w", err)
	}
	_, err = database.AttendanceStatsCollection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

func (MongoStatsStore) Save(ctx context.Context, stats *models.AttendanceStats) error {
	_, err := database.AttendanceStatsCollection.ReplaceOne(
		ctx,
		bson.M{"_id": stats.UserID},
		stats,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to write attendance stats: %w", err)
	}
	return nil
}
