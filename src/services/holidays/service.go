package holidays

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Backend-TripleA/src/database"
	"Backend-TripleA/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Calendar answers holiday lookups for the attendance core. Read-mostly;
// writes come from the admin endpoints below.
type Calendar struct{}

// IsHoliday reports whether the given calendar day has a configured holiday.
// Several admin rows on the same day collapse to the first match.
func (Calendar) IsHoliday(ctx context.Context, day time.Time) (bool, *models.Holiday, error) {
	y, m, d := day.In(time.Local).Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var holiday models.Holiday
	err := database.HolidayCollection.FindOne(ctx, bson.M{
		"date": bson.M{"$gte": dayStart, "$lt": dayEnd},
	}).Decode(&holiday)
	if err == mongo.ErrNoDocuments {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, fmt.Errorf("failed to check holiday: %w", err)
	}
	return true, &holiday, nil
}

// GetAllHolidays - ดึงวันหยุดทั้งหมด เรียงตามวันที่
func GetAllHolidays(ctx context.Context) ([]models.Holiday, error) {
	cursor, err := database.HolidayCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var holidays []models.Holiday
	if err := cursor.All(ctx, &holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}

// GetUpcomingHolidays returns holidays within the next daysInFuture days.
func GetUpcomingHolidays(ctx context.Context, daysInFuture int) ([]models.Holiday, error) {
	now := time.Now()
	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	until := dayStart.AddDate(0, 0, daysInFuture+1)

	cursor, err := database.HolidayCollection.Find(ctx, bson.M{
		"date": bson.M{"$gte": dayStart, "$lt": until},
	}, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var holidays []models.Holiday
	if err := cursor.All(ctx, &holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}

// GetNextHoliday returns the next configured holiday, or nil if none.
func GetNextHoliday(ctx context.Context) (*models.Holiday, error) {
	now := time.Now()
	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, time.Local)

	var holiday models.Holiday
	err := database.HolidayCollection.FindOne(ctx, bson.M{
		"date": bson.M{"$gte": dayStart},
	}, options.FindOne().SetSort(bson.M{"date": 1})).Decode(&holiday)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}

// CreateHoliday - admin เพิ่มวันหยุดใหม่
func CreateHoliday(ctx context.Context, req models.CreateHolidayRequest) (*models.Holiday, error) {
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return nil, errors.New("invalid holiday date, expected YYYY-MM-DD")
	}

	now := time.Now()
	holiday := models.Holiday{
		ID:          primitive.NewObjectID(),
		Date:        date,
		Title:       req.Title,
		Description: req.Description,
		IsFullDay:   req.IsFullDay,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := database.HolidayCollection.InsertOne(ctx, holiday); err != nil {
		return nil, err
	}
	return &holiday, nil
}

// UpdateHoliday - admin แก้ไขวันหยุด
func UpdateHoliday(ctx context.Context, id string, req models.CreateHolidayRequest) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid holiday ID")
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return errors.New("invalid holiday date, expected YYYY-MM-DD")
	}

	update := bson.M{"$set": bson.M{
		"date":        date,
		"title":       req.Title,
		"description": req.Description,
		"isFullDay":   req.IsFullDay,
		"updatedAt":   time.Now(),
	}}
	res, err := database.HolidayCollection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("holiday not found")
	}
	return nil
}

// DeleteHoliday - admin ลบวันหยุด
func DeleteHoliday(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid holiday ID")
	}
	_, err = database.HolidayCollection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
