package notifications

import (
	"context"
	"errors"
	"time"

	"Backend-TripleA/src/database"
	"Backend-TripleA/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateNotification - สร้างข้อความแจ้งเตือนให้สมาชิก
func CreateNotification(ctx context.Context, note *models.Notification) error {
	note.ID = primitive.NewObjectID()
	note.Read = false
	note.CreatedAt = time.Now()
	_, err := database.NotificationCollection.InsertOne(ctx, note)
	return err
}

// GetNotifications - ข้อความแจ้งเตือนของสมาชิก ใหม่สุดก่อน
func GetNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	cursor, err := database.NotificationCollection.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []models.Notification
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// MarkRead - ทำเครื่องหมายว่าอ่านแล้ว
func MarkRead(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid notification ID")
	}
	res, err := database.NotificationCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("notification not found")
	}
	return nil
}

// MarkAllRead - ทำเครื่องหมายอ่านแล้วทั้งหมดของสมาชิก
func MarkAllRead(ctx context.Context, userID string) error {
	_, err := database.NotificationCollection.UpdateMany(ctx,
		bson.M{"userId": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}})
	return err
}
