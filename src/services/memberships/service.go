package memberships

import (
	"context"
	"errors"
	"time"

	"Backend-TripleA/src/database"
	"Backend-TripleA/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMembership บันทึกการซื้อแพ็กเกจ (payment gateway อยู่นอกขอบเขต backend นี้)
func CreateMembership(ctx context.Context, userID string, req models.CreateMembershipRequest) (*models.Membership, error) {
	now := time.Now()
	membership := models.Membership{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		PlanName:  req.PlanName,
		Amount:    req.Amount,
		StartDate: now,
		EndDate:   now.AddDate(0, req.Months, 0),
		Status:    models.MembershipActive,
		CreatedAt: now,
	}
	if _, err := database.MembershipCollection.InsertOne(ctx, membership); err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetActiveMembership returns the member's current active plan, nil if none.
func GetActiveMembership(ctx context.Context, userID string) (*models.Membership, error) {
	var membership models.Membership
	err := database.MembershipCollection.FindOne(ctx, bson.M{
		"userId":  userID,
		"status":  models.MembershipActive,
		"endDate": bson.M{"$gt": time.Now()},
	}, options.FindOne().SetSort(bson.M{"endDate": -1})).Decode(&membership)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetMemberships - ประวัติแพ็กเกจทั้งหมดของสมาชิก ใหม่สุดก่อน
func GetMemberships(ctx context.Context, userID string) ([]models.Membership, error) {
	cursor, err := database.MembershipCollection.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var memberships []models.Membership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

// CancelMembership - admin ยกเลิกแพ็กเกจ
func CancelMembership(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid membership ID")
	}
	res, err := database.MembershipCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": models.MembershipExpired}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("membership not found")
	}
	return nil
}
