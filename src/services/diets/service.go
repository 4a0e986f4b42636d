package diets

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

// CreateDietPlan - สร้างแผนอาหารให้สมาชิก
func CreateDietPlan(ctx context.Context, plan *models.DietPlan) error {
	plan.ID = primitive.NewObjectID()
	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	_, err := database.DietPlanCollection.InsertOne(ctx, plan)
	return err
}

// GetDietPlans - แผนอาหารทั้งหมดของสมาชิก ใหม่สุดก่อน
func GetDietPlans(ctx context.Context, userID string) ([]models.DietPlan, error) {
	cursor, err := database.DietPlanCollection.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.DietPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// UpdateDietPlan - แก้ไขแผนอาหาร
func UpdateDietPlan(ctx context.Context, id string, plan *models.DietPlan) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid diet plan ID")
	}

	update := bson.M{"$set": bson.M{
		"title":     plan.Title,
		"goal":      plan.Goal,
		"meals":     plan.Meals,
		"updatedAt": time.Now(),
	}}
	res, err := database.DietPlanCollection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("diet plan not found")
	}
	return nil
}

// DeleteDietPlan - ลบแผนอาหาร
func DeleteDietPlan(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid diet plan ID")
	}
	_, err = database.DietPlanCollection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
