package jobs

import (
	"context"
	"log"
	"time"

	"Backend-TripleA/src/database"
	"Backend-TripleA/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
)

// HandleExpireMembershipsTask marks memberships whose end date has passed as
// expired and drops an in-app notification for each affected member.
func HandleExpireMembershipsTask(ctx context.Context, _ *asynq.Task) error {
	now := time.Now()

	cursor, err := database.MembershipCollection.Find(ctx, bson.M{
		"status":  models.MembershipActive,
		"endDate": bson.M{"$lt": now},
	})
	if err != nil {
		log.Println("❌ Failed to query expiring memberships:", err)
		return err
	}
	defer cursor.Close(ctx)

	var expired []models.Membership
	for cursor.Next(ctx) {
		var m models.Membership
		if err := cursor.Decode(&m); err != nil {
			log.Println("⚠️ Skipping undecodable membership row:", err)
			continue
		}
		expired = append(expired, m)
	}
	if err := cursor.Err(); err != nil {
		return err
	}

	for _, m := range expired {
		_, err := database.MembershipCollection.UpdateOne(ctx,
			bson.M{"_id": m.ID},
			bson.M{"$set": bson.M{"status": models.MembershipExpired}},
		)
		if err != nil {
			log.Println("❌ Failed to expire membership:", err)
			continue
		}

		note := models.Notification{
			UserID:    m.UserID,
			Title:     "Membership expired",
			Body:      "Your " + m.PlanName + " membership has expired. Renew to keep access.",
			Type:      "membership",
			Read:      false,
			CreatedAt: now,
		}
		if _, err := database.NotificationCollection.InsertOne(ctx, note); err != nil {
			log.Println("⚠️ Failed to insert expiry notification:", err)
		}
	}

	if len(expired) > 0 {
		log.Printf("✅ Expired %d memberships", len(expired))
	}
	return nil
}
