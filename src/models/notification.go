package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification ข้อความแจ้งเตือนรายสมาชิก (การส่งจริงอยู่นอกขอบเขต backend นี้)
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	Type      string             `bson:"type" json:"type"` // "membership" | "attendance" | "general"
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
