package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// สถานะของ Membership
const (
	MembershipActive  = "active"
	MembershipExpired = "expired"
)

// Membership แพ็กเกจสมาชิกที่ผู้ใช้ซื้อ (billing data เท่านั้น ไม่รวม payment gateway)
type Membership struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	PlanName  string             `bson:"planName" json:"planName"` // "monthly" | "quarterly" | "yearly"
	Amount    int                `bson:"amount" json:"amount"`     // smallest currency unit
	StartDate time.Time          `bson:"startDate" json:"startDate"`
	EndDate   time.Time          `bson:"endDate" json:"endDate"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateMembershipRequest สำหรับบันทึกการซื้อแพ็กเกจ
type CreateMembershipRequest struct {
	PlanName string `json:"planName" validate:"required,oneof=monthly quarterly yearly"`
	Amount   int    `json:"amount" validate:"required,gt=0"`
	Months   int    `json:"months" validate:"required,gt=0"`
}
