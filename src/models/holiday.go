package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Holiday วันหยุดที่ admin กำหนด ไม่ตัด streak ของสมาชิก
type Holiday struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date        time.Time          `bson:"date" json:"date"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	IsFullDay   bool               `bson:"isFullDay" json:"isFullDay"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateHolidayRequest สำหรับ admin สร้าง/แก้ไขวันหยุด
type CreateHolidayRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	IsFullDay   bool   `json:"isFullDay"`
}
