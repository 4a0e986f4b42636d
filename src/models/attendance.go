package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// สถานะของ AttendanceRecord
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// AttendanceRecord บันทึกการเข้ายิมหนึ่งรายการ (one present row per member per day)
type AttendanceRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Date      time.Time          `bson:"date" json:"date"`
	Time      string             `bson:"time" json:"time"` // wall-clock "HH:mm:ss", display only
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// AttendanceStats สรุปสถิติรายสมาชิก, canonical key คือ userId (_id = userId)
type AttendanceStats struct {
	ID             string     `bson:"_id,omitempty" json:"-"`
	UserID         string     `bson:"userId" json:"userId"`
	TotalPresent   int        `bson:"totalPresent" json:"totalPresent"`
	TotalAbsent    int        `bson:"totalAbsent" json:"totalAbsent"`
	CurrentStreak  int        `bson:"currentStreak" json:"currentStreak"`
	LongestStreak  int        `bson:"longestStreak" json:"longestStreak"`
	LastAttendance *time.Time `bson:"lastAttendance" json:"lastAttendance"`
	LastUpdated    time.Time  `bson:"lastUpdated" json:"lastUpdated"`

	// Display fields rebuilt by force-recalculate only.
	FirstVisit    *time.Time `bson:"firstVisit,omitempty" json:"firstVisit,omitempty"`
	MonthPresent  int        `bson:"monthPresent,omitempty" json:"monthPresent,omitempty"`
	MonthDaysLeft int        `bson:"monthDaysLeft,omitempty" json:"monthDaysLeft,omitempty"`
}

// MarkResult ผลลัพธ์ของการเช็คชื่อ ส่งตรงไปให้ UI แสดง
type MarkResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
