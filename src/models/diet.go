package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DietMeal หนึ่งมื้อในแผนอาหาร
type DietMeal struct {
	Name     string `bson:"name" json:"name"`
	Time     string `bson:"time" json:"time"` // "HH:mm"
	Calories int    `bson:"calories" json:"calories"`
	Protein  int    `bson:"protein,omitempty" json:"protein,omitempty"`
	Notes    string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// DietPlan แผนอาหารรายสมาชิก
type DietPlan struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Title     string             `bson:"title" json:"title"`
	Goal      string             `bson:"goal,omitempty" json:"goal,omitempty"` // "cut" | "bulk" | "maintain"
	Meals     []DietMeal         `bson:"meals" json:"meals"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
