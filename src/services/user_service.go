package services

import (
	"context"
	"errors"
	"time"

	"Backend-TripleA/src/database"
	"Backend-TripleA/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUserByID - ดึงข้อมูลผู้ใช้ตาม ID
func GetUserByID(id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	var user models.User
	err = database.UserCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &user, nil
}

// UpdateUserProfile - อัปเดตข้อมูลโปรไฟล์ (name/phone/photo เท่านั้น)
func UpdateUserProfile(id string, name, phone, photo string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid user ID")
	}

	set := bson.M{"updatedAt": time.Now()}
	if name != "" {
		set["name"] = name
	}
	if phone != "" {
		set["phone"] = phone
	}
	if photo != "" {
		set["photo"] = photo
	}

	_, err = database.UserCollection.UpdateOne(context.Background(),
		bson.M{"_id": objID}, bson.M{"$set": set})
	return err
}
