package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"Backend-TripleA/src/database"
	"Backend-TripleA/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser ตรวจสอบ email/password สำหรับ login
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("Invalid email or password")
	}

	dbUser.Password = ""
	return &dbUser, nil
}

// RegisterUser สมัครสมาชิกใหม่ default role = member
func RegisterUser(req models.RegisterRequest) (*models.User, error) {
	ctx := context.Background()
	email := strings.ToLower(req.Email)

	err := database.UserCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil, errors.New("Email already registered")
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  string(hashed),
		Name:      req.Name,
		Phone:     req.Phone,
		Role:      "member",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := database.UserCollection.InsertOne(ctx, user); err != nil {
		return nil, err
	}

	user.Password = ""
	return &user, nil
}
