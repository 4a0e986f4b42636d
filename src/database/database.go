package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "TripleADB"

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	AttendanceCollection      *mongo.Collection
	AttendanceStatsCollection *mongo.Collection
	HolidayCollection         *mongo.Collection
	UserCollection            *mongo.Collection
	MembershipCollection      *mongo.Collection
	DietPlanCollection        *mongo.Collection
	NotificationCollection    *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")

		AttendanceCollection = GetCollection(DBName, "attendance")
		AttendanceStatsCollection = GetCollection(DBName, "attendanceStats")
		HolidayCollection = GetCollection(DBName, "holidays")
		UserCollection = GetCollection(DBName, "users")
		MembershipCollection = GetCollection(DBName, "memberships")
		DietPlanCollection = GetCollection(DBName, "dietPlans")
		NotificationCollection = GetCollection(DBName, "notifications")
	})

	return connectErr
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
