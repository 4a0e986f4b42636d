package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"

	_ "Backend-TripleA/docs"
	"Backend-TripleA/src/controllers"
	"Backend-TripleA/src/database"
	"Backend-TripleA/src/jobs"
	"Backend-TripleA/src/routes"
	"Backend-TripleA/src/services/attendance"
	"Backend-TripleA/src/services/holidays"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title Triple A Fitness API
// @version 1.0
// @description Gym membership backend - attendance, streaks, memberships, diet plans
func main() {

	// เชื่อมต่อกับ MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	database.InitRedis()
	database.InitAsynq()

	if err := attendance.EnsureIndexes(context.Background()); err != nil {
		log.Println("⚠️ Failed to ensure attendance indexes:", err)
	}

	attendanceService := attendance.NewService(holidays.Calendar{}, attendance.RedisCacheStore{})
	controllers.InitAttendanceController(attendanceService)
	defer attendanceService.Cleanup()

	// background worker (retention cleanup, membership expiry)
	go jobs.StartWorker()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}
}
