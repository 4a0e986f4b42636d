package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	authRoutes(app)
	userRoutes(app)
	attendanceRoutes(app)
	holidayRoutes(app)
	membershipRoutes(app)
	dietRoutes(app)
	notificationRoutes(app)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
