package routes

import (
	"Backend-TripleA/src/controllers"
	"Backend-TripleA/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// holidayRoutes กำหนดเส้นทางสำหรับ Holiday API
func holidayRoutes(app *fiber.App) {
	holidays := app.Group("/holidays")

	holidays.Get("/", controllers.GetHolidays)
	holidays.Get("/upcoming", controllers.GetUpcomingHolidays)
	holidays.Get("/next", controllers.GetNextHoliday)
	holidays.Get("/check", controllers.CheckHoliday)

	// admin เท่านั้น
	holidays.Post("/", middleware.AuthJWT, middleware.AdminOnly, controllers.CreateHoliday)
	holidays.Put("/:id", middleware.AuthJWT, middleware.AdminOnly, controllers.UpdateHoliday)
	holidays.Delete("/:id", middleware.AuthJWT, middleware.AdminOnly, controllers.DeleteHoliday)
}
