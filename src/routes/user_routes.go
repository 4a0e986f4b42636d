package routes

import (
	"Backend-TripleA/src/controllers"
	"Backend-TripleA/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// userRoutes กำหนดเส้นทางสำหรับ User API
func userRoutes(app *fiber.App) {
	users := app.Group("/users")
	users.Use(middleware.AuthJWT)

	users.Get("/me", controllers.GetProfile)
	users.Put("/me", controllers.UpdateProfile)
}
