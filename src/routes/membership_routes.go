package routes

import (
	"Backend-TripleA/src/controllers"
	"Backend-TripleA/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// membershipRoutes กำหนดเส้นทางสำหรับ Membership API
func membershipRoutes(app *fiber.App) {
	memberships := app.Group("/memberships")
	memberships.Use(middleware.AuthJWT)

	memberships.Post("/", controllers.CreateMembership)
	memberships.Get("/", controllers.GetMemberships)
	memberships.Get("/active", controllers.GetActiveMembership)
	memberships.Delete("/:id", middleware.AdminOnly, controllers.CancelMembership)
}
