package routes

import (
	"Backend-TripleA/src/controllers"
	"Backend-TripleA/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// dietRoutes กำหนดเส้นทางสำหรับ DietPlan API
func dietRoutes(app *fiber.App) {
	diets := app.Group("/diets")
	diets.Use(middleware.AuthJWT)

	diets.Post("/", controllers.CreateDietPlan)
	diets.Get("/", controllers.GetDietPlans)
	diets.Put("/:id", controllers.UpdateDietPlan)
	diets.Delete("/:id", controllers.DeleteDietPlan)
}
