package routes

import (
	"Backend-TripleA/src/controllers"
	"Backend-TripleA/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// notificationRoutes กำหนดเส้นทางสำหรับ Notification API
func notificationRoutes(app *fiber.App) {
	notifications := app.Group("/notifications")
	notifications.Use(middleware.AuthJWT)

	notifications.Get("/", controllers.GetNotifications)
	notifications.Post("/", middleware.AdminOnly, controllers.CreateNotification)
	notifications.Post("/:id/read", controllers.MarkNotificationRead)
	notifications.Post("/read-all", controllers.MarkAllNotificationsRead)
}
