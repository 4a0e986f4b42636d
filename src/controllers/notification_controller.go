package controllers

import (
	"Backend-TripleA/src/models"
	"Backend-TripleA/src/services/notifications"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications godoc
// @Summary Notifications for the logged-in member, newest first
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func GetNotifications(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	notes, err := notifications.GetNotifications(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch notifications"})
	}
	return c.JSON(notes)
}

// CreateNotification godoc
// @Summary Admin: push a notification to a member
// @Tags notifications
// @Accept json
// @Produce json
// @Success 201 {object} models.Notification
// @Router /notifications [post]
func CreateNotification(c *fiber.Ctx) error {
	var note models.Notification
	if err := c.BodyParser(&note); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if note.UserID == "" || note.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId and title are required"})
	}

	if err := notifications.CreateNotification(c.Context(), &note); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create notification"})
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

// MarkNotificationRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Router /notifications/{id}/read [post]
func MarkNotificationRead(c *fiber.Ctx) error {
	if err := notifications.MarkRead(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Notification marked read"})
}

// MarkAllNotificationsRead godoc
// @Summary Mark all of the member's notifications as read
// @Tags notifications
// @Router /notifications/read-all [post]
func MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	if err := notifications.MarkAllRead(c.Context(), userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update notifications"})
	}
	return c.JSON(fiber.Map{"message": "All notifications marked read"})
}
