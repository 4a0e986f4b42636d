package controllers

import (
	"Backend-TripleA/src/services"

	"github.com/gofiber/fiber/v2"
)

// GetProfile godoc
// @Summary Get the logged-in member's profile
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Router /users/me [get]
func GetProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	user, err := services.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

// UpdateProfile godoc
// @Summary Update the logged-in member's profile
// @Tags users
// @Accept json
// @Produce json
// @Router /users/me [put]
func UpdateProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Photo string `json:"photo"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}

	if err := services.UpdateUserProfile(userID, req.Name, req.Phone, req.Photo); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(fiber.Map{"message": "Profile updated"})
}
