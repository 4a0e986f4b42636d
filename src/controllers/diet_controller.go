package controllers

import (
	"Backend-TripleA/src/models"
	"Backend-TripleA/src/services/diets"

	"github.com/gofiber/fiber/v2"
)

// CreateDietPlan godoc
// @Summary Create a diet plan for the logged-in member
// @Tags diets
// @Accept json
// @Produce json
// @Success 201 {object} models.DietPlan
// @Router /diets [post]
func CreateDietPlan(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	var plan models.DietPlan
	if err := c.BodyParser(&plan); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if plan.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	plan.UserID = userID
	if err := diets.CreateDietPlan(c.Context(), &plan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create diet plan"})
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

// GetDietPlans godoc
// @Summary Diet plans of the logged-in member
// @Tags diets
// @Produce json
// @Success 200 {array} models.DietPlan
// @Router /diets [get]
func GetDietPlans(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	plans, err := diets.GetDietPlans(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch diet plans"})
	}
	return c.JSON(plans)
}

// UpdateDietPlan godoc
// @Summary Update a diet plan
// @Tags diets
// @Router /diets/{id} [put]
func UpdateDietPlan(c *fiber.Ctx) error {
	var plan models.DietPlan
	if err := c.BodyParser(&plan); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}

	if err := diets.UpdateDietPlan(c.Context(), c.Params("id"), &plan); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Diet plan updated"})
}

// DeleteDietPlan godoc
// @Summary Delete a diet plan
// @Tags diets
// @Router /diets/{id} [delete]
func DeleteDietPlan(c *fiber.Ctx) error {
	if err := diets.DeleteDietPlan(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Diet plan deleted"})
}
