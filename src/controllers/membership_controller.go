package controllers

import (
	"Backend-TripleA/src/models"
	"Backend-TripleA/src/services/memberships"

	"github.com/gofiber/fiber/v2"
)

// CreateMembership godoc
// @Summary Record a purchased membership plan
// @Tags memberships
// @Accept json
// @Produce json
// @Param body body models.CreateMembershipRequest true "Plan"
// @Success 201 {object} models.Membership
// @Router /memberships [post]
func CreateMembership(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	var req models.CreateMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	membership, err := memberships.CreateMembership(c.Context(), userID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create membership"})
	}
	return c.Status(fiber.StatusCreated).JSON(membership)
}

// GetMemberships godoc
// @Summary Membership history for the logged-in member
// @Tags memberships
// @Produce json
// @Success 200 {array} models.Membership
// @Router /memberships [get]
func GetMemberships(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	history, err := memberships.GetMemberships(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch memberships"})
	}
	return c.JSON(history)
}

// GetActiveMembership godoc
// @Summary The member's current active plan
// @Tags memberships
// @Produce json
// @Success 200 {object} models.Membership
// @Router /memberships/active [get]
func GetActiveMembership(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	membership, err := memberships.GetActiveMembership(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch membership"})
	}
	if membership == nil {
		return c.JSON(fiber.Map{"membership": nil})
	}
	return c.JSON(membership)
}

// CancelMembership godoc
// @Summary Admin: cancel a membership
// @Tags memberships
// @Router /memberships/{id} [delete]
func CancelMembership(c *fiber.Ctx) error {
	if err := memberships.CancelMembership(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Membership cancelled"})
}
