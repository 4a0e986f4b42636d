package controllers

import (
	"strconv"
	"time"

	"Backend-TripleA/src/models"
	"Backend-TripleA/src/services/holidays"

	"github.com/gofiber/fiber/v2"
)

// GetHolidays godoc
// @Summary All configured holidays, ordered by date
// @Tags holidays
// @Produce json
// @Success 200 {array} models.Holiday
// @Router /holidays [get]
func GetHolidays(c *fiber.Ctx) error {
	all, err := holidays.GetAllHolidays(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch holidays"})
	}
	return c.JSON(all)
}

// GetUpcomingHolidays godoc
// @Summary Holidays within the next N days (default 30)
// @Tags holidays
// @Produce json
// @Success 200 {array} models.Holiday
// @Router /holidays/upcoming [get]
func GetUpcomingHolidays(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "days must be a positive number"})
	}

	upcoming, err := holidays.GetUpcomingHolidays(c.Context(), days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch holidays"})
	}
	return c.JSON(upcoming)
}

// GetNextHoliday godoc
// @Summary The next configured holiday
// @Tags holidays
// @Produce json
// @Success 200 {object} models.Holiday
// @Router /holidays/next [get]
func GetNextHoliday(c *fiber.Ctx) error {
	next, err := holidays.GetNextHoliday(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch holidays"})
	}
	if next == nil {
		return c.JSON(fiber.Map{"holiday": nil})
	}
	return c.JSON(next)
}

// CheckHoliday godoc
// @Summary Check whether a date (YYYY-MM-DD) is a holiday
// @Tags holidays
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /holidays/check [get]
func CheckHoliday(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	isHoliday, holiday, err := holidays.Calendar{}.IsHoliday(c.Context(), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check holiday"})
	}
	return c.JSON(fiber.Map{"isHoliday": isHoliday, "holiday": holiday})
}

// CreateHoliday godoc
// @Summary Admin: add a holiday
// @Tags holidays
// @Accept json
// @Produce json
// @Param body body models.CreateHolidayRequest true "Holiday"
// @Success 201 {object} models.Holiday
// @Router /holidays [post]
func CreateHoliday(c *fiber.Ctx) error {
	var req models.CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	holiday, err := holidays.CreateHoliday(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(holiday)
}

// UpdateHoliday godoc
// @Summary Admin: update a holiday
// @Tags holidays
// @Router /holidays/{id} [put]
func UpdateHoliday(c *fiber.Ctx) error {
	var req models.CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := holidays.UpdateHoliday(c.Context(), c.Params("id"), req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Holiday updated"})
}

// DeleteHoliday godoc
// @Summary Admin: delete a holiday
// @Tags holidays
// @Router /holidays/{id} [delete]
func DeleteHoliday(c *fiber.Ctx) error {
	if err := holidays.DeleteHoliday(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Holiday deleted"})
}
