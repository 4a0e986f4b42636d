package controllers

import (
	"Backend-TripleA/src/services/attendance"

	"github.com/gofiber/fiber/v2"
)

var attendanceService *attendance.Service

// InitAttendanceController wires the attendance service instance. Called
// once from main before routes are registered.
func InitAttendanceController(svc *attendance.Service) {
	attendanceService = svc
}

// MarkAttendance godoc
// @Summary Mark today's gym visit
// @Description Idempotent per calendar day - a second call is rejected
// @Tags attendance
// @Produce json
// @Success 200 {object} models.MarkResult
// @Failure 409 {object} models.MarkResult
// @Router /attendance/mark [post]
func MarkAttendance(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	result := attendanceService.MarkAttendance(c.Context(), userID)
	if !result.Success {
		return c.Status(fiber.StatusConflict).JSON(result)
	}
	return c.JSON(result)
}

// MarkAbsent godoc
// @Summary Record an explicit absence, resetting the streak
// @Tags attendance
// @Produce json
// @Success 200 {object} models.MarkResult
// @Router /attendance/absent [post]
func MarkAbsent(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	result := attendanceService.MarkAbsent(c.Context(), userID)
	if !result.Success {
		return c.Status(fiber.StatusInternalServerError).JSON(result)
	}
	return c.JSON(result)
}

// GetAttendanceRecords godoc
// @Summary Full attendance history, newest first
// @Tags attendance
// @Produce json
// @Success 200 {array} models.AttendanceRecord
// @Router /attendance/records [get]
func GetAttendanceRecords(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	records, err := attendanceService.GetAttendanceRecords(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}
	return c.JSON(records)
}

// GetAttendanceStats godoc
// @Summary Per-member attendance summary (streaks, totals)
// @Tags attendance
// @Produce json
// @Success 200 {object} models.AttendanceStats
// @Router /attendance/stats [get]
func GetAttendanceStats(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	stats, err := attendanceService.GetAttendanceStats(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attendance stats"})
	}
	return c.JSON(stats)
}

// GetRecentAttendance godoc
// @Summary Last 10 visits from the local cache, no store round-trip
// @Tags attendance
// @Produce json
// @Success 200 {array} models.AttendanceRecord
// @Router /attendance/recent [get]
func GetRecentAttendance(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	return c.JSON(attendanceService.GetRecentAttendance(c.Context(), userID))
}

// ForceRecalculateStats godoc
// @Summary Rebuild the attendance summary from the full ledger
// @Tags attendance
// @Produce json
// @Success 200 {object} models.AttendanceStats
// @Router /attendance/recalculate [post]
func ForceRecalculateStats(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	stats, err := attendanceService.ForceRecalculateStats(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to recalculate attendance stats"})
	}
	return c.JSON(stats)
}

// StartAttendanceListener godoc
// @Summary Start the live ledger subscription for this member
// @Tags attendance
// @Router /attendance/listener [post]
func StartAttendanceListener(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	if _, err := attendanceService.StartRealtimeSync(c.Context(), userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start realtime listener"})
	}
	return c.JSON(fiber.Map{"message": "Listener started"})
}

// StopAttendanceListener godoc
// @Summary Stop the live ledger subscription for this member
// @Tags attendance
// @Router /attendance/listener [delete]
func StopAttendanceListener(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	attendanceService.StopRealtimeSync(userID)
	return c.JSON(fiber.Map{"message": "Listener stopped"})
}
