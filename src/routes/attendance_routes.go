package routes

import (
	"Backend-TripleA/src/controllers"
	"Backend-TripleA/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// attendanceRoutes กำหนดเส้นทางสำหรับ Attendance API
func attendanceRoutes(app *fiber.App) {
	attendance := app.Group("/attendance")
	attendance.Use(middleware.AuthJWT)

	attendance.Post("/mark", controllers.MarkAttendance)       // เช็คชื่อวันนี้
	attendance.Post("/absent", controllers.MarkAbsent)         // บันทึกขาด (reset streak)
	attendance.Get("/records", controllers.GetAttendanceRecords)
	attendance.Get("/stats", controllers.GetAttendanceStats)
	attendance.Get("/recent", controllers.GetRecentAttendance) // cache only
	attendance.Post("/recalculate", controllers.ForceRecalculateStats)
	attendance.Post("/listener", controllers.StartAttendanceListener)
	attendance.Delete("/listener", controllers.StopAttendanceListener)
}
