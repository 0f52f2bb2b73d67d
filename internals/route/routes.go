package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "schoolms_backend/internals/features/admins/route"
	admissionRoute "schoolms_backend/internals/features/admissions/route"
	branchRoute "schoolms_backend/internals/features/branches/route"
	classRoute "schoolms_backend/internals/features/classes/route"
	feeRoute "schoolms_backend/internals/features/fees/route"
	policyRoute "schoolms_backend/internals/features/policies/route"
)

var startTime = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	adminRoute.AdminRoutes(api.Group("/admin"), db)
	branchRoute.BranchRoutes(api.Group("/branch"), db)
	classRoute.ClassRoutes(api.Group("/class"), db)
	admissionRoute.AdmissionRoutes(api.Group("/admission"), db)
	feeRoute.FeeRoutes(api.Group("/fee"), db)
	policyRoute.PolicyRoutes(api.Group("/policy"), db)
}

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("APP_ENV"),
		})
	})
}
