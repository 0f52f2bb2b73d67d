package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares wires the default middleware chain for the whole app.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
