package internal

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func NewApp(handlers *Handlers) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(logger.New())

	rcp := app.Group("/receipts")
	rcp.Post("/process", handlers.ProcessReceipt)
	rcp.Get("/:id/points", handlers.GetPoints)
	rcp.Use(handlers.NotFound)

	return app
}
