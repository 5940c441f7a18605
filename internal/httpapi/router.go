package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber application with middleware and routes.
func NewApp(handlers *QuizHandlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "quizcode",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "too many requests, try again later",
			})
		},
	}))

	api := app.Group("/api")
	api.Post("/register", handlers.HandleRegister)
	api.Post("/login", handlers.HandleLogin)
	api.Post("/quiz/generate", handlers.HandleGenerateQuiz)
	api.Post("/quiz/check", handlers.HandleCheckAnswer)
	api.Post("/quiz/submit", handlers.HandleSubmitQuiz)
	api.Get("/statistics", handlers.HandleGetStatistics)

	return app
}
