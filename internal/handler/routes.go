package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/service"
)

// SetupRoutes настраивает все маршруты приложения
func SetupRoutes(
	app *fiber.App,
	submissionHandler *SubmissionHandler,
	rateLimit *RateLimitMiddleware,
) {
	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Корневой маршрут — проверка, что API работает
	// @Summary Проверка работы API
	// @Description Возвращает фиксированную строку
	// @Tags system
	// @Produce plain
	// @Success 200 {string} string "Статус API"
	// @Router / [get]
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Email API is running!")
	})

	// Отправка письма — под лимитом запросов
	app.Post("/send-email", rateLimit.Handle, submissionHandler.SendEmail)

	// Health check
	// @Summary Проверка здоровья
	// @Description Возвращает статус сервера
	// @Tags system
	// @Produce json
	// @Success 200 {object} map[string]string "Статус сервера"
	// @Router /health [get]
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	// Stats
	// @Summary Статистика сервиса
	// @Description Возвращает статистику работы сервиса
	// @Tags system
	// @Produce json
	// @Success 200 {object} map[string]interface{} "Статистика"
	// @Router /stats [get]
	app.Get("/stats", func(c *fiber.Ctx) error {
		stats := service.GlobalStats.GetStats()
		return c.JSON(fiber.Map{
			"total_submissions": stats.TotalSubmissions,
			"sent_emails":       stats.SentEmails,
			"rejected_captcha":  stats.RejectedCaptcha,
			"rate_limited":      stats.RateLimited,
			"failed_sends":      stats.FailedSends,
			"last_sent_at":      stats.LastSentAt.Format("2006-01-02 15:04:05"),
		})
	})
}
