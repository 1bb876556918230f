package main

// @title Contact Form Email API
// @version 1.0
// @description Backend контактной формы: проверка reCAPTCHA и отправка письма через SMTP-релей

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

// @schemes http https

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/captcha"
	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/config"
	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/handler"
	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/mailer"
	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/ratelimit"
	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/service"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Ошибка загрузки конфигурации:", err)
	}

	fmt.Println("=== Contact Form Email API ===")

	// Создаём лимитер запросов
	limiter := ratelimit.New(cfg.Limits.RateLimitMax, cfg.Limits.RateLimitWindow)
	defer limiter.Stop()

	// Создаём клиентов внешних сервисов
	verifier := captcha.NewGoogleVerifier(cfg.Captcha)
	sender := mailer.NewSMTPSender(cfg.SMTP)

	// Создаём сервис и обработчики
	submissionService := service.NewSubmissionService(verifier, sender, cfg.SMTP)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	rateLimitMiddleware := handler.NewRateLimitMiddleware(limiter, cfg.Server.TrustProxy)

	// Создаём Fiber-приложение
	app := fiber.New(fiber.Config{
		AppName: "Contact Form Email API",
	})

	// Настраиваем маршруты
	handler.SetupRoutes(app, submissionHandler, rateLimitMiddleware)

	// Запускаем HTTP-сервер в отдельной горутине
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := app.Listen(addr); err != nil {
			log.Printf("HTTP-сервер остановлен: %v", err)
		}
	}()

	fmt.Printf("\nHTTP API: http://localhost:%d\n", cfg.Server.Port)
	fmt.Printf("Релей: %s:%d, письма на %s\n", cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Recipient)
	fmt.Printf("Лимит: %d запросов за %s с одного адреса\n", cfg.Limits.RateLimitMax, cfg.Limits.RateLimitWindow)
	fmt.Println("\nНажмите Ctrl+C для остановки")

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nОстановка сервера...")
	app.Shutdown()
}
