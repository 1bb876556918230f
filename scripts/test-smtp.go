package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/config"
	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/mailer"
)

// Пробная отправка письма через настроенный релей
// Использует те же конфигурацию и отправитель, что и сам сервис
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Ошибка загрузки конфигурации:", err)
	}

	to := cfg.SMTP.Recipient
	if len(os.Args) > 1 {
		to = os.Args[1]
	}

	fmt.Printf("Релей: %s:%d\n", cfg.SMTP.Host, cfg.SMTP.Port)
	fmt.Printf("Отправка пробного письма на %s...\n", to)

	sender := mailer.NewSMTPSender(cfg.SMTP)

	msg := &mailer.Message{
		From:    cfg.SMTP.User,
		To:      to,
		Subject: "Test Message",
		Body:    fmt.Sprintf("Это пробное письмо от %s", time.Now().Format(time.RFC3339)),
	}

	if err := sender.Send(context.Background(), msg); err != nil {
		log.Fatalf("Ошибка отправки: %v", err)
	}

	fmt.Println("✓ Письмо отправлено успешно!")
	fmt.Println("Проверьте ящик получателя")
}
