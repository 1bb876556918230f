package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/captcha"
	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/config"
	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/domain"
	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/mailer"
)

// Ошибки сервиса
var (
	ErrIncompleteSubmission = errors.New("не заполнены обязательные поля")
	ErrCaptchaRejected      = errors.New("проверка reCAPTCHA не пройдена")
	ErrMailDelivery         = errors.New("не удалось отправить письмо")
)

// SubmissionService — сервис обработки заявок с контактной формы
// Конвейер: проверка полей → проверка reCAPTCHA → отправка письма.
// Любая неудача завершает обработку, повторов нет
type SubmissionService struct {
	verifier  captcha.Verifier // Клиент проверки reCAPTCHA
	sender    mailer.Sender    // Отправитель писем
	recipient string           // Ящик оператора
}

// NewSubmissionService создаёт новый сервис
func NewSubmissionService(verifier captcha.Verifier, sender mailer.Sender, cfg config.SMTPConfig) *SubmissionService {
	return &SubmissionService{
		verifier:  verifier,
		sender:    sender,
		recipient: cfg.Recipient,
	}
}

// Process обрабатывает одну заявку
// Возвращает одну из ошибок сервиса; детали внешних сервисов
// остаются в логах и не доходят до клиента
func (s *SubmissionService) Process(ctx context.Context, sub *domain.Submission) error {
	// Генерируем ID для корреляции записей в логах
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.ReceivedAt.IsZero() {
		sub.ReceivedAt = time.Now()
	}

	GlobalStats.IncrementSubmissions()

	// Проверяем заполненность полей — без единого внешнего вызова
	if !sub.IsComplete() {
		return ErrIncompleteSubmission
	}

	// Проверяем reCAPTCHA; без подтверждения письмо не отправляется
	if err := s.verifier.Verify(ctx, sub.CaptchaToken, sub.ClientIP); err != nil {
		// В логах различаем отклонённый токен и проблемы с самим сервисом,
		// клиент в обоих случаях получает один и тот же ответ
		if errors.Is(err, captcha.ErrRejected) {
			log.Printf("[%s] reCAPTCHA отклонена: %v", sub.ID, err)
		} else {
			log.Printf("[%s] сервис reCAPTCHA недоступен: %v", sub.ID, err)
		}
		GlobalStats.IncrementRejectedCaptcha()
		return ErrCaptchaRejected
	}

	// Отправляем письмо оператору
	if err := s.sender.Send(ctx, s.compose(sub)); err != nil {
		log.Printf("[%s] ошибка отправки письма: %v", sub.ID, err)
		GlobalStats.IncrementFailedSends()
		return ErrMailDelivery
	}

	log.Printf("[%s] письмо от %s отправлено", sub.ID, sub.Email)
	GlobalStats.IncrementSent()
	return nil
}

// compose собирает письмо из заявки
// Отправителем ставится адрес из формы — ответ из почтового клиента
// уйдёт сразу автору заявки, а не учётной записи сервиса
func (s *SubmissionService) compose(sub *domain.Submission) *mailer.Message {
	return &mailer.Message{
		From:    sub.Email,
		To:      s.recipient,
		Subject: fmt.Sprintf("New Contact Form Submission from %s", sub.Name),
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", sub.Name, sub.Email, sub.Message),
	}
}
