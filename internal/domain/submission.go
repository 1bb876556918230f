package domain

import (
	"time"
)

// Submission — заявка с контактной формы
// Живёт ровно один запрос: создаётся при приёме, отбрасывается после ответа
type Submission struct {
	ID           string    `json:"id"`            // Идентификатор для корреляции в логах (UUID)
	Name         string    `json:"name"`          // Имя отправителя
	Email        string    `json:"email"`         // Email отправителя (проверяется только наличие)
	Message      string    `json:"message"`       // Текст сообщения
	CaptchaToken string    `json:"captcha_token"` // Токен reCAPTCHA с виджета (одноразовый)
	ClientIP     string    `json:"client_ip"`     // Адрес клиента — ключ лимита запросов
	ReceivedAt   time.Time `json:"received_at"`   // Время приёма
}

// IsComplete проверяет, что все обязательные поля заполнены
// Пустая строка считается отсутствующим полем
func (s *Submission) IsComplete() bool {
	return s.Name != "" && s.Email != "" && s.Message != "" && s.CaptchaToken != ""
}
