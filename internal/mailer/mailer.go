package mailer

import (
	"context"
)

// Message — письмо для отправки
type Message struct {
	From    string // Адрес отправителя (подставляется адрес из формы, чтобы ответ ушёл ему)
	To      string // Ящик оператора
	Subject string // Тема
	Body    string // Текстовое содержимое
}

// Sender отправляет письма через внешний релей
// Интерфейс нужен, чтобы в тестах подставлять заглушку вместо SMTP
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}
