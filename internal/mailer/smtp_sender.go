package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"

	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/config"
)

// SMTPSender отправляет письма через авторизованный SMTP-релей
// Одно письмо — одна попытка: повторов и очереди нет,
// неудачная отправка просто возвращается как ошибка
type SMTPSender struct {
	addr     string // host:port релея
	user     string // Учётная запись
	password string // Пароль
}

// NewSMTPSender создаёт новый отправитель
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		user:     cfg.User,
		password: cfg.Password,
	}
}

// Send отправляет одно письмо
// SendMail сам устанавливает STARTTLS и проходит аутентификацию.
// Начатая отправка доводится до конца даже при отмене контекста —
// обрывать SMTP-диалог на середине нет смысла
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	// PLAIN-аутентификация на релее
	auth := sasl.NewPlainClient("", s.user, s.password)

	// Собираем письмо: заголовки, пустая строка, тело
	// Строки в SMTP разделяются CRLF
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")

	err := smtp.SendMail(s.addr, auth, msg.From, []string{msg.To}, strings.NewReader(b.String()))
	if err != nil {
		return fmt.Errorf("ошибка отправки через %s: %w", s.addr, err)
	}

	return nil
}
