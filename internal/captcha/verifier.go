package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/config"
)

// ErrRejected — сервис проверки ответил success=false
// Отличается от транспортных ошибок (сеть, не-2xx, битый JSON),
// но клиенту обе ситуации показываются одинаково
var ErrRejected = errors.New("проверка reCAPTCHA не пройдена")

// Verifier проверяет токен reCAPTCHA
// Интерфейс нужен, чтобы в тестах подставлять заглушку вместо Google
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// GoogleVerifier — клиент сервиса проверки Google reCAPTCHA
type GoogleVerifier struct {
	secret    string       // Серверный секрет
	verifyURL string       // Адрес siteverify
	client    *http.Client // HTTP-клиент с таймаутом
}

// verifyResponse — ответ сервиса проверки
type verifyResponse struct {
	Success    bool     `json:"success"`     // Пройдена ли проверка
	ErrorCodes []string `json:"error-codes"` // Машинные коды ошибок (при неудаче)
}

// NewGoogleVerifier создаёт новый клиент проверки
func NewGoogleVerifier(cfg config.CaptchaConfig) *GoogleVerifier {
	return &GoogleVerifier{
		secret:    cfg.Secret,
		verifyURL: cfg.VerifyURL,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Verify отправляет токен на проверку одним запросом
// Возвращает nil, если проверка пройдена; ErrRejected, если сервис
// отклонил токен; иную ошибку при проблемах с самим запросом
func (v *GoogleVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	// Сервис принимает форму: секрет, токен клиента и адрес клиента
	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
		"remoteip": {remoteIP},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("ошибка создания запроса к reCAPTCHA: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка обращения к сервису reCAPTCHA: %w", err)
	}
	// defer гарантирует закрытие тела ответа при выходе из функции
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("сервис reCAPTCHA вернул статус %d", resp.StatusCode)
	}

	// Разбираем JSON-ответ
	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("ошибка разбора ответа reCAPTCHA: %w", err)
	}

	if !result.Success {
		if len(result.ErrorCodes) > 0 {
			return fmt.Errorf("%w (коды: %s)", ErrRejected, strings.Join(result.ErrorCodes, ", "))
		}
		return ErrRejected
	}

	return nil
}
