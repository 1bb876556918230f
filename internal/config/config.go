package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config — главная структура конфигурации приложения
// Все поля заполняются из переменных окружения
type Config struct {
	Server  ServerConfig  // Настройки HTTP-сервера
	SMTP    SMTPConfig    // Настройки почтового релея
	Captcha CaptchaConfig // Настройки reCAPTCHA
	Limits  LimitsConfig  // Лимиты
}

// ServerConfig — настройки HTTP-сервера
type ServerConfig struct {
	Port int `envconfig:"PORT" default:"5000"` // Порт HTTP сервера
	// TrustProxy — доверять ли заголовку X-Forwarded-For (ровно один прокси-хоп).
	// Без обратного прокси оставляйте false, иначе лимит запросов
	// обходится подделкой заголовка
	TrustProxy bool `envconfig:"TRUST_PROXY" default:"false"`
}

// SMTPConfig — настройки отправки почты через внешний релей
type SMTPConfig struct {
	Host      string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"` // Адрес SMTP-сервера
	Port      int    `envconfig:"SMTP_PORT" default:"587"`            // Порт (587 — submission со STARTTLS)
	User      string `envconfig:"EMAIL_USER" required:"true"`         // Учётная запись (обязательная)
	Password  string `envconfig:"EMAIL_PASS" required:"true"`         // Пароль приложения (обязательный)
	Recipient string `envconfig:"EMAIL_TO"`                           // Ящик оператора; по умолчанию — EMAIL_USER
}

// CaptchaConfig — настройки проверки reCAPTCHA
type CaptchaConfig struct {
	Secret    string        `envconfig:"RECAPTCHA_SECRET" required:"true"`                                               // Серверный секрет (обязательный)
	VerifyURL string        `envconfig:"RECAPTCHA_VERIFY_URL" default:"https://www.google.com/recaptcha/api/siteverify"` // Адрес сервиса проверки
	Timeout   time.Duration `envconfig:"RECAPTCHA_TIMEOUT" default:"10s"`                                                // Таймаут запроса к сервису
}

// LimitsConfig — лимиты и ограничения
type LimitsConfig struct {
	RateLimitMax    int           `envconfig:"RATE_LIMIT_MAX" default:"5"`      // Макс. запросов с одного адреса за окно
	RateLimitWindow time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"30m"` // Длина окна
}

// Load загружает конфигурацию из переменных окружения
// Сначала пытается прочитать файл .env, затем читает переменные окружения
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл
	// Если файла нет — не страшно, будем читать из системных переменных
	_ = godotenv.Load()

	// Создаём пустую структуру конфигурации
	var cfg Config

	// Заполняем структуру из переменных окружения
	// Если обязательное поле отсутствует — вернётся ошибка
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}

	// Если ящик оператора не задан — письма идут на свою же учётную запись
	if cfg.SMTP.Recipient == "" {
		cfg.SMTP.Recipient = cfg.SMTP.User
	}

	// Возвращаем указатель на конфигурацию
	return &cfg, nil
}
