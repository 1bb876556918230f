package handler

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/ratelimit"
	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/service"
)

// clientIPKey — ключ, под которым адрес клиента кладётся в Locals,
// чтобы обработчик не вычислял его второй раз
const clientIPKey = "client_ip"

// RateLimitMiddleware — middleware лимита запросов
// Срабатывает раньше любой другой обработки: при отказе
// ни reCAPTCHA, ни почтовый релей не вызываются
type RateLimitMiddleware struct {
	limiter    *ratelimit.Limiter // Лимитер с фиксированным окном
	trustProxy bool               // Доверять ли X-Forwarded-For
}

// NewRateLimitMiddleware создаёт новый middleware
func NewRateLimitMiddleware(limiter *ratelimit.Limiter, trustProxy bool) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter:    limiter,
		trustProxy: trustProxy,
	}
}

// Handle проверяет лимит и либо пропускает запрос дальше, либо отвечает 429
func (m *RateLimitMiddleware) Handle(c *fiber.Ctx) error {
	ip := m.clientIP(c)

	// Сохраняем адрес для обработчика
	c.Locals(clientIPKey, ip)

	if !m.limiter.Allow(ip) {
		log.Printf("превышен лимит запросов для %s", ip)
		service.GlobalStats.IncrementRateLimited()
		return c.Status(fiber.StatusTooManyRequests).JSON(RateLimitResponse{
			Message: "Too many requests, please try again after 30 minutes.",
		})
	}

	return c.Next()
}

// clientIP определяет адрес клиента
// За обратным прокси настоящий адрес лежит в X-Forwarded-For;
// доверяем ровно первому хопу и только если это включено в конфигурации,
// иначе лимит обходится подделкой заголовка
func (m *RateLimitMiddleware) clientIP(c *fiber.Ctx) string {
	if m.trustProxy {
		if xff := c.Get(fiber.HeaderXForwardedFor); xff != "" {
			// Первый элемент списка — адрес исходного клиента
			first := strings.TrimSpace(strings.Split(xff, ",")[0])
			if first != "" {
				return first
			}
		}
	}

	// Без прокси берём адрес сокета
	return c.IP()
}
