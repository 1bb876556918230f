package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/domain"
	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/service"
)

// SubmissionHandler — обработчик заявок с контактной формы
type SubmissionHandler struct {
	service *service.SubmissionService
}

// NewSubmissionHandler создаёт новый обработчик
func NewSubmissionHandler(svc *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: svc}
}

// SendEmailRequest — структура запроса контактной формы
type SendEmailRequest struct {
	Name            string `json:"name"`            // Имя отправителя
	Email           string `json:"email"`           // Email отправителя
	Message         string `json:"message"`         // Текст сообщения
	CaptchaResponse string `json:"captchaResponse"` // Токен reCAPTCHA с виджета
}

// SendEmail принимает заявку и отправляет письмо оператору
// @Summary Отправить письмо с контактной формы
// @Description Проверяет reCAPTCHA и пересылает содержимое формы на почту оператора
// @Tags contact
// @Accept json
// @Produce json
// @Param request body SendEmailRequest true "Поля контактной формы"
// @Success 200 {object} SuccessResponse "Письмо отправлено"
// @Failure 400 {object} ErrorResponse "Не заполнены поля или не пройдена reCAPTCHA"
// @Failure 429 {object} RateLimitResponse "Превышен лимит запросов"
// @Failure 500 {object} ErrorResponse "Ошибка отправки письма"
// @Router /send-email [post]
func (h *SubmissionHandler) SendEmail(c *fiber.Ctx) error {
	// Парсим тело запроса
	var req SendEmailRequest

	// BodyParser читает JSON из тела запроса и заполняет структуру
	if err := c.BodyParser(&req); err != nil {
		// Битое тело оставляет поля пустыми — дальше сработает
		// проверка обязательных полей
		req = SendEmailRequest{}
	}

	// Адрес клиента уже вычислен middleware лимита
	ip, _ := c.Locals(clientIPKey).(string)
	if ip == "" {
		ip = c.IP()
	}

	sub := &domain.Submission{
		Name:         req.Name,
		Email:        req.Email,
		Message:      req.Message,
		CaptchaToken: req.CaptchaResponse,
		ClientIP:     ip,
	}

	err := h.service.Process(c.UserContext(), sub)
	if err != nil {
		// Проверяем тип ошибки
		if errors.Is(err, service.ErrIncompleteSubmission) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "All fields and reCAPTCHA are required",
			})
		}
		if errors.Is(err, service.ErrCaptchaRejected) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "reCAPTCHA verification failed",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to send email",
		})
	}

	// Возвращаем успешный ответ
	return c.JSON(SuccessResponse{
		Success: "Email sent successfully!",
	})
}
