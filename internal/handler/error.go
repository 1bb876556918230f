package handler

// ErrorResponse — стандартный формат ошибки API
type ErrorResponse struct {
	Error   string `json:"error"`             // Сообщение об ошибке
	Details string `json:"details,omitempty"` // Дополнительные детали (необязательно)
}

// SuccessResponse — формат успешного ответа
type SuccessResponse struct {
	Success string `json:"success"` // Сообщение об успехе
}

// RateLimitResponse — ответ при превышении лимита запросов
// Поле называется message, а не error — так его ждёт фронтенд
type RateLimitResponse struct {
	Message string `json:"message"` // Сообщение о лимите
}
