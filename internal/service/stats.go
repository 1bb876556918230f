package service

import (
	"sync"
	"time"
)

// Stats хранит статистику работы сервиса
type Stats struct {
	mu               sync.RWMutex // Мьютекс для безопасного доступа
	TotalSubmissions int64        // Всего принято заявок
	SentEmails       int64        // Всего отправлено писем
	RejectedCaptcha  int64        // Отклонено проверкой reCAPTCHA
	RateLimited      int64        // Отклонено лимитом запросов
	FailedSends      int64        // Неудачных отправок
	LastSentAt       time.Time    // Время последней успешной отправки
}

// GlobalStats — глобальная статистика
var GlobalStats = &Stats{}

// IncrementSubmissions увеличивает счётчик принятых заявок
func (s *Stats) IncrementSubmissions() {
	s.mu.Lock()         // Блокируем для записи
	defer s.mu.Unlock() // Разблокируем при выходе
	s.TotalSubmissions++
}

// IncrementSent увеличивает счётчик отправленных писем
func (s *Stats) IncrementSent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SentEmails++
	s.LastSentAt = time.Now()
}

// IncrementRejectedCaptcha увеличивает счётчик отклонённых reCAPTCHA
func (s *Stats) IncrementRejectedCaptcha() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RejectedCaptcha++
}

// IncrementRateLimited увеличивает счётчик отклонённых лимитером
func (s *Stats) IncrementRateLimited() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RateLimited++
}

// IncrementFailedSends увеличивает счётчик неудачных отправок
func (s *Stats) IncrementFailedSends() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FailedSends++
}

// GetStats возвращает копию статистики
func (s *Stats) GetStats() Stats {
	s.mu.RLock()         // Блокируем для чтения
	defer s.mu.RUnlock() // Разблокируем при выходе
	return Stats{
		TotalSubmissions: s.TotalSubmissions,
		SentEmails:       s.SentEmails,
		RejectedCaptcha:  s.RejectedCaptcha,
		RateLimited:      s.RateLimited,
		FailedSends:      s.FailedSends,
		LastSentAt:       s.LastSentAt,
	}
}
