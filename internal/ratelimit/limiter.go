package ratelimit

import (
	"sync"
	"time"
)

// entry — счётчик запросов одного адреса в текущем окне
type entry struct {
	count       int       // Сколько запросов уже пришло в этом окне
	windowStart time.Time // Начало окна
}

// Limiter — лимитер запросов по алгоритму фиксированного окна
// На каждый адрес клиента ведётся свой счётчик; счётчики живут
// только в памяти процесса — после перезапуска всё обнуляется.
// При горизонтальном масштабировании каждый экземпляр считает
// независимо (общего хранилища нет — известное ограничение)
type Limiter struct {
	mu      sync.Mutex       // Мьютекс для безопасного доступа к счётчикам
	entries map[string]*entry
	max     int           // Максимум запросов за окно
	window  time.Duration // Длина окна
	sweeper *time.Ticker  // Тикер для очистки устаревших счётчиков
	done    chan struct{} // Сигнал остановки фоновой очистки
}

// New создаёт лимитер и запускает фоновую очистку
func New(max int, window time.Duration) *Limiter {
	l := &Limiter{
		entries: make(map[string]*entry),
		max:     max,
		window:  window,
		sweeper: time.NewTicker(window),
		done:    make(chan struct{}),
	}
	// Фоновая горутина удаляет счётчики истёкших окон,
	// иначе таблица растёт по одному элементу на каждый новый адрес
	go l.sweep()
	return l
}

// Allow решает, пропускать ли запрос с данного адреса
// Проверка и инкремент выполняются под одним мьютексом:
// два одновременных запроса не могут оба пройти на последнем слоте
func (l *Limiter) Allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[ip]
	// Первый запрос с адреса или окно уже истекло — начинаем новое окно
	if !ok || now.Sub(e.windowStart) >= l.window {
		l.entries[ip] = &entry{count: 1, windowStart: now}
		return true
	}

	e.count++
	return e.count <= l.max
}

// Len возвращает количество адресов с активными счётчиками
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Stop останавливает фоновую очистку
func (l *Limiter) Stop() {
	l.sweeper.Stop()
	close(l.done)
}

// sweep периодически удаляет счётчики, чьё окно истекло
func (l *Limiter) sweep() {
	for {
		select {
		case <-l.sweeper.C:
			now := time.Now()
			l.mu.Lock()
			for ip, e := range l.entries {
				if now.Sub(e.windowStart) >= l.window {
					delete(l.entries, ip)
				}
			}
			l.mu.Unlock()
		case <-l.done:
			return
		}
	}
}
