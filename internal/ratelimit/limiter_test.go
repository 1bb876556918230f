package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func TestLimiter_Allow(t *testing.T) {
	l := New(2, time.Minute)
	defer l.Stop()

	ip := "192.168.1.1"
	if !l.Allow(ip) {
		t.Errorf("первый запрос должен быть пропущен")
	}
	if !l.Allow(ip) {
		t.Errorf("второй запрос должен быть пропущен")
	}
	if l.Allow(ip) {
		t.Errorf("третий запрос должен быть отклонён")
	}
	// Отказ сохраняется до конца окна
	if l.Allow(ip) {
		t.Errorf("четвёртый запрос в том же окне должен быть отклонён")
	}
}

func TestLimiter_IndependentAddresses(t *testing.T) {
	l := New(1, time.Minute)
	defer l.Stop()

	if !l.Allow("192.168.1.1") {
		t.Errorf("первый адрес должен быть пропущен")
	}
	// Счётчики разных адресов не влияют друг на друга
	if !l.Allow("192.168.1.2") {
		t.Errorf("второй адрес должен быть пропущен")
	}
	if l.Allow("192.168.1.1") {
		t.Errorf("повторный запрос первого адреса должен быть отклонён")
	}
}

func TestLimiter_WindowReset(t *testing.T) {
	l := New(2, 300*time.Millisecond)
	defer l.Stop()

	ip := "192.168.1.1"
	if !l.Allow(ip) || !l.Allow(ip) || l.Allow(ip) {
		t.Fatalf("до истечения окна должно пропускаться ровно два запроса")
	}

	// Ждём, пока окно истечёт
	time.Sleep(400 * time.Millisecond)

	if !l.Allow(ip) {
		t.Errorf("после истечения окна запрос должен быть пропущен")
	}
	if !l.Allow(ip) {
		t.Errorf("счётчик после истечения окна должен начинаться заново")
	}
	if l.Allow(ip) {
		t.Errorf("лимит нового окна должен действовать как обычно")
	}
}

func TestLimiter_Sweep(t *testing.T) {
	l := New(5, 50*time.Millisecond)
	defer l.Stop()

	l.Allow("192.168.1.1")
	l.Allow("192.168.1.2")
	if l.Len() != 2 {
		t.Fatalf("ожидалось 2 счётчика, получено %d", l.Len())
	}

	// Очистка срабатывает по тикеру с интервалом окна
	time.Sleep(200 * time.Millisecond)

	if l.Len() != 0 {
		t.Errorf("устаревшие счётчики должны быть удалены, осталось %d", l.Len())
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	const (
		limit    = 5
		requests = 20
	)

	l := New(limit, time.Minute)
	defer l.Stop()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)

	// 20 одновременных запросов с одного адреса
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("192.168.1.1") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Независимо от порядка выполнения пройти должны ровно limit запросов
	if allowed != limit {
		t.Errorf("ожидалось %d пропущенных запросов, получено %d", limit, allowed)
	}
}
