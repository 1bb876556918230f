package captcha

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sah2Sah2/API-ContactFormMyWebsite/internal/config"
)

// newVerifier создаёт клиента, указывающего на тестовый сервер
func newVerifier(url string) *GoogleVerifier {
	return NewGoogleVerifier(config.CaptchaConfig{
		Secret:    "test-secret",
		VerifyURL: url,
		Timeout:   2 * time.Second,
	})
}

func TestGoogleVerifier_Success(t *testing.T) {
	var gotSecret, gotResponse, gotRemoteIP string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Запоминаем, что именно отправил клиент
		gotSecret = r.FormValue("secret")
		gotResponse = r.FormValue("response")
		gotRemoteIP = r.FormValue("remoteip")
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	v := newVerifier(srv.URL)
	err := v.Verify(context.Background(), "tok", "192.168.1.1")
	if err != nil {
		t.Fatalf("ожидался успех, получена ошибка: %v", err)
	}

	if gotSecret != "test-secret" {
		t.Errorf("секрет не передан: %q", gotSecret)
	}
	if gotResponse != "tok" {
		t.Errorf("токен не передан: %q", gotResponse)
	}
	if gotRemoteIP != "192.168.1.1" {
		t.Errorf("адрес клиента не передан: %q", gotRemoteIP)
	}
}

func TestGoogleVerifier_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer srv.Close()

	v := newVerifier(srv.URL)
	err := v.Verify(context.Background(), "bad-tok", "192.168.1.1")
	if !errors.Is(err, ErrRejected) {
		t.Errorf("ожидалась ErrRejected, получено: %v", err)
	}
}

func TestGoogleVerifier_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	v := newVerifier(srv.URL)
	err := v.Verify(context.Background(), "tok", "192.168.1.1")
	if err == nil {
		t.Fatal("ожидалась ошибка при статусе 500")
	}
	// Транспортная ошибка — не то же самое, что отклонённый токен
	if errors.Is(err, ErrRejected) {
		t.Errorf("ошибка сервиса не должна считаться отклонением токена: %v", err)
	}
}

func TestGoogleVerifier_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	v := newVerifier(srv.URL)
	err := v.Verify(context.Background(), "tok", "192.168.1.1")
	if err == nil {
		t.Fatal("ожидалась ошибка разбора ответа")
	}
	if errors.Is(err, ErrRejected) {
		t.Errorf("ошибка разбора не должна считаться отклонением токена: %v", err)
	}
}

func TestGoogleVerifier_Unreachable(t *testing.T) {
	// Сервер сразу закрыт — имитация недоступности
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	v := newVerifier(srv.URL)
	err := v.Verify(context.Background(), "tok", "192.168.1.1")
	if err == nil {
		t.Fatal("ожидалась ошибка соединения")
	}
	if errors.Is(err, ErrRejected) {
		t.Errorf("сетевая ошибка не должна считаться отклонением токена: %v", err)
	}
}
