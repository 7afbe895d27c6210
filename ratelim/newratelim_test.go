package ratelim

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestLimitReturnsEnvelopeOn429(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	var limited *httptest.ResponseRecorder
	for i := 0; i < 30; i++ {
		r := httptest.NewRequest("GET", "/api/jobs", nil)
		r.RemoteAddr = "192.0.2.1:5000"
		w := httptest.NewRecorder()
		handler(w, r, nil)
		if w.Code == http.StatusTooManyRequests {
			limited = w
			break
		}
	}
	if limited == nil {
		t.Fatal("burst of 30 requests from one address never hit the limit")
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(limited.Body).Decode(&body); err != nil {
		t.Fatalf("429 body is not JSON: %v", err)
	}
	if body.Success || body.Message == "" {
		t.Fatalf("429 body %+v, want success=false with a message", body)
	}
}

func TestLimitKeepsAddressesSeparate(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 30; i++ {
		r := httptest.NewRequest("GET", "/api/jobs", nil)
		r.RemoteAddr = "192.0.2.2:5000"
		w := httptest.NewRecorder()
		handler(w, r, nil)
	}

	r := httptest.NewRequest("GET", "/api/jobs", nil)
	r.RemoteAddr = "192.0.2.3:5000"
	w := httptest.NewRecorder()
	handler(w, r, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("fresh address got %d", w.Code)
	}
}
