package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"

	"ustabul/globals"
	"ustabul/models"
)

func signToken(t *testing.T, userID, userType string, expiry time.Duration) string {
	t.Helper()
	claims := &Claims{
		Email:    "test@example.com",
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestAuthenticateSetsContext(t *testing.T) {
	token := signToken(t, "u123", models.UserTypeWorker, time.Hour)

	var gotID, gotType string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotID, _ = r.Context().Value(globals.UserIDKey).(string)
		gotType, _ = r.Context().Value(globals.UserTypeKey).(string)
	})

	r := httptest.NewRequest("GET", "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler(w, r, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if gotID != "u123" || gotType != models.UserTypeWorker {
		t.Fatalf("context: id=%q type=%q", gotID, gotType)
	}
}

func TestAuthenticateRejectsMissingAndMalformed(t *testing.T) {
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run")
	})

	for _, header := range []string{"", "Token abc", "Bearer not.a.jwt"} {
		r := httptest.NewRequest("GET", "/api/auth/me", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		handler(w, r, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status %d", header, w.Code)
		}

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Errorf("header %q: body is not JSON: %v", header, err)
			continue
		}
		if body.Success || body.Message == "" {
			t.Errorf("header %q: body %+v, want success=false with a message", header, body)
		}
	}
}

func TestAuthenticateRejectsExpired(t *testing.T) {
	token := signToken(t, "u123", models.UserTypeWorker, -time.Hour)

	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run")
	})

	r := httptest.NewRequest("GET", "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler(w, r, nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	token := signToken(t, "u123", models.UserTypeWorker, time.Hour)

	ran := false
	handler := Authenticate(RequireRole(models.UserTypeEmployer, func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ran = true
	}))

	r := httptest.NewRequest("POST", "/api/jobs", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler(w, r, nil)

	if ran {
		t.Fatal("worker passed an employer-only gate")
	}
	if w.Code != http.StatusForbidden {
		t.Fatalf("status %d", w.Code)
	}

	handler = Authenticate(RequireRole(models.UserTypeWorker, func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ran = true
	}))
	r = httptest.NewRequest("POST", "/api/applications", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	handler(w, r, nil)

	if !ran || w.Code != http.StatusOK {
		t.Fatalf("matching role rejected: status %d", w.Code)
	}
}

func TestValidateJWTRoundTrip(t *testing.T) {
	token := signToken(t, "u456", models.UserTypeEmployer, time.Hour)

	claims, err := ValidateJWT("Bearer " + token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "u456" || claims.UserType != models.UserTypeEmployer {
		t.Fatalf("claims: %+v", claims)
	}

	if _, err := ValidateJWT(""); err == nil {
		t.Fatal("empty token accepted")
	}
	if _, err := ValidateJWT("Token " + token); err == nil {
		t.Fatal("non-Bearer scheme accepted")
	}
}
