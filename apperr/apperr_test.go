package apperr

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusCoversEveryKind(t *testing.T) {
	want := map[Kind]int{
		Validation:   http.StatusBadRequest,
		Unauthorized: http.StatusUnauthorized,
		Forbidden:    http.StatusForbidden,
		NotFound:     http.StatusNotFound,
		Conflict:     http.StatusConflict,
		Internal:     http.StatusInternalServerError,
	}
	for kind, status := range want {
		if got := kind.Status(); got != status {
			t.Errorf("%s: got %d, want %d", kind, got, status)
		}
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Internal, "Sunucu hatası", cause)

	if !errors.Is(err, cause) {
		t.Fatal("cause lost through Wrap")
	}

	var appErr *Error
	if !errors.As(error(err), &appErr) {
		t.Fatal("errors.As failed")
	}
	if appErr.Kind != Internal {
		t.Fatalf("kind: got %v", appErr.Kind)
	}
	if err.Error() != "Sunucu hatası: connection refused" {
		t.Fatalf("message: %q", err.Error())
	}
}

func TestNewMessageOnly(t *testing.T) {
	err := New(NotFound, "İlan bulunamadı")
	if err.Error() != "İlan bulunamadı" {
		t.Fatalf("got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatal("unexpected cause")
	}
}
