package applications

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ustabul/apperr"
	"ustabul/models"
)

func TestBuildScreeningUpdate(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	for _, status := range []string{models.ApplicationReviewed, models.ApplicationShortlisted} {
		update, err := BuildScreeningUpdate(status, now)
		if err != nil {
			t.Fatalf("BuildScreeningUpdate(%q): %v", status, err)
		}
		set, ok := update["$set"].(bson.M)
		if !ok {
			t.Fatalf("BuildScreeningUpdate(%q): update has no $set: %v", status, update)
		}
		if set["status"] != status {
			t.Errorf("status = %v, want %q", set["status"], status)
		}
		if set["reviewedAt"] != now {
			t.Errorf("reviewedAt = %v, want %v", set["reviewedAt"], now)
		}
		if set["updatedAt"] != now {
			t.Errorf("updatedAt = %v, want %v", set["updatedAt"], now)
		}
	}
}

func TestBuildScreeningUpdateRejectsOtherStatuses(t *testing.T) {
	now := time.Now()
	for _, status := range []string{
		models.ApplicationPending,
		models.ApplicationAccepted,
		models.ApplicationRejected,
		models.ApplicationWithdrawn,
		"banana",
		"",
	} {
		_, err := BuildScreeningUpdate(status, now)
		if err == nil {
			t.Errorf("BuildScreeningUpdate(%q): expected error", status)
			continue
		}
		var ae *apperr.Error
		if !errors.As(err, &ae) || ae.Kind != apperr.Validation {
			t.Errorf("BuildScreeningUpdate(%q): err = %v, want validation error", status, err)
		}
	}
}

func TestClassifyInsertErrorDuplicate(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}

	err := classifyInsertError(dup)
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("classifyInsertError(dup) = %v, want *apperr.Error", err)
	}
	if ae.Kind != apperr.Conflict {
		t.Errorf("Kind = %v, want Conflict", ae.Kind)
	}
	if ae.Message != "Bu ilana zaten başvuru yaptınız" {
		t.Errorf("Message = %q", ae.Message)
	}
}

func TestClassifyInsertErrorOther(t *testing.T) {
	cause := errors.New("connection reset")

	err := classifyInsertError(cause)
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("classifyInsertError = %v, want *apperr.Error", err)
	}
	if ae.Kind != apperr.Internal {
		t.Errorf("Kind = %v, want Internal", ae.Kind)
	}
	if !errors.Is(err, cause) {
		t.Errorf("wrapped error lost its cause: %v", err)
	}
}
