package reviews

import (
	"math"
	"testing"

	"ustabul/models"
)

func completedJob() models.Job {
	return models.Job{
		JobID:            "j1",
		EmployerID:       "e1",
		SelectedWorkerID: "w1",
		Status:           models.JobStatusCompleted,
	}
}

func TestValidateReviewerRoles(t *testing.T) {
	job := completedJob()

	role, err := ValidateReviewer(job, "e1")
	if err != nil || role != models.UserTypeEmployer {
		t.Fatalf("employer: role=%q err=%v", role, err)
	}

	role, err = ValidateReviewer(job, "w1")
	if err != nil || role != models.UserTypeWorker {
		t.Fatalf("worker: role=%q err=%v", role, err)
	}

	if _, err := ValidateReviewer(job, "stranger"); err == nil {
		t.Fatal("non-participant allowed to review")
	}
}

func TestValidateReviewerRequiresCompletedJob(t *testing.T) {
	for _, status := range []string{
		models.JobStatusActive, models.JobStatusInProgress, models.JobStatusClosed,
	} {
		job := completedJob()
		job.Status = status
		if _, err := ValidateReviewer(job, "e1"); err == nil {
			t.Errorf("status %q: expected error", status)
		}
	}
}

func TestRevieweeFor(t *testing.T) {
	job := completedJob()
	if got := RevieweeFor(job, models.UserTypeEmployer); got != "w1" {
		t.Fatalf("employer reviews the worker, got %q", got)
	}
	if got := RevieweeFor(job, models.UserTypeWorker); got != "e1" {
		t.Fatalf("worker reviews the employer, got %q", got)
	}
}

func TestUpdatedRating(t *testing.T) {
	got := UpdatedRating(models.Rating{}, 4)
	if got.Count != 1 || got.Average != 4 {
		t.Fatalf("first rating: %+v", got)
	}

	got = UpdatedRating(models.Rating{Average: 4, Count: 1}, 5)
	if got.Count != 2 || math.Abs(got.Average-4.5) > 1e-9 {
		t.Fatalf("second rating: %+v", got)
	}

	got = UpdatedRating(models.Rating{Average: 4.5, Count: 2}, 1)
	if got.Count != 3 || math.Abs(got.Average-10.0/3) > 1e-9 {
		t.Fatalf("third rating: %+v", got)
	}
}
