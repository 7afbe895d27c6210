package reviews

import (
	"ustabul/apperr"
	"ustabul/models"
)

// ValidateReviewer determines who a completed job's participant may review,
// returning the reviewer's role on the job.
func ValidateReviewer(job models.Job, reviewerID string) (string, error) {
	if job.Status != models.JobStatusCompleted {
		return "", apperr.New(apperr.Conflict, "Sadece tamamlanmış işler için değerlendirme yapılabilir")
	}
	switch reviewerID {
	case job.EmployerID:
		return models.UserTypeEmployer, nil
	case job.SelectedWorkerID:
		return models.UserTypeWorker, nil
	}
	return "", apperr.New(apperr.Forbidden, "Bu işi değerlendirme yetkiniz yok")
}

// RevieweeFor returns the counterpart of the reviewer on the job.
func RevieweeFor(job models.Job, reviewerType string) string {
	if reviewerType == models.UserTypeEmployer {
		return job.SelectedWorkerID
	}
	return job.EmployerID
}

// UpdatedRating folds one new score into a running average.
func UpdatedRating(current models.Rating, score int) models.Rating {
	total := current.Average*float64(current.Count) + float64(score)
	count := current.Count + 1
	return models.Rating{
		Average: total / float64(count),
		Count:   count,
	}
}
