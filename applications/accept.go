package applications

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"ustabul/apperr"
	"ustabul/models"
)

// AcceptUpdate is one collection write inside the accept cascade.
type AcceptUpdate struct {
	Collection string // "applications" or "jobs"
	Filter     bson.M
	Update     bson.M
	Many       bool
}

// BuildAcceptPlan computes the writes that accepting an application requires.
// All of them run inside a single session so that either the application is
// accepted, the job moved to in_progress and every other pending application
// rejected, or none of it happened.
func BuildAcceptPlan(app models.Application, job models.Job, now time.Time) ([]AcceptUpdate, error) {
	if app.Status != models.ApplicationPending {
		return nil, apperr.New(apperr.Conflict, "Sadece bekleyen başvurular kabul edilebilir")
	}
	if job.Status != models.JobStatusActive {
		return nil, apperr.New(apperr.Conflict, "Bu ilan artık aktif değil")
	}

	return []AcceptUpdate{
		{
			Collection: "applications",
			Filter:     bson.M{"applicationid": app.ApplicationID},
			Update: bson.M{"$set": bson.M{
				"status":      models.ApplicationAccepted,
				"respondedAt": now,
				"updatedAt":   now,
			}},
		},
		{
			Collection: "jobs",
			Filter:     bson.M{"jobid": job.JobID},
			Update: bson.M{"$set": bson.M{
				"status":           models.JobStatusInProgress,
				"selectedWorkerId": app.WorkerID,
				"updatedAt":        now,
			}},
		},
		{
			Collection: "applications",
			Filter: bson.M{
				"jobid":         job.JobID,
				"applicationid": bson.M{"$ne": app.ApplicationID},
				"status":        models.ApplicationPending,
			},
			Update: bson.M{"$set": bson.M{
				"status":      models.ApplicationRejected,
				"respondedAt": now,
				"updatedAt":   now,
			}},
			Many: true,
		},
	}, nil
}
