package applications

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"ustabul/models"
)

func pendingApp() models.Application {
	return models.Application{
		ApplicationID: "a1",
		JobID:         "j1",
		WorkerID:      "w1",
		EmployerID:    "e1",
		Status:        models.ApplicationPending,
	}
}

func activeJob() models.Job {
	return models.Job{JobID: "j1", EmployerID: "e1", Status: models.JobStatusActive}
}

func TestBuildAcceptPlanCascade(t *testing.T) {
	now := time.Now()
	plan, err := BuildAcceptPlan(pendingApp(), activeJob(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan) != 3 {
		t.Fatalf("expected 3 writes, got %d", len(plan))
	}

	accept := plan[0]
	if accept.Collection != "applications" || accept.Many {
		t.Fatalf("first write: %+v", accept)
	}
	if got := accept.Update["$set"].(bson.M)["status"]; got != models.ApplicationAccepted {
		t.Fatalf("application status: %v", got)
	}

	jobWrite := plan[1]
	if jobWrite.Collection != "jobs" || jobWrite.Many {
		t.Fatalf("second write: %+v", jobWrite)
	}
	set := jobWrite.Update["$set"].(bson.M)
	if set["status"] != models.JobStatusInProgress {
		t.Fatalf("job status: %v", set["status"])
	}
	if set["selectedWorkerId"] != "w1" {
		t.Fatalf("selected worker: %v", set["selectedWorkerId"])
	}

	reject := plan[2]
	if reject.Collection != "applications" || !reject.Many {
		t.Fatalf("third write must be a bulk update: %+v", reject)
	}
	if got := reject.Update["$set"].(bson.M)["status"]; got != models.ApplicationRejected {
		t.Fatalf("bulk status: %v", got)
	}
	// must exclude the accepted application and only touch pending ones
	if reject.Filter["jobid"] != "j1" {
		t.Fatalf("bulk filter job: %v", reject.Filter)
	}
	if reject.Filter["status"] != models.ApplicationPending {
		t.Fatalf("bulk filter status: %v", reject.Filter)
	}
	ne := reject.Filter["applicationid"].(bson.M)["$ne"]
	if ne != "a1" {
		t.Fatalf("bulk filter must exclude the accepted application: %v", ne)
	}
}

func TestBuildAcceptPlanRejectsWrongStates(t *testing.T) {
	app := pendingApp()
	app.Status = models.ApplicationWithdrawn
	if _, err := BuildAcceptPlan(app, activeJob(), time.Now()); err == nil {
		t.Fatal("withdrawn application accepted")
	}

	job := activeJob()
	job.Status = models.JobStatusInProgress
	if _, err := BuildAcceptPlan(pendingApp(), job, time.Now()); err == nil {
		t.Fatal("non-active job accepted")
	}
}
