package models

import "time"

const (
	ApplicationPending     = "pending"
	ApplicationReviewed    = "reviewed"
	ApplicationShortlisted = "shortlisted"
	ApplicationAccepted    = "accepted"
	ApplicationRejected    = "rejected"
	ApplicationWithdrawn   = "withdrawn"
)

var ApplicationStatuses = []string{
	ApplicationPending, ApplicationReviewed, ApplicationShortlisted,
	ApplicationAccepted, ApplicationRejected, ApplicationWithdrawn,
}

type Application struct {
	ApplicationID    string     `bson:"applicationid" json:"applicationid"`
	JobID            string     `bson:"jobid" json:"jobid"`
	WorkerID         string     `bson:"workerId" json:"workerId"`
	EmployerID       string     `bson:"employerId" json:"employerId"`
	CoverLetter      string     `bson:"coverLetter,omitempty" json:"coverLetter,omitempty"`
	ProposedBudget   *Budget    `bson:"proposedBudget,omitempty" json:"proposedBudget,omitempty"`
	ProposedDuration string     `bson:"proposedDuration,omitempty" json:"proposedDuration,omitempty"`
	StartDate        *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	Status           string     `bson:"status" json:"status"`
	EmployerNotes    string     `bson:"employerNotes,omitempty" json:"employerNotes,omitempty"`
	ReviewedAt       *time.Time `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	RespondedAt      *time.Time `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
	SubmittedAt      time.Time  `bson:"submittedAt" json:"submittedAt"`
	UpdatedAt        time.Time  `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
