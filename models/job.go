package models

import "time"

const (
	JobStatusDraft      = "draft"
	JobStatusActive     = "active"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
	JobStatusClosed     = "closed"
)

var JobStatuses = []string{
	JobStatusDraft, JobStatusActive, JobStatusInProgress,
	JobStatusCompleted, JobStatusCancelled, JobStatusClosed,
}

type Budget struct {
	Type     string  `bson:"type" json:"type"` // fixed, hourly, negotiable
	Amount   float64 `bson:"amount,omitempty" json:"amount,omitempty"`
	Currency string  `bson:"currency" json:"currency"`
}

type JobRequirements struct {
	Experience     string   `bson:"experience,omitempty" json:"experience,omitempty"`
	Certifications []string `bson:"certifications,omitempty" json:"certifications,omitempty"`
	Equipment      []string `bson:"equipment,omitempty" json:"equipment,omitempty"`
}

type Job struct {
	JobID             string          `bson:"jobid" json:"jobid"`
	EmployerID        string          `bson:"employerId" json:"employerId"`
	Title             string          `bson:"title" json:"title"`
	Description       string          `bson:"description" json:"description"`
	Category          string          `bson:"category" json:"category"`
	Skills            []SelectedSkill `bson:"skills" json:"skills"`
	Budget            Budget          `bson:"budget" json:"budget"`
	Duration          string          `bson:"duration,omitempty" json:"duration,omitempty"`
	LocationType      string          `bson:"locationType" json:"locationType"` // onsite, remote, hybrid
	Address           Location        `bson:"address,omitempty" json:"address,omitempty"`
	Coordinates       *Coordinates    `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	StartDate         *time.Time      `bson:"startDate,omitempty" json:"startDate,omitempty"`
	Urgency           string          `bson:"urgency" json:"urgency"` // normal, urgent, very_urgent
	Status            string          `bson:"status" json:"status"`
	Requirements      JobRequirements `bson:"requirements,omitempty" json:"requirements,omitempty"`
	Images            []string        `bson:"images,omitempty" json:"images,omitempty"`
	ApplicationsCount int             `bson:"applicationsCount" json:"applicationsCount"`
	ViewsCount        int             `bson:"viewsCount" json:"viewsCount"`
	SelectedWorkerID  string          `bson:"selectedWorkerId,omitempty" json:"selectedWorkerId,omitempty"`
	CompletionDate    *time.Time      `bson:"completionDate,omitempty" json:"completionDate,omitempty"`
	PublishedAt       *time.Time      `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	CreatedAt         time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time       `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

var (
	BudgetTypes   = []string{"fixed", "hourly", "negotiable"}
	JobDurations  = []string{"1-3 gün", "1 hafta", "1-2 hafta", "1 ay", "1-3 ay", "3+ ay"}
	LocationTypes = []string{"onsite", "remote", "hybrid"}
	UrgencyLevels = []string{"normal", "urgent", "very_urgent"}
)
