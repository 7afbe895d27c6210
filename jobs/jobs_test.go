package jobs

import (
	"strings"
	"testing"

	"ustabul/models"
)

func validJob() models.Job {
	return models.Job{
		Title:       "Abkant operatörü aranıyor",
		Description: "3 metre CNC abkant için deneyimli operatör.",
		Category:    "KAYNAK",
		Budget:      models.Budget{Type: "fixed", Amount: 15000},
		Address:     models.Location{City: "İstanbul", District: "Kadıköy"},
	}
}

func TestValidateJobAcceptsValid(t *testing.T) {
	if _, err := ValidateJob(validJob()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateJobRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Job)
	}{
		{"empty title", func(j *models.Job) { j.Title = "  " }},
		{"empty description", func(j *models.Job) { j.Description = "" }},
		{"long description", func(j *models.Job) { j.Description = strings.Repeat("a", maxDescriptionLen+1) }},
		{"unknown category", func(j *models.Job) { j.Category = "BAHÇIVANLIK" }},
		{"bad budget type", func(j *models.Job) { j.Budget.Type = "monthly" }},
		{"zero fixed budget", func(j *models.Job) { j.Budget.Amount = 0 }},
		{"bad duration", func(j *models.Job) { j.Duration = "2 yıl" }},
		{"bad location type", func(j *models.Job) { j.LocationType = "underwater" }},
		{"bad urgency", func(j *models.Job) { j.Urgency = "panic" }},
		{"missing city", func(j *models.Job) { j.Address = models.Location{} }},
		{"bad skill path", func(j *models.Job) {
			j.Skills = []models.SelectedSkill{{MainCategory: "METAL İŞLERİ", SubCategory: "YOK"}}
		}},
	}
	for _, tc := range cases {
		job := validJob()
		tc.mutate(&job)
		if _, err := ValidateJob(job); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestValidateJobRemoteSkipsAddress(t *testing.T) {
	job := validJob()
	job.LocationType = "remote"
	job.Address = models.Location{}
	if _, err := ValidateJob(job); err != nil {
		t.Fatalf("remote job should not need an address: %v", err)
	}
}

func TestValidateJobNormalizesAddress(t *testing.T) {
	job := validJob()
	job.Address = models.Location{City: "Ankara", District: "Kadıköy"}
	got, err := ValidateJob(job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Address.District != "" {
		t.Fatalf("foreign district survived: %+v", got.Address)
	}
}

func TestApplyDefaults(t *testing.T) {
	job := ApplyDefaults(models.Job{})
	if job.Status != models.JobStatusDraft {
		t.Fatalf("new job must start as draft, got %q", job.Status)
	}
	if job.Budget.Type != "negotiable" || job.Budget.Currency != "TRY" {
		t.Fatalf("budget defaults: %+v", job.Budget)
	}
	if job.LocationType != "onsite" || job.Urgency != "normal" {
		t.Fatalf("defaults: locationType=%q urgency=%q", job.LocationType, job.Urgency)
	}

	// explicit values survive
	job = ApplyDefaults(models.Job{Budget: models.Budget{Type: "hourly", Currency: "TRY"}, Urgency: "urgent"})
	if job.Budget.Type != "hourly" || job.Urgency != "urgent" {
		t.Fatalf("explicit values overwritten: %+v", job)
	}
}
