package jobs

import (
	"fmt"
	"strings"

	"ustabul/apperr"
	"ustabul/locations"
	"ustabul/models"
	"ustabul/taxonomy"
	"ustabul/utils"
)

const maxDescriptionLen = 2000

// ValidateJob checks a job payload before insert or update. It returns the
// job with its location normalized, or a validation error.
func ValidateJob(job models.Job) (models.Job, error) {
	if strings.TrimSpace(job.Title) == "" {
		return job, apperr.New(apperr.Validation, "İş başlığı gereklidir")
	}
	if strings.TrimSpace(job.Description) == "" {
		return job, apperr.New(apperr.Validation, "İş açıklaması gereklidir")
	}
	if len(job.Description) > maxDescriptionLen {
		return job, apperr.New(apperr.Validation, fmt.Sprintf("Açıklama en fazla %d karakter olabilir", maxDescriptionLen))
	}
	if !taxonomy.IsJobCategory(job.Category) {
		return job, apperr.New(apperr.Validation, "Geçersiz iş kategorisi")
	}
	if job.Budget.Type != "" && !utils.Contains(models.BudgetTypes, job.Budget.Type) {
		return job, apperr.New(apperr.Validation, "Geçersiz bütçe tipi")
	}
	if job.Budget.Type != "negotiable" && job.Budget.Type != "" && job.Budget.Amount <= 0 {
		return job, apperr.New(apperr.Validation, "Bütçe tutarı sıfırdan büyük olmalıdır")
	}
	if job.Duration != "" && !utils.Contains(models.JobDurations, job.Duration) {
		return job, apperr.New(apperr.Validation, "Geçersiz iş süresi")
	}
	if job.LocationType != "" && !utils.Contains(models.LocationTypes, job.LocationType) {
		return job, apperr.New(apperr.Validation, "Geçersiz çalışma şekli")
	}
	if job.Urgency != "" && !utils.Contains(models.UrgencyLevels, job.Urgency) {
		return job, apperr.New(apperr.Validation, "Geçersiz aciliyet seviyesi")
	}

	normalized, err := taxonomy.NormalizeSkills(job.Skills)
	if err != nil {
		return job, err
	}
	job.Skills = normalized

	if job.LocationType != "remote" {
		if job.Address.City == "" {
			return job, apperr.New(apperr.Validation, "Şehir bilgisi gereklidir")
		}
		job.Address = locations.Normalize(job.Address)
	}

	return job, nil
}

// ApplyDefaults fills the fields a new job always starts with.
func ApplyDefaults(job models.Job) models.Job {
	if job.Budget.Type == "" {
		job.Budget.Type = "negotiable"
	}
	if job.Budget.Currency == "" {
		job.Budget.Currency = "TRY"
	}
	if job.LocationType == "" {
		job.LocationType = "onsite"
	}
	if job.Urgency == "" {
		job.Urgency = "normal"
	}
	job.Status = models.JobStatusDraft
	job.ApplicationsCount = 0
	job.ViewsCount = 0
	return job
}
