package models

import "time"

type Rating struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

type WorkerPreferences struct {
	WorkRadius        int      `bson:"workRadius,omitempty" json:"workRadius,omitempty"`
	MinimumBudget     float64  `bson:"minimumBudget,omitempty" json:"minimumBudget,omitempty"`
	PreferredJobTypes []string `bson:"preferredJobTypes,omitempty" json:"preferredJobTypes,omitempty"`
}

type PortfolioItem struct {
	Title          string     `bson:"title" json:"title"`
	Description    string     `bson:"description,omitempty" json:"description,omitempty"`
	Images         []string   `bson:"images,omitempty" json:"images,omitempty"`
	CompletionDate *time.Time `bson:"completionDate,omitempty" json:"completionDate,omitempty"`
	Category       string     `bson:"category,omitempty" json:"category,omitempty"`
}

type Certificate struct {
	Name      string     `bson:"name" json:"name"`
	Issuer    string     `bson:"issuer,omitempty" json:"issuer,omitempty"`
	IssueDate *time.Time `bson:"issueDate,omitempty" json:"issueDate,omitempty"`
	FileURL   string     `bson:"fileUrl,omitempty" json:"fileUrl,omitempty"`
}

type WorkerProfile struct {
	UserID        string            `bson:"userid" json:"userid"`
	ProfileImage  string            `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Bio           string            `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills        []SelectedSkill   `bson:"skills" json:"skills"`
	Experience    string            `bson:"experience,omitempty" json:"experience,omitempty"`
	HourlyRate    float64           `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
	Availability  string            `bson:"availability,omitempty" json:"availability,omitempty"`
	Location      Location          `bson:"location,omitempty" json:"location,omitempty"`
	Coordinates   *Coordinates      `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	Portfolio     []PortfolioItem   `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
	Certificates  []Certificate     `bson:"certificates,omitempty" json:"certificates,omitempty"`
	Rating        Rating            `bson:"rating" json:"rating"`
	CompletedJobs int               `bson:"completedJobs" json:"completedJobs"`
	IsAvailable   bool              `bson:"isAvailable" json:"isAvailable"`
	Preferences   WorkerPreferences `bson:"preferences,omitempty" json:"preferences,omitempty"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Allowed values for the worker enums. Validation only, no behavior attached.
var (
	ExperienceLevels   = []string{"0-1", "1-3", "3-5", "5-10", "10+"}
	AvailabilityStates = []string{"Tam Zamanlı", "Yarı Zamanlı", "Proje Bazlı", "Uygun Değil"}
)

type CompanyDetails struct {
	Name      string `bson:"name" json:"name"`
	TaxNumber string `bson:"taxNumber" json:"taxNumber"`
	TaxOffice string `bson:"taxOffice" json:"taxOffice"`
}

type EmployerProfile struct {
	UserID         string         `bson:"userid" json:"userid"`
	CompanyDetails CompanyDetails `bson:"companyDetails" json:"companyDetails"`
	Location       Location       `bson:"location" json:"location"`
	Industry       string         `bson:"industry,omitempty" json:"industry,omitempty"`
	CompanySize    string         `bson:"companySize,omitempty" json:"companySize,omitempty"`
	Website        string         `bson:"website,omitempty" json:"website,omitempty"`
	Verified       bool           `bson:"verified" json:"verified"`
	Rating         Rating         `bson:"rating" json:"rating"`
	JobsPosted     int            `bson:"jobsPosted" json:"jobsPosted"`
	ActiveJobs     int            `bson:"activeJobs" json:"activeJobs"`
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time      `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

var CompanySizes = []string{"1-10", "11-50", "51-200", "201-500", "500+"}
