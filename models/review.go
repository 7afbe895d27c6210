package models

import "time"

type ReviewAspects struct {
	Quality         int `bson:"quality,omitempty" json:"quality,omitempty"`
	Communication   int `bson:"communication,omitempty" json:"communication,omitempty"`
	Professionalism int `bson:"professionalism,omitempty" json:"professionalism,omitempty"`
	TimeManagement  int `bson:"timeManagement,omitempty" json:"timeManagement,omitempty"`
}

type ReviewResponse struct {
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Review struct {
	ReviewID     string          `bson:"reviewid" json:"reviewid"`
	JobID        string          `bson:"jobid" json:"jobid"`
	ReviewerID   string          `bson:"reviewerId" json:"reviewerId"`
	RevieweeID   string          `bson:"revieweeId" json:"revieweeId"`
	ReviewerType string          `bson:"reviewerType" json:"reviewerType"` // worker or employer
	Rating       int             `bson:"rating" json:"rating"`
	Aspects      ReviewAspects   `bson:"aspects,omitempty" json:"aspects,omitempty"`
	Comment      string          `bson:"comment,omitempty" json:"comment,omitempty"`
	Response     *ReviewResponse `bson:"response,omitempty" json:"response,omitempty"`
	IsPublic     bool            `bson:"isPublic" json:"isPublic"`
	Reported     bool            `bson:"reported" json:"reported"`
	ReportReason string          `bson:"reportReason,omitempty" json:"reportReason,omitempty"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
}
