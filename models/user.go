package models

import "time"

const (
	UserTypeWorker   = "worker"
	UserTypeEmployer = "employer"
	UserTypeAdmin    = "admin"
)

type User struct {
	UserID           string     `bson:"userid" json:"userid"`
	Email            string     `bson:"email" json:"email"`
	Password         string     `bson:"password" json:"-"`
	FullName         string     `bson:"fullName" json:"fullName"`
	Phone            string     `bson:"phone" json:"phone"`
	UserType         string     `bson:"userType" json:"userType"`
	ProfileCompleted bool       `bson:"profileCompleted" json:"profileCompleted"`
	IsActive         bool       `bson:"isActive" json:"isActive"`
	IsVerified       bool       `bson:"isVerified" json:"isVerified"`
	CreatedAt        time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time  `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	LastLogin        *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
}

// PublicUser is the sanitized view embedded in profile and job responses.
type PublicUser struct {
	UserID   string `bson:"userid" json:"userid"`
	Email    string `bson:"email" json:"email"`
	FullName string `bson:"fullName" json:"fullName"`
	UserType string `bson:"userType" json:"userType"`
}
