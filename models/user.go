package models

import (
	"time"
)

// User represents an account row kept for authentication. No handler
// consults it for access control yet; the admin routes are ungated.
type User struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"uniqueIndex" json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// Session is the session storage table for authentication. Schema only:
// nothing reads or writes it through the API.
type Session struct {
	Sid    string    `gorm:"primaryKey" json:"sid"`
	Sess   string    `gorm:"type:text;not null" json:"sess"`
	Expire time.Time `gorm:"index;not null" json:"expire"`
}

// TableName specifies the table name for the Session model
func (Session) TableName() string {
	return "sessions"
}
