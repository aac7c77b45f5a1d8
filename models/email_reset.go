package models

import (
	"time"
)

// EmailReset holds a one-time code authorizing a password change for a user.
type EmailReset struct {
	ID     uint      `json:"id" gorm:"primaryKey"`
	UserID uint      `json:"user_id" gorm:"not null"`
	Code   string    `json:"code" gorm:"uniqueIndex;not null"`
	Date   time.Time `json:"date" gorm:"not null"`

	User User `json:"-"`
}

func NewEmailReset(userID uint, code string, date time.Time) *EmailReset {
	return &EmailReset{
		UserID: userID,
		Code:   code,
		Date:   date,
	}
}
