package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Password  []byte    `json:"-" gorm:"not null"`
	Email     *string   `json:"email,omitempty" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUser(name string, password []byte, email string) *User {
	u := &User{
		Name:     name,
		Password: password,
	}
	if email != "" {
		u.Email = &email
	}
	return u
}
