package models

import (
	"time"
)

// Log is one session log entry written by a player.
type Log struct {
	ID         uint  `json:"id" gorm:"primaryKey"`
	CampaignID uint  `json:"playthrough_id" gorm:"not null"`
	CreatorID  *uint `json:"creator_id"`

	Title string    `json:"title" gorm:"not null"`
	Text  string    `json:"text" gorm:"not null"`
	Time  time.Time `json:"time" gorm:"not null"`

	Campaign Campaign `json:"-"`
	Creator  *Player  `json:"creator,omitempty"`
}

func NewLog(campaignID uint, creatorID *uint, title, text string, t time.Time) *Log {
	return &Log{
		CampaignID: campaignID,
		CreatorID:  creatorID,
		Title:      title,
		Text:       text,
		Time:       t,
	}
}
