package models

import (
	"time"
)

// Message is one line of campaign chat. SenderID is nil for messages sent
// by a user with no player in the campaign.
type Message struct {
	ID         uint  `json:"id" gorm:"primaryKey"`
	CampaignID uint  `json:"playthrough_id" gorm:"not null"`
	SenderID   *uint `json:"sender_id"`

	Message string    `json:"message" gorm:"not null"`
	Time    time.Time `json:"time" gorm:"not null"`

	Campaign Campaign `json:"-"`
	Sender   *Player  `json:"sender,omitempty"`
}

func NewMessage(campaignID uint, senderID *uint, msg string, t time.Time) *Message {
	return &Message{
		CampaignID: campaignID,
		SenderID:   senderID,
		Message:    msg,
		Time:       t,
	}
}
